// Package delivery defines the contract every transport implementation satisfies.
package delivery

import "context"

// Delivery is a long-running inbound adapter (HTTP server, worker, ...).
type Delivery interface {
	Serve(ctx context.Context) error
}
