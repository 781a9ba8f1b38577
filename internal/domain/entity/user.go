// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity in the system. Company and department references
// are attached during onboarding and stay nil until then.
type User struct {
	ID                  uuid.UUID  // The Global Unique Identifier (GUID) for the user.
	Email               string     // Login identifier, stored lowercased, unique.
	Name                string     // The user's display name.
	PasswordHash        string     // bcrypt hash of the user's password. Never serialized to clients.
	Role                Role       // admin or employee.
	CompanyID           *uuid.UUID // The company the user belongs to, nil before onboarding.
	DepartmentID        *uuid.UUID // The department the user belongs to, nil for admins and unassigned users.
	OnboardingCompleted bool       // True once the user is attached to a company.
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// RefreshToken represents a long-lived, authorized user session.
// It is used to obtain a new access token after the old one expires, without requiring credentials.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string    // SHA-256 hash of the raw refresh token for secure comparison in the database.
	ExpiresAt time.Time // When this refresh token becomes invalid.
	CreatedAt time.Time
}
