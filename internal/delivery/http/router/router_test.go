package router

import (
	"testing"

	"budgetai/internal/delivery/http/middleware"
	"budgetai/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newTestRouter() *router {
	return NewRouter(RouterParams{
		UserHandler:       handler.NewUserHandler(nil),
		CompanyHandler:    handler.NewCompanyHandler(nil),
		DepartmentHandler: handler.NewDepartmentHandler(nil),
		RequestHandler:    handler.NewRequestHandler(nil),
		ProductHandler:    handler.NewProductHandler(nil),
		OrderHandler:      handler.NewOrderHandler(nil),
		ChatHandler:       handler.NewChatHandler(nil),
		AuthMiddleware:    middleware.NewAuthMiddleware(nil),
	})
}

func registeredRoutes(e *echo.Echo) map[string]bool {
	routes := make(map[string]bool, len(e.Routes()))
	for _, route := range e.Routes() {
		routes[route.Method+" "+route.Path] = true
	}

	return routes
}

func TestRegisterRoutes_AdminWritesKeepPublicPaths(t *testing.T) {
	e := echo.New()
	newTestRouter().RegisterRoutes(e)

	routes := registeredRoutes(e)

	// Admin-gated operations live on the documented paths, not under /api/admin.
	assert.True(t, routes["POST /api/products"])
	assert.True(t, routes["PUT /api/products/:id"])
	assert.True(t, routes["DELETE /api/products/:id"])
	assert.True(t, routes["GET /api/company/joincode/qr"])
	assert.True(t, routes["POST /api/payman/chat"])

	assert.False(t, routes["POST /api/admin/products"])
	assert.False(t, routes["GET /api/admin/company/joincode/qr"])
	assert.False(t, routes["POST /api/admin/payman/chat"])
}

func TestRegisterRoutes_CoreSurface(t *testing.T) {
	e := echo.New()
	newTestRouter().RegisterRoutes(e)

	routes := registeredRoutes(e)

	expected := []string{
		"GET /health",
		"POST /api/auth/signup",
		"POST /api/auth/login",
		"POST /api/auth/refresh",
		"POST /api/auth/logout",
		"GET /api/me",
		"POST /api/company",
		"GET /api/company",
		"POST /api/search",
		"GET /api/products",
		"GET /api/products/:id",
		"POST /api/orders",
		"GET /api/orders",
		"GET /api/orders/:id",
		"PUT /api/orders/:id",
		"DELETE /api/orders/:id",
		"GET /api/chat",
		"POST /api/chat",
		"GET /api/chat/:id",
		"DELETE /api/chat/:id",
		"GET /api/employee/departments",
		"GET /api/employee/requests",
		"POST /api/employee/requests",
		"GET /api/admin/departments",
		"POST /api/admin/departments",
		"PUT /api/admin/departments/:id",
		"DELETE /api/admin/departments/:id",
		"GET /api/admin/requests",
		"PUT /api/admin/requests/:id",
	}
	for _, route := range expected {
		assert.True(t, routes[route], route)
	}
}
