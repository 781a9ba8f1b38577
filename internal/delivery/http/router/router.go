// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"budgetai/internal/delivery/http/middleware"
	"budgetai/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler       *handler.UserHandler
	CompanyHandler    *handler.CompanyHandler
	DepartmentHandler *handler.DepartmentHandler
	RequestHandler    *handler.RequestHandler
	ProductHandler    *handler.ProductHandler
	OrderHandler      *handler.OrderHandler
	ChatHandler       *handler.ChatHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler       *handler.UserHandler
	companyHandler    *handler.CompanyHandler
	departmentHandler *handler.DepartmentHandler
	requestHandler    *handler.RequestHandler
	productHandler    *handler.ProductHandler
	orderHandler      *handler.OrderHandler
	chatHandler       *handler.ChatHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:       params.UserHandler,
		companyHandler:    params.CompanyHandler,
		departmentHandler: params.DepartmentHandler,
		requestHandler:    params.RequestHandler,
		productHandler:    params.ProductHandler,
		orderHandler:      params.OrderHandler,
		chatHandler:       params.ChatHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/signup", r.userHandler.Signup)
		// Kept as an alias for older clients.
		authGroup.POST("/register", r.userHandler.Signup)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/refresh", r.userHandler.RefreshToken)
		authGroup.POST("/logout", r.userHandler.Logout)
	}

	// Everything below requires a valid access token. Admin-only routes keep
	// their public paths and gate on the role per route.
	adminOnly := r.authMiddleware.RequireRole("admin")

	authed := api.Group("", r.authMiddleware.Authenticate)
	{
		authed.GET("/me", r.userHandler.Me)

		authed.POST("/company", r.companyHandler.Onboard)
		authed.GET("/company", r.companyHandler.Get)
		authed.GET("/company/joincode/qr", r.companyHandler.JoinCodeQR, adminOnly)

		authed.POST("/search", r.productHandler.Search)
		authed.GET("/products", r.productHandler.List)
		authed.GET("/products/:id", r.productHandler.Get)
		authed.POST("/products", r.productHandler.Create, adminOnly)
		authed.PUT("/products/:id", r.productHandler.Update, adminOnly)
		authed.DELETE("/products/:id", r.productHandler.Delete, adminOnly)

		authed.POST("/payman/chat", r.chatHandler.FinancialChat, adminOnly)

		authed.POST("/orders", r.orderHandler.Create)
		authed.GET("/orders", r.orderHandler.List)
		authed.GET("/orders/:id", r.orderHandler.Get)
		authed.PUT("/orders/:id", r.orderHandler.Update)
		authed.DELETE("/orders/:id", r.orderHandler.Delete)

		authed.GET("/chat", r.chatHandler.ListSessions)
		authed.POST("/chat", r.chatHandler.Send)
		authed.GET("/chat/:id", r.chatHandler.GetSession)
		authed.DELETE("/chat/:id", r.chatHandler.DeleteSession)
	}

	// Employee routes: any authenticated company member.
	employeeGroup := api.Group("/employee", r.authMiddleware.Authenticate)
	{
		employeeGroup.GET("/departments", r.departmentHandler.List)
		employeeGroup.GET("/requests", r.requestHandler.ListMine)
		employeeGroup.POST("/requests", r.requestHandler.Submit)
	}

	// Admin routes: authentication plus the "admin" role.
	adminGroup := api.Group("/admin", r.authMiddleware.Authenticate, adminOnly)
	{
		adminGroup.GET("/departments", r.departmentHandler.List)
		adminGroup.POST("/departments", r.departmentHandler.Create)
		adminGroup.PUT("/departments/:id", r.departmentHandler.Update)
		adminGroup.DELETE("/departments/:id", r.departmentHandler.Delete)

		adminGroup.GET("/requests", r.requestHandler.ListCompany)
		adminGroup.PUT("/requests/:id", r.requestHandler.Resolve)
	}
}
