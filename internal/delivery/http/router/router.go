// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"campuskart/internal/delivery/http/middleware"
	"campuskart/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	AdminHandler   *handler.AdminHandler
	ItemHandler    *handler.ItemHandler
	OrderHandler   *handler.OrderHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	adminHandler   *handler.AdminHandler
	itemHandler    *handler.ItemHandler
	orderHandler   *handler.OrderHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		adminHandler:   params.AdminHandler,
		itemHandler:    params.ItemHandler,
		orderHandler:   params.OrderHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	// Buyer routes
	userGroup := apiV1.Group("/user")
	{
		userGroup.POST("/signup", r.userHandler.Signup)
		userGroup.POST("/login", r.userHandler.Login)
		userGroup.GET("/logout", r.userHandler.Logout)

		userGroup.GET("/purchases", r.userHandler.ListPurchases, r.authMiddleware.AuthenticateBuyer)
		userGroup.GET("/awaiting-pickup", r.userHandler.ListAwaitingPickup, r.authMiddleware.AuthenticateBuyer)
		userGroup.GET("/received-items", r.userHandler.ListReceivedItems, r.authMiddleware.AuthenticateBuyer)
	}

	// Admin routes
	adminGroup := apiV1.Group("/admin")
	{
		adminGroup.POST("/signup", r.adminHandler.Signup)
		adminGroup.POST("/login", r.adminHandler.Login)
		adminGroup.GET("/logout", r.adminHandler.Logout)

		adminGroup.GET("/items", r.adminHandler.ListItems, r.authMiddleware.AuthenticateAdmin)
		adminGroup.GET("/purchases", r.adminHandler.GetPurchaseReport, r.authMiddleware.AuthenticateAdmin)
		adminGroup.PUT("/orders/:orderId/delivered", r.adminHandler.UpdateDelivered, r.authMiddleware.AuthenticateAdmin)
		adminGroup.POST("/pickup/verify", r.adminHandler.VerifyPickup, r.authMiddleware.AuthenticateAdmin)
	}

	// Catalog and checkout routes. The static /items route must win over
	// the :itemId detail route.
	itemGroup := apiV1.Group("/item")
	{
		itemGroup.POST("/create", r.itemHandler.Create, r.authMiddleware.AuthenticateAdmin)
		itemGroup.PUT("/update/:itemId", r.itemHandler.Update, r.authMiddleware.AuthenticateAdmin)
		itemGroup.DELETE("/delete/:itemId", r.itemHandler.Delete, r.authMiddleware.AuthenticateAdmin)

		itemGroup.GET("/items", r.itemHandler.List)
		itemGroup.GET("/:itemId", r.itemHandler.Detail)

		itemGroup.POST("/buy/:itemId", r.itemHandler.Buy, r.authMiddleware.AuthenticateBuyer)
	}

	// Checkout submission
	apiV1.POST("/order", r.orderHandler.PlaceOrder, r.authMiddleware.AuthenticateBuyer)
}
