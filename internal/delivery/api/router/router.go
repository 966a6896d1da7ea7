// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/config"
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router/handler"
	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler  *handler.CatalogHandler
	CartHandler     *handler.CartHandler
	CheckoutHandler *handler.CheckoutHandler
	LoyaltyHandler  *handler.LoyaltyHandler
	LocationHandler *handler.LocationHandler
	DeviceHandler   *handler.DeviceHandler
	TestHandler     *handler.TestHandler
	AuthMiddleware  *middleware.AuthMiddleware
	Config          *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	catalogHandler  *handler.CatalogHandler
	cartHandler     *handler.CartHandler
	checkoutHandler *handler.CheckoutHandler
	loyaltyHandler  *handler.LoyaltyHandler
	locationHandler *handler.LocationHandler
	deviceHandler   *handler.DeviceHandler
	testHandler     *handler.TestHandler
	authMiddleware  *middleware.AuthMiddleware
	config          *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		catalogHandler:  params.CatalogHandler,
		cartHandler:     params.CartHandler,
		checkoutHandler: params.CheckoutHandler,
		loyaltyHandler:  params.LoyaltyHandler,
		locationHandler: params.LocationHandler,
		deviceHandler:   params.DeviceHandler,
		testHandler:     params.TestHandler,
		authMiddleware:  params.AuthMiddleware,
		config:          params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	// Catalog item lookup is open to every authenticated caller
	apiV1.GET("/catalog/items/:id", r.catalogHandler.GetItem)

	// Customer storefront routes
	customer := apiV1.Group("")
	customer.Use(r.authMiddleware.RequireRole(entity.RoleCustomer))
	{
		customer.GET("/catalog", r.catalogHandler.ListCatalog)

		customer.GET("/location", r.locationHandler.GetLocation)
		customer.PUT("/location", r.locationHandler.SetLocation)

		customer.GET("/cart", r.cartHandler.GetCart)
		customer.DELETE("/cart", r.cartHandler.ClearCart)
		customer.POST("/cart/items", r.cartHandler.AddToCart)
		customer.PUT("/cart/items/:itemId", r.cartHandler.UpdateQuantity)
		customer.DELETE("/cart/items/:itemId", r.cartHandler.RemoveFromCart)

		customer.GET("/wishlist", r.cartHandler.GetWishlist)
		customer.POST("/wishlist/items", r.cartHandler.AddToWishlist)
		customer.DELETE("/wishlist/items/:itemId", r.cartHandler.RemoveFromWishlist)
		customer.POST("/wishlist/items/:itemId/move-to-cart", r.cartHandler.MoveToCart)

		customer.POST("/checkout", r.checkoutHandler.Checkout)
		customer.GET("/orders", r.checkoutHandler.ListOrders)
		customer.GET("/orders/:id", r.checkoutHandler.GetOrder)
		customer.GET("/orders/:id/pickup-qr", r.checkoutHandler.PickupQR)

		customer.GET("/loyalty", r.loyaltyHandler.GetSummary)
	}

	// Device management routes
	devicesGroup := apiV1.Group("/devices")
	{
		devicesGroup.POST("", r.deviceHandler.RegisterDevice)
		devicesGroup.GET("", r.deviceHandler.GetCustomerDevices)
		devicesGroup.PUT("/:id/token", r.deviceHandler.UpdateFCMToken)
		devicesGroup.DELETE("/:id", r.deviceHandler.DeactivateDevice)
	}

	// Supplier back-office routes
	supplier := apiV1.Group("/supplier")
	supplier.Use(r.authMiddleware.RequireRole(entity.RoleSupplier))
	{
		supplier.POST("/listings", r.catalogHandler.CreateListing)
		supplier.GET("/listings", r.catalogHandler.ListSupplierListings)
		supplier.POST("/pickups/verify", r.checkoutHandler.VerifyPickup)
	}
}

func (r *router) RegisterTestRoutes(e *echo.Echo) {
	// Test routes - only enabled when configured
	if r.config.TestRoutes != nil && r.config.TestRoutes.Enabled {
		testGroup := e.Group("/test")
		testGroup.GET("/public", r.testHandler.TestPublicEndpoint)
		testGroup.POST("/token", r.testHandler.IssueToken)

		testGroup.GET("/auth", r.testHandler.TestAuthMiddleware, r.authMiddleware.Authenticate)
	}
}
