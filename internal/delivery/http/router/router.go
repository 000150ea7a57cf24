// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/config"
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	HealthHandler     *handler.HealthHandler
	StoreHandler      *handler.StoreHandler
	LocationHandler   *handler.LocationHandler
	WebViewHandler    *handler.WebViewHandler
	OwnerHandler      *handler.OwnerHandler
	AuthMiddleware    *middleware.AuthMiddleware
	WebViewMiddleware *middleware.WebViewMiddleware
	Config            *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	healthHandler     *handler.HealthHandler
	storeHandler      *handler.StoreHandler
	locationHandler   *handler.LocationHandler
	webViewHandler    *handler.WebViewHandler
	ownerHandler      *handler.OwnerHandler
	authMiddleware    *middleware.AuthMiddleware
	webViewMiddleware *middleware.WebViewMiddleware
	ownerRole         string
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	var ownerRole string
	if params.Config != nil && params.Config.Auth != nil {
		ownerRole = params.Config.Auth.OwnerRole
	}

	return &router{
		healthHandler:     params.HealthHandler,
		storeHandler:      params.StoreHandler,
		locationHandler:   params.LocationHandler,
		webViewHandler:    params.WebViewHandler,
		ownerHandler:      params.OwnerHandler,
		authMiddleware:    params.AuthMiddleware,
		webViewMiddleware: params.WebViewMiddleware,
		ownerRole:         ownerRole,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.HealthCheck)

	// Page-facing routes classify the caller's runtime first
	public := e.Group("", r.webViewMiddleware.Detect)
	{
		public.GET("/location", r.locationHandler.ResolveLocation)
		public.GET("/distance", handler.CalculateDistance)
		public.GET("/webview/environment", r.webViewHandler.Environment)
	}

	storesGroup := public.Group("/stores")
	{
		storesGroup.GET("", r.storeHandler.ListStores)
		storesGroup.GET("/nearby", r.storeHandler.NearbyStores)
		storesGroup.GET("/:id", r.storeHandler.GetStore)
		storesGroup.GET("/:id/menu", r.storeHandler.GetMenu)
		storesGroup.GET("/:id/qrcode", r.storeHandler.GetStoreQRCode)
	}

	// Store owner routes require a verified identity
	ownerGroup := e.Group("/owner/stores", r.authMiddleware.Authenticate)
	if r.ownerRole != "" {
		ownerGroup.Use(r.authMiddleware.RequireRole(r.ownerRole))
	}
	{
		ownerGroup.GET("", r.ownerHandler.ListStores)
		ownerGroup.POST("", r.ownerHandler.CreateStore)
		ownerGroup.PUT("/:id", r.ownerHandler.UpdateStore)
		ownerGroup.DELETE("/:id", r.ownerHandler.DeleteStore)

		ownerGroup.POST("/:id/categories", r.ownerHandler.CreateCategory)
		ownerGroup.PUT("/:id/categories/:categoryID", r.ownerHandler.UpdateCategory)
		ownerGroup.DELETE("/:id/categories/:categoryID", r.ownerHandler.DeleteCategory)

		ownerGroup.POST("/:id/items", r.ownerHandler.CreateMenuItem)
		ownerGroup.PUT("/:id/items/:itemID", r.ownerHandler.UpdateMenuItem)
		ownerGroup.DELETE("/:id/items/:itemID", r.ownerHandler.DeleteMenuItem)
	}
}
