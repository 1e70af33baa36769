// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"million/internal/delivery/api/middleware"
	"million/internal/delivery/api/router/handler"
	"million/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	PropertyHandler *handler.PropertyHandler
	OwnerHandler    *handler.OwnerHandler
	ImageHandler    *handler.ImageHandler
	TraceHandler    *handler.TraceHandler
	FavoriteHandler *handler.FavoriteHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	propertyHandler *handler.PropertyHandler
	ownerHandler    *handler.OwnerHandler
	imageHandler    *handler.ImageHandler
	traceHandler    *handler.TraceHandler
	favoriteHandler *handler.FavoriteHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		propertyHandler: params.PropertyHandler,
		ownerHandler:    params.OwnerHandler,
		imageHandler:    params.ImageHandler,
		traceHandler:    params.TraceHandler,
		favoriteHandler: params.FavoriteHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
	}

	api := e.Group("/api")

	// Stored image files (public, referenced by listing image URLs)
	api.GET("/files/:key", r.imageHandler.ServeFile)

	// Listing routes: reads are public, mutations require an owner token
	propertiesGroup := api.Group("/properties")
	{
		propertiesGroup.GET("", r.propertyHandler.List)
		propertiesGroup.GET("/all", r.propertyHandler.ListAll)
		propertiesGroup.GET("/:id", r.propertyHandler.GetByID)
		propertiesGroup.GET("/:id/qr", r.propertyHandler.ShareQR)
		propertiesGroup.GET("/:id/images", r.imageHandler.ListByProperty)
		propertiesGroup.GET("/:id/traces", r.traceHandler.ListByProperty)

		authed := propertiesGroup.Group("")
		authed.Use(r.authMiddleware.Authenticate, r.authMiddleware.RequireRole(entity.RoleOwner))
		{
			authed.POST("", r.propertyHandler.Create)
			authed.PATCH("/:id", r.propertyHandler.Update)
			authed.PUT("/:id", r.propertyHandler.Update)
			authed.DELETE("/:id", r.propertyHandler.Delete)
			authed.POST("/:id/images", r.imageHandler.Upload)
			authed.DELETE("/:id/images/:imageId", r.imageHandler.Disable)
			authed.POST("/:id/traces", r.traceHandler.Create)
		}
	}

	// Owner profile routes (all require authentication)
	ownersGroup := api.Group("/owners")
	ownersGroup.Use(r.authMiddleware.Authenticate)
	{
		ownersGroup.GET("", r.ownerHandler.List)
		ownersGroup.GET("/:id", r.ownerHandler.GetByID)
		ownersGroup.POST("", r.ownerHandler.Create)
		ownersGroup.PUT("/:id", r.ownerHandler.Update)
		ownersGroup.DELETE("/:id", r.ownerHandler.Delete)
	}

	// Favorites routes (per authenticated user)
	favoritesGroup := api.Group("/favorites")
	favoritesGroup.Use(r.authMiddleware.Authenticate)
	{
		favoritesGroup.GET("", r.favoriteHandler.List)
		favoritesGroup.PUT("/:id", r.favoriteHandler.Add)
		favoritesGroup.DELETE("/:id", r.favoriteHandler.Remove)
	}
}
