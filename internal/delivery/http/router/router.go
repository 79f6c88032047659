// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/ushankamesh-devX/helatrade-sub000/internal/delivery/http/middleware"
	"github.com/ushankamesh-devX/helatrade-sub000/internal/delivery/http/router/handler"
	"github.com/ushankamesh-devX/helatrade-sub000/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler    *handler.AccountHandler
	ConnectionHandler *handler.ConnectionHandler
	DirectoryHandler  *handler.DirectoryHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler    *handler.AccountHandler
	connectionHandler *handler.ConnectionHandler
	directoryHandler  *handler.DirectoryHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:    params.AccountHandler,
		connectionHandler: params.ConnectionHandler,
		directoryHandler:  params.DirectoryHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register/producer", r.accountHandler.RegisterProducer)
		authGroup.POST("/register/store", r.accountHandler.RegisterStore)
		authGroup.POST("/login", r.accountHandler.Login)
		authGroup.POST("/refresh", r.accountHandler.RefreshToken)
		authGroup.POST("/logout", r.accountHandler.Logout)
	}

	// Public directory routes
	e.GET("/categories", r.directoryHandler.ListCategories)
	e.GET("/directory/:type", r.directoryHandler.ListAccounts)
	e.GET("/profiles/:type/:slug", r.accountHandler.GetPublicProfile)

	// Routes on the authenticated account's own profile
	meGroup := e.Group("/me")
	meGroup.Use(r.authMiddleware.Authenticate)
	{
		meGroup.GET("", r.accountHandler.GetProfile)
		meGroup.PATCH("", r.accountHandler.UpdateProfile)
		meGroup.DELETE("", r.accountHandler.DeactivateProfile)
		meGroup.GET("/qr", r.accountHandler.ProfileQR)
	}

	// Connection routes. Each side addresses the other by peer id; the
	// route group pins which account variant may call it.
	connGroup := e.Group("/connections")
	connGroup.Use(r.authMiddleware.Authenticate)
	{
		connGroup.GET("", r.connectionHandler.ListConnections)

		storeSide := connGroup.Group("/producers", r.authMiddleware.RequireType(entity.AccountTypeStore))
		{
			storeSide.POST("/:peer_id", r.connectionHandler.RequestConnection)
			storeSide.PATCH("/:peer_id", r.connectionHandler.TransitionConnection)
			storeSide.GET("/:peer_id", r.connectionHandler.GetConnection)
		}

		producerSide := connGroup.Group("/stores", r.authMiddleware.RequireType(entity.AccountTypeProducer))
		{
			producerSide.POST("/:peer_id", r.connectionHandler.RequestConnection)
			producerSide.PATCH("/:peer_id", r.connectionHandler.TransitionConnection)
			producerSide.GET("/:peer_id", r.connectionHandler.GetConnection)
		}
	}
}
