// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"registrar/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	StudentHandler *handler.StudentHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	studentHandler *handler.StudentHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		studentHandler: params.StudentHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// All public endpoints live under a common prefix.
	apiGroup := e.Group("/api")
	{
		apiGroup.POST("/register", r.studentHandler.Register)
		apiGroup.POST("/login", r.studentHandler.Login)
		apiGroup.GET("/student/:id", r.studentHandler.GetProfile)
	}
}
