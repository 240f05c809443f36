// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"reunion/internal/delivery/http/middleware"
	"reunion/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler    *handler.SessionHandler
	CheckoutHandler   *handler.CheckoutHandler
	SessionMiddleware *middleware.SessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	sessionHandler    *handler.SessionHandler
	checkoutHandler   *handler.CheckoutHandler
	sessionMiddleware *middleware.SessionMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		sessionHandler:    params.SessionHandler,
		checkoutHandler:   params.CheckoutHandler,
		sessionMiddleware: params.SessionMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Session routes carrying the flow state
	sessionGroup := e.Group("/session")
	sessionGroup.Use(r.sessionMiddleware.Resolve)
	{
		sessionGroup.GET("", r.sessionHandler.GetSession)
		sessionGroup.POST("/reset", r.sessionHandler.ResetSession)
		sessionGroup.PUT("/step", r.sessionHandler.SetStep)
		sessionGroup.PUT("/form", r.sessionHandler.UpdateForm)

		sessionGroup.PUT("/cart", r.sessionHandler.ReplaceCart)
		sessionGroup.POST("/cart/items", r.sessionHandler.AddCartItem)
		sessionGroup.POST("/cart/items/:index/increment", r.sessionHandler.IncrementCartLine)
		sessionGroup.POST("/cart/items/:index/decrement", r.sessionHandler.DecrementCartLine)
		sessionGroup.DELETE("/cart/items/:index", r.sessionHandler.RemoveCartLine)

		sessionGroup.POST("/cart/nametags", r.sessionHandler.ConfirmNameTag)
		sessionGroup.DELETE("/cart/nametags/:slot", r.sessionHandler.RemoveNameTag)

		sessionGroup.PUT("/payment-proof", r.sessionHandler.SetPaymentProof)
		sessionGroup.DELETE("/payment-proof", r.sessionHandler.ClearPaymentProof)
	}

	// Checkout routes
	checkoutGroup := e.Group("/checkout")
	checkoutGroup.Use(r.sessionMiddleware.Resolve)
	{
		checkoutGroup.POST("", r.checkoutHandler.Submit)
	}

	// Registration helpers that need no session
	registrationGroup := e.Group("/registration")
	{
		registrationGroup.POST("/check-duplicate", r.checkoutHandler.CheckDuplicate)
	}
}
