// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"rumbo/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	OrderHandler    *handler.OrderHandler
	TrackingHandler *handler.TrackingHandler
	GeoHandler      *handler.GeoHandler
	CustomerHandler *handler.CustomerHandler
	SystemHandler   *handler.SystemHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	orderHandler    *handler.OrderHandler
	trackingHandler *handler.TrackingHandler
	geoHandler      *handler.GeoHandler
	customerHandler *handler.CustomerHandler
	systemHandler   *handler.SystemHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		orderHandler:    params.OrderHandler,
		trackingHandler: params.TrackingHandler,
		geoHandler:      params.GeoHandler,
		customerHandler: params.CustomerHandler,
		systemHandler:   params.SystemHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", r.systemHandler.HealthCheck)

	// Order lifecycle routes
	orderGroup := e.Group("/ordenes")
	{
		orderGroup.POST("", r.orderHandler.CreateOrder)
		orderGroup.GET("", r.orderHandler.ListOrders)
		orderGroup.GET("/:id", r.orderHandler.GetOrder)
		orderGroup.PUT("/:id/estado", r.orderHandler.UpdateStatus)
		orderGroup.GET("/:id/ubicacion", r.orderHandler.GetOrderLocation)
	}

	// GPS tracking routes
	trackingGroup := e.Group("/tracking")
	{
		trackingGroup.POST("/:orden_id", r.trackingHandler.RecordEvent)
		trackingGroup.GET("/:orden_id/historial", r.trackingHandler.History)
		trackingGroup.GET("/:orden_id/estadisticas", r.trackingHandler.Stats)
		trackingGroup.DELETE("/:orden_id", r.trackingHandler.Erase)
	}

	// Proximity search over active tracking events
	e.GET("/busqueda-cercana", r.geoHandler.FindNearby)

	// Customer routes
	customerGroup := e.Group("/clientes")
	{
		customerGroup.GET("", r.customerHandler.ListCustomers)
		customerGroup.GET("/:id", r.customerHandler.GetCustomerWithOrders)
	}
}
