// Package router wires handlers and middleware onto the Echo instance.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/cafe-comptoir-api/internal/handler"
	"github.com/iliyamo/cafe-comptoir-api/internal/model"
)

// Handlers bundles everything the routes dispatch to.
type Handlers struct {
	Reservations *handler.ReservationHandler
	Contacts     *handler.ContactHandler
	Reviews      *handler.ReviewHandler
	Menu         *handler.MenuHandler
	Info         model.RestaurantInfo
}

// Middleware holds the Redis-backed middleware. Cache is applied to the
// cached GET routes and to every write (which invalidates); RateLimit guards
// the public submission endpoints.
type Middleware struct {
	Cache     echo.MiddlewareFunc
	RateLimit echo.MiddlewareFunc
}

func passThrough(next echo.HandlerFunc) echo.HandlerFunc { return next }

func (m Middleware) withDefaults() Middleware {
	if m.Cache == nil {
		m.Cache = passThrough
	}
	if m.RateLimit == nil {
		m.RateLimit = passThrough
	}
	return m
}

// RegisterRoutes mounts the liveness probe and everything under /api.
func RegisterRoutes(e *echo.Echo, h Handlers, mw Middleware) {
	mw = mw.withDefaults()

	e.GET("/healthz", handler.Health)

	api := e.Group("/api")
	api.GET("/", handler.Banner)
	api.GET("/info", handler.Info(h.Info), mw.Cache)

	registerPublic(api, h, mw)
	registerManagement(api, h, mw)
}
