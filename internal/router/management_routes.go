package router

import "github.com/labstack/echo/v4"

// registerManagement mounts the back-office endpoints: reading submissions,
// moderating reviews, editing the menu. Menu and review writes pass through
// the cache middleware so the cached listings are dropped on success.
func registerManagement(api *echo.Group, h Handlers, mw Middleware) {
	api.GET("/reservations", h.Reservations.List)
	api.GET("/reservations/:id", h.Reservations.Get)
	api.PATCH("/reservations/:id/status", h.Reservations.UpdateStatus)

	api.GET("/contact", h.Contacts.List)
	api.GET("/contact/:id", h.Contacts.Get)
	api.PATCH("/contact/:id/status", h.Contacts.UpdateStatus)

	api.PATCH("/reviews/:id/approve", h.Reviews.Approve, mw.Cache)
	api.DELETE("/reviews/:id", h.Reviews.Delete, mw.Cache)

	api.POST("/menu", h.Menu.Create, mw.Cache)
	api.PUT("/menu/:id", h.Menu.Update, mw.Cache)
	api.PATCH("/menu/:id/availability", h.Menu.SetAvailability, mw.Cache)
	api.DELETE("/menu/:id", h.Menu.Delete, mw.Cache)
}
