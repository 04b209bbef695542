package router

import "github.com/labstack/echo/v4"

// registerPublic mounts what the website itself calls: menu and review
// browsing (cached) and the three submission forms (rate limited).
func registerPublic(api *echo.Group, h Handlers, mw Middleware) {
	api.GET("/menu", h.Menu.List, mw.Cache)
	api.GET("/menu/categories", h.Menu.Categories, mw.Cache)
	api.GET("/menu/:id", h.Menu.Get, mw.Cache)
	api.GET("/reviews", h.Reviews.List, mw.Cache)
	api.GET("/reviews/:id", h.Reviews.Get, mw.Cache)

	api.POST("/reservations", h.Reservations.Create, mw.RateLimit)
	api.POST("/contact", h.Contacts.Create, mw.RateLimit)
	// Cache runs after the limiter so a new review drops the cached lists.
	api.POST("/reviews", h.Reviews.Create, mw.RateLimit, mw.Cache)
}
