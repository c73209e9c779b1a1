package router // package router registers the HTTP routes of the booking front end

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/showtime-booking/internal/handler"
	"github.com/iliyamo/showtime-booking/internal/middleware"
	"github.com/iliyamo/showtime-booking/internal/model"
)

// RegisterRoutes registers the routes that need no session: the health
// check and, when metrics is non-nil, the Prometheus endpoint.
func RegisterRoutes(e *echo.Echo, metrics *middleware.Metrics) {
	e.GET("/healthz", handler.Health)
	if metrics != nil {
		e.GET("/metrics", metrics.Handler())
	}
}

// API returns the /v1 group every Register function below adds to. The group
// carries no middleware of its own: guards are attached per route, so a
// path nobody registered stays a 404 instead of hitting the session check.
func API(e *echo.Echo) *echo.Group {
	return e.Group("/v1")
}

// RegisterAuth registers login and sign-up and the session-bound /me and
// /auth/logout. guard holds the session middleware chain shared by every
// protected route.
func RegisterAuth(g *echo.Group, a *handler.AuthHandler, guard ...echo.MiddlewareFunc) {
	g.POST("/auth/login", a.Login)
	g.POST("/auth/register", a.Register)
	g.POST("/auth/logout", a.Logout, guard...)
	g.GET("/me", a.Me, guard...)
}

// RegisterCatalog registers the movie list for every user and the catalog
// writes for administrators. cache is applied to the movie list only.
func RegisterCatalog(g *echo.Group, h *handler.CatalogHandler, cache echo.MiddlewareFunc, guard ...echo.MiddlewareFunc) {
	list := guard
	if cache != nil {
		list = with(guard, cache)
	}
	g.GET("/movies", h.ListMovies, list...)

	admin := with(guard, middleware.RequireRole(model.RoleAdmin))
	g.POST("/movies", h.AddMovie, admin...)
	g.PUT("/movies/:id", h.UpdateMovie, admin...)
	g.DELETE("/movies/:id", h.DeleteMovie, admin...)
	g.POST("/movies/:id/showtimes", h.AddShowtime, admin...)
	g.PUT("/showtimes/:id", h.UpdateShowtime, admin...)
	g.DELETE("/showtimes/:id", h.DeleteShowtime, admin...)
}

// with appends extra to a copy of guard.
func with(guard []echo.MiddlewareFunc, extra ...echo.MiddlewareFunc) []echo.MiddlewareFunc {
	out := make([]echo.MiddlewareFunc, 0, len(guard)+len(extra))
	out = append(out, guard...)
	return append(out, extra...)
}
