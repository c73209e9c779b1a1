package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/showtime-booking/internal/handler"
	"github.com/iliyamo/showtime-booking/internal/middleware"
	"github.com/iliyamo/showtime-booking/internal/model"
)

// RegisterBooking registers the seat picker, the user's reservations and
// receipts, and the admin reservation reports and dashboard.
func RegisterBooking(g *echo.Group, s *handler.SeatHandler, r *handler.ReservationHandler, d *handler.DashboardHandler, guard ...echo.MiddlewareFunc) {
	g.GET("/showtimes/:id/seatmap", s.Open, guard...)
	g.POST("/showtimes/:id/seatmap/toggle", s.Toggle, guard...)
	g.DELETE("/showtimes/:id/seatmap", s.Close, guard...)
	g.POST("/showtimes/:id/reservations", s.Reserve, guard...)

	g.GET("/reservations", r.Mine, guard...)
	g.DELETE("/reservations/:id", r.Cancel, guard...)
	g.GET("/receipts", r.MyReceipts, guard...)

	admin := with(guard, middleware.RequireRole(model.RoleAdmin))
	g.GET("/admin/reservations", r.All, admin...)
	g.GET("/admin/movies/:id/reservations", r.PerMovie, admin...)
	g.GET("/admin/dashboard", d.Show, admin...)
}
