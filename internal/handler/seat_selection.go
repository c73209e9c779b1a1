package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/showtime-booking/internal/service"
	"github.com/iliyamo/showtime-booking/internal/view"
)

// SeatHandler exposes the seat picker of a showtime.
type SeatHandler struct {
	Seats *service.SeatSelection
}

func NewSeatHandler(seats *service.SeatSelection) *SeatHandler {
	return &SeatHandler{Seats: seats}
}

// Open builds the seat map from current availability and starts a new
// selection. Reopening discards the previous selection.
func (h *SeatHandler) Open(c echo.Context) error {
	showtimeID, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "invalid showtime id")
	}
	movieID, err := strconv.ParseUint(c.QueryParam("movie_id"), 10, 64)
	if err != nil || movieID == 0 {
		return badRequest(c, "movie_id is required")
	}
	d, err := h.Seats.Open(apiCtx(c), session(c), movieID, showtimeID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, view.NewSeatPicker(d.MovieID, d.ShowtimeID, d.Map))
}

type toggleReq struct {
	Seat string `json:"seat"`
}

func (h *SeatHandler) Toggle(c echo.Context) error {
	showtimeID, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "invalid showtime id")
	}
	var req toggleReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	seat := strings.TrimSpace(req.Seat)
	if seat == "" {
		return badRequest(c, "seat is required")
	}
	d, err := h.Seats.Toggle(c.Request().Context(), session(c), showtimeID, seat)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, view.NewSeatPicker(d.MovieID, d.ShowtimeID, d.Map))
}

type reserveResp struct {
	ReservationID uint64   `json:"reservation_id"`
	Seats         []string `json:"seats"`
	Message       string   `json:"message,omitempty"`
}

// Reserve submits the current selection.
func (h *SeatHandler) Reserve(c echo.Context) error {
	showtimeID, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "invalid showtime id")
	}
	res, seats, err := h.Seats.Submit(apiCtx(c), session(c), showtimeID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, reserveResp{ReservationID: res.ReservationID, Seats: seats, Message: res.Message})
}

// Close discards the selection without reserving.
func (h *SeatHandler) Close(c echo.Context) error {
	showtimeID, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "invalid showtime id")
	}
	if err := h.Seats.Discard(c.Request().Context(), session(c), showtimeID); err != nil {
		return fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
