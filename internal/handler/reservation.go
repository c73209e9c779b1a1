package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/showtime-booking/internal/apiclient"
	"github.com/iliyamo/showtime-booking/internal/model"
)

type ReceiptLister interface {
	ListByUsername(ctx context.Context, username string, limit int) ([]model.Receipt, error)
}

// ReservationHandler lists and cancels reservations held by the booking API
// and serves the receipts recorded locally.
type ReservationHandler struct {
	API   *apiclient.Client
	Local ReceiptLister
}

func NewReservationHandler(api *apiclient.Client, receipts ReceiptLister) *ReservationHandler {
	return &ReservationHandler{API: api, Local: receipts}
}

func (h *ReservationHandler) Mine(c echo.Context) error {
	list, err := h.API.MyReservations(apiCtx(c), session(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *ReservationHandler) Cancel(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "invalid reservation id")
	}
	if err := h.API.CancelReservation(apiCtx(c), session(c), id); err != nil {
		return fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// All lists every reservation. Admin only.
func (h *ReservationHandler) All(c echo.Context) error {
	list, err := h.API.AllReservations(apiCtx(c), session(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

// PerMovie reports reserved seat totals for a movie. Admin only.
func (h *ReservationHandler) PerMovie(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "invalid movie id")
	}
	list, err := h.API.ReservationsPerMovie(apiCtx(c), session(c), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

// MyReceipts lists the local receipts of the current user, newest first.
// ?limit= caps the result (default 50).
func (h *ReservationHandler) MyReceipts(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	list, err := h.Local.ListByUsername(c.Request().Context(), session(c).Username, limit)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, list)
}
