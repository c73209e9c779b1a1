package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/showtime-booking/internal/apiclient"
	"github.com/iliyamo/showtime-booking/internal/view"
)

// DashboardHandler summarises revenue for administrators.
type DashboardHandler struct {
	API       *apiclient.Client
	SeatPrice int
}

func NewDashboardHandler(api *apiclient.Client, seatPrice int) *DashboardHandler {
	return &DashboardHandler{API: api, SeatPrice: seatPrice}
}

func (h *DashboardHandler) Show(c echo.Context) error {
	rev, err := h.API.Revenue(apiCtx(c), session(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, view.BuildDashboard(rev, h.SeatPrice))
}
