package handler // handler holds the echo handlers of the booking front end

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/showtime-booking/internal/apiclient"
	"github.com/iliyamo/showtime-booking/internal/middleware"
	"github.com/iliyamo/showtime-booking/internal/model"
	"github.com/iliyamo/showtime-booking/internal/repository"
	"github.com/iliyamo/showtime-booking/internal/service"
	"github.com/iliyamo/showtime-booking/internal/view"
)

// errorStatus maps booking API kinds and local sentinels onto HTTP statuses.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrNoSeatsSelected):
		return http.StatusBadRequest
	case errors.Is(err, repository.ErrDraftNotFound):
		return http.StatusNotFound
	case errors.Is(err, repository.ErrSessionNotFound):
		return http.StatusUnauthorized
	case errors.Is(err, repository.ErrReceiptsDisabled):
		return http.StatusServiceUnavailable
	case errors.Is(err, apiclient.ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, apiclient.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, apiclient.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, apiclient.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apiclient.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, apiclient.ErrUpstream):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// fail writes err as {"error": msg}. Messages from the booking API are passed
// through for client errors; everything else gets a generic text and a log line.
func fail(c echo.Context, err error) error {
	status := errorStatus(err)
	msg := http.StatusText(status)

	var apiErr *apiclient.APIError
	switch {
	case errors.Is(err, repository.ErrDraftNotFound):
		msg = "seat map is not open for this showtime"
	case errors.Is(err, service.ErrNoSeatsSelected), errors.Is(err, repository.ErrReceiptsDisabled):
		msg = err.Error()
	case errors.As(err, &apiErr) && status < 500 && apiErr.Message != "":
		msg = apiErr.Message
	}
	if status >= 500 {
		c.Logger().Errorf("%s %s: %v", c.Request().Method, c.Path(), err)
	}
	return c.JSON(status, echo.Map{"error": msg})
}

func invalid(c echo.Context, errs view.FieldErrors) error {
	return c.JSON(http.StatusBadRequest, echo.Map{"error": "validation failed", "fields": errs})
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
}

// paramID parses a positive numeric path parameter.
func paramID(c echo.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	return id, err == nil && id > 0
}

// apiCtx carries the request id of the incoming request onto booking API calls.
func apiCtx(c echo.Context) context.Context {
	ctx := c.Request().Context()
	if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
		return apiclient.WithRequestID(ctx, id)
	}
	return ctx
}

func session(c echo.Context) *model.Session { return middleware.SessionFrom(c) }
