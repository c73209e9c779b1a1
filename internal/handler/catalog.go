package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/showtime-booking/internal/apiclient"
	"github.com/iliyamo/showtime-booking/internal/model"
	"github.com/iliyamo/showtime-booking/internal/view"
)

// CatalogHandler serves the movie list and the admin catalog forms.
type CatalogHandler struct {
	API *apiclient.Client
	Loc *time.Location
	// Purge, when set, drops cached catalog responses after a write.
	Purge func(ctx context.Context) error
}

func NewCatalogHandler(api *apiclient.Client, loc *time.Location, purge func(context.Context) error) *CatalogHandler {
	return &CatalogHandler{API: api, Loc: loc, Purge: purge}
}

// ListMovies returns one card per movie with its showtimes grouped by day.
func (h *CatalogHandler) ListMovies(c echo.Context) error {
	ctx, sess := apiCtx(c), session(c)
	movies, err := h.API.ListMovies(ctx, sess)
	if err != nil {
		return fail(c, err)
	}
	showtimes, err := h.API.ListShowtimes(ctx, sess)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, view.MovieCards(movies, showtimes, h.Loc))
}

func (h *CatalogHandler) AddMovie(c echo.Context) error {
	in, ok, err := h.bindMovie(c)
	if !ok {
		return err
	}
	m, err := h.API.AddMovie(apiCtx(c), session(c), in)
	if err != nil {
		return fail(c, err)
	}
	h.purge(c)
	return c.JSON(http.StatusCreated, m)
}

func (h *CatalogHandler) UpdateMovie(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "invalid movie id")
	}
	in, ok, err := h.bindMovie(c)
	if !ok {
		return err
	}
	m, err := h.API.UpdateMovie(apiCtx(c), session(c), id, in)
	if err != nil {
		return fail(c, err)
	}
	h.purge(c)
	return c.JSON(http.StatusOK, m)
}

func (h *CatalogHandler) DeleteMovie(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "invalid movie id")
	}
	if err := h.API.DeleteMovie(apiCtx(c), session(c), id); err != nil {
		return fail(c, err)
	}
	h.purge(c)
	return c.NoContent(http.StatusNoContent)
}

// AddShowtime schedules a showtime for the movie in the path. Date and time
// are read in the display timezone.
func (h *CatalogHandler) AddShowtime(c echo.Context) error {
	movieID, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "invalid movie id")
	}
	var form view.ShowtimeForm
	if err := c.Bind(&form); err != nil {
		return badRequest(c, "invalid body")
	}
	in, errs := form.Validate(movieID, h.Loc)
	if !errs.OK() {
		return invalid(c, errs)
	}
	st, err := h.API.AddShowtime(apiCtx(c), session(c), in)
	if err != nil {
		return fail(c, err)
	}
	h.purge(c)
	return c.JSON(http.StatusCreated, st)
}

type showtimeUpdateReq struct {
	MovieID uint64 `json:"movie_id"`
	view.ShowtimeForm
}

func (h *CatalogHandler) UpdateShowtime(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "invalid showtime id")
	}
	var req showtimeUpdateReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	in, errs := req.Validate(req.MovieID, h.Loc)
	if req.MovieID == 0 {
		errs["movie_id"] = "Movie is required"
	}
	if !errs.OK() {
		return invalid(c, errs)
	}
	if err := h.API.UpdateShowtime(apiCtx(c), session(c), id, in); err != nil {
		return fail(c, err)
	}
	h.purge(c)
	return c.JSON(http.StatusOK, model.Showtime{
		ID:        id,
		MovieID:   in.MovieID,
		StartTime: in.StartTime,
		Capacity:  in.Capacity,
	})
}

func (h *CatalogHandler) DeleteShowtime(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "invalid showtime id")
	}
	if err := h.API.DeleteShowtime(apiCtx(c), session(c), id); err != nil {
		return fail(c, err)
	}
	h.purge(c)
	return c.NoContent(http.StatusNoContent)
}

// bindMovie reads and validates a movie form. When ok is false the response
// has already been written and err is what the handler returns.
func (h *CatalogHandler) bindMovie(c echo.Context) (model.MovieInput, bool, error) {
	var raw model.MovieInput
	if err := c.Bind(&raw); err != nil {
		return raw, false, badRequest(c, "invalid body")
	}
	in, errs := view.NormalizeMovie(raw)
	if !errs.OK() {
		return in, false, invalid(c, errs)
	}
	return in, true, nil
}

func (h *CatalogHandler) purge(c echo.Context) {
	if h.Purge == nil {
		return
	}
	if err := h.Purge(c.Request().Context()); err != nil {
		c.Logger().Warnf("purge catalog cache: %v", err)
	}
}
