package apiclient

import (
	"context"
	"net/http"
	"strconv"

	"github.com/iliyamo/showtime-booking/internal/model"
)

func (c *Client) ListMovies(ctx context.Context, sess *model.Session) ([]model.Movie, error) {
	movies := []model.Movie{}
	if err := c.do(ctx, sess, "list movies", http.MethodGet, "/movies", nil, &movies); err != nil {
		return nil, err
	}
	return movies, nil
}

func (c *Client) AddMovie(ctx context.Context, sess *model.Session, in model.MovieInput) (model.Movie, error) {
	var m model.Movie
	err := c.do(ctx, sess, "add movie", http.MethodPost, "/movies/add", in, &m)
	return m, err
}

func (c *Client) UpdateMovie(ctx context.Context, sess *model.Session, id uint64, in model.MovieInput) (model.Movie, error) {
	var m model.Movie
	path := "/movies/update/" + strconv.FormatUint(id, 10)
	if err := c.do(ctx, sess, "update movie", http.MethodPut, path, in, &m); err != nil {
		return model.Movie{}, err
	}
	if m.ID == 0 {
		// older API versions answer with a message only
		m = model.Movie{ID: id, Title: in.Title, Description: in.Description, Genre: in.Genre, PosterImage: in.PosterImage}
	}
	return m, nil
}

func (c *Client) DeleteMovie(ctx context.Context, sess *model.Session, id uint64) error {
	return c.do(ctx, sess, "delete movie", http.MethodDelete, "/movies/delete/"+strconv.FormatUint(id, 10), nil, nil)
}
