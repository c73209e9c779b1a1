package middleware // middleware provides shared request processing for handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/showtime-booking/internal/model"
	"github.com/iliyamo/showtime-booking/internal/repository"
	"github.com/iliyamo/showtime-booking/internal/utils"
)

const (
	// SessionCookie carries the raw session id.
	SessionCookie = "sid"
	// SessionHeader is accepted instead of the cookie by non-browser clients.
	SessionHeader = "X-Session-ID"

	sessionKey = "session"
)

// SessionStore is the subset of the session repository the middleware needs.
type SessionStore interface {
	Get(ctx context.Context, id string) (model.Session, error)
	Delete(ctx context.Context, id string) error
}

// SessionAuth resolves the session of the request and stores it in the echo
// context. Requests without a live session are answered with 401. Expired
// sessions are deleted on sight.
func SessionAuth(store SessionStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := RawSessionID(c)
			if raw == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "login required"})
			}
			id := utils.HashSessionID(raw)
			ctx := c.Request().Context()

			sess, err := store.Get(ctx, id)
			if err != nil {
				if errors.Is(err, repository.ErrSessionNotFound) {
					return c.JSON(http.StatusUnauthorized, echo.Map{"error": "session expired"})
				}
				c.Logger().Errorf("session lookup failed: %v", err)
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": "session store unavailable"})
			}
			if sess.Expired(time.Now()) {
				_ = store.Delete(ctx, id)
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "session expired"})
			}

			c.Set(sessionKey, &sess)
			c.Set("user_id", sess.Username)
			c.Set("role", sess.Role)
			return next(c)
		}
	}
}

// RawSessionID returns the session id sent by the client, cookie first.
func RawSessionID(c echo.Context) string {
	if ck, err := c.Cookie(SessionCookie); err == nil && ck.Value != "" {
		return ck.Value
	}
	return c.Request().Header.Get(SessionHeader)
}

// SessionFrom returns the session stored by SessionAuth, or nil.
func SessionFrom(c echo.Context) *model.Session {
	s, _ := c.Get(sessionKey).(*model.Session)
	return s
}
