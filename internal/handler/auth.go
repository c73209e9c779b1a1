package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/showtime-booking/internal/apiclient"
	"github.com/iliyamo/showtime-booking/internal/config"
	"github.com/iliyamo/showtime-booking/internal/middleware"
	"github.com/iliyamo/showtime-booking/internal/model"
	"github.com/iliyamo/showtime-booking/internal/utils"
	"github.com/iliyamo/showtime-booking/internal/view"
)

type SessionStore interface {
	Save(ctx context.Context, s model.Session, ttl time.Duration) error
	Delete(ctx context.Context, id string) error
}

// DraftCleaner drops every seat-map draft of a session.
type DraftCleaner interface {
	DeleteAll(ctx context.Context, sessionID string) error
}

// AuthHandler logs users in against the booking API and keeps their token in
// a server-side session.
type AuthHandler struct {
	Cfg      config.Config
	API      *apiclient.Client
	Sessions SessionStore
	Drafts   DraftCleaner
	Now      func() time.Time
}

func NewAuthHandler(cfg config.Config, api *apiclient.Client, sessions SessionStore, drafts DraftCleaner) *AuthHandler {
	return &AuthHandler{Cfg: cfg, API: api, Sessions: sessions, Drafts: drafts, Now: time.Now}
}

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type meResp struct {
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	IsAdmin   bool      `json:"is_admin"`
	ExpiresAt time.Time `json:"expires_at"`
}

func meOf(s *model.Session) meResp {
	return meResp{Username: s.Username, Role: s.Role, IsAdmin: s.IsAdmin(), ExpiresAt: s.ExpiresAt}
}

// Login exchanges credentials for an API token and opens a session. The raw
// session id goes out as the sid cookie and the X-Session-ID header.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return badRequest(c, "username and password are required")
	}

	ctx := apiCtx(c)
	token, err := h.API.Login(ctx, req.Username, req.Password)
	if err != nil {
		return fail(c, err)
	}
	claims, err := utils.DecodeClaims(token)
	if err != nil {
		c.Logger().Warnf("login %s: %v", req.Username, err)
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "booking api returned an unusable token"})
	}

	now := h.now()
	if !claims.ExpiresAt.After(now) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "token already expired"})
	}
	expires := claims.ExpiresAt
	if limit := now.Add(h.Cfg.SessionTTL); h.Cfg.SessionTTL > 0 && limit.Before(expires) {
		expires = limit
	}
	username := claims.Username
	if username == "" {
		username = req.Username
	}

	raw, err := utils.NewSessionID()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "session id generation failed"})
	}
	sess := model.Session{
		ID:        utils.HashSessionID(raw),
		Username:  username,
		Role:      claims.Role,
		Token:     token,
		ExpiresAt: expires,
		CreatedAt: now,
	}
	if err := h.Sessions.Save(ctx, sess, expires.Sub(now)); err != nil {
		c.Logger().Errorf("save session: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save session failed"})
	}

	c.SetCookie(h.cookie(raw, expires))
	c.Response().Header().Set(middleware.SessionHeader, raw)
	return c.JSON(http.StatusOK, meOf(&sess))
}

// Register creates an account through the booking API. The user logs in
// afterwards.
func (h *AuthHandler) Register(c echo.Context) error {
	var form view.RegistrationForm
	if err := c.Bind(&form); err != nil {
		return badRequest(c, "invalid body")
	}
	if errs := form.Validate(); !errs.OK() {
		return invalid(c, errs)
	}
	if err := h.API.SignUp(apiCtx(c), strings.TrimSpace(form.Username), form.Password); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "account created"})
}

// Logout ends the session and closes every open seat view.
func (h *AuthHandler) Logout(c echo.Context) error {
	sess := session(c)
	ctx := c.Request().Context()
	if err := h.Sessions.Delete(ctx, sess.ID); err != nil {
		c.Logger().Errorf("delete session: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "logout failed"})
	}
	if h.Drafts != nil {
		if err := h.Drafts.DeleteAll(ctx, sess.ID); err != nil {
			c.Logger().Warnf("drop drafts of %s: %v", sess.Username, err)
		}
	}
	c.SetCookie(h.cookie("", time.Unix(0, 0)))
	return c.NoContent(http.StatusNoContent)
}

// Me describes the current session.
func (h *AuthHandler) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, meOf(session(c)))
}

func (h *AuthHandler) cookie(value string, expires time.Time) *http.Cookie {
	ck := &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   h.Cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
	if value == "" {
		ck.MaxAge = -1
	}
	return ck
}

func (h *AuthHandler) now() time.Time {
	if h.Now == nil {
		return time.Now()
	}
	return h.Now()
}
