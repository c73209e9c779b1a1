package model

import "time"

// RoleAdmin is the role claim carried by administrator tokens.
const RoleAdmin = "admin"

// Session is the server-side state of a logged-in browser. It replaces the
// token the browser used to keep in local storage and is handed explicitly to
// every booking API call.
//
// Fields:
//  ID        – SHA-256 hex digest of the cookie value; the raw value is never stored.
//  Username  – username claim of the API token.
//  Role      – role claim of the API token ("user" or "admin").
//  Token     – bearer token issued by the booking API.
//  ExpiresAt – expiry of the token (and therefore the session).
//  CreatedAt – login time.
type Session struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// IsAdmin reports whether the session belongs to an administrator.
func (s *Session) IsAdmin() bool { return s != nil && s.Role == RoleAdmin }

// Expired reports whether the session is past its expiry at now.
func (s *Session) Expired(now time.Time) bool {
	return s == nil || !now.Before(s.ExpiresAt)
}
