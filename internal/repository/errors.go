// Package repository holds the stores behind the front end: Redis-backed
// sessions and seat-map drafts, and the MySQL receipts table. The sentinel
// errors below let handlers tell a missing record from a storage failure.
package repository

import "errors"

// ErrSessionNotFound is returned when a session id is unknown or expired.
// Handlers should translate this into an HTTP 401 response.
var ErrSessionNotFound = errors.New("session not found")

// ErrDraftNotFound is returned when no seat-map draft exists for a session
// and showtime, typically because the seat view was never opened or the draft
// expired. Handlers should translate this into an HTTP 404 response.
var ErrDraftNotFound = errors.New("seat map draft not found")

// ErrReceiptsDisabled is returned by receipt reads when no receipts database
// is configured.
var ErrReceiptsDisabled = errors.New("receipts disabled")
