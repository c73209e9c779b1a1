package middleware

import "github.com/labstack/echo/v4"

// currentUserID names the caller for rate-limit keys: the session username
// when SessionAuth ran, "anon" otherwise.
func currentUserID(c echo.Context) string {
	if s := SessionFrom(c); s != nil && s.Username != "" {
		return s.Username
	}
	if v, ok := c.Get("user_id").(string); ok && v != "" {
		return v
	}
	return "anon"
}
