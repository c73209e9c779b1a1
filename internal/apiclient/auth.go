package apiclient

import (
	"context"
	"net/http"
)

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login exchanges a username and password for an API bearer token.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	var out struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, nil, "login", http.MethodPost, "/auth/login", credentials{username, password}, &out); err != nil {
		return "", err
	}
	if out.Token == "" {
		return "", &APIError{Op: "login", StatusCode: http.StatusBadGateway, Message: "response carried no token"}
	}
	return out.Token, nil
}

// SignUp registers a new account.
func (c *Client) SignUp(ctx context.Context, username, password string) error {
	return c.do(ctx, nil, "signup", http.MethodPost, "/auth/signup", credentials{username, password}, nil)
}
