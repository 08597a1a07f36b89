package api

import (
	"context"
	"net/url"

	"fintrack/internal/logging"
)

// LoginUser authenticates against the mock backend by fetching users
// filtered by username and comparing passwords client-side. A missing user
// or a wrong password both return (nil, nil): not-found is a result, not an
// error. Only transport and server failures come back on the error channel.
//
// The plaintext comparison is a mock-backend artifact, kept for
// compatibility; it is not an auth scheme.
func (c *Client) LoginUser(ctx context.Context, username, password string) (*User, error) {
	query := url.Values{"username": []string{username}}

	var users []User
	if err := c.get(ctx, "/users", query, &users); err != nil {
		logging.SessionError("login request failed: %v", err)
		return nil, err
	}

	if len(users) == 0 {
		logging.Session("login: no user matches %q", username)
		return nil, nil
	}

	user := users[0]
	if user.Password != password {
		logging.Session("login: password mismatch for %q", username)
		return nil, nil
	}

	logging.Session("login: authenticated %q (id=%s)", username, user.ID)
	return &user, nil
}
