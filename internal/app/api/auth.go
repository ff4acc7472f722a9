package api

import (
	"context"
	"fmt"
	"net/http"

	"lookout/internal/app/errors"
)

// CheckAuth verifies the credentials against the monitor's auth endpoint
func (c *client) CheckAuth(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return errors.ErrCredentialsRequired
	}

	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/auth/status",
		body:   credentials{Username: username, Password: password},
		login:  true,
	})
	if err == nil {
		return nil
	}

	var statusErr *StatusError
	if errors.Is(err, errors.ErrUnauthorized) || errors.As(err, &statusErr) {
		return fmt.Errorf("%w: %w", errors.ErrLoginRejected, err)
	}

	return err
}
