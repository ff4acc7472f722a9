//go:generate mockgen -source=client.go -destination=client_mock.go -package=api
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"

	"github.com/google/uuid"

	"lookout/internal/app/errors"
	"lookout/internal/config"
	"lookout/internal/config/logger"
)

const requestIDHeader = "X-Request-ID"

// StatusError is returned for any non-2xx response other than 401
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return e.Message
}

// Unwrap lets callers match every status failure with errors.ErrRequestFailed
func (e *StatusError) Unwrap() error {
	return errors.ErrRequestFailed
}

// Client talks to the monitor REST API
type Client interface {
	FetchLogs(ctx context.Context, taskID int, fromPos int64) (*LogIncrement, error)
	TailLogs(ctx context.Context, taskID, offsetLines, limitLines int) (*LogPage, error)
	ClearLogs(ctx context.Context, taskID int) error
	ListTasks(ctx context.Context) ([]Task, error)
	CheckAuth(ctx context.Context, username, password string) error
	SetCredentials(username, password string)
	OnUnauthorized(fn func())
}

type client struct {
	base     *url.URL
	http     *http.Client
	log      logger.Logger
	mu       sync.RWMutex
	username string
	password string
	onUnauth func()
}

// NewClient creates a client for the configured monitor server
func NewClient(cfg *config.Config, log logger.Logger) (Client, error) {
	base, err := url.Parse(cfg.Server.URL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidServerURL, err)
	}

	return &client{
		base:     base,
		http:     &http.Client{Timeout: cfg.Server.Timeout},
		log:      log.WithComponent("API"),
		username: cfg.Server.Username,
		password: cfg.Server.Password,
	}, nil
}

// SetCredentials replaces the basic-auth credentials sent with each request
func (c *client) SetCredentials(username, password string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.username = username
	c.password = password
}

// OnUnauthorized registers the callback invoked whenever the server answers 401
func (c *client) OnUnauthorized(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.onUnauth = fn
}

// param is one query value
type param struct {
	key   string
	value string
}

func intParam(key string, v int) param {
	return param{key: key, value: strconv.Itoa(v)}
}

func int64Param(key string, v int64) param {
	return param{key: key, value: strconv.FormatInt(v, 10)}
}

// encodeParams builds a query string, sorted by key
func encodeParams(params []param) string {
	values := url.Values{}
	for _, p := range params {
		values.Set(p.key, p.value)
	}

	return values.Encode()
}

// request describes one call against the monitor
type request struct {
	method string
	path   string
	params []param
	body   any
	out    any
	// login probes report 401 as a rejection instead of ending the session
	login bool
}

// do performs one request and decodes the JSON body into out when both are present
func (c *client) do(ctx context.Context, r request) error {
	method, path, body, out := r.method, r.path, r.body, r.out

	endpoint := c.base.JoinPath(path)
	endpoint.RawQuery = encodeParams(r.params)

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: %w", errors.ErrFailedToCreateRequest, err)
		}

		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), reader)
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrFailedToCreateRequest, err)
	}

	requestID := uuid.NewString()

	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, requestID)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.mu.RLock()
	if c.username != "" || c.password != "" {
		req.SetBasicAuth(c.username, c.password)
	}
	c.mu.RUnlock()

	c.log.Debug().Str("request_id", requestID).Msgf("%s %s", method, endpoint.Path)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		if !r.login {
			c.notifyUnauthorized()
		}

		return errors.ErrUnauthorized
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return statusError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && err != io.EOF {
		return fmt.Errorf("%w: %w", errors.ErrFailedToDecodeBody, err)
	}

	return nil
}

func (c *client) notifyUnauthorized() {
	c.mu.RLock()
	fn := c.onUnauth
	c.mu.RUnlock()

	if fn != nil {
		fn()
	}
}

// statusError prefers the server's detail message over the bare status code
func statusError(resp *http.Response) error {
	var payload errorBody
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Detail != "" {
		return &StatusError{Code: resp.StatusCode, Message: payload.Detail}
	}

	return &StatusError{Code: resp.StatusCode, Message: fmt.Sprintf("HTTP error! status: %d", resp.StatusCode)}
}
