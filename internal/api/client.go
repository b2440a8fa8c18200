package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// ErrUnreachable marks transport failures: the call never produced a
// response. Service rejections (a response with a non-2xx status) are
// *ServiceError instead.
var ErrUnreachable = errors.New("could not reach the server")

// ServiceError is a non-2xx response from the backend. Message is the
// body's "message" field verbatim when the service sent one.
type ServiceError struct {
	Status  int
	Message string
}

func (e *ServiceError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("service error (status %d)", e.Status)
}

// IsTransport reports whether err is a connectivity failure rather than a
// service rejection.
func IsTransport(err error) bool {
	return errors.Is(err, ErrUnreachable)
}

// TokenSource supplies the current bearer credential, or "" when there is
// no session. The session store owns the credential; the client only reads.
type TokenSource func() string

// Client speaks the practice backend's JSON contract: identity, doctor
// directory and appointment persistence all live behind one base URL.
type Client struct {
	base   string
	http   *http.Client
	log    zerolog.Logger
	token  TokenSource
	writes *rate.Limiter
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) { c.log = l }
}

func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.token = ts }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		base: strings.TrimRight(baseURL, "/"),
		http: &http.Client{},
		log:  zerolog.Nop(),
		// every write is user-triggered, so this only smooths out scripted
		// bursts; reads are never limited
		writes: rate.NewLimiter(rate.Limit(5), 5),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	if method != http.MethodGet {
		if err := c.writes.Wait(ctx); err != nil {
			return err
		}
	}

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, rd)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-Id", uuid.New().String())
	if c.token != nil {
		if tok := c.token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	c.log.Debug().Str("method", method).Str("path", path).Msg("api call")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return reject(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// reject turns a non-2xx response into a ServiceError, lifting the body's
// optional {message} field.
func reject(resp *http.Response) error {
	se := &ServiceError{Status: resp.StatusCode}
	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		se.Message = body.Message
	}
	return se
}
