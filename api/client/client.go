package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/pkg/errors"
	"golang.org/x/oauth2"
)

const DefaultTimeout = 10 * time.Second

// StatusError is returned when the upstream answers with an error status and
// no error envelope, i.e. something other than a validation failure.
type StatusError struct {
	Method string
	URL    string
	Code   int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.URL, e.Code)
}

// TransportError wraps failures to reach the upstream or to read its answer.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

type Client struct {
	baseURL string
	http    *fiber.Client
	timeout time.Duration
	tokens  oauth2.TokenSource
}

type Option func(*Client)

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithTokenSource attaches an Authorization header built from the token
// source to every request.
func WithTokenSource(ts oauth2.TokenSource) Option {
	return func(c *Client) {
		c.tokens = ts
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &fiber.Client{},
		timeout: DefaultTimeout,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get requests path with params as query string. Empty values are left out.
func (c *Client) Get(ctx context.Context, path string, params map[string]string) (*Response, error) {
	url := c.url(path, params)

	log.Debugw("api request", "method", fiber.MethodGet, "url", url)

	return c.do(ctx, fiber.MethodGet, url, c.http.Get(url))
}

func (c *Client) Post(ctx context.Context, path string, body any) (*Response, error) {
	url := c.url(path, nil)

	log.Debugw("api request", "method", fiber.MethodPost, "url", url)

	return c.do(ctx, fiber.MethodPost, url, c.http.Post(url).JSON(body))
}

func (c *Client) url(path string, params map[string]string) string {
	url := c.baseURL + "/" + strings.TrimLeft(path, "/")

	if len(params) == 0 {
		return url
	}

	args := fiber.AcquireArgs()
	defer fiber.ReleaseArgs(args)

	for key, value := range params {
		if value == "" {
			continue
		}
		args.Set(key, value)
	}

	if args.Len() == 0 {
		return url
	}

	return url + "?" + args.String()
}

func (c *Client) do(ctx context.Context, method, url string, agent *fiber.Agent) (*Response, error) {
	if err := ctx.Err(); err != nil {
		fiber.ReleaseAgent(agent)
		return nil, &TransportError{Method: method, URL: url, Err: err}
	}

	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}
	agent.Timeout(timeout)
	agent.Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)

	if c.tokens != nil {
		token, err := c.tokens.Token()
		if err != nil {
			fiber.ReleaseAgent(agent)
			return nil, &TransportError{Method: method, URL: url, Err: errors.Wrap(err, "obtain api token")}
		}
		agent.Set(fiber.HeaderAuthorization, token.Type()+" "+token.AccessToken)
	}

	// the agent only knows its timeout, so cancellation is watched here
	done := make(chan agentResult, 1)
	go func() {
		code, body, errs := agent.Bytes()
		done <- agentResult{code: code, body: body, errs: errs}
	}()

	select {
	case <-ctx.Done():
		log.Debugw("api request abandoned", "method", method, "url", url, "error", ctx.Err())
		return nil, &TransportError{Method: method, URL: url, Err: ctx.Err()}
	case res := <-done:
		if len(res.errs) > 0 {
			return nil, &TransportError{Method: method, URL: url, Err: res.errs[0]}
		}
		return decode(method, url, res.code, res.body)
	}
}

type agentResult struct {
	code int
	body []byte
	errs []error
}

func decode(method, url string, code int, body []byte) (*Response, error) {
	res := &Response{}

	var decodeErr error
	if len(bytes.TrimSpace(body)) > 0 {
		decodeErr = json.Unmarshal(body, res)
	}

	if decodeErr == nil && res.HasErrors() {
		log.Debugw("api validation errors", "url", url, "status", code, "errors", len(res.Errors))
		return res, nil
	}

	if code >= fiber.StatusBadRequest {
		return nil, &StatusError{Method: method, URL: url, Code: code, Body: string(body)}
	}

	if decodeErr != nil {
		return nil, &TransportError{Method: method, URL: url, Err: errors.Wrap(decodeErr, "decode response")}
	}

	return res, nil
}
