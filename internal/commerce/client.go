package commerce

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

const (
	defaultTimeout = 30 * time.Second
	getRetries     = 2
)

// Option is custom configuration of Client.
type Option func(c *Client)

// Client is commerce admin API client.
type Client struct {
	http   *resty.Client
	logger zerolog.Logger
}

// NewClient returns new Client of admin API served at baseURL.
func NewClient(baseURL string, ops ...Option) *Client {
	c := &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(defaultTimeout).
			SetHeader("Accept", "application/json").
			SetRetryCount(getRetries).
			SetRetryWaitTime(200 * time.Millisecond).
			AddRetryCondition(func(r *resty.Response, err error) bool {
				if r == nil || r.Request == nil || r.Request.Method != http.MethodGet {
					return false
				}
				return err != nil || r.StatusCode() >= http.StatusInternalServerError
			}),
		logger: zerolog.Nop(),
	}
	c.http.SetLogger(restyLogger{logger: c.logger})

	for _, op := range ops {
		op(c)
	}

	return c
}

// WithAPIKey authenticates requests with secret admin API key.
func WithAPIKey(key string) Option {
	return func(c *Client) {
		c.http.SetBasicAuth(key, "")
	}
}

// WithTimeout sets timeout of single request.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.http.SetTimeout(timeout)
	}
}

// WithHTTPClient sets underlying transport of Client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.http.SetTransport(client.Transport)
	}
}

// WithLogger sets Client's logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
		c.http.SetLogger(restyLogger{logger: logger})
	}
}

// Login exchanges admin user credentials for bearer token used by following requests.
func (c *Client) Login(ctx context.Context, email, password string) error {
	var res authResponse
	err := c.do(ctx, http.MethodPost, "/auth/user/emailpass", authRequest{Email: email, Password: password}, &res)
	if err != nil {
		return fmt.Errorf("can't log in: %w", err)
	}

	c.http.SetAuthToken(res.Token)

	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body, result any) error {
	apiErr := &APIError{}
	req := c.http.R().
		SetContext(ctx).
		SetError(apiErr)
	if body != nil {
		req.SetBody(body)
	}
	if result != nil {
		req.SetResult(result)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("can't send %s %s request: %w", method, path, err)
	}

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode()).
		Dur("took", resp.Time()).
		Msg("commerce api call")

	if resp.IsError() {
		apiErr.Status = resp.StatusCode()
		return apiErr
	}

	return nil
}
