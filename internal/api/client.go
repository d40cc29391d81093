package api

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/yndnr/iotlab-go/internal/cli/connection"
)

// DefaultURL is the public testbed API.
const DefaultURL = "https://www.iot-lab.info/rest/"

// Doer performs one HTTP call. *connection.Transport implements it.
type Doer interface {
	Do(ctx context.Context, rawURL string, req connection.Request, creds *connection.Credentials) (connection.Result, error)
}

// Client exposes one method per testbed REST operation.
type Client struct {
	base  *url.URL
	creds *connection.Credentials
	t     Doer
}

// New creates a Client rooted at baseURL. Relative operation paths are
// resolved against it, so a missing trailing slash is added.
func New(baseURL string, creds *connection.Credentials, t Doer) (*Client, error) {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse api url %q: %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("api url %q: scheme must be http or https", baseURL)
	}
	return &Client{base: u, creds: creds, t: t}, nil
}

// BaseURL returns the resolved API root.
func (c *Client) BaseURL() string {
	return c.base.String()
}

func (c *Client) resolve(path string) (string, error) {
	ref, err := url.Parse(path)
	if err != nil {
		return "", fmt.Errorf("parse path %q: %w", path, err)
	}
	return c.base.ResolveReference(ref).String(), nil
}

// call sends an authenticated request.
func (c *Client) call(ctx context.Context, path string, req connection.Request) (connection.Result, error) {
	return c.do(ctx, path, req, c.creds)
}

func (c *Client) do(ctx context.Context, path string, req connection.Request, creds *connection.Credentials) (connection.Result, error) {
	u, err := c.resolve(path)
	if err != nil {
		return nil, err
	}
	return c.t.Do(ctx, u, req, creds)
}
