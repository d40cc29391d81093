package api

import (
	"context"
	"net/url"

	"github.com/yndnr/iotlab-go/internal/cli/connection"
)

// GetSites lists the testbed sites. No credentials are sent.
func (c *Client) GetSites(ctx context.Context) (connection.Result, error) {
	return c.do(ctx, "experiments?sites", connection.Get{}, nil)
}

// GetResources lists testbed nodes, or their ids when listID is set,
// optionally restricted to one site.
func (c *Client) GetResources(ctx context.Context, listID bool, site string) (connection.Result, error) {
	path := "experiments?resources"
	if listID {
		path = "experiments?id"
	}
	if site != "" {
		path += "&site=" + url.QueryEscape(site)
	}
	return c.call(ctx, path, connection.Get{})
}
