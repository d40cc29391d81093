package api

import (
	"context"
	"net/url"

	"github.com/yndnr/iotlab-go/internal/cli/connection"
)

func profilePath(name string) string {
	return "profiles/" + url.PathEscape(name)
}

// GetProfiles lists the user's monitoring profiles.
func (c *Client) GetProfiles(ctx context.Context) (connection.Result, error) {
	return c.call(ctx, "profiles", connection.Get{})
}

// GetProfile returns one profile.
func (c *Client) GetProfile(ctx context.Context, name string) (connection.Result, error) {
	return c.call(ctx, profilePath(name), connection.Get{})
}

// AddProfile stores profile under name.
func (c *Client) AddProfile(ctx context.Context, name string, profile any) (connection.Result, error) {
	return c.call(ctx, profilePath(name), connection.PostJSON{Body: profile})
}

// DelProfile deletes a profile.
func (c *Client) DelProfile(ctx context.Context, name string) (connection.Result, error) {
	return c.call(ctx, profilePath(name), connection.Delete{})
}
