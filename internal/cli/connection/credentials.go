package connection

import "log/slog"

// Credentials is a username and password pair sent as HTTP basic auth.
// It is immutable once built.
type Credentials struct {
	username string
	password string
}

// NewCredentials builds credentials for basic auth.
func NewCredentials(username, password string) *Credentials {
	return &Credentials{username: username, password: password}
}

// Username returns the account name.
func (c *Credentials) Username() string { return c.username }

// Password returns the account password.
func (c *Credentials) Password() string { return c.password }

// LogValue keeps the password out of structured logs.
func (c *Credentials) LogValue() slog.Value {
	if c == nil {
		return slog.StringValue("<none>")
	}
	return slog.StringValue(c.username + ":***")
}
