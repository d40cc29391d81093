package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/yaml"

	"github.com/yndnr/iotlab-go/internal/cli/connection"
	"github.com/yndnr/iotlab-go/internal/core/domain"
	"github.com/yndnr/iotlab-go/internal/infra/confloader"
)

// Files read from the home directory.
const (
	CLIConfigFile  = ".iotlab/cli.yaml"
	APIURLFile     = ".iotlab.api-url"
	CredentialFile = ".iotlabrc"
)

// LoadOptions controls where configuration is read from.
type LoadOptions struct {
	// HomeDir defaults to the user's home directory.
	HomeDir string
	// ConfigFile is an explicit --config path. Unlike the default
	// ~/.iotlab/cli.yaml it must exist.
	ConfigFile string
	// Flags holds command-line values keyed like the config ("api.url").
	// Nil values are skipped.
	Flags map[string]any
}

// Load resolves the configuration. Later sources win:
//
//  1. built-in defaults
//  2. YAML CLI config
//  3. first line of ~/.iotlab.api-url
//  4. ~/.iotlabrc ("user:base64(password)")
//  5. IOTLAB_* environment variables
//  6. flags
func Load(opts LoadOptions) (*CLIConfig, error) {
	home := opts.HomeDir
	if home == "" {
		h, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("locate home directory: %w", err)
		}
		home = h
	}

	l := confloader.NewLoader(
		confloader.WithEnvAlias("IOTLAB_USERNAME", "auth.user"),
		confloader.WithEnvAlias("IOTLAB_PASSWORD", "auth.password"),
		confloader.WithEnvAlias("IOTLAB_HTTP_CA_CERT", "http.ca_cert"),
		confloader.WithEnvAlias("IOTLAB_HTTP_MAX_RPS", "http.max_rps"),
	)

	def := Default()
	if err := l.LoadMap(map[string]any{
		"api.url": def.API.URL,
		"output":  def.Output,
	}); err != nil {
		return nil, err
	}

	if opts.ConfigFile != "" {
		if err := l.LoadFile(opts.ConfigFile); err != nil {
			return nil, err
		}
	} else if err := l.LoadOptionalFile(filepath.Join(home, CLIConfigFile), yaml.Parser()); err != nil {
		return nil, err
	}

	if err := l.LoadOptionalFile(filepath.Join(home, APIURLFile), confloader.FirstLineParser{Key: "api.url"}); err != nil {
		return nil, err
	}
	rc := confloader.CredentialsParser{UserKey: "auth.user", PasswordKey: "auth.password"}
	if err := l.LoadOptionalFile(filepath.Join(home, CredentialFile), rc); err != nil {
		return nil, err
	}

	if err := l.LoadEnv(); err != nil {
		return nil, err
	}
	if err := l.LoadMap(opts.Flags); err != nil {
		return nil, err
	}

	cfg := &CLIConfig{}
	if err := l.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// Credentials returns the configured account, or nil when no user is set.
func (c *CLIConfig) Credentials() *connection.Credentials {
	if c.Auth.User == "" {
		return nil
	}
	return connection.NewCredentials(c.Auth.User, c.Auth.Password)
}

// RequireCredentials is Credentials for operations that need an account.
func (c *CLIConfig) RequireCredentials() (*connection.Credentials, error) {
	if c.Auth.User == "" || c.Auth.Password == "" {
		return nil, domain.ErrMissingCredentials.WithDetails(
			"use --user/--password, IOTLAB_USERNAME/IOTLAB_PASSWORD or ~/" + CredentialFile)
	}
	return c.Credentials(), nil
}
