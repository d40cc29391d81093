package confloader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// DefaultEnvPrefix is the default environment variable prefix.
const DefaultEnvPrefix = "IOTLAB_"

// Loader loads configuration from multiple sources. Each Load* call merges
// on top of what is already loaded, so the call order is the priority order.
type Loader struct {
	k          *koanf.Koanf
	envPrefix  string
	envAliases map[string]string
}

// Option is a function that configures the Loader.
type Option func(*Loader)

// WithEnvAlias maps a full environment variable name to a config key,
// bypassing the default PREFIX_A_B -> a.b transformation.
func WithEnvAlias(name, key string) Option {
	return func(l *Loader) {
		l.envAliases[name] = key
	}
}

// NewLoader creates a new configuration loader.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		k:          koanf.New("."),
		envPrefix:  DefaultEnvPrefix,
		envAliases: map[string]string{},
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// LoadFile loads configuration from a YAML file. A missing file is an error.
func (l *Loader) LoadFile(path string) error {
	if path == "" {
		return nil
	}

	if err := l.k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("load file %s: %w", path, err)
	}

	return nil
}

// LoadOptionalFile loads path with the given parser and silently skips
// the file when it does not exist.
func (l *Loader) LoadOptionalFile(path string, p koanf.Parser) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	if err := l.k.Load(file.Provider(path), p); err != nil {
		return fmt.Errorf("load file %s: %w", path, err)
	}

	return nil
}

// LoadEnv loads configuration from environment variables.
// IOTLAB_API_URL becomes api.url unless an alias says otherwise.
// Empty variables are treated as unset.
func (l *Loader) LoadEnv() error {
	cb := func(key, value string) (string, any) {
		if value == "" {
			return "", nil
		}
		if alias, ok := l.envAliases[key]; ok {
			return alias, value
		}
		k := strings.TrimPrefix(key, l.envPrefix)
		k = strings.ToLower(k)
		k = strings.ReplaceAll(k, "_", ".")
		return k, value
	}

	if err := l.k.Load(env.ProviderWithValue(l.envPrefix, ".", cb), nil); err != nil {
		return fmt.Errorf("load env: %w", err)
	}

	return nil
}

// LoadMap loads configuration from a flat map of dotted keys
// (useful for flags or testing).
func (l *Loader) LoadMap(data map[string]any) error {
	if err := l.k.Load(mapProvider(data), nil); err != nil {
		return fmt.Errorf("load map: %w", err)
	}
	return nil
}

// Unmarshal unmarshals the loaded configuration into the target struct.
// Uses koanf tags for struct field mapping.
func (l *Loader) Unmarshal(target any) error {
	return l.k.Unmarshal("", target)
}

// GetString returns a string value from the configuration.
func (l *Loader) GetString(key string) string {
	return l.k.String(key)
}

// Exists reports whether key has been set by any source.
func (l *Loader) Exists(key string) bool {
	return l.k.Exists(key)
}
