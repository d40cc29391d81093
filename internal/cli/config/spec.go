package config

import "time"

// CLIConfig is the resolved configuration of one iotlab-cli run.
type CLIConfig struct {
	API     APIConfig     `koanf:"api" yaml:"api"`
	Auth    AuthConfig    `koanf:"auth" yaml:"auth"`
	Output  string        `koanf:"output" yaml:"output"` // json, yaml, table
	Verbose bool          `koanf:"verbose" yaml:"verbose"`
	HTTP    HTTPConfig    `koanf:"http" yaml:"http"`
	Metrics MetricsConfig `koanf:"metrics" yaml:"metrics"`
}

// APIConfig locates the testbed REST service.
type APIConfig struct {
	URL string `koanf:"url" yaml:"url"`
}

// AuthConfig holds the account used for basic auth.
type AuthConfig struct {
	User     string `koanf:"user" yaml:"user"`
	Password string `koanf:"password" yaml:"-"`
}

// HTTPConfig tunes the transport.
type HTTPConfig struct {
	// Timeout bounds each request; 0 means no limit.
	Timeout time.Duration `koanf:"timeout" yaml:"timeout"`
	// CACert is a PEM bundle trusted in addition to the system roots.
	CACert string `koanf:"ca_cert" yaml:"ca_cert"`
	// MaxRPS throttles requests per second; 0 means unlimited.
	MaxRPS float64 `koanf:"max_rps" yaml:"max_rps"`
}

// MetricsConfig controls the metrics dump written at exit.
type MetricsConfig struct {
	File string `koanf:"file" yaml:"file"`
}

// Default returns the default CLI configuration.
func Default() *CLIConfig {
	return &CLIConfig{
		API:    APIConfig{URL: "https://www.iot-lab.info/rest/"},
		Output: "json",
	}
}
