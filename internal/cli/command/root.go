package command

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/urfave/cli/v2"
	"golang.org/x/time/rate"

	"github.com/yndnr/iotlab-go/internal/api"
	"github.com/yndnr/iotlab-go/internal/cli/config"
	"github.com/yndnr/iotlab-go/internal/cli/connection"
	"github.com/yndnr/iotlab-go/internal/cli/output"
	"github.com/yndnr/iotlab-go/internal/infra/buildinfo"
	"github.com/yndnr/iotlab-go/internal/infra/shutdown"
	"github.com/yndnr/iotlab-go/internal/infra/tlsroots"
	"github.com/yndnr/iotlab-go/internal/telemetry/logger"
	"github.com/yndnr/iotlab-go/internal/telemetry/metric"
)

const runtimeKey = "runtime"

// hookTimeout bounds the exit hooks (metrics file).
const hookTimeout = 5 * time.Second

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "iotlab-cli",
		Usage:   "Control nodes and experiments of an IoT testbed",
		Version: buildinfo.String(),
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			NodeCommand(),
			ExperimentCommand(),
			ProfileCommand(),
			ResourcesCommand(),
			SitesCommand(),
		},
		// Node lists such as "grenoble,m3,1-5" contain commas.
		DisableSliceFlagSeparator: true,
		Before:                    before,
		After:                     after,
	}
}

// globalFlags returns the global CLI flags. Environment variables and
// dotfiles are resolved by the config package, not by the flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "user",
			Aliases: []string{"u"},
			Usage:   "testbed account name",
		},
		&cli.StringFlag{
			Name:    "password",
			Aliases: []string{"p"},
			Usage:   "testbed account password",
		},
		&cli.StringFlag{
			Name:  "api-url",
			Usage: "REST API root (default " + api.DefaultURL + ")",
		},
		&cli.StringFlag{
			Name:  "config",
			Usage: "YAML config file (default ~/" + config.CLIConfigFile + ")",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: json, yaml, table",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"V"},
			Usage:   "Log requests to stderr",
		},
		&cli.DurationFlag{
			Name:  "timeout",
			Usage: "Per-request timeout (0 waits forever)",
		},
		&cli.StringFlag{
			Name:  "ca-cert",
			Usage: "PEM bundle of extra trusted CAs",
		},
		&cli.Float64Flag{
			Name:  "max-rps",
			Usage: "Maximum requests per second (0 is unlimited)",
		},
		&cli.StringFlag{
			Name:  "metrics-file",
			Usage: "Write request metrics in Prometheus text format to this file at exit",
		},
	}
}

// flagKeys maps global flags to configuration keys.
var flagKeys = map[string]string{
	"user":         "auth.user",
	"password":     "auth.password",
	"api-url":      "api.url",
	"output":       "output",
	"verbose":      "verbose",
	"timeout":      "http.timeout",
	"ca-cert":      "http.ca_cert",
	"max-rps":      "http.max_rps",
	"metrics-file": "metrics.file",
}

// flagOverrides returns the explicitly set global flags keyed for config.Load.
func flagOverrides(c *cli.Context) map[string]any {
	m := make(map[string]any, len(flagKeys))
	for name, key := range flagKeys {
		if c.IsSet(name) {
			m[key] = c.Value(name)
		}
	}
	return m
}

// runtime is the per-invocation state built by the Before hook.
type runtime struct {
	cfg      *config.CLIConfig
	format   output.Format
	metrics  *metric.Registry
	shutdown *shutdown.Handler
	ctx      context.Context
	stop     context.CancelFunc
}

func before(c *cli.Context) error {
	cfg, err := config.Load(config.LoadOptions{
		ConfigFile: c.String("config"),
		Flags:      flagOverrides(c),
	})
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	level := "warn"
	if cfg.Verbose {
		level = "debug"
	}
	logger.SetDefault(logger.New(logger.Config{Level: level, Format: "text", Output: c.App.ErrWriter}))

	format, err := output.ParseFormat(cfg.Output)
	if err != nil {
		return err
	}

	rt := &runtime{
		cfg:      cfg,
		format:   format,
		shutdown: shutdown.NewHandler(hookTimeout),
	}
	if path := cfg.Metrics.File; path != "" {
		rt.metrics = metric.NewRegistry()
		rt.shutdown.OnShutdown(func(context.Context) error {
			if err := rt.metrics.WriteTextfile(path); err != nil {
				return fmt.Errorf("failed to write metrics file: %w", err)
			}
			return nil
		})
	}

	parent := c.Context
	if parent == nil {
		parent = context.Background()
	}
	rt.ctx, rt.stop = rt.shutdown.Context(parent)

	if c.App.Metadata == nil {
		c.App.Metadata = map[string]any{}
	}
	c.App.Metadata[runtimeKey] = rt
	return nil
}

func after(c *cli.Context) error {
	rt, err := getRuntime(c)
	if err != nil {
		return nil
	}
	rt.stop()
	return rt.shutdown.Shutdown()
}

func getRuntime(c *cli.Context) (*runtime, error) {
	if rt, ok := c.App.Metadata[runtimeKey].(*runtime); ok {
		return rt, nil
	}
	return nil, errors.New("configuration not loaded")
}

// newTransport builds the HTTP transport from the resolved configuration.
func (rt *runtime) newTransport() (*connection.Transport, error) {
	httpClient := &http.Client{Timeout: rt.cfg.HTTP.Timeout}
	if ca := rt.cfg.HTTP.CACert; ca != "" {
		tlsCfg, err := tlsroots.ClientTLSConfig(ca)
		if err != nil {
			return nil, err
		}
		httpClient.Transport = &http.Transport{
			Proxy:           http.ProxyFromEnvironment,
			TLSClientConfig: tlsCfg,
		}
	}

	opts := []connection.Option{connection.WithHTTPClient(httpClient)}
	if rps := rt.cfg.HTTP.MaxRPS; rps > 0 {
		burst := int(rps)
		if burst < 1 {
			burst = 1
		}
		opts = append(opts, connection.WithLimiter(rate.NewLimiter(rate.Limit(rps), burst)))
	}
	if rt.metrics != nil {
		opts = append(opts, connection.WithMetrics(rt.metrics))
	}
	return connection.NewTransport(opts...), nil
}

// EnsureClient returns an API client for this invocation. With needAuth
// set, missing credentials fail before any request is made.
func EnsureClient(c *cli.Context, needAuth bool) (*api.Client, context.Context, error) {
	rt, err := getRuntime(c)
	if err != nil {
		return nil, nil, err
	}

	creds := rt.cfg.Credentials()
	if needAuth {
		if creds, err = rt.cfg.RequireCredentials(); err != nil {
			return nil, nil, err
		}
	}

	transport, err := rt.newTransport()
	if err != nil {
		return nil, nil, err
	}
	client, err := api.New(rt.cfg.API.URL, creds, transport)
	if err != nil {
		return nil, nil, err
	}
	return client, rt.ctx, nil
}

// printResult writes data to the app writer in the configured format.
func printResult(c *cli.Context, data any) error {
	rt, err := getRuntime(c)
	if err != nil {
		return err
	}
	return output.Print(c.App.Writer, rt.format, data)
}
