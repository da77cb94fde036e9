package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/chartpress/pkg/api"
	"github.com/matzehuels/chartpress/pkg/config"
	"github.com/matzehuels/chartpress/pkg/observability"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	config string // TOML file (optional)
	addr   string // overrides server.addr
	env    string // overrides server.env
}

// serveCommand creates the serve command that runs the HTTP service.
func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the chart rendering HTTP service",
		Long: `Run the chart rendering HTTP service.

Configuration is read from built-in defaults, then the optional TOML file
given with --config, then the environment (PORT, APP_ENV or NODE_ENV,
CHARTPRESS_CORS_ORIGINS, CHARTPRESS_LOG_FORMAT), then the flags below.

The service stops gracefully on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "TOML configuration file")
	cmd.Flags().StringVar(&opts.addr, "addr", "", "listen address (overrides config and PORT)")
	cmd.Flags().StringVar(&opts.env, "env", "", "environment: development, production")

	return cmd
}

// loadServeConfig loads the configuration and applies flag overrides.
func loadServeConfig(opts serveOpts) (config.Config, error) {
	cfg, err := config.Load(opts.config)
	if err != nil {
		return cfg, err
	}
	if opts.addr != "" {
		cfg.Server.Addr = opts.addr
	}
	if opts.env != "" {
		cfg.Server.Env = opts.env
	}
	return cfg, cfg.Validate()
}

func (c *CLI) runServe(ctx context.Context, opts serveOpts) error {
	cfg, err := loadServeConfig(opts)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	setLogFormat(c.Logger, cfg.Server.LogFormat)

	runner, err := c.newRunner(cfg)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}

	// Requests are logged by the server middleware; pipeline stages by hooks.
	observability.SetPipelineHooks(observability.NewLogHooks(c.Logger))
	defer observability.Reset()

	if cfg.Server.LogFormat != config.LogFormatJSON {
		printBanner(cfg.Server.Addr, cfg.Server.Env)
	}

	srv := api.NewServer(cfg, runner, c.Logger)
	if err := srv.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}
