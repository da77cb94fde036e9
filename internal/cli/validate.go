package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/chartpress/pkg/chart"
	"github.com/matzehuels/chartpress/pkg/config"
	"github.com/matzehuels/chartpress/pkg/errors"
	"github.com/matzehuels/chartpress/pkg/pipeline"
)

// validateCommand creates the validate command, which checks a request file
// the way the HTTP service would, without rendering anything.
func (c *CLI) validateCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "validate [request.json]",
		Short: "Check a chart request without rendering it",
		Long: `Check a chart request without rendering it.

Both chartData and pdfOptions are validated. Use "-" to read the request
from stdin. The command exits non-zero when the request would be rejected.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runValidate(cmd.Context(), args[0], configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML configuration file")

	return cmd
}

func (c *CLI) runValidate(ctx context.Context, input, configPath string) error {
	req, err := c.readRequest(input)
	if err != nil {
		return err
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	runner := pipeline.NewRunner(nil, nil, c.Logger)
	runner.Validator = chart.Validator{MaxDimension: cfg.Render.MaxDimension}

	prepared, err := runner.Validate(ctx, req)
	if err != nil {
		printError("Invalid request")
		if field := errors.GetField(err); field != "" {
			printKeyValue("field", field)
		}
		printKeyValue("reason", errors.UserMessage(err))
		return err
	}

	opts := prepared.Document
	printSuccess("Request is valid")
	printKeyValue("chart", StyleHighlight.Render(prepared.Kind().String()))
	printKeyValue("document", opts.FileName)
	printKeyValue("page", fmt.Sprintf("%s %s", opts.PageSize, opts.Orientation))
	return nil
}
