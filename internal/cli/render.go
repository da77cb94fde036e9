package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/chartpress/pkg/config"
	"github.com/matzehuels/chartpress/pkg/observability"
	"github.com/matzehuels/chartpress/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	config string // TOML file (optional)
	format string // output format: "png", "pdf", "json"
	output string // output file, "-" for stdout
}

// renderCommand creates the render command for rendering a request file.
//
// Default settings:
//   - format: png
//   - output: <chartType>-chart.<format> (pdf uses pdfOptions.fileName)
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{format: pipeline.FormatPNG}

	cmd := &cobra.Command{
		Use:   "render [request.json]",
		Short: "Render a chart request to PNG, PDF or renderer JSON",
		Long: `Render a chart request to PNG, PDF or renderer JSON.

The request file has the same shape as the HTTP request body:

  {"chartType": "bar", "chartData": {...}, "pdfOptions": {...}}

Use "-" to read the request from stdin. With -f json the renderer
configuration produced by the mapper is written instead of an image.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := pipeline.ValidateFormat(opts.format); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "TOML configuration file")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: png (default), pdf, json")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", `output file, "-" for stdout (default: <chartType>-chart.<format>)`)

	return cmd
}

// runRender validates, renders and writes a single request.
func (c *CLI) runRender(ctx context.Context, input string, opts renderOpts) error {
	logger := loggerFromContext(ctx)

	req, err := c.readRequest(input)
	if err != nil {
		return err
	}
	cfg, err := config.Load(opts.config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	runner, err := c.newRunner(cfg)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}

	prog := newProgress(logger)
	spinner := newSpinnerWithContext(ctx, req.ChartType)
	observability.SetPipelineHooks(spinner)
	defer observability.Reset()
	spinner.Start()

	data, name, summary, err := render(ctx, runner, req, opts.format)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := opts.output
	if outputPath == "" {
		outputPath = name
	}
	if outputPath == stdioPath {
		_, err := c.stdout.Write(data)
		return err
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}
	prog.done("Rendered " + req.ChartType)

	printSuccess("Render complete")
	printFile(outputPath)
	printStats(summary)
	return nil
}

// outputSummary describes a written artifact for printStats.
type outputSummary struct {
	kind   string
	width  int
	height int
	bytes  int
	page   string
}

// render runs the pipeline for format and returns the bytes to write, the
// default file name and a summary.
func render(ctx context.Context, runner *pipeline.Runner, req pipeline.Request, format string) ([]byte, string, outputSummary, error) {
	switch format {
	case pipeline.FormatJSON:
		cfg, err := runner.Config(ctx, req)
		if err != nil {
			return nil, "", outputSummary{}, err
		}
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, "", outputSummary{}, fmt.Errorf("encode renderer configuration: %w", err)
		}
		data = append(data, '\n')
		sum := outputSummary{kind: string(cfg.Kind), width: cfg.Width, height: cfg.Height, bytes: len(data)}
		return data, defaultOutput(cfg.Kind.String(), format), sum, nil

	case pipeline.FormatPDF:
		res, err := runner.Document(ctx, req)
		if err != nil {
			return nil, "", outputSummary{}, err
		}
		doc := res.Document
		sum := outputSummary{
			kind:   string(res.Kind),
			width:  res.Image.Width,
			height: res.Image.Height,
			bytes:  len(doc.Data),
			page:   fmt.Sprintf("%s %s", doc.PageSize, doc.Orientation),
		}
		return doc.Data, doc.FileName, sum, nil
	}

	res, err := runner.Image(ctx, req)
	if err != nil {
		return nil, "", outputSummary{}, err
	}
	sum := outputSummary{kind: string(res.Kind), width: res.Image.Width, height: res.Image.Height, bytes: len(res.Image.Data)}
	return res.Image.Data, defaultOutput(res.Kind.String(), format), sum, nil
}

// defaultOutput is the file name used when -o is not given.
func defaultOutput(kind, format string) string {
	return kind + "-chart." + format
}
