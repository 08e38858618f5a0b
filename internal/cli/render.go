package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/xformstack/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output    string   // output file (single format) or base path
	formats   []string // dot, svg, png, json
	detailed  bool     // matrices in diagram labels
	precision int      // decimals per matrix cell
	refresh   bool     // ignore cached artifacts
	cache     cacheFlags
}

// renderCommand creates the render command, which draws a scene document's
// chains as a node-link diagram or exports its evaluated matrices.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{precision: pipeline.DefaultPrecision}

	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Render a scene document to DOT, SVG, PNG or JSON",
		Args:  cobra.ExactArgs(1),

		ValidArgsFunction: completeDocuments,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), dot, png, json (comma-separated)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show local and composed matrices in the diagram")
	cmd.Flags().IntVar(&opts.precision, "precision", opts.precision, "decimals per matrix cell")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even if cached")
	opts.cache.register(cmd)

	return cmd
}

func (c *CLI) runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	runner, err := c.newRunner(ctx, opts.cache)
	if err != nil {
		return err
	}
	defer runner.Close()

	spinner := newSpinner(ctx, "Rendering "+filepath.Base(input)+"...")
	spinner.Start()
	res, err := runner.Execute(ctx, pipeline.Options{
		Path:      input,
		Formats:   opts.formats,
		Detailed:  opts.detailed,
		Precision: opts.precision,
		Refresh:   opts.refresh,
		Logger:    logger,
	})
	spinner.Stop()
	if spinner.Cancelled() {
		return ctx.Err()
	}
	if err != nil {
		return err
	}
	defer res.Scene.Release()

	base := basePath(opts.output, input)
	written := 0
	for _, format := range opts.formats {
		path := base + "." + format
		if len(opts.formats) == 1 && opts.output != "" {
			path = opts.output
		}
		if filepath.Clean(path) == filepath.Clean(input) {
			path = base + ".out." + format
			printWarning("not overwriting %s, writing %s", input, path)
		}
		if err := os.WriteFile(path, res.Artifacts[format], 0644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
		written++
	}

	printStats(res.Stats.EntryCount, opts.formats, res.CacheInfo.RenderHit)
	prog.done(fmt.Sprintf("Rendered %d file(s)", written))
	printNextStep("Edit the stack interactively", appName+" explore "+input)
	return nil
}

// basePath derives the output base path. With no output it strips the
// extension from input; a known format extension on output is stripped too.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}
