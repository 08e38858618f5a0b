package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/xformstack/pkg/affine"
	errs "github.com/matzehuels/xformstack/pkg/errors"
	xio "github.com/matzehuels/xformstack/pkg/io"
	"github.com/matzehuels/xformstack/pkg/pipeline"
)

type evalOpts struct {
	point     string
	json      bool
	precision int
}

// evalCommand creates the eval command, which composes a scene document
// and prints the per-entry and final matrices.
func (c *CLI) evalCommand() *cobra.Command {
	opts := evalOpts{precision: pipeline.DefaultPrecision}

	cmd := &cobra.Command{
		Use:   "eval <file>",
		Short: "Compose a scene document and print its matrices",
		Args:  cobra.ExactArgs(1),

		ValidArgsFunction: completeDocuments,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePoint(opts.point)
			if err != nil {
				return err
			}
			runner := pipeline.NewRunner(nil, nil, loggerFromContext(cmd.Context()))
			res, err := runner.Evaluate(cmd.Context(), pipeline.Options{Path: args[0], Point: p})
			if err != nil {
				return err
			}
			defer res.Scene.Release()

			if opts.json {
				return writeEvalJSON(os.Stdout, res)
			}
			printEval(res, opts.precision)
			printNextStep("Render a diagram", appName+" render "+args[0])
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.point, "point", "p", "", "transform a point given as x,y,z")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print the result as JSON")
	cmd.Flags().IntVar(&opts.precision, "precision", opts.precision, "decimals per matrix cell")

	return cmd
}

// parsePoint parses "x,y,z". An empty string means no point.
func parsePoint(s string) (*[3]float64, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return nil, errs.New(errs.ErrCodeInvalidInput, "point %q must have three comma-separated coordinates", s)
	}
	var p [3]float64
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, errs.Wrap(errs.ErrCodeInvalidInput, err, "point coordinate %q", part)
		}
		p[i] = v
	}
	return &p, nil
}

func printEval(res *pipeline.Result, prec int) {
	fmt.Println(StyleTitle.Render(res.Scene.Label()) + " " + StyleDim.Render(res.Scene.Kind))
	fmt.Println(renderEntries(res.Entries, -1))
	printNewline()
	fmt.Println(StyleHighlight.Render("Composed"))
	fmt.Println(renderMatrix(res.Operand, prec))
	if p := res.Point; p != nil {
		printKeyValue("Point", fmt.Sprintf("(%g, %g, %g)", p[0], p[1], p[2]))
	}
	printStats(res.Stats.EntryCount, nil, false)
}

type evalEntryJSON struct {
	Name     string      `json:"name"`
	Type     string      `json:"type"`
	Local    [][]float64 `json:"local"`
	Composed [][]float64 `json:"composed"`
}

type evalJSON struct {
	Label   string          `json:"label"`
	Kind    string          `json:"kind"`
	Operand [][]float64     `json:"operand"`
	Entries []evalEntryJSON `json:"entries"`
	Point   *[3]float64     `json:"point,omitempty"`
}

func writeEvalJSON(w io.Writer, res *pipeline.Result) error {
	out := evalJSON{
		Label:   res.Scene.Label(),
		Kind:    res.Scene.Kind,
		Operand: rows(res.Operand),
		Entries: make([]evalEntryJSON, len(res.Entries)),
		Point:   res.Point,
	}
	for i, e := range res.Entries {
		out.Entries[i] = evalEntryJSON{
			Name:     e.Name,
			Type:     xio.TypeOf(e.Transformation),
			Local:    rows(e.Local),
			Composed: rows(e.Composed),
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func rows(m affine.Matrix) [][]float64 {
	out := make([][]float64, 4)
	for i := range m {
		out[i] = m[i][:]
	}
	return out
}
