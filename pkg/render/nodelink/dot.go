package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/xformstack/pkg/affine"
	xio "github.com/matzehuels/xformstack/pkg/io"
)

// Options configures chain diagram rendering.
type Options struct {
	// Detailed adds each entry's local and composed matrices to its label.
	Detailed bool

	// Precision is the number of decimals printed per matrix cell.
	// Zero means 2.
	Precision int
}

// ToDOT converts a chain to Graphviz DOT. Entries appear top to bottom in
// chain order, outermost first, each chain drawn as a cluster. An entry
// holding a nested group or stack links to the nested cluster with a
// dashed edge.
//
// Node identifiers are derived from entry positions, so equal chains
// produce byte-identical output.
func ToDOT(c xio.Chain, opts Options) string {
	if opts.Precision <= 0 {
		opts.Precision = 2
	}
	w := &dotWriter{opts: opts}
	w.buf.WriteString("digraph G {\n")
	w.buf.WriteString("  rankdir=TB;\n")
	w.buf.WriteString("  bgcolor=\"transparent\";\n")
	w.buf.WriteString("  compound=true;\n")
	w.buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontname=\"monospace\", fontsize=14, margin=\"0.2,0.1\"];\n")
	w.buf.WriteString("  ranksep=0.4;\n")
	w.buf.WriteString("  nodesep=0.3;\n")
	w.buf.WriteString("\n")

	w.chain(c, "n", 1)
	for _, e := range w.edges {
		w.buf.WriteString(e)
	}

	w.buf.WriteString("}\n")
	return w.buf.String()
}

type dotWriter struct {
	buf   bytes.Buffer
	opts  Options
	edges []string
}

// chain writes c as a cluster and returns the id of its first node, or ""
// when c is empty.
func (w *dotWriter) chain(c xio.Chain, prefix string, depth int) string {
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(&w.buf, "%ssubgraph %q {\n", indent, "cluster_"+prefix)
	fmt.Fprintf(&w.buf, "%s  label=%q;\n", indent, xio.TypeOf(c)+": "+c.Label())
	fmt.Fprintf(&w.buf, "%s  style=\"rounded,dashed\";\n", indent)

	snap := c.Snapshot()
	if len(snap) == 0 {
		fmt.Fprintf(&w.buf, "%s  %q [label=\"(empty)\", style=dotted];\n", indent, prefix+"_empty")
	}

	first, prev := "", ""
	for i, e := range snap {
		id := fmt.Sprintf("%s_%d", prefix, i)
		attrs := []string{fmt.Sprintf("label=%q", w.label(e.Name, e.Transformation, e.Local, e.Composed))}
		nested, isChain := e.Transformation.(xio.Chain)
		if isChain {
			attrs = append(attrs, "shape=folder", "fillcolor=lightgrey")
		}
		fmt.Fprintf(&w.buf, "%s  %q [%s];\n", indent, id, strings.Join(attrs, ", "))

		if isChain {
			if child := w.chain(nested, id, depth+1); child != "" {
				w.edges = append(w.edges, fmt.Sprintf("  %q -> %q [style=dashed, arrowhead=none, lhead=%q];\n", id, child, "cluster_"+id))
			}
		}
		if prev != "" {
			w.edges = append(w.edges, fmt.Sprintf("  %q -> %q;\n", prev, id))
		} else {
			first = id
		}
		prev = id
	}

	fmt.Fprintf(&w.buf, "%s}\n", indent)
	return first
}

func (w *dotWriter) label(name string, t affine.Transformation, local, composed affine.Matrix) string {
	lines := []string{name, xio.Describe(t)}
	if w.opts.Detailed {
		lines = append(lines, "local:")
		lines = append(lines, local.Rows(w.opts.Precision)...)
		lines = append(lines, "composed:")
		lines = append(lines, composed.Rows(w.opts.Precision)...)
	}
	return strings.Join(lines, "\n")
}

// RenderSVG renders DOT source to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	out, err := render(ctx, dot, graphviz.SVG)
	if err != nil {
		return nil, err
	}
	return normalizeViewBox(out), nil
}

// RenderPNG renders DOT source to PNG using Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.PNG)
}

func render(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root tag so the diagram scales to its
// container.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
