// Package nodelink renders transformation chains as node-link diagrams.
//
// Each entry becomes a box labelled with its name and parameters, linked
// to the next entry in chain order. Nested groups and stacks are drawn as
// clusters hanging off the entry that holds them.
//
//	dot := nodelink.ToDOT(scene.Root, nodelink.Options{Detailed: true})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//	png, err := nodelink.RenderPNG(ctx, dot)
//
// With Detailed set, labels also show the entry's local matrix and the
// composed matrix cached for it, which makes the order of composition
// visible.
//
// Rendering uses [github.com/goccy/go-graphviz], which runs Graphviz
// in-process without an external binary.
package nodelink
