package pipeline

import (
	"bytes"
	"context"
	"fmt"

	xio "github.com/matzehuels/xformstack/pkg/io"
	"github.com/matzehuels/xformstack/pkg/render/nodelink"
)

// RenderScene renders scene in every requested format without caching.
func RenderScene(ctx context.Context, scene *xio.Scene, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	dot := nodelink.ToDOT(scene.Root, nodelink.Options{
		Detailed:  opts.Detailed,
		Precision: opts.Precision,
	})

	out := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		var (
			data []byte
			err  error
		)
		switch format {
		case FormatDOT:
			data = []byte(dot)
		case FormatSVG:
			data, err = nodelink.RenderSVG(ctx, dot)
		case FormatPNG:
			data, err = nodelink.RenderPNG(ctx, dot)
		case FormatJSON:
			data, err = exportJSON(scene)
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", format, err)
		}
		out[format] = data
	}
	return out, nil
}

// exportJSON serialises the evaluated scene as a document of matrices.
func exportJSON(scene *xio.Scene) ([]byte, error) {
	var buf bytes.Buffer
	if err := xio.WriteJSON(xio.FromChain(scene.Root), &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
