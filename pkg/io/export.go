package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/xformstack/pkg/affine"
	"github.com/matzehuels/xformstack/pkg/xform"
)

// FromChain captures the current state of c as a document. Nested groups
// and stacks keep their structure; every other entry becomes a matrix
// transform holding its local matrix, so building the result reproduces
// the composed operand of c.
func FromChain(c Chain) *Document {
	return &Document{
		Kind:       kindOf(c),
		Label:      c.Label(),
		Transforms: flatten(c),
	}
}

func flatten(c Chain) []Transform {
	snap := c.Snapshot()
	out := make([]Transform, len(snap))
	for i, e := range snap {
		if nested, ok := e.Transformation.(Chain); ok {
			out[i] = Transform{
				Name:       e.Name,
				Type:       kindOf(nested),
				Label:      nested.Label(),
				Transforms: flatten(nested),
			}
			continue
		}
		out[i] = Transform{Name: e.Name, Type: TypeMatrix, Matrix: matrixRows(e.Local)}
	}
	return out
}

func kindOf(c Chain) string {
	if _, ok := c.(*xform.Group[affine.Matrix]); ok {
		return KindGroup
	}
	return KindStack
}

func matrixRows(m affine.Matrix) [][]float64 {
	rows := make([][]float64, 4)
	for r := range m {
		rows[r] = append([]float64(nil), m[r][:]...)
	}
	return rows
}

// WriteJSON encodes doc as indented JSON.
func WriteJSON(doc *Document, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// WriteTOML encodes doc as TOML.
func WriteTOML(doc *Document, w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(doc); err != nil {
		return fmt.Errorf("encode toml: %w", err)
	}
	return nil
}

// ExportJSON writes doc to path as JSON.
func ExportJSON(doc *Document, path string) error {
	return exportFile(doc, path, WriteJSON)
}

// ExportTOML writes doc to path as TOML.
func ExportTOML(doc *Document, path string) error {
	return exportFile(doc, path, WriteTOML)
}

// Export writes doc to path, choosing the encoder by extension like [Import].
func Export(doc *Document, path string) error {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return ExportJSON(doc, path)
	}
	return ExportTOML(doc, path)
}

func exportFile(doc *Document, path string, write func(*Document, io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(doc, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
