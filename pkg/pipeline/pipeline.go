// Package pipeline loads scene documents, evaluates their transformation
// chains and renders the result.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: read and validate a TOML or JSON scene document
//  2. Evaluate: build the live chain and compose every entry
//  3. Render: produce DOT, SVG, PNG or JSON artifacts, cached by content
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Path:    "arm.toml",
//	    Formats: []string{"svg"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/xformstack/pkg/affine"
	"github.com/matzehuels/xformstack/pkg/cache"
	xio "github.com/matzehuels/xformstack/pkg/io"
	"github.com/matzehuels/xformstack/pkg/xform"
)

// DefaultPrecision is the number of decimals printed per matrix cell.
const DefaultPrecision = 3

// Format constants for output formats.
const (
	FormatDOT  = "dot"
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatJSON = "json"
)

// Formats lists the supported output formats.
var Formats = []string{FormatDOT, FormatSVG, FormatPNG, FormatJSON}

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatDOT:  true,
	FormatSVG:  true,
	FormatPNG:  true,
	FormatJSON: true,
}

// Options configures a pipeline run.
type Options struct {
	// Path is the scene document to load.
	Path string

	// Point, when set, is transformed by the composed matrix.
	Point *[3]float64

	// Formats to render. Empty means svg.
	Formats []string

	// Detailed adds local and composed matrices to diagram labels.
	Detailed bool

	// Precision is the number of decimals per matrix cell.
	Precision int

	// Refresh bypasses cached artifacts and re-renders.
	Refresh bool

	Logger *log.Logger
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Document is the validated scene document.
	Document *xio.Document

	// DocHash is the content hash of the document file.
	DocHash string

	// Scene is the live chain built from the document.
	Scene *xio.Scene

	// Operand is the composed matrix of the whole scene.
	Operand affine.Matrix

	// Entries describes the top-level entries in chain order.
	Entries []xform.EntryInfo[affine.Matrix]

	// Point is Options.Point transformed by Operand.
	Point *[3]float64

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	EntryCount int
	LoadTime   time.Duration
	EvalTime   time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits.
type CacheInfo struct {
	RenderHit bool // all artifacts came from cache
}

// ValidateFormat checks that a format is supported.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: dot, svg, png, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are supported.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateForLoad checks the fields needed to load a document.
func (o *Options) ValidateForLoad() error {
	if o.Path == "" {
		return fmt.Errorf("path is required")
	}
	return nil
}

// SetRenderDefaults fills in render defaults.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Precision <= 0 {
		o.Precision = DefaultPrecision
	}
}

// ValidateForRender applies defaults and validates render options.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	return ValidateFormats(o.Formats)
}

// ArtifactKeyOpts returns cache key options for format.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:    format,
		Detailed:  o.Detailed,
		Precision: o.Precision,
	}
}
