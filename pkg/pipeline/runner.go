package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/xformstack/pkg/cache"
	errs "github.com/matzehuels/xformstack/pkg/errors"
	xio "github.com/matzehuels/xformstack/pkg/io"
	"github.com/matzehuels/xformstack/pkg/observability"
)

// Runner executes the pipeline with artifact caching.
//
// The Runner holds no pipeline results; one Runner can serve many runs
// with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner. A nil keyer means [cache.DefaultKeyer], a nil
// cache disables caching and a nil logger means the default logger.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs load → evaluate → render.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result, err := r.Evaluate(ctx, opts)
	if err != nil {
		return nil, err
	}

	renderStart := time.Now()
	artifacts, hit, err := r.RenderWithCacheInfo(ctx, result.Scene, result.DocHash, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.CacheInfo.RenderHit = hit
	result.Stats.RenderTime = time.Since(renderStart)

	r.logger(opts).Info("rendered outputs",
		"formats", opts.Formats,
		"cached", hit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Load reads and validates the document at opts.Path. It also returns the
// SHA-256 of the file contents.
func (r *Runner) Load(ctx context.Context, opts Options) (*xio.Document, string, error) {
	if err := opts.ValidateForLoad(); err != nil {
		return nil, "", err
	}
	hooks := observability.Pipeline()
	hooks.OnLoadStart(ctx, opts.Path)
	start := time.Now()

	doc, hash, err := load(opts.Path)
	count := 0
	if doc != nil {
		count = doc.Count()
	}
	hooks.OnLoadComplete(ctx, opts.Path, count, time.Since(start), err)
	if err != nil {
		return nil, "", err
	}

	r.logger(opts).Debug("loaded document", "path", opts.Path, "transforms", count, "hash", hash[:12])
	return doc, hash, nil
}

func load(path string) (*xio.Document, string, error) {
	if err := errs.ValidatePath(path); err != nil {
		return nil, "", err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, "", errs.Wrap(errs.ErrCodeFileNotFound, err, "scene document %s", path)
	}
	if err != nil {
		return nil, "", fmt.Errorf("read %s: %w", path, err)
	}

	var doc *xio.Document
	if strings.EqualFold(filepath.Ext(path), ".json") {
		doc, err = xio.ReadJSON(bytes.NewReader(data))
	} else {
		doc, err = xio.ReadTOML(bytes.NewReader(data))
	}
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", path, err)
	}
	return doc, cache.Hash(data), nil
}

// Evaluate loads the document, builds the scene and composes it.
// The returned result has no artifacts.
func (r *Runner) Evaluate(ctx context.Context, opts Options) (*Result, error) {
	loadStart := time.Now()
	doc, hash, err := r.Load(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	loadTime := time.Since(loadStart)

	evalStart := time.Now()
	scene, err := xio.Build(doc)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}
	result := &Result{
		Document: doc,
		DocHash:  hash,
		Scene:    scene,
		Operand:  scene.Operand(),
		Entries:  scene.Root.Snapshot(),
	}
	if p := opts.Point; p != nil {
		x, y, z := result.Operand.TransformPoint(p[0], p[1], p[2])
		result.Point = &[3]float64{x, y, z}
	}
	result.Stats = Stats{
		EntryCount: scene.Count(),
		LoadTime:   loadTime,
		EvalTime:   time.Since(evalStart),
	}

	r.logger(opts).Info("evaluated scene",
		"label", scene.Label(),
		"entries", result.Stats.EntryCount,
		"duration", result.Stats.LoadTime+result.Stats.EvalTime)

	return result, nil
}

// RenderWithCacheInfo renders scene, serving each format from the cache
// when every requested format is cached under docHash. The bool reports
// whether the artifacts came from the cache.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, scene *xio.Scene, docHash string, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()

	artifacts, hit, err := r.render(ctx, scene, docHash, opts)
	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	return artifacts, hit, err
}

func (r *Runner) render(ctx context.Context, scene *xio.Scene, docHash string, opts Options) (map[string][]byte, bool, error) {
	cacheHooks := observability.Cache()

	if !opts.Refresh && docHash != "" {
		artifacts := make(map[string][]byte, len(opts.Formats))
		for _, format := range opts.Formats {
			key := r.Keyer.ArtifactKey(docHash, opts.ArtifactKeyOpts(format))
			data, hit, err := r.Cache.Get(ctx, key)
			if err != nil {
				r.logger(opts).Warn("cache read failed", "format", format, "err", err)
			}
			if err != nil || !hit {
				cacheHooks.OnCacheMiss(ctx, cache.KeyTypeArtifact)
				break
			}
			cacheHooks.OnCacheHit(ctx, cache.KeyTypeArtifact)
			artifacts[format] = data
		}
		if len(artifacts) == len(opts.Formats) {
			return artifacts, true, nil
		}
	}

	rendered, err := RenderScene(ctx, scene, opts)
	if err != nil {
		return nil, false, err
	}

	if docHash != "" {
		for format, data := range rendered {
			key := r.Keyer.ArtifactKey(docHash, opts.ArtifactKeyOpts(format))
			if err := r.Cache.Set(ctx, key, data, cache.ArtifactTTL); err != nil {
				r.logger(opts).Warn("cache write failed", "format", format, "err", err)
				continue
			}
			cacheHooks.OnCacheSet(ctx, cache.KeyTypeArtifact, len(data))
		}
	}
	return rendered, false, nil
}

// Render is RenderWithCacheInfo without the cache hit flag.
func (r *Runner) Render(ctx context.Context, scene *xio.Scene, docHash string, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, scene, docHash, opts)
	return artifacts, err
}

// Close releases the cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) logger(opts Options) *log.Logger {
	if opts.Logger != nil {
		return opts.Logger
	}
	return r.Logger
}
