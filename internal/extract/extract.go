// Package extract is the public entry point of the extractor: it walks a
// directory of Terraform files, classifies their contents into the entity
// graph, and optionally persists the result as JSON.
package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/vk/tfgraph/internal/config"
	"github.com/vk/tfgraph/internal/ctxlog"
	"github.com/vk/tfgraph/internal/fsutil"
	"github.com/vk/tfgraph/internal/graph"
	"github.com/vk/tfgraph/internal/refs"
)

// DirNotFoundError reports that the scan root does not exist or is not a
// directory. It is the only failure Extract surfaces; everything else
// degrades to partial results plus logged diagnostics.
type DirNotFoundError struct {
	Path string
}

func (e *DirNotFoundError) Error() string {
	return fmt.Sprintf("directory %s does not exist", e.Path)
}

const defaultWorkers = 8

// Option configures an Extractor.
type Option func(*Extractor)

// WithCloudPrefixes replaces the default cloud shorthand prefixes recognized
// by the reference resolver.
func WithCloudPrefixes(prefixes ...string) Option {
	return func(x *Extractor) {
		x.resolver = refs.NewResolver(prefixes...)
	}
}

// WithWorkers sets the number of parallel file loads.
func WithWorkers(n int) Option {
	return func(x *Extractor) {
		if n > 0 {
			x.workers = n
		}
	}
}

// Extractor runs extractions against a configured loader. Each call owns its
// registry for exactly the duration of the call; an Extractor holds no state
// between calls and is safe for concurrent use.
type Extractor struct {
	loader   config.Loader
	resolver *refs.Resolver
	workers  int
}

// New creates an Extractor around the given loader.
func New(loader config.Loader, opts ...Option) *Extractor {
	x := &Extractor{
		loader:   loader,
		resolver: refs.NewResolver(),
		workers:  defaultWorkers,
	}
	for _, opt := range opts {
		opt(x)
	}
	return x
}

// Extract scans every .tf file under dir and returns the assembled graph.
// Files are loaded in parallel but folded into the registry in discovery
// order, so redeclaration always resolves by file ordering rather than by
// completion order. A file that fails to load is logged and skipped; it
// still counts toward metadata.total_files.
func (x *Extractor) Extract(ctx context.Context, dir string) (*graph.Result, error) {
	logger := ctxlog.FromContext(ctx)

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, &DirNotFoundError{Path: dir}
	}

	files, err := fsutil.FindFilesByExtension(dir, ".tf")
	if err != nil {
		return nil, fmt.Errorf("discovering configuration files in %s: %w", dir, err)
	}
	logger.Debug("Discovered configuration files.", "dir", dir, "count", len(files))

	loaded := make([]*config.File, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(x.workers)
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			file, loadErr := x.loader.LoadFile(gctx, path)
			if loadErr != nil {
				logger.Warn("Skipping file that failed to load.", "file", path, "error", loadErr)
				return nil
			}
			loaded[i] = file
			return nil
		})
	}
	// Workers absorb per-file failures, so Wait only propagates context errors.
	if err := g.Wait(); err != nil {
		return nil, err
	}

	builder := graph.NewBuilder(x.resolver)
	for _, file := range loaded {
		if file != nil {
			builder.AddFile(file)
		}
	}

	result := builder.Result(len(files))
	logger.Debug("Extraction complete.",
		"files", result.Metadata.TotalFiles,
		"entities", result.Metadata.TotalEntities,
		"relationships", result.Metadata.TotalRelationships)
	return result, nil
}

// ExtractToFile runs Extract, assigns layout positions, and persists the
// document to outPath, creating parent directories as needed.
func (x *Extractor) ExtractToFile(ctx context.Context, dir, outPath string) (*graph.Result, error) {
	result, err := x.Extract(ctx, dir)
	if err != nil {
		return nil, err
	}

	graph.AssignPositions(result.Entities)

	if err := WriteResult(outPath, result); err != nil {
		return nil, err
	}
	ctxlog.FromContext(ctx).Info("Graph document saved.", "path", outPath)
	return result, nil
}

// WriteResult serializes a result as indented JSON at path.
func WriteResult(path string, result *graph.Result) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory for %s: %w", path, err)
		}
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding graph document: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing graph document to %s: %w", path, err)
	}
	return nil
}
