package app

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/vk/tfgraph/internal/ctxlog"
	"github.com/vk/tfgraph/internal/graph"
)

// Run executes one extraction based on the configured directory, emitting
// the graph document to the output path or, when none is set, to outW.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "dir", a.config.Dir)

	var result *graph.Result
	var err error
	if a.config.OutPath != "" {
		result, err = a.extractor.ExtractToFile(ctx, a.config.Dir, a.config.OutPath)
	} else {
		result, err = a.extractor.Extract(ctx, a.config.Dir)
	}
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	if a.config.OutPath == "" {
		graph.AssignPositions(result.Entities)
		enc := json.NewEncoder(a.outW)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return fmt.Errorf("writing graph document: %w", err)
		}
	}

	a.logger.Info("Extraction finished.",
		"files", result.Metadata.TotalFiles,
		"entities", result.Metadata.TotalEntities,
		"relationships", result.Metadata.TotalRelationships)
	return nil
}
