package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"

	"github.com/vk/tfgraph/internal/config"
	"github.com/vk/tfgraph/internal/ctxlog"
)

// Loader parses Terraform configuration files into the format-agnostic model.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// LoadFile parses a single .tf file. Syntax errors surface as an error for
// the caller to record; a structurally odd but parseable file degrades to
// whatever well-formed blocks it contains.
func (l *Loader) LoadFile(ctx context.Context, path string) (*config.File, error) {
	logger := ctxlog.FromContext(ctx)

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	body, ok := hclFile.Body.(*hclsyntax.Body)
	if !ok {
		return nil, fmt.Errorf("file %s did not produce native HCL syntax", path)
	}

	file := config.NewFile(path)
	r := &renderer{src: hclFile.Bytes}

	for _, blk := range body.Blocks {
		switch blk.Type {
		case "resource", "data":
			if len(blk.Labels) != 2 {
				logger.Debug("Skipping block with unexpected label count.",
					"file", path, "block", blk.Type, "labels", len(blk.Labels))
				continue
			}
			target := file.Resources
			if blk.Type == "data" {
				target = file.DataSources
			}
			byType := target[blk.Labels[0]]
			if byType == nil {
				byType = make(map[string]config.Body)
				target[blk.Labels[0]] = byType
			}
			byType[blk.Labels[1]] = r.body(blk.Body)

		case "module", "variable", "output", "provider":
			if len(blk.Labels) != 1 {
				logger.Debug("Skipping block with unexpected label count.",
					"file", path, "block", blk.Type, "labels", len(blk.Labels))
				continue
			}
			rendered := r.body(blk.Body)
			switch blk.Type {
			case "module":
				file.Modules[blk.Labels[0]] = rendered
			case "variable":
				file.Variables[blk.Labels[0]] = rendered
			case "output":
				file.Outputs[blk.Labels[0]] = rendered
			case "provider":
				file.Providers[blk.Labels[0]] = rendered
			}

		default:
			// terraform, locals and friends declare no graph entities.
		}
	}

	return file, nil
}
