// Package hcl is the HCL-specific implementation of the config.Loader
// interface. It parses Terraform syntax with hashicorp/hcl/v2 and renders
// each block body into the format-agnostic config model.
//
// Rendering favors textual fidelity over evaluation: expressions that cannot
// be resolved statically (traversals, interpolated templates, function
// calls) are carried as their source text so that downstream reference
// scanning sees the same dotted forms the author wrote. Nothing here ever
// evaluates against a real variable scope.
package hcl
