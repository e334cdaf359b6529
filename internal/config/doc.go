// Package config defines the format-agnostic raw model for one parsed
// Terraform configuration file, along with the Loader interface implemented
// by format-specific packages.
//
// A config.File is the single source of truth for the graph package: every
// top-level category (resource, data, module, variable, output, provider)
// appears as a plain mapping of block bodies, with attribute values already
// rendered into cty values. Concrete loaders, such as for HCL, live in
// separate packages.
package config
