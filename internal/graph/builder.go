package graph

import (
	"sort"
	"strings"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/tfgraph/internal/config"
	"github.com/vk/tfgraph/internal/refs"
)

// Builder accumulates entities and relationships for one extraction call.
// Entities are keyed by canonical identifier; redeclaring an identifier
// overwrites the entity body while keeping its first-seen position in the
// output order. Not safe for concurrent use.
type Builder struct {
	resolver      *refs.Resolver
	order         []string
	entities      map[string]*Entity
	relationships []Relationship
}

// NewBuilder creates an empty builder using the given reference resolver.
func NewBuilder(resolver *refs.Resolver) *Builder {
	return &Builder{
		resolver: resolver,
		entities: make(map[string]*Entity),
	}
}

// AddFile folds one parsed file into the registry. Categories are processed
// in a fixed order and block collections in sorted key order so the result
// depends only on file contents and file ordering.
func (b *Builder) AddFile(file *config.File) {
	b.addTyped(CategoryResource, file.Resources)
	b.addTyped(CategoryData, file.DataSources)
	b.addNamed(CategoryModule, "module", file.Modules)
	b.addNamed(CategoryVariable, "variable", file.Variables)
	b.addNamed(CategoryOutput, "output", file.Outputs)
	b.addNamed(CategoryProvider, "provider", file.Providers)
}

// addTyped handles the two-level resource and data collections.
func (b *Builder) addTyped(category Category, byType map[string]map[string]config.Body) {
	for _, typ := range sortedKeys(byType) {
		instances := byType[typ]
		for _, name := range sortedKeys(instances) {
			body := instances[name]
			id := string(category) + "." + typ + "." + name
			b.insert(&Entity{
				ID:           id,
				Type:         typ,
				Category:     category,
				Name:         name,
				Provider:     providerPrefix(typ),
				Attributes:   body,
				Dependencies: b.dependencies(id, body),
			})
		}
	}
}

// addNamed handles the one-level module/variable/output/provider collections.
func (b *Builder) addNamed(category Category, typeLabel string, blocks map[string]config.Body) {
	for _, name := range sortedKeys(blocks) {
		body := blocks[name]

		var id, provider string
		var deps []string
		switch category {
		case CategoryModule:
			id = "module." + name
			deps = b.dependencies(id, body)
		case CategoryVariable:
			// Variable defaults are static text, never live references.
			id = "var." + name
			deps = []string{}
		case CategoryOutput:
			id = "output." + name
			deps = b.dependencies(id, body)
		case CategoryProvider:
			id = "provider." + name
			provider = name
			deps = []string{}
		}

		b.insert(&Entity{
			ID:           id,
			Type:         typeLabel,
			Category:     category,
			Name:         name,
			Provider:     provider,
			Attributes:   body,
			Dependencies: deps,
		})
	}
}

// dependencies computes an entity's dependency set: verbatim string entries
// of depends_on, unioned with resolved references from every other attribute.
// The entity's own identifier never appears even if the body mentions it.
func (b *Builder) dependencies(selfID string, body config.Body) []string {
	found := make(map[string]struct{})

	if dep, ok := body["depends_on"]; ok && dep != cty.NilVal && !dep.IsNull() && dep.CanIterateElements() {
		for it := dep.ElementIterator(); it.Next(); {
			_, element := it.Element()
			if !element.IsNull() && element.Type() == cty.String {
				found[element.AsString()] = struct{}{}
			}
		}
	}

	for name, val := range body {
		if name == "depends_on" {
			continue
		}
		for ref := range b.resolver.Resolve(val) {
			found[ref] = struct{}{}
		}
	}

	delete(found, selfID)

	deps := make([]string, 0, len(found))
	for dep := range found {
		deps = append(deps, dep)
	}
	sort.Strings(deps)
	return deps
}

// insert registers an entity and emits one edge per dependency. Relationships
// recorded for an earlier declaration of the same identifier stay in place.
func (b *Builder) insert(e *Entity) {
	if _, exists := b.entities[e.ID]; !exists {
		b.order = append(b.order, e.ID)
	}
	b.entities[e.ID] = e

	kind := KindDependsOn
	if e.Category == CategoryOutput {
		kind = KindReferences
	}
	for _, dep := range e.Dependencies {
		b.relationships = append(b.relationships, Relationship{Source: e.ID, Target: dep, Kind: kind})
	}
}

// Result snapshots the registry into the serializable form. totalFiles is
// supplied by the caller because it counts discovered files, not parsed ones.
func (b *Builder) Result(totalFiles int) *Result {
	entities := make([]Entity, 0, len(b.order))
	for _, id := range b.order {
		entities = append(entities, *b.entities[id])
	}

	relationships := b.relationships
	if relationships == nil {
		relationships = []Relationship{}
	}

	return &Result{
		Entities:      entities,
		Relationships: relationships,
		Metadata: Metadata{
			TotalFiles:         totalFiles,
			TotalEntities:      len(entities),
			TotalRelationships: len(relationships),
		},
	}
}

// providerPrefix infers the provider from a resource type's first
// underscore-delimited token.
func providerPrefix(resourceType string) string {
	return strings.SplitN(resourceType, "_", 2)[0]
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
