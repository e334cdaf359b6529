package graph

import "github.com/vk/tfgraph/internal/config"

// Category classifies an entity by its declaring block type.
type Category string

const (
	CategoryResource Category = "resource"
	CategoryData     Category = "data"
	CategoryModule   Category = "module"
	CategoryVariable Category = "variable"
	CategoryOutput   Category = "output"
	CategoryProvider Category = "provider"
)

// Kind tags a relationship edge.
type Kind string

const (
	// KindDependsOn marks ordinary dependency edges.
	KindDependsOn Kind = "depends_on"
	// KindReferences marks edges originating from an output entity.
	KindReferences Kind = "references"
)

// Position is a 2-D layout coordinate, attached only by the layout engine.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Entity is one declared configuration element: a node in the graph.
type Entity struct {
	ID           string      `json:"id"`
	Type         string      `json:"type"`
	Category     Category    `json:"category"`
	Name         string      `json:"name"`
	Provider     string      `json:"provider,omitempty"`
	Attributes   config.Body `json:"attributes"`
	Dependencies []string    `json:"dependencies"`
	Position     *Position   `json:"position,omitempty"`
}

// Relationship is a directed edge between two canonical identifiers. The
// target is syntactically well formed but not guaranteed to name an entity
// in the same result; dangling references are preserved on purpose.
type Relationship struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Kind   Kind   `json:"kind"`
}

// Metadata summarizes one extraction run. TotalFiles counts every discovered
// file, including ones that failed to parse.
type Metadata struct {
	TotalFiles         int `json:"total_files"`
	TotalEntities      int `json:"total_entities"`
	TotalRelationships int `json:"total_relationships"`
}

// Result is the full output of one extraction call.
type Result struct {
	Entities      []Entity       `json:"entities"`
	Relationships []Relationship `json:"relationships"`
	Metadata      Metadata       `json:"metadata"`
}
