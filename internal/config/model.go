package config

import (
	"encoding/json"

	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// Body is the rendered content of one configuration block: attribute name to
// value. Values are the closed union of string, number, bool, object/map and
// tuple; nested blocks appear as tuples of objects keyed by block type.
type Body map[string]cty.Value

// MarshalJSON serializes a body as a plain JSON object so that block
// attributes pass through to the output document verbatim.
func (b Body) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(b))
	for name, val := range b {
		if val == cty.NilVal || val.IsNull() {
			out[name] = json.RawMessage("null")
			continue
		}
		raw, err := ctyjson.Marshal(val, val.Type())
		if err != nil {
			return nil, err
		}
		out[name] = raw
	}
	return json.Marshal(out)
}

// File is the unified representation of a single parsed configuration file.
// Resources and DataSources key by type then name; the remaining categories
// key by name alone.
type File struct {
	Path        string
	Resources   map[string]map[string]Body
	DataSources map[string]map[string]Body
	Modules     map[string]Body
	Variables   map[string]Body
	Outputs     map[string]Body
	Providers   map[string]Body
}

// NewFile creates an empty File for the given path.
func NewFile(path string) *File {
	return &File{
		Path:        path,
		Resources:   make(map[string]map[string]Body),
		DataSources: make(map[string]map[string]Body),
		Modules:     make(map[string]Body),
		Variables:   make(map[string]Body),
		Outputs:     make(map[string]Body),
		Providers:   make(map[string]Body),
	}
}
