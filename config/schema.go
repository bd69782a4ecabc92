package config

import (
	"sort"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/mediabar/mediabar/constant"
	"github.com/samber/lo"
)

// Schema describes the config file as a JSON schema, one object per key section.
func Schema() *jsonschema.Schema {
	root := &jsonschema.Schema{
		Version:     jsonschema.Version,
		Title:       constant.App,
		Type:        "object",
		Properties:  jsonschema.NewProperties(),
		Description: "Configuration of " + constant.App,
	}

	keys := lo.Keys(Default)
	sort.Strings(keys)

	for _, name := range keys {
		field := Default[name]
		section, leaf, found := strings.Cut(name, ".")
		if !found {
			root.Properties.Set(name, field.schema())
			continue
		}

		parent, ok := root.Properties.Get(section)
		if !ok {
			parent = &jsonschema.Schema{
				Type:       "object",
				Properties: jsonschema.NewProperties(),
			}
			root.Properties.Set(section, parent)
		}

		parent.Properties.Set(leaf, field.schema())
	}

	return root
}

func (f *Field) schema() *jsonschema.Schema {
	s := &jsonschema.Schema{
		Description: f.Description,
		Default:     f.Value,
	}

	switch f.Value.(type) {
	case string:
		s.Type = "string"
		if len(f.Enum) > 0 {
			s.Enum = lo.ToAnySlice(f.Enum)
		}
	case int:
		s.Type = "integer"
	case bool:
		s.Type = "boolean"
	case []string:
		s.Type = "array"
		s.Items = &jsonschema.Schema{Type: "string"}
	}

	return s
}
