package protocol

import (
	"encoding/json"
	"fmt"
	"sort"
)

// PrepareArgs validates raw tool arguments against a schema and returns a
// normalized copy: missing required properties fail, optional properties
// absent from the input are filled with their declared default, and
// properties the schema does not declare are dropped.
func PrepareArgs(schema *JSONSchema, raw json.RawMessage) (json.RawMessage, error) {
	args := map[string]any{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &args); err != nil {
			return nil, fmt.Errorf("invalid arguments: %v", err)
		}
	}
	if schema == nil {
		return json.Marshal(args)
	}

	missing := []string{}
	for _, name := range schema.Required {
		if _, ok := args[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, fmt.Errorf("missing required parameter %q", missing[0])
	}

	out := make(map[string]any, len(schema.Properties))
	for name, prop := range schema.Properties {
		if v, ok := args[name]; ok {
			out[name] = v
			continue
		}
		if prop.Default != nil {
			out[name] = prop.Default
		}
	}
	return json.Marshal(out)
}
