// Package schema defines the JSON Schema subset used to declare tool
// parameters. Every tool input in this repository is a flat object of
// string, integer, and boolean properties, so only that subset is
// modeled here.
package schema

// Schema describes the structure of a JSON object.
type Schema struct {
	Type                 string               `json:"type"`
	Properties           map[string]*Property `json:"properties"`
	Required             []string             `json:"required,omitempty"`
	AdditionalProperties *bool                `json:"additionalProperties,omitempty"`
}

// Property of a schema. Enum and Default are advertised to MCP hosts so
// they can offer completions and show effective defaults.
type Property struct {
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Enum        []string `json:"enum,omitempty"`
	Default     any      `json:"default,omitempty"`
}
