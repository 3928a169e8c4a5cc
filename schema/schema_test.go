package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSchemaSerialization(t *testing.T) {
	s := &Schema{
		Type:     "object",
		Required: []string{"query"},
		Properties: map[string]*Property{
			"query": {
				Type:        "string",
				Description: "The search keywords",
			},
			"engine": {
				Type:        "string",
				Description: "Search engine to use",
				Enum:        []string{"google", "bing"},
				Default:     "google",
			},
			"num": {
				Type:        "integer",
				Description: "Number of results",
				Default:     5,
			},
		},
	}

	data, err := json.Marshal(s)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, "object", decoded["type"])
	require.Equal(t, []any{"query"}, decoded["required"])

	props, ok := decoded["properties"].(map[string]any)
	require.True(t, ok)

	engine, ok := props["engine"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "google", engine["default"])
	require.Equal(t, []any{"google", "bing"}, engine["enum"])

	// Absent optional fields stay out of the wire form.
	query, ok := props["query"].(map[string]any)
	require.True(t, ok)
	_, hasDefault := query["default"]
	require.False(t, hasDefault)
	_, hasEnum := query["enum"]
	require.False(t, hasEnum)
}
