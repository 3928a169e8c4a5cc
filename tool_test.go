package thordatamcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thordata/thordata-mcp/schema"
)

// mockTypedTool is a simple typed tool for testing
type mockTypedTool struct {
	name        string
	description string
	schema      *schema.Schema
	lastInput   mockInput
}

type mockInput struct {
	Name  string `json:"name,omitempty"`
	Value int    `json:"value,omitempty"`
}

func (m *mockTypedTool) Name() string {
	return m.name
}

func (m *mockTypedTool) Description() string {
	return m.description
}

func (m *mockTypedTool) Schema() *schema.Schema {
	return m.schema
}

func (m *mockTypedTool) Annotations() *ToolAnnotations {
	return nil
}

func (m *mockTypedTool) Call(ctx context.Context, input mockInput) (*ToolResult, error) {
	m.lastInput = input
	return NewToolResultText("ok"), nil
}

func TestTypedToolAdapter_ConvertInput_NilInput(t *testing.T) {
	tool := &mockTypedTool{
		name:        "test",
		description: "test tool",
	}
	adapter := ToolAdapter(tool)

	// Call with nil input - should not error
	result, err := adapter.Call(context.Background(), nil)
	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.False(t, result.IsError)
}

func TestTypedToolAdapter_ConvertInput_EmptyBytes(t *testing.T) {
	tool := &mockTypedTool{
		name:        "test",
		description: "test tool",
	}
	adapter := ToolAdapter(tool)

	// Call with empty byte slice - should not error
	result, err := adapter.Call(context.Background(), []byte{})
	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.False(t, result.IsError)
}

func TestTypedToolAdapter_ConvertInput_ValidJSON(t *testing.T) {
	tool := &mockTypedTool{
		name:        "test",
		description: "test tool",
	}
	adapter := ToolAdapter(tool)

	result, err := adapter.Call(context.Background(), json.RawMessage(`{"name":"test","value":42}`))
	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.False(t, result.IsError)
	assert.Equal(t, mockInput{Name: "test", Value: 42}, tool.lastInput)
}

func TestTypedToolAdapter_ConvertInput_TypedPassthrough(t *testing.T) {
	tool := &mockTypedTool{
		name:        "test",
		description: "test tool",
	}
	adapter := ToolAdapter(tool)

	result, err := adapter.Call(context.Background(), mockInput{Name: "direct", Value: 7})
	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.False(t, result.IsError)
	assert.Equal(t, mockInput{Name: "direct", Value: 7}, tool.lastInput)
}

func TestTypedToolAdapter_ConvertInput_MapInput(t *testing.T) {
	tool := &mockTypedTool{
		name:        "test",
		description: "test tool",
	}
	adapter := ToolAdapter(tool)

	// Maps arrive from MCP hosts as decoded arguments
	result, err := adapter.Call(context.Background(), map[string]any{
		"name":  "from-map",
		"value": 3,
	})
	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.False(t, result.IsError)
	assert.Equal(t, mockInput{Name: "from-map", Value: 3}, tool.lastInput)
}

// mockPtrTool takes pointer input, the common shape for real tools
type mockPtrTool struct {
	got *mockInput
}

func (m *mockPtrTool) Name() string                  { return "ptr" }
func (m *mockPtrTool) Description() string           { return "pointer input tool" }
func (m *mockPtrTool) Schema() *schema.Schema        { return nil }
func (m *mockPtrTool) Annotations() *ToolAnnotations { return nil }

func (m *mockPtrTool) Call(ctx context.Context, input *mockInput) (*ToolResult, error) {
	m.got = input
	return NewToolResultText("ok"), nil
}

func TestTypedToolAdapter_ConvertInput_NullJSON(t *testing.T) {
	tool := &mockPtrTool{}
	adapter := ToolAdapter[*mockInput](tool)

	// A null argument object behaves like an empty one; the tool never
	// sees a nil pointer
	result, err := adapter.Call(context.Background(), json.RawMessage(`null`))
	assert.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.IsError)
	require.NotNil(t, tool.got)
}

func TestTypedToolAdapter_ConvertInput_InvalidJSON(t *testing.T) {
	tool := &mockTypedTool{
		name:        "test",
		description: "test tool",
	}
	adapter := ToolAdapter(tool)

	// Malformed JSON becomes an error result, not a returned error
	result, err := adapter.Call(context.Background(), json.RawMessage(`{"name":`))
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
	assert.Contains(t, result.Text(), "invalid json for tool test")
}

func TestTypedToolAdapter_Unwrap(t *testing.T) {
	tool := &mockTypedTool{name: "test"}
	adapter := ToolAdapter(tool)
	require.Equal(t, tool, adapter.Unwrap())
	assert.Equal(t, "test", adapter.Name())
}

func TestToolResultText(t *testing.T) {
	result := NewToolResult(
		&ToolResultContent{Type: ToolResultContentTypeText, Text: "one"},
		&ToolResultContent{Type: ToolResultContentTypeText, Text: "two"},
	)
	assert.Equal(t, "onetwo", result.Text())
}

func TestToolResultWithDisplay(t *testing.T) {
	result := NewToolResultText("payload").WithDisplay("Searched the web")
	assert.Equal(t, "Searched the web", result.Display)
	assert.Equal(t, "payload", result.Text())

	// Display never serializes
	data, err := json.Marshal(result)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "Searched the web")
}

func TestNewToolResultError(t *testing.T) {
	result := NewToolResultError("boom")
	assert.True(t, result.IsError)
	assert.Equal(t, "boom", result.Text())
}
