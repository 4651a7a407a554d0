package core

import (
	"context"
	"encoding/json"
)

// PermissionLevel defines access rights for a tool category
type PermissionLevel string

const (
	PermissionReadOnly  PermissionLevel = "read-only"  // Can only read data
	PermissionReadWrite PermissionLevel = "read-write" // Can read and write data
	PermissionExecute   PermissionLevel = "execute"    // Can execute commands
	PermissionNetwork   PermissionLevel = "network"    // Reaches remote services
)

// Tool represents a capability that can be offered to a model
type Tool interface {
	// Name returns the name of the tool as seen by the model
	Name() string

	// Description returns the description of the tool as seen by the model
	Description() string

	// Category returns the category this tool belongs to
	Category() string

	// InputSchema returns the JSON schema for the tool's input
	InputSchema() map[string]interface{}

	// Execute performs the tool operation with given input
	Execute(ctx context.Context, input json.RawMessage) (interface{}, error)
}

// BaseToolImpl provides common functionality for tool implementations
type BaseToolImpl struct {
	name        string
	description string
	category    string
	inputSchema map[string]interface{}
}

// Name returns the name of the tool
func (t *BaseToolImpl) Name() string { return t.name }

// Description returns the description of the tool
func (t *BaseToolImpl) Description() string { return t.description }

// Category returns the category this tool belongs to
func (t *BaseToolImpl) Category() string { return t.category }

// InputSchema returns the JSON schema for the tool's input
func (t *BaseToolImpl) InputSchema() map[string]interface{} { return t.inputSchema }

// NewBaseTool creates a new basic tool implementation
func NewBaseTool(name, description, category string, schema map[string]interface{}) *BaseToolImpl {
	return &BaseToolImpl{
		name:        name,
		description: description,
		category:    category,
		inputSchema: schema,
	}
}

// ToolDefinition is the description of a tool handed to a model
type ToolDefinition struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"input_schema"`
}

// ToolUse represents a tool call requested by the model
type ToolUse struct {
	ID    string          `json:"id,omitempty"`
	Name  string          `json:"name"`
	Input json.RawMessage `json:"input"`
}

// ToolResult represents the result of a tool execution
type ToolResult struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Result json.RawMessage `json:"result"`
}

// ToolRegistrar defines the interface for registering tools
type ToolRegistrar interface {
	// RegisterTool adds a tool to a specific category
	RegisterTool(categoryID string, tool Tool) error
}
