package tools

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownTool is returned when a caller invokes a tool name that was
// never registered.
var ErrUnknownTool = errors.New("unknown tool")

// Registry holds all available tools, keyed by name.
type Registry struct {
	tools map[string]ToolExecutor
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		tools: make(map[string]ToolExecutor),
	}
}

// Register adds a tool under its definition name.
func (r *Registry) Register(tool ToolExecutor) {
	name := tool.Definition().Function.Name
	r.tools[name] = tool
}

// Definitions returns all registered tool definitions, sorted by name
// so the published list is stable.
func (r *Registry) Definitions() []Tool {
	defs := make([]Tool, 0, len(r.tools))
	for _, tool := range r.tools {
		defs = append(defs, tool.Definition())
	}
	sort.Slice(defs, func(i, j int) bool {
		return defs[i].Function.Name < defs[j].Function.Name
	})
	return defs
}

// Execute runs a tool by name with the given JSON arguments.
func (r *Registry) Execute(ctx context.Context, name, arguments string) (string, error) {
	tool, ok := r.tools[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}
	return tool.Execute(ctx, arguments)
}

// Count returns the number of registered tools.
func (r *Registry) Count() int {
	return len(r.tools)
}
