// Package tools defines the gateway's tool surface: the data structures
// describing each remote-procedure tool (name, description, parameter
// schema) and the registry that executes them by name. These types are
// a transport-neutral representation; the HTTP and MCP layers both
// serve them.
package tools

// ToolTypeFunction is the standard type for function-based tools.
const ToolTypeFunction = "function"

// Tool is the published schema for one callable tool.
type Tool struct {
	// Type specifies the type of tool, which is almost always "function".
	Type string `json:"type"`
	// Function holds the detailed definition of the function.
	Function Function `json:"function"`
}

// Function defines the name, description, and parameters of a callable
// tool, following the common JSON Schema format.
type Function struct {
	// Name is the name of the function to be called (e.g., "search_location").
	Name string `json:"name"`
	// Description is a clear, concise explanation of what the function does.
	Description string `json:"description"`
	// Parameters defines the arguments the function accepts, structured as a JSON Schema.
	Parameters JSONSchema `json:"parameters"`
}

// JSONSchema is a structured, type-safe representation of the JSON
// Schema used for tool parameters. Using this struct instead of
// `map[string]interface{}` prevents schema errors and keeps tool
// definitions readable.
type JSONSchema struct {
	// Type defines the data type for a schema node (e.g., "object", "string", "integer").
	// For the top-level parameters object, this should always be "object".
	Type string `json:"type"`
	// Description explains what a specific parameter is for.
	Description string `json:"description,omitempty"`
	// Properties describes the parameters of an object, keyed by name.
	Properties map[string]*JSONSchema `json:"properties,omitempty"`
	// Required lists the parameter names that are mandatory.
	Required []string `json:"required,omitempty"`
	// Minimum and Maximum bound numeric parameters when set.
	Minimum *float64 `json:"minimum,omitempty"`
	Maximum *float64 `json:"maximum,omitempty"`
	// Default is the value used when an optional parameter is omitted.
	Default any `json:"default,omitempty"`
}

// NewFunctionTool is a helper that reduces boilerplate and ensures a
// tool is created with the correct "function" type.
func NewFunctionTool(name, description string, parameters JSONSchema) Tool {
	return Tool{
		Type: ToolTypeFunction,
		Function: Function{
			Name:        name,
			Description: description,
			Parameters:  parameters,
		},
	}
}

// floatPtr is a small helper for schema bounds.
func floatPtr(v float64) *float64 { return &v }
