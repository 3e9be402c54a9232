package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dileep-u-k/weather-gateway/internal/weather"
)

// --- Search Location Tool ---

// SearchLocationTool resolves a free-text city name or postal code into
// matching locations with their provider keys.
type SearchLocationTool struct {
	svc WeatherService
}

// Statically verify that SearchLocationTool implements ToolExecutor.
var _ ToolExecutor = (*SearchLocationTool)(nil)

// NewSearchLocationTool creates a new instance of the SearchLocationTool.
func NewSearchLocationTool(svc WeatherService) *SearchLocationTool {
	return &SearchLocationTool{svc: svc}
}

// Definition describes the tool and its parameters to callers.
func (t *SearchLocationTool) Definition() Tool {
	return NewFunctionTool(
		"search_location",
		"Search for a location by name or postal code and return matching locations. "+
			"Each result carries a location key for use with the other weather tools.",
		JSONSchema{
			Type: "object",
			Properties: map[string]*JSONSchema{
				"query": {
					Type:        "string",
					Description: "City name or postal code to search for",
				},
			},
			Required: []string{"query"},
		},
	)
}

// Execute runs the search and returns the matches as indented JSON.
func (t *SearchLocationTool) Execute(ctx context.Context, arguments string) (string, error) {
	var args struct {
		Query string `json:"query"`
	}
	if err := json.Unmarshal([]byte(arguments), &args); err != nil {
		return "", &weather.ValidationError{Field: "arguments", Reason: err.Error()}
	}

	locations, err := t.svc.SearchLocation(ctx, args.Query)
	if err != nil {
		return "", err
	}

	result, err := json.MarshalIndent(locations, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode search results: %w", err)
	}
	return string(result), nil
}
