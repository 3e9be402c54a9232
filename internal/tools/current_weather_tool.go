package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dileep-u-k/weather-gateway/internal/weather"
)

// --- Current Weather Tool ---

// CurrentWeatherTool fetches current conditions for a location key.
type CurrentWeatherTool struct {
	svc WeatherService
}

// Statically verify that CurrentWeatherTool implements ToolExecutor.
var _ ToolExecutor = (*CurrentWeatherTool)(nil)

// NewCurrentWeatherTool creates a new instance of the CurrentWeatherTool.
func NewCurrentWeatherTool(svc WeatherService) *CurrentWeatherTool {
	return &CurrentWeatherTool{svc: svc}
}

// Definition describes the tool and its parameters to callers.
func (t *CurrentWeatherTool) Definition() Tool {
	return NewFunctionTool(
		"get_current_weather",
		"Get current weather conditions for a location using its location key.",
		JSONSchema{
			Type: "object",
			Properties: map[string]*JSONSchema{
				"location_key": {
					Type:        "string",
					Description: "Location key obtained from search_location",
				},
			},
			Required: []string{"location_key"},
		},
	)
}

// Execute fetches the conditions and returns them as indented JSON.
func (t *CurrentWeatherTool) Execute(ctx context.Context, arguments string) (string, error) {
	var args struct {
		LocationKey string `json:"location_key"`
	}
	if err := json.Unmarshal([]byte(arguments), &args); err != nil {
		return "", &weather.ValidationError{Field: "arguments", Reason: err.Error()}
	}

	current, err := t.svc.CurrentWeather(ctx, args.LocationKey)
	if err != nil {
		return "", err
	}

	result, err := json.MarshalIndent(current, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode current conditions: %w", err)
	}
	return string(result), nil
}
