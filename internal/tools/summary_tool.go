package tools

import (
	"context"
	"encoding/json"

	"github.com/dileep-u-k/weather-gateway/internal/weather"
)

// --- Weather Summary Tool ---

// SummaryTool is the convenience tool that combines search_location,
// get_current_weather, and get_forecast into one plain-text report.
type SummaryTool struct {
	svc WeatherService
}

// Statically verify that SummaryTool implements ToolExecutor.
var _ ToolExecutor = (*SummaryTool)(nil)

// NewSummaryTool creates a new instance of the SummaryTool.
func NewSummaryTool(svc WeatherService) *SummaryTool {
	return &SummaryTool{svc: svc}
}

// Definition describes the tool and its parameters to callers.
func (t *SummaryTool) Definition() Tool {
	return NewFunctionTool(
		"get_weather_summary",
		"Get a complete weather summary for a location, including current conditions "+
			"and the 5-day forecast, as human-readable text.",
		JSONSchema{
			Type: "object",
			Properties: map[string]*JSONSchema{
				"location": {
					Type:        "string",
					Description: "City name or postal code",
				},
			},
			Required: []string{"location"},
		},
	)
}

// Execute composes the summary. The result is plain text, not JSON.
func (t *SummaryTool) Execute(ctx context.Context, arguments string) (string, error) {
	var args struct {
		Location string `json:"location"`
	}
	if err := json.Unmarshal([]byte(arguments), &args); err != nil {
		return "", &weather.ValidationError{Field: "arguments", Reason: err.Error()}
	}

	return t.svc.Summary(ctx, args.Location)
}
