package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dileep-u-k/weather-gateway/internal/weather"
)

// --- Forecast Tool ---

// ForecastTool fetches a daily forecast for a location key. The day
// count is optional and clamps to the provider's [1,5] range.
type ForecastTool struct {
	svc WeatherService
}

// Statically verify that ForecastTool implements ToolExecutor.
var _ ToolExecutor = (*ForecastTool)(nil)

// NewForecastTool creates a new instance of the ForecastTool.
func NewForecastTool(svc WeatherService) *ForecastTool {
	return &ForecastTool{svc: svc}
}

// Definition describes the tool and its parameters to callers.
func (t *ForecastTool) Definition() Tool {
	return NewFunctionTool(
		"get_forecast",
		"Get a daily weather forecast for a location using its location key.",
		JSONSchema{
			Type: "object",
			Properties: map[string]*JSONSchema{
				"location_key": {
					Type:        "string",
					Description: "Location key obtained from search_location",
				},
				"days": {
					Type:        "integer",
					Description: "Number of days for the forecast (1-5)",
					Minimum:     floatPtr(1),
					Maximum:     floatPtr(weather.MaxForecastDays),
					Default:     weather.MaxForecastDays,
				},
			},
			Required: []string{"location_key"},
		},
	)
}

// Execute fetches the forecast and returns it as indented JSON. A
// missing days argument defaults to the full 5-day forecast; a
// non-integer value is rejected before any outbound call.
func (t *ForecastTool) Execute(ctx context.Context, arguments string) (string, error) {
	var args struct {
		LocationKey string `json:"location_key"`
		Days        *int   `json:"days"`
	}
	if err := json.Unmarshal([]byte(arguments), &args); err != nil {
		return "", &weather.ValidationError{Field: "arguments", Reason: err.Error()}
	}

	days := weather.MaxForecastDays
	if args.Days != nil {
		days = *args.Days
	}

	forecast, err := t.svc.DailyForecast(ctx, args.LocationKey, days)
	if err != nil {
		return "", err
	}

	result, err := json.MarshalIndent(forecast, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode forecast: %w", err)
	}
	return string(result), nil
}
