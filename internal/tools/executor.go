package tools

import (
	"context"

	"github.com/dileep-u-k/weather-gateway/internal/weather"
)

// ToolExecutor is the standard interface for any tool exposed by the
// gateway.
//
// By having all tools implement this interface, the transports can list
// and execute them in a standardized, plug-and-play fashion without
// knowing the specific details of each tool's implementation.
type ToolExecutor interface {
	// Definition returns the tool's schema: its name, description, and
	// parameter shape, as published to callers.
	Definition() Tool

	// Execute runs the actual logic of the tool. It receives the
	// arguments as a JSON object string and returns the result as a
	// string: structured tools return indented JSON, the summary tool
	// returns plain text.
	Execute(ctx context.Context, arguments string) (string, error)
}

// WeatherService is the capability the weather tools are built on. It
// is satisfied by *weather.Service; tests substitute a stub.
type WeatherService interface {
	SearchLocation(ctx context.Context, query string) ([]weather.Location, error)
	CurrentWeather(ctx context.Context, locationKey string) (*weather.CurrentConditions, error)
	DailyForecast(ctx context.Context, locationKey string, days int) (*weather.Forecast, error)
	Summary(ctx context.Context, location string) (string, error)
}
