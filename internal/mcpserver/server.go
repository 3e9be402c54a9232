// Package mcpserver exposes the weather tools over the Model Context
// Protocol. The four tools are registered on an MCP server which is
// then served over streamable HTTP, so MCP clients can call them with
// the same names and parameters the REST surface publishes.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/dileep-u-k/weather-gateway/internal/weather"
)

// ServerName identifies the MCP server to connecting clients.
const ServerName = "Weather MCP"

// WeatherService is the capability the MCP handlers are built on. It is
// satisfied by *weather.Service.
type WeatherService interface {
	SearchLocation(ctx context.Context, query string) ([]weather.Location, error)
	CurrentWeather(ctx context.Context, locationKey string) (*weather.CurrentConditions, error)
	DailyForecast(ctx context.Context, locationKey string, days int) (*weather.Forecast, error)
	Summary(ctx context.Context, location string) (string, error)
}

// NewHandler builds an MCP server with the four weather tools and wraps
// it in a streamable-HTTP transport, returned as a plain http.Handler
// so the composition root can mount it wherever it likes.
func NewHandler(svc WeatherService, serverVersion string) http.Handler {
	s := server.NewMCPServer(
		ServerName,
		serverVersion,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)
	registerTools(s, svc)
	return server.NewStreamableHTTPServer(s, server.WithStateLess(true))
}

// registerTools adds the four tools and their handlers. Tool-level
// failures (validation, upstream errors, unresolvable locations) are
// reported as MCP error results rather than transport errors, so
// clients see the message.
func registerTools(s *server.MCPServer, svc WeatherService) {
	s.AddTool(mcp.NewTool("search_location",
		mcp.WithDescription("Search for a location by name or postal code and return matching locations. "+
			"Each result carries a location key for use with the other weather tools."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("City name or postal code to search for"),
		),
	), searchLocationHandler(svc))

	s.AddTool(mcp.NewTool("get_current_weather",
		mcp.WithDescription("Get current weather conditions for a location using its location key."),
		mcp.WithString("location_key",
			mcp.Required(),
			mcp.Description("Location key obtained from search_location"),
		),
	), currentWeatherHandler(svc))

	s.AddTool(mcp.NewTool("get_forecast",
		mcp.WithDescription("Get a daily weather forecast for a location using its location key."),
		mcp.WithString("location_key",
			mcp.Required(),
			mcp.Description("Location key obtained from search_location"),
		),
		mcp.WithNumber("days",
			mcp.Description("Number of days for the forecast (1-5)"),
			mcp.Min(1),
			mcp.Max(weather.MaxForecastDays),
			mcp.DefaultNumber(weather.MaxForecastDays),
		),
	), forecastHandler(svc))

	s.AddTool(mcp.NewTool("get_weather_summary",
		mcp.WithDescription("Get a complete weather summary for a location, including current conditions "+
			"and the 5-day forecast, as human-readable text."),
		mcp.WithString("location",
			mcp.Required(),
			mcp.Description("City name or postal code"),
		),
	), summaryHandler(svc))
}

func searchLocationHandler(svc WeatherService) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query, err := req.RequireString("query")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		locations, err := svc.SearchLocation(ctx, query)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(locations)
	}
}

func currentWeatherHandler(svc WeatherService) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		key, err := req.RequireString("location_key")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		current, err := svc.CurrentWeather(ctx, key)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(current)
	}
}

func forecastHandler(svc WeatherService) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		key, err := req.RequireString("location_key")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		days := req.GetInt("days", weather.MaxForecastDays)
		forecast, err := svc.DailyForecast(ctx, key, days)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(forecast)
	}
}

func summaryHandler(svc WeatherService) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		location, err := req.RequireString("location")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		summary, err := svc.Summary(ctx, location)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(summary), nil
	}
}

// jsonResult encodes a structured value as an indented-JSON text result.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	encoded, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode tool result: %w", err)
	}
	return mcp.NewToolResultText(string(encoded)), nil
}
