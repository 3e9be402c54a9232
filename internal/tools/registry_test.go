package tools

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/dileep-u-k/weather-gateway/internal/weather"
)

// stubService is a test implementation of WeatherService with
// injectable behavior.
type stubService struct {
	searchFunc   func(ctx context.Context, query string) ([]weather.Location, error)
	currentFunc  func(ctx context.Context, key string) (*weather.CurrentConditions, error)
	forecastFunc func(ctx context.Context, key string, days int) (*weather.Forecast, error)
	summaryFunc  func(ctx context.Context, location string) (string, error)
}

func (s *stubService) SearchLocation(ctx context.Context, query string) ([]weather.Location, error) {
	if s.searchFunc != nil {
		return s.searchFunc(ctx, query)
	}
	return nil, nil
}

func (s *stubService) CurrentWeather(ctx context.Context, key string) (*weather.CurrentConditions, error) {
	if s.currentFunc != nil {
		return s.currentFunc(ctx, key)
	}
	return &weather.CurrentConditions{}, nil
}

func (s *stubService) DailyForecast(ctx context.Context, key string, days int) (*weather.Forecast, error) {
	if s.forecastFunc != nil {
		return s.forecastFunc(ctx, key, days)
	}
	return &weather.Forecast{}, nil
}

func (s *stubService) Summary(ctx context.Context, location string) (string, error) {
	if s.summaryFunc != nil {
		return s.summaryFunc(ctx, location)
	}
	return "", nil
}

func newTestRegistry(svc WeatherService) *Registry {
	registry := NewRegistry()
	registry.Register(NewSearchLocationTool(svc))
	registry.Register(NewCurrentWeatherTool(svc))
	registry.Register(NewForecastTool(svc))
	registry.Register(NewSummaryTool(svc))
	return registry
}

func TestRegistryDefinitions(t *testing.T) {
	registry := newTestRegistry(&stubService{})

	if registry.Count() != 4 {
		t.Fatalf("Count = %d, want 4", registry.Count())
	}

	defs := registry.Definitions()
	wantOrder := []string{"get_current_weather", "get_forecast", "get_weather_summary", "search_location"}
	for i, def := range defs {
		if def.Function.Name != wantOrder[i] {
			t.Errorf("definition %d = %q, want %q (sorted)", i, def.Function.Name, wantOrder[i])
		}
		if def.Type != ToolTypeFunction {
			t.Errorf("tool %q has type %q, want %q", def.Function.Name, def.Type, ToolTypeFunction)
		}
	}
}

func TestRegistryUnknownTool(t *testing.T) {
	registry := newTestRegistry(&stubService{})

	_, err := registry.Execute(context.Background(), "does_not_exist", "{}")
	if !errors.Is(err, ErrUnknownTool) {
		t.Fatalf("got %v, want ErrUnknownTool", err)
	}
}

func TestSearchLocationToolExecute(t *testing.T) {
	svc := &stubService{
		searchFunc: func(ctx context.Context, query string) ([]weather.Location, error) {
			if query != "Istanbul" {
				t.Errorf("query = %q, want Istanbul", query)
			}
			return []weather.Location{{Key: "318251", Name: "Istanbul", Country: "Turkey"}}, nil
		},
	}
	registry := newTestRegistry(svc)

	result, err := registry.Execute(context.Background(), "search_location", `{"query":"Istanbul"}`)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	var locations []weather.Location
	if err := json.Unmarshal([]byte(result), &locations); err != nil {
		t.Fatalf("result is not JSON: %v", err)
	}
	if len(locations) != 1 || locations[0].Key != "318251" {
		t.Errorf("result = %s", result)
	}
}

func TestToolRejectsMalformedArguments(t *testing.T) {
	registry := newTestRegistry(&stubService{})

	_, err := registry.Execute(context.Background(), "search_location", `{"query":`)
	var validationErr *weather.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("got %v, want *ValidationError for malformed JSON", err)
	}
}

func TestForecastToolDefaultsToFiveDays(t *testing.T) {
	var gotDays int
	svc := &stubService{
		forecastFunc: func(ctx context.Context, key string, days int) (*weather.Forecast, error) {
			gotDays = days
			return &weather.Forecast{Days: []weather.ForecastDay{}}, nil
		},
	}
	registry := newTestRegistry(svc)

	if _, err := registry.Execute(context.Background(), "get_forecast", `{"location_key":"318251"}`); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if gotDays != weather.MaxForecastDays {
		t.Errorf("days = %d, want default %d", gotDays, weather.MaxForecastDays)
	}

	if _, err := registry.Execute(context.Background(), "get_forecast", `{"location_key":"318251","days":2}`); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if gotDays != 2 {
		t.Errorf("days = %d, want 2", gotDays)
	}
}

func TestForecastToolRejectsNonIntegerDays(t *testing.T) {
	called := false
	svc := &stubService{
		forecastFunc: func(ctx context.Context, key string, days int) (*weather.Forecast, error) {
			called = true
			return &weather.Forecast{}, nil
		},
	}
	registry := newTestRegistry(svc)

	_, err := registry.Execute(context.Background(), "get_forecast", `{"location_key":"318251","days":2.5}`)
	var validationErr *weather.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("got %v, want *ValidationError for non-integer days", err)
	}
	if called {
		t.Error("service must not be reached with invalid arguments")
	}
}

func TestSummaryToolReturnsPlainText(t *testing.T) {
	svc := &stubService{
		summaryFunc: func(ctx context.Context, location string) (string, error) {
			return "Weather for " + location + ":\n\nCURRENT CONDITIONS:\n", nil
		},
	}
	registry := newTestRegistry(svc)

	result, err := registry.Execute(context.Background(), "get_weather_summary", `{"location":"Istanbul"}`)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !strings.HasPrefix(result, "Weather for Istanbul:") {
		t.Errorf("summary text was altered: %q", result)
	}
}

func TestSummaryToolPropagatesNotFound(t *testing.T) {
	svc := &stubService{
		summaryFunc: func(ctx context.Context, location string) (string, error) {
			return "", &weather.NotFoundError{Location: location}
		},
	}
	registry := newTestRegistry(svc)

	_, err := registry.Execute(context.Background(), "get_weather_summary", `{"location":"Atlantis"}`)
	var notFoundErr *weather.NotFoundError
	if !errors.As(err, &notFoundErr) {
		t.Fatalf("got %v, want *NotFoundError", err)
	}
}
