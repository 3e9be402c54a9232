package weather

import (
	"context"

	"github.com/dileep-u-k/weather-gateway/internal/accuweather"
)

// MaxForecastDays is the provider's daily-forecast ceiling. Requests
// outside [1, MaxForecastDays] clamp to the nearest bound.
const MaxForecastDays = 5

// maxSearchResults caps how many matches a search returns.
const maxSearchResults = 5

// Provider is the upstream capability the service depends on. It is
// satisfied by *accuweather.Client; tests substitute a stub returning
// canned responses.
type Provider interface {
	SearchLocations(ctx context.Context, query string) ([]accuweather.Location, error)
	CurrentConditions(ctx context.Context, locationKey string) ([]accuweather.Observation, error)
	DailyForecast5Day(ctx context.Context, locationKey string) (*accuweather.ForecastResponse, error)
}

// Service implements the gateway operations on top of a Provider. It
// holds no mutable state and is safe for concurrent use.
type Service struct {
	provider Provider
}

// NewService creates a Service backed by the given provider.
func NewService(provider Provider) *Service {
	return &Service{provider: provider}
}

// SearchLocation resolves a free-text city name or postal code into
// matching locations. Zero matches return an empty slice, not an error;
// the result is capped at 5 entries in the provider's own ranking.
func (s *Service) SearchLocation(ctx context.Context, query string) ([]Location, error) {
	if query == "" {
		return nil, &ValidationError{Field: "query", Reason: "must not be empty"}
	}

	matches, err := s.provider.SearchLocations(ctx, query)
	if err != nil {
		return nil, err
	}

	if len(matches) > maxSearchResults {
		matches = matches[:maxSearchResults]
	}
	locations := make([]Location, 0, len(matches))
	for _, m := range matches {
		locations = append(locations, Location{
			Key:                m.Key,
			Name:               m.LocalizedName,
			Country:            m.Country.LocalizedName,
			AdministrativeArea: m.AdministrativeArea.LocalizedName,
		})
	}
	return locations, nil
}

// CurrentWeather fetches current conditions for a location key obtained
// from SearchLocation. The provider returns a single-element array; an
// empty one is treated as an upstream failure.
func (s *Service) CurrentWeather(ctx context.Context, locationKey string) (*CurrentConditions, error) {
	if locationKey == "" {
		return nil, &ValidationError{Field: "location_key", Reason: "must not be empty"}
	}

	observations, err := s.provider.CurrentConditions(ctx, locationKey)
	if err != nil {
		return nil, err
	}
	if len(observations) == 0 {
		return nil, &accuweather.UpstreamError{
			Endpoint: "/currentconditions/v1/" + locationKey,
			Message:  "no weather data available",
			Err:      accuweather.ErrDecode,
		}
	}

	current := projectObservation(observations[0])
	return &current, nil
}

// DailyForecast fetches the daily forecast for a location key. days is
// clamped to [1, MaxForecastDays]; the provider is always asked for the
// full 5-day product and the result truncated, so a shorter forecast is
// a prefix of the full one.
func (s *Service) DailyForecast(ctx context.Context, locationKey string, days int) (*Forecast, error) {
	if locationKey == "" {
		return nil, &ValidationError{Field: "location_key", Reason: "must not be empty"}
	}
	days = clampDays(days)

	resp, err := s.provider.DailyForecast5Day(ctx, locationKey)
	if err != nil {
		return nil, err
	}
	if resp.DailyForecasts == nil {
		return nil, &accuweather.UpstreamError{
			Endpoint: "/forecasts/v1/daily/5day/" + locationKey,
			Message:  "response missing DailyForecasts",
			Err:      accuweather.ErrDecode,
		}
	}

	entries := resp.DailyForecasts
	if len(entries) > days {
		entries = entries[:days]
	}
	forecast := &Forecast{
		Headline: resp.Headline.Text,
		Days:     make([]ForecastDay, 0, len(entries)),
	}
	for _, entry := range entries {
		forecast.Days = append(forecast.Days, projectForecastDay(entry))
	}
	return forecast, nil
}

// Summary resolves a free-text location and composes current conditions
// plus the 5-day forecast into a plain-text report. The three upstream
// calls run strictly sequentially; a failure in any of them aborts the
// whole operation with no partial result.
func (s *Service) Summary(ctx context.Context, location string) (string, error) {
	if location == "" {
		return "", &ValidationError{Field: "location", Reason: "must not be empty"}
	}

	locations, err := s.SearchLocation(ctx, location)
	if err != nil {
		return "", err
	}
	if len(locations) == 0 {
		return "", &NotFoundError{Location: location}
	}

	// The provider's own ranking is authoritative; take the first match.
	resolved := locations[0]

	current, err := s.CurrentWeather(ctx, resolved.Key)
	if err != nil {
		return "", err
	}

	forecast, err := s.DailyForecast(ctx, resolved.Key, MaxForecastDays)
	if err != nil {
		return "", err
	}

	return renderSummary(resolved, current, forecast), nil
}

// clampDays bounds a requested day count to [1, MaxForecastDays].
func clampDays(days int) int {
	if days < 1 {
		return 1
	}
	if days > MaxForecastDays {
		return MaxForecastDays
	}
	return days
}

// projectObservation extracts the fields the gateway exposes from one
// provider observation. Pure renaming/extraction, no transformation.
func projectObservation(obs accuweather.Observation) CurrentConditions {
	current := CurrentConditions{
		Temperature: UnitValue{
			Value: obs.Temperature.Metric.Value,
			Unit:  obs.Temperature.Metric.Unit,
		},
		WeatherText:      obs.WeatherText,
		IsDayTime:        obs.IsDayTime,
		RelativeHumidity: obs.RelativeHumidity,
		Wind: Wind{
			Speed: UnitValue{
				Value: obs.Wind.Speed.Metric.Value,
				Unit:  obs.Wind.Speed.Metric.Unit,
			},
			Direction: obs.Wind.Direction.Localized,
		},
		UVIndex:          obs.UVIndex,
		UVIndexText:      obs.UVIndexText,
		HasPrecipitation: obs.HasPrecipitation,
		ObservationTime:  obs.LocalObservationDateTime,
	}
	if obs.PrecipitationType != nil {
		current.PrecipitationType = *obs.PrecipitationType
	}
	return current
}

// projectForecastDay extracts one forecast entry.
func projectForecastDay(entry accuweather.DailyForecast) ForecastDay {
	return ForecastDay{
		Date: entry.Date,
		MinTemperature: UnitValue{
			Value: entry.Temperature.Minimum.Value,
			Unit:  entry.Temperature.Minimum.Unit,
		},
		MaxTemperature: UnitValue{
			Value: entry.Temperature.Maximum.Value,
			Unit:  entry.Temperature.Maximum.Unit,
		},
		DayText:                   entry.Day.IconPhrase,
		NightText:                 entry.Night.IconPhrase,
		PrecipitationProbability:  entry.Day.PrecipitationProbability,
		DayHasPrecipitation:       entry.Day.HasPrecipitation,
		DayPrecipitationType:      entry.Day.PrecipitationType,
		DayPrecipitationIntensity: entry.Day.PrecipitationIntensity,
		NightHasPrecipitation:     entry.Night.HasPrecipitation,
	}
}
