// Package weather implements the gateway's four operations: location
// search, current conditions, daily forecast, and the combined text
// summary. Each operation validates its input, issues exactly one call
// per upstream endpoint through the injected Provider, and projects the
// provider's response into the simplified types below.
//
// All values are request-scoped; nothing is cached or persisted, and a
// location key is treated as opaque.
package weather

// Location is a resolved place from a search query. Key is meaningful
// only to the upstream provider.
type Location struct {
	Key                string `json:"key"`
	Name               string `json:"name"`
	Country            string `json:"country"`
	AdministrativeArea string `json:"administrative_area"`
}

// UnitValue is a measurement with its unit, e.g. 21.5 °C.
type UnitValue struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// Wind is the wind part of a current-conditions observation.
type Wind struct {
	Speed     UnitValue `json:"speed"`
	Direction string    `json:"direction"`
}

// CurrentConditions is the simplified projection of one observation.
// Optional provider fields stay nil rather than failing the lookup.
type CurrentConditions struct {
	Temperature       UnitValue `json:"temperature"`
	WeatherText       string    `json:"weather_text"`
	IsDayTime         bool      `json:"is_day_time"`
	RelativeHumidity  *int      `json:"relative_humidity"`
	Wind              Wind      `json:"wind"`
	UVIndex           *int      `json:"uv_index"`
	UVIndexText       string    `json:"uv_index_text,omitempty"`
	HasPrecipitation  bool      `json:"has_precipitation"`
	PrecipitationType string    `json:"precipitation_type,omitempty"`
	ObservationTime   string    `json:"observation_time"`
}

// ForecastDay is one day of the daily forecast, in the provider's
// chronological order.
type ForecastDay struct {
	Date                      string    `json:"date"`
	MinTemperature            UnitValue `json:"min_temperature"`
	MaxTemperature            UnitValue `json:"max_temperature"`
	DayText                   string    `json:"day"`
	NightText                 string    `json:"night"`
	PrecipitationProbability  *int      `json:"precipitation_probability,omitempty"`
	DayHasPrecipitation       bool      `json:"day_has_precipitation"`
	DayPrecipitationType      string    `json:"day_precipitation_type,omitempty"`
	DayPrecipitationIntensity string    `json:"day_precipitation_intensity,omitempty"`
	NightHasPrecipitation     bool      `json:"night_has_precipitation"`
}

// Forecast is the daily forecast for a location, already truncated to
// the requested number of days.
type Forecast struct {
	Headline string        `json:"headline,omitempty"`
	Days     []ForecastDay `json:"daily_forecasts"`
}
