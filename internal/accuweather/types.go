// Package accuweather implements a typed HTTP client for the AccuWeather
// data service. It covers the three endpoints the gateway needs: city
// search by text, current conditions by location key, and the 5-day
// daily forecast by location key.
//
// The structs in this file mirror the provider's JSON schema verbatim.
// They are decode targets only; the gateway's own simplified types live
// in the weather package.
package accuweather

// Area is a named administrative region (country or state/province).
type Area struct {
	ID            string `json:"ID"`
	LocalizedName string `json:"LocalizedName"`
}

// Location is one entry of the city-search response array.
type Location struct {
	Key                string `json:"Key"`
	LocalizedName      string `json:"LocalizedName"`
	Country            Area   `json:"Country"`
	AdministrativeArea Area   `json:"AdministrativeArea"`
}

// UnitValue is the provider's {Value, Unit} pair.
type UnitValue struct {
	Value float64 `json:"Value"`
	Unit  string  `json:"Unit"`
}

// MetricImperial holds a measurement in both unit systems. The gateway
// only projects the metric side.
type MetricImperial struct {
	Metric   UnitValue `json:"Metric"`
	Imperial UnitValue `json:"Imperial"`
}

// WindDirection is the direction part of a wind observation.
type WindDirection struct {
	Degrees   int    `json:"Degrees"`
	Localized string `json:"Localized"`
}

// Wind is a wind observation with speed and direction.
type Wind struct {
	Direction WindDirection  `json:"Direction"`
	Speed     MetricImperial `json:"Speed"`
}

// Observation is one element of the current-conditions response array.
// The provider always returns a single-element array for this endpoint.
// Optional fields use pointers so "absent" survives the round trip.
type Observation struct {
	LocalObservationDateTime string         `json:"LocalObservationDateTime"`
	WeatherText              string         `json:"WeatherText"`
	IsDayTime                bool           `json:"IsDayTime"`
	Temperature              MetricImperial `json:"Temperature"`
	RelativeHumidity         *int           `json:"RelativeHumidity"`
	Wind                     Wind           `json:"Wind"`
	UVIndex                  *int           `json:"UVIndex"`
	UVIndexText              string         `json:"UVIndexText"`
	HasPrecipitation         bool           `json:"HasPrecipitation"`
	PrecipitationType        *string        `json:"PrecipitationType"`
}

// Headline is the provider's forecast synopsis.
type Headline struct {
	EffectiveDate string `json:"EffectiveDate"`
	Category      string `json:"Category"`
	Text          string `json:"Text"`
}

// TemperatureRange is the daily min/max pair.
type TemperatureRange struct {
	Minimum UnitValue `json:"Minimum"`
	Maximum UnitValue `json:"Maximum"`
}

// DayPart describes either the day or night half of a forecast day.
type DayPart struct {
	IconPhrase               string `json:"IconPhrase"`
	HasPrecipitation         bool   `json:"HasPrecipitation"`
	PrecipitationType        string `json:"PrecipitationType"`
	PrecipitationIntensity   string `json:"PrecipitationIntensity"`
	PrecipitationProbability *int   `json:"PrecipitationProbability"`
}

// DailyForecast is one entry of the DailyForecasts array, in
// chronological order as returned by the provider.
type DailyForecast struct {
	Date        string           `json:"Date"`
	Temperature TemperatureRange `json:"Temperature"`
	Day         DayPart          `json:"Day"`
	Night       DayPart          `json:"Night"`
}

// ForecastResponse is the body of the daily-forecast endpoint.
// DailyForecasts stays nil when the field is absent, which callers
// treat as a malformed response.
type ForecastResponse struct {
	Headline       Headline        `json:"Headline"`
	DailyForecasts []DailyForecast `json:"DailyForecasts"`
}

// apiError is the provider's error body shape, e.g.
// {"Code":"Unauthorized","Message":"Api Authorization failed","Reference":"..."}.
type apiError struct {
	Code      string `json:"Code"`
	Message   string `json:"Message"`
	Reference string `json:"Reference"`
}
