package accuweather

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

const searchFixture = `[
  {
    "Key": "318251",
    "LocalizedName": "Istanbul",
    "Country": {"ID": "TR", "LocalizedName": "Turkey"},
    "AdministrativeArea": {"ID": "34", "LocalizedName": "Istanbul"}
  },
  {
    "Key": "2621581",
    "LocalizedName": "Istanbul Airport",
    "Country": {"ID": "TR", "LocalizedName": "Turkey"},
    "AdministrativeArea": {"ID": "34", "LocalizedName": "Istanbul"}
  }
]`

const conditionsFixture = `[
  {
    "LocalObservationDateTime": "2026-08-24T14:35:00+03:00",
    "WeatherText": "Sunny",
    "IsDayTime": true,
    "HasPrecipitation": false,
    "PrecipitationType": null,
    "Temperature": {
      "Metric": {"Value": 28.1, "Unit": "C"},
      "Imperial": {"Value": 82.0, "Unit": "F"}
    },
    "RelativeHumidity": 54,
    "Wind": {
      "Direction": {"Degrees": 225, "Localized": "SW"},
      "Speed": {
        "Metric": {"Value": 15.2, "Unit": "km/h"},
        "Imperial": {"Value": 9.4, "Unit": "mi/h"}
      }
    },
    "UVIndex": 7,
    "UVIndexText": "High"
  }
]`

const forecastFixture = `{
  "Headline": {
    "EffectiveDate": "2026-08-24T08:00:00+03:00",
    "Category": "heat",
    "Text": "Very warm this weekend"
  },
  "DailyForecasts": [
    {
      "Date": "2026-08-24T07:00:00+03:00",
      "Temperature": {"Minimum": {"Value": 21.0, "Unit": "C"}, "Maximum": {"Value": 29.0, "Unit": "C"}},
      "Day": {"IconPhrase": "Sunny", "HasPrecipitation": false, "PrecipitationProbability": 2},
      "Night": {"IconPhrase": "Clear", "HasPrecipitation": false, "PrecipitationProbability": 1}
    },
    {
      "Date": "2026-08-25T07:00:00+03:00",
      "Temperature": {"Minimum": {"Value": 22.0, "Unit": "C"}, "Maximum": {"Value": 30.5, "Unit": "C"}},
      "Day": {"IconPhrase": "Showers", "HasPrecipitation": true, "PrecipitationType": "Rain", "PrecipitationIntensity": "Light", "PrecipitationProbability": 65},
      "Night": {"IconPhrase": "Partly cloudy", "HasPrecipitation": false, "PrecipitationProbability": 10}
    }
  ]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return NewClient(Config{APIKey: "test-key", BaseURL: ts.URL})
}

func TestSearchLocations(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/locations/v1/cities/search" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("apikey"); got != "test-key" {
			t.Errorf("apikey = %q, want test-key", got)
		}
		if got := r.URL.Query().Get("q"); got != "Istanbul" {
			t.Errorf("q = %q, want Istanbul", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(searchFixture))
	})

	locations, err := client.SearchLocations(context.Background(), "Istanbul")
	if err != nil {
		t.Fatalf("SearchLocations failed: %v", err)
	}
	if len(locations) != 2 {
		t.Fatalf("got %d locations, want 2", len(locations))
	}
	first := locations[0]
	if first.Key != "318251" {
		t.Errorf("Key = %q, want 318251", first.Key)
	}
	if first.LocalizedName != "Istanbul" {
		t.Errorf("LocalizedName = %q, want Istanbul", first.LocalizedName)
	}
	if first.Country.LocalizedName != "Turkey" {
		t.Errorf("Country = %q, want Turkey", first.Country.LocalizedName)
	}
}

func TestSearchLocationsNoMatches(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})

	locations, err := client.SearchLocations(context.Background(), "Nowhere")
	if err != nil {
		t.Fatalf("zero matches must not be an error, got: %v", err)
	}
	if len(locations) != 0 {
		t.Fatalf("got %d locations, want 0", len(locations))
	}
}

func TestSearchLocationsUpstreamStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"Code":"ServiceUnavailable","Message":"The allowed number of requests has been exceeded."}`))
	})

	_, err := client.SearchLocations(context.Background(), "Istanbul")
	if err == nil {
		t.Fatal("expected an error for a 503 response")
	}
	var upstreamErr *UpstreamError
	if !errors.As(err, &upstreamErr) {
		t.Fatalf("error is %T, want *UpstreamError", err)
	}
	if upstreamErr.Status != http.StatusServiceUnavailable {
		t.Errorf("Status = %d, want 503", upstreamErr.Status)
	}
	if upstreamErr.Message != "The allowed number of requests has been exceeded." {
		t.Errorf("Message = %q, provider message not preserved", upstreamErr.Message)
	}
	if !errors.Is(err, ErrServer) {
		t.Error("503 should classify as ErrServer")
	}
}

func TestSearchLocationsMalformedBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	})

	_, err := client.SearchLocations(context.Background(), "Istanbul")
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("got %v, want ErrDecode", err)
	}
}

func TestStatusClassification(t *testing.T) {
	cases := []struct {
		status int
		want   error
	}{
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrUnauthorized},
		{http.StatusTooManyRequests, ErrRateLimited},
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusInternalServerError, ErrServer},
	}
	for _, tc := range cases {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
		})
		_, err := client.SearchLocations(context.Background(), "x")
		if !errors.Is(err, tc.want) {
			t.Errorf("status %d classified as %v, want %v", tc.status, err, tc.want)
		}
	}
}

func TestCurrentConditions(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/currentconditions/v1/318251" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("details"); got != "true" {
			t.Errorf("details = %q, want true", got)
		}
		w.Write([]byte(conditionsFixture))
	})

	observations, err := client.CurrentConditions(context.Background(), "318251")
	if err != nil {
		t.Fatalf("CurrentConditions failed: %v", err)
	}
	if len(observations) != 1 {
		t.Fatalf("got %d observations, want 1", len(observations))
	}
	obs := observations[0]
	if obs.Temperature.Metric.Value != 28.1 || obs.Temperature.Metric.Unit != "C" {
		t.Errorf("temperature = %+v, want 28.1 C", obs.Temperature.Metric)
	}
	if obs.WeatherText != "Sunny" {
		t.Errorf("WeatherText = %q, want Sunny", obs.WeatherText)
	}
	if obs.RelativeHumidity == nil || *obs.RelativeHumidity != 54 {
		t.Errorf("RelativeHumidity = %v, want 54", obs.RelativeHumidity)
	}
	if obs.Wind.Direction.Localized != "SW" {
		t.Errorf("wind direction = %q, want SW", obs.Wind.Direction.Localized)
	}
	if obs.PrecipitationType != nil {
		t.Errorf("PrecipitationType = %v, want nil", *obs.PrecipitationType)
	}
}

func TestDailyForecast5Day(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/forecasts/v1/daily/5day/318251" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("metric") != "true" || q.Get("details") != "true" {
			t.Errorf("query = %v, want metric=true and details=true", q)
		}
		w.Write([]byte(forecastFixture))
	})

	forecast, err := client.DailyForecast5Day(context.Background(), "318251")
	if err != nil {
		t.Fatalf("DailyForecast5Day failed: %v", err)
	}
	if forecast.Headline.Text != "Very warm this weekend" {
		t.Errorf("headline = %q", forecast.Headline.Text)
	}
	if len(forecast.DailyForecasts) != 2 {
		t.Fatalf("got %d days, want 2", len(forecast.DailyForecasts))
	}
	day := forecast.DailyForecasts[1]
	if day.Temperature.Maximum.Value != 30.5 {
		t.Errorf("max = %v, want 30.5", day.Temperature.Maximum.Value)
	}
	if !day.Day.HasPrecipitation || day.Day.PrecipitationType != "Rain" {
		t.Errorf("day part = %+v, want rain", day.Day)
	}
	if day.Day.PrecipitationProbability == nil || *day.Day.PrecipitationProbability != 65 {
		t.Errorf("probability = %v, want 65", day.Day.PrecipitationProbability)
	}
}

type failingDoer struct{ err error }

func (d *failingDoer) Do(req *http.Request) (*http.Response, error) { return nil, d.err }

func TestNetworkFailure(t *testing.T) {
	client := NewClient(Config{
		APIKey: "test-key",
		Doer:   &failingDoer{err: errors.New("connection refused")},
	})

	_, err := client.SearchLocations(context.Background(), "Istanbul")
	if !errors.Is(err, ErrNetwork) {
		t.Fatalf("got %v, want ErrNetwork", err)
	}
	var upstreamErr *UpstreamError
	if !errors.As(err, &upstreamErr) {
		t.Fatalf("error is %T, want *UpstreamError", err)
	}
	if upstreamErr.Status != 0 {
		t.Errorf("Status = %d, want 0 for a failed request", upstreamErr.Status)
	}
}
