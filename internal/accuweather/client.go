package accuweather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// DefaultBaseURL is the provider's public data service endpoint.
const DefaultBaseURL = "http://dataservice.accuweather.com"

// DefaultTimeout bounds each outbound call. There is no retry logic, so
// a slow upstream only ever blocks the one invocation that hit it.
const DefaultTimeout = 10 * time.Second

const userAgent = "Weather-Gateway/1.0"

// Doer issues a single HTTP request. *http.Client satisfies it; tests
// substitute a stub to return canned responses without a network.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config carries the static, read-only values shared by every call:
// the API key and base URL. There is no rotation or refresh lifecycle.
type Config struct {
	// APIKey is the static key sent as the `apikey` query parameter.
	APIKey string
	// BaseURL overrides DefaultBaseURL, mainly for tests.
	BaseURL string
	// Timeout overrides DefaultTimeout for the internally built client.
	// Ignored when a custom Doer is supplied.
	Timeout time.Duration
	// Doer overrides the internally built *http.Client.
	Doer Doer
}

// Client talks to the AccuWeather data service. Each method is a single
// GET with no retries; failures come back as *UpstreamError. A Client
// holds no mutable state and is safe for concurrent use.
type Client struct {
	apiKey  string
	baseURL string
	doer    Doer
}

// NewClient creates a Client, filling in defaults for anything Config
// leaves unset.
func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	doer := cfg.Doer
	if doer == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		doer = &http.Client{Timeout: timeout}
	}
	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: baseURL,
		doer:    doer,
	}
}

// SearchLocations calls the city-search endpoint. Zero matches decode to
// an empty slice, which is not an error.
func (c *Client) SearchLocations(ctx context.Context, query string) ([]Location, error) {
	params := url.Values{}
	params.Set("q", query)

	var locations []Location
	if err := c.get(ctx, "/locations/v1/cities/search", params, &locations); err != nil {
		return nil, err
	}
	return locations, nil
}

// CurrentConditions calls the current-conditions endpoint for a
// location key. The provider returns a single-element array; the caller
// decides how to treat an empty one.
func (c *Client) CurrentConditions(ctx context.Context, locationKey string) ([]Observation, error) {
	params := url.Values{}
	params.Set("details", "true")

	var observations []Observation
	path := "/currentconditions/v1/" + url.PathEscape(locationKey)
	if err := c.get(ctx, path, params, &observations); err != nil {
		return nil, err
	}
	return observations, nil
}

// DailyForecast5Day calls the 5-day daily forecast endpoint for a
// location key, requesting metric units and the detailed payload so
// precipitation probabilities are included.
func (c *Client) DailyForecast5Day(ctx context.Context, locationKey string) (*ForecastResponse, error) {
	params := url.Values{}
	params.Set("details", "true")
	params.Set("metric", "true")

	var forecast ForecastResponse
	path := "/forecasts/v1/daily/5day/" + url.PathEscape(locationKey)
	if err := c.get(ctx, path, params, &forecast); err != nil {
		return nil, err
	}
	return &forecast, nil
}

// get issues one GET against the provider and decodes the JSON body
// into out. The API key is appended to whatever parameters the caller
// supplies.
func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	params.Set("apikey", c.apiKey)
	requestURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create provider request: %w", err)
	}
	// Some services block default Go HTTP clients, so set a User-Agent.
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.doer.Do(req)
	if err != nil {
		return &UpstreamError{
			Endpoint: path,
			Message:  fmt.Sprintf("request failed: %v", err),
			Err:      ErrNetwork,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return newAPIError(path, resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &UpstreamError{
			Endpoint: path,
			Status:   resp.StatusCode,
			Message:  fmt.Sprintf("failed to parse response body: %v", err),
			Err:      ErrDecode,
		}
	}
	return nil
}

// newAPIError builds an *UpstreamError from a non-200 response, keeping
// the provider's own message when the body parses as its error shape.
func newAPIError(endpoint string, resp *http.Response) error {
	message := resp.Status

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err == nil && len(body) > 0 {
		var apiErr apiError
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Message != "" {
			message = apiErr.Message
		} else {
			message = string(body)
		}
	}

	return &UpstreamError{
		Endpoint: endpoint,
		Status:   resp.StatusCode,
		Message:  message,
		Err:      sentinelForStatus(resp.StatusCode),
	}
}
