package api

import (
	"context"
	"errors"
	"strconv"

	"weather-widget/internal/domain/model"
	"weather-widget/internal/domain/model/external"
	"weather-widget/pkg/http"
)

const (
	currentWeatherPath = "/data/2.5/weather"
	directGeocodePath  = "/geo/1.0/direct"
	reverseGeocodePath = "/geo/1.0/reverse"

	apiKeyParam = "appid"
)

// ErrMissingAPIKey is returned when a weather gateway is built without an API key
var ErrMissingAPIKey = errors.New("weather provider API key is required")

// weatherGatewayImpl implements the WeatherGateway interface
type weatherGatewayImpl struct {
	apiKey        string
	weatherClient *http.Client
	geoClient     *http.Client
}

// NewWeatherGateway creates a WeatherGateway. weatherBaseURL serves the current
// weather endpoint and geoBaseURL the geocoding endpoints; both are usually the
// same host. The API key is sent on every call and masked in logs.
func NewWeatherGateway(apiKey, weatherBaseURL, geoBaseURL string, clientOptions http.ClientOptions) (WeatherGateway, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	clientOptions.RedactedQueryParams = append(clientOptions.RedactedQueryParams, apiKeyParam)

	return &weatherGatewayImpl{
		apiKey:        apiKey,
		weatherClient: http.NewHttpClient(weatherBaseURL, clientOptions),
		geoClient:     http.NewHttpClient(geoBaseURL, clientOptions),
	}, nil
}

// CurrentWeather gets the current conditions at lat/lon
func (w *weatherGatewayImpl) CurrentWeather(ctx context.Context, lat, lon float64) (*external.CurrentWeatherResponse, error) {
	successResp, errResp, _, err := w.weatherClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath(currentWeatherPath).
		WithQueryParams(map[string]string{
			"lat":       formatFloat(lat),
			"lon":       formatFloat(lon),
			apiKeyParam: w.apiKey,
			"units":     "metric",
		}).
		WithSuccessResp(&external.CurrentWeatherResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err != nil {
		return nil, toNetworkError("fetch current weather", errResp, err)
	}

	return successResp.(*external.CurrentWeatherResponse), nil
}

// DirectGeocode searches locations by name
func (w *weatherGatewayImpl) DirectGeocode(ctx context.Context, query string, limit int) ([]external.GeocodeResponse, error) {
	return w.geocode(ctx, "search cities", directGeocodePath, map[string]string{
		"q":         query,
		apiKeyParam: w.apiKey,
		"limit":     strconv.Itoa(limit),
	})
}

// ReverseGeocode looks up the locations closest to lat/lon
func (w *weatherGatewayImpl) ReverseGeocode(ctx context.Context, lat, lon float64, limit int) ([]external.GeocodeResponse, error) {
	return w.geocode(ctx, "reverse geocode", reverseGeocodePath, map[string]string{
		"lat":       formatFloat(lat),
		"lon":       formatFloat(lon),
		apiKeyParam: w.apiKey,
		"limit":     strconv.Itoa(limit),
	})
}

func (w *weatherGatewayImpl) geocode(ctx context.Context, op, path string, params map[string]string) ([]external.GeocodeResponse, error) {
	successResp, errResp, _, err := w.geoClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath(path).
		WithQueryParams(params).
		WithSuccessResp(&[]external.GeocodeResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err != nil {
		return nil, toNetworkError(op, errResp, err)
	}

	return *successResp.(*[]external.GeocodeResponse), nil
}

// toNetworkError keeps the provider's own message when it sent one
func toNetworkError(op string, errResp any, err error) error {
	var statusErr *http.StatusError
	if !errors.As(err, &statusErr) {
		return &model.NetworkError{Op: op, Err: err}
	}

	cause := err
	if apiErr, ok := errResp.(*external.APIErrorResponse); ok && apiErr.Message != "" {
		cause = errors.New(apiErr.Message)
	}
	return &model.NetworkError{Op: op, StatusCode: statusErr.StatusCode, Err: cause}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
