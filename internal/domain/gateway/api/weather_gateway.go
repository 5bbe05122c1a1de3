package api

import (
	"context"

	"weather-widget/internal/domain/model/external"
)

// WeatherGateway defines the calls made to the weather and geocoding provider.
// Every failure is returned as a *model.NetworkError.
type WeatherGateway interface {
	// CurrentWeather gets the current conditions at lat/lon in metric units
	CurrentWeather(ctx context.Context, lat, lon float64) (*external.CurrentWeatherResponse, error)

	// DirectGeocode searches locations by name, returning at most limit entries
	DirectGeocode(ctx context.Context, query string, limit int) ([]external.GeocodeResponse, error)

	// ReverseGeocode looks up the locations closest to lat/lon
	ReverseGeocode(ctx context.Context, lat, lon float64, limit int) ([]external.GeocodeResponse, error)
}
