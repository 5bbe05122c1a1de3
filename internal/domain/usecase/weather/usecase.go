package weather

import (
	"context"

	"weather-widget/internal/domain/entity"
)

// MaxSearchResults caps the number of cities SearchCities returns
const MaxSearchResults = 5

type UseCase interface {
	// FetchCurrentWeather gets the normalized current weather at lat/lon
	FetchCurrentWeather(ctx context.Context, lat, lon float64) (entity.WeatherSnapshot, error)

	// SearchCities finds up to MaxSearchResults cities matching query
	SearchCities(ctx context.Context, query string) ([]entity.City, error)

	// ResolveCurrentPosition asks the configured locator for the current position
	ResolveCurrentPosition(ctx context.Context) (entity.Position, error)

	// LocateCurrentCity resolves the current position and names it through reverse geocoding
	LocateCurrentCity(ctx context.Context) (entity.City, error)
}
