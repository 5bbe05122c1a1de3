package weather

import (
	"context"
	"fmt"

	"weather-widget/internal/domain/entity"
	"weather-widget/internal/domain/gateway/api"
	"weather-widget/internal/domain/model/external"
	"weather-widget/pkg/log"
	"weather-widget/pkg/msg"
	"weather-widget/pkg/util/numberutils"

	"go.uber.org/zap"
)

type weatherUseCase struct {
	apiGateway api.WeatherGateway
	locator    api.Locator
}

// NewWeatherUseCase creates the weather client. A nil locator means the
// environment has no geolocation and position lookups always fail.
func NewWeatherUseCase(apiGateway api.WeatherGateway, locator api.Locator) UseCase {
	if locator == nil {
		locator = api.NewUnsupportedLocator()
	}
	return &weatherUseCase{
		apiGateway: apiGateway,
		locator:    locator,
	}
}

func (uc *weatherUseCase) FetchCurrentWeather(ctx context.Context, lat, lon float64) (entity.WeatherSnapshot, error) {
	resp, err := uc.apiGateway.CurrentWeather(ctx, lat, lon)
	if err != nil {
		log.Warn(msg.GetMessage("weather.fetch-failed", lat, lon), zap.Error(err))
		return entity.WeatherSnapshot{}, err
	}
	return toSnapshot(resp), nil
}

func (uc *weatherUseCase) SearchCities(ctx context.Context, query string) ([]entity.City, error) {
	results, err := uc.apiGateway.DirectGeocode(ctx, query, MaxSearchResults)
	if err != nil {
		log.Warn(msg.GetMessage("weather.search-failed", query), zap.Error(err))
		return nil, err
	}

	if len(results) > MaxSearchResults {
		results = results[:MaxSearchResults]
	}

	cities := make([]entity.City, 0, len(results))
	for _, r := range results {
		cities = append(cities, entity.NewCity(r.Name, r.Lat, r.Lon, r.Country))
	}
	return cities, nil
}

func (uc *weatherUseCase) ResolveCurrentPosition(ctx context.Context) (entity.Position, error) {
	return uc.locator.CurrentPosition(ctx)
}

func (uc *weatherUseCase) LocateCurrentCity(ctx context.Context) (entity.City, error) {
	position, err := uc.ResolveCurrentPosition(ctx)
	if err != nil {
		return entity.City{}, err
	}

	place := uc.cityName(ctx, position.Lat, position.Lon)
	return entity.NewCity(place.City, position.Lat, position.Lon, place.Country), nil
}

// cityName reverse geocodes lat/lon. It never fails: any problem yields
// "Unknown" for the fields that could not be resolved.
func (uc *weatherUseCase) cityName(ctx context.Context, lat, lon float64) entity.Place {
	results, err := uc.apiGateway.ReverseGeocode(ctx, lat, lon, 1)
	if err != nil {
		log.Warn(msg.GetMessage("weather.reverse-failed", lat, lon), zap.Error(err))
		return entity.UnknownPlace
	}
	if len(results) == 0 {
		return entity.UnknownPlace
	}

	place := entity.Place{City: results[0].Name, Country: results[0].Country}
	if place.City == "" {
		place.City = entity.UnknownPlaceName
	}
	if place.Country == "" {
		place.Country = entity.UnknownPlaceName
	}
	return place
}

func toSnapshot(resp *external.CurrentWeatherResponse) entity.WeatherSnapshot {
	snapshot := entity.WeatherSnapshot{
		City:        resp.Name,
		Country:     resp.Sys.Country,
		Temperature: numberutils.RoundHalfUp(resp.Main.Temp),
		FeelsLike:   numberutils.RoundHalfUp(resp.Main.FeelsLike),
		Humidity:    resp.Main.Humidity,
		Pressure:    resp.Main.Pressure,
		Sunrise:     resp.Sys.Sunrise,
		Sunset:      resp.Sys.Sunset,
	}

	if len(resp.Weather) > 0 {
		snapshot.Description = resp.Weather[0].Description
		snapshot.Icon = resp.Weather[0].Icon
	}
	if resp.Wind != nil {
		snapshot.WindSpeed = numberutils.RoundTo(resp.Wind.Speed, 1)
	}
	if resp.Visibility != nil {
		snapshot.Visibility = numberutils.RoundHalfUp(*resp.Visibility / 1000)
	}
	if resp.Clouds != nil {
		snapshot.Clouds = resp.Clouds.All
	}
	if resp.Timezone != nil {
		snapshot.Timezone = utcOffsetLabel(*resp.Timezone)
	}
	return snapshot
}

// utcOffsetLabel formats an offset in seconds as UTC+HH:MM
func utcOffsetLabel(offsetSeconds int) string {
	sign := '+'
	if offsetSeconds < 0 {
		sign = '-'
		offsetSeconds = -offsetSeconds
	}
	return fmt.Sprintf("UTC%c%02d:%02d", sign, offsetSeconds/3600, offsetSeconds%3600/60)
}
