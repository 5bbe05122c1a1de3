package model

import "weather-widget/internal/domain/entity"

type WeatherQueryDTO struct {
	Lat float64 `validate:"gte=-90,lte=90"`
	Lon float64 `validate:"gte=-180,lte=180"`
}

type CitySearchQueryDTO struct {
	Query string `validate:"required"`
}

type ReplaceCitiesDTO struct {
	Cities []entity.City `json:"cities" validate:"dive"`
}

type AddCityDTO struct {
	Name    string   `json:"name" validate:"required"`
	Lat     *float64 `json:"lat" validate:"required,gte=-90,lte=90"`
	Lon     *float64 `json:"lon" validate:"required,gte=-180,lte=180"`
	Country string   `json:"country"`
}

// DashboardResponse is the state a widget renders: the stored cities and,
// per city id, either its current weather or the reason it could not be fetched.
type DashboardResponse struct {
	Cities         []entity.City                     `json:"cities"`
	CurrentWeather map[string]entity.WeatherSnapshot `json:"currentWeather"`
	Errors         map[string]string                 `json:"errors"`
}

type WidgetConfigResponse struct {
	Cities      []string         `json:"cities"`
	AutoRefresh int64            `json:"autoRefresh"`
	Position    entity.Placement `json:"position"`
}

// SnapshotMessage is what the refresh job publishes for each city.
type SnapshotMessage struct {
	RequestID string                 `json:"requestId"`
	CityID    string                 `json:"cityId"`
	Weather   entity.WeatherSnapshot `json:"weather"`
	FetchedAt int64                  `json:"fetchedAt"`
}
