package controller

import (
	"net/http"
	"strings"

	"weather-widget/internal/domain/model"
	"weather-widget/internal/domain/usecase/weather"

	"github.com/labstack/echo/v4"
)

type WeatherController struct {
	api     *echo.Group
	useCase weather.UseCase
}

func NewWeatherController(api *echo.Group, useCase weather.UseCase) *WeatherController {
	return &WeatherController{api: api, useCase: useCase}
}

// InitWeatherRoutes initializes weather, search and position routes
func (controller *WeatherController) InitWeatherRoutes() {
	controller.api.GET("/weather", controller.FetchCurrentWeather)
	controller.api.GET("/cities/search", controller.SearchCities)
	controller.api.GET("/position", controller.ResolveCurrentPosition)
	controller.api.GET("/position/city", controller.LocateCurrentCity)
}

// FetchCurrentWeather godoc
// @Summary Get current weather
// @Description Current conditions at a coordinate, normalized to metric units
// @Tags weather
// @Produce json
// @Param lat query number true "Latitude"
// @Param lon query number true "Longitude"
// @Success 200 {object} entity.WeatherSnapshot
// @Failure 400 {object} map[string]string "Missing or invalid coordinates"
// @Failure 502 {object} map[string]string "Weather provider unavailable"
// @Router /weather [get]
func (controller *WeatherController) FetchCurrentWeather(c echo.Context) error {
	var query model.WeatherQueryDTO
	err := echo.QueryParamsBinder(c).
		MustFloat64("lat", &query.Lat).
		MustFloat64("lon", &query.Lon).
		BindError()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "lat and lon are required numbers"})
	}
	if err := c.Validate(&query); err != nil {
		return errorJSON(c, err)
	}

	snapshot, err := controller.useCase.FetchCurrentWeather(c.Request().Context(), query.Lat, query.Lon)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, snapshot)
}

// SearchCities godoc
// @Summary Search cities
// @Description Up to five cities matching a name
// @Tags weather
// @Produce json
// @Param q query string true "City name"
// @Success 200 {array} entity.City
// @Failure 400 {object} map[string]string "Empty query"
// @Failure 502 {object} map[string]string "Geocoding provider unavailable"
// @Router /cities/search [get]
func (controller *WeatherController) SearchCities(c echo.Context) error {
	query := model.CitySearchQueryDTO{Query: strings.TrimSpace(c.QueryParam("q"))}
	if err := c.Validate(&query); err != nil {
		return errorJSON(c, err)
	}

	cities, err := controller.useCase.SearchCities(c.Request().Context(), query.Query)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, cities)
}

// ResolveCurrentPosition godoc
// @Summary Current position
// @Description Position reported by the configured geolocation provider
// @Tags position
// @Produce json
// @Success 200 {object} entity.Position
// @Failure 503 {object} map[string]string "Position unavailable"
// @Router /position [get]
func (controller *WeatherController) ResolveCurrentPosition(c echo.Context) error {
	position, err := controller.useCase.ResolveCurrentPosition(c.Request().Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, position)
}

// LocateCurrentCity godoc
// @Summary Current city
// @Description City at the current position, named through reverse geocoding
// @Tags position
// @Produce json
// @Success 200 {object} entity.City
// @Failure 503 {object} map[string]string "Position unavailable"
// @Router /position/city [get]
func (controller *WeatherController) LocateCurrentCity(c echo.Context) error {
	city, err := controller.useCase.LocateCurrentCity(c.Request().Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, city)
}
