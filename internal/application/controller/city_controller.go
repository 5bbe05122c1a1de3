package controller

import (
	"net/http"

	"weather-widget/internal/domain/entity"
	"weather-widget/internal/domain/model"
	"weather-widget/internal/domain/usecase/cities"
	"weather-widget/internal/domain/usecase/widget"

	"github.com/labstack/echo/v4"
)

type CityController struct {
	api    *echo.Group
	store  cities.UseCase
	widget widget.UseCase
}

func NewCityController(api *echo.Group, store cities.UseCase, widgetUseCase widget.UseCase) *CityController {
	return &CityController{api: api, store: store, widget: widgetUseCase}
}

// InitCityRoutes initializes the stored city selection routes
func (controller *CityController) InitCityRoutes() {
	controller.api.GET("/cities", controller.Load)
	controller.api.PUT("/cities", controller.Save)
	controller.api.DELETE("/cities", controller.Clear)
	controller.api.POST("/cities", controller.AddCity)
	controller.api.DELETE("/cities/:id", controller.RemoveCity)
}

// Load godoc
// @Summary Get stored cities
// @Tags cities
// @Produce json
// @Success 200 {array} entity.City
// @Failure 500 {object} map[string]string "Storage failure"
// @Router /cities [get]
func (controller *CityController) Load(c echo.Context) error {
	stored, err := controller.store.Load(c.Request().Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, stored)
}

// Save godoc
// @Summary Replace stored cities
// @Description Overwrites the whole selection. Missing ids are derived from the coordinates.
// @Tags cities
// @Accept json
// @Produce json
// @Param cities body model.ReplaceCitiesDTO true "New selection"
// @Success 200 {array} entity.City
// @Failure 400 {object} map[string]string "Invalid request body"
// @Router /cities [put]
func (controller *CityController) Save(c echo.Context) error {
	var dto model.ReplaceCitiesDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(&dto); err != nil {
		return errorJSON(c, err)
	}

	selection := make([]entity.City, len(dto.Cities))
	for i, city := range dto.Cities {
		if city.ID == "" {
			city.ID = entity.CityID(city.Lat, city.Lon)
		}
		selection[i] = city
	}

	if err := controller.store.Save(c.Request().Context(), selection); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, selection)
}

// Clear godoc
// @Summary Clear stored cities
// @Tags cities
// @Success 204
// @Router /cities [delete]
func (controller *CityController) Clear(c echo.Context) error {
	if err := controller.store.Clear(c.Request().Context()); err != nil {
		return errorJSON(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// AddCity godoc
// @Summary Add a city
// @Tags cities
// @Accept json
// @Produce json
// @Param city body model.AddCityDTO true "City to add"
// @Success 201 {array} entity.City "Updated selection"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 409 {object} map[string]string "City already stored"
// @Router /cities [post]
func (controller *CityController) AddCity(c echo.Context) error {
	var dto model.AddCityDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(&dto); err != nil {
		return errorJSON(c, err)
	}

	updated, err := controller.widget.AddCity(c.Request().Context(), entity.NewCity(dto.Name, *dto.Lat, *dto.Lon, dto.Country))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusCreated, updated)
}

// RemoveCity godoc
// @Summary Remove a city
// @Tags cities
// @Produce json
// @Param id path string true "City id (<lat>-<lon>)"
// @Success 200 {array} entity.City "Updated selection"
// @Failure 404 {object} map[string]string "City not stored"
// @Router /cities/{id} [delete]
func (controller *CityController) RemoveCity(c echo.Context) error {
	updated, err := controller.widget.RemoveCity(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}
