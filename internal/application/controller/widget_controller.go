package controller

import (
	"net/http"

	"weather-widget/internal/domain/model"
	"weather-widget/internal/domain/usecase/widget"

	"github.com/labstack/echo/v4"
)

type WidgetController struct {
	api     *echo.Group
	useCase widget.UseCase
}

func NewWidgetController(api *echo.Group, useCase widget.UseCase) *WidgetController {
	return &WidgetController{api: api, useCase: useCase}
}

// InitWidgetRoutes initializes widget routes
func (controller *WidgetController) InitWidgetRoutes() {
	controller.api.GET("/dashboard", controller.Dashboard)
	controller.api.GET("/widget/config", controller.ParseConfig)
}

// Dashboard godoc
// @Summary Widget dashboard
// @Description Stored cities with their current weather. Cities whose weather could not be fetched are listed under errors.
// @Tags widget
// @Produce json
// @Success 200 {object} model.DashboardResponse
// @Router /dashboard [get]
func (controller *WidgetController) Dashboard(c echo.Context) error {
	dashboard, err := controller.useCase.Dashboard(c.Request().Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, dashboard)
}

// ParseConfig godoc
// @Summary Parse widget attributes
// @Description Resolves widget attributes passed as query parameters into the effective configuration
// @Tags widget
// @Produce json
// @Param api-key query string true "Weather provider API key"
// @Param cities query string false "Comma separated city names" default(London)
// @Param auto-refresh query int false "Refresh interval in milliseconds" default(300000)
// @Param position query string false "Widget placement" default(bottom-right)
// @Success 200 {object} model.WidgetConfigResponse
// @Failure 400 {object} map[string]string "Invalid attributes"
// @Router /widget/config [get]
func (controller *WidgetController) ParseConfig(c echo.Context) error {
	attrs := make(map[string]string)
	for name, values := range c.QueryParams() {
		if len(values) > 0 {
			attrs[name] = values[0]
		}
	}

	config, err := widget.ParseWidgetConfig(attrs)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, model.WidgetConfigResponse{
		Cities:      config.Cities,
		AutoRefresh: config.AutoRefreshMillis(),
		Position:    config.Position,
	})
}
