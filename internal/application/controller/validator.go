package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"weather-widget/internal/domain/model"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// RequestValidator plugs go-playground/validator into echo
type RequestValidator struct {
	validator *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validator: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate implements echo.Validator. Failures are returned as 400 errors
// listing every invalid field.
func (v *RequestValidator) Validate(i any) error {
	err := v.validator.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, fmt.Sprintf("%s failed on %s", fe.Namespace(), fe.Tag()))
	}
	return echo.NewHTTPError(http.StatusBadRequest, strings.Join(problems, "; "))
}

// errorStatus maps domain errors to HTTP status codes
func errorStatus(err error) int {
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr.Code
	case errors.Is(err, model.ErrNetwork):
		return http.StatusBadGateway
	case errors.Is(err, model.ErrPositionUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, model.ErrCityExists):
		return http.StatusConflict
	case errors.Is(err, model.ErrCityNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrInvalidWidgetConfig):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func errorJSON(c echo.Context, err error) error {
	message := err.Error()
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message = fmt.Sprint(httpErr.Message)
	}
	return c.JSON(errorStatus(err), map[string]string{"error": message})
}
