package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"weather-widget/internal/domain/entity"
	"weather-widget/internal/domain/gateway/storage"
	"weather-widget/internal/domain/model"
	"weather-widget/internal/domain/usecase/cities"
	"weather-widget/internal/domain/usecase/health"
	"weather-widget/internal/domain/usecase/widget"

	"github.com/labstack/echo/v4"
)

type stubWeather struct {
	err error
}

func (s *stubWeather) FetchCurrentWeather(_ context.Context, lat, lon float64) (entity.WeatherSnapshot, error) {
	if s.err != nil {
		return entity.WeatherSnapshot{}, s.err
	}
	return entity.WeatherSnapshot{City: "London", Temperature: 16, WindSpeed: 3.1}, nil
}

func (s *stubWeather) SearchCities(_ context.Context, query string) ([]entity.City, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []entity.City{entity.NewCity(query, 51.5074, -0.1278, "GB")}, nil
}

func (s *stubWeather) ResolveCurrentPosition(context.Context) (entity.Position, error) {
	return entity.Position{}, &model.PositionUnavailableError{Reason: "geolocation is not supported"}
}

func (s *stubWeather) LocateCurrentCity(context.Context) (entity.City, error) {
	return entity.City{}, &model.PositionUnavailableError{Reason: "geolocation is not supported"}
}

func newServer(t *testing.T, weather *stubWeather) *echo.Echo {
	t.Helper()
	e := echo.New()
	e.Validator = NewRequestValidator()
	api := e.Group("/weather-widget")

	kv := storage.NewMemoryStore()
	store := cities.NewCityStore(kv)
	widgetUseCase := widget.NewWidgetUseCase(weather, store)

	NewWeatherController(api, weather).InitWeatherRoutes()
	NewCityController(api, store, widgetUseCase).InitCityRoutes()
	NewWidgetController(api, widgetUseCase).InitWidgetRoutes()
	NewHealthController(api, health.NewHealthUseCase(kv)).InitHealthRoutes()
	return e
}

func do(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRoutes_StatusMapping(t *testing.T) {
	networkErr := &model.NetworkError{Op: "fetch current weather", Err: errors.New("timeout")}

	tests := []struct {
		name    string
		weather *stubWeather
		method  string
		target  string
		body    string
		want    int
	}{
		{name: "weather ok", weather: &stubWeather{}, method: http.MethodGet, target: "/weather?lat=51.5&lon=-0.12", want: http.StatusOK},
		{name: "weather missing lon", weather: &stubWeather{}, method: http.MethodGet, target: "/weather?lat=51.5", want: http.StatusBadRequest},
		{name: "weather out of range", weather: &stubWeather{}, method: http.MethodGet, target: "/weather?lat=91&lon=0", want: http.StatusBadRequest},
		{name: "weather provider down", weather: &stubWeather{err: networkErr}, method: http.MethodGet, target: "/weather?lat=1&lon=2", want: http.StatusBadGateway},
		{name: "search ok", weather: &stubWeather{}, method: http.MethodGet, target: "/cities/search?q=London", want: http.StatusOK},
		{name: "search empty query", weather: &stubWeather{}, method: http.MethodGet, target: "/cities/search?q=%20", want: http.StatusBadRequest},
		{name: "search provider down", weather: &stubWeather{err: networkErr}, method: http.MethodGet, target: "/cities/search?q=x", want: http.StatusBadGateway},
		{name: "position unavailable", weather: &stubWeather{}, method: http.MethodGet, target: "/position", want: http.StatusServiceUnavailable},
		{name: "position city unavailable", weather: &stubWeather{}, method: http.MethodGet, target: "/position/city", want: http.StatusServiceUnavailable},
		{name: "clear", weather: &stubWeather{}, method: http.MethodDelete, target: "/cities", want: http.StatusNoContent},
		{name: "remove unknown", weather: &stubWeather{}, method: http.MethodDelete, target: "/cities/1-2", want: http.StatusNotFound},
		{name: "add invalid", weather: &stubWeather{}, method: http.MethodPost, target: "/cities", body: `{"name":"X"}`, want: http.StatusBadRequest},
		{name: "replace invalid", weather: &stubWeather{}, method: http.MethodPut, target: "/cities", body: `{"cities":[{"name":"","lat":1,"lon":2}]}`, want: http.StatusBadRequest},
		{name: "config missing key", weather: &stubWeather{}, method: http.MethodGet, target: "/widget/config", want: http.StatusBadRequest},
		{name: "health", weather: &stubWeather{}, method: http.MethodGet, target: "/health", want: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(newServer(t, tt.weather), tt.method, "/weather-widget"+tt.target, tt.body)
			if rec.Code != tt.want {
				t.Errorf("%s %s = %d, want %d (body %s)", tt.method, tt.target, rec.Code, tt.want, rec.Body.String())
			}
		})
	}
}

func TestCityRoutes_Lifecycle(t *testing.T) {
	e := newServer(t, &stubWeather{})

	rec := do(e, http.MethodPost, "/weather-widget/cities", `{"name":"London","lat":51.5074,"lon":-0.1278,"country":"GB"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("POST /cities = %d: %s", rec.Code, rec.Body.String())
	}
	if rec = do(e, http.MethodPost, "/weather-widget/cities", `{"name":"London","lat":51.5074,"lon":-0.1278}`); rec.Code != http.StatusConflict {
		t.Fatalf("duplicate POST /cities = %d, want 409", rec.Code)
	}

	rec = do(e, http.MethodPut, "/weather-widget/cities", `{"cities":[{"name":"Paris","lat":48.8566,"lon":2.3522}]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("PUT /cities = %d: %s", rec.Code, rec.Body.String())
	}

	rec = do(e, http.MethodGet, "/weather-widget/cities", "")
	var stored []entity.City
	if err := json.Unmarshal(rec.Body.Bytes(), &stored); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(stored) != 1 || stored[0].ID != "48.8566-2.3522" {
		t.Fatalf("GET /cities = %+v, want paris with derived id", stored)
	}

	rec = do(e, http.MethodGet, "/weather-widget/dashboard", "")
	var dashboard model.DashboardResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &dashboard); err != nil {
		t.Fatalf("decode dashboard: %v", err)
	}
	if dashboard.CurrentWeather["48.8566-2.3522"].Temperature != 16 {
		t.Errorf("dashboard = %+v", dashboard)
	}

	if rec = do(e, http.MethodDelete, "/weather-widget/cities/48.8566-2.3522", ""); rec.Code != http.StatusOK {
		t.Errorf("DELETE /cities/:id = %d", rec.Code)
	}
}

func TestWidgetConfigRoute(t *testing.T) {
	rec := do(newServer(t, &stubWeather{}), http.MethodGet,
		"/weather-widget/widget/config?api-key=k&cities=Paris,%20Tokyo&auto-refresh=-1&position=top-right", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	var got model.WidgetConfigResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got.Cities) != 2 || got.AutoRefresh != 300000 || got.Position != entity.PlacementTopRight {
		t.Errorf("config = %+v", got)
	}
	if strings.Contains(rec.Body.String(), `"k"`) {
		t.Error("api key must not be echoed back")
	}
}
