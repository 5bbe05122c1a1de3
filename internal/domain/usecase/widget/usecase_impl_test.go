package widget

import (
	"context"
	"errors"
	"testing"

	"weather-widget/internal/domain/entity"
	"weather-widget/internal/domain/gateway/storage"
	"weather-widget/internal/domain/model"
	"weather-widget/internal/domain/usecase/cities"
)

var (
	london = entity.NewCity("London", 51.5074, -0.1278, "GB")
	paris  = entity.NewCity("Paris", 48.8566, 2.3522, "FR")
)

// stubWeather answers from fixed tables; unknown inputs fail like the provider would
type stubWeather struct {
	search   map[string][]entity.City
	snapshot map[float64]entity.WeatherSnapshot
}

func (s *stubWeather) FetchCurrentWeather(_ context.Context, lat, _ float64) (entity.WeatherSnapshot, error) {
	if snap, ok := s.snapshot[lat]; ok {
		return snap, nil
	}
	return entity.WeatherSnapshot{}, &model.NetworkError{Op: "fetch current weather", StatusCode: 500, Err: errors.New("boom")}
}

func (s *stubWeather) SearchCities(_ context.Context, query string) ([]entity.City, error) {
	if matches, ok := s.search[query]; ok {
		return matches, nil
	}
	return nil, &model.NetworkError{Op: "search cities", Err: errors.New("unreachable")}
}

func (s *stubWeather) ResolveCurrentPosition(context.Context) (entity.Position, error) {
	return entity.Position{}, &model.PositionUnavailableError{Reason: "geolocation is not supported"}
}

func (s *stubWeather) LocateCurrentCity(context.Context) (entity.City, error) {
	return entity.City{}, &model.PositionUnavailableError{Reason: "geolocation is not supported"}
}

func newWidget(weather *stubWeather) (UseCase, cities.UseCase) {
	store := cities.NewCityStore(storage.NewMemoryStore())
	return NewWidgetUseCase(weather, store), store
}

func TestBootstrap(t *testing.T) {
	ctx := context.Background()
	uc, store := newWidget(&stubWeather{search: map[string][]entity.City{
		"London": {london, entity.NewCity("London", 42.98, -81.24, "CA")},
		"Paris":  {paris},
		"Nope":   {},
	}})

	got, err := uc.Bootstrap(ctx, []string{"London", "Nope", "Offline", "Paris"})
	if err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}
	if len(got) != 2 || got[0] != london || got[1] != paris {
		t.Fatalf("Bootstrap = %+v, want [london paris]", got)
	}

	stored, _ := store.Load(ctx)
	if len(stored) != 2 {
		t.Errorf("stored = %+v", stored)
	}

	// a second bootstrap keeps what is stored
	again, _ := uc.Bootstrap(ctx, []string{"Paris"})
	if len(again) != 2 {
		t.Errorf("second Bootstrap = %+v, want stored cities untouched", again)
	}
}

func TestDashboard_ReportsPerCityFailures(t *testing.T) {
	ctx := context.Background()
	uc, store := newWidget(&stubWeather{snapshot: map[float64]entity.WeatherSnapshot{
		london.Lat: {City: "London", Temperature: 12},
	}})
	_ = store.Save(ctx, []entity.City{london, paris})

	got, err := uc.Dashboard(ctx)
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}
	if len(got.Cities) != 2 {
		t.Errorf("cities = %+v", got.Cities)
	}
	if got.CurrentWeather[london.ID].Temperature != 12 {
		t.Errorf("currentWeather = %+v", got.CurrentWeather)
	}
	if _, ok := got.Errors[paris.ID]; !ok || len(got.Errors) != 1 {
		t.Errorf("errors = %+v, want only paris", got.Errors)
	}
}

func TestAddAndRemoveCity(t *testing.T) {
	ctx := context.Background()
	uc, _ := newWidget(&stubWeather{})

	if _, err := uc.AddCity(ctx, london); err != nil {
		t.Fatalf("AddCity: %v", err)
	}
	if _, err := uc.AddCity(ctx, london); !errors.Is(err, model.ErrCityExists) {
		t.Fatalf("duplicate AddCity err = %v, want ErrCityExists", err)
	}
	got, err := uc.AddCity(ctx, paris)
	if err != nil || len(got) != 2 {
		t.Fatalf("AddCity(paris) = %+v, %v", got, err)
	}

	got, err = uc.RemoveCity(ctx, london.ID)
	if err != nil || len(got) != 1 || got[0] != paris {
		t.Fatalf("RemoveCity = %+v, %v; want [paris]", got, err)
	}
	if _, err := uc.RemoveCity(ctx, london.ID); !errors.Is(err, model.ErrCityNotFound) {
		t.Fatalf("RemoveCity missing err = %v, want ErrCityNotFound", err)
	}
}
