package widget

import (
	"context"
	"fmt"

	"weather-widget/internal/domain/entity"
	"weather-widget/internal/domain/model"
	"weather-widget/internal/domain/usecase/cities"
	"weather-widget/internal/domain/usecase/weather"
	"weather-widget/pkg/log"
	"weather-widget/pkg/msg"
)

type widgetUseCase struct {
	weather weather.UseCase
	cities  cities.UseCase
}

func NewWidgetUseCase(weatherUseCase weather.UseCase, cityStore cities.UseCase) UseCase {
	return &widgetUseCase{
		weather: weatherUseCase,
		cities:  cityStore,
	}
}

func (uc *widgetUseCase) Bootstrap(ctx context.Context, names []string) ([]entity.City, error) {
	stored, err := uc.cities.Load(ctx)
	if err != nil {
		return nil, err
	}
	if len(stored) > 0 {
		return stored, nil
	}

	seeded := make([]entity.City, 0, len(names))
	for _, name := range names {
		matches, err := uc.weather.SearchCities(ctx, name)
		if err != nil {
			log.Warn(msg.GetMessage("cities.bootstrap-skip", name, err))
			continue
		}
		if len(matches) == 0 {
			log.Warn(msg.GetMessage("cities.bootstrap-skip", name, "no match"))
			continue
		}
		seeded = append(seeded, matches[0])
	}

	if len(seeded) == 0 {
		return seeded, nil
	}
	if err := uc.cities.Save(ctx, seeded); err != nil {
		return nil, err
	}
	log.Info(msg.GetMessage("cities.bootstrap-done", len(seeded)))
	return seeded, nil
}

func (uc *widgetUseCase) Dashboard(ctx context.Context) (model.DashboardResponse, error) {
	stored, err := uc.cities.Load(ctx)
	if err != nil {
		return model.DashboardResponse{}, err
	}

	dashboard := model.DashboardResponse{
		Cities:         stored,
		CurrentWeather: make(map[string]entity.WeatherSnapshot, len(stored)),
		Errors:         make(map[string]string),
	}
	for _, city := range stored {
		if err := ctx.Err(); err != nil {
			return model.DashboardResponse{}, err
		}
		snapshot, err := uc.weather.FetchCurrentWeather(ctx, city.Lat, city.Lon)
		if err != nil {
			dashboard.Errors[city.ID] = err.Error()
			continue
		}
		dashboard.CurrentWeather[city.ID] = snapshot
	}
	return dashboard, nil
}

func (uc *widgetUseCase) AddCity(ctx context.Context, city entity.City) ([]entity.City, error) {
	stored, err := uc.cities.Load(ctx)
	if err != nil {
		return nil, err
	}
	for _, existing := range stored {
		if existing.ID == city.ID {
			return nil, fmt.Errorf("%w: %s", model.ErrCityExists, city.ID)
		}
	}

	updated := append(stored, city)
	if err := uc.cities.Save(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (uc *widgetUseCase) RemoveCity(ctx context.Context, id string) ([]entity.City, error) {
	stored, err := uc.cities.Load(ctx)
	if err != nil {
		return nil, err
	}

	updated := make([]entity.City, 0, len(stored))
	for _, city := range stored {
		if city.ID != id {
			updated = append(updated, city)
		}
	}
	if len(updated) == len(stored) {
		return nil, fmt.Errorf("%w: %s", model.ErrCityNotFound, id)
	}

	if err := uc.cities.Save(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}
