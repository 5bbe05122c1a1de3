package widget

import (
	"context"

	"weather-widget/internal/domain/entity"
	"weather-widget/internal/domain/model"
)

// UseCase drives a widget instance: its initial cities, what it renders and
// the edits a user makes to the city list.
type UseCase interface {
	// Bootstrap seeds the store from initial city names when it is empty
	Bootstrap(ctx context.Context, names []string) ([]entity.City, error)

	// Dashboard loads the stored cities and their current weather
	Dashboard(ctx context.Context) (model.DashboardResponse, error)

	// AddCity appends city unless a city with the same id is stored
	AddCity(ctx context.Context, city entity.City) ([]entity.City, error)

	// RemoveCity removes the city with id
	RemoveCity(ctx context.Context, id string) ([]entity.City, error)
}
