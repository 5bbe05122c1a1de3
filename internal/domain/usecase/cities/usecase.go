package cities

import (
	"context"

	"weather-widget/internal/domain/entity"
)

// StorageKey is the single key the city selection is persisted under
const StorageKey = "weather-widget-cities"

type UseCase interface {
	// Save replaces the stored selection with cities
	Save(ctx context.Context, cities []entity.City) error

	// Load returns the stored selection, or an empty one when nothing usable is stored.
	// The error only reports a failing storage backend.
	Load(ctx context.Context) ([]entity.City, error)

	// Clear removes the stored selection. Clearing twice is not an error.
	Clear(ctx context.Context) error
}
