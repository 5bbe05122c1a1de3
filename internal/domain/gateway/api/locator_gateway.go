package api

import (
	"context"

	"weather-widget/internal/domain/entity"
)

// Locator resolves the position of the machine or user the widget runs for.
// Failures are returned as *model.PositionUnavailableError.
type Locator interface {
	CurrentPosition(ctx context.Context) (entity.Position, error)
}
