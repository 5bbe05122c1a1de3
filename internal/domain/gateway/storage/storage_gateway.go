package storage

import (
	"context"

	"weather-widget/internal/domain/model"
)

// KeyValueStore is a string key-value facility with the semantics of browser local storage.
// Errors only report backend failures; a missing key is (_, false, nil).
type KeyValueStore interface {
	GetItem(ctx context.Context, key string) (string, bool, error)
	// SetItem overwrites any previous value
	SetItem(ctx context.Context, key, value string) error
	// RemoveItem succeeds when the key is absent
	RemoveItem(ctx context.Context, key string) error
	Health() model.ComponentHealthStatus
}
