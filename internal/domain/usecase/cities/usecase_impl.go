package cities

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"weather-widget/internal/domain/entity"
	"weather-widget/internal/domain/gateway/storage"
	"weather-widget/internal/domain/model"
	"weather-widget/pkg/log"
	"weather-widget/pkg/msg"

	"go.uber.org/zap"
)

const payloadVersion = 1

// payload is the stored document. A bare JSON array is the legacy unversioned form.
type payload struct {
	Version int           `json:"version"`
	Cities  []entity.City `json:"cities"`
}

// ParseErrorHandler is notified when the stored value cannot be decoded
type ParseErrorHandler func(err *model.StorageParseError)

type Option func(*cityStore)

// WithParseErrorHandler registers handler to be called on every parse failure, after it is logged
func WithParseErrorHandler(handler ParseErrorHandler) Option {
	return func(s *cityStore) {
		s.onParseError = handler
	}
}

type cityStore struct {
	store        storage.KeyValueStore
	onParseError ParseErrorHandler
}

func NewCityStore(store storage.KeyValueStore, opts ...Option) UseCase {
	s := &cityStore{store: store}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *cityStore) Save(ctx context.Context, cities []entity.City) error {
	if cities == nil {
		cities = []entity.City{}
	}

	encoded, err := json.Marshal(payload{Version: payloadVersion, Cities: cities})
	if err != nil {
		return fmt.Errorf("encode cities: %w", err)
	}
	if err := s.store.SetItem(ctx, StorageKey, string(encoded)); err != nil {
		return fmt.Errorf("save cities: %w", err)
	}
	return nil
}

func (s *cityStore) Load(ctx context.Context) ([]entity.City, error) {
	raw, found, err := s.store.GetItem(ctx, StorageKey)
	if err != nil {
		return nil, fmt.Errorf("load cities: %w", err)
	}
	if !found {
		return []entity.City{}, nil
	}

	trimmed := bytes.TrimSpace([]byte(raw))
	if bytes.HasPrefix(trimmed, []byte("[")) {
		return s.migrateLegacy(ctx, trimmed), nil
	}

	var stored payload
	if err := json.Unmarshal(trimmed, &stored); err != nil {
		s.parseFailed(err)
		return []entity.City{}, nil
	}
	if stored.Version != payloadVersion {
		s.parseFailed(fmt.Errorf("unsupported payload version %d", stored.Version))
		return []entity.City{}, nil
	}
	if stored.Cities == nil {
		return []entity.City{}, nil
	}
	return stored.Cities, nil
}

// migrateLegacy decodes an unversioned array and rewrites it in the current form.
// A failed rewrite is logged; the decoded cities are returned either way.
func (s *cityStore) migrateLegacy(ctx context.Context, raw []byte) []entity.City {
	var legacy []entity.City
	if err := json.Unmarshal(raw, &legacy); err != nil {
		s.parseFailed(err)
		return []entity.City{}
	}
	if legacy == nil {
		legacy = []entity.City{}
	}

	if err := s.Save(ctx, legacy); err != nil {
		log.Warn("failed to rewrite legacy cities", zap.String("key", StorageKey), zap.Error(err))
	} else {
		log.Info(msg.GetMessage("cities.migrated", len(legacy), StorageKey))
	}
	return legacy
}

func (s *cityStore) Clear(ctx context.Context) error {
	if err := s.store.RemoveItem(ctx, StorageKey); err != nil {
		return fmt.Errorf("clear cities: %w", err)
	}
	return nil
}

func (s *cityStore) parseFailed(cause error) {
	parseErr := &model.StorageParseError{Key: StorageKey, Err: cause}
	log.Warn(msg.GetMessage("cities.parse-failed", StorageKey), zap.Error(parseErr))
	if s.onParseError != nil {
		s.onParseError(parseErr)
	}
}
