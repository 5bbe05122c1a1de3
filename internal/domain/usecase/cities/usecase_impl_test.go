package cities

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"weather-widget/internal/domain/entity"
	"weather-widget/internal/domain/gateway/storage"
	"weather-widget/internal/domain/model"
	"weather-widget/pkg/log"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var (
	london = entity.NewCity("London", 51.5074, -0.1278, "GB")
	paris  = entity.NewCity("Paris", 48.8566, 2.3522, "FR")
)

type failingStore struct {
	storage.MemoryStore
}

func (*failingStore) GetItem(context.Context, string) (string, bool, error) {
	return "", false, errors.New("connection refused")
}

func (*failingStore) SetItem(context.Context, string, string) error {
	return errors.New("connection refused")
}

func observeWarnings(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.WarnLevel)
	t.Cleanup(log.Replace(zap.New(core)))
	return logs
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryStore()
	store := NewCityStore(kv)

	want := []entity.City{london, paris, london}
	if err := store.Save(ctx, want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Load = %+v, want %+v", got, want)
	}

	raw, _, _ := kv.GetItem(ctx, StorageKey)
	if !strings.HasPrefix(raw, `{"version":1,"cities":[`) {
		t.Errorf("stored payload = %s, want versioned document", raw)
	}
}

func TestSave_FullReplace(t *testing.T) {
	ctx := context.Background()
	store := NewCityStore(storage.NewMemoryStore())

	_ = store.Save(ctx, []entity.City{london, paris})
	_ = store.Save(ctx, []entity.City{paris})

	got, _ := store.Load(ctx)
	if len(got) != 1 || got[0] != paris {
		t.Errorf("Load = %+v, want only paris", got)
	}
}

func TestLoad_Empty(t *testing.T) {
	got, err := NewCityStore(storage.NewMemoryStore()).Load(context.Background())
	if err != nil || got == nil || len(got) != 0 {
		t.Fatalf("Load = %v, %v; want empty slice", got, err)
	}
}

func TestLoad_UnparsableDegradesToEmpty(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "not json", raw: "not json"},
		{name: "truncated", raw: `{"version":1,"cities":[{"id":`},
		{name: "unknown version", raw: `{"version":2,"cities":[]}`},
		{name: "broken legacy array", raw: `[{"id":1}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs := observeWarnings(t)
			ctx := context.Background()
			kv := storage.NewMemoryStore()
			_ = kv.SetItem(ctx, StorageKey, tt.raw)

			var handled []*model.StorageParseError
			store := NewCityStore(kv, WithParseErrorHandler(func(err *model.StorageParseError) {
				handled = append(handled, err)
			}))

			got, err := store.Load(ctx)
			if err != nil || got == nil || len(got) != 0 {
				t.Fatalf("Load = %v, %v; want empty slice and no error", got, err)
			}
			if len(handled) != 1 || !errors.Is(handled[0], model.ErrStorageParse) || handled[0].Key != StorageKey {
				t.Errorf("handler calls = %v, want one StorageParseError", handled)
			}
			if logs.FilterLevelExact(zapcore.WarnLevel).Len() != 1 {
				t.Errorf("warnings logged = %d, want 1", logs.Len())
			}
		})
	}
}

func TestLoad_MigratesLegacyArray(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryStore()
	_ = kv.SetItem(ctx, StorageKey, `[{"id":"51.5074--0.1278","name":"London","lat":51.5074,"lon":-0.1278,"country":"GB"}]`)

	got, err := NewCityStore(kv).Load(ctx)
	if err != nil || len(got) != 1 || got[0] != london {
		t.Fatalf("Load = %+v, %v; want london", got, err)
	}

	raw, _, _ := kv.GetItem(ctx, StorageKey)
	if !strings.HasPrefix(raw, `{"version":1`) {
		t.Errorf("legacy payload not rewritten: %s", raw)
	}
}

func TestClear_Idempotent(t *testing.T) {
	ctx := context.Background()
	store := NewCityStore(storage.NewMemoryStore())
	_ = store.Save(ctx, []entity.City{london})

	for i := 0; i < 2; i++ {
		if err := store.Clear(ctx); err != nil {
			t.Fatalf("Clear #%d: %v", i+1, err)
		}
	}
	if got, _ := store.Load(ctx); len(got) != 0 {
		t.Errorf("Load after Clear = %v, want empty", got)
	}
}

func TestBackendFailuresSurface(t *testing.T) {
	store := NewCityStore(&failingStore{})

	if _, err := store.Load(context.Background()); err == nil {
		t.Error("Load should report backend failure")
	}
	if err := store.Save(context.Background(), nil); err == nil {
		t.Error("Save should report backend failure")
	}
}
