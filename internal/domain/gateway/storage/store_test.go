package storage

import (
	"context"
	"net"
	"strconv"
	"strings"
	"testing"

	"weather-widget/internal/domain/model"
	"weather-widget/pkg/redis"

	"github.com/alicebob/miniredis/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newRedisStore(t *testing.T) KeyValueStore {
	t.Helper()
	mr := miniredis.RunT(t)
	host, port, _ := net.SplitHostPort(mr.Addr())
	portNum, _ := strconv.Atoi(port)

	client, err := redis.NewClient(redis.DefaultConfig().WithHost(host).WithPort(portNum))
	if err != nil {
		t.Fatalf("redis.NewClient: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client)
}

func newGormStore(t *testing.T) KeyValueStore {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("gorm.Open: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	store, err := NewGormStore(db)
	if err != nil {
		t.Fatalf("NewGormStore: %v", err)
	}
	return store
}

func TestKeyValueStores(t *testing.T) {
	backends := []struct {
		name string
		new  func(t *testing.T) KeyValueStore
	}{
		{name: "memory", new: func(*testing.T) KeyValueStore { return NewMemoryStore() }},
		{name: "redis", new: newRedisStore},
		{name: "sql", new: newGormStore},
	}

	for _, backend := range backends {
		t.Run(backend.name, func(t *testing.T) {
			ctx := context.Background()
			store := backend.new(t)

			if _, found, err := store.GetItem(ctx, "weather-widget-cities"); err != nil || found {
				t.Fatalf("GetItem on empty store = found %v, err %v", found, err)
			}

			if err := store.SetItem(ctx, "weather-widget-cities", `{"version":1}`); err != nil {
				t.Fatalf("SetItem: %v", err)
			}
			if err := store.SetItem(ctx, "weather-widget-cities", `{"version":1,"cities":[]}`); err != nil {
				t.Fatalf("SetItem overwrite: %v", err)
			}

			value, found, err := store.GetItem(ctx, "weather-widget-cities")
			if err != nil || !found || value != `{"version":1,"cities":[]}` {
				t.Fatalf("GetItem = %q, %v, %v; want the last value", value, found, err)
			}

			for i := 0; i < 2; i++ {
				if err := store.RemoveItem(ctx, "weather-widget-cities"); err != nil {
					t.Fatalf("RemoveItem #%d: %v", i+1, err)
				}
			}
			if _, found, _ := store.GetItem(ctx, "weather-widget-cities"); found {
				t.Fatal("item still present after RemoveItem")
			}

			if health := store.Health(); health.Status != model.StatusUp {
				t.Errorf("Health = %+v, want UP", health)
			}
		})
	}
}

func TestMemoryStore_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := NewMemoryStore().SetItem(ctx, "k", "v"); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}
