package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/tair/jewelkraft/internal/storefront/domain"
)

func newRedisBackend(t *testing.T, name string) (*RedisBackend, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisBackend(client, name), mr
}

func newSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "store.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func sampleSnapshot() *domain.Snapshot {
	return &domain.Snapshot{
		Designs: []domain.Design{{
			ID:        "d1",
			Prompt:    "emerald pendant",
			Images:    []string{"http://generator/images/1.png"},
			CreatedAt: time.Date(2026, 10, 2, 9, 30, 0, 0, time.UTC),
			Status:    domain.DesignSaved,
		}},
		Products: []domain.Product{{ID: "p1", DesignID: "d1", Material: "gold"}},
		Cart:     []domain.CartEntry{{ProductID: "p1", Quantity: 2}},
	}
}

func TestRedisBackend_LoadMissingKey(t *testing.T) {
	backend, _ := newRedisBackend(t, "main")

	snapshot, err := backend.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, snapshot.Designs)
	assert.Empty(t, snapshot.Products)
	assert.Empty(t, snapshot.Cart)
}

func TestRedisBackend_SaveAndLoad(t *testing.T) {
	ctx := context.Background()
	backend, mr := newRedisBackend(t, "main")

	require.NoError(t, backend.Save(ctx, sampleSnapshot()))
	assert.True(t, mr.Exists("storefront:snapshot:main"))
	assert.Equal(t, time.Duration(0), mr.TTL("storefront:snapshot:main"))

	loaded, err := backend.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded.Designs, 1)
	assert.Equal(t, "emerald pendant", loaded.Designs[0].Prompt)
	assert.True(t, sampleSnapshot().Designs[0].CreatedAt.Equal(loaded.Designs[0].CreatedAt))
	assert.Equal(t, sampleSnapshot().Products, loaded.Products)
	assert.Equal(t, sampleSnapshot().Cart, loaded.Cart)
}

func TestRedisBackend_CorruptDocument(t *testing.T) {
	backend, mr := newRedisBackend(t, "main")
	require.NoError(t, mr.Set("storefront:snapshot:main", "{not json"))

	_, err := backend.Load(context.Background())
	assert.ErrorContains(t, err, "failed to decode storefront:snapshot:main")
}

func TestRedisBackend_ServerError(t *testing.T) {
	ctx := context.Background()
	backend, mr := newRedisBackend(t, "main")
	mr.SetError("LOADING server is loading")

	_, err := backend.Load(ctx)
	assert.ErrorContains(t, err, "failed to read storefront:snapshot:main")
	assert.Error(t, backend.Save(ctx, sampleSnapshot()))
}

func TestRedisBackend_StoreReopens(t *testing.T) {
	ctx := context.Background()
	backend, _ := newRedisBackend(t, "main")

	store, err := NewMemoryStore(ctx, backend)
	require.NoError(t, err)
	store.SaveProduct(ctx, domain.Product{ID: "p1", Material: "silver"})
	store.AddToCart(ctx, "p1", 3)

	reopened, err := NewMemoryStore(ctx, backend)
	require.NoError(t, err)
	product, ok := reopened.ProductByID(ctx, "p1")
	require.True(t, ok)
	assert.Equal(t, "silver", product.Material)
	assert.Equal(t, []domain.CartEntry{{ProductID: "p1", Quantity: 3}}, reopened.Cart(ctx))
}

func TestGormBackend_SaveAndLoad(t *testing.T) {
	ctx := context.Background()
	backend := NewGormBackend(newSQLiteDB(t), "main")
	require.NoError(t, backend.AutoMigrate())

	empty, err := backend.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty.Designs)

	require.NoError(t, backend.Save(ctx, sampleSnapshot()))
	loaded, err := backend.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded.Designs, 1)
	assert.Equal(t, "d1", loaded.Designs[0].ID)
	assert.Equal(t, sampleSnapshot().Cart, loaded.Cart)
}

func TestGormBackend_SaveUpserts(t *testing.T) {
	ctx := context.Background()
	db := newSQLiteDB(t)
	backend := NewGormBackend(db, "main")
	require.NoError(t, backend.AutoMigrate())

	require.NoError(t, backend.Save(ctx, sampleSnapshot()))
	require.NoError(t, backend.Save(ctx, &domain.Snapshot{Cart: []domain.CartEntry{{ProductID: "p9", Quantity: 1}}}))

	var count int64
	require.NoError(t, db.Model(&SnapshotRecord{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	loaded, err := backend.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded.Designs)
	assert.Equal(t, []domain.CartEntry{{ProductID: "p9", Quantity: 1}}, loaded.Cart)
}

func TestGormBackend_NamesAreIsolated(t *testing.T) {
	ctx := context.Background()
	db := newSQLiteDB(t)
	primary := NewGormBackend(db, "main")
	staging := NewGormBackend(db, "staging")
	require.NoError(t, primary.AutoMigrate())

	require.NoError(t, primary.Save(ctx, sampleSnapshot()))

	other, err := staging.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, other.Cart)
}

func TestGormBackend_CorruptDocument(t *testing.T) {
	ctx := context.Background()
	db := newSQLiteDB(t)
	backend := NewGormBackend(db, "main")
	require.NoError(t, backend.AutoMigrate())
	require.NoError(t, db.Create(&SnapshotRecord{Name: "main", Document: "{not json", UpdatedAt: time.Now()}).Error)

	_, err := backend.Load(ctx)
	assert.ErrorContains(t, err, `failed to decode snapshot "main"`)
}
