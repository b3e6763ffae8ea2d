package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tair/jewelkraft/internal/storefront/domain"
)

// SnapshotRecord is one stored snapshot per store name
type SnapshotRecord struct {
	Name      string    `gorm:"primaryKey;size:64"`
	Document  string    `gorm:"type:jsonb;not null"`
	UpdatedAt time.Time
}

// TableName specifies the table name
func (SnapshotRecord) TableName() string {
	return "store_snapshots"
}

// GormBackend keeps snapshots in PostgreSQL
type GormBackend struct {
	db   *gorm.DB
	name string
}

// NewGormBackend creates a backend for the named store
func NewGormBackend(db *gorm.DB, name string) *GormBackend {
	return &GormBackend{db: db, name: name}
}

func (b *GormBackend) AutoMigrate() error {
	return b.db.AutoMigrate(&SnapshotRecord{})
}

func (b *GormBackend) Name() string { return "postgres" }

func (b *GormBackend) Load(ctx context.Context) (*domain.Snapshot, error) {
	var record SnapshotRecord
	err := b.db.WithContext(ctx).First(&record, "name = ?", b.name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &domain.Snapshot{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot %q: %w", b.name, err)
	}

	var snapshot domain.Snapshot
	if err := json.Unmarshal([]byte(record.Document), &snapshot); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot %q: %w", b.name, err)
	}
	return &snapshot, nil
}

func (b *GormBackend) Save(ctx context.Context, snapshot *domain.Snapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	record := SnapshotRecord{Name: b.name, Document: string(data), UpdatedAt: time.Now()}
	return b.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"document", "updated_at"}),
		}).
		Create(&record).Error
}
