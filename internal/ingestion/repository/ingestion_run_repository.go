package repository

import (
	"context"

	"golang-review-intel/internal/entity"

	"gorm.io/gorm"
)

// IngestionRunRepository finalizes ingestion runs from the worker side.
type IngestionRunRepository interface {
	Update(ctx context.Context, run *entity.IngestionRun) error
}

// NewIngestionRunRepository creates a new GORM-based ingestion run repository.
func NewIngestionRunRepository(db *gorm.DB) IngestionRunRepository {
	return &ingestionRunRepository{db: db}
}

type ingestionRunRepository struct {
	db *gorm.DB
}

// Update persists the final state of an ingestion run.
func (r *ingestionRunRepository) Update(ctx context.Context, run *entity.IngestionRun) error {
	return r.db.WithContext(ctx).Save(run).Error
}
