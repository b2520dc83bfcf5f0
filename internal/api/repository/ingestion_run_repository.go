package repository

import (
	"context"

	"golang-review-intel/internal/entity"

	"gorm.io/gorm"
)

// IngestionRunRepository defines the interface for ingestion run bookkeeping.
type IngestionRunRepository interface {
	Create(ctx context.Context, run *entity.IngestionRun) error
	Update(ctx context.Context, run *entity.IngestionRun) error
	FindByCompanyID(ctx context.Context, companyID uint) ([]entity.IngestionRun, error)
}

// NewIngestionRunRepository creates a new GORM-based ingestion run repository.
func NewIngestionRunRepository(db *gorm.DB) IngestionRunRepository {
	return &ingestionRunRepository{db: db}
}

type ingestionRunRepository struct {
	db *gorm.DB
}

// Create records a new ingestion run.
func (r *ingestionRunRepository) Create(ctx context.Context, run *entity.IngestionRun) error {
	return r.db.WithContext(ctx).Create(run).Error
}

// Update persists the final state of an ingestion run.
func (r *ingestionRunRepository) Update(ctx context.Context, run *entity.IngestionRun) error {
	return r.db.WithContext(ctx).Save(run).Error
}

// FindByCompanyID retrieves ingestion runs for a company, newest first.
func (r *ingestionRunRepository) FindByCompanyID(ctx context.Context, companyID uint) ([]entity.IngestionRun, error) {
	var runs []entity.IngestionRun
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("started_at DESC").
		Find(&runs).Error
	if err != nil {
		return nil, err
	}
	return runs, nil
}
