package repository

import (
	"context"

	"golang-review-intel/internal/entity"

	"gorm.io/gorm"
)

// CompanyRepository defines read access to companies for the ingestion worker.
type CompanyRepository interface {
	FindByID(ctx context.Context, id uint) (*entity.Company, error)
}

// NewCompanyRepository creates a new GORM-based company repository.
func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &companyRepository{db: db}
}

type companyRepository struct {
	db *gorm.DB
}

// FindByID retrieves a company by its ID.
func (r *companyRepository) FindByID(ctx context.Context, id uint) (*entity.Company, error) {
	var company entity.Company
	if err := r.db.WithContext(ctx).First(&company, id).Error; err != nil {
		return nil, err
	}
	return &company, nil
}
