package repository

import (
	"context"

	"golang-review-intel/internal/entity"

	"gorm.io/gorm"
)

// CompanyRepository defines the interface for company data operations.
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	FindByID(ctx context.Context, id uint) (*entity.Company, error)
	FindAll(ctx context.Context) ([]entity.Company, error)
	Update(ctx context.Context, company *entity.Company) error
	Delete(ctx context.Context, id uint) error
}

// NewCompanyRepository creates a new GORM-based company repository.
func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &companyRepository{db: db}
}

type companyRepository struct {
	db *gorm.DB
}

// Create creates a new company with its schedules.
func (r *companyRepository) Create(ctx context.Context, company *entity.Company) error {
	return r.db.WithContext(ctx).Create(company).Error
}

// FindByID retrieves a company by its ID.
func (r *companyRepository) FindByID(ctx context.Context, id uint) (*entity.Company, error) {
	var company entity.Company
	if err := r.db.WithContext(ctx).Preload("Schedules").First(&company, id).Error; err != nil {
		return nil, err
	}
	return &company, nil
}

// FindAll retrieves all companies.
func (r *companyRepository) FindAll(ctx context.Context) ([]entity.Company, error) {
	var companies []entity.Company
	if err := r.db.WithContext(ctx).Preload("Schedules").Find(&companies).Error; err != nil {
		return nil, err
	}
	return companies, nil
}

// Update updates a company and replaces its schedules within a transaction.
func (r *companyRepository) Update(ctx context.Context, company *entity.Company) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("company_id = ?", company.ID).Delete(&entity.IngestionSchedule{}).Error; err != nil {
			return err
		}
		return tx.Save(company).Error
	})
}

// Delete removes a company together with its schedules, runs, and reviews.
func (r *companyRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("company_id = ?", id).Delete(&entity.IngestionSchedule{}).Error; err != nil {
			return err
		}
		if err := tx.Where("company_id = ?", id).Delete(&entity.IngestionRun{}).Error; err != nil {
			return err
		}
		if err := tx.Where("review_id IN (?)",
			tx.Model(&entity.Review{}).Select("id").Where("company_id = ?", id),
		).Delete(&entity.SuggestedReply{}).Error; err != nil {
			return err
		}
		if err := tx.Where("company_id = ?", id).Delete(&entity.Review{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Company{}, id).Error
	})
}
