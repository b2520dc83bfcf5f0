package repository

import (
	"context"

	"golang-review-intel/internal/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReviewRepository defines the write-side review operations used by the
// ingestion worker.
type ReviewRepository interface {
	FindByCompanyID(ctx context.Context, companyID uint) ([]entity.Review, error)
	BatchInsert(ctx context.Context, reviews []entity.Review) error
}

// NewReviewRepository creates a new GORM-based review repository.
func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

type reviewRepository struct {
	db *gorm.DB
}

// FindByCompanyID retrieves all stored reviews for a company. The worker
// builds its dedup key set from this snapshot.
func (r *reviewRepository) FindByCompanyID(ctx context.Context, companyID uint) ([]entity.Review, error) {
	var reviews []entity.Review
	if err := r.db.WithContext(ctx).Where("company_id = ?", companyID).Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// BatchInsert inserts the given reviews in one transaction. The reviews table
// is insert-only; conflicts against the identity index mean a concurrent run
// already stored the row and are skipped rather than treated as errors.
func (r *reviewRepository) BatchInsert(ctx context.Context, reviews []entity.Review) error {
	if len(reviews) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&reviews).Error
	})
}
