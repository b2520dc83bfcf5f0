package repository

import (
	"context"
	"time"

	"golang-review-intel/internal/entity"

	"gorm.io/gorm"
)

// ReviewRepository defines read access to stored reviews for the API service.
type ReviewRepository interface {
	FindByCompanyID(ctx context.Context, companyID uint) ([]entity.Review, error)
	FindByCompanyIDInRange(ctx context.Context, companyID uint, start, end *time.Time) ([]entity.Review, error)
}

// NewReviewRepository creates a new GORM-based review repository.
func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

type reviewRepository struct {
	db *gorm.DB
}

// FindByCompanyID retrieves all reviews for a company, newest first.
func (r *reviewRepository) FindByCompanyID(ctx context.Context, companyID uint) ([]entity.Review, error) {
	var reviews []entity.Review
	err := r.db.WithContext(ctx).
		Preload("SuggestedReply").
		Where("company_id = ?", companyID).
		Order("review_at DESC NULLS LAST").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

// FindByCompanyIDInRange retrieves reviews for a company filtered to a date
// window. Untimestamped reviews are always included; the engine decides how
// they are counted.
func (r *reviewRepository) FindByCompanyIDInRange(ctx context.Context, companyID uint, start, end *time.Time) ([]entity.Review, error) {
	q := r.db.WithContext(ctx).
		Preload("SuggestedReply").
		Where("company_id = ?", companyID)
	if start != nil && end != nil {
		q = q.Where("review_at IS NULL OR (review_at >= ? AND review_at <= ?)", *start, *end)
	}

	var reviews []entity.Review
	if err := q.Order("review_at DESC NULLS LAST").Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}
