package repository

import (
	"context"

	"golang-review-intel/internal/entity"

	"gorm.io/gorm"
)

// SuggestedReplyRepository stores drafted replies for reviews.
type SuggestedReplyRepository interface {
	Create(ctx context.Context, reply *entity.SuggestedReply) error
}

// NewSuggestedReplyRepository creates a new GORM-based suggested reply repository.
func NewSuggestedReplyRepository(db *gorm.DB) SuggestedReplyRepository {
	return &suggestedReplyRepository{db: db}
}

type suggestedReplyRepository struct {
	db *gorm.DB
}

// Create stores a drafted reply.
func (r *suggestedReplyRepository) Create(ctx context.Context, reply *entity.SuggestedReply) error {
	return r.db.WithContext(ctx).Create(reply).Error
}
