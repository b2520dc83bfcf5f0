package repository

import (
	"context"

	"golang-review-intel/internal/entity"
	"golang-review-intel/internal/ingestion/dto"
)

// ReviewSourceRepository fetches raw reviews for a company from its
// configured source backend.
type ReviewSourceRepository interface {
	FetchReviews(ctx context.Context, company *entity.Company) ([]dto.RawReview, error)
}

// ReplyRepository drafts a suggested owner reply for a stored review.
type ReplyRepository interface {
	SuggestReply(ctx context.Context, company *entity.Company, review *entity.Review) (string, error)
	Provider() string
}