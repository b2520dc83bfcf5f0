package dto

import (
	"time"
)

// RawReview is a review as returned by a review source, before deduplication
// and storage.
type RawReview struct {
	ExternalID string
	AuthorName string
	Text       string
	Rating     *int
	AuthoredAt *time.Time
}
