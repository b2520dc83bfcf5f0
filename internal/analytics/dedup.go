package analytics

import (
	"time"

	"golang-review-intel/internal/entity"
)

// ReviewKey is the identity triple used for ingestion deduplication. Two
// reviews with the same text, rating, and normalized review timestamp are
// the same review. Timestamps are normalized to whole seconds in UTC so
// sub-second drift between fetches cannot defeat the comparison.
type ReviewKey struct {
	Text        string
	Rating      int
	HasRating   bool
	ReviewAtSec int64
	HasReviewAt bool
}

// NewReviewKey builds the normalized identity key for a review.
func NewReviewKey(text string, rating *int, reviewAt *time.Time) ReviewKey {
	key := ReviewKey{Text: text}
	if rating != nil {
		key.Rating = *rating
		key.HasRating = true
	}
	if reviewAt != nil {
		key.ReviewAtSec = reviewAt.UTC().Truncate(time.Second).Unix()
		key.HasReviewAt = true
	}
	return key
}

// KeySet is a preloaded set of identity keys for a company's stored reviews.
// Building it once per ingestion batch keeps dedup an O(n) preload instead of
// one query per candidate.
type KeySet map[ReviewKey]struct{}

// BuildKeySet indexes the identity keys of already-stored reviews.
func BuildKeySet(reviews []entity.Review) KeySet {
	set := make(KeySet, len(reviews))
	for _, r := range reviews {
		set.Add(NewReviewKey(r.Text, r.Rating, r.ReviewAt))
	}
	return set
}

// Contains reports whether the key is already present.
func (s KeySet) Contains(key ReviewKey) bool {
	_, ok := s[key]
	return ok
}

// Add records a key. Callers add each accepted candidate so duplicates
// within the same fetched batch are caught too.
func (s KeySet) Add(key ReviewKey) {
	s[key] = struct{}{}
}

// HasSignal reports whether a candidate carries any analyzable signal.
// A review with empty text and no rating is skipped entirely, never stored.
func HasSignal(text string, rating *int) bool {
	return text != "" || rating != nil
}
