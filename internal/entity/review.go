package entity

import (
	"time"

	"github.com/lib/pq"
)

// Review is a single scraped customer review. Rows are insert-only: reviews
// are never edited in place, and uniqueness per company is enforced on the
// (text, rating, review_at) triple so re-fetching the same source never
// duplicates a review.
type Review struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	CompanyID    uint           `gorm:"not null;uniqueIndex:idx_reviews_identity" json:"company_id"`
	Source       string         `json:"source"`
	ExternalID   string         `json:"external_id"`
	Text         string         `gorm:"uniqueIndex:idx_reviews_identity" json:"text"`
	Rating       *int           `gorm:"uniqueIndex:idx_reviews_identity" json:"rating"`
	ReviewAt     *time.Time     `gorm:"uniqueIndex:idx_reviews_identity" json:"review_at"`
	ReviewerName string         `gorm:"default:Anonymous" json:"reviewer_name"`
	Keywords     pq.StringArray `gorm:"type:text[]" json:"keywords"`
	FetchedAt    time.Time      `gorm:"autoCreateTime" json:"fetched_at"`

	SuggestedReply *SuggestedReply `gorm:"foreignKey:ReviewID" json:"suggested_reply,omitempty"`
}

// TableName specifies the table name for the Review model.
func (Review) TableName() string {
	return "reviews"
}
