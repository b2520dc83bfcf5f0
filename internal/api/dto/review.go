package dto

import (
	"time"
)

// ReviewResponse is the DTO for a single review in API responses.
type ReviewResponse struct {
	ID             uint       `json:"id"`
	Source         string     `json:"source"`
	Text           string     `json:"text"`
	Rating         *int       `json:"rating"`
	ReviewAt       *time.Time `json:"review_at"`
	ReviewerName   string     `json:"reviewer_name"`
	Sentiment      string     `json:"sentiment"`
	Keywords       []string   `json:"keywords"`
	SuggestedReply string     `json:"suggested_reply,omitempty"`
	FetchedAt      time.Time  `json:"fetched_at"`
}
