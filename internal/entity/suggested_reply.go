package entity

import (
	"time"
)

// SuggestedReply is a drafted response to a review, generated at ingestion
// time either by an AI provider or the rule-based fallback.
type SuggestedReply struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ReviewID  uint      `gorm:"not null;uniqueIndex" json:"review_id"`
	Reply     string    `gorm:"not null" json:"reply"`
	Provider  string    `json:"provider"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for the SuggestedReply model.
func (SuggestedReply) TableName() string {
	return "suggested_replies"
}
