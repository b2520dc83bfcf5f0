package entity

import (
	"time"
)

// SourceType identifies which review-source backend a company is fetched from.
type SourceType string

const (
	// SourcePlaces is the limited source: a details endpoint returning at
	// most a handful of recent reviews per fetch, no pagination.
	SourcePlaces SourceType = "places"
	// SourceBusinessProfile is the paginated source: a business-profile API
	// walked page by page via page tokens.
	SourceBusinessProfile SourceType = "business_profile"
)

// Company represents a tenant's monitored business location.
type Company struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	Name       string     `gorm:"not null" json:"name"`
	PlaceID    string     `gorm:"column:place_id" json:"place_id"`
	SourceType SourceType `gorm:"not null;default:places" json:"source_type"`
	OwnerEmail string     `json:"owner_email"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	Schedules []IngestionSchedule `gorm:"foreignKey:CompanyID" json:"schedules,omitempty"`
}

// TableName specifies the table name for the Company model.
func (Company) TableName() string {
	return "companies"
}
