package entity

import (
	"database/sql"
	"time"
)

// IngestionSchedule defines when a company's reviews are re-fetched.
type IngestionSchedule struct {
	ID             uint         `gorm:"primaryKey" json:"id"`
	CompanyID      uint         `gorm:"not null" json:"company_id"`
	CronExpression string       `gorm:"not null" json:"cron_expression"`
	IsActive       bool         `gorm:"default:true" json:"is_active"`
	NextExecution  sql.NullTime `json:"next_execution"`
	LastExecution  sql.NullTime `json:"last_execution"`
	CreatedAt      time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time    `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the IngestionSchedule model.
func (IngestionSchedule) TableName() string {
	return "ingestion_schedules"
}
