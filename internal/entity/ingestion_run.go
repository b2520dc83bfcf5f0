package entity

import (
	"database/sql"
	"time"

	"gorm.io/datatypes"
)

// RunStatus is the lifecycle state of an ingestion run.
type RunStatus string

const (
	StatusRunning   RunStatus = "running"
	StatusCompleted RunStatus = "completed"
	StatusFailed    RunStatus = "failed"
)

// IngestionRun records one fetch-and-store cycle for a company. The run is
// created by the publisher when the task is enqueued and finalized by the
// ingestion worker with counters in Stats.
type IngestionRun struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	CompanyID    uint           `gorm:"not null" json:"company_id"`
	ScheduleID   *uint          `json:"schedule_id,omitempty"`
	Status       RunStatus      `gorm:"not null" json:"status"`
	StartedAt    time.Time      `json:"started_at"`
	CompletedAt  sql.NullTime   `json:"completed_at"`
	ErrorMessage sql.NullString `json:"error_message"`
	Stats        datatypes.JSON `json:"stats"`
}

// TableName specifies the table name for the IngestionRun model.
func (IngestionRun) TableName() string {
	return "ingestion_runs"
}

// RunStats is the shape serialized into IngestionRun.Stats.
type RunStats struct {
	Fetched    int `json:"fetched"`
	New        int `json:"new"`
	Duplicates int `json:"duplicates"`
	Skipped    int `json:"skipped"`
	Negative   int `json:"negative"`
}
