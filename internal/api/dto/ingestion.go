package dto

import (
	"database/sql"
	"encoding/json"
	"time"
)

// TriggerFetchResponse is returned when a manual ingestion is enqueued.
type TriggerFetchResponse struct {
	RunID  uint   `json:"run_id"`
	Status string `json:"status"`
}

// IngestionRunResponse is the DTO for one ingestion run in API responses.
type IngestionRunResponse struct {
	ID           uint            `json:"id"`
	ScheduleID   *uint           `json:"schedule_id,omitempty"`
	Status       string          `json:"status"`
	StartedAt    time.Time       `json:"started_at"`
	CompletedAt  sql.NullTime    `json:"completed_at" swaggertype:"string" format:"date-time"`
	ErrorMessage string          `json:"error_message,omitempty"`
	Stats        json.RawMessage `json:"stats,omitempty" swaggertype:"object"`
}
