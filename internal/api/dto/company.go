package dto

import (
	"database/sql"
	"time"
)

// ScheduleDTO represents an ingestion schedule in API requests.
type ScheduleDTO struct {
	CronExpression string `json:"cron_expression"`
	IsActive       bool   `json:"is_active"`
}

// CreateCompanyRequest is the DTO for registering a new company.
type CreateCompanyRequest struct {
	Name       string        `json:"name"`
	PlaceID    string        `json:"place_id"`
	SourceType string        `json:"source_type"`
	OwnerEmail string        `json:"owner_email"`
	Schedules  []ScheduleDTO `json:"schedules"`
}

// UpdateCompanyRequest is the DTO for updating an existing company.
type UpdateCompanyRequest struct {
	Name       string        `json:"name"`
	PlaceID    string        `json:"place_id"`
	SourceType string        `json:"source_type"`
	OwnerEmail string        `json:"owner_email"`
	Schedules  []ScheduleDTO `json:"schedules"`
}

// ScheduleResponseDTO represents an ingestion schedule in API responses.
type ScheduleResponseDTO struct {
	ID             uint         `json:"id"`
	CronExpression string       `json:"cron_expression"`
	IsActive       bool         `json:"is_active"`
	NextExecution  sql.NullTime `json:"next_execution" swaggertype:"string" format:"date-time"`
	LastExecution  sql.NullTime `json:"last_execution" swaggertype:"string" format:"date-time"`
}

// CompanyResponse is the DTO for API responses containing company details.
type CompanyResponse struct {
	ID         uint                  `json:"id"`
	Name       string                `json:"name"`
	PlaceID    string                `json:"place_id"`
	SourceType string                `json:"source_type"`
	OwnerEmail string                `json:"owner_email"`
	Schedules  []ScheduleResponseDTO `json:"schedules"`
	CreatedAt  time.Time             `json:"created_at"`
	UpdatedAt  time.Time             `json:"updated_at"`
}
