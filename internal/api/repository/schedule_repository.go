package repository

import (
	"context"
	"time"

	"golang-review-intel/internal/entity"

	"gorm.io/gorm"
)

// ScheduleRepository defines the interface for ingestion schedule operations.
type ScheduleRepository interface {
	FindDueSchedules(ctx context.Context) ([]entity.IngestionSchedule, error)
	Update(ctx context.Context, schedule *entity.IngestionSchedule) error
}

// NewScheduleRepository creates a new GORM-based schedule repository.
func NewScheduleRepository(db *gorm.DB) ScheduleRepository {
	return &scheduleRepository{db: db}
}

type scheduleRepository struct {
	db *gorm.DB
}

// FindDueSchedules finds all active schedules whose next execution is due.
func (r *scheduleRepository) FindDueSchedules(ctx context.Context) ([]entity.IngestionSchedule, error) {
	var schedules []entity.IngestionSchedule
	now := time.Now()
	err := r.db.WithContext(ctx).
		Where("is_active = ? AND (next_execution IS NULL OR next_execution <= ?)", true, now).
		Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}

// Update persists execution bookkeeping for a schedule.
func (r *scheduleRepository) Update(ctx context.Context, schedule *entity.IngestionSchedule) error {
	return r.db.WithContext(ctx).Save(schedule).Error
}
