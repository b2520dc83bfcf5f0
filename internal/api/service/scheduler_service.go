package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"golang-review-intel/internal/api/repository"
	"golang-review-intel/internal/entity"
	"golang-review-intel/pkg/common"
	"golang-review-intel/pkg/config"
	"golang-review-intel/pkg/logger"

	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
)

// SchedulerService polls due ingestion schedules and enqueues fetch tasks.
type SchedulerService interface {
	Start(ctx context.Context)
	ProcessSchedules(ctx context.Context)
}

// NewSchedulerService creates a new scheduler service.
func NewSchedulerService(
	scheduleRepo repository.ScheduleRepository,
	runRepo repository.IngestionRunRepository,
	redisClient *redis.Client,
	redisCfg config.Redis,
	log *logger.Logger,
	pollingInterval time.Duration,
) SchedulerService {
	return &schedulerService{
		scheduleRepo:    scheduleRepo,
		runRepo:         runRepo,
		redisClient:     redisClient,
		redisCfg:        redisCfg,
		logger:          log,
		pollingInterval: pollingInterval,
		cronParser:      cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor),
	}
}

type schedulerService struct {
	scheduleRepo    repository.ScheduleRepository
	runRepo         repository.IngestionRunRepository
	redisClient     *redis.Client
	redisCfg        config.Redis
	logger          *logger.Logger
	pollingInterval time.Duration
	cronParser      cron.Parser
}

// Start begins the periodic schedule processing loop.
func (s *schedulerService) Start(ctx context.Context) {
	ticker := time.NewTicker(s.pollingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Scheduler service stopping")
			return
		case <-ticker.C:
			s.ProcessSchedules(ctx)
		}
	}
}

// ProcessSchedules finds and enqueues ingestion tasks for due schedules.
func (s *schedulerService) ProcessSchedules(ctx context.Context) {
	schedules, err := s.scheduleRepo.FindDueSchedules(ctx)
	if err != nil {
		s.logger.Error("Failed to find due schedules", logger.ErrorField(err))
		return
	}

	for _, schedule := range schedules {
		s.publishTask(ctx, schedule)
	}
}

func (s *schedulerService) publishTask(ctx context.Context, schedule entity.IngestionSchedule) {
	now := time.Now()

	scheduleID := schedule.ID
	run := &entity.IngestionRun{
		CompanyID:  schedule.CompanyID,
		ScheduleID: &scheduleID,
		Status:     entity.StatusRunning,
		StartedAt:  now,
	}
	if err := s.runRepo.Create(ctx, run); err != nil {
		s.logger.Error("Failed to create ingestion run", logger.ErrorField(err), logger.Field("schedule_id", schedule.ID))
		return
	}

	payload, err := json.Marshal(run)
	if err != nil {
		s.logger.Error("Failed to marshal task payload", logger.ErrorField(err), logger.Field("run_id", run.ID))
		return
	}

	if err := s.redisClient.XAdd(ctx, &redis.XAddArgs{
		Stream: common.RedisStreamReviewIngestion,
		Values: map[string]interface{}{"payload": payload},
		MaxLen: s.redisCfg.StreamMaxLen,
	}).Err(); err != nil {
		s.logger.Error("Failed to enqueue ingestion task", logger.ErrorField(err), logger.Field("run_id", run.ID))
		run.Status = entity.StatusFailed
		run.CompletedAt = sql.NullTime{Time: time.Now(), Valid: true}
		run.ErrorMessage = sql.NullString{String: err.Error(), Valid: true}
		if errInner := s.runRepo.Update(ctx, run); errInner != nil {
			s.logger.Error("Failed to finalize ingestion run", logger.ErrorField(errInner), logger.Field("run_id", run.ID))
		}
		return
	}

	s.logger.Info("Ingestion task published",
		logger.Field("company_id", schedule.CompanyID),
		logger.Field("run_id", run.ID))

	cronSchedule, err := s.cronParser.Parse(schedule.CronExpression)
	if err != nil {
		s.logger.Error("Failed to parse cron expression", logger.ErrorField(err), logger.Field("schedule_id", schedule.ID))
		return
	}

	schedule.LastExecution = sql.NullTime{Time: now, Valid: true}
	schedule.NextExecution = sql.NullTime{Time: cronSchedule.Next(now), Valid: true}

	if err := s.scheduleRepo.Update(ctx, &schedule); err != nil {
		s.logger.Error("Failed to update next execution time", logger.ErrorField(err), logger.Field("schedule_id", schedule.ID))
	}
}
