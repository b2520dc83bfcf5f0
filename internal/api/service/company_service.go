package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"golang-review-intel/internal/api/dto"
	"golang-review-intel/internal/api/repository"
	"golang-review-intel/internal/entity"
	"golang-review-intel/pkg/common"
	"golang-review-intel/pkg/config"
	"golang-review-intel/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// CompanyService defines the interface for managing companies and triggering
// ingestion runs.
type CompanyService interface {
	CreateCompany(ctx context.Context, req *dto.CreateCompanyRequest) (*dto.CompanyResponse, error)
	GetCompanyByID(ctx context.Context, id uint) (*dto.CompanyResponse, error)
	GetAllCompanies(ctx context.Context) ([]*dto.CompanyResponse, error)
	UpdateCompany(ctx context.Context, id uint, req *dto.UpdateCompanyRequest) (*dto.CompanyResponse, error)
	DeleteCompany(ctx context.Context, id uint) error
	TriggerFetch(ctx context.Context, id uint) (*dto.TriggerFetchResponse, error)
	ListIngestions(ctx context.Context, id uint) ([]dto.IngestionRunResponse, error)
}

// NewCompanyService creates a new company service.
func NewCompanyService(
	companyRepo repository.CompanyRepository,
	runRepo repository.IngestionRunRepository,
	redisClient *redis.Client,
	redisCfg config.Redis,
	log *logger.Logger,
) CompanyService {
	return &companyService{
		companyRepo: companyRepo,
		runRepo:     runRepo,
		redisClient: redisClient,
		redisCfg:    redisCfg,
		logger:      log,
	}
}

type companyService struct {
	companyRepo repository.CompanyRepository
	runRepo     repository.IngestionRunRepository
	redisClient *redis.Client
	redisCfg    config.Redis
	logger      *logger.Logger
}

// CreateCompany registers a new company together with its schedules.
func (s *companyService) CreateCompany(ctx context.Context, req *dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	company := &entity.Company{
		Name:       req.Name,
		PlaceID:    req.PlaceID,
		SourceType: entity.SourceType(req.SourceType),
		OwnerEmail: req.OwnerEmail,
	}
	if company.SourceType == "" {
		company.SourceType = entity.SourcePlaces
	}

	for _, sDto := range req.Schedules {
		company.Schedules = append(company.Schedules, entity.IngestionSchedule{
			CronExpression: sDto.CronExpression,
			IsActive:       sDto.IsActive,
		})
	}

	if err := s.companyRepo.Create(ctx, company); err != nil {
		return nil, err
	}

	return s.mapToCompanyResponse(company), nil
}

// GetCompanyByID retrieves a company by its ID.
func (s *companyService) GetCompanyByID(ctx context.Context, id uint) (*dto.CompanyResponse, error) {
	company, err := s.companyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.mapToCompanyResponse(company), nil
}

// GetAllCompanies retrieves all companies.
func (s *companyService) GetAllCompanies(ctx context.Context) ([]*dto.CompanyResponse, error) {
	companies, err := s.companyRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	var responses []*dto.CompanyResponse
	for i := range companies {
		responses = append(responses, s.mapToCompanyResponse(&companies[i]))
	}
	return responses, nil
}

// UpdateCompany updates a company and replaces its schedules.
func (s *companyService) UpdateCompany(ctx context.Context, id uint, req *dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	company, err := s.companyRepo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("Failed to find company for update", logger.ErrorField(err), logger.Field("company_id", id))
		return nil, err
	}

	company.Name = req.Name
	company.PlaceID = req.PlaceID
	company.SourceType = entity.SourceType(req.SourceType)
	company.OwnerEmail = req.OwnerEmail

	company.Schedules = []entity.IngestionSchedule{}
	for _, sDto := range req.Schedules {
		company.Schedules = append(company.Schedules, entity.IngestionSchedule{
			CronExpression: sDto.CronExpression,
			IsActive:       sDto.IsActive,
			CompanyID:      company.ID,
		})
	}

	if err := s.companyRepo.Update(ctx, company); err != nil {
		s.logger.Error("Failed to update company", logger.ErrorField(err), logger.Field("company_id", id))
		return nil, err
	}

	return s.mapToCompanyResponse(company), nil
}

// DeleteCompany deletes a company and all of its data.
func (s *companyService) DeleteCompany(ctx context.Context, id uint) error {
	if err := s.companyRepo.Delete(ctx, id); err != nil {
		s.logger.Error("Failed to delete company", logger.ErrorField(err), logger.Field("company_id", id))
		return err
	}
	s.logger.Info("Company deleted", logger.Field("company_id", id))
	return nil
}

// TriggerFetch records a manual ingestion run and enqueues the fetch task.
func (s *companyService) TriggerFetch(ctx context.Context, id uint) (*dto.TriggerFetchResponse, error) {
	company, err := s.companyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	run := &entity.IngestionRun{
		CompanyID: company.ID,
		Status:    entity.StatusRunning,
		StartedAt: time.Now(),
	}
	if err := s.runRepo.Create(ctx, run); err != nil {
		return nil, err
	}

	payload, err := json.Marshal(run)
	if err != nil {
		return nil, err
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
		return nil, err
	}

	s.logger.Info("Ingestion task enqueued",
		logger.Field("company_id", company.ID),
		logger.Field("run_id", run.ID))

	return &dto.TriggerFetchResponse{RunID: run.ID, Status: string(run.Status)}, nil
}

// ListIngestions retrieves the ingestion run history for a company.
func (s *companyService) ListIngestions(ctx context.Context, id uint) ([]dto.IngestionRunResponse, error) {
	if _, err := s.companyRepo.FindByID(ctx, id); err != nil {
		return nil, err
	}

	runs, err := s.runRepo.FindByCompanyID(ctx, id)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.IngestionRunResponse, 0, len(runs))
	for _, run := range runs {
		resp := dto.IngestionRunResponse{
			ID:          run.ID,
			ScheduleID:  run.ScheduleID,
			Status:      string(run.Status),
			StartedAt:   run.StartedAt,
			CompletedAt: run.CompletedAt,
			Stats:       json.RawMessage(run.Stats),
		}
		if run.ErrorMessage.Valid {
			resp.ErrorMessage = run.ErrorMessage.String
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

// mapToCompanyResponse maps an entity.Company to a dto.CompanyResponse.
func (s *companyService) mapToCompanyResponse(company *entity.Company) *dto.CompanyResponse {
	var schedules []dto.ScheduleResponseDTO
	for _, schedule := range company.Schedules {
		schedules = append(schedules, dto.ScheduleResponseDTO{
			ID:             schedule.ID,
			CronExpression: schedule.CronExpression,
			IsActive:       schedule.IsActive,
			NextExecution:  schedule.NextExecution,
			LastExecution:  schedule.LastExecution,
		})
	}

	return &dto.CompanyResponse{
		ID:         company.ID,
		Name:       company.Name,
		PlaceID:    company.PlaceID,
		SourceType: string(company.SourceType),
		OwnerEmail: company.OwnerEmail,
		Schedules:  schedules,
		CreatedAt:  company.CreatedAt,
		UpdatedAt:  company.UpdatedAt,
	}
}
