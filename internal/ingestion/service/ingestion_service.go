package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"golang-review-intel/internal/analytics"
	"golang-review-intel/internal/entity"
	"golang-review-intel/internal/ingestion/config"
	"golang-review-intel/internal/ingestion/dto"
	"golang-review-intel/internal/ingestion/repository"
	"golang-review-intel/pkg/common"
	"golang-review-intel/pkg/logger"
	"golang-review-intel/pkg/telegram"

	"github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"gorm.io/datatypes"
)

// IngestionService consumes fetch tasks and runs the ingestion pipeline:
// fetch, dedup, store, draft replies, and alert on elevated risk.
type IngestionService interface {
	ProcessTask(ctx context.Context)
}

// NewIngestionService creates a new IngestionService.
func NewIngestionService(
	cfg *config.Config,
	redisClient *redis.Client,
	companyRepo repository.CompanyRepository,
	reviewRepo repository.ReviewRepository,
	runRepo repository.IngestionRunRepository,
	replyStoreRepo repository.SuggestedReplyRepository,
	placesSource repository.ReviewSourceRepository,
	businessSource repository.ReviewSourceRepository,
	replyRepo repository.ReplyRepository,
	engine *analytics.Engine,
	lexicon *analytics.Lexicon,
	notifier telegram.Notifier,
	log *logger.Logger,
) IngestionService {
	return &ingestionService{
		cfg:            cfg,
		redisClient:    redisClient,
		companyRepo:    companyRepo,
		reviewRepo:     reviewRepo,
		runRepo:        runRepo,
		replyStoreRepo: replyStoreRepo,
		placesSource:   placesSource,
		businessSource: businessSource,
		replyRepo:      replyRepo,
		engine:         engine,
		lexicon:        lexicon,
		notifier:       notifier,
		logger:         log,
	}
}

type ingestionService struct {
	cfg            *config.Config
	redisClient    *redis.Client
	companyRepo    repository.CompanyRepository
	reviewRepo     repository.ReviewRepository
	runRepo        repository.IngestionRunRepository
	replyStoreRepo repository.SuggestedReplyRepository
	placesSource   repository.ReviewSourceRepository
	businessSource repository.ReviewSourceRepository
	replyRepo      repository.ReplyRepository
	engine         *analytics.Engine
	lexicon        *analytics.Lexicon
	notifier       telegram.Notifier
	logger         *logger.Logger
}

// ProcessTask dequeues and executes a single ingestion task.
func (s *ingestionService) ProcessTask(ctx context.Context) {
	streams, err := s.redisClient.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    common.RedisStreamGroup,
		Consumer: common.RedisStreamConsumer,
		Streams:  []string{common.RedisStreamReviewIngestion, ">"},
		Count:    1,
		Block:    2 * time.Second,
		NoAck:    true,
	}).Result()

	if err != nil {
		if err == context.Canceled || err == redis.Nil {
			return
		}
		s.logger.Error("Failed to read from stream", logger.ErrorField(err))
		return
	}

	if len(streams) == 0 || len(streams[0].Messages) == 0 {
		return
	}

	message := streams[0].Messages[0]

	taskData, ok := message.Values["payload"].(string)
	if !ok {
		s.logger.Error("field 'payload' not found or not a string in stream message", logger.Field("message_id", message.ID))
		return
	}

	var run entity.IngestionRun
	if err := json.Unmarshal([]byte(taskData), &run); err != nil {
		s.logger.Error("Failed to unmarshal task data", logger.ErrorField(err), logger.Field("message_id", message.ID))
		if err := s.redisClient.XAck(ctx, common.RedisStreamReviewIngestion, common.RedisStreamGroup, message.ID).Err(); err != nil {
			s.logger.Error("Failed to acknowledge malformed message", logger.ErrorField(err), logger.Field("message_id", message.ID))
		}
		return
	}

	s.logger.Info("Processing ingestion task",
		logger.Field("company_id", run.CompanyID),
		logger.Field("run_id", run.ID))

	fetchCtx, cancelFetch := context.WithTimeout(ctx, s.cfg.Ingestion.FetchTimeout)
	defer cancelFetch()

	s.ingestAndFinalize(fetchCtx, &run)
}

func (s *ingestionService) ingestAndFinalize(ctx context.Context, run *entity.IngestionRun) {
	stats, err := s.ingest(ctx, run)

	run.CompletedAt = sql.NullTime{Time: time.Now(), Valid: true}
	if err != nil {
		s.logger.Error("Ingestion run failed", logger.ErrorField(err), logger.Field("run_id", run.ID))
		run.Status = entity.StatusFailed
		run.ErrorMessage = sql.NullString{String: err.Error(), Valid: true}
	} else {
		run.Status = entity.StatusCompleted
	}
	if stats != nil {
		if raw, marshalErr := json.Marshal(stats); marshalErr == nil {
			run.Stats = datatypes.JSON(raw)
		}
	}

	if err := s.runRepo.Update(ctx, run); err != nil {
		s.logger.Error("Failed to finalize ingestion run", logger.ErrorField(err), logger.Field("run_id", run.ID))
		return
	}
	s.logger.Info("Ingestion run completed",
		logger.Field("run_id", run.ID),
		logger.Field("status", run.Status))
}

// ingest runs the fetch-dedup-store pipeline and returns the run counters.
func (s *ingestionService) ingest(ctx context.Context, run *entity.IngestionRun) (*entity.RunStats, error) {
	company, err := s.companyRepo.FindByID(ctx, run.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("failed to find company: %w", err)
	}

	source := s.placesSource
	if company.SourceType == entity.SourceBusinessProfile {
		source = s.businessSource
	}

	raws, err := source.FetchReviews(ctx, company)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reviews: %w", err)
	}

	existing, err := s.reviewRepo.FindByCompanyID(ctx, company.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load stored reviews: %w", err)
	}
	keys := analytics.BuildKeySet(existing)

	stats := &entity.RunStats{Fetched: len(raws)}
	var fresh []entity.Review
	for _, raw := range raws {
		if !analytics.HasSignal(raw.Text, raw.Rating) {
			stats.Skipped++
			continue
		}

		key := analytics.NewReviewKey(raw.Text, raw.Rating, raw.AuthoredAt)
		if keys.Contains(key) {
			stats.Duplicates++
			continue
		}
		keys.Add(key)

		review := entity.Review{
			CompanyID:    company.ID,
			Source:       string(company.SourceType),
			ExternalID:   raw.ExternalID,
			Text:         raw.Text,
			Rating:       raw.Rating,
			ReviewAt:     raw.AuthoredAt,
			ReviewerName: reviewerNameOrDefault(raw),
			Keywords:     pq.StringArray(s.lexicon.ExtractKeywords(raw.Text)),
		}
		if analytics.ClassifySentiment(review.Rating) == analytics.SentimentNegative {
			stats.Negative++
		}
		fresh = append(fresh, review)
	}
	stats.New = len(fresh)

	if err := s.reviewRepo.BatchInsert(ctx, fresh); err != nil {
		return stats, fmt.Errorf("failed to store reviews: %w", err)
	}

	s.draftReplies(ctx, company, fresh)
	s.alertIfAtRisk(ctx, company, append(existing, fresh...), stats)

	return stats, nil
}

// draftReplies generates and stores a suggested reply for each newly
// inserted review. Reply failures are logged, never fatal to the run.
func (s *ingestionService) draftReplies(ctx context.Context, company *entity.Company, fresh []entity.Review) {
	for i := range fresh {
		review := &fresh[i]
		if review.ID == 0 {
			continue
		}

		replyText, err := s.replyRepo.SuggestReply(ctx, company, review)
		if err != nil {
			s.logger.Error("Failed to draft reply",
				logger.ErrorField(err),
				logger.Field("review_id", review.ID))
			continue
		}

		reply := &entity.SuggestedReply{
			ReviewID: review.ID,
			Reply:    replyText,
			Provider: s.replyRepo.Provider(),
		}
		if err := s.replyStoreRepo.Create(ctx, reply); err != nil {
			s.logger.Error("Failed to store reply",
				logger.ErrorField(err),
				logger.Field("review_id", review.ID))
		}
	}
}

// alertIfAtRisk recomputes the company risk over all stored reviews and sends
// a Telegram alert when the run brought new negative reviews or the risk
// level is High.
func (s *ingestionService) alertIfAtRisk(ctx context.Context, company *entity.Company, reviews []entity.Review, stats *entity.RunStats) {
	summary := s.engine.Summary(company, reviews, nil, nil)
	if stats.Negative == 0 && summary.RiskLevel != analytics.RiskHigh {
		return
	}

	msg := fmt.Sprintf(
		"*Review alert: %s*\nNew reviews: %d (%d negative)\nRisk: %s (%.1f/100)\nTrend: %s\n\n%s",
		company.Name, stats.New, stats.Negative,
		summary.RiskLevel, summary.RiskScore,
		summary.Trend.Signal,
		summary.ExecutiveSummary)

	if err := s.notifier.SendMessage(msg); err != nil {
		s.logger.Error("Failed to send alert", logger.ErrorField(err), logger.Field("company_id", company.ID))
		return
	}
	s.logger.Info("Risk alert sent",
		logger.Field("company_id", company.ID),
		logger.Field("risk_level", summary.RiskLevel))
}

func reviewerNameOrDefault(raw dto.RawReview) string {
	if raw.AuthorName == "" {
		return "Anonymous"
	}
	return raw.AuthorName
}
