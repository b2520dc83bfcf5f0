package service

import (
	"context"
	"fmt"
	"time"

	"golang-review-intel/internal/analytics"
	"golang-review-intel/internal/api/dto"
	"golang-review-intel/internal/api/repository"
	"golang-review-intel/pkg/logger"

	gocache "github.com/patrickmn/go-cache"
)

// AnalyticsService composes analytics payloads for the HTTP API.
type AnalyticsService interface {
	GetSummary(ctx context.Context, companyID uint, start, end *time.Time) (*analytics.AnalysisSummary, error)
	GetRecommendations(ctx context.Context, companyID uint, start, end *time.Time) (*analytics.ActionPlan, error)
	GetTrend(ctx context.Context, companyID uint, start, end *time.Time) (*dto.TrendResponse, error)
	GetKeywords(ctx context.Context, companyID uint, start, end *time.Time, limit int) (*dto.KeywordsResponse, error)
	ListReviews(ctx context.Context, companyID uint, start, end *time.Time) ([]dto.ReviewResponse, error)
}

// NewAnalyticsService creates a new analytics service. Composed summaries are
// memoized per company and window for the given TTL; everything else is
// recomputed on demand.
func NewAnalyticsService(
	engine *analytics.Engine,
	companyRepo repository.CompanyRepository,
	reviewRepo repository.ReviewRepository,
	log *logger.Logger,
	cacheTTL time.Duration,
) AnalyticsService {
	return &analyticsService{
		engine:      engine,
		companyRepo: companyRepo,
		reviewRepo:  reviewRepo,
		logger:      log,
		cache:       gocache.New(cacheTTL, 2*cacheTTL),
	}
}

type analyticsService struct {
	engine      *analytics.Engine
	companyRepo repository.CompanyRepository
	reviewRepo  repository.ReviewRepository
	logger      *logger.Logger
	cache       *gocache.Cache
}

// GetSummary returns the full analysis payload for a company and window.
func (s *analyticsService) GetSummary(ctx context.Context, companyID uint, start, end *time.Time) (*analytics.AnalysisSummary, error) {
	key := summaryCacheKey(companyID, start, end)
	if cached, ok := s.cache.Get(key); ok {
		if summary, ok := cached.(*analytics.AnalysisSummary); ok {
			return summary, nil
		}
	}

	company, err := s.companyRepo.FindByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	reviews, err := s.reviewRepo.FindByCompanyID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	summary := s.engine.Summary(company, reviews, start, end)
	s.cache.Set(key, &summary, gocache.DefaultExpiration)
	s.logger.Debug("Summary composed",
		logger.Field("company_id", companyID),
		logger.IntField("total_reviews", summary.TotalReviews))
	return &summary, nil
}

// GetRecommendations returns the trimmed owner action plan.
func (s *analyticsService) GetRecommendations(ctx context.Context, companyID uint, start, end *time.Time) (*analytics.ActionPlan, error) {
	company, err := s.companyRepo.FindByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	reviews, err := s.reviewRepo.FindByCompanyID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	plan := s.engine.Recommendations(company, reviews, start, end)
	return &plan, nil
}

// GetTrend returns the monthly series and trend signal.
func (s *analyticsService) GetTrend(ctx context.Context, companyID uint, start, end *time.Time) (*dto.TrendResponse, error) {
	if _, err := s.companyRepo.FindByID(ctx, companyID); err != nil {
		return nil, err
	}

	reviews, err := s.reviewRepo.FindByCompanyID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	points, signal := s.engine.MonthlyTrend(reviews, start, end)
	return &dto.TrendResponse{MonthlyTrend: points, Trend: signal}, nil
}

// GetKeywords returns the keyword frequency listing for a window.
func (s *analyticsService) GetKeywords(ctx context.Context, companyID uint, start, end *time.Time, limit int) (*dto.KeywordsResponse, error) {
	if _, err := s.companyRepo.FindByID(ctx, companyID); err != nil {
		return nil, err
	}

	reviews, err := s.reviewRepo.FindByCompanyID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	return &dto.KeywordsResponse{Keywords: s.engine.TopKeywords(reviews, start, end, limit)}, nil
}

// ListReviews returns the stored reviews for a company within a window,
// labelled with their sentiment.
func (s *analyticsService) ListReviews(ctx context.Context, companyID uint, start, end *time.Time) ([]dto.ReviewResponse, error) {
	if _, err := s.companyRepo.FindByID(ctx, companyID); err != nil {
		return nil, err
	}

	reviews, err := s.reviewRepo.FindByCompanyIDInRange(ctx, companyID, start, end)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		resp := dto.ReviewResponse{
			ID:           r.ID,
			Source:       r.Source,
			Text:         r.Text,
			Rating:       r.Rating,
			ReviewAt:     r.ReviewAt,
			ReviewerName: r.ReviewerName,
			Sentiment:    string(analytics.ClassifySentiment(r.Rating)),
			Keywords:     []string(r.Keywords),
			FetchedAt:    r.FetchedAt,
		}
		if r.SuggestedReply != nil {
			resp.SuggestedReply = r.SuggestedReply.Reply
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

func summaryCacheKey(companyID uint, start, end *time.Time) string {
	fmtTime := func(t *time.Time) string {
		if t == nil {
			return "-"
		}
		return t.UTC().Format(time.RFC3339)
	}
	return fmt.Sprintf("%d|%s|%s", companyID, fmtTime(start), fmtTime(end))
}
