package service

import (
	"context"
	"testing"
	"time"

	"golang-review-intel/internal/analytics"
	"golang-review-intel/internal/entity"
	"golang-review-intel/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCompanyRepo struct {
	company   *entity.Company
	findCalls int
}

func (f *fakeCompanyRepo) Create(ctx context.Context, company *entity.Company) error { return nil }
func (f *fakeCompanyRepo) FindByID(ctx context.Context, id uint) (*entity.Company, error) {
	f.findCalls++
	return f.company, nil
}
func (f *fakeCompanyRepo) FindAll(ctx context.Context) ([]entity.Company, error) { return nil, nil }
func (f *fakeCompanyRepo) Update(ctx context.Context, company *entity.Company) error {
	return nil
}
func (f *fakeCompanyRepo) Delete(ctx context.Context, id uint) error { return nil }

type fakeReviewRepo struct {
	reviews   []entity.Review
	findCalls int
}

func (f *fakeReviewRepo) FindByCompanyID(ctx context.Context, companyID uint) ([]entity.Review, error) {
	f.findCalls++
	return f.reviews, nil
}

func (f *fakeReviewRepo) FindByCompanyIDInRange(ctx context.Context, companyID uint, start, end *time.Time) ([]entity.Review, error) {
	f.findCalls++
	return f.reviews, nil
}

func newTestAnalyticsService(t *testing.T, reviews []entity.Review) (AnalyticsService, *fakeCompanyRepo, *fakeReviewRepo) {
	t.Helper()

	log, err := logger.New("error", "json")
	require.NoError(t, err)

	companyRepo := &fakeCompanyRepo{company: &entity.Company{ID: 1, Name: "Acme Coffee"}}
	reviewRepo := &fakeReviewRepo{reviews: reviews}
	engine := analytics.NewEngine(analytics.DefaultConfig(), nil)

	svc := NewAnalyticsService(engine, companyRepo, reviewRepo, log, time.Minute)
	return svc, companyRepo, reviewRepo
}

func intPtr(v int) *int { return &v }

func timePtr(t time.Time) *time.Time { return &t }

func testReviews() []entity.Review {
	at := time.Date(2026, time.March, 5, 12, 0, 0, 0, time.UTC)
	return []entity.Review{
		{CompanyID: 1, Text: "friendly staff", Rating: intPtr(5), ReviewAt: timePtr(at)},
		{CompanyID: 1, Text: "long wait", Rating: intPtr(1), ReviewAt: timePtr(at.AddDate(0, 0, 1))},
	}
}

func TestGetSummaryMemoizesPerWindow(t *testing.T) {
	svc, companyRepo, reviewRepo := newTestAnalyticsService(t, testReviews())

	start := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.December, 31, 23, 59, 59, 0, time.UTC)

	first, err := svc.GetSummary(context.Background(), 1, &start, &end)
	require.NoError(t, err)
	assert.Equal(t, 2, first.TotalReviews)
	assert.Equal(t, 1, companyRepo.findCalls)
	assert.Equal(t, 1, reviewRepo.findCalls)

	second, err := svc.GetSummary(context.Background(), 1, &start, &end)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	// Cached: no further repository traffic.
	assert.Equal(t, 1, companyRepo.findCalls)
	assert.Equal(t, 1, reviewRepo.findCalls)

	// A different window is a different cache entry.
	otherStart := start.AddDate(0, 1, 0)
	_, err = svc.GetSummary(context.Background(), 1, &otherStart, &end)
	require.NoError(t, err)
	assert.Equal(t, 2, companyRepo.findCalls)
}

func TestListReviewsLabelsSentiment(t *testing.T) {
	svc, _, _ := newTestAnalyticsService(t, testReviews())

	reviews, err := svc.ListReviews(context.Background(), 1, nil, nil)
	require.NoError(t, err)
	require.Len(t, reviews, 2)

	assert.Equal(t, "Positive", reviews[0].Sentiment)
	assert.Equal(t, "Negative", reviews[1].Sentiment)
}

func TestGetKeywordsAppliesLimit(t *testing.T) {
	svc, _, _ := newTestAnalyticsService(t, testReviews())

	resp, err := svc.GetKeywords(context.Background(), 1, nil, nil, 1)
	require.NoError(t, err)
	require.Len(t, resp.Keywords, 1)
}

func TestGetRecommendationsReturnsPlan(t *testing.T) {
	svc, _, _ := newTestAnalyticsService(t, testReviews())

	plan, err := svc.GetRecommendations(context.Background(), 1, nil, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, plan.ExecutiveSummary)
	assert.NotEmpty(t, plan.RankedActionPlan)
}
