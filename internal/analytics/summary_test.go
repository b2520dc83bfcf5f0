package analytics

import (
	"testing"
	"time"

	"golang-review-intel/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func windowReviews() []entity.Review {
	return []entity.Review{
		review("great coffee and friendly staff", intPtr(5), timePtr(day(2026, time.January, 10))),
		review("good quality drinks", intPtr(4), timePtr(day(2026, time.January, 15))),
		review("okay experience", intPtr(3), timePtr(day(2026, time.February, 1))),
		review("rude staff and long wait", intPtr(1), timePtr(day(2026, time.February, 10))),
		review("dirty tables everywhere", intPtr(2), timePtr(day(2026, time.February, 12))),
		review("slow service", intPtr(1), nil),
	}
}

func TestSummaryEmptyWindow(t *testing.T) {
	e := NewEngine(DefaultConfig(), nil)
	company := testCompany()

	start := day(2026, time.June, 1)
	end := day(2026, time.June, 30)
	s := e.Summary(company, nil, &start, &end)

	assert.Equal(t, company.ID, s.CompanyID)
	assert.Zero(t, s.TotalReviews)
	assert.Zero(t, s.AverageRating)
	assert.Equal(t, SentimentCounts{}, s.Sentiment)
	assert.Equal(t, TrendInsufficientData, s.Trend.Signal)
	assert.Zero(t, s.RiskScore)
	assert.Equal(t, RiskLow, s.RiskLevel)
	assert.Empty(t, s.MonthlyTrend)
	assert.Empty(t, s.Recommendations)
	assert.Equal(t, "Acme Coffee has no reviews in the selected window yet.", s.ExecutiveSummary)

	// Daily series stay zero-filled even with no reviews at all.
	require.Contains(t, s.DailySeries, "7d")
	require.Contains(t, s.DailySeries, "30d")
	require.Contains(t, s.DailySeries, "90d")
	assert.Len(t, s.DailySeries["7d"], 7)
	for _, p := range s.DailySeries["7d"] {
		assert.Zero(t, p.SampleCount)
		assert.Nil(t, p.AverageRating)
	}
}

func TestSummaryCountsAndAverage(t *testing.T) {
	e := NewEngine(DefaultConfig(), nil)
	company := testCompany()

	start := day(2026, time.January, 1)
	end := day(2026, time.December, 31)
	s := e.Summary(company, windowReviews(), &start, &end)

	// The untimestamped review counts toward totals and sentiment.
	assert.Equal(t, 6, s.TotalReviews)
	assert.Equal(t, SentimentCounts{Positive: 2, Neutral: 1, Negative: 3}, s.Sentiment)
	assert.Equal(t, 2.67, s.AverageRating)

	// But it is excluded from the time series.
	require.Len(t, s.MonthlyTrend, 2)
	assert.Equal(t, "2026-01", s.MonthlyTrend[0].Period)
	assert.Equal(t, 2, s.MonthlyTrend[0].SampleCount)
	assert.Equal(t, "2026-02", s.MonthlyTrend[1].Period)
	assert.Equal(t, 3, s.MonthlyTrend[1].SampleCount)

	// Two monthly buckets are below the trend minimum.
	assert.Equal(t, TrendInsufficientData, s.Trend.Signal)

	// Half negative, no decline bonus.
	assert.Equal(t, 50.0, s.RiskScore)
	assert.Equal(t, RiskHigh, s.RiskLevel)
}

func TestSummaryAspectsAndRecommendations(t *testing.T) {
	e := NewEngine(DefaultConfig(), nil)
	company := testCompany()

	start := day(2026, time.January, 1)
	end := day(2026, time.December, 31)
	s := e.Summary(company, windowReviews(), &start, &end)

	assert.Equal(t, AspectCount{Positive: 1, Negative: 2}, s.Aspects["Service"])
	assert.Equal(t, AspectCount{Negative: 2}, s.Aspects["Speed"])
	assert.Equal(t, AspectCount{Negative: 1}, s.Aspects["Cleanliness"])
	assert.Equal(t, AspectCount{Positive: 1}, s.Aspects["Quality"])

	require.NotEmpty(t, s.Recommendations)
	// Widest negative-positive gap leads.
	assert.Equal(t, "Speed", s.Recommendations[0].Area)
	assert.Equal(t, 2, s.Recommendations[0].MentionCount)
}

func TestSummaryNarrative(t *testing.T) {
	e := NewEngine(DefaultConfig(), nil)
	company := testCompany()

	start := day(2026, time.January, 1)
	end := day(2026, time.December, 31)
	s := e.Summary(company, windowReviews(), &start, &end)

	assert.Contains(t, s.ExecutiveSummary, "Acme Coffee received 6 reviews")
	assert.Contains(t, s.ExecutiveSummary, "average rating of 2.67")
	assert.Contains(t, s.ExecutiveSummary, "2 positive, 1 neutral, 3 negative")
	assert.Contains(t, s.ExecutiveSummary, "not yet enough history")
	assert.Contains(t, s.ExecutiveSummary, "Risk level: High (50.0/100)")
	assert.Contains(t, s.ExecutiveSummary, "Main concerns: Service, Speed, Cleanliness")
	assert.Contains(t, s.ExecutiveSummary, "Strengths: Quality, Service")
}

func TestRecommendationsCapsActionPlan(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxActionPlan = 2
	e := NewEngine(cfg, nil)
	company := testCompany()

	start := day(2026, time.January, 1)
	end := day(2026, time.December, 31)
	plan := e.Recommendations(company, windowReviews(), &start, &end)

	require.Len(t, plan.RankedActionPlan, 2)
	assert.Equal(t, "Speed", plan.RankedActionPlan[0].Area)
	assert.Equal(t, RiskHigh, plan.RiskLevel)
	assert.NotEmpty(t, plan.ExecutiveSummary)
}

func TestMonthlyTrendExcludesUndatedReviews(t *testing.T) {
	e := NewEngine(DefaultConfig(), nil)

	reviews := []entity.Review{
		review("no timestamp", intPtr(5), nil),
		review("also none", intPtr(1), nil),
	}
	points, signal := e.MonthlyTrend(reviews, nil, nil)
	assert.Empty(t, points)
	assert.Equal(t, TrendInsufficientData, signal.Signal)
}

func TestTopKeywords(t *testing.T) {
	e := NewEngine(DefaultConfig(), nil)

	reviews := []entity.Review{
		review("long wait", intPtr(2), timePtr(day(2026, time.March, 1))),
		review("long wait again", intPtr(1), timePtr(day(2026, time.March, 2))),
		review("rude staff", intPtr(1), timePtr(day(2026, time.March, 3))),
	}
	start := day(2026, time.January, 1)
	end := day(2026, time.December, 31)

	top := e.TopKeywords(reviews, &start, &end, 2)
	require.Len(t, top, 2)
	assert.Equal(t, KeywordCount{Keyword: "long", Count: 2}, top[0])
	assert.Equal(t, KeywordCount{Keyword: "wait", Count: 2}, top[1])

	all := e.TopKeywords(reviews, &start, &end, 0)
	assert.Len(t, all, 5)
}
