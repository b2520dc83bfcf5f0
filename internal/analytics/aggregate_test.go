package analytics

import (
	"testing"
	"time"

	"golang-review-intel/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveWindowSwapsReversedBounds(t *testing.T) {
	e := NewEngine(DefaultConfig(), nil)

	start := day(2026, time.June, 30)
	end := day(2026, time.June, 1)
	from, to := e.resolveWindow(&start, &end)

	assert.True(t, from.Before(to))
	assert.Equal(t, end, from)
	assert.Equal(t, start, to)
}

func TestResolveWindowDefaults(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DefaultWindowStart = day(2024, time.January, 1)
	e := NewEngine(cfg, nil)

	from, _ := e.resolveWindow(nil, timePtr(day(2026, time.June, 1)))
	assert.Equal(t, cfg.DefaultWindowStart, from)
}

func TestSplitWindow(t *testing.T) {
	inWindow := day(2026, time.March, 10)
	before := day(2025, time.December, 1)
	reviews := []entity.Review{
		review("in window", intPtr(5), timePtr(inWindow)),
		review("before window", intPtr(1), timePtr(before)),
		review("no timestamp", intPtr(4), nil),
	}

	w := splitWindow(reviews, day(2026, time.January, 1), day(2026, time.December, 31))
	require.Len(t, w.Dated, 1)
	assert.Equal(t, "in window", w.Dated[0].Text)
	require.Len(t, w.Undated, 1)
	assert.Equal(t, "no timestamp", w.Undated[0].Text)
}

func TestSplitWindowBoundsAreInclusive(t *testing.T) {
	start := day(2026, time.March, 1)
	end := day(2026, time.March, 31)
	reviews := []entity.Review{
		review("on start", intPtr(4), timePtr(start)),
		review("on end", intPtr(4), timePtr(end)),
	}

	w := splitWindow(reviews, start, end)
	assert.Len(t, w.Dated, 2)
}

func TestMonthlyPoints(t *testing.T) {
	reviews := []entity.Review{
		review("a", intPtr(5), timePtr(day(2026, time.February, 2))),
		review("b", intPtr(3), timePtr(day(2026, time.February, 20))),
		review("c", intPtr(1), timePtr(day(2026, time.January, 5))),
		review("unrated", nil, timePtr(day(2026, time.January, 9))),
	}

	points := monthlyPoints(reviews)
	require.Len(t, points, 2)

	assert.Equal(t, "2026-01", points[0].Period)
	assert.Equal(t, 2, points[0].SampleCount)
	require.NotNil(t, points[0].AverageRating)
	assert.Equal(t, 1.0, *points[0].AverageRating) // only the rated review counts
	assert.Equal(t, -0.5, points[0].SentimentScore)

	assert.Equal(t, "2026-02", points[1].Period)
	require.NotNil(t, points[1].AverageRating)
	assert.Equal(t, 4.0, *points[1].AverageRating)
	assert.Equal(t, 0.5, points[1].SentimentScore)
}

func TestDailyPointsZeroFill(t *testing.T) {
	end := day(2026, time.March, 7)
	reviews := []entity.Review{
		review("good", intPtr(5), timePtr(day(2026, time.March, 5))),
		review("bad", intPtr(1), timePtr(day(2026, time.March, 5))),
	}

	points := dailyPoints(reviews, end, 7)
	require.Len(t, points, 7)

	assert.Equal(t, "2026-03-01", points[0].Period)
	assert.Equal(t, "2026-03-07", points[6].Period)

	// Empty days are zero-filled with a nil average.
	assert.Nil(t, points[0].AverageRating)
	assert.Zero(t, points[0].SentimentScore)
	assert.Zero(t, points[0].SampleCount)

	busy := points[4]
	assert.Equal(t, "2026-03-05", busy.Period)
	assert.Equal(t, 2, busy.SampleCount)
	require.NotNil(t, busy.AverageRating)
	assert.Equal(t, 3.0, *busy.AverageRating)
	assert.Zero(t, busy.SentimentScore) // +1 and -1 cancel out
}
