package analytics

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ratedPoints(ratings ...float64) []TrendPoint {
	points := make([]TrendPoint, len(ratings))
	for i, r := range ratings {
		avg := r
		points[i] = TrendPoint{
			Period:        fmt.Sprintf("2026-%02d", i+1),
			AverageRating: &avg,
			SampleCount:   10,
		}
	}
	return points
}

func TestDetectTrendInsufficientData(t *testing.T) {
	e := NewEngine(DefaultConfig(), nil)

	for _, points := range [][]TrendPoint{nil, ratedPoints(4), ratedPoints(4, 3)} {
		signal := e.DetectTrend(points)
		assert.Equal(t, TrendInsufficientData, signal.Signal)
		assert.Zero(t, signal.Delta)
	}
}

func TestDetectTrendSixPointsDeclining(t *testing.T) {
	e := NewEngine(DefaultConfig(), nil)

	// Last-3 mean 2.0 vs prior-3 mean 3.0.
	signal := e.DetectTrend(ratedPoints(3, 3, 3, 2, 2, 2))
	assert.Equal(t, TrendDeclining, signal.Signal)
	assert.Equal(t, -1.0, signal.Delta)
}

func TestDetectTrendSixPointsImproving(t *testing.T) {
	e := NewEngine(DefaultConfig(), nil)

	signal := e.DetectTrend(ratedPoints(2, 2, 2, 3, 3, 3))
	assert.Equal(t, TrendImproving, signal.Signal)
	assert.Equal(t, 1.0, signal.Delta)
}

func TestDetectTrendShortSeriesLastVsFirst(t *testing.T) {
	e := NewEngine(DefaultConfig(), nil)

	// 3-5 points compare the last point against the first.
	signal := e.DetectTrend(ratedPoints(4.5, 1.0, 4.0))
	assert.Equal(t, TrendDeclining, signal.Signal)
	assert.Equal(t, -0.5, signal.Delta)

	signal = e.DetectTrend(ratedPoints(3.0, 1.0, 3.2))
	assert.Equal(t, TrendStable, signal.Signal)
	assert.Equal(t, 0.2, signal.Delta)
}

func TestDetectTrendThresholdBoundaries(t *testing.T) {
	e := NewEngine(DefaultConfig(), nil)

	// Exactly +/-0.3 tips the signal.
	assert.Equal(t, TrendDeclining, e.DetectTrend(ratedPoints(3.3, 3.0, 3.0)).Signal)
	assert.Equal(t, TrendImproving, e.DetectTrend(ratedPoints(3.0, 3.0, 3.3)).Signal)
	assert.Equal(t, TrendStable, e.DetectTrend(ratedPoints(3.0, 3.0, 3.2)).Signal)
}

func TestDetectTrendUnratedBucketsCountAsZero(t *testing.T) {
	e := NewEngine(DefaultConfig(), nil)

	points := ratedPoints(4, 4, 4)
	points[2].AverageRating = nil
	signal := e.DetectTrend(points)
	assert.Equal(t, TrendDeclining, signal.Signal)
	assert.Equal(t, -4.0, signal.Delta)
}
