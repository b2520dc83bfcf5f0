package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreRiskLevels(t *testing.T) {
	e := NewEngine(DefaultConfig(), nil)
	stable := TrendSignal{Signal: TrendStable}

	testCases := []struct {
		name          string
		counts        SentimentCounts
		trend         TrendSignal
		expectedScore float64
		expectedLevel RiskLevel
	}{
		{
			name:          "no negatives",
			counts:        SentimentCounts{Positive: 10},
			trend:         stable,
			expectedScore: 0,
			expectedLevel: RiskLow,
		},
		{
			name:          "one in five negative is medium",
			counts:        SentimentCounts{Positive: 6, Neutral: 2, Negative: 2}, // share 0.2 -> 20
			trend:         stable,
			expectedScore: 20,
			expectedLevel: RiskMedium,
		},
		{
			name:          "heavy negative is high",
			counts:        SentimentCounts{Positive: 4, Negative: 6}, // share 0.6 -> 60
			trend:         stable,
			expectedScore: 60,
			expectedLevel: RiskHigh,
		},
		{
			name:          "decline bonus pushes over threshold",
			counts:        SentimentCounts{Positive: 7, Negative: 3}, // share 0.3 -> 30 + 10
			trend:         TrendSignal{Signal: TrendDeclining, Delta: -0.5},
			expectedScore: 40,
			expectedLevel: RiskHigh,
		},
		{
			name:          "score clamped at 100",
			counts:        SentimentCounts{Negative: 5},
			trend:         TrendSignal{Signal: TrendDeclining, Delta: -1},
			expectedScore: 100,
			expectedLevel: RiskHigh,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			score, level := e.ScoreRisk(tc.counts, tc.trend)
			assert.Equal(t, tc.expectedScore, score)
			assert.Equal(t, tc.expectedLevel, level)
		})
	}
}

func TestScoreRiskMonotonicInNegativeShare(t *testing.T) {
	e := NewEngine(DefaultConfig(), nil)
	stable := TrendSignal{Signal: TrendStable}

	prev := -1.0
	for negative := 0; negative <= 10; negative++ {
		counts := SentimentCounts{Positive: 10 - negative, Negative: negative}
		score, _ := e.ScoreRisk(counts, stable)
		assert.Greater(t, score, prev, "risk must strictly increase with negative share")
		prev = score
	}
}
