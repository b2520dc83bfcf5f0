package analytics

import "time"

// Config holds the engine's tunables. Values are injected by the caller
// (ultimately from service configuration) so the engine never reads ambient
// state such as environment variables.
type Config struct {
	// DefaultWindowStart is used when the caller supplies no explicit start
	// date, so an unbounded query never silently returns all-time data.
	DefaultWindowStart time.Time

	// DeclineRiskBonus is added to the risk score when the trend is declining.
	DeclineRiskBonus float64

	// TopKeywordRecommendations caps how many negative keywords become
	// recommendations; MaxActionPlan caps the trimmed owner-dashboard plan.
	TopKeywordRecommendations int
	MaxActionPlan             int

	// MinTrendPoints is the minimum number of monthly points required before
	// a trend signal other than insufficient_data is emitted.
	MinTrendPoints int
	// TrendDeltaThreshold is the absolute rating delta that separates
	// stable from improving/declining.
	TrendDeltaThreshold float64

	// Risk level thresholds on the 0-100 score.
	HighRiskScore   float64
	MediumRiskScore float64

	// Recommendation priority thresholds.
	HighMentionCount    int
	MediumMentionCount  int
	HighNegativeShare   float64
	MediumNegativeShare float64

	// DailyWindows are the short monitoring windows, in days, for which
	// zero-filled daily series are produced.
	DailyWindows []int
}

// DefaultConfig returns the canonical rule set: +10 decline bonus, top-5
// recommendations, 3-point trend minimum.
func DefaultConfig() Config {
	return Config{
		DefaultWindowStart:        time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC),
		DeclineRiskBonus:          10,
		TopKeywordRecommendations: 5,
		MaxActionPlan:             5,
		MinTrendPoints:            3,
		TrendDeltaThreshold:       0.3,
		HighRiskScore:             40,
		MediumRiskScore:           20,
		HighMentionCount:          5,
		MediumMentionCount:        3,
		HighNegativeShare:         0.35,
		MediumNegativeShare:       0.25,
		DailyWindows:              []int{7, 30, 90},
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.DefaultWindowStart.IsZero() {
		c.DefaultWindowStart = def.DefaultWindowStart
	}
	if c.DeclineRiskBonus == 0 {
		c.DeclineRiskBonus = def.DeclineRiskBonus
	}
	if c.TopKeywordRecommendations == 0 {
		c.TopKeywordRecommendations = def.TopKeywordRecommendations
	}
	if c.MaxActionPlan == 0 {
		c.MaxActionPlan = def.MaxActionPlan
	}
	if c.MinTrendPoints == 0 {
		c.MinTrendPoints = def.MinTrendPoints
	}
	if c.TrendDeltaThreshold == 0 {
		c.TrendDeltaThreshold = def.TrendDeltaThreshold
	}
	if c.HighRiskScore == 0 {
		c.HighRiskScore = def.HighRiskScore
	}
	if c.MediumRiskScore == 0 {
		c.MediumRiskScore = def.MediumRiskScore
	}
	if c.HighMentionCount == 0 {
		c.HighMentionCount = def.HighMentionCount
	}
	if c.MediumMentionCount == 0 {
		c.MediumMentionCount = def.MediumMentionCount
	}
	if c.HighNegativeShare == 0 {
		c.HighNegativeShare = def.HighNegativeShare
	}
	if c.MediumNegativeShare == 0 {
		c.MediumNegativeShare = def.MediumNegativeShare
	}
	if len(c.DailyWindows) == 0 {
		c.DailyWindows = def.DailyWindows
	}
	return c
}
