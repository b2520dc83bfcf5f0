package dto

import (
	"golang-review-intel/internal/analytics"
)

// TrendResponse carries the monthly series together with its trend signal.
type TrendResponse struct {
	MonthlyTrend []analytics.TrendPoint `json:"monthly_trend"`
	Trend        analytics.TrendSignal  `json:"trend"`
}

// KeywordsResponse is the keyword frequency listing for a window.
type KeywordsResponse struct {
	Keywords []analytics.KeywordCount `json:"keywords"`
}
