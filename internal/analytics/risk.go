package analytics

// RiskLevel is the coarse bucket derived from the 0-100 risk score.
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// ScoreRisk combines the negative sentiment share with the trend direction
// into a single 0-100 score: negative share scaled to 100, plus a fixed
// bonus penalty when the trend is declining. The score is clamped to the
// 0-100 range and rounded to two decimals.
func (e *Engine) ScoreRisk(counts SentimentCounts, trend TrendSignal) (float64, RiskLevel) {
	score := counts.NegativeShare() * 100
	if trend.Signal == TrendDeclining {
		score += e.cfg.DeclineRiskBonus
	}
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	score = round2(score)

	level := RiskLow
	switch {
	case score >= e.cfg.HighRiskScore:
		level = RiskHigh
	case score >= e.cfg.MediumRiskScore:
		level = RiskMedium
	}
	return score, level
}
