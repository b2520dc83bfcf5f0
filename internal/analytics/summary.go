package analytics

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"golang-review-intel/internal/entity"
)

// AnalysisSummary is the full analytics payload for one company and window.
// It is composed fresh on every call and never persisted.
type AnalysisSummary struct {
	CompanyID        uint                    `json:"company_id"`
	CompanyName      string                  `json:"company_name"`
	WindowStart      time.Time               `json:"window_start"`
	WindowEnd        time.Time               `json:"window_end"`
	TotalReviews     int                     `json:"total_reviews"`
	AverageRating    float64                 `json:"average_rating"`
	Sentiment        SentimentCounts         `json:"sentiment"`
	MonthlyTrend     []TrendPoint            `json:"monthly_trend"`
	Trend            TrendSignal             `json:"trend"`
	DailySeries      map[string][]TrendPoint `json:"daily_series"`
	Aspects          map[string]AspectCount  `json:"aspects"`
	RiskScore        float64                 `json:"risk_score"`
	RiskLevel        RiskLevel               `json:"risk_level"`
	Recommendations  []Recommendation        `json:"recommendations"`
	ExecutiveSummary string                  `json:"executive_summary"`
}

// ActionPlan is the trimmed owner-dashboard view of a summary.
type ActionPlan struct {
	RiskScore        float64          `json:"risk_score"`
	RiskLevel        RiskLevel        `json:"risk_level"`
	Trend            TrendSignal      `json:"trend"`
	ExecutiveSummary string           `json:"executive_summary"`
	RankedActionPlan []Recommendation `json:"ranked_action_plan"`
}

// KeywordCount is one entry of the keyword frequency listing.
type KeywordCount struct {
	Keyword string `json:"keyword"`
	Count   int    `json:"count"`
}

// Summary runs the full analysis pass over the given reviews. An empty
// window yields an explicit all-zero summary rather than an error, so a
// company page can always render.
func (e *Engine) Summary(company *entity.Company, reviews []entity.Review, start, end *time.Time) AnalysisSummary {
	from, to := e.resolveWindow(start, end)
	w := splitWindow(reviews, from, to)
	scope := w.all()

	summary := AnalysisSummary{
		CompanyID:       company.ID,
		CompanyName:     company.Name,
		WindowStart:     from,
		WindowEnd:       to,
		MonthlyTrend:    []TrendPoint{},
		DailySeries:     make(map[string][]TrendPoint, len(e.cfg.DailyWindows)),
		Aspects:         make(map[string]AspectCount),
		Recommendations: []Recommendation{},
	}

	for _, days := range e.cfg.DailyWindows {
		summary.DailySeries[fmt.Sprintf("%dd", days)] = dailyPoints(w.Dated, to, days)
	}

	if len(scope) == 0 {
		summary.Trend = TrendSignal{Signal: TrendInsufficientData, Delta: 0}
		summary.RiskLevel = RiskLow
		summary.ExecutiveSummary = fmt.Sprintf("%s has no reviews in the selected window yet.", company.Name)
		return summary
	}

	ratingSum := 0
	ratedCount := 0
	negKeywords := make(map[string]int)
	negBigrams := make(map[string]int)
	for _, r := range scope {
		label := ClassifySentiment(r.Rating)
		summary.Sentiment.Add(label)
		if r.Rating != nil {
			ratingSum += *r.Rating
			ratedCount++
		}

		tokens := e.lex.ExtractKeywords(r.Text)
		for _, aspect := range e.lex.MapTokensToAspects(tokens) {
			ac := summary.Aspects[aspect]
			switch label {
			case SentimentPositive:
				ac.Positive++
			case SentimentNegative:
				ac.Negative++
			default:
				ac.Neutral++
			}
			summary.Aspects[aspect] = ac
		}

		if label == SentimentNegative {
			for _, tok := range tokens {
				negKeywords[tok]++
			}
			for _, phrase := range ExtractBigrams(tokens) {
				negBigrams[phrase]++
			}
		}
	}

	summary.TotalReviews = summary.Sentiment.Total()
	if ratedCount > 0 {
		summary.AverageRating = round2(float64(ratingSum) / float64(ratedCount))
	}

	summary.MonthlyTrend = monthlyPoints(w.Dated)
	summary.Trend = e.DetectTrend(summary.MonthlyTrend)
	summary.RiskScore, summary.RiskLevel = e.ScoreRisk(summary.Sentiment, summary.Trend)
	summary.Recommendations = e.Synthesize(summary.Sentiment, negKeywords, summary.Aspects, negBigrams, summary.Trend)
	summary.ExecutiveSummary = e.narrative(summary)

	return summary
}

// Recommendations produces the trimmed owner-dashboard payload: risk, trend,
// narrative, and the action plan capped at the configured size.
func (e *Engine) Recommendations(company *entity.Company, reviews []entity.Review, start, end *time.Time) ActionPlan {
	summary := e.Summary(company, reviews, start, end)
	actions := summary.Recommendations
	if len(actions) > e.cfg.MaxActionPlan {
		actions = actions[:e.cfg.MaxActionPlan]
	}
	return ActionPlan{
		RiskScore:        summary.RiskScore,
		RiskLevel:        summary.RiskLevel,
		Trend:            summary.Trend,
		ExecutiveSummary: summary.ExecutiveSummary,
		RankedActionPlan: actions,
	}
}

// MonthlyTrend returns the monthly series and its trend signal for the
// resolved window.
func (e *Engine) MonthlyTrend(reviews []entity.Review, start, end *time.Time) ([]TrendPoint, TrendSignal) {
	from, to := e.resolveWindow(start, end)
	w := splitWindow(reviews, from, to)
	points := monthlyPoints(w.Dated)
	return points, e.DetectTrend(points)
}

// TopKeywords counts keyword frequency across all reviews in the resolved
// window, most frequent first with an alphabetical tie-break.
func (e *Engine) TopKeywords(reviews []entity.Review, start, end *time.Time, limit int) []KeywordCount {
	from, to := e.resolveWindow(start, end)
	w := splitWindow(reviews, from, to)

	freq := make(map[string]int)
	for _, r := range w.all() {
		for _, tok := range e.lex.ExtractKeywords(r.Text) {
			freq[tok]++
		}
	}

	out := make([]KeywordCount, 0, len(freq))
	for word, count := range freq {
		out = append(out, KeywordCount{Keyword: word, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Keyword < out[j].Keyword
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// narrative renders the one-paragraph executive summary.
func (e *Engine) narrative(s AnalysisSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s received %d reviews with an average rating of %.2f (%d positive, %d neutral, %d negative).",
		s.CompanyName, s.TotalReviews, s.AverageRating,
		s.Sentiment.Positive, s.Sentiment.Neutral, s.Sentiment.Negative)

	if s.Trend.Signal == TrendInsufficientData {
		b.WriteString(" There is not yet enough history to judge the rating trend.")
	} else {
		fmt.Fprintf(&b, " The rating trend is %s (delta %+.2f).", s.Trend.Signal, s.Trend.Delta)
	}
	fmt.Fprintf(&b, " Risk level: %s (%.1f/100).", s.RiskLevel, s.RiskScore)

	if concerns := topAspects(s.Aspects, func(ac AspectCount) int { return ac.Negative }); len(concerns) > 0 {
		fmt.Fprintf(&b, " Main concerns: %s.", strings.Join(concerns, ", "))
	}
	if strengths := topAspects(s.Aspects, func(ac AspectCount) int { return ac.Positive }); len(strengths) > 0 {
		fmt.Fprintf(&b, " Strengths: %s.", strings.Join(strengths, ", "))
	}
	return b.String()
}

// topAspects returns up to three aspect names ranked by the given counter,
// alphabetical on ties, skipping zero counts.
func topAspects(aspects map[string]AspectCount, counter func(AspectCount) int) []string {
	type ranked struct {
		name  string
		count int
	}
	var items []ranked
	for name, ac := range aspects {
		if c := counter(ac); c > 0 {
			items = append(items, ranked{name: name, count: c})
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].count != items[j].count {
			return items[i].count > items[j].count
		}
		return items[i].name < items[j].name
	})
	if len(items) > 3 {
		items = items[:3]
	}
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.name
	}
	return names
}
