package analytics

// Sentiment is the label derived from a review's star rating. It is never
// stored: every analysis pass recomputes it, so a rule change retroactively
// applies to all summaries without a migration.
type Sentiment string

const (
	SentimentPositive Sentiment = "Positive"
	SentimentNeutral  Sentiment = "Neutral"
	SentimentNegative Sentiment = "Negative"
)

// ClassifySentiment maps a star rating to a sentiment label. The rule is
// rating-only on purpose: the rating is the authoritative signal, which keeps
// classification deterministic and auditable. A missing rating degrades to
// Neutral rather than erroring.
func ClassifySentiment(rating *int) Sentiment {
	if rating == nil {
		return SentimentNeutral
	}
	switch {
	case *rating >= 4:
		return SentimentPositive
	case *rating == 3:
		return SentimentNeutral
	default:
		return SentimentNegative
	}
}

// sentimentScore maps a label onto the signed scale used by daily series.
func sentimentScore(s Sentiment) float64 {
	switch s {
	case SentimentPositive:
		return 1
	case SentimentNegative:
		return -1
	default:
		return 0
	}
}

// SentimentCounts tallies reviews per label.
type SentimentCounts struct {
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Negative int `json:"negative"`
}

// Add increments the counter for the given label.
func (c *SentimentCounts) Add(s Sentiment) {
	switch s {
	case SentimentPositive:
		c.Positive++
	case SentimentNegative:
		c.Negative++
	default:
		c.Neutral++
	}
}

// Total returns the number of counted reviews.
func (c SentimentCounts) Total() int {
	return c.Positive + c.Neutral + c.Negative
}

// NegativeShare returns the fraction of reviews classified Negative,
// 0 when nothing has been counted.
func (c SentimentCounts) NegativeShare() float64 {
	total := c.Total()
	if total == 0 {
		return 0
	}
	return float64(c.Negative) / float64(total)
}
