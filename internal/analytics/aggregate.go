package analytics

import (
	"sort"
	"time"

	"golang-review-intel/internal/entity"
)

const (
	monthLayout = "2006-01"
	dayLayout   = "2006-01-02"
)

// TrendPoint is one bucket of a trend series. AverageRating is nil when the
// bucket contains no rated reviews (daily series zero-fill empty days).
type TrendPoint struct {
	Period         string   `json:"period"`
	AverageRating  *float64 `json:"average_rating"`
	SampleCount    int      `json:"sample_count"`
	SentimentScore float64  `json:"sentiment_score"`
}

// windowedReviews splits the input for one analysis pass. Dated holds
// reviews whose review_at falls inside [start, end]; Undated holds reviews
// without a timestamp. Undated reviews count toward totals and sentiment but
// can never appear in a time-bucketed series, which requires a timestamp.
type windowedReviews struct {
	Dated   []entity.Review
	Undated []entity.Review
}

func (w windowedReviews) all() []entity.Review {
	out := make([]entity.Review, 0, len(w.Dated)+len(w.Undated))
	out = append(out, w.Dated...)
	out = append(out, w.Undated...)
	return out
}

// resolveWindow applies the configured default start and "now" end when the
// caller omits bounds, and recovers a reversed range by swapping instead of
// erroring.
func (e *Engine) resolveWindow(start, end *time.Time) (time.Time, time.Time) {
	from := e.cfg.DefaultWindowStart
	if start != nil {
		from = start.UTC()
	}
	to := e.timeNow().UTC()
	if end != nil {
		to = end.UTC()
	}
	if to.Before(from) {
		from, to = to, from
	}
	return from, to
}

// splitWindow filters reviews into the inclusive [start, end] window.
func splitWindow(reviews []entity.Review, start, end time.Time) windowedReviews {
	var w windowedReviews
	for _, r := range reviews {
		if r.ReviewAt == nil {
			w.Undated = append(w.Undated, r)
			continue
		}
		at := r.ReviewAt.UTC()
		if at.Before(start) || at.After(end) {
			continue
		}
		w.Dated = append(w.Dated, r)
	}
	return w
}

// monthlyPoints buckets dated reviews by calendar month, chronologically
// sorted. A month's average rating covers only its rated reviews; an unrated
// bucket keeps a nil average.
func monthlyPoints(reviews []entity.Review) []TrendPoint {
	type bucket struct {
		ratingSum   int
		ratedCount  int
		scoreSum    float64
		sampleCount int
	}
	buckets := make(map[string]*bucket)
	for _, r := range reviews {
		key := r.ReviewAt.UTC().Format(monthLayout)
		b := buckets[key]
		if b == nil {
			b = &bucket{}
			buckets[key] = b
		}
		b.sampleCount++
		b.scoreSum += sentimentScore(ClassifySentiment(r.Rating))
		if r.Rating != nil {
			b.ratingSum += *r.Rating
			b.ratedCount++
		}
	}

	periods := make([]string, 0, len(buckets))
	for key := range buckets {
		periods = append(periods, key)
	}
	sort.Strings(periods)

	points := make([]TrendPoint, 0, len(periods))
	for _, period := range periods {
		b := buckets[period]
		point := TrendPoint{
			Period:         period,
			SampleCount:    b.sampleCount,
			SentimentScore: round2(b.scoreSum / float64(b.sampleCount)),
		}
		if b.ratedCount > 0 {
			avg := round2(float64(b.ratingSum) / float64(b.ratedCount))
			point.AverageRating = &avg
		}
		points = append(points, point)
	}
	return points
}

// dailyPoints builds a zero-filled per-day series for the `days` calendar
// days ending at `end`. Days without reviews keep a nil average rating and a
// 0.0 sentiment score so short-window charts render every day.
func dailyPoints(reviews []entity.Review, end time.Time, days int) []TrendPoint {
	type bucket struct {
		ratingSum   int
		ratedCount  int
		scoreSum    float64
		sampleCount int
	}
	buckets := make(map[string]*bucket)
	for _, r := range reviews {
		key := r.ReviewAt.UTC().Format(dayLayout)
		b := buckets[key]
		if b == nil {
			b = &bucket{}
			buckets[key] = b
		}
		b.sampleCount++
		b.scoreSum += sentimentScore(ClassifySentiment(r.Rating))
		if r.Rating != nil {
			b.ratingSum += *r.Rating
			b.ratedCount++
		}
	}

	endDay := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	points := make([]TrendPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := endDay.AddDate(0, 0, -i)
		key := day.Format(dayLayout)
		point := TrendPoint{Period: key}
		if b, ok := buckets[key]; ok {
			point.SampleCount = b.sampleCount
			point.SentimentScore = round2(b.scoreSum / float64(b.sampleCount))
			if b.ratedCount > 0 {
				avg := round2(float64(b.ratingSum) / float64(b.ratedCount))
				point.AverageRating = &avg
			}
		}
		points = append(points, point)
	}
	return points
}
