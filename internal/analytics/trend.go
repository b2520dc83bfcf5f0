package analytics

// TrendStatus is the qualitative judgment derived from comparing recent and
// prior average-rating windows.
type TrendStatus string

const (
	TrendInsufficientData TrendStatus = "insufficient_data"
	TrendImproving        TrendStatus = "improving"
	TrendStable           TrendStatus = "stable"
	TrendDeclining        TrendStatus = "declining"
)

// TrendSignal couples the qualitative status with the numeric rating delta
// that produced it.
type TrendSignal struct {
	Signal TrendStatus `json:"signal"`
	Delta  float64     `json:"delta"`
}

// DetectTrend compares recent vs prior windows of the chronologically
// ordered monthly series. With six or more points it compares the mean of
// the last three against the three before them; with three to five points it
// falls back to last-vs-first, so short histories still produce a signal.
// Fewer than the configured minimum yields insufficient_data.
func (e *Engine) DetectTrend(points []TrendPoint) TrendSignal {
	if len(points) < e.cfg.MinTrendPoints {
		return TrendSignal{Signal: TrendInsufficientData, Delta: 0}
	}

	var recent, prior float64
	if len(points) >= 6 {
		recent = meanRating(points[len(points)-3:])
		prior = meanRating(points[len(points)-6 : len(points)-3])
	} else {
		recent = pointRating(points[len(points)-1])
		prior = pointRating(points[0])
	}

	delta := round2(recent - prior)
	signal := TrendStable
	switch {
	case delta <= -e.cfg.TrendDeltaThreshold:
		signal = TrendDeclining
	case delta >= e.cfg.TrendDeltaThreshold:
		signal = TrendImproving
	}
	return TrendSignal{Signal: signal, Delta: delta}
}

func meanRating(points []TrendPoint) float64 {
	if len(points) == 0 {
		return 0
	}
	var sum float64
	for _, p := range points {
		sum += pointRating(p)
	}
	return sum / float64(len(points))
}

// pointRating coerces a bucket without rated reviews to 0, matching how
// unrated reviews have always been folded into trend math.
func pointRating(p TrendPoint) float64 {
	if p.AverageRating == nil {
		return 0
	}
	return *p.AverageRating
}
