package analytics

import (
	"fmt"
	"sort"
	"strings"
)

// Priority ranks a recommendation for the owner dashboard.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Recommendation is one ranked remediation item.
type Recommendation struct {
	Area         string   `json:"area"`
	MentionCount int      `json:"mention_count"`
	Priority     Priority `json:"priority"`
	Action       string   `json:"action"`
	Rationale    string   `json:"rationale"`
	Owner        string   `json:"owner"`
	Timeframe    string   `json:"timeframe"`
	KPI          string   `json:"kpi,omitempty"`
}

// AspectCount tallies sentiment-labelled mentions for one aspect within a
// window. Transient, recomputed per request.
type AspectCount struct {
	Positive int `json:"positive_mentions"`
	Neutral  int `json:"neutral_mentions"`
	Negative int `json:"negative_mentions"`
}

// Synthesize converts aspect gaps, frequent negative keywords, and the trend
// signal into a ranked, deduplicated recommendation list. Output is fully
// deterministic for identical inputs: sorting is by count descending with an
// alphabetical tie-break on area, which makes the list snapshot-testable.
func (e *Engine) Synthesize(counts SentimentCounts, negKeywords map[string]int, aspects map[string]AspectCount, negBigrams map[string]int, trend TrendSignal) []Recommendation {
	negShare := counts.NegativeShare()
	used := make(map[string]struct{})
	var recs []Recommendation

	// Aspects where negative mentions outweigh positive ones, widest gap
	// first.
	type aspectGap struct {
		name string
		gap  int
		neg  int
		pos  int
	}
	var gaps []aspectGap
	for name, ac := range aspects {
		if ac.Negative > ac.Positive {
			gaps = append(gaps, aspectGap{name: name, gap: ac.Negative - ac.Positive, neg: ac.Negative, pos: ac.Positive})
		}
	}
	sort.Slice(gaps, func(i, j int) bool {
		if gaps[i].gap != gaps[j].gap {
			return gaps[i].gap > gaps[j].gap
		}
		return gaps[i].name < gaps[j].name
	})
	for _, g := range gaps {
		rule := e.lex.LookupAction(g.name)
		recs = append(recs, Recommendation{
			Area:         g.name,
			MentionCount: g.neg,
			Priority:     e.priorityFor(g.neg, negShare),
			Action:       rule.Action,
			Rationale:    fmt.Sprintf("%d negative vs %d positive mentions in the %s aspect", g.neg, g.pos, g.name),
			Owner:        rule.Owner,
			Timeframe:    rule.Timeframe,
			KPI:          rule.KPI,
		})
		used[strings.ToLower(g.name)] = struct{}{}
	}

	// Most frequent negative keywords, deduplicated against the aspect
	// recommendations by area name.
	type keywordCount struct {
		word  string
		count int
	}
	var words []keywordCount
	for word, count := range negKeywords {
		words = append(words, keywordCount{word: word, count: count})
	}
	sort.Slice(words, func(i, j int) bool {
		if words[i].count != words[j].count {
			return words[i].count > words[j].count
		}
		return words[i].word < words[j].word
	})
	added := 0
	for _, w := range words {
		if added >= e.cfg.TopKeywordRecommendations {
			break
		}
		if _, dup := used[strings.ToLower(w.word)]; dup {
			continue
		}
		rule := e.lex.LookupAction(w.word)
		rationale := fmt.Sprintf("%q appears in %d negative reviews", w.word, w.count)
		if phrase := bestPhrase(w.word, negBigrams); phrase != "" {
			rationale += fmt.Sprintf("; customers write %q", phrase)
		}
		recs = append(recs, Recommendation{
			Area:         w.word,
			MentionCount: w.count,
			Priority:     e.priorityFor(w.count, negShare),
			Action:       rule.Action,
			Rationale:    rationale,
			Owner:        rule.Owner,
			Timeframe:    rule.Timeframe,
			KPI:          rule.KPI,
		})
		used[strings.ToLower(w.word)] = struct{}{}
		added++
	}

	// A declining trend outranks everything regardless of keyword content.
	if trend.Signal == TrendDeclining {
		meta := Recommendation{
			Area:         "overall",
			MentionCount: counts.Negative,
			Priority:     PriorityHigh,
			Action:       "Launch rapid response: daily QA review and on-shift coaching",
			Rationale:    fmt.Sprintf("Average rating moved %.2f between recent periods", trend.Delta),
			Owner:        "General Manager",
			Timeframe:    "This week",
			KPI:          "Average rating trend",
		}
		recs = append([]Recommendation{meta}, recs...)
	}

	if trend.Signal == TrendImproving {
		recs = append(recs, Recommendation{
			Area:         "momentum",
			MentionCount: counts.Positive,
			Priority:     PriorityLow,
			Action:       "Codify current best practices and recognize top-performing staff",
			Rationale:    fmt.Sprintf("Average rating improved by %.2f between recent periods", trend.Delta),
			Owner:        "General Manager",
			Timeframe:    "1 month",
			KPI:          "Positive review share",
		})
	}

	return recs
}

func (e *Engine) priorityFor(mentions int, negShare float64) Priority {
	switch {
	case mentions >= e.cfg.HighMentionCount || negShare >= e.cfg.HighNegativeShare:
		return PriorityHigh
	case mentions >= e.cfg.MediumMentionCount || negShare >= e.cfg.MediumNegativeShare:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// bestPhrase picks the most frequent mined bigram containing the keyword,
// alphabetical on ties, empty when none match.
func bestPhrase(keyword string, bigrams map[string]int) string {
	best := ""
	bestCount := 0
	for phrase, count := range bigrams {
		match := false
		for _, word := range strings.Fields(phrase) {
			if word == keyword {
				match = true
				break
			}
		}
		if !match {
			continue
		}
		if count > bestCount || (count == bestCount && (best == "" || phrase < best)) {
			best = phrase
			bestCount = count
		}
	}
	return best
}
