package analytics

import (
	"regexp"
	"strings"
)

// minTokenLen drops short function-word leftovers the stopword list misses.
const minTokenLen = 3

var nonWordRe = regexp.MustCompile(`[^a-z0-9\s]+`)

// ExtractKeywords tokenizes free text into an ordered, non-deduplicated
// keyword list: lowercase, strip punctuation, split on whitespace, drop
// stopwords and tokens shorter than three characters. Callers aggregate the
// result with frequency counters.
func (lx *Lexicon) ExtractKeywords(text string) []string {
	if text == "" {
		return nil
	}
	cleaned := nonWordRe.ReplaceAllString(strings.ToLower(text), "")

	var tokens []string
	for _, tok := range strings.Fields(cleaned) {
		if len(tok) < minTokenLen {
			continue
		}
		if _, stop := lx.Stopwords[tok]; stop {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// ExtractBigrams joins adjacent surviving tokens with a single space. Bigrams
// are used only for negative-review phrase mining, to give recommendation
// rationale some verbatim customer language.
func ExtractBigrams(tokens []string) []string {
	if len(tokens) < 2 {
		return nil
	}
	bigrams := make([]string, 0, len(tokens)-1)
	for i := 0; i+1 < len(tokens); i++ {
		bigrams = append(bigrams, tokens[i]+" "+tokens[i+1])
	}
	return bigrams
}

// MapTokensToAspects returns the aspects whose lexicon contains at least one
// of the given tokens, in the lexicon's fixed aspect order. This is a
// coverage heuristic, not exclusive classification: one review may hit
// several aspects.
func (lx *Lexicon) MapTokensToAspects(tokens []string) []string {
	if len(tokens) == 0 {
		return nil
	}
	tokenSet := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		tokenSet[tok] = struct{}{}
	}

	var hits []string
	for _, name := range lx.AspectNames {
		for _, seed := range lx.Aspects[name] {
			if _, ok := tokenSet[seed]; ok {
				hits = append(hits, name)
				break
			}
		}
	}
	return hits
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
