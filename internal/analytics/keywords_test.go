package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractKeywords(t *testing.T) {
	lx := DefaultLexicon()

	tokens := lx.ExtractKeywords("The staff was VERY rude, and the wait... endless!")
	assert.Equal(t, []string{"staff", "rude", "wait", "endless"}, tokens)
}

func TestExtractKeywordsKeepsDuplicates(t *testing.T) {
	lx := DefaultLexicon()

	// Ordered, not deduplicated: callers aggregate with counters.
	tokens := lx.ExtractKeywords("slow slow slow")
	assert.Equal(t, []string{"slow", "slow", "slow"}, tokens)
}

func TestExtractKeywordsEmptyAndShortTokens(t *testing.T) {
	lx := DefaultLexicon()

	assert.Nil(t, lx.ExtractKeywords(""))
	assert.Nil(t, lx.ExtractKeywords("a an ok it of to !!"))
}

func TestExtractBigrams(t *testing.T) {
	assert.Nil(t, ExtractBigrams(nil))
	assert.Nil(t, ExtractBigrams([]string{"wait"}))
	assert.Equal(t,
		[]string{"long wait", "wait times"},
		ExtractBigrams([]string{"long", "wait", "times"}))
}

func TestMapTokensToAspects(t *testing.T) {
	lx := DefaultLexicon()

	testCases := []struct {
		name     string
		tokens   []string
		expected []string
	}{
		{
			name:     "single aspect",
			tokens:   []string{"friendly", "staff"},
			expected: []string{"Service"},
		},
		{
			name:     "multiple aspects in fixed order",
			tokens:   []string{"dirty", "expensive", "slow"},
			expected: []string{"Speed", "Price", "Cleanliness"},
		},
		{
			name:     "no aspect hit",
			tokens:   []string{"banana"},
			expected: nil,
		},
		{
			name:     "empty tokens",
			tokens:   nil,
			expected: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, lx.MapTokensToAspects(tc.tokens))
		})
	}
}

func TestLookupAction(t *testing.T) {
	lx := DefaultLexicon()

	rule := lx.LookupAction("waiting")
	assert.Equal(t, "Optimize peak-hour staffing and introduce queue management", rule.Action)

	// Aspect names resolve through the same table.
	rule = lx.LookupAction("Cleanliness")
	assert.Equal(t, "Tighten the cleaning rota and add spot inspections", rule.Action)

	// Unknown areas fall back to the generic root-cause action.
	rule = lx.LookupAction("banana")
	assert.Equal(t, lx.Fallback.Action, rule.Action)
}
