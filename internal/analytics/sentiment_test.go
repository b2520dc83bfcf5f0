package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifySentiment(t *testing.T) {
	testCases := []struct {
		name     string
		rating   *int
		expected Sentiment
	}{
		{name: "missing rating degrades to neutral", rating: nil, expected: SentimentNeutral},
		{name: "five stars", rating: intPtr(5), expected: SentimentPositive},
		{name: "four stars", rating: intPtr(4), expected: SentimentPositive},
		{name: "three stars", rating: intPtr(3), expected: SentimentNeutral},
		{name: "two stars", rating: intPtr(2), expected: SentimentNegative},
		{name: "one star", rating: intPtr(1), expected: SentimentNegative},
		{name: "garbage zero rating", rating: intPtr(0), expected: SentimentNegative},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ClassifySentiment(tc.rating))
		})
	}
}

func TestClassifySentimentIsPure(t *testing.T) {
	// Same rating, same label, every time.
	for i := 0; i < 3; i++ {
		assert.Equal(t, SentimentPositive, ClassifySentiment(intPtr(4)))
		assert.Equal(t, SentimentNeutral, ClassifySentiment(nil))
	}
}

func TestSentimentCounts(t *testing.T) {
	var counts SentimentCounts
	counts.Add(SentimentPositive)
	counts.Add(SentimentPositive)
	counts.Add(SentimentNegative)
	counts.Add(SentimentNeutral)

	assert.Equal(t, 4, counts.Total())
	assert.InDelta(t, 0.25, counts.NegativeShare(), 1e-9)
}

func TestNegativeShareEmpty(t *testing.T) {
	var counts SentimentCounts
	assert.Zero(t, counts.NegativeShare())
}
