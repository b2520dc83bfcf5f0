package analytics

import (
	"testing"
	"time"

	"golang-review-intel/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestDedupMarksIdenticalTripleAsDuplicate(t *testing.T) {
	at := day(2026, time.March, 10)
	existing := []entity.Review{
		review("Great service", intPtr(5), timePtr(at)),
	}
	set := BuildKeySet(existing)

	// Same text, rating and timestamp: duplicate even with sub-second skew.
	skewed := at.Add(500 * time.Millisecond)
	assert.True(t, set.Contains(NewReviewKey("Great service", intPtr(5), timePtr(skewed))))

	assert.False(t, set.Contains(NewReviewKey("Great service", intPtr(4), timePtr(at))))
	assert.False(t, set.Contains(NewReviewKey("Great service!", intPtr(5), timePtr(at))))
	assert.False(t, set.Contains(NewReviewKey("Great service", intPtr(5), nil)))
}

func TestDedupWithinBatch(t *testing.T) {
	at := day(2026, time.March, 10)
	set := BuildKeySet(nil)

	key := NewReviewKey("Great service", intPtr(5), timePtr(at))
	assert.False(t, set.Contains(key))
	set.Add(key)
	assert.True(t, set.Contains(key))
}

func TestDedupIdempotence(t *testing.T) {
	at := day(2026, time.March, 10)
	batch := []struct {
		text   string
		rating *int
	}{
		{"Great service", intPtr(5)},
		{"Too slow", intPtr(2)},
		{"Okay place", intPtr(3)},
	}

	set := BuildKeySet(nil)
	firstRun := 0
	for _, c := range batch {
		key := NewReviewKey(c.text, c.rating, timePtr(at))
		if !set.Contains(key) {
			set.Add(key)
			firstRun++
		}
	}
	assert.Equal(t, 3, firstRun)

	// Running the same batch again against the updated set adds nothing.
	secondRun := 0
	for _, c := range batch {
		key := NewReviewKey(c.text, c.rating, timePtr(at))
		if !set.Contains(key) {
			set.Add(key)
			secondRun++
		}
	}
	assert.Zero(t, secondRun)
}

func TestHasSignal(t *testing.T) {
	assert.False(t, HasSignal("", nil))
	assert.True(t, HasSignal("some text", nil))
	assert.True(t, HasSignal("", intPtr(4)))
	assert.True(t, HasSignal("text", intPtr(1)))
}
