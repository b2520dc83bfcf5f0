package analytics

import (
	"time"

	"golang-review-intel/internal/entity"
)

func intPtr(v int) *int { return &v }

func timePtr(t time.Time) *time.Time { return &t }

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 12, 0, 0, 0, time.UTC)
}

func review(text string, rating *int, at *time.Time) entity.Review {
	return entity.Review{
		CompanyID:    1,
		Text:         text,
		Rating:       rating,
		ReviewAt:     at,
		ReviewerName: "Anonymous",
	}
}

func testCompany() *entity.Company {
	return &entity.Company{ID: 1, Name: "Acme Coffee"}
}
