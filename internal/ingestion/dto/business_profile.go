package dto

import (
	"time"
)

// BusinessProfileReviewsResponse is one page of the business-profile reviews
// endpoint. The caller walks pages via NextPageToken until it is empty.
type BusinessProfileReviewsResponse struct {
	Reviews       []BusinessProfileReview `json:"reviews"`
	NextPageToken string                  `json:"nextPageToken"`
	TotalSize     int                     `json:"totalReviewCount"`
}

// BusinessProfileReview is a single review in a business-profile response.
type BusinessProfileReview struct {
	ReviewID   string                  `json:"reviewId"`
	Reviewer   BusinessProfileReviewer `json:"reviewer"`
	StarRating string                  `json:"starRating"`
	Comment    string                  `json:"comment"`
	CreateTime time.Time               `json:"createTime"`
}

// BusinessProfileReviewer identifies the author of a business-profile review.
type BusinessProfileReviewer struct {
	DisplayName string `json:"displayName"`
}

// StarRatingValue maps the enum-style star rating to a numeric rating.
// Unknown values yield nil, which the pipeline treats as unrated.
func (r BusinessProfileReview) StarRatingValue() *int {
	ratings := map[string]int{
		"ONE":   1,
		"TWO":   2,
		"THREE": 3,
		"FOUR":  4,
		"FIVE":  5,
	}
	if v, ok := ratings[r.StarRating]; ok {
		return &v
	}
	return nil
}
