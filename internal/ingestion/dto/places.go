package dto

// PlacesDetailsResponse is the response shape of the place-details endpoint.
// The endpoint returns at most a handful of recent reviews and offers no
// pagination.
type PlacesDetailsResponse struct {
	Result PlacesResult `json:"result"`
	Status string       `json:"status"`
}

// PlacesResult holds the place payload within a details response.
type PlacesResult struct {
	Name    string        `json:"name"`
	Rating  float64       `json:"rating"`
	Reviews []PlaceReview `json:"reviews"`
}

// PlaceReview is a single review in a place-details response.
type PlaceReview struct {
	AuthorName string `json:"author_name"`
	Rating     int    `json:"rating"`
	Text       string `json:"text"`
	Time       int64  `json:"time"`
}
