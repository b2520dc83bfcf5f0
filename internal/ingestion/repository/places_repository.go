package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang-review-intel/internal/entity"
	"golang-review-intel/internal/ingestion/config"
	"golang-review-intel/internal/ingestion/dto"
	"golang-review-intel/pkg/logger"

	"golang.org/x/time/rate"
)

// placesRepository fetches reviews from the place-details endpoint. The
// endpoint caps the payload at its most recent reviews, so a single request
// per fetch is all there is.
type placesRepository struct {
	cfg            *config.Config
	log            *logger.Logger
	httpClient     *http.Client
	requestLimiter *rate.Limiter
}

// NewPlacesRepository creates a review source backed by the place-details API.
func NewPlacesRepository(cfg *config.Config, log *logger.Logger) ReviewSourceRepository {
	secondsPerRequest := time.Minute / time.Duration(cfg.Google.MaxRequestPerMinute)
	return &placesRepository{
		cfg: cfg,
		log: log,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		requestLimiter: rate.NewLimiter(rate.Every(secondsPerRequest), 1),
	}
}

// FetchReviews retrieves the recent reviews for the company's place.
func (r *placesRepository) FetchReviews(ctx context.Context, company *entity.Company) ([]dto.RawReview, error) {
	if err := r.requestLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("failed to wait for request limit: %w", err)
	}

	endpoint := fmt.Sprintf("%s/details/json?place_id=%s&fields=name,rating,reviews&key=%s",
		r.cfg.Google.PlacesBaseURL, url.QueryEscape(company.PlaceID), r.cfg.Google.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		r.log.Error("Failed to fetch place details", logger.ErrorField(err), logger.Field("company_id", company.ID))
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("place details request failed with status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var details dto.PlacesDetailsResponse
	if err := json.Unmarshal(body, &details); err != nil {
		return nil, fmt.Errorf("failed to decode place details: %w", err)
	}
	if details.Status != "OK" {
		return nil, fmt.Errorf("place details returned status %q", details.Status)
	}

	raws := make([]dto.RawReview, 0, len(details.Result.Reviews))
	for _, pr := range details.Result.Reviews {
		rating := pr.Rating
		raw := dto.RawReview{
			AuthorName: pr.AuthorName,
			Text:       pr.Text,
			Rating:     &rating,
		}
		if pr.Time > 0 {
			at := time.Unix(pr.Time, 0).UTC()
			raw.AuthoredAt = &at
		}
		raws = append(raws, raw)
	}

	r.log.Debug("Fetched place reviews",
		logger.Field("company_id", company.ID),
		logger.IntField("count", len(raws)))
	return raws, nil
}
