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

// businessProfileRepository fetches reviews from the business-profile API,
// walking the paginated listing via page tokens.
type businessProfileRepository struct {
	cfg            *config.Config
	log            *logger.Logger
	httpClient     *http.Client
	requestLimiter *rate.Limiter
}

// NewBusinessProfileRepository creates a review source backed by the
// business-profile reviews API.
func NewBusinessProfileRepository(cfg *config.Config, log *logger.Logger) ReviewSourceRepository {
	secondsPerRequest := time.Minute / time.Duration(cfg.Google.MaxRequestPerMinute)
	return &businessProfileRepository{
		cfg: cfg,
		log: log,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		requestLimiter: rate.NewLimiter(rate.Every(secondsPerRequest), 1),
	}
}

// FetchReviews walks the paginated review listing for the company's location.
func (r *businessProfileRepository) FetchReviews(ctx context.Context, company *entity.Company) ([]dto.RawReview, error) {
	var raws []dto.RawReview
	pageToken := ""

	for page := 0; ; page++ {
		if r.cfg.Google.MaxPages > 0 && page >= r.cfg.Google.MaxPages {
			r.log.Warn("Stopping review pagination at configured page cap",
				logger.Field("company_id", company.ID),
				logger.IntField("max_pages", r.cfg.Google.MaxPages))
			break
		}

		resp, err := r.fetchPage(ctx, company.PlaceID, pageToken)
		if err != nil {
			return nil, err
		}

		for _, br := range resp.Reviews {
			raw := dto.RawReview{
				ExternalID: br.ReviewID,
				AuthorName: br.Reviewer.DisplayName,
				Text:       br.Comment,
				Rating:     br.StarRatingValue(),
			}
			if !br.CreateTime.IsZero() {
				at := br.CreateTime.UTC()
				raw.AuthoredAt = &at
			}
			raws = append(raws, raw)
		}

		if resp.NextPageToken == "" {
			break
		}
		pageToken = resp.NextPageToken
	}

	r.log.Debug("Fetched business profile reviews",
		logger.Field("company_id", company.ID),
		logger.IntField("count", len(raws)))
	return raws, nil
}

func (r *businessProfileRepository) fetchPage(ctx context.Context, locationID, pageToken string) (*dto.BusinessProfileReviewsResponse, error) {
	if err := r.requestLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("failed to wait for request limit: %w", err)
	}

	endpoint := fmt.Sprintf("%s/locations/%s/reviews?pageSize=%d",
		r.cfg.Google.BusinessProfileBaseURL, url.PathEscape(locationID), r.cfg.Google.PageSize)
	if pageToken != "" {
		endpoint += "&pageToken=" + url.QueryEscape(pageToken)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+r.cfg.Google.APIKey)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("business profile request failed with status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var page dto.BusinessProfileReviewsResponse
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("failed to decode business profile page: %w", err)
	}
	return &page, nil
}
