package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang-review-intel/internal/analytics"
	"golang-review-intel/internal/entity"
	"golang-review-intel/internal/ingestion/config"
	"golang-review-intel/internal/ingestion/dto"
	"golang-review-intel/internal/ingestion/repository"
	"golang-review-intel/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCompanyRepo struct {
	company *entity.Company
}

func (f *fakeCompanyRepo) FindByID(ctx context.Context, id uint) (*entity.Company, error) {
	return f.company, nil
}

type fakeReviewRepo struct {
	stored   []entity.Review
	inserted []entity.Review
}

func (f *fakeReviewRepo) FindByCompanyID(ctx context.Context, companyID uint) ([]entity.Review, error) {
	return f.stored, nil
}

func (f *fakeReviewRepo) BatchInsert(ctx context.Context, reviews []entity.Review) error {
	for i := range reviews {
		reviews[i].ID = uint(len(f.inserted) + 1)
		f.inserted = append(f.inserted, reviews[i])
	}
	return nil
}

type fakeRunRepo struct {
	updated *entity.IngestionRun
}

func (f *fakeRunRepo) Update(ctx context.Context, run *entity.IngestionRun) error {
	f.updated = run
	return nil
}

type fakeReplyStoreRepo struct {
	replies []entity.SuggestedReply
}

func (f *fakeReplyStoreRepo) Create(ctx context.Context, reply *entity.SuggestedReply) error {
	f.replies = append(f.replies, *reply)
	return nil
}

type fakeSource struct {
	raws    []dto.RawReview
	err     error
	fetched bool
}

func (f *fakeSource) FetchReviews(ctx context.Context, company *entity.Company) ([]dto.RawReview, error) {
	f.fetched = true
	return f.raws, f.err
}

type fakeNotifier struct {
	messages []string
}

func (f *fakeNotifier) SendMessage(text string) error {
	f.messages = append(f.messages, text)
	return nil
}

type ingestionFixture struct {
	svc            *ingestionService
	reviewRepo     *fakeReviewRepo
	runRepo        *fakeRunRepo
	replyStoreRepo *fakeReplyStoreRepo
	placesSource   *fakeSource
	businessSource *fakeSource
	notifier       *fakeNotifier
}

func newIngestionFixture(t *testing.T, company *entity.Company, stored []entity.Review, placesSource, businessSource *fakeSource) *ingestionFixture {
	t.Helper()

	log, err := logger.New("error", "json")
	require.NoError(t, err)

	lexicon := analytics.DefaultLexicon()
	fx := &ingestionFixture{
		reviewRepo:     &fakeReviewRepo{stored: stored},
		runRepo:        &fakeRunRepo{},
		replyStoreRepo: &fakeReplyStoreRepo{},
		placesSource:   placesSource,
		businessSource: businessSource,
		notifier:       &fakeNotifier{},
	}
	fx.svc = &ingestionService{
		cfg:            &config.Config{},
		companyRepo:    &fakeCompanyRepo{company: company},
		reviewRepo:     fx.reviewRepo,
		runRepo:        fx.runRepo,
		replyStoreRepo: fx.replyStoreRepo,
		placesSource:   fx.placesSource,
		businessSource: fx.businessSource,
		replyRepo:      repository.NewRuleBasedReplyRepository(),
		engine:         analytics.NewEngine(analytics.DefaultConfig(), lexicon),
		lexicon:        lexicon,
		notifier:       fx.notifier,
		logger:         log,
	}
	return fx
}

func ratingPtr(v int) *int { return &v }

func atPtr(t time.Time) *time.Time { return &t }

func TestIngestDedupsAndCountsStats(t *testing.T) {
	company := &entity.Company{ID: 1, Name: "Acme Coffee", SourceType: entity.SourcePlaces}
	at := time.Date(2026, time.March, 5, 10, 0, 0, 0, time.UTC)

	stored := []entity.Review{
		{CompanyID: 1, Text: "great coffee", Rating: ratingPtr(5), ReviewAt: atPtr(at)},
	}
	source := &fakeSource{raws: []dto.RawReview{
		// Already stored: same identity triple, sub-second timestamp skew.
		{AuthorName: "Ann", Text: "great coffee", Rating: ratingPtr(5), AuthoredAt: atPtr(at.Add(300 * time.Millisecond))},
		// No signal: empty text and no rating.
		{AuthorName: "Ghost"},
		// Genuinely new, negative.
		{AuthorName: "Bob", Text: "rude staff and long wait", Rating: ratingPtr(1), AuthoredAt: atPtr(at.AddDate(0, 0, 1))},
	}}

	fx := newIngestionFixture(t, company, stored, source, &fakeSource{})
	stats, err := fx.svc.ingest(context.Background(), &entity.IngestionRun{CompanyID: 1})
	require.NoError(t, err)

	assert.Equal(t, 3, stats.Fetched)
	assert.Equal(t, 1, stats.New)
	assert.Equal(t, 1, stats.Duplicates)
	assert.Equal(t, 1, stats.Skipped)
	assert.Equal(t, 1, stats.Negative)

	require.Len(t, fx.reviewRepo.inserted, 1)
	inserted := fx.reviewRepo.inserted[0]
	assert.Equal(t, "Bob", inserted.ReviewerName)
	assert.Equal(t, []string{"rude", "staff", "long", "wait"}, []string(inserted.Keywords))
}

func TestIngestDraftsRepliesForNewReviews(t *testing.T) {
	company := &entity.Company{ID: 1, Name: "Acme Coffee", SourceType: entity.SourcePlaces}
	at := time.Date(2026, time.March, 5, 10, 0, 0, 0, time.UTC)

	source := &fakeSource{raws: []dto.RawReview{
		{AuthorName: "Ann", Text: "lovely atmosphere", Rating: ratingPtr(5), AuthoredAt: atPtr(at)},
	}}

	fx := newIngestionFixture(t, company, nil, source, &fakeSource{})
	_, err := fx.svc.ingest(context.Background(), &entity.IngestionRun{CompanyID: 1})
	require.NoError(t, err)

	require.Len(t, fx.replyStoreRepo.replies, 1)
	reply := fx.replyStoreRepo.replies[0]
	assert.Equal(t, uint(1), reply.ReviewID)
	assert.Equal(t, "rule_based", reply.Provider)
	assert.Contains(t, reply.Reply, "Ann")
}

func TestIngestAlertsOnNewNegativeReviews(t *testing.T) {
	company := &entity.Company{ID: 1, Name: "Acme Coffee", SourceType: entity.SourcePlaces}
	at := time.Date(2026, time.March, 5, 10, 0, 0, 0, time.UTC)

	source := &fakeSource{raws: []dto.RawReview{
		{AuthorName: "Bob", Text: "dirty tables", Rating: ratingPtr(1), AuthoredAt: atPtr(at)},
	}}

	fx := newIngestionFixture(t, company, nil, source, &fakeSource{})
	_, err := fx.svc.ingest(context.Background(), &entity.IngestionRun{CompanyID: 1})
	require.NoError(t, err)

	require.Len(t, fx.notifier.messages, 1)
	assert.Contains(t, fx.notifier.messages[0], "Acme Coffee")
	assert.Contains(t, fx.notifier.messages[0], "1 negative")
}

func TestIngestDoesNotAlertWhenHealthy(t *testing.T) {
	company := &entity.Company{ID: 1, Name: "Acme Coffee", SourceType: entity.SourcePlaces}
	at := time.Date(2026, time.March, 5, 10, 0, 0, 0, time.UTC)

	source := &fakeSource{raws: []dto.RawReview{
		{AuthorName: "Ann", Text: "lovely atmosphere", Rating: ratingPtr(5), AuthoredAt: atPtr(at)},
	}}

	fx := newIngestionFixture(t, company, nil, source, &fakeSource{})
	_, err := fx.svc.ingest(context.Background(), &entity.IngestionRun{CompanyID: 1})
	require.NoError(t, err)

	assert.Empty(t, fx.notifier.messages)
}

func TestIngestSelectsSourceByCompanyType(t *testing.T) {
	company := &entity.Company{ID: 1, Name: "Acme Coffee", SourceType: entity.SourceBusinessProfile}
	places := &fakeSource{}
	business := &fakeSource{}

	fx := newIngestionFixture(t, company, nil, places, business)
	_, err := fx.svc.ingest(context.Background(), &entity.IngestionRun{CompanyID: 1})
	require.NoError(t, err)

	assert.True(t, business.fetched)
	assert.False(t, places.fetched)
}

func TestIngestAndFinalizeMarksFailedRuns(t *testing.T) {
	company := &entity.Company{ID: 1, Name: "Acme Coffee", SourceType: entity.SourcePlaces}
	source := &fakeSource{err: errors.New("source unavailable")}

	fx := newIngestionFixture(t, company, nil, source, &fakeSource{})
	run := &entity.IngestionRun{ID: 7, CompanyID: 1, Status: entity.StatusRunning}
	fx.svc.ingestAndFinalize(context.Background(), run)

	require.NotNil(t, fx.runRepo.updated)
	assert.Equal(t, entity.StatusFailed, fx.runRepo.updated.Status)
	assert.True(t, fx.runRepo.updated.CompletedAt.Valid)
	assert.Contains(t, fx.runRepo.updated.ErrorMessage.String, "source unavailable")
}
