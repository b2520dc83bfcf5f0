package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang-review-intel/internal/entity"
	"golang-review-intel/internal/ingestion/config"
	"golang-review-intel/pkg/logger"
	"golang-review-intel/pkg/ratelimit"

	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// geminiReplyRepository drafts review replies with the Google Gemini API.
type geminiReplyRepository struct {
	cfg            *config.Config
	logger         *logger.Logger
	tokenLimiter   *ratelimit.TokenLimiter
	requestLimiter *rate.Limiter
	genAiClient    *genai.Client
}

// NewGeminiReplyRepository creates a Gemini-backed reply repository.
func NewGeminiReplyRepository(cfg *config.Config, log *logger.Logger, genAiClient *genai.Client) (ReplyRepository, error) {
	secondsPerRequest := time.Minute / time.Duration(cfg.Gemini.MaxRequestPerMinute)
	return &geminiReplyRepository{
		cfg:            cfg,
		logger:         log,
		requestLimiter: rate.NewLimiter(rate.Every(secondsPerRequest), 1),
		tokenLimiter:   ratelimit.NewTokenLimiter(cfg.Gemini.MaxTokenPerMinute),
		genAiClient:    genAiClient,
	}, nil
}

// Provider identifies the reply source stored alongside the draft.
func (r *geminiReplyRepository) Provider() string {
	return "gemini"
}

// SuggestReply drafts a short owner reply for the given review.
func (r *geminiReplyRepository) SuggestReply(ctx context.Context, company *entity.Company, review *entity.Review) (string, error) {
	prompt := buildReplyPrompt(company, review)
	contents := []*genai.Content{
		genai.NewContentFromText(prompt, "user"),
	}

	tokenResp, err := r.genAiClient.Models.CountTokens(ctx, r.cfg.Gemini.Model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("failed to count tokens: %w", err)
	}

	r.logger.Debug("Gemini token count",
		logger.IntField("total_tokens", int(tokenResp.TotalTokens)),
		logger.IntField("remaining", r.tokenLimiter.GetRemaining()))

	if err := r.tokenLimiter.Wait(ctx, int(tokenResp.TotalTokens)); err != nil {
		return "", fmt.Errorf("failed to wait for token limit: %w", err)
	}
	if err := r.requestLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("failed to wait for request limit: %w", err)
	}

	resp, err := r.genAiClient.Models.GenerateContent(ctx, r.cfg.Gemini.Model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate reply: %w", err)
	}

	reply := strings.TrimSpace(resp.Text())
	if reply == "" {
		return "", fmt.Errorf("gemini returned an empty reply")
	}
	return reply, nil
}

func buildReplyPrompt(company *entity.Company, review *entity.Review) string {
	var b strings.Builder
	b.WriteString("You are the owner of the business below replying to a customer review.\n")
	b.WriteString("Write a short, professional reply (2-3 sentences). Thank the reviewer, ")
	b.WriteString("address their specific points, and for negative reviews offer a concrete follow-up. ")
	b.WriteString("Reply with the message text only.\n\n")
	fmt.Fprintf(&b, "Business: %s\n", company.Name)
	fmt.Fprintf(&b, "Reviewer: %s\n", review.ReviewerName)
	if review.Rating != nil {
		fmt.Fprintf(&b, "Rating: %d/5\n", *review.Rating)
	} else {
		b.WriteString("Rating: not provided\n")
	}
	fmt.Fprintf(&b, "Review: %s\n", review.Text)
	return b.String()
}
