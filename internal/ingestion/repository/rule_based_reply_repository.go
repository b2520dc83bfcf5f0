package repository

import (
	"context"
	"fmt"

	"golang-review-intel/internal/analytics"
	"golang-review-intel/internal/entity"
)

// ruleBasedReplyRepository drafts replies from fixed templates keyed on the
// review's sentiment. It is the fallback when no AI provider is configured,
// and it is fully deterministic.
type ruleBasedReplyRepository struct{}

// NewRuleBasedReplyRepository creates the template-based reply repository.
func NewRuleBasedReplyRepository() ReplyRepository {
	return &ruleBasedReplyRepository{}
}

// Provider identifies the reply source stored alongside the draft.
func (r *ruleBasedReplyRepository) Provider() string {
	return "rule_based"
}

// SuggestReply picks a reply template by sentiment.
func (r *ruleBasedReplyRepository) SuggestReply(ctx context.Context, company *entity.Company, review *entity.Review) (string, error) {
	name := review.ReviewerName
	if name == "" {
		name = "there"
	}

	switch analytics.ClassifySentiment(review.Rating) {
	case analytics.SentimentPositive:
		return fmt.Sprintf(
			"Thank you so much for the kind words, %s! We're thrilled you had a great experience at %s and hope to welcome you back soon.",
			name, company.Name), nil
	case analytics.SentimentNegative:
		return fmt.Sprintf(
			"Hi %s, we're sorry your visit to %s fell short of expectations. We take this feedback seriously and would like to make it right - please reach out to us directly so we can follow up.",
			name, company.Name), nil
	default:
		return fmt.Sprintf(
			"Thank you for taking the time to review %s, %s. We appreciate the feedback and are always working to improve.",
			company.Name, name), nil
	}
}
