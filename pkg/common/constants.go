package common

const (
	RedisStreamReviewIngestion = "review.ingestion"

	RedisStreamGroup    = "ingestion-group"
	RedisStreamConsumer = "ingestion-consumer"
)
