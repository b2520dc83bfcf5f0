package consumer

import (
	"context"
	"sync"
	"time"

	"golang-review-intel/internal/ingestion/config"
	"golang-review-intel/internal/ingestion/service"
	"golang-review-intel/pkg/common"
	"golang-review-intel/pkg/logger"
	"golang-review-intel/pkg/utils"
)

// RedisConsumer manages the consumption of ingestion tasks from the Redis
// stream.
type RedisConsumer struct {
	cfg              *config.Config
	ingestionService service.IngestionService
	logger           *logger.Logger
	stopChan         chan struct{}
	wg               sync.WaitGroup
}

// NewRedisConsumer creates a new RedisConsumer.
func NewRedisConsumer(
	cfg *config.Config,
	ingestionService service.IngestionService,
	log *logger.Logger,
) *RedisConsumer {
	return &RedisConsumer{
		cfg:              cfg,
		ingestionService: ingestionService,
		logger:           log,
		stopChan:         make(chan struct{}),
	}
}

// Start begins the consumer's task processing loop.
func (c *RedisConsumer) Start(ctx context.Context) {
	c.logger.Info("Redis consumer started")
	c.RegisterStreamHandler(ctx, c.ingestionService.ProcessTask, common.RedisStreamReviewIngestion, c.cfg.Ingestion.RedisStreamTaskTimeout)
}

// RegisterStreamHandler runs fn in a loop until the context is cancelled or
// the consumer is stopped.
func (c *RedisConsumer) RegisterStreamHandler(ctx context.Context, fn func(ctx context.Context), streamName string, timeout time.Duration) {
	c.logger.Info("Registering stream handler", logger.Field("stream", streamName))
	c.wg.Add(1)
	utils.GoSafe(func() {
		defer c.wg.Done()
		for {
			select {
			case <-ctx.Done():
				c.logger.Info("Redis consumer stopping due to context cancellation")
				return
			case <-c.stopChan:
				c.logger.Info("Redis consumer stopping")
				return
			default:
				ctxTimeout, cancel := context.WithTimeout(ctx, timeout)
				fn(ctxTimeout)
				cancel()
			}
		}
	})
}

// Stop gracefully shuts down the consumer.
func (c *RedisConsumer) Stop() {
	close(c.stopChan)
	c.wg.Wait()
	c.logger.Info("Redis consumer stopped")
}
