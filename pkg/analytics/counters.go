package analytics

import (
	"context"
	"fmt"

	"github.com/carepath-ai/readmission/pkg/common/logger"
	"github.com/carepath-ai/readmission/pkg/common/models"
	"github.com/redis/go-redis/v9"
)

// NewCategoryCounter returns an event handler that keeps per-category
// assessment counts in a Redis hash. It feeds the category summary
// endpoint and ignores every event type except assessment.completed.
func NewCategoryCounter(redisClient *redis.Client) func(ctx context.Context, event models.Event) error {
	return func(ctx context.Context, event models.Event) error {
		if event.Type != models.EventAssessmentCompleted {
			return nil
		}

		category, ok := event.Data["category"].(string)
		if !ok || category == "" {
			logger.Log.WithField("event_id", event.ID).Warn("Assessment event missing category")
			return nil
		}

		if err := redisClient.HIncrBy(ctx, categoryCountsKey, category, 1).Err(); err != nil {
			return fmt.Errorf("increment category count: %w", err)
		}
		return nil
	}
}
