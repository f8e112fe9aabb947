package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/carepath-ai/readmission/pkg/common/logger"
	"github.com/carepath-ai/readmission/pkg/common/models"
	"github.com/carepath-ai/readmission/pkg/registry"
	"github.com/carepath-ai/readmission/pkg/risk"
	"github.com/redis/go-redis/v9"
)

const categoryCountsKey = "analytics:category-counts"

// Service hosts the population-level read operations: the baseline survival
// curve, the competing-risks decomposition, and running category counts.
// Curves depend only on a model version, so they cache well.
type Service struct {
	registry *registry.Registry
	redis    *redis.Client
	cacheTTL time.Duration
	maxDays  int
}

func NewService(reg *registry.Registry, redisClient *redis.Client, cacheTTL time.Duration, maxDays int) *Service {
	if maxDays <= 0 {
		maxDays = 365
	}
	return &Service{registry: reg, redis: redisClient, cacheTTL: cacheTTL, maxDays: maxDays}
}

// SurvivalCurve returns daily baseline survival through the requested
// horizon for one model version, serving from the Redis cache when warm.
func (s *Service) SurvivalCurve(ctx context.Context, days int, version string) (models.SurvivalCurveResponse, error) {
	if days <= 0 || days > s.maxDays {
		return models.SurvivalCurveResponse{}, fmt.Errorf("%w: days must be in [1,%d]", risk.ErrInvalidParameter, s.maxDays)
	}

	engine, resolved, err := s.registry.Engine(version)
	if err != nil {
		return models.SurvivalCurveResponse{}, err
	}

	cacheKey := fmt.Sprintf("analytics:survival-curve:%s:%d", resolved, days)
	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, cacheKey).Result(); err == nil {
			var resp models.SurvivalCurveResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return resp, nil
			}
		}
	}

	points, err := engine.SurvivalCurve(days)
	if err != nil {
		return models.SurvivalCurveResponse{}, err
	}

	coeffs := engine.Coefficients()
	resp := models.SurvivalCurveResponse{
		ModelVersion: resolved,
		Shape:        coeffs.Shape,
		Scale:        coeffs.Scale,
		Points:       points,
	}

	if s.redis != nil {
		if payload, err := json.Marshal(resp); err == nil {
			if err := s.redis.Set(ctx, cacheKey, payload, s.cacheTTL).Err(); err != nil {
				logger.Log.WithError(err).Debug("Failed to cache survival curve")
			}
		}
	}

	return resp, nil
}

// CompetingRisksAt returns the population outcome decomposition at day t.
func (s *Service) CompetingRisksAt(days float64) (models.CompetingRisksResponse, error) {
	decomposition, err := risk.DecomposeAt(days)
	if err != nil {
		return models.CompetingRisksResponse{}, err
	}
	return models.CompetingRisksResponse{Days: days, Decomposition: decomposition}, nil
}

// CategorySummary reads the running per-category counts maintained by the
// event consumer.
func (s *Service) CategorySummary(ctx context.Context) (models.CategorySummary, error) {
	summary := models.CategorySummary{Counts: map[string]int64{
		string(risk.CategoryLow):    0,
		string(risk.CategoryMedium): 0,
		string(risk.CategoryHigh):   0,
	}}
	if s.redis == nil {
		return summary, nil
	}

	counts, err := s.redis.HGetAll(ctx, categoryCountsKey).Result()
	if err != nil {
		return models.CategorySummary{}, fmt.Errorf("read category counts: %w", err)
	}
	for category, raw := range counts {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			continue
		}
		summary.Counts[category] = n
		summary.Total += n
	}
	return summary, nil
}
