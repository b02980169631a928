package service

import (
	"context"
	"fmt"
	"time"

	"github.com/nutricr/storefront/internal/core/domain"
	"github.com/nutricr/storefront/internal/core/logger"
	"github.com/nutricr/storefront/internal/core/port"
	"github.com/nutricr/storefront/internal/core/serviceerrors"
)

const metricsCacheTTL = 1 * time.Minute

// InventoryService computes dashboard metrics over the full catalog
// snapshot. Metrics are pure derivations, recomputed on demand and cached
// briefly per period; a stale entry self-corrects within the TTL.
type InventoryService struct {
	productRepository port.ProductPort
	metricsCache      port.CachePort[domain.InventoryMetrics]
}

func NewInventoryService(productRepository port.ProductPort, metricsCache port.CachePort[domain.InventoryMetrics]) *InventoryService {
	return &InventoryService{
		productRepository: productRepository,
		metricsCache:      metricsCache,
	}
}

func (s *InventoryService) getCacheKey(period domain.Period) string {
	return fmt.Sprintf("metrics:%s", period)
}

func (s *InventoryService) Metrics(ctx context.Context, period domain.Period) (*domain.InventoryMetrics, error) {
	if !period.IsValid() {
		return nil, serviceerrors.NewInvalidRequestError("invalid period")
	}

	cached, err := s.metricsCache.Get(ctx, s.getCacheKey(period))
	if err != nil {
		logger.Error(ctx, "cache: get metrics failed", err, map[string]any{
			"period": period,
		})
	}
	if cached != nil {
		return cached, nil
	}

	products, err := s.productRepository.GetAll(ctx, port.ProductFilter{})
	if err != nil {
		return nil, err
	}

	metrics := domain.ComputeInventoryMetrics(products, period)

	if err := s.metricsCache.Set(ctx, s.getCacheKey(period), metrics, metricsCacheTTL); err != nil {
		logger.Error(ctx, "cache: set metrics failed", err, map[string]any{
			"period": period,
		})
	}

	return metrics, nil
}

// InvalidateMetrics drops every cached period snapshot, called after stock
// mutations so the dashboard reflects them within one read.
func (s *InventoryService) InvalidateMetrics(ctx context.Context) {
	for _, period := range []domain.Period{domain.PeriodDay, domain.PeriodWeek, domain.PeriodMonth, domain.PeriodYear} {
		if err := s.metricsCache.Del(ctx, s.getCacheKey(period)); err != nil {
			logger.Error(ctx, "cache: invalidate metrics failed", err, map[string]any{
				"period": period,
			})
		}
	}
}
