package service

import (
	"context"
	"errors"
	"testing"

	"github.com/nutricr/storefront/internal/core/domain"
	"github.com/nutricr/storefront/internal/core/port"
	"github.com/nutricr/storefront/internal/core/port/mock"
	"github.com/nutricr/storefront/internal/core/serviceerrors"
	"go.uber.org/mock/gomock"
)

func setupInventoryService(t *testing.T) (*InventoryService, *mock.MockProductPort, *mock.MockCachePort[domain.InventoryMetrics]) {
	ctrl := gomock.NewController(t)
	productRepo := mock.NewMockProductPort(ctrl)
	metricsCache := mock.NewMockCachePort[domain.InventoryMetrics](ctrl)
	svc := NewInventoryService(productRepo, metricsCache)
	return svc, productRepo, metricsCache
}

func TestInventoryService_Metrics(t *testing.T) {
	t.Run("computes and caches on miss", func(t *testing.T) {
		svc, productRepo, metricsCache := setupInventoryService(t)
		catalog := []*domain.Product{
			{ID: "p1", Price: 10000, Stock: 10},
			{ID: "p2", Price: 5000, Stock: 0},
		}

		metricsCache.EXPECT().Get(gomock.Any(), "metrics:year").Return(nil, nil)
		productRepo.EXPECT().GetAll(gomock.Any(), port.ProductFilter{}).Return(catalog, nil)
		metricsCache.EXPECT().Set(gomock.Any(), "metrics:year", gomock.Any(), metricsCacheTTL).Return(nil)

		metrics, err := svc.Metrics(context.Background(), domain.PeriodYear)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if metrics.TotalProducts != 2 {
			t.Fatalf("expected 2 products, got %d", metrics.TotalProducts)
		}
		// p1 simulated = 5 under year, so it is low stock; p2 is out
		if metrics.LowStockCount != 1 || metrics.OutOfStock != 1 {
			t.Fatalf("expected low=1 out=1, got low=%d out=%d", metrics.LowStockCount, metrics.OutOfStock)
		}
	})

	t.Run("cache hit skips repository", func(t *testing.T) {
		svc, _, metricsCache := setupInventoryService(t)
		cached := &domain.InventoryMetrics{Period: domain.PeriodDay, TotalProducts: 7}

		metricsCache.EXPECT().Get(gomock.Any(), "metrics:day").Return(cached, nil)

		metrics, err := svc.Metrics(context.Background(), domain.PeriodDay)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if metrics.TotalProducts != 7 {
			t.Fatalf("expected cached snapshot, got %+v", metrics)
		}
	})

	t.Run("invalid period", func(t *testing.T) {
		svc, _, _ := setupInventoryService(t)

		_, err := svc.Metrics(context.Background(), "quarter")
		if !serviceerrors.IsOfKind(err, serviceerrors.KindInvalidRequest) {
			t.Fatalf("expected invalid request error, got %v", err)
		}
	})

	t.Run("repository error", func(t *testing.T) {
		svc, productRepo, metricsCache := setupInventoryService(t)

		metricsCache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, nil)
		productRepo.EXPECT().GetAll(gomock.Any(), port.ProductFilter{}).Return(nil, errors.New("db error"))

		_, err := svc.Metrics(context.Background(), domain.PeriodMonth)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}

func TestInventoryService_InvalidateMetrics(t *testing.T) {
	svc, _, metricsCache := setupInventoryService(t)

	metricsCache.EXPECT().Del(gomock.Any(), "metrics:day").Return(nil)
	metricsCache.EXPECT().Del(gomock.Any(), "metrics:week").Return(nil)
	metricsCache.EXPECT().Del(gomock.Any(), "metrics:month").Return(nil)
	metricsCache.EXPECT().Del(gomock.Any(), "metrics:year").Return(errors.New("redis down"))

	// a failed delete is logged, not surfaced
	svc.InvalidateMetrics(context.Background())
}
