package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/nutricr/storefront/internal/adapters/mongo/repository"
	"github.com/nutricr/storefront/internal/core/domain"
	"github.com/nutricr/storefront/internal/core/port"
	"github.com/nutricr/storefront/internal/core/serviceerrors"
)

func createTestProduct(t *testing.T, repo port.ProductPort, opts ...func(*domain.Product)) *domain.Product {
	t.Helper()
	product := domain.NewProduct("Test Whey", "Proteína de suero", 25000, nil, 50, domain.CategoryProtein, false, nil)
	for _, opt := range opts {
		opt(product)
	}
	if err := repo.Create(context.Background(), product); err != nil {
		t.Fatalf("setup: create product failed: %v", err)
	}
	return product
}

func TestProductRepository_Create(t *testing.T) {
	repo := repository.NewProductRepository(testDB, repository.NewOutboxRepository(testDB))
	ctx := context.Background()

	t.Run("creates product and assigns ID", func(t *testing.T) {
		discount := domain.Amount(19000)
		product := domain.NewProduct("Creatina", "Monohidrato", 21000, &discount, 30, domain.CategoryCreatine, true, []string{"fuerza"})

		err := repo.Create(ctx, product)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if product.ID == "" {
			t.Fatal("expected product ID to be assigned")
		}
		if len(string(product.ID)) != 24 {
			t.Fatalf("expected 24-char hex ID, got %q", product.ID)
		}
	})

	t.Run("rejects product with pre-set ID", func(t *testing.T) {
		product := domain.NewProduct("Dup", "", 1000, nil, 1, domain.CategoryVitamins, false, nil)
		product.ID = "aabbccddee112233aabbccdd"

		if err := repo.Create(ctx, product); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}

func TestProductRepository_GetByID(t *testing.T) {
	repo := repository.NewProductRepository(testDB, repository.NewOutboxRepository(testDB))
	ctx := context.Background()

	t.Run("returns product by ID", func(t *testing.T) {
		discount := domain.Amount(15000)
		created := createTestProduct(t, repo, func(p *domain.Product) {
			p.DiscountPrice = &discount
			p.Benefits = []string{"recuperación", "masa muscular"}
		})

		found, err := repo.GetByID(ctx, created.ID)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if found.ID != created.ID {
			t.Fatalf("expected id %s, got %s", created.ID, found.ID)
		}
		if found.Name != created.Name {
			t.Fatalf("expected name %q, got %q", created.Name, found.Name)
		}
		if found.Price != created.Price {
			t.Fatalf("expected price %d, got %d", created.Price, found.Price)
		}
		if found.DiscountPrice == nil || *found.DiscountPrice != discount {
			t.Fatalf("expected discount price %d, got %v", discount, found.DiscountPrice)
		}
		if found.Category != domain.CategoryProtein {
			t.Fatalf("expected category %q, got %q", domain.CategoryProtein, found.Category)
		}
		if len(found.Benefits) != 2 {
			t.Fatalf("expected 2 benefits, got %d", len(found.Benefits))
		}
	})

	t.Run("returns not found for non-existing ID", func(t *testing.T) {
		_, err := repo.GetByID(ctx, "aabbccddee112233aabbccdd")
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			t.Fatalf("expected KindNotFound, got %v", err)
		}
	})

	t.Run("returns error for invalid ID", func(t *testing.T) {
		_, err := repo.GetByID(ctx, "bad-id")
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !serviceerrors.IsOfKind(err, serviceerrors.KindInvalidRequest) {
			t.Fatalf("expected KindInvalidRequest, got %v", err)
		}
	})
}

func TestProductRepository_GetAll(t *testing.T) {
	// Use a fresh database to avoid pollution from other tests
	freshDB := testClient.Database("test_product_getall")
	repo := repository.NewProductRepository(freshDB, repository.NewOutboxRepository(freshDB))
	ctx := context.Background()

	t.Run("returns empty list when no products", func(t *testing.T) {
		products, err := repo.GetAll(ctx, port.ProductFilter{})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(products) != 0 {
			t.Fatalf("expected 0 products, got %d", len(products))
		}
	})

	t.Run("filters by category, featured and stock status", func(t *testing.T) {
		createTestProduct(t, repo) // protein, stock 50
		createTestProduct(t, repo, func(p *domain.Product) {
			p.Category = domain.CategoryVitamins
			p.Featured = true
			p.Stock = 3
		})
		createTestProduct(t, repo, func(p *domain.Product) {
			p.Category = domain.CategoryVitamins
			p.Stock = 0
		})

		all, err := repo.GetAll(ctx, port.ProductFilter{})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(all) != 3 {
			t.Fatalf("expected 3 products, got %d", len(all))
		}

		vitamins, err := repo.GetAll(ctx, port.ProductFilter{Category: domain.CategoryVitamins})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(vitamins) != 2 {
			t.Fatalf("expected 2 vitamin products, got %d", len(vitamins))
		}

		featured := true
		featuredOnly, err := repo.GetAll(ctx, port.ProductFilter{Featured: &featured})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(featuredOnly) != 1 {
			t.Fatalf("expected 1 featured product, got %d", len(featuredOnly))
		}

		low, err := repo.GetAll(ctx, port.ProductFilter{StockStatus: "low"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(low) != 1 || low[0].Stock != 3 {
			t.Fatalf("expected the stock-3 product only, got %d results", len(low))
		}

		out, err := repo.GetAll(ctx, port.ProductFilter{StockStatus: "out"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(out) != 1 || out[0].Stock != 0 {
			t.Fatalf("expected the stock-0 product only, got %d results", len(out))
		}
	})
}

func TestProductRepository_Update(t *testing.T) {
	repo := repository.NewProductRepository(testDB, repository.NewOutboxRepository(testDB))
	ctx := context.Background()

	t.Run("updates catalog fields without touching stock", func(t *testing.T) {
		created := createTestProduct(t, repo)

		created.Name = "Whey Pro"
		created.Price = 27000
		discount := domain.Amount(24000)
		created.DiscountPrice = &discount
		created.Featured = true

		if err := repo.Update(ctx, created); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		updated, _ := repo.GetByID(ctx, created.ID)
		if updated.Name != "Whey Pro" {
			t.Fatalf("expected updated name, got %q", updated.Name)
		}
		if updated.DiscountPrice == nil || *updated.DiscountPrice != 24000 {
			t.Fatalf("expected discount 24000, got %v", updated.DiscountPrice)
		}
		if updated.Stock != 50 {
			t.Fatalf("expected stock untouched at 50, got %d", updated.Stock)
		}
	})

	t.Run("clears discount when removed", func(t *testing.T) {
		discount := domain.Amount(20000)
		created := createTestProduct(t, repo, func(p *domain.Product) {
			p.DiscountPrice = &discount
		})

		created.DiscountPrice = nil
		if err := repo.Update(ctx, created); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		updated, _ := repo.GetByID(ctx, created.ID)
		if updated.DiscountPrice != nil {
			t.Fatalf("expected discount cleared, got %v", *updated.DiscountPrice)
		}
	})

	t.Run("returns not found for non-existing product", func(t *testing.T) {
		product := domain.NewProduct("Ghost", "", 1000, nil, 1, domain.CategoryProtein, false, nil)
		product.ID = "aabbccddee112233aabbccdd"

		err := repo.Update(ctx, product)
		if !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			t.Fatalf("expected KindNotFound, got %v", err)
		}
	})
}

func TestProductRepository_UpdateStockWithOutbox(t *testing.T) {
	freshDB := testClient.Database("test_product_stock_outbox")
	outboxRepo := repository.NewOutboxRepository(freshDB)
	repo := repository.NewProductRepository(freshDB, outboxRepo)
	ctx := context.Background()

	t.Run("writes stock and outbox entry atomically", func(t *testing.T) {
		created := createTestProduct(t, repo)

		event := domain.NewProductStockUpdatedEvent(created.ID, created.Stock, 3, time.Now())
		if err := repo.UpdateStockWithOutbox(ctx, created.ID, 3, event); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		updated, _ := repo.GetByID(ctx, created.ID)
		if updated.Stock != 3 {
			t.Fatalf("expected stock 3, got %d", updated.Stock)
		}

		entries, err := outboxRepo.FetchPending(ctx, 10)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(entries) != 1 {
			t.Fatalf("expected 1 outbox entry, got %d", len(entries))
		}
		if entries[0].EventName != "product.stock_updated" {
			t.Fatalf("expected event name product.stock_updated, got %q", entries[0].EventName)
		}
	})

	t.Run("leaves no outbox entry when product is missing", func(t *testing.T) {
		event := domain.NewProductStockUpdatedEvent("aabbccddee112233aabbccdd", 5, 1, time.Now())

		err := repo.UpdateStockWithOutbox(ctx, "aabbccddee112233aabbccdd", 1, event)
		if !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			t.Fatalf("expected KindNotFound, got %v", err)
		}

		entries, _ := outboxRepo.FetchPending(ctx, 10)
		if len(entries) != 1 {
			t.Fatalf("expected outbox unchanged at 1 entry, got %d", len(entries))
		}
	})

	t.Run("returns error for invalid ID", func(t *testing.T) {
		event := domain.NewProductStockUpdatedEvent("bad-id", 5, 1, time.Now())

		err := repo.UpdateStockWithOutbox(ctx, "bad-id", 1, event)
		if !serviceerrors.IsOfKind(err, serviceerrors.KindInvalidRequest) {
			t.Fatalf("expected KindInvalidRequest, got %v", err)
		}
	})
}

func TestProductRepository_Delete(t *testing.T) {
	repo := repository.NewProductRepository(testDB, repository.NewOutboxRepository(testDB))
	ctx := context.Background()

	t.Run("deletes product", func(t *testing.T) {
		created := createTestProduct(t, repo)

		if err := repo.Delete(ctx, created.ID); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		_, err := repo.GetByID(ctx, created.ID)
		if !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			t.Fatalf("expected KindNotFound, got %v", err)
		}
	})

	t.Run("returns not found for non-existing product", func(t *testing.T) {
		err := repo.Delete(ctx, "aabbccddee112233aabbccdd")
		if !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			t.Fatalf("expected KindNotFound, got %v", err)
		}
	})
}
