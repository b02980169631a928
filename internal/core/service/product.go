package service

import (
	"context"
	"time"

	"github.com/nutricr/storefront/internal/core/domain"
	"github.com/nutricr/storefront/internal/core/dto"
	"github.com/nutricr/storefront/internal/core/logger"
	"github.com/nutricr/storefront/internal/core/port"
	"github.com/nutricr/storefront/internal/core/serviceerrors"
	"github.com/nutricr/storefront/internal/core/utils"
)

type ProductService struct {
	productRepository port.ProductPort
	idempotency       *IdempotencyService[domain.Product]
}

func NewProductService(productRepository port.ProductPort, idempotency *IdempotencyService[domain.Product]) *ProductService {
	return &ProductService{
		productRepository: productRepository,
		idempotency:       idempotency,
	}
}

func toAmountPtr(value *int) *domain.Amount {
	if value == nil {
		return nil
	}
	amount := domain.Amount(*value)
	return &amount
}

func (s *ProductService) CreateProduct(ctx context.Context, request *dto.CreateProductRequest) (*domain.Product, error) {
	category := domain.Category(request.Category)
	if !category.IsValid() {
		return nil, serviceerrors.NewInvalidRequestError("invalid category")
	}

	product := domain.NewProduct(
		request.Name,
		request.Description,
		domain.Amount(request.Price),
		toAmountPtr(request.DiscountPrice),
		request.Stock,
		category,
		request.Featured,
		request.Benefits,
	)

	if err := s.productRepository.Create(ctx, product); err != nil {
		logger.Error(ctx, "product: create failed", err, map[string]any{
			"name":     request.Name,
			"category": request.Category,
		})
		return nil, err
	}

	logger.Info(ctx, "Product created", map[string]any{"product_id": product.ID})
	return product, nil
}

func (s *ProductService) GetByID(ctx context.Context, id domain.ID) (*domain.Product, error) {
	return s.productRepository.GetByID(ctx, id)
}

func (s *ProductService) GetAll(ctx context.Context, filter port.ProductFilter) ([]*domain.Product, error) {
	if filter.Category != "" && !filter.Category.IsValid() {
		return nil, serviceerrors.NewInvalidRequestError("invalid category")
	}
	if filter.StockStatus != "" && filter.StockStatus != "low" && filter.StockStatus != "out" {
		return nil, serviceerrors.NewInvalidRequestError("invalid stock status")
	}
	return s.productRepository.GetAll(ctx, filter)
}

func (s *ProductService) UpdateProduct(ctx context.Context, id domain.ID, request *dto.UpdateProductRequest) (*domain.Product, error) {
	category := domain.Category(request.Category)
	if !category.IsValid() {
		return nil, serviceerrors.NewInvalidRequestError("invalid category")
	}

	product, err := s.productRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	product.Name = request.Name
	product.Description = request.Description
	product.Price = domain.Amount(request.Price)
	product.DiscountPrice = toAmountPtr(request.DiscountPrice)
	product.Category = category
	product.Featured = request.Featured
	product.Benefits = request.Benefits
	product.UpdatedAt = time.Now()

	if err := s.productRepository.Update(ctx, product); err != nil {
		logger.Error(ctx, "product: update failed", err, map[string]any{
			"product_id": id,
		})
		return nil, err
	}

	logger.Info(ctx, "Product updated", map[string]any{"product_id": id})
	return product, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id domain.ID) error {
	if err := s.productRepository.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info(ctx, "Product deleted", map[string]any{"product_id": id})
	return nil
}

func (s *ProductService) processStockUpdate(ctx context.Context, id domain.ID, stock int) (*domain.Product, error) {
	product, err := s.productRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product.Stock == stock {
		return product, nil
	}

	now := time.Now()
	event := domain.NewProductStockUpdatedEvent(id, product.Stock, stock, now)
	if err := s.productRepository.UpdateStockWithOutbox(ctx, id, stock, event); err != nil {
		logger.Error(ctx, "product: stock update failed", err, map[string]any{
			"product_id": id,
			"new_stock":  stock,
		})
		return nil, err
	}

	product.Stock = stock
	product.UpdatedAt = now

	logger.Info(ctx, "Product stock updated", map[string]any{
		"product_id": id,
		"old_stock":  event.OldStock,
		"new_stock":  stock,
		"low_stock":  event.LowStock,
	})
	return product, nil
}

// UpdateStock replaces a product's stock with an absolute figure and records
// a stock-updated event in the same transaction. Restock requests may carry
// an Idempotency-Key so a retried admin action is applied once.
func (s *ProductService) UpdateStock(ctx context.Context, idempotencyKey string, id domain.ID, stock int) (*domain.Product, error) {
	if stock < 0 {
		return nil, serviceerrors.NewInvalidRequestError("stock cannot be negative")
	}

	if idempotencyKey == "" {
		return s.processStockUpdate(ctx, id, stock)
	}

	payloadHash := utils.HashJSON(map[string]any{"product_id": id, "stock": stock})

	existing, err := s.idempotency.Claim(ctx, idempotencyKey, payloadHash)
	if err != nil {
		logger.Error(ctx, "idempotency: claim failed", err, map[string]any{
			"idempotency_key": idempotencyKey,
		})
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	product, err := s.processStockUpdate(ctx, id, stock)
	if err != nil {
		s.idempotency.Release(ctx, idempotencyKey)
		return nil, err
	}

	s.idempotency.Complete(ctx, idempotencyKey, payloadHash, product)

	return product, nil
}
