package service

import (
	"context"
	"fmt"
	"time"

	"github.com/nutricr/storefront/internal/core/domain"
	"github.com/nutricr/storefront/internal/core/dto"
	"github.com/nutricr/storefront/internal/core/logger"
	"github.com/nutricr/storefront/internal/core/port"
	"github.com/nutricr/storefront/internal/core/serviceerrors"
)

const cartCacheTTL = 30 * time.Minute

// CartService owns cart sessions. The domain ledger itself accepts any
// positive quantity; this service is the collaborator that limits requested
// quantities to the product's current stock before the ledger sees them.
type CartService struct {
	cartRepository  port.CartPort
	productService  *ProductService
	cartCache       port.CachePort[domain.Cart]
	shippingMethods []domain.ShippingMethod
}

func NewCartService(
	cartRepository port.CartPort,
	productService *ProductService,
	cartCache port.CachePort[domain.Cart],
	shippingMethods []domain.ShippingMethod,
) *CartService {
	return &CartService{
		cartRepository:  cartRepository,
		productService:  productService,
		cartCache:       cartCache,
		shippingMethods: shippingMethods,
	}
}

func (s *CartService) getCacheKey(cartID domain.ID) string {
	return fmt.Sprintf("cart:%s", cartID)
}

// ShippingMethods returns the configured method list; the canonical set is
// configuration data, not something the core generates.
func (s *CartService) ShippingMethods() []domain.ShippingMethod {
	return s.shippingMethods
}

func (s *CartService) CreateCart(ctx context.Context) (*domain.Cart, error) {
	cart := domain.NewCart()
	if err := s.cartRepository.Create(ctx, cart); err != nil {
		logger.Error(ctx, "cart: create failed", err, nil)
		return nil, err
	}

	logger.Info(ctx, "Cart created", map[string]any{"cart_id": cart.ID})
	return cart, nil
}

func (s *CartService) GetCart(ctx context.Context, cartID domain.ID) (*domain.Cart, error) {
	cached, err := s.cartCache.Get(ctx, s.getCacheKey(cartID))
	if err != nil {
		logger.Error(ctx, "cache: get cart failed", err, map[string]any{
			"cart_id": cartID,
		})
	}
	if cached != nil {
		return cached, nil
	}

	cart, err := s.cartRepository.GetByID(ctx, cartID)
	if err != nil {
		return nil, err
	}

	if err := s.cartCache.Set(ctx, s.getCacheKey(cartID), cart, cartCacheTTL); err != nil {
		logger.Error(ctx, "cache: set cart failed", err, map[string]any{
			"cart_id": cartID,
		})
	}

	return cart, nil
}

func (s *CartService) save(ctx context.Context, cart *domain.Cart) error {
	cart.UpdatedAt = time.Now()
	if err := s.cartRepository.Save(ctx, cart); err != nil {
		return err
	}
	if err := s.cartCache.Set(ctx, s.getCacheKey(cart.ID), cart, cartCacheTTL); err != nil {
		logger.Error(ctx, "cache: update cart failed", err, map[string]any{
			"cart_id": cart.ID,
		})
	}
	return nil
}

func (s *CartService) AddItem(ctx context.Context, cartID domain.ID, request *dto.AddCartItemRequest) (*domain.Cart, error) {
	cart, err := s.GetCart(ctx, cartID)
	if err != nil {
		return nil, err
	}

	product, err := s.productService.GetByID(ctx, request.ProductID)
	if err != nil {
		return nil, err
	}

	requested := request.Quantity
	for _, line := range cart.Lines {
		if line.Product.ID == product.ID {
			requested += line.Quantity
			break
		}
	}
	if requested > product.Stock {
		return nil, serviceerrors.NewUnprocessableEntityError(fmt.Sprintf("insufficient stock for product %s", product.ID))
	}

	cart.AddItem(*product, request.Quantity)
	if err := s.save(ctx, cart); err != nil {
		logger.Error(ctx, "cart: add item failed", err, map[string]any{
			"cart_id":    cartID,
			"product_id": request.ProductID,
		})
		return nil, err
	}

	return cart, nil
}

func (s *CartService) UpdateItem(ctx context.Context, cartID domain.ID, productID domain.ID, quantity int) (*domain.Cart, error) {
	cart, err := s.GetCart(ctx, cartID)
	if err != nil {
		return nil, err
	}

	// the ledger treats unknown product IDs as no-ops; only lines actually
	// present get a stock check
	for _, line := range cart.Lines {
		if line.Product.ID != productID {
			continue
		}
		product, err := s.productService.GetByID(ctx, productID)
		if err != nil {
			return nil, err
		}
		if quantity > product.Stock {
			return nil, serviceerrors.NewUnprocessableEntityError(fmt.Sprintf("insufficient stock for product %s", productID))
		}
		break
	}

	cart.UpdateQuantity(productID, quantity)
	if err := s.save(ctx, cart); err != nil {
		logger.Error(ctx, "cart: update item failed", err, map[string]any{
			"cart_id":    cartID,
			"product_id": productID,
		})
		return nil, err
	}

	return cart, nil
}

func (s *CartService) RemoveItem(ctx context.Context, cartID domain.ID, productID domain.ID) (*domain.Cart, error) {
	cart, err := s.GetCart(ctx, cartID)
	if err != nil {
		return nil, err
	}

	cart.RemoveItem(productID)
	if err := s.save(ctx, cart); err != nil {
		logger.Error(ctx, "cart: remove item failed", err, map[string]any{
			"cart_id":    cartID,
			"product_id": productID,
		})
		return nil, err
	}

	return cart, nil
}

func (s *CartService) ClearCart(ctx context.Context, cartID domain.ID) (*domain.Cart, error) {
	cart, err := s.GetCart(ctx, cartID)
	if err != nil {
		return nil, err
	}

	cart.Clear()
	if err := s.save(ctx, cart); err != nil {
		logger.Error(ctx, "cart: clear failed", err, map[string]any{
			"cart_id": cartID,
		})
		return nil, err
	}

	return cart, nil
}

func (s *CartService) SetShippingMethod(ctx context.Context, cartID domain.ID, methodID string) (*domain.Cart, error) {
	var method *domain.ShippingMethod
	for i := range s.shippingMethods {
		if s.shippingMethods[i].ID == methodID {
			method = &s.shippingMethods[i]
			break
		}
	}
	if method == nil {
		return nil, serviceerrors.NewNotFoundError("shipping method not found")
	}

	cart, err := s.GetCart(ctx, cartID)
	if err != nil {
		return nil, err
	}

	cart.SetShippingMethod(*method)
	if err := s.save(ctx, cart); err != nil {
		logger.Error(ctx, "cart: set shipping method failed", err, map[string]any{
			"cart_id":   cartID,
			"method_id": methodID,
		})
		return nil, err
	}

	return cart, nil
}
