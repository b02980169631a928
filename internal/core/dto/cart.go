package dto

import "github.com/nutricr/storefront/internal/core/domain"

type AddCartItemRequest struct {
	ProductID domain.ID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,gte=1"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,gte=1"`
}

type SelectShippingRequest struct {
	MethodID string `json:"method_id" binding:"required"`
}
