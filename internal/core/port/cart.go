package port

import (
	"context"

	"github.com/nutricr/storefront/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

type CartPort interface {
	Create(ctx context.Context, cart *domain.Cart) error
	GetByID(ctx context.Context, id domain.ID) (*domain.Cart, error)
	Save(ctx context.Context, cart *domain.Cart) error
	Delete(ctx context.Context, id domain.ID) error
}
