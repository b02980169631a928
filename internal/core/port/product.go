package port

import (
	"context"

	"github.com/nutricr/storefront/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

// ProductFilter narrows catalog listings. Zero value means no filtering.
// StockStatus filters on real stock ("low" or "out"), never on the
// period-simulated dashboard figures.
type ProductFilter struct {
	Category    domain.Category
	Featured    *bool
	StockStatus string
}

type ProductPort interface {
	Create(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id domain.ID) (*domain.Product, error)
	GetAll(ctx context.Context, filter ProductFilter) ([]*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id domain.ID) error
	UpdateStockWithOutbox(ctx context.Context, id domain.ID, stock int, event domain.Event) error
}
