package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nutricr/storefront/internal/adapters/mongo/document"
	"github.com/nutricr/storefront/internal/core/domain"
	"github.com/nutricr/storefront/internal/core/port"
	"github.com/nutricr/storefront/internal/core/serviceerrors"
)

type CartRepository struct {
	*BaseRepository[document.CartDocument]
	collection *mongo.Collection
}

func NewCartRepository(db *mongo.Database) port.CartPort {
	return &CartRepository{
		BaseRepository: NewBaseRepository[document.CartDocument](db, "carts"),
		collection:     db.Collection("carts"),
	}
}

func (r *CartRepository) Create(ctx context.Context, cart *domain.Cart) error {
	if cart.ID != "" {
		return errors.New("cannot create cart with existing ID")
	}

	doc := document.ToCartDocument(cart)
	doc.CreatedAt = time.Now()
	doc.UpdatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return parseError(err)
	}

	cart.ID = domain.ID(result.InsertedID.(primitive.ObjectID).Hex())
	cart.CreatedAt = doc.CreatedAt
	cart.UpdatedAt = doc.UpdatedAt

	return nil
}

func (r *CartRepository) GetByID(ctx context.Context, id domain.ID) (*domain.Cart, error) {
	doc, err := r.FindByID(ctx, string(id))
	if err != nil {
		return nil, err
	}

	return doc.ToDomain(), nil
}

// Save replaces the whole cart document. Line merging happens in the domain,
// so the stored cart is always a full snapshot.
func (r *CartRepository) Save(ctx context.Context, cart *domain.Cart) error {
	objectID, err := primitive.ObjectIDFromHex(string(cart.ID))
	if err != nil {
		return parseError(err)
	}

	doc := document.ToCartDocument(cart)
	doc.ID = objectID

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": objectID}, doc)
	if err != nil {
		return parseError(err)
	}

	if result.MatchedCount == 0 {
		return serviceerrors.NewNotFoundError("entity not found")
	}

	return nil
}

func (r *CartRepository) Delete(ctx context.Context, id domain.ID) error {
	return r.DeleteByID(ctx, string(id))
}
