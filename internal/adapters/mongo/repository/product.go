package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nutricr/storefront/internal/adapters/mongo/document"
	"github.com/nutricr/storefront/internal/adapters/outbox"
	"github.com/nutricr/storefront/internal/core/domain"
	"github.com/nutricr/storefront/internal/core/logger"
	"github.com/nutricr/storefront/internal/core/port"
	"github.com/nutricr/storefront/internal/core/serviceerrors"
)

type ProductRepository struct {
	*BaseRepository[document.ProductDocument]
	db         *mongo.Database
	collection *mongo.Collection
	outbox     outbox.Repository
}

func NewProductRepository(db *mongo.Database, outbox outbox.Repository) port.ProductPort {
	baseRepo := NewBaseRepository[document.ProductDocument](db, "products")

	repo := &ProductRepository{
		BaseRepository: baseRepo,
		db:             db,
		collection:     db.Collection("products"),
		outbox:         outbox,
	}

	if err := repo.createIndexes(context.Background()); err != nil {
		logger.Error(context.Background(), "failed to create indexes", err, map[string]any{
			"collection": "products",
		})
	}

	return repo
}

func (r *ProductRepository) createIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "category", Value: 1}},
			Options: options.Index().SetUnique(false),
		},
		{
			Keys:    bson.D{{Key: "featured", Value: 1}},
			Options: options.Index().SetUnique(false),
		},
		{
			Keys:    bson.D{{Key: "stock", Value: 1}},
			Options: options.Index().SetUnique(false),
		},
	}

	_, err := r.collection.Indexes().CreateMany(ctx, indexes)
	return err
}

func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) error {
	if product.ID != "" {
		return errors.New("cannot create product with existing ID")
	}

	doc := document.ToProductDocument(product)
	doc.CreatedAt = time.Now()
	doc.UpdatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return parseError(err)
	}

	product.ID = domain.ID(result.InsertedID.(primitive.ObjectID).Hex())
	product.CreatedAt = doc.CreatedAt
	product.UpdatedAt = doc.UpdatedAt

	return nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id domain.ID) (*domain.Product, error) {
	doc, err := r.FindByID(ctx, string(id))
	if err != nil {
		return nil, err
	}

	return doc.ToDomain(), nil
}

func (r *ProductRepository) GetAll(ctx context.Context, filter port.ProductFilter) ([]*domain.Product, error) {
	query := bson.M{}

	if filter.Category != "" {
		query["category"] = string(filter.Category)
	}
	if filter.Featured != nil {
		query["featured"] = *filter.Featured
	}
	switch filter.StockStatus {
	case "low":
		query["stock"] = bson.M{"$gt": 0, "$lte": domain.LowStockThreshold}
	case "out":
		query["stock"] = 0
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	docs, err := r.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}

	products := make([]*domain.Product, len(docs))
	for i, doc := range docs {
		products[i] = doc.ToDomain()
	}

	return products, nil
}

func (r *ProductRepository) Update(ctx context.Context, product *domain.Product) error {
	update := bson.M{
		"name":        product.Name,
		"description": product.Description,
		"price":       int64(product.Price),
		"category":    string(product.Category),
		"featured":    product.Featured,
		"benefits":    product.Benefits,
		"updated_at":  time.Now(),
	}

	if product.DiscountPrice != nil {
		update["discount_price"] = int64(*product.DiscountPrice)
	} else {
		update["discount_price"] = nil
	}

	return r.BaseRepository.Update(ctx, string(product.ID), update)
}

// UpdateStockWithOutbox persists the new stock level and the stock event in
// a single transaction, so the poller never publishes an event whose write
// was rolled back.
func (r *ProductRepository) UpdateStockWithOutbox(ctx context.Context, id domain.ID, stock int, event domain.Event) error {
	objectID, err := primitive.ObjectIDFromHex(string(id))
	if err != nil {
		return parseError(err)
	}

	eventData, err := json.Marshal(event)
	if err != nil {
		return err
	}

	session, err := r.db.Client().StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		result, err := r.collection.UpdateOne(sessCtx, bson.M{"_id": objectID}, bson.M{
			"$set": bson.M{
				"stock":      stock,
				"updated_at": time.Now(),
			},
		})
		if err != nil {
			return nil, parseError(err)
		}
		if result.MatchedCount == 0 {
			return nil, serviceerrors.NewNotFoundError("entity not found")
		}

		entry := outbox.Entry{
			EventName:  event.GetName(),
			EntityName: event.GetEntityName(),
			EventData:  eventData,
		}
		if err := r.outbox.Insert(sessCtx, entry); err != nil {
			return nil, err
		}

		return nil, nil
	})

	return err
}

func (r *ProductRepository) Delete(ctx context.Context, id domain.ID) error {
	return r.DeleteByID(ctx, string(id))
}
