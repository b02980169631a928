package document

import (
	"time"

	"github.com/nutricr/storefront/internal/core/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductDocument struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Name          string             `bson:"name"`
	Description   string             `bson:"description"`
	Price         int64              `bson:"price"`
	DiscountPrice *int64             `bson:"discount_price,omitempty"`
	Stock         int                `bson:"stock"`
	Category      string             `bson:"category"`
	Featured      bool               `bson:"featured"`
	Benefits      []string           `bson:"benefits,omitempty"`
	CreatedAt     time.Time          `bson:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at"`
}

func (doc ProductDocument) GetID() primitive.ObjectID {
	return doc.ID
}

func (doc *ProductDocument) ToDomain() *domain.Product {
	var discount *domain.Amount
	if doc.DiscountPrice != nil {
		d := domain.Amount(*doc.DiscountPrice)
		discount = &d
	}

	return &domain.Product{
		ID:            domain.ID(doc.ID.Hex()),
		Name:          doc.Name,
		Description:   doc.Description,
		Price:         domain.Amount(doc.Price),
		DiscountPrice: discount,
		Stock:         doc.Stock,
		Category:      domain.Category(doc.Category),
		Featured:      doc.Featured,
		Benefits:      doc.Benefits,
		CreatedAt:     doc.CreatedAt,
		UpdatedAt:     doc.UpdatedAt,
	}
}

func ToProductDocument(p *domain.Product) *ProductDocument {
	var discount *int64
	if p.DiscountPrice != nil {
		d := int64(*p.DiscountPrice)
		discount = &d
	}

	doc := &ProductDocument{
		Name:          p.Name,
		Description:   p.Description,
		Price:         int64(p.Price),
		DiscountPrice: discount,
		Stock:         p.Stock,
		Category:      string(p.Category),
		Featured:      p.Featured,
		Benefits:      p.Benefits,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}

	if p.ID != "" {
		objectID, _ := primitive.ObjectIDFromHex(string(p.ID))
		doc.ID = objectID
	}

	return doc
}
