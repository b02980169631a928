package document

import (
	"time"

	"github.com/nutricr/storefront/internal/core/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Cart lines embed a snapshot of the product so a stored cart keeps
// pricing even when the catalog record changes afterwards.
type CartLineDocument struct {
	Product  ProductDocument `bson:"product"`
	Quantity int             `bson:"quantity"`
}

type ShippingMethodDocument struct {
	MethodID     string `bson:"method_id"`
	Name         string `bson:"name"`
	Description  string `bson:"description"`
	Price        int64  `bson:"price"`
	DeliveryTime string `bson:"delivery_time"`
}

type CartDocument struct {
	ID             primitive.ObjectID      `bson:"_id,omitempty"`
	Lines          []CartLineDocument      `bson:"lines"`
	ShippingMethod *ShippingMethodDocument `bson:"shipping_method,omitempty"`
	CreatedAt      time.Time               `bson:"created_at"`
	UpdatedAt      time.Time               `bson:"updated_at"`
}

func (doc CartDocument) GetID() primitive.ObjectID {
	return doc.ID
}

func (doc *CartDocument) ToDomain() *domain.Cart {
	lines := make([]domain.CartLine, len(doc.Lines))
	for i, lineDoc := range doc.Lines {
		lines[i] = domain.CartLine{
			Product:  *lineDoc.Product.ToDomain(),
			Quantity: lineDoc.Quantity,
		}
	}

	var shipping *domain.ShippingMethod
	if doc.ShippingMethod != nil {
		shipping = &domain.ShippingMethod{
			ID:           doc.ShippingMethod.MethodID,
			Name:         doc.ShippingMethod.Name,
			Description:  doc.ShippingMethod.Description,
			Price:        domain.Amount(doc.ShippingMethod.Price),
			DeliveryTime: doc.ShippingMethod.DeliveryTime,
		}
	}

	return &domain.Cart{
		ID:             domain.ID(doc.ID.Hex()),
		Lines:          lines,
		ShippingMethod: shipping,
		CreatedAt:      doc.CreatedAt,
		UpdatedAt:      doc.UpdatedAt,
	}
}

func ToCartDocument(cart *domain.Cart) *CartDocument {
	lines := make([]CartLineDocument, len(cart.Lines))
	for i, line := range cart.Lines {
		lines[i] = CartLineDocument{
			Product:  *ToProductDocument(&line.Product),
			Quantity: line.Quantity,
		}
	}

	var shipping *ShippingMethodDocument
	if cart.ShippingMethod != nil {
		shipping = &ShippingMethodDocument{
			MethodID:     cart.ShippingMethod.ID,
			Name:         cart.ShippingMethod.Name,
			Description:  cart.ShippingMethod.Description,
			Price:        int64(cart.ShippingMethod.Price),
			DeliveryTime: cart.ShippingMethod.DeliveryTime,
		}
	}

	doc := &CartDocument{
		Lines:          lines,
		ShippingMethod: shipping,
		CreatedAt:      cart.CreatedAt,
		UpdatedAt:      cart.UpdatedAt,
	}

	if cart.ID != "" {
		objectID, _ := primitive.ObjectIDFromHex(string(cart.ID))
		doc.ID = objectID
	}

	return doc
}
