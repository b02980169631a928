package domain

import "time"

type Category string

const (
	CategoryProtein     Category = "protein"
	CategoryCreatine    Category = "creatine"
	CategoryVitamins    Category = "vitamins"
	CategoryPreWorkout  Category = "pre-workout"
	CategoryAccessories Category = "accessories"
)

func (c Category) IsValid() bool {
	return c == CategoryProtein || c == CategoryCreatine || c == CategoryVitamins || c == CategoryPreWorkout || c == CategoryAccessories
}

// LowStockThreshold is the largest stock figure still flagged as low.
const LowStockThreshold = 5

type Product struct {
	ID            ID
	Name          string
	Description   string
	Price         Amount
	DiscountPrice *Amount
	Stock         int
	Category      Category
	Featured      bool
	Benefits      []string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewProduct(name string, description string, price Amount, discountPrice *Amount, stock int, category Category, featured bool, benefits []string) *Product {
	return &Product{
		Name:          name,
		Description:   description,
		Price:         price,
		DiscountPrice: discountPrice,
		Stock:         stock,
		Category:      category,
		Featured:      featured,
		Benefits:      benefits,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
}

// EffectivePrice is the price a cart line pays: the discount price when one
// is set, the list price otherwise.
func (p *Product) EffectivePrice() Amount {
	if p.DiscountPrice != nil {
		return *p.DiscountPrice
	}
	return p.Price
}

// IsLowStock and IsOutOfStock classify by real stock. Product tables filter
// on these; dashboard metrics classify by period-simulated stock instead and
// the two must not be conflated.
func (p *Product) IsLowStock() bool {
	return p.Stock > 0 && p.Stock <= LowStockThreshold
}

func (p *Product) IsOutOfStock() bool {
	return p.Stock == 0
}

type ProductStockUpdatedEvent struct {
	ProductID ID        `json:"product_id"`
	OldStock  int       `json:"old_stock"`
	NewStock  int       `json:"new_stock"`
	LowStock  bool      `json:"low_stock"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (e *ProductStockUpdatedEvent) GetName() string {
	return "product.stock_updated"
}

func (e *ProductStockUpdatedEvent) GetEntityName() string {
	return "product"
}

func NewProductStockUpdatedEvent(productID ID, oldStock, newStock int, updatedAt time.Time) *ProductStockUpdatedEvent {
	return &ProductStockUpdatedEvent{
		ProductID: productID,
		OldStock:  oldStock,
		NewStock:  newStock,
		LowStock:  newStock > 0 && newStock <= LowStockThreshold,
		UpdatedAt: updatedAt,
	}
}
