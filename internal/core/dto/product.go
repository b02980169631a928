package dto

type CreateProductRequest struct {
	Name          string   `json:"name" binding:"required"`
	Description   string   `json:"description"`
	Price         int      `json:"price" binding:"required,gt=0"`
	DiscountPrice *int     `json:"discount_price" binding:"omitempty,gte=0,ltefield=Price"`
	Stock         int      `json:"stock" binding:"gte=0"`
	Category      string   `json:"category" binding:"required"`
	Featured      bool     `json:"featured"`
	Benefits      []string `json:"benefits"`
}

type UpdateProductRequest struct {
	Name          string   `json:"name" binding:"required"`
	Description   string   `json:"description"`
	Price         int      `json:"price" binding:"required,gt=0"`
	DiscountPrice *int     `json:"discount_price" binding:"omitempty,gte=0,ltefield=Price"`
	Category      string   `json:"category" binding:"required"`
	Featured      bool     `json:"featured"`
	Benefits      []string `json:"benefits"`
}

// UpdateStockRequest is the stock-mutation boundary: it replaces a product's
// stock with an absolute figure. Negative stock never reaches the core.
type UpdateStockRequest struct {
	Stock *int `json:"stock" binding:"required,gte=0"`
}
