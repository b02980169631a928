package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nutricr/storefront/internal/adapters/http/handlers"
	"github.com/nutricr/storefront/internal/core/domain"
	"github.com/nutricr/storefront/internal/core/dto"
	"github.com/nutricr/storefront/internal/core/port"
	"github.com/nutricr/storefront/internal/core/service"
	"github.com/nutricr/storefront/internal/core/serviceerrors"
)

type ProductController struct {
	productService   *service.ProductService
	inventoryService *service.InventoryService
}

type ProductResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Price         int       `json:"price"`
	DiscountPrice *int      `json:"discount_price,omitempty"`
	Stock         int       `json:"stock"`
	Category      string    `json:"category"`
	Featured      bool      `json:"featured"`
	Benefits      []string  `json:"benefits,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func NewProductResponse(product *domain.Product) ProductResponse {
	var discount *int
	if product.DiscountPrice != nil {
		d := int(*product.DiscountPrice)
		discount = &d
	}

	return ProductResponse{
		ID:            string(product.ID),
		Name:          product.Name,
		Description:   product.Description,
		Price:         int(product.Price),
		DiscountPrice: discount,
		Stock:         product.Stock,
		Category:      string(product.Category),
		Featured:      product.Featured,
		Benefits:      product.Benefits,
		CreatedAt:     product.CreatedAt,
		UpdatedAt:     product.UpdatedAt,
	}
}

func NewProductController(productService *service.ProductService, inventoryService *service.InventoryService) *ProductController {
	return &ProductController{
		productService:   productService,
		inventoryService: inventoryService,
	}
}

// CreateProduct godoc
// @Summary     Create a product
// @Description Creates a new catalog product
// @Tags        products
// @Accept      json
// @Produce     json
// @Param       request body     dto.CreateProductRequest true "Product data"
// @Success     201     {object} ProductResponse
// @Failure     400     {object} handlers.ErrorResponse
// @Failure     500     {object} handlers.ErrorResponse
// @Router      /api/v1/products [post]
func (pc *ProductController) CreateProduct(c *gin.Context) {
	var request dto.CreateProductRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}
	product, err := pc.productService.CreateProduct(c.Request.Context(), &request)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	pc.inventoryService.InvalidateMetrics(c.Request.Context())
	c.JSON(http.StatusCreated, NewProductResponse(product))
}

// GetAll godoc
// @Summary     List products
// @Description Returns catalog products, optionally filtered by category, featured flag or stock status
// @Tags        products
// @Produce     json
// @Param       category     query    string true  "Category" Enums(protein, creatine, vitamins, pre-workout, accessories)
// @Param       featured     query    bool   false "Featured only"
// @Param       stock_status query    string false "Stock status" Enums(low, out)
// @Success     200          {array}  ProductResponse
// @Failure     400          {object} handlers.ErrorResponse
// @Failure     500          {object} handlers.ErrorResponse
// @Router      /api/v1/products [get]
func (pc *ProductController) GetAll(c *gin.Context) {
	filter := port.ProductFilter{
		Category:    domain.Category(c.Query("category")),
		StockStatus: c.Query("stock_status"),
	}
	if raw, ok := c.GetQuery("featured"); ok {
		featured := raw == "true"
		filter.Featured = &featured
	}

	products, err := pc.productService.GetAll(c.Request.Context(), filter)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	response := make([]ProductResponse, len(products))
	for i, product := range products {
		response[i] = NewProductResponse(product)
	}

	c.JSON(http.StatusOK, response)
}

// GetByID godoc
// @Summary     Get product by ID
// @Description Returns a single product
// @Tags        products
// @Produce     json
// @Param       id  path     string true "Product ID"
// @Success     200 {object} ProductResponse
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/products/{id} [get]
func (pc *ProductController) GetByID(c *gin.Context) {
	productID := c.Param("id")
	if !domain.ValidateID(productID) {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("Invalid product ID"))
		return
	}
	product, err := pc.productService.GetByID(c.Request.Context(), domain.ID(productID))
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewProductResponse(product))
}

// UpdateProduct godoc
// @Summary     Update a product
// @Description Updates catalog fields of a product. Stock is managed through the stock endpoint.
// @Tags        products
// @Accept      json
// @Produce     json
// @Param       id      path     string                   true "Product ID"
// @Param       request body     dto.UpdateProductRequest true "Product data"
// @Success     200     {object} ProductResponse
// @Failure     400     {object} handlers.ErrorResponse
// @Failure     404     {object} handlers.ErrorResponse
// @Failure     500     {object} handlers.ErrorResponse
// @Router      /api/v1/products/{id} [put]
func (pc *ProductController) UpdateProduct(c *gin.Context) {
	productID := c.Param("id")
	if !domain.ValidateID(productID) {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("Invalid product ID"))
		return
	}
	var request dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}
	product, err := pc.productService.UpdateProduct(c.Request.Context(), domain.ID(productID), &request)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	pc.inventoryService.InvalidateMetrics(c.Request.Context())
	c.JSON(http.StatusOK, NewProductResponse(product))
}

// UpdateStock godoc
// @Summary     Update product stock
// @Description Replaces the stock level of a product with idempotency support
// @Tags        products
// @Accept      json
// @Produce     json
// @Param       Idempotency-Key header   string                 false "Idempotency key"
// @Param       id              path     string                 true  "Product ID"
// @Param       request         body     dto.UpdateStockRequest true  "New stock level"
// @Success     200             {object} ProductResponse
// @Failure     400             {object} handlers.ErrorResponse
// @Failure     404             {object} handlers.ErrorResponse
// @Failure     409             {object} handlers.ErrorResponse
// @Failure     429             {object} handlers.ErrorResponse
// @Failure     500             {object} handlers.ErrorResponse
// @Router      /api/v1/products/{id}/stock [patch]
func (pc *ProductController) UpdateStock(c *gin.Context) {
	productID := c.Param("id")
	if !domain.ValidateID(productID) {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("Invalid product ID"))
		return
	}
	var request dto.UpdateStockRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}
	idempotencyKey := c.GetHeader("Idempotency-Key")
	product, err := pc.productService.UpdateStock(c.Request.Context(), idempotencyKey, domain.ID(productID), *request.Stock)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	pc.inventoryService.InvalidateMetrics(c.Request.Context())
	c.JSON(http.StatusOK, NewProductResponse(product))
}

// DeleteProduct godoc
// @Summary     Delete a product
// @Description Removes a product from the catalog
// @Tags        products
// @Produce     json
// @Param       id  path     string true "Product ID"
// @Success     200 {object} MessageResponse
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/products/{id} [delete]
func (pc *ProductController) DeleteProduct(c *gin.Context) {
	productID := c.Param("id")
	if !domain.ValidateID(productID) {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("Invalid product ID"))
		return
	}
	if err := pc.productService.DeleteProduct(c.Request.Context(), domain.ID(productID)); err != nil {
		handlers.HandleError(c, err)
		return
	}
	pc.inventoryService.InvalidateMetrics(c.Request.Context())
	c.JSON(http.StatusOK, MessageResponse{Message: "Product deleted successfully"})
}
