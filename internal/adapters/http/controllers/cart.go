package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nutricr/storefront/internal/adapters/http/handlers"
	"github.com/nutricr/storefront/internal/core/domain"
	"github.com/nutricr/storefront/internal/core/dto"
	"github.com/nutricr/storefront/internal/core/service"
	"github.com/nutricr/storefront/internal/core/serviceerrors"
)

type CartController struct {
	cartService *service.CartService
}

type MessageResponse struct {
	Message string `json:"message"`
}

type CartLineResponse struct {
	Product  ProductResponse `json:"product"`
	Quantity int             `json:"quantity"`
	Total    int             `json:"total"`
}

type ShippingMethodResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Price        int    `json:"price"`
	DeliveryTime string `json:"delivery_time"`
}

type CartResponse struct {
	ID             string                  `json:"id"`
	Lines          []CartLineResponse      `json:"lines"`
	ShippingMethod *ShippingMethodResponse `json:"shipping_method,omitempty"`
	ItemCount      int                     `json:"item_count"`
	Subtotal       int                     `json:"subtotal"`
	Tax            int                     `json:"tax"`
	Shipping       int                     `json:"shipping"`
	Total          int                     `json:"total"`
	CreatedAt      time.Time               `json:"created_at"`
	UpdatedAt      time.Time               `json:"updated_at"`
}

func NewShippingMethodResponse(method domain.ShippingMethod) ShippingMethodResponse {
	return ShippingMethodResponse{
		ID:           method.ID,
		Name:         method.Name,
		Description:  method.Description,
		Price:        int(method.Price),
		DeliveryTime: method.DeliveryTime,
	}
}

func NewCartResponse(cart *domain.Cart) CartResponse {
	lines := make([]CartLineResponse, len(cart.Lines))
	for i, line := range cart.Lines {
		lines[i] = CartLineResponse{
			Product:  NewProductResponse(&line.Product),
			Quantity: line.Quantity,
			Total:    int(line.Total()),
		}
	}

	var shipping *ShippingMethodResponse
	if cart.ShippingMethod != nil {
		s := NewShippingMethodResponse(*cart.ShippingMethod)
		shipping = &s
	}

	return CartResponse{
		ID:             string(cart.ID),
		Lines:          lines,
		ShippingMethod: shipping,
		ItemCount:      cart.ItemCount(),
		Subtotal:       int(cart.Subtotal()),
		Tax:            int(cart.Tax()),
		Shipping:       int(cart.Shipping()),
		Total:          int(cart.Total()),
		CreatedAt:      cart.CreatedAt,
		UpdatedAt:      cart.UpdatedAt,
	}
}

func NewCartController(cartService *service.CartService) *CartController {
	return &CartController{cartService: cartService}
}

// CreateCart godoc
// @Summary     Create a cart
// @Description Creates a new empty shopping cart
// @Tags        carts
// @Produce     json
// @Success     201 {object} CartResponse
// @Failure     429 {object} handlers.ErrorResponse
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/carts [post]
func (cc *CartController) CreateCart(c *gin.Context) {
	cart, err := cc.cartService.CreateCart(c.Request.Context())
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewCartResponse(cart))
}

// GetCart godoc
// @Summary     Get cart by ID
// @Description Returns a cart with its computed totals
// @Tags        carts
// @Produce     json
// @Param       id  path     string true "Cart ID"
// @Success     200 {object} CartResponse
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/carts/{id} [get]
func (cc *CartController) GetCart(c *gin.Context) {
	cartID := c.Param("id")
	if !domain.ValidateID(cartID) {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("Invalid cart ID"))
		return
	}
	cart, err := cc.cartService.GetCart(c.Request.Context(), domain.ID(cartID))
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewCartResponse(cart))
}

// AddItem godoc
// @Summary     Add item to cart
// @Description Adds a product to the cart, merging quantities for repeated products
// @Tags        carts
// @Accept      json
// @Produce     json
// @Param       id      path     string                 true "Cart ID"
// @Param       request body     dto.AddCartItemRequest true "Item data"
// @Success     200     {object} CartResponse
// @Failure     400     {object} handlers.ErrorResponse
// @Failure     404     {object} handlers.ErrorResponse
// @Failure     422     {object} handlers.ErrorResponse
// @Failure     429     {object} handlers.ErrorResponse
// @Failure     500     {object} handlers.ErrorResponse
// @Router      /api/v1/carts/{id}/items [post]
func (cc *CartController) AddItem(c *gin.Context) {
	cartID := c.Param("id")
	if !domain.ValidateID(cartID) {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("Invalid cart ID"))
		return
	}
	var request dto.AddCartItemRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}
	cart, err := cc.cartService.AddItem(c.Request.Context(), domain.ID(cartID), &request)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewCartResponse(cart))
}

// UpdateItem godoc
// @Summary     Update cart item quantity
// @Description Replaces the quantity of a cart line
// @Tags        carts
// @Accept      json
// @Produce     json
// @Param       id        path     string                    true "Cart ID"
// @Param       productId path     string                    true "Product ID"
// @Param       request   body     dto.UpdateCartItemRequest true "New quantity"
// @Success     200       {object} CartResponse
// @Failure     400       {object} handlers.ErrorResponse
// @Failure     404       {object} handlers.ErrorResponse
// @Failure     422       {object} handlers.ErrorResponse
// @Failure     500       {object} handlers.ErrorResponse
// @Router      /api/v1/carts/{id}/items/{productId} [patch]
func (cc *CartController) UpdateItem(c *gin.Context) {
	cartID := c.Param("id")
	productID := c.Param("productId")
	if !domain.ValidateID(cartID) || !domain.ValidateID(productID) {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("Invalid ID"))
		return
	}
	var request dto.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}
	cart, err := cc.cartService.UpdateItem(c.Request.Context(), domain.ID(cartID), domain.ID(productID), request.Quantity)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewCartResponse(cart))
}

// RemoveItem godoc
// @Summary     Remove item from cart
// @Description Removes a product from the cart. Unknown products are ignored.
// @Tags        carts
// @Produce     json
// @Param       id        path     string true "Cart ID"
// @Param       productId path     string true "Product ID"
// @Success     200       {object} CartResponse
// @Failure     400       {object} handlers.ErrorResponse
// @Failure     404       {object} handlers.ErrorResponse
// @Failure     500       {object} handlers.ErrorResponse
// @Router      /api/v1/carts/{id}/items/{productId} [delete]
func (cc *CartController) RemoveItem(c *gin.Context) {
	cartID := c.Param("id")
	productID := c.Param("productId")
	if !domain.ValidateID(cartID) || !domain.ValidateID(productID) {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("Invalid ID"))
		return
	}
	cart, err := cc.cartService.RemoveItem(c.Request.Context(), domain.ID(cartID), domain.ID(productID))
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewCartResponse(cart))
}

// ClearCart godoc
// @Summary     Clear cart
// @Description Empties the cart and drops the selected shipping method
// @Tags        carts
// @Produce     json
// @Param       id  path     string true "Cart ID"
// @Success     200 {object} CartResponse
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/carts/{id}/items [delete]
func (cc *CartController) ClearCart(c *gin.Context) {
	cartID := c.Param("id")
	if !domain.ValidateID(cartID) {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("Invalid cart ID"))
		return
	}
	cart, err := cc.cartService.ClearCart(c.Request.Context(), domain.ID(cartID))
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewCartResponse(cart))
}

// SetShippingMethod godoc
// @Summary     Select shipping method
// @Description Sets the cart's shipping method by its configured ID
// @Tags        carts
// @Accept      json
// @Produce     json
// @Param       id      path     string                    true "Cart ID"
// @Param       request body     dto.SelectShippingRequest true "Shipping method"
// @Success     200     {object} CartResponse
// @Failure     400     {object} handlers.ErrorResponse
// @Failure     404     {object} handlers.ErrorResponse
// @Failure     500     {object} handlers.ErrorResponse
// @Router      /api/v1/carts/{id}/shipping [put]
func (cc *CartController) SetShippingMethod(c *gin.Context) {
	cartID := c.Param("id")
	if !domain.ValidateID(cartID) {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("Invalid cart ID"))
		return
	}
	var request dto.SelectShippingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}
	cart, err := cc.cartService.SetShippingMethod(c.Request.Context(), domain.ID(cartID), request.MethodID)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewCartResponse(cart))
}

// GetShippingMethods godoc
// @Summary     List shipping methods
// @Description Returns the configured shipping methods
// @Tags        carts
// @Produce     json
// @Success     200 {array} ShippingMethodResponse
// @Router      /api/v1/shipping-methods [get]
func (cc *CartController) GetShippingMethods(c *gin.Context) {
	methods := cc.cartService.ShippingMethods()
	response := make([]ShippingMethodResponse, len(methods))
	for i, method := range methods {
		response[i] = NewShippingMethodResponse(method)
	}
	c.JSON(http.StatusOK, response)
}
