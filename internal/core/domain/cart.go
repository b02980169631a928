package domain

import "time"

// TaxRate is the Costa Rican IVA applied to every cart subtotal.
const TaxRate = 0.13

// CartLine pairs a product snapshot with a quantity. A cart holds at most
// one line per product ID.
type CartLine struct {
	Product  Product
	Quantity int
}

func (l *CartLine) Total() Amount {
	return l.Product.EffectivePrice().Multiply(l.Quantity)
}

// Cart is the ledger behind a shopping session: an ordered line list plus an
// optional shipping selection, with every money figure derived on read.
//
// The ledger is deliberately permissive: it accepts any positive quantity and
// treats unknown product IDs as no-ops. Limiting a line's quantity to the
// product's available stock is a caller obligation.
type Cart struct {
	ID             ID
	Lines          []CartLine
	ShippingMethod *ShippingMethod
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func NewCart() *Cart {
	return &Cart{
		Lines:     []CartLine{},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

// AddItem appends a line for the product, or merges the quantity into the
// existing line when the product is already in the cart.
func (c *Cart) AddItem(product Product, quantity int) {
	for i := range c.Lines {
		if c.Lines[i].Product.ID == product.ID {
			c.Lines[i].Quantity += quantity
			return
		}
	}
	c.Lines = append(c.Lines, CartLine{Product: product, Quantity: quantity})
}

// RemoveItem drops the line for the product. Unknown IDs are a no-op.
func (c *Cart) RemoveItem(productID ID) {
	for i := range c.Lines {
		if c.Lines[i].Product.ID == productID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
	}
}

// UpdateQuantity replaces the line's quantity. Quantities below one and
// unknown product IDs leave the cart unchanged.
func (c *Cart) UpdateQuantity(productID ID, quantity int) {
	if quantity < 1 {
		return
	}
	for i := range c.Lines {
		if c.Lines[i].Product.ID == productID {
			c.Lines[i].Quantity = quantity
			return
		}
	}
}

// Clear empties the cart and drops the shipping selection.
func (c *Cart) Clear() {
	c.Lines = []CartLine{}
	c.ShippingMethod = nil
}

// SetShippingMethod replaces the current selection. Membership in the
// canonical method set is validated by the caller, not here.
func (c *Cart) SetShippingMethod(method ShippingMethod) {
	c.ShippingMethod = &method
}

func (c *Cart) ItemCount() int {
	count := 0
	for _, line := range c.Lines {
		count += line.Quantity
	}
	return count
}

func (c *Cart) Subtotal() Amount {
	subtotal := Amount(0)
	for _, line := range c.Lines {
		subtotal = subtotal.Add(line.Total())
	}
	return subtotal
}

func (c *Cart) Tax() Amount {
	return Round(float64(c.Subtotal()) * TaxRate)
}

// Shipping is the selected method's price, or zero while nothing is selected.
func (c *Cart) Shipping() Amount {
	if c.ShippingMethod == nil {
		return 0
	}
	return c.ShippingMethod.Price
}

func (c *Cart) Total() Amount {
	return c.Subtotal().Add(c.Tax()).Add(c.Shipping())
}
