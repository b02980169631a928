package domain

// Canonical shipping method IDs. The method records themselves (names,
// prices, delivery estimates) are configuration data the core does not own.
const (
	ShippingStandard = "standard"
	ShippingExpress  = "express"
	ShippingPickup   = "pickup"
)

type ShippingMethod struct {
	ID           string
	Name         string
	Description  string
	Price        Amount
	DeliveryTime string
}
