package domain

import "github.com/shopspring/decimal"

// Candy is a catalog item together with its current stock level.
type Candy struct {
	// ID is the catalog key (SKU) of the candy.
	ID string
	// Name is the display name shown on orders.
	Name string
	// Flavor is free-form descriptive text.
	Flavor string
	// Price is the unit price.
	Price decimal.Decimal
	// Quantity is the number of units in stock. Staff may set it to any value,
	// including zero or negative numbers.
	Quantity int
}
