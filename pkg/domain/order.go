package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderID uniquely identifies an order.
type OrderID uuid.UUID

// String returns the canonical uuid form of the ID.
func (id OrderID) String() string { return uuid.UUID(id).String() }

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	// OrderStatusPlaced indicates the order was created from a cart at checkout.
	OrderStatusPlaced OrderStatus = "PLACED"
)

// OrderItem is a single line of an order. Prices are copied from the candy at
// order creation so later catalog changes do not alter the order.
type OrderItem struct {
	CandyID   string
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
}

// Subtotal returns UnitPrice multiplied by Quantity.
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Order is a completed purchase.
type Order struct {
	// ID is the unique identifier of the order.
	ID OrderID
	// CustomerID is the Person.ID of the account that checked out.
	CustomerID int64
	// Items are the purchased lines in the order they were added to the cart.
	Items []OrderItem
	// TotalAmount is the sum of every line's subtotal.
	TotalAmount decimal.Decimal
	// Payment is the method supplied at checkout.
	Payment PaymentMethod
	// Status is the current lifecycle state of the order.
	Status OrderStatus
	// CreatedAt is when the order was created.
	CreatedAt time.Time
}
