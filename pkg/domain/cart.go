package domain

import (
	"candystore/pkg/serrors"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ShoppingCart is the contract a User relies on to accumulate items and turn
// them into an Order. Users never inspect cart contents themselves.
//
//go:generate mockgen -package mockdomain -source=cart.go -destination=mock/mockdomain.go
type ShoppingCart interface {
	// AddItem adds quantity units of item. Aggregation and validation of the
	// quantity are the cart's responsibility.
	AddItem(item *Candy, quantity int) error
	// CreateOrder materializes the current contents into an Order paid with
	// payment. It must not empty the cart; the caller clears it afterwards.
	CreateOrder(payment PaymentMethod) (*Order, error)
	// Clear empties the cart. The cart stays usable.
	Clear()
}

// CartFactory creates the cart owned by a user. It is called at most once per
// user, on the first AddToCart.
type CartFactory func(owner *User) ShoppingCart

// CartItem is a cart line pointing at the live catalog candy.
type CartItem struct {
	Candy    *Candy
	Quantity int
}

// Cart is the in-memory ShoppingCart used by default.
type Cart struct {
	owner *User
	items []CartItem
	now   func() time.Time
}

// CartOption customizes a Cart created with NewCart.
type CartOption func(*Cart)

// WithClock sets the clock used to stamp orders.
func WithClock(now func() time.Time) CartOption {
	return func(c *Cart) { c.now = now }
}

// NewCart creates an empty cart owned by owner.
func NewCart(owner *User, opts ...CartOption) *Cart {
	c := &Cart{owner: owner, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// AddItem adds quantity units of item. Adding a candy that is already in the
// cart increases that line instead of creating a new one.
func (c *Cart) AddItem(item *Candy, quantity int) error {
	if item == nil {
		return serrors.With(serrors.ErrValidation, "candy must not be nil")
	}
	if quantity <= 0 {
		return serrors.With(serrors.ErrValidation, "quantity must be positive, got %d", quantity)
	}

	for i := range c.items {
		if c.items[i].Candy.ID == item.ID {
			c.items[i].Quantity += quantity

			return nil
		}
	}
	c.items = append(c.items, CartItem{Candy: item, Quantity: quantity})

	return nil
}

// CreateOrder turns the cart contents into a placed Order and takes the
// ordered units out of stock. Nothing is taken out of stock unless every line
// can be fulfilled.
func (c *Cart) CreateOrder(payment PaymentMethod) (*Order, error) {
	if len(c.items) == 0 {
		return nil, serrors.With(serrors.ErrEmptyCart, "cart is empty")
	}
	if err := payment.Validate(); err != nil {
		return nil, err
	}

	for _, it := range c.items {
		if it.Quantity > it.Candy.Quantity {
			return nil, serrors.With(serrors.ErrConflict,
				"insufficient stock for %q: requested %d, available %d",
				it.Candy.ID, it.Quantity, it.Candy.Quantity)
		}
	}

	order := &Order{
		ID:        OrderID(uuid.New()),
		Items:     make([]OrderItem, 0, len(c.items)),
		Payment:   payment,
		Status:    OrderStatusPlaced,
		CreatedAt: c.now(),
	}
	if c.owner != nil {
		order.CustomerID = c.owner.ID
	}

	total := decimal.Zero
	for _, it := range c.items {
		line := OrderItem{
			CandyID:   it.Candy.ID,
			Name:      it.Candy.Name,
			UnitPrice: it.Candy.Price,
			Quantity:  it.Quantity,
		}
		total = total.Add(line.Subtotal())
		order.Items = append(order.Items, line)
		it.Candy.Quantity -= it.Quantity
	}
	order.TotalAmount = total

	return order, nil
}

// Clear removes every line from the cart.
func (c *Cart) Clear() { c.items = nil }

// Items returns a copy of the cart lines.
func (c *Cart) Items() []CartItem { return slices.Clone(c.items) }

// Len returns the number of distinct lines in the cart.
func (c *Cart) Len() int { return len(c.items) }

// Total returns the current value of the cart at catalog prices.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.items {
		total = total.Add(it.Candy.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}

	return total
}

// Owner returns the user the cart belongs to.
func (c *Cart) Owner() *User { return c.owner }
