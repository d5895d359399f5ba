package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// InventoryManager is implemented by accounts allowed to manage stock and
// read sales figures.
type InventoryManager interface {
	UpdateInventory(item *Candy, newQuantity int)
	ViewSalesReport(orders []*Order) string
}

// Staff is a store employee. It embeds User, so a *Staff can shop and log in
// wherever an Account is expected.
type Staff struct {
	User

	// Position is the employee's job title.
	Position string
}

// NewStaff creates a staff member without a cart and with an empty order
// history.
func NewStaff(id int64, name, email, password, position string, opts ...UserOption) *Staff {
	s := &Staff{Position: position}
	s.User = *NewUser(id, name, email, password, opts...)

	return s
}

// UpdateInventory sets the stock level of item to newQuantity. No bounds are
// enforced: zero and negative quantities are stored as given.
func (s *Staff) UpdateInventory(item *Candy, newQuantity int) {
	item.Quantity = newQuantity
}

// ViewSalesReport sums TotalAmount over orders, which need not belong to this
// staff member, and renders it as "Total sales: $<amount>" with two decimals.
// Half cents round away from zero. Nil orders are skipped.
func (s *Staff) ViewSalesReport(orders []*Order) string {
	total := decimal.Zero
	for _, o := range orders {
		if o == nil {
			continue
		}
		total = total.Add(o.TotalAmount)
	}

	return fmt.Sprintf("Total sales: $%s", total.StringFixed(2))
}
