package domain_test

import (
	"candystore/pkg/domain"
	"candystore/pkg/serrors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 10, 31, 18, 0, 0, 0, time.UTC)

func catalog() (*domain.Candy, *domain.Candy) {
	gummy := &domain.Candy{ID: "gummy", Name: "Gummy Bears", Flavor: "fruit",
		Price: decimal.RequireFromString("2.50"), Quantity: 10}
	toffee := &domain.Candy{ID: "toffee", Name: "Butter Toffee", Flavor: "caramel",
		Price: decimal.RequireFromString("1.20"), Quantity: 3}

	return gummy, toffee
}

func TestCart_AddItemValidation(t *testing.T) {
	c := domain.NewCart(newAnn())
	gummy, _ := catalog()

	require.ErrorIs(t, c.AddItem(nil, 1), serrors.ErrValidation)
	require.ErrorIs(t, c.AddItem(gummy, 0), serrors.ErrValidation)
	require.ErrorIs(t, c.AddItem(gummy, -2), serrors.ErrValidation)
	require.Zero(t, c.Len())
}

func TestCart_AddItemAggregates(t *testing.T) {
	c := domain.NewCart(newAnn())
	gummy, toffee := catalog()

	require.NoError(t, c.AddItem(gummy, 2))
	require.NoError(t, c.AddItem(toffee, 1))
	require.NoError(t, c.AddItem(gummy, 3))

	items := c.Items()
	require.Len(t, items, 2)
	require.Equal(t, "gummy", items[0].Candy.ID)
	require.Equal(t, 5, items[0].Quantity)
	require.Equal(t, "toffee", items[1].Candy.ID)
	require.True(t, c.Total().Equal(decimal.RequireFromString("13.70")), "total %s", c.Total())

	items[0].Quantity = 100
	require.Equal(t, 5, c.Items()[0].Quantity, "Items returns a copy")
}

func TestCart_CreateOrder(t *testing.T) {
	owner := newAnn()
	c := domain.NewCart(owner, domain.WithClock(func() time.Time { return fixedNow }))
	gummy, toffee := catalog()
	payment := domain.PaymentMethod{Kind: domain.PaymentKindCard, Reference: "tok_visa"}

	require.NoError(t, c.AddItem(gummy, 4))
	require.NoError(t, c.AddItem(toffee, 3))

	order, err := c.CreateOrder(payment)
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, uuid.UUID(order.ID))
	require.Equal(t, owner.ID, order.CustomerID)
	require.Equal(t, domain.OrderStatusPlaced, order.Status)
	require.Equal(t, payment, order.Payment)
	require.Equal(t, fixedNow, order.CreatedAt)
	require.Len(t, order.Items, 2)
	require.Equal(t, "Gummy Bears", order.Items[0].Name)
	require.True(t, order.Items[0].Subtotal().Equal(decimal.NewFromInt(10)))
	require.True(t, order.TotalAmount.Equal(decimal.RequireFromString("13.60")), "total %s", order.TotalAmount)

	require.Equal(t, 6, gummy.Quantity)
	require.Zero(t, toffee.Quantity)
	require.Equal(t, 2, c.Len(), "CreateOrder leaves clearing to the caller")

	gummy.Price = decimal.NewFromInt(99)
	require.True(t, order.Items[0].UnitPrice.Equal(decimal.RequireFromString("2.50")), "prices are snapshotted")
}

func TestCart_CreateOrderFailures(t *testing.T) {
	t.Run("empty cart", func(t *testing.T) {
		c := domain.NewCart(newAnn())
		_, err := c.CreateOrder(domain.PaymentMethod{Kind: domain.PaymentKindCash})
		require.ErrorIs(t, err, serrors.ErrEmptyCart)
	})

	t.Run("unknown payment kind", func(t *testing.T) {
		c := domain.NewCart(newAnn())
		gummy, _ := catalog()
		require.NoError(t, c.AddItem(gummy, 1))
		_, err := c.CreateOrder(domain.PaymentMethod{Kind: "BARTER"})
		require.ErrorIs(t, err, serrors.ErrValidation)
		require.Equal(t, 10, gummy.Quantity)
	})

	t.Run("insufficient stock leaves every candy untouched", func(t *testing.T) {
		c := domain.NewCart(newAnn())
		gummy, toffee := catalog()
		require.NoError(t, c.AddItem(gummy, 2))
		require.NoError(t, c.AddItem(toffee, 4))

		_, err := c.CreateOrder(domain.PaymentMethod{Kind: domain.PaymentKindCash})
		require.ErrorIs(t, err, serrors.ErrConflict)
		require.Equal(t, 10, gummy.Quantity)
		require.Equal(t, 3, toffee.Quantity)
	})
}

func TestCart_ClearKeepsCartUsable(t *testing.T) {
	owner := newAnn()
	c := domain.NewCart(owner)
	gummy, _ := catalog()

	require.NoError(t, c.AddItem(gummy, 1))
	c.Clear()
	require.Zero(t, c.Len())
	require.True(t, c.Total().IsZero())

	require.NoError(t, c.AddItem(gummy, 2))
	require.Equal(t, 1, c.Len())
	require.Same(t, owner, c.Owner())
}

func TestPaymentMethod_Validate(t *testing.T) {
	for _, kind := range []domain.PaymentKind{domain.PaymentKindCard, domain.PaymentKindCash, domain.PaymentKindGiftCard} {
		require.NoError(t, domain.PaymentMethod{Kind: kind}.Validate(), kind)
	}
	require.ErrorIs(t, domain.PaymentMethod{}.Validate(), serrors.ErrValidation)
}
