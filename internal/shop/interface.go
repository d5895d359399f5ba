package shop

import (
	"candystore/pkg/domain"
	"context"
)

// Shop hosts the store's accounts and catalog and serializes access to them.
type Shop interface {
	AddCandy(ctx context.Context, candy *domain.Candy) error
	Candy(ctx context.Context, candyID string) (*domain.Candy, error)
	Register(ctx context.Context, account domain.Account) error
	Login(ctx context.Context, email, password string) (domain.Account, error)
	ChangePassword(ctx context.Context, email, oldPassword, newPassword string) error
	AddToCart(ctx context.Context, email, candyID string, quantity int) error
	Checkout(ctx context.Context, email string, payment domain.PaymentMethod) (*domain.Order, error)
	Restock(ctx context.Context, staffEmail, candyID string, quantity int) error
	SalesReport(ctx context.Context, staffEmail string) (string, error)
}
