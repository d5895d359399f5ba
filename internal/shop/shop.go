package shop

import (
	"candystore/pkg/domain"
	"candystore/pkg/logger"
	"candystore/pkg/metrics"
	"candystore/pkg/serrors"
	"context"
	"sync"

	"go.uber.org/zap"
)

// shop is the concrete implementation of the Shop interface. A single mutex
// guards every account and candy because the domain types are not safe for
// concurrent use.
type shop struct {
	metrics *metrics.Shop

	mu sync.Mutex
	// accounts are keyed by email; order keeps registration order for reports.
	accounts map[string]domain.Account
	order    []string
	candies  map[string]*domain.Candy
}

// New creates an empty Shop recording into m.
func New(m *metrics.Shop) Shop {
	return &shop{
		metrics:  m,
		accounts: make(map[string]domain.Account),
		candies:  make(map[string]*domain.Candy),
	}
}

// AddCandy puts candy into the catalog. Candy IDs must be unique.
func (s *shop) AddCandy(ctx context.Context, candy *domain.Candy) error {
	if candy == nil || candy.ID == "" {
		return serrors.With(serrors.ErrValidation, "candy must have an ID")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.candies[candy.ID]; ok {
		return serrors.With(serrors.ErrConflict, "candy %q already exists", candy.ID)
	}
	s.candies[candy.ID] = candy
	logger.Debug(ctx, "candy added", zap.String("candyID", candy.ID), zap.Int("quantity", candy.Quantity))

	return nil
}

// Candy returns the catalog entry for candyID.
func (s *shop) Candy(_ context.Context, candyID string) (*domain.Candy, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.candy(candyID)
}

// Register validates account and stores it under its email.
func (s *shop) Register(ctx context.Context, account domain.Account) error {
	if err := account.Validate(); err != nil {
		return err //nolint: wrapcheck
	}
	email := account.Profile().Email

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[email]; ok {
		return serrors.With(serrors.ErrConflict, "account %q already registered", email)
	}
	s.accounts[email] = account
	s.order = append(s.order, email)
	logger.Info(ctx, "account registered", zap.String("email", email))

	return nil
}

// Login returns the account matching email and password. Unknown emails and
// wrong passwords are indistinguishable to the caller.
func (s *shop) Login(ctx context.Context, email, password string) (domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[email]
	if !ok || !account.Login(email, password) {
		s.metrics.LoginAttempts.WithLabelValues(metrics.LoginFailed).Inc()
		logger.Warn(ctx, "login rejected", zap.String("email", email))

		return nil, serrors.With(serrors.ErrUnauthorized, "invalid email or password")
	}
	s.metrics.LoginAttempts.WithLabelValues(metrics.LoginSucceeded).Inc()

	return account, nil
}

// ChangePassword changes the password of the account registered under email.
func (s *shop) ChangePassword(ctx context.Context, email, oldPassword, newPassword string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.account(email)
	if err != nil {
		return err
	}

	changed, err := account.ChangePassword(oldPassword, newPassword)
	if err != nil {
		return err //nolint: wrapcheck
	}
	if !changed {
		return serrors.With(serrors.ErrUnauthorized, "old password does not match")
	}
	logger.Info(ctx, "password changed", zap.String("email", email))

	return nil
}

// AddToCart adds quantity units of the catalog candy to the account's cart.
func (s *shop) AddToCart(ctx context.Context, email, candyID string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.account(email)
	if err != nil {
		return err
	}
	candy, err := s.candy(candyID)
	if err != nil {
		return err
	}

	if err := account.AddToCart(candy, quantity); err != nil {
		return err //nolint: wrapcheck
	}
	logger.Debug(ctx, "added to cart",
		zap.String("email", email), zap.String("candyID", candyID), zap.Int("quantity", quantity))

	return nil
}

// Checkout converts the account's cart into an order.
func (s *shop) Checkout(ctx context.Context, email string, payment domain.PaymentMethod) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.account(email)
	if err != nil {
		return nil, err
	}

	order, err := account.Checkout(payment)
	if err != nil {
		logger.Warn(ctx, "checkout failed", zap.String("email", email), zap.Error(err))

		return nil, err //nolint: wrapcheck
	}

	amount, _ := order.TotalAmount.Float64()
	s.metrics.Checkouts.Inc()
	s.metrics.OrderAmount.Observe(amount)
	logger.Info(ctx, "order placed",
		zap.String("email", email),
		zap.Stringer("orderID", order.ID),
		zap.String("total", order.TotalAmount.StringFixed(2)))

	return order, nil
}

// Restock sets the stock level of a candy on behalf of a staff account.
func (s *shop) Restock(ctx context.Context, staffEmail, candyID string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	staff, err := s.staff(staffEmail)
	if err != nil {
		return err
	}
	candy, err := s.candy(candyID)
	if err != nil {
		return err
	}

	previous := candy.Quantity
	staff.UpdateInventory(candy, quantity)
	s.metrics.InventoryUpdates.Inc()
	logger.Info(ctx, "inventory updated",
		zap.String("email", staffEmail),
		zap.String("candyID", candyID),
		zap.Int("previous", previous),
		zap.Int("quantity", quantity))

	return nil
}

// SalesReport renders the staff member's report over every registered
// account's orders.
func (s *shop) SalesReport(ctx context.Context, staffEmail string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	staff, err := s.staff(staffEmail)
	if err != nil {
		return "", err
	}

	var orders []*domain.Order
	for _, email := range s.order {
		orders = append(orders, s.accounts[email].Orders()...)
	}
	logger.Debug(ctx, "building sales report", zap.String("email", staffEmail), zap.Int("orders", len(orders)))

	return staff.ViewSalesReport(orders), nil
}

func (s *shop) account(email string) (domain.Account, error) {
	account, ok := s.accounts[email]
	if !ok {
		return nil, serrors.With(serrors.ErrNotFound, "account %q not found", email)
	}

	return account, nil
}

func (s *shop) staff(email string) (domain.InventoryManager, error) {
	account, err := s.account(email)
	if err != nil {
		return nil, err
	}
	staff, ok := account.(domain.InventoryManager)
	if !ok {
		return nil, serrors.With(serrors.ErrForbidden, "account %q is not staff", email)
	}

	return staff, nil
}

func (s *shop) candy(candyID string) (*domain.Candy, error) {
	candy, ok := s.candies[candyID]
	if !ok {
		return nil, serrors.With(serrors.ErrNotFound, "candy %q not found", candyID)
	}

	return candy, nil
}
