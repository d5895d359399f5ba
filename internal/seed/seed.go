// Package seed loads a candy store scenario from YAML: the catalog, the
// accounts, and a script of restocks and purchases to run against a shop.
package seed

import (
	"candystore/internal/shop"
	"candystore/pkg/domain"
	"candystore/pkg/logger"
	"candystore/pkg/serrors"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Account roles.
const (
	RoleUser  = "user"
	RoleStaff = "staff"
)

// Candy is a catalog entry. Price is kept as text so amounts are parsed
// exactly.
type Candy struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Flavor   string `yaml:"flavor"`
	Price    string `yaml:"price"`
	Quantity int    `yaml:"quantity"`
}

// Account describes a user or staff member.
type Account struct {
	ID       int64  `yaml:"id"`
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	// Role is "user" (default) or "staff".
	Role     string `yaml:"role"`
	Position string `yaml:"position"`
	Verified bool   `yaml:"verified"`
}

// Restock sets a candy's stock level on behalf of a staff member.
type Restock struct {
	Staff    string `yaml:"staff"`
	Candy    string `yaml:"candy"`
	Quantity int    `yaml:"quantity"`
}

// Payment mirrors domain.PaymentMethod.
type Payment struct {
	Kind      string `yaml:"kind"`
	Reference string `yaml:"reference"`
}

// Purchase adds a candy to an account's cart and optionally checks out.
type Purchase struct {
	Email    string  `yaml:"email"`
	Candy    string  `yaml:"candy"`
	Quantity int     `yaml:"quantity"`
	Checkout bool    `yaml:"checkout"`
	Payment  Payment `yaml:"payment"`
}

// Seed is a complete scenario.
type Seed struct {
	Candies   []Candy    `yaml:"candies"`
	Accounts  []Account  `yaml:"accounts"`
	Restocks  []Restock  `yaml:"restocks"`
	Purchases []Purchase `yaml:"purchases"`
}

// Summary reports how the scripted purchases went.
type Summary struct {
	Orders   []*domain.Order
	Rejected int
}

// Load reads and decodes the seed file at path.
func Load(path string) (*Seed, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open seed file: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse decodes a seed document from r.
func Parse(r io.Reader) (*Seed, error) {
	var s Seed
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("could not decode seed: %w", err)
	}

	return &s, nil
}

// DomainCandies converts the catalog into domain candies.
func (s *Seed) DomainCandies() ([]*domain.Candy, error) {
	out := make([]*domain.Candy, 0, len(s.Candies))
	for _, c := range s.Candies {
		price, err := decimal.NewFromString(c.Price)
		if err != nil {
			return nil, serrors.Wrap(serrors.ErrValidation, err, "invalid price for candy %q", c.ID)
		}
		out = append(out, &domain.Candy{
			ID:       c.ID,
			Name:     c.Name,
			Flavor:   c.Flavor,
			Price:    price,
			Quantity: c.Quantity,
		})
	}

	return out, nil
}

// DomainAccounts builds the accounts without validating or registering them.
func (s *Seed) DomainAccounts() ([]domain.Account, error) {
	out := make([]domain.Account, 0, len(s.Accounts))
	for _, a := range s.Accounts {
		switch a.Role {
		case "", RoleUser:
			u := domain.NewUser(a.ID, a.Name, a.Email, a.Password)
			if a.Verified {
				u.VerifyEmail()
			}
			out = append(out, u)
		case RoleStaff:
			st := domain.NewStaff(a.ID, a.Name, a.Email, a.Password, a.Position)
			if a.Verified {
				st.VerifyEmail()
			}
			out = append(out, st)
		default:
			return nil, serrors.With(serrors.ErrValidation, "unknown role %q for account %q", a.Role, a.Email)
		}
	}

	return out, nil
}

// Apply loads the catalog and accounts into sh, then runs the restocks and
// the purchases in file order. Setup failures abort; rejected purchases are
// logged and counted.
func (s *Seed) Apply(ctx context.Context, sh shop.Shop) (Summary, error) {
	candies, err := s.DomainCandies()
	if err != nil {
		return Summary{}, err
	}
	for _, c := range candies {
		if err := sh.AddCandy(ctx, c); err != nil {
			return Summary{}, fmt.Errorf("could not add candy %q: %w", c.ID, err)
		}
	}

	accounts, err := s.DomainAccounts()
	if err != nil {
		return Summary{}, err
	}
	for _, a := range accounts {
		if err := sh.Register(ctx, a); err != nil {
			return Summary{}, fmt.Errorf("could not register %q: %w", a.Profile().Email, err)
		}
	}

	for _, r := range s.Restocks {
		if err := sh.Restock(ctx, r.Staff, r.Candy, r.Quantity); err != nil {
			return Summary{}, fmt.Errorf("could not restock %q: %w", r.Candy, err)
		}
	}

	var summary Summary
	for i, p := range s.Purchases {
		pctx := logger.WithFields(ctx, zap.Int("purchase", i), zap.String("email", p.Email))

		order, err := purchase(pctx, sh, p)
		if err != nil {
			summary.Rejected++
			logger.Warn(pctx, "purchase rejected", zap.Error(err))

			continue
		}
		if order != nil {
			summary.Orders = append(summary.Orders, order)
		}
	}

	return summary, nil
}

func purchase(ctx context.Context, sh shop.Shop, p Purchase) (*domain.Order, error) {
	if p.Candy != "" {
		if err := sh.AddToCart(ctx, p.Email, p.Candy, p.Quantity); err != nil {
			return nil, fmt.Errorf("could not add to cart: %w", err)
		}
	}
	if !p.Checkout {
		return nil, nil
	}

	order, err := sh.Checkout(ctx, p.Email, domain.PaymentMethod{
		Kind:      domain.PaymentKind(p.Payment.Kind),
		Reference: p.Payment.Reference,
	})
	if err != nil {
		return nil, fmt.Errorf("could not checkout: %w", err)
	}

	return order, nil
}
