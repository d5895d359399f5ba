package domain

import (
	"candystore/pkg/serrors"
	"slices"
	"unicode/utf8"
)

// MinPasswordLength is the shortest password, in characters, ChangePassword accepts.
const MinPasswordLength = 8

// Authenticatable is implemented by accounts that hold credentials.
type Authenticatable interface {
	// Login reports whether email and password both match exactly.
	Login(email, password string) bool
	// ChangePassword replaces the password. A wrong old password yields false
	// with a nil error; a too short new password yields an ErrValidation error.
	ChangePassword(oldPassword, newPassword string) (bool, error)
	// Validate checks the identity fields.
	Validate() error
}

// Shopper is implemented by accounts that can buy candy.
type Shopper interface {
	AddToCart(item *Candy, quantity int) error
	Checkout(payment PaymentMethod) (*Order, error)
	Orders() []*Order
	Cart() ShoppingCart
}

// Account is a registered store account. Both *User and *Staff satisfy it.
type Account interface {
	Authenticatable
	Shopper

	// Profile returns the identity of the account.
	Profile() Person
}

// User is a registered customer with credentials, a lazily created cart and
// an order history.
type User struct {
	Person

	// EmailVerified is set once the user confirmed their address.
	EmailVerified bool

	password string
	orders   []*Order
	cart     ShoppingCart
	newCart  CartFactory
}

// UserOption customizes a User created with NewUser or NewStaff.
type UserOption func(*User)

// WithCartFactory overrides how the user's cart is created.
func WithCartFactory(f CartFactory) UserOption {
	return func(u *User) { u.newCart = f }
}

func newDefaultCart(owner *User) ShoppingCart { return NewCart(owner) }

// NewUser creates a user without a cart and with an empty order history.
// The fields are not validated; call Validate when needed.
func NewUser(id int64, name, email, password string, opts ...UserOption) *User {
	u := &User{
		Person:   Person{ID: id, Name: name, Email: email},
		password: password,
		newCart:  newDefaultCart,
	}
	for _, opt := range opts {
		opt(u)
	}

	return u
}

// Profile returns the user's identity.
func (u *User) Profile() Person { return u.Person }

// Login reports whether both email and password match the stored values. The
// comparison is exact and case-sensitive.
func (u *User) Login(email, password string) bool {
	return u.Email == email && u.password == password
}

// Validate checks the identity fields against the Person rules.
func (u *User) Validate() error {
	return u.Person.Validate()
}

// ChangePassword replaces the stored password when oldPassword matches.
// The length of newPassword is only checked after oldPassword was accepted.
func (u *User) ChangePassword(oldPassword, newPassword string) (bool, error) {
	if u.password != oldPassword {
		return false, nil
	}
	if utf8.RuneCountInString(newPassword) < MinPasswordLength {
		return false, serrors.With(serrors.ErrValidation,
			"new password must be at least %d characters", MinPasswordLength)
	}
	u.password = newPassword

	return true, nil
}

// VerifyEmail marks the user's email as verified.
func (u *User) VerifyEmail() { u.EmailVerified = true }

// AddToCart creates the user's cart on first use and hands the item to it.
// Errors from the cart are returned unchanged.
func (u *User) AddToCart(item *Candy, quantity int) error {
	if u.cart == nil {
		u.cart = u.newCart(u)
	}

	return u.cart.AddItem(item, quantity)
}

// Checkout converts the cart into an order, appends it to the history and
// empties the cart. Without a cart it fails with ErrEmptyCart; errors from the
// cart are returned unchanged and leave history and cart untouched.
func (u *User) Checkout(payment PaymentMethod) (*Order, error) {
	if u.cart == nil {
		return nil, serrors.With(serrors.ErrEmptyCart, "cart is empty")
	}

	order, err := u.cart.CreateOrder(payment)
	if err != nil {
		return nil, err
	}
	u.orders = append(u.orders, order)
	u.cart.Clear()

	return order, nil
}

// Orders returns a copy of the order history.
func (u *User) Orders() []*Order { return slices.Clone(u.orders) }

// Cart returns the live cart, or nil if nothing was ever added.
func (u *User) Cart() ShoppingCart { return u.cart }
