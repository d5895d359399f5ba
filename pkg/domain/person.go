package domain

import (
	"candystore/pkg/serrors"
	"strings"
)

// Person is the identity shared by every account in the store.
// Uniqueness of ID and Email is left to the caller.
type Person struct {
	// ID must be non-negative.
	ID int64
	// Name must not be blank.
	Name string
	// Email must contain "@" followed somewhere by a ".".
	Email string
}

// DisplayInfo renders the person as "Name (email)".
func (p Person) DisplayInfo() string {
	return p.Name + " (" + p.Email + ")"
}

// Validate checks the identity fields. The email rule is intentionally weak:
// "a@b.com" passes and "a@b" does not.
func (p Person) Validate() error {
	if p.ID < 0 {
		return serrors.With(serrors.ErrValidation, "id must be a non-negative integer")
	}
	if strings.TrimSpace(p.Name) == "" {
		return serrors.With(serrors.ErrValidation, "name must be a non-empty string")
	}

	at := strings.LastIndex(p.Email, "@")
	if at < 0 || !strings.Contains(p.Email[at+1:], ".") {
		return serrors.With(serrors.ErrValidation, "email appears invalid")
	}

	return nil
}
