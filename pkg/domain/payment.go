package domain

import "candystore/pkg/serrors"

// PaymentKind names how an order is paid for.
type PaymentKind string

const (
	PaymentKindCard     PaymentKind = "CARD"
	PaymentKindCash     PaymentKind = "CASH"
	PaymentKindGiftCard PaymentKind = "GIFT_CARD"
)

// PaymentMethod is an opaque payment token. Users pass it through to the cart
// untouched; only order creation looks inside.
type PaymentMethod struct {
	Kind PaymentKind
	// Reference identifies the instrument for the external gateway, e.g. a
	// card token or a gift card number.
	Reference string
}

// Validate rejects unknown payment kinds.
func (p PaymentMethod) Validate() error {
	switch p.Kind {
	case PaymentKindCard, PaymentKindCash, PaymentKindGiftCard:
		return nil
	default:
		return serrors.With(serrors.ErrValidation, "unsupported payment kind %q", p.Kind)
	}
}
