// Package domain contains the candy store's core entities: people, shoppers,
// staff, candies, carts and orders. The types carry the store's behavior
// (authentication, cart-to-order conversion, inventory updates and sales
// reporting) and are free of persistence and transport concerns.
//
// Nothing in this package is safe for concurrent use. A host that shares a
// User between goroutines must serialize AddToCart, Checkout and
// ChangePassword itself.
package domain
