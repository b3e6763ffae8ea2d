package domain

import "errors"

// Lookup misses surfaced by use cases. The store itself signals absence with
// a boolean and never returns these.
var (
	ErrDesignNotFound   = errors.New("design not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrEmptyCart        = errors.New("cart is empty")
)
