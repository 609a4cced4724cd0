package repo

import "errors"

var (
	// ErrProductNotFound is returned when a product id or name has no match.
	ErrProductNotFound = errors.New("product not found")
	// ErrInventoryItemNotFound is returned when no inventory row exists for a product.
	ErrInventoryItemNotFound = errors.New("inventory item not found")
	// ErrCustomerNotFound is returned when a customer lookup has no match.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrUserNotFound is returned when a username has no match.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicatedValueUnique is returned when an insert violates a unique constraint.
	ErrDuplicatedValueUnique = errors.New("duplicated value in unique column")
)
