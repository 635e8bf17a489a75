package service

import "errors"

var (
	ErrCustomerNameRequired  = errors.New("Customer name required.")
	ErrProductFieldsRequired = errors.New("Name, base price, and SKU are required")
	ErrPriceNegative         = errors.New("Base price must be a positive number")
	ErrProductNotFound       = errors.New("Product not found")
	ErrVariantNotFound       = errors.New("Variant not found")
	ErrCustomerRequired      = errors.New("customer_id is required")
	ErrEmptyItems            = errors.New("order must contain at least one item")
	ErrQuantityInvalid       = errors.New("quantity must be > 0")
	ErrDateRequired          = errors.New("Date is required")
)
