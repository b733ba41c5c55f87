package services

import "errors"

// Error values double as i18n message codes.
var (
	ErrProductUnavailable    = errors.New("product_unavailable")
	ErrInvalidQuantity       = errors.New("invalid_quantity")
	ErrInsufficientStock     = errors.New("insufficient_stock")
	ErrEmptyCart             = errors.New("empty_cart")
	ErrPaymentMethodNotFound = errors.New("payment_method_not_found")
	ErrProductNotFound       = errors.New("product_not_found")
	ErrProductInUse          = errors.New("product_in_use")
	ErrCategoryNotFound      = errors.New("category_not_found")
	ErrTransactionNotFound   = errors.New("transaction_not_found")
	ErrInvalidCredentials    = errors.New("invalid_credentials")
	ErrUserNotFound          = errors.New("user_not_found")
	ErrUserInUse             = errors.New("user_in_use")
	ErrUsernameTaken         = errors.New("username_taken")
	ErrSelfDelete            = errors.New("cannot_delete_self")
	ErrInvalidPeriod         = errors.New("invalid_period")
)
