package core

import "fmt"

// ErrInvalidPrice signals that a price was zero or negative.
type ErrInvalidPrice struct {
	Price float64
}

func (e ErrInvalidPrice) Error() string {
	return fmt.Sprintf("Invalid price: %v", e.Price)
}

// ErrInvalidDiscountCode signals that no discount code was provided.
type ErrInvalidDiscountCode struct{}

func (e ErrInvalidDiscountCode) Error() string {
	return "Invalid discount code"
}

// ErrInvalidCountryCode signals that no legal driving age is known for a country.
type ErrInvalidCountryCode struct {
	CountryCode string
}

func (e ErrInvalidCountryCode) Error() string {
	return fmt.Sprintf("Invalid country code: %q", e.CountryCode)
}

// FetchError is returned by FetchData when the data could not be produced.
type FetchError struct {
	Reason string
	Cause  error
}

func (e FetchError) Error() string {
	return fmt.Sprintf("%s (%v)", e.Reason, e.Cause)
}

func (e FetchError) Unwrap() error {
	return e.Cause
}
