// Package core contains the pure exercise functions: coupon and discount calculations, user
// input validators and the driving age check.
package core

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/samber/lo"
)

// Coupon is a discount code paired with the fraction of the price it removes.
type Coupon struct {
	Code     string  `json:"code" yaml:"code"`
	Discount float64 `json:"discount" yaml:"discount"`
}

// DefaultCoupons are the coupons returned by Coupons when no other catalog is configured.
var DefaultCoupons = []Coupon{
	{Code: "SAVE20NOW", Discount: 0.2},
	{Code: "DISCOUNT50OFF", Discount: 0.5},
}

// DefaultDiscountCodes maps the codes accepted by CalculateDiscount to their rates.
var DefaultDiscountCodes = map[string]float64{
	"SAVE10": 0.1,
	"SAVE20": 0.2,
}

// DefaultDrivingAges maps country codes to the legal driving age.
var DefaultDrivingAges = map[string]int64{
	"US": 16,
	"UK": 17,
}

// Coupons returns the default coupons.
func Coupons() []Coupon {
	return DefaultCatalog().Coupons()
}

// CalculateDiscount applies a default discount code to price.
func CalculateDiscount(price float64, discountCode string) (float64, error) {
	return DefaultCatalog().CalculateDiscount(price, discountCode)
}

// CanDrive checks age against the default legal driving ages.
func CanDrive(age int, countryCode string) (bool, error) {
	return DefaultCatalog().CanDrive(age, countryCode)
}

// IsPriceInRange checks if price lies within [min, max].
func IsPriceInRange(price, min, max float64) bool {
	return price >= min && price <= max
}

const (
	minUsernameLength = 5
	maxUsernameLength = 15
)

// IsValidUsername checks if the username is between 5 and 15 characters long.
func IsValidUsername(username string) bool {
	if username == "" {
		return false
	}
	length := utf8.RuneCountInString(username)
	return length >= minUsernameLength && length <= maxUsernameLength
}

const (
	minInputUsernameLength = 3
	maxInputUsernameLength = 255
	minInputAge            = 18
	maxInputAge            = 150
)

// ValidateUserInput checks a sign-up form. It returns "Validation successful", or every problem
// found joined by a comma.
func ValidateUserInput(username string, age int) string {
	length := utf8.RuneCountInString(username)
	problems := lo.Compact([]string{
		lo.Ternary(length < minInputUsernameLength || length > maxInputUsernameLength, "Invalid username", ""),
		lo.Ternary(age < minInputAge || age > maxInputAge, "Invalid age", ""),
	})
	if len(problems) == 0 {
		return "Validation successful"
	}
	return strings.Join(problems, ", ")
}

const minPasswordLength = 8

// IsStrongPassword checks if password has at least 8 characters, an upper case letter and a digit.
func IsStrongPassword(password string) bool {
	if utf8.RuneCountInString(password) < minPasswordLength {
		return false
	}
	runes := []rune(password)
	return lo.ContainsBy(runes, unicode.IsUpper) && lo.ContainsBy(runes, unicode.IsDigit)
}
