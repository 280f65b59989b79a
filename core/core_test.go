package core_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.arcalot.io/assert"
	"go.flow.arcalot.io/drills/core"
	localassert "go.flow.arcalot.io/drills/internal/test/assert"
)

func TestCoupons(t *testing.T) {
	coupons := core.Coupons()
	assert.Equals(t, len(coupons) > 0, true)
	for _, coupon := range coupons {
		assert.Equals(t, coupon.Code != "", true)
		assert.Equals(t, coupon.Discount >= 0, true)
		assert.Equals(t, coupon.Discount < 1, true)
	}
}

func TestCatalogFindCoupon(t *testing.T) {
	catalog := core.DefaultCatalog()
	coupon, ok := catalog.FindCoupon("SAVE20NOW").Get()
	assert.Equals(t, ok, true)
	assert.Equals(t, coupon.Discount, 0.2)
	assert.Equals(t, catalog.FindCoupon("NOPE").IsPresent(), false)
}

func TestCatalogCopiesTables(t *testing.T) {
	coupons := []core.Coupon{{Code: "A", Discount: 0.1}}
	catalog := core.NewCatalog(coupons, nil, nil)
	coupons[0].Code = "B"
	assert.Equals(t, catalog.Coupons()[0].Code, "A")
}

func TestCalculateDiscount(t *testing.T) {
	assert.Equals(t, localassert.NoError2[float64](t)(core.CalculateDiscount(10, "SAVE10")), 9.0)
	assert.Equals(t, localassert.NoError2[float64](t)(core.CalculateDiscount(10, "SAVE20")), 8.0)
	assert.Equals(t, localassert.NoError2[float64](t)(core.CalculateDiscount(10, "BLAH20")), 10.0)
}

func TestCalculateDiscountInvalid(t *testing.T) {
	scenarios := map[string]struct {
		price float64
		code  string
	}{
		"negative-price": {price: -10, code: "SAVE10"},
		"zero-price":     {price: 0, code: "SAVE10"},
		"empty-code":     {price: 10, code: ""},
	}
	for name, s := range scenarios {
		s := s
		t.Run(name, func(t *testing.T) {
			_, err := core.CalculateDiscount(s.price, s.code)
			localassert.ErrorMatches(t, err, "invalid")
		})
	}
}

func TestCatalogCustomDiscountCodes(t *testing.T) {
	catalog := core.NewCatalog(nil, map[string]float64{"HALF": 0.5}, nil)
	assert.Equals(t, localassert.NoError2[float64](t)(catalog.CalculateDiscount(10, "HALF")), 5.0)
	assert.Equals(t, localassert.NoError2[float64](t)(catalog.CalculateDiscount(10, "SAVE10")), 10.0)
}

func TestValidateUserInput(t *testing.T) {
	scenarios := map[string]struct {
		username string
		age      int
		expected []string
	}{
		"valid":            {username: "validusername", age: 25, expected: []string{"successful"}},
		"short-username":   {username: "ab", age: 20, expected: []string{"invalid username"}},
		"long-username":    {username: strings.Repeat("a", 256), age: 20, expected: []string{"invalid username"}},
		"young":            {username: "john", age: 17, expected: []string{"invalid age"}},
		"old":              {username: "john", age: 151, expected: []string{"invalid age"}},
		"username-and-age": {username: "x", age: 10, expected: []string{"invalid username", "invalid age"}},
	}
	for name, s := range scenarios {
		s := s
		t.Run(name, func(t *testing.T) {
			result := core.ValidateUserInput(s.username, s.age)
			for _, pattern := range s.expected {
				localassert.Matches(t, result, pattern)
			}
		})
	}
}

func TestValidateUserInputBounds(t *testing.T) {
	assert.Equals(t, core.ValidateUserInput("abc", 18), "Validation successful")
	assert.Equals(t, core.ValidateUserInput(strings.Repeat("a", 255), 150), "Validation successful")
	assert.Equals(t, core.ValidateUserInput("x", 10), "Invalid username, Invalid age")
}

func TestIsPriceInRange(t *testing.T) {
	scenarios := map[string]struct {
		price    float64
		expected bool
	}{
		"price < min":               {price: -10, expected: false},
		"price = min":               {price: 0, expected: true},
		"price between min and max": {price: 50, expected: true},
		"price = max":               {price: 100, expected: true},
		"price > max":               {price: 200, expected: false},
	}
	for name, s := range scenarios {
		s := s
		t.Run(name, func(t *testing.T) {
			assert.Equals(t, core.IsPriceInRange(s.price, 0, 100), s.expected)
		})
	}
}

func TestIsValidUsername(t *testing.T) {
	assert.Equals(t, core.IsValidUsername(strings.Repeat("x", 5)), true)
	assert.Equals(t, core.IsValidUsername(strings.Repeat("x", 15)), true)
	assert.Equals(t, core.IsValidUsername(strings.Repeat("x", 6)), true)
	assert.Equals(t, core.IsValidUsername(strings.Repeat("x", 14)), true)
	assert.Equals(t, core.IsValidUsername(strings.Repeat("x", 4)), false)
	assert.Equals(t, core.IsValidUsername(strings.Repeat("x", 16)), false)
	assert.Equals(t, core.IsValidUsername(""), false)
}

func TestCanDrive(t *testing.T) {
	scenarios := []struct {
		age         int
		countryCode string
		expected    bool
	}{
		{age: 15, countryCode: "US", expected: false},
		{age: 16, countryCode: "US", expected: true},
		{age: 17, countryCode: "US", expected: true},
		{age: 16, countryCode: "UK", expected: false},
		{age: 17, countryCode: "UK", expected: true},
		{age: 18, countryCode: "UK", expected: true},
	}
	for _, s := range scenarios {
		assert.Equals(t, localassert.NoError2[bool](t)(core.CanDrive(s.age, s.countryCode)), s.expected)
	}
}

func TestCanDriveInvalidCountry(t *testing.T) {
	_, err := core.CanDrive(16, "FR")
	localassert.ErrorMatches(t, err, "invalid")
	var invalidCountry core.ErrInvalidCountryCode
	assert.Equals(t, errors.As(err, &invalidCountry), true)
	assert.Equals(t, invalidCountry.CountryCode, "FR")
}

func TestIsStrongPassword(t *testing.T) {
	assert.Equals(t, core.IsStrongPassword("Passw0rdX"), true)
	assert.Equals(t, core.IsStrongPassword("Pas0"), false)
	assert.Equals(t, core.IsStrongPassword("password1"), false)
	assert.Equals(t, core.IsStrongPassword("PASSWORDX"), false)
}

func TestFetchData(t *testing.T) {
	data, err := core.FetchData(context.Background())
	assert.NoError(t, err)
	assert.Equals(t, len(data) > 0, true)
}

func TestFetchDataCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	// The result channel may win the select; only a failure is checked.
	_, err := core.FetchData(ctx)
	if err != nil {
		var fetchErr core.FetchError
		assert.Equals(t, errors.As(err, &fetchErr), true)
		localassert.Matches(t, fetchErr.Reason, "fail")
		assert.Equals(t, errors.Is(err, context.Canceled), true)
	}
}
