package core

import (
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Catalog holds the coupon, discount code and driving age tables the pricing and eligibility
// functions consult.
type Catalog struct {
	coupons       []Coupon
	discountCodes map[string]float64
	drivingAges   map[string]int64
}

// NewCatalog creates a catalog from the given tables. The tables are copied.
func NewCatalog(coupons []Coupon, discountCodes map[string]float64, drivingAges map[string]int64) *Catalog {
	return &Catalog{
		coupons:       append([]Coupon(nil), coupons...),
		discountCodes: lo.Assign(discountCodes),
		drivingAges:   lo.Assign(drivingAges),
	}
}

// DefaultCatalog returns a catalog built from DefaultCoupons, DefaultDiscountCodes and
// DefaultDrivingAges.
func DefaultCatalog() *Catalog {
	return NewCatalog(DefaultCoupons, DefaultDiscountCodes, DefaultDrivingAges)
}

// Coupons returns a copy of the coupons in the catalog.
func (c *Catalog) Coupons() []Coupon {
	return append([]Coupon(nil), c.coupons...)
}

// FindCoupon looks up a coupon by its code.
func (c *Catalog) FindCoupon(code string) mo.Option[Coupon] {
	coupon, ok := lo.Find(c.coupons, func(item Coupon) bool {
		return item.Code == code
	})
	if !ok {
		return mo.None[Coupon]()
	}
	return mo.Some(coupon)
}

// CalculateDiscount returns price reduced by the rate of discountCode. Unknown codes leave the
// price unchanged.
func (c *Catalog) CalculateDiscount(price float64, discountCode string) (float64, error) {
	if price <= 0 {
		return 0, ErrInvalidPrice{Price: price}
	}
	if discountCode == "" {
		return 0, ErrInvalidDiscountCode{}
	}
	discount := c.discountCodes[discountCode]
	return price - price*discount, nil
}

// CanDrive checks if a person of age meets the legal driving age in countryCode.
func (c *Catalog) CanDrive(age int, countryCode string) (bool, error) {
	legalAge, ok := c.drivingAges[countryCode]
	if !ok {
		return false, ErrInvalidCountryCode{CountryCode: countryCode}
	}
	return int64(age) >= legalAge, nil
}
