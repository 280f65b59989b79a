package config

import (
	"go.arcalot.io/log/v2"
	"go.flow.arcalot.io/drills/core"
)

// Config is the main configuration structure for the drills tooling. It holds the data tables the
// exercise functions consult and the logging setup.
type Config struct {
	// Log configures logging.
	Log log.Config `json:"log" yaml:"log"`
	// Coupons is the list of advertised coupons.
	Coupons []core.Coupon `json:"coupons" yaml:"coupons"`
	// DiscountCodes maps codes accepted at checkout to the fraction of the price they remove.
	DiscountCodes map[string]float64 `json:"discount_codes" yaml:"discount_codes"`
	// DrivingAges maps two-letter country codes to the legal driving age.
	DrivingAges map[string]int64 `json:"driving_ages" yaml:"driving_ages"`
	// BusinessHours is the daily window in which the shop is online.
	BusinessHours BusinessHours `json:"business_hours" yaml:"business_hours"`
	// SeasonalDiscount is the discount rate applied on Christmas day.
	SeasonalDiscount float64 `json:"seasonal_discount" yaml:"seasonal_discount"`
}

// BusinessHours is an opening window in whole hours. Open is inclusive, Close is exclusive.
type BusinessHours struct {
	Open  int64 `json:"open" yaml:"open"`
	Close int64 `json:"close" yaml:"close"`
}

// DefaultBusinessHours is the opening window used when none is configured.
var DefaultBusinessHours = BusinessHours{Open: 8, Close: 20}

// DefaultSeasonalDiscount is the Christmas day discount rate used when none is configured.
const DefaultSeasonalDiscount = 0.2

// Catalog builds a core.Catalog from the configured tables.
func (c *Config) Catalog() *core.Catalog {
	return core.NewCatalog(c.Coupons, c.DiscountCodes, c.DrivingAges)
}
