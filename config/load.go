package config

import "fmt"

// Load loads a configuration data set into the config struct.
func Load(configData any) (*Config, error) {
	cfg, err := getConfigSchema().UnserializeType(configData)
	if err != nil {
		return nil, err
	}
	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the default configuration.
func Default() *Config {
	cfg, err := Load(map[string]any{})
	if err != nil {
		panic(fmt.Errorf("failed to obtain default configuration (%w)", err))
	}
	return cfg
}

// validate checks the constraints the schema cannot express.
func validate(cfg *Config) error {
	for _, coupon := range cfg.Coupons {
		if coupon.Discount >= 1 {
			return ErrInvalidConfig{
				Field:  "coupons",
				Reason: fmt.Sprintf("discount of coupon %s must be less than 1", coupon.Code),
			}
		}
	}
	for code, rate := range cfg.DiscountCodes {
		if rate >= 1 {
			return ErrInvalidConfig{
				Field:  "discount_codes",
				Reason: fmt.Sprintf("rate of discount code %s must be less than 1", code),
			}
		}
	}
	if cfg.BusinessHours.Open >= cfg.BusinessHours.Close {
		return ErrInvalidConfig{
			Field: "business_hours",
			Reason: fmt.Sprintf(
				"opening hour %d must be before closing hour %d",
				cfg.BusinessHours.Open,
				cfg.BusinessHours.Close,
			),
		}
	}
	return nil
}
