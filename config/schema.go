package config

import (
	"regexp"

	log "go.arcalot.io/log/v2"
	"go.flow.arcalot.io/drills/core"
	"go.flow.arcalot.io/drills/internal/util"
	"go.flow.arcalot.io/pluginsdk/schema"
)

func getConfigSchema() *schema.TypedScopeSchema[*Config] {
	return schema.NewTypedScopeSchema[*Config](
		schema.NewStructMappedObjectSchema[*Config](
			"Config",
			map[string]*schema.PropertySchema{
				"log": schema.NewPropertySchema(
					schema.NewRefSchema("LogConfig", nil),
					schema.NewDisplayValue(
						schema.PointerTo("Logging"),
						schema.PointerTo("Logging configuration"),
						nil,
					),
					false,
					nil,
					nil,
					nil,
					schema.PointerTo("{}"),
					nil,
				),
				"coupons": schema.NewPropertySchema(
					schema.NewListSchema(
						schema.NewRefSchema("Coupon", nil),
						schema.IntPointer(1),
						nil,
					),
					schema.NewDisplayValue(
						schema.PointerTo("Coupons"),
						schema.PointerTo("Coupons advertised to customers."),
						nil,
					),
					false,
					nil,
					nil,
					nil,
					schema.PointerTo(util.JSONEncode(core.DefaultCoupons)),
					nil,
				),
				"discount_codes": schema.NewPropertySchema(
					schema.NewMapSchema(
						codeSchema(),
						rateSchema(),
						nil,
						nil,
					),
					schema.NewDisplayValue(
						schema.PointerTo("Discount codes"),
						schema.PointerTo("Codes accepted at checkout and the fraction of the price they remove."),
						nil,
					),
					false,
					nil,
					nil,
					nil,
					schema.PointerTo(util.JSONEncode(core.DefaultDiscountCodes)),
					nil,
				),
				"driving_ages": schema.NewPropertySchema(
					schema.NewMapSchema(
						schema.NewStringSchema(
							schema.IntPointer(2),
							schema.IntPointer(2),
							regexp.MustCompile("^[A-Z]{2}$")),
						schema.NewIntSchema(schema.PointerTo(int64(0)), nil, nil),
						schema.IntPointer(1),
						nil,
					),
					schema.NewDisplayValue(
						schema.PointerTo("Driving ages"),
						schema.PointerTo("Legal driving age per two-letter country code."),
						nil,
					),
					false,
					nil,
					nil,
					nil,
					schema.PointerTo(util.JSONEncode(core.DefaultDrivingAges)),
					nil,
				),
				"business_hours": schema.NewPropertySchema(
					schema.NewRefSchema("BusinessHours", nil),
					schema.NewDisplayValue(
						schema.PointerTo("Business hours"),
						schema.PointerTo("Daily window in which the shop is online."),
						nil,
					),
					false,
					nil,
					nil,
					nil,
					schema.PointerTo(util.JSONEncode(DefaultBusinessHours)),
					nil,
				),
				"seasonal_discount": schema.NewPropertySchema(
					rateSchema(),
					schema.NewDisplayValue(
						schema.PointerTo("Seasonal discount"),
						schema.PointerTo("Discount rate applied on Christmas day."),
						nil,
					),
					false,
					nil,
					nil,
					nil,
					schema.PointerTo(util.JSONEncode(DefaultSeasonalDiscount)),
					nil,
				),
			},
		),
		schema.NewStructMappedObjectSchema[core.Coupon](
			"Coupon",
			map[string]*schema.PropertySchema{
				"code": schema.NewPropertySchema(
					codeSchema(),
					schema.NewDisplayValue(
						schema.PointerTo("Code"),
						schema.PointerTo("Code the customer enters."),
						nil,
					),
					true,
					nil,
					nil,
					nil,
					nil,
					nil,
				),
				"discount": schema.NewPropertySchema(
					rateSchema(),
					schema.NewDisplayValue(
						schema.PointerTo("Discount"),
						schema.PointerTo("Fraction of the price the coupon removes."),
						nil,
					),
					true,
					nil,
					nil,
					nil,
					nil,
					nil,
				),
			},
		),
		schema.NewStructMappedObjectSchema[BusinessHours](
			"BusinessHours",
			map[string]*schema.PropertySchema{
				"open": schema.NewPropertySchema(
					hourSchema(),
					schema.NewDisplayValue(
						schema.PointerTo("Opening hour"),
						schema.PointerTo("First hour of the day in which the shop is online."),
						nil,
					),
					false,
					nil,
					nil,
					nil,
					schema.PointerTo(util.JSONEncode(DefaultBusinessHours.Open)),
					nil,
				),
				"close": schema.NewPropertySchema(
					hourSchema(),
					schema.NewDisplayValue(
						schema.PointerTo("Closing hour"),
						schema.PointerTo("Hour of the day at which the shop goes offline."),
						nil,
					),
					false,
					nil,
					nil,
					nil,
					schema.PointerTo(util.JSONEncode(DefaultBusinessHours.Close)),
					nil,
				),
			},
		),
		schema.NewStructMappedObjectSchema[log.Config](
			"LogConfig",
			map[string]*schema.PropertySchema{
				"level": schema.NewPropertySchema(
					schema.NewStringEnumSchema(map[string]*schema.DisplayValue{
						string(log.LevelDebug):   {NameValue: schema.PointerTo("Debug")},
						string(log.LevelInfo):    {NameValue: schema.PointerTo("Informational")},
						string(log.LevelWarning): {NameValue: schema.PointerTo("Warnings")},
						string(log.LevelError):   {NameValue: schema.PointerTo("Errors")},
					}),
					schema.NewDisplayValue(
						schema.PointerTo("Log level"),
						schema.PointerTo(
							"Minimum level of log messages to write.",
						),
						nil,
					),
					false,
					nil,
					nil,
					nil,
					schema.PointerTo(util.JSONEncode(log.LevelInfo)),
					nil,
				),
				"destination": schema.NewPropertySchema(
					schema.NewStringEnumSchema(map[string]*schema.DisplayValue{
						string(log.DestinationStdout): {NameValue: schema.PointerTo("Standard output")},
					}),
					schema.NewDisplayValue(
						schema.PointerTo("Log destination"),
						schema.PointerTo(
							"Where the logs should be written to.",
						),
						nil,
					),
					false,
					nil,
					nil,
					nil,
					schema.PointerTo(util.JSONEncode(log.DestinationStdout)),
					nil,
				),
			},
		),
	)
}

func codeSchema() *schema.StringSchema {
	return schema.NewStringSchema(
		schema.IntPointer(1),
		schema.IntPointer(255),
		regexp.MustCompile("^[A-Z0-9_-]+$"))
}

// rateSchema accepts [0, 1]; the upper bound is exclusive and checked after loading.
func rateSchema() *schema.FloatSchema {
	return schema.NewFloatSchema(schema.PointerTo(0.0), schema.PointerTo(1.0), nil)
}

func hourSchema() *schema.IntSchema {
	return schema.NewIntSchema(schema.PointerTo(int64(0)), schema.PointerTo(int64(24)), nil)
}
