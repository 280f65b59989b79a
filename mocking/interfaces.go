package mocking

import (
	"context"
	"time"

	"github.com/samber/mo"
)

// ExchangeRates looks up currency conversion rates.
type ExchangeRates interface {
	// Rate returns how many units of the to currency one unit of the from currency buys.
	Rate(ctx context.Context, from string, to string) (float64, error)
}

// Quote is the price and delivery time of a shipment.
type Quote struct {
	Cost          float64
	EstimatedDays int
}

// ShippingQuoter provides shipping quotes. An empty option means no shipping to the destination
// is available.
type ShippingQuoter interface {
	Quote(ctx context.Context, destination string) mo.Option[Quote]
}

// Analytics records page views.
type Analytics interface {
	TrackPageView(ctx context.Context, path string)
}

// CreditCard identifies the card an order is charged to.
type CreditCard struct {
	CreditCardNumber string
}

// PaymentStatus is the outcome of a charge.
type PaymentStatus string

const (
	// PaymentStatusSuccess indicates the charge went through.
	PaymentStatusSuccess PaymentStatus = "success"
	// PaymentStatusFailed indicates the charge was declined.
	PaymentStatusFailed PaymentStatus = "failed"
)

// PaymentResult is returned by Payments.Charge.
type PaymentResult struct {
	Status PaymentStatus
}

// Payments charges credit cards.
type Payments interface {
	Charge(ctx context.Context, card CreditCard, amount float64) (PaymentResult, error)
}

// Mailer dispatches emails.
type Mailer interface {
	Send(ctx context.Context, to string, message string) error
}

// CodeGenerator produces one-time security codes.
type CodeGenerator interface {
	Generate() int
}

// Dependencies bundles the collaborators of a Service. Clock may be nil, in which case
// time.Now is used.
type Dependencies struct {
	ExchangeRates ExchangeRates
	Shipping      ShippingQuoter
	Analytics     Analytics
	Payments      Payments
	Mailer        Mailer
	Codes         CodeGenerator
	Clock         func() time.Time
}
