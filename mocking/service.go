// Package mocking contains business functions whose behavior depends on external collaborators
// (exchange rates, shipping, analytics, payments, email and security codes). The collaborators
// are consumed as interfaces so tests can replace them.
package mocking

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"go.arcalot.io/log/v2"
	"go.flow.arcalot.io/drills/config"
)

// BaseCurrency is the currency prices are stored in.
const BaseCurrency = "USD"

// HomePath is the page path reported by RenderPage.
const HomePath = "/home"

// WelcomeMessage is the body of the email sent on sign-up.
const WelcomeMessage = "Welcome aboard!"

// PaymentErrorCode is the OrderResult error reported when the charge does not go through.
const PaymentErrorCode = "payment_error"

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Order is a purchase awaiting payment.
type Order struct {
	TotalAmount float64
}

// OrderResult is the outcome of SubmitOrder.
type OrderResult struct {
	Success bool   `yaml:"success"`
	Error   string `yaml:"error,omitempty"`
}

// Service implements the collaborator-backed business functions.
type Service struct {
	logger        log.Logger
	businessHours config.BusinessHours
	seasonal      float64
	deps          Dependencies
}

// New creates a Service using the business hours and seasonal discount from cfg.
func New(logger log.Logger, cfg *config.Config, deps Dependencies) *Service {
	if deps.Clock == nil {
		deps.Clock = time.Now
	}
	return &Service{
		logger:        logger,
		businessHours: cfg.BusinessHours,
		seasonal:      cfg.SeasonalDiscount,
		deps:          deps,
	}
}

// PriceInCurrency converts a price from the base currency to currency.
func (s *Service) PriceInCurrency(ctx context.Context, price float64, currency string) (float64, error) {
	rate, err := s.deps.ExchangeRates.Rate(ctx, BaseCurrency, currency)
	if err != nil {
		return 0, fmt.Errorf("failed to obtain %s to %s exchange rate (%w)", BaseCurrency, currency, err)
	}
	return price * rate, nil
}

// ShippingInfo describes the shipping cost and time to destination.
func (s *Service) ShippingInfo(ctx context.Context, destination string) string {
	quote, ok := s.deps.Shipping.Quote(ctx, destination).Get()
	if !ok {
		s.logger.Debugf("No shipping quote available for %s", destination)
		return "Shipping Unavailable"
	}
	return fmt.Sprintf(
		"Shipping Cost: $%s (%d Days)",
		strconv.FormatFloat(quote.Cost, 'f', -1, 64),
		quote.EstimatedDays,
	)
}

// RenderPage records a view of the home page and returns its markup.
func (s *Service) RenderPage(ctx context.Context) (string, error) {
	s.deps.Analytics.TrackPageView(ctx, HomePath)
	return "<div>content</div>", nil
}

// SubmitOrder charges card for the order total.
func (s *Service) SubmitOrder(ctx context.Context, order Order, card CreditCard) OrderResult {
	result, err := s.deps.Payments.Charge(ctx, card, order.TotalAmount)
	if err != nil {
		s.logger.Warningf("Charging %v failed (%v)", order.TotalAmount, err)
		return OrderResult{Success: false, Error: PaymentErrorCode}
	}
	if result.Status == PaymentStatusFailed {
		s.logger.Infof("Payment of %v was declined", order.TotalAmount)
		return OrderResult{Success: false, Error: PaymentErrorCode}
	}
	return OrderResult{Success: true}
}

// SignUp sends a welcome email to a valid address. It returns false without sending anything if
// the address is not valid.
func (s *Service) SignUp(ctx context.Context, email string) (bool, error) {
	if !IsValidEmail(email) {
		return false, nil
	}
	if err := s.deps.Mailer.Send(ctx, email, WelcomeMessage); err != nil {
		return false, fmt.Errorf("failed to send welcome email to %s (%w)", email, err)
	}
	s.logger.Debugf("Signed up %s", email)
	return true, nil
}

// Login emails a freshly generated security code.
func (s *Service) Login(ctx context.Context, email string) error {
	code := s.deps.Codes.Generate()
	if err := s.deps.Mailer.Send(ctx, email, strconv.Itoa(code)); err != nil {
		return fmt.Errorf("failed to send security code to %s (%w)", email, err)
	}
	return nil
}

// IsOnline checks if the current hour falls within the business hours.
func (s *Service) IsOnline() bool {
	hour := int64(s.deps.Clock().Hour())
	return hour >= s.businessHours.Open && hour < s.businessHours.Close
}

// Discount returns the seasonal discount on Christmas day and 0 otherwise.
func (s *Service) Discount() float64 {
	now := s.deps.Clock()
	if now.Month() == time.December && now.Day() == 25 {
		return s.seasonal
	}
	return 0
}

// IsValidEmail performs a basic shape check on an email address.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}
