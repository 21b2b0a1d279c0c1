// Package payment issues Stripe payment intents for card checkout.
package payment

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

const currency = stripe.CurrencyUSD

var (
	ErrInvalidAmount = errors.New("price must be a positive amount")
	// ErrProcessor wraps failures returned by the payment processor.
	ErrProcessor = errors.New("payment processor error")
)

// IntentCreator is the Stripe operation this package depends on.
type IntentCreator interface {
	New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

type PaymentService interface {
	// CreatePaymentIntent returns the client secret for a card payment of price dollars.
	CreatePaymentIntent(ctx context.Context, price float64) (string, error)
}

type StripePaymentService struct {
	Intents IntentCreator
	Logger  *zap.Logger
}

// NewStripePaymentService builds a service bound to the given secret key
// rather than the package-level stripe.Key.
func NewStripePaymentService(secretKey string, logger *zap.Logger) *StripePaymentService {
	return &StripePaymentService{
		Intents: &paymentintent.Client{B: stripe.GetBackend(stripe.APIBackend), Key: secretKey},
		Logger:  logger,
	}
}

// ToMinorUnits converts a dollar amount to cents.
func ToMinorUnits(price float64) (int64, error) {
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, ErrInvalidAmount
	}
	amount := int64(math.Round(price * 100))
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}
	return amount, nil
}

func (s *StripePaymentService) CreatePaymentIntent(ctx context.Context, price float64) (string, error) {
	amount, err := ToMinorUnits(price)
	if err != nil {
		return "", err
	}

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(string(currency)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	pi, err := s.Intents.New(params)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrProcessor, err)
	}
	if s.Logger != nil {
		s.Logger.Info("payment intent created", zap.String("id", pi.ID), zap.Int64("amount", amount))
	}
	return pi.ClientSecret, nil
}
