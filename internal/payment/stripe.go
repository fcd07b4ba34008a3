package payment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

const DefaultCurrency = "usd"

var ErrNotConfigured = errors.New("stripe secret key is not configured")

// StripeProvider opens card payment intents. The client confirms them with
// the returned secret; nothing is captured server-side.
type StripeProvider struct {
	api      *client.API
	currency string
}

func NewStripeProvider(secretKey, currency string) *StripeProvider {
	currency = strings.ToLower(strings.TrimSpace(currency))
	if currency == "" {
		currency = DefaultCurrency
	}

	p := &StripeProvider{currency: currency}
	if secretKey != "" {
		p.api = &client.API{}
		p.api.Init(secretKey, nil)
	}

	return p
}

func (p *StripeProvider) CreatePaymentIntent(ctx context.Context, amount int64) (string, error) {
	if p.api == nil {
		return "", ErrNotConfigured
	}
	if amount <= 0 {
		return "", fmt.Errorf("amount must be positive, got %d", amount)
	}

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(p.currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	pi, err := p.api.PaymentIntents.New(params)
	if err != nil {
		return "", fmt.Errorf("create payment intent: %w", err)
	}

	return pi.ClientSecret, nil
}
