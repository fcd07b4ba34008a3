package payment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripeProvider_NotConfigured(t *testing.T) {
	p := NewStripeProvider("", "")

	_, err := p.CreatePaymentIntent(context.Background(), 100)

	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestStripeProvider_CurrencyDefaults(t *testing.T) {
	assert.Equal(t, "usd", NewStripeProvider("", "").currency)
	assert.Equal(t, "eur", NewStripeProvider("", " EUR ").currency)
}

func TestStripeProvider_RejectsNonPositiveAmount(t *testing.T) {
	p := NewStripeProvider("sk_test_dummy", "usd")
	require.NotNil(t, p.api)

	_, err := p.CreatePaymentIntent(context.Background(), 0)

	assert.Error(t, err)
}
