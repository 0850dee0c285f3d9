package service

import (
	"context"

	"github.com/shopspring/decimal"
)

// PaymentIntent holds the gateway-side state for a pending card payment.
type PaymentIntent struct {
	ID           string
	ClientSecret string
	Status       string
	Amount       int64 // minor units (cents)
	Currency     string
}

// PaymentGateway defines the interface for creating card payment intents.
// Amounts are passed in major currency units; conversion to the gateway's
// minor-unit representation happens inside the implementation.
type PaymentGateway interface {
	// CreateIntent registers a payment of the given amount with the gateway
	// and returns the intent, including the client secret the frontend needs
	// to confirm the card payment.
	CreateIntent(ctx context.Context, amount decimal.Decimal, currency string) (*PaymentIntent, error)
}
