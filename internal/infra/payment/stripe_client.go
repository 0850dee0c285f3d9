// Package payment implements the card payment gateway against the Stripe REST API.
package payment

import (
	"context"
	"net/http"

	"campuskart/config"
	"campuskart/internal/domain/service"
	"campuskart/internal/errors"

	"github.com/guonaihong/gout"
	"github.com/shopspring/decimal"
)

const defaultBaseURL = "https://api.stripe.com"

// stripeClient implements service.PaymentGateway over Stripe's
// form-encoded HTTP API. Only PaymentIntents are needed here, so the
// official SDK would be a heavy dependency for a single endpoint.
type stripeClient struct {
	secretKey string
	baseURL   string
}

// intentResponse mirrors the fields of Stripe's PaymentIntent object we consume.
type intentResponse struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Status       string `json:"status"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
	Error        *struct {
		Type    string `json:"type"`
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// NewStripeClient is the constructor for stripeClient.
func NewStripeClient(cfg *config.Config) (service.PaymentGateway, error) {
	if cfg.Stripe == nil || cfg.Stripe.SecretKey == "" {
		return nil, errors.New("stripe secret key must be provided")
	}

	baseURL := cfg.Stripe.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &stripeClient{
		secretKey: cfg.Stripe.SecretKey,
		baseURL:   baseURL,
	}, nil
}

// CreateIntent registers a card payment with Stripe and returns the intent.
func (c *stripeClient) CreateIntent(ctx context.Context, amount decimal.Decimal, currency string) (*service.PaymentIntent, error) {
	var (
		resp intentResponse
		code int
	)

	err := gout.POST(c.baseURL + "/v1/payment_intents").
		WithContext(ctx).
		SetHeader(gout.H{"Authorization": "Bearer " + c.secretKey}).
		SetWWWForm(gout.H{
			"amount":                 minorUnits(amount),
			"currency":               currency,
			"payment_method_types[]": "card",
		}).
		BindJSON(&resp).
		Code(&code).
		Do()
	if err != nil {
		return nil, errors.Wrap(err, "stripe payment_intents request failed")
	}

	if code != http.StatusOK {
		if resp.Error != nil {
			return nil, errors.Errorf("stripe payment_intents returned %d: %s (%s)", code, resp.Error.Message, resp.Error.Code)
		}

		return nil, errors.Errorf("stripe payment_intents returned %d", code)
	}

	return &service.PaymentIntent{
		ID:           resp.ID,
		ClientSecret: resp.ClientSecret,
		Status:       resp.Status,
		Amount:       resp.Amount,
		Currency:     resp.Currency,
	}, nil
}

// minorUnits converts a major-unit amount to the integer minor units
// (cents) Stripe expects. Fractions beyond two decimal places are
// rounded half up.
func minorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}
