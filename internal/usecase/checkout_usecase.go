package usecase

import (
	"context"

	"campuskart/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- Input DTOs ---

// PlaceOrderInput carries the checkout submission. BuyerID and ItemID
// arrive as raw strings and are recorded on the order verbatim.
type PlaceOrderInput struct {
	Email     string
	BuyerID   string
	ItemID    string
	PaymentID string
	Amount    decimal.Decimal
	Status    string
	Phone     string
	Address   string
}

// --- Output DTOs ---

// BuyItemOutput returns the item and the client secret the frontend
// needs to confirm the card payment.
type BuyItemOutput struct {
	Item         *entity.Item
	ClientSecret string
}

// CheckoutUsecase defines the interface for the two-step purchase flow:
// BuyItem reserves nothing but vets availability and opens a payment
// intent; PlaceOrder records the completed checkout.
type CheckoutUsecase interface {
	// BuyItem verifies the item is still available to this buyer and
	// creates a payment intent with the gateway.
	BuyItem(ctx context.Context, buyerID, itemID uuid.UUID) (*BuyItemOutput, error)

	// PlaceOrder records the order as submitted, claims the purchase if
	// it is not already claimed, and sends the notification emails.
	PlaceOrder(ctx context.Context, input *PlaceOrderInput) (*entity.Order, error)
}
