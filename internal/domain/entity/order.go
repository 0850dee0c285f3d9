package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatusSucceeded is the gateway status a confirmed charge reports.
// The orchestrator persists whatever status the client submitted and only
// logs when it differs from this value.
const OrderStatusSucceeded = "succeeded"

// Order records one checkout attempt: the gateway identifiers reported by
// the client plus the shipping contact fields. BuyerID and ItemID are kept
// as the raw strings the client submitted rather than foreign keys; views
// that join through them parse and tolerate garbage.
type Order struct {
	ID        uuid.UUID
	Email     string // Buyer email as submitted with the checkout.
	BuyerID   string
	ItemID    string
	PaymentID string // Gateway payment-intent identifier.
	Amount    decimal.Decimal
	Status    string // Gateway payment status, stored verbatim.
	Phone     string
	Address   string
	Delivered bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
