package entity

import (
	"time"

	"github.com/google/uuid"
)

// Purchase marks an item as claimed by a buyer. It is the sold/available
// gate read by the catalog listing and the payment-intent issuer, not a
// financial record. Items are single-unit: at most one purchase may exist
// per item, first payer wins.
type Purchase struct {
	ID        uuid.UUID
	BuyerID   uuid.UUID
	ItemID    uuid.UUID
	CreatedAt time.Time
}
