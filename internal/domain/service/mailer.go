package service

import (
	"context"

	"campuskart/internal/domain/entity"
)

// OrderEmailData bundles everything the order email templates need.
type OrderEmailData struct {
	Order *entity.Order
	Buyer *entity.Buyer
	Item  *entity.Item
	Admin *entity.Admin

	// PickupCode is an optional PNG-encoded QR code attached to the
	// buyer's confirmation so the seller can verify handover.
	PickupCode []byte
}

// Mailer defines the interface for sending transactional order emails.
// Delivery failures must never fail the order; callers log and move on.
type Mailer interface {
	// SendPurchaseConfirmation emails the buyer that their order was placed.
	SendPurchaseConfirmation(ctx context.Context, data *OrderEmailData) error

	// SendOrderNotification emails the item's seller that a new order came in.
	SendOrderNotification(ctx context.Context, data *OrderEmailData) error
}
