package service

import (
	"github.com/google/uuid"
)

// PickupCodeService defines the interface for order pickup QR codes.
// The buyer receives the code with their confirmation email and presents
// it at handover; the seller scans it to mark the order delivered.
type PickupCodeService interface {
	// GenerateOrderPickupCode generates a QR code PNG for an order.
	GenerateOrderPickupCode(orderID uuid.UUID) ([]byte, error)

	// ParseOrderPickupCode parses scanned QR data and returns the order ID.
	ParseOrderPickupCode(qrData string) (uuid.UUID, error)
}
