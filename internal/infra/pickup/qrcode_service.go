// Package pickup generates and parses the QR codes used to verify order
// handover on campus.
package pickup

import (
	"encoding/json"
	"fmt"

	"campuskart/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	OrderID string `json:"order_id"`
	Type    string `json:"type"`
}

// NewQRCodeService creates a new pickup code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.PickupCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateOrderPickupCode generates a QR code PNG for an order.
func (s *qrcodeService) GenerateOrderPickupCode(orderID uuid.UUID) ([]byte, error) {
	data := QRCodeData{
		OrderID: orderID.String(),
		Type:    "pickup",
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseOrderPickupCode parses scanned QR data and returns the order ID.
func (s *qrcodeService) ParseOrderPickupCode(qrData string) (uuid.UUID, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	// Validate type
	if data.Type != "pickup" {
		return uuid.Nil, fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	orderID, err := uuid.Parse(data.OrderID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse order ID: %w", err)
	}

	return orderID, nil
}
