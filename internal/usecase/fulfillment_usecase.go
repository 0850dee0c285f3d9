package usecase

import (
	"context"

	"campuskart/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- Output DTOs ---

// BuyerIdentity names the buyer behind an order. When the buyer account
// no longer resolves, identity falls back to what the order recorded.
type BuyerIdentity struct {
	ID    string
	Name  string
	Email string
}

// SoldItem summarizes the listing an order refers to.
type SoldItem struct {
	ID    uuid.UUID
	Title string
	Price decimal.Decimal
}

// AdminPurchase joins one order with its item and buyer for the seller dashboard.
type AdminPurchase struct {
	Buyer BuyerIdentity
	Item  SoldItem
	Order *entity.Order
}

// PurchaseReport aggregates every sale of the admin's listings.
type PurchaseReport struct {
	TotalPurchases int
	TotalRevenue   decimal.Decimal
	Purchases      []*AdminPurchase
}

// FulfillmentUsecase defines the interface for the seller's dashboard
// and order handover operations.
type FulfillmentUsecase interface {
	// ListAdminItems returns the admin's own listings.
	ListAdminItems(ctx context.Context, adminID uuid.UUID) ([]*entity.Item, error)

	// GetPurchaseReport returns all orders against the admin's listings
	// with buyer identity and revenue totals.
	GetPurchaseReport(ctx context.Context, adminID uuid.UUID) (*PurchaseReport, error)

	// UpdateDelivered flips an order's delivered flag. The order must
	// belong to one of the admin's own items.
	UpdateDelivered(ctx context.Context, adminID, orderID uuid.UUID, delivered bool) (*entity.Order, error)

	// VerifyPickup resolves a scanned pickup QR code and marks the order
	// delivered, subject to the same ownership check.
	VerifyPickup(ctx context.Context, adminID uuid.UUID, qrData string) (*entity.Order, error)
}
