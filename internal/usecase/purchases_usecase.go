package usecase

import (
	"context"

	"campuskart/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Output DTOs ---

// PurchasesOutput pairs the buyer's purchase records with the matching items.
type PurchasesOutput struct {
	Purchases []*entity.Purchase
	Items     []*entity.Item
}

// OrderedItem pairs an item with the order that bought it, used by the
// awaiting-pickup and received views.
type OrderedItem struct {
	Item  *entity.Item
	Order *entity.Order
}

// PurchasesUsecase defines the interface for the buyer's order history views.
type PurchasesUsecase interface {
	// ListPurchases returns everything the buyer has bought.
	ListPurchases(ctx context.Context, buyerID uuid.UUID) (*PurchasesOutput, error)

	// ListAwaitingPickup returns bought items whose order is not yet delivered.
	ListAwaitingPickup(ctx context.Context, buyerID uuid.UUID) ([]*OrderedItem, error)

	// ListReceivedItems returns bought items whose order has been delivered.
	ListReceivedItems(ctx context.Context, buyerID uuid.UUID) ([]*OrderedItem, error)
}
