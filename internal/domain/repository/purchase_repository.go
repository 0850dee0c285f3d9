package repository

import (
	"context"

	"campuskart/internal/domain/entity"
	"campuskart/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrPurchaseNotFound is returned when no purchase matches the lookup.
	ErrPurchaseNotFound = errors.New("purchase not found")

	// ErrDuplicatePurchase is returned when the items unique index rejects
	// a second purchase for the same item.
	ErrDuplicatePurchase = errors.New("item already purchased")
)

// PurchaseRepository handles persistence for the purchase ledger.
type PurchaseRepository interface {
	// Create persists a new purchase. Items are single-unit: the storage
	// layer enforces at most one purchase per item and returns
	// ErrDuplicatePurchase for the loser of a race.
	Create(ctx context.Context, purchase *entity.Purchase) error

	// FindByBuyerAndItem retrieves the purchase a specific buyer holds
	// for a specific item.
	FindByBuyerAndItem(ctx context.Context, buyerID, itemID uuid.UUID) (*entity.Purchase, error)

	// FindByItem retrieves the purchase claiming the item, regardless of buyer.
	FindByItem(ctx context.Context, itemID uuid.UUID) (*entity.Purchase, error)

	// FindByBuyer retrieves all purchases held by a buyer.
	FindByBuyer(ctx context.Context, buyerID uuid.UUID) ([]*entity.Purchase, error)
}
