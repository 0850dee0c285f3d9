package repository

import (
	"context"

	"campuskart/internal/domain/entity"
	"campuskart/internal/errors"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order does not exist.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository handles persistence for checkout records.
type OrderRepository interface {
	// Create persists a new order exactly as submitted.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves an order by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByItemIDs retrieves all orders referencing any of the given
	// item id strings, newest first.
	FindByItemIDs(ctx context.Context, itemIDs []string) ([]*entity.Order, error)

	// FindByBuyerAndItemIDs retrieves the buyer's orders for the given
	// item id strings, filtered by the delivered flag.
	FindByBuyerAndItemIDs(ctx context.Context, buyerID string, itemIDs []string, delivered bool) ([]*entity.Order, error)

	// UpdateDelivered flips the delivered flag and returns the updated order.
	UpdateDelivered(ctx context.Context, id uuid.UUID, delivered bool) (*entity.Order, error)
}
