package repository

import (
	"context"

	"campuskart/internal/domain/entity"
	"campuskart/internal/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrItemNotFound is returned when an item does not exist, or when an
// ownership-filtered lookup matched nothing.
var ErrItemNotFound = errors.New("item not found")

// ItemUpdate carries the mutable listing fields for an ownership-scoped
// update. The image is replaced only when a new one is provided.
type ItemUpdate struct {
	Title       string
	Description string
	Price       decimal.Decimal
	Image       *entity.ItemImage
}

// ItemRepository handles persistence for the catalog.
type ItemRepository interface {
	// Create persists a new item.
	Create(ctx context.Context, item *entity.Item) error

	// FindByID retrieves an item by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Item, error)

	// FindByIDs retrieves all items whose ID is in the given set.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Item, error)

	// FindAll retrieves every listed item, newest first.
	FindAll(ctx context.Context) ([]*entity.Item, error)

	// FindByCreator retrieves all items listed by the given admin.
	FindByCreator(ctx context.Context, adminID uuid.UUID) ([]*entity.Item, error)

	// UpdateOwned updates the item only when it belongs to the given
	// admin; ErrItemNotFound otherwise.
	UpdateOwned(ctx context.Context, itemID, adminID uuid.UUID, update *ItemUpdate) (*entity.Item, error)

	// DeleteOwned removes the item only when it belongs to the given
	// admin, returning the deleted item; ErrItemNotFound otherwise.
	DeleteOwned(ctx context.Context, itemID, adminID uuid.UUID) (*entity.Item, error)
}
