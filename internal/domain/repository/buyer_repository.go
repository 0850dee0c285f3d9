// Package repository defines the persistence interfaces the use cases
// depend on, keeping the domain free of any database driver.
package repository

import (
	"context"

	"campuskart/internal/domain/entity"
	"campuskart/internal/errors"

	"github.com/google/uuid"
)

// ErrBuyerNotFound is returned when a buyer does not exist.
var ErrBuyerNotFound = errors.New("buyer not found")

// BuyerRepository handles persistence for the buyer identity store.
type BuyerRepository interface {
	// Create persists a new buyer.
	Create(ctx context.Context, buyer *entity.Buyer) error

	// FindByID retrieves a buyer by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Buyer, error)

	// FindByEmail retrieves a buyer by their login email.
	FindByEmail(ctx context.Context, email string) (*entity.Buyer, error)
}
