package repository

import (
	"context"

	"campuskart/internal/domain/entity"
	"campuskart/internal/errors"

	"github.com/google/uuid"
)

// ErrAdminNotFound is returned when an admin does not exist.
var ErrAdminNotFound = errors.New("admin not found")

// AdminRepository handles persistence for the admin identity store.
type AdminRepository interface {
	// Create persists a new admin.
	Create(ctx context.Context, admin *entity.Admin) error

	// FindByID retrieves an admin by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Admin, error)

	// FindByEmail retrieves an admin by their login email.
	FindByEmail(ctx context.Context, email string) (*entity.Admin, error)
}
