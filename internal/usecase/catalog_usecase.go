package usecase

import (
	"context"
	"io"

	"campuskart/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- Input DTOs ---

// CreateItemInput defines the data required to list a new item. The
// image arrives as a multipart upload stream.
type CreateItemInput struct {
	AdminID     uuid.UUID
	Title       string
	Description string
	Price       decimal.Decimal

	ImageFilename    string
	ImageContentType string
	ImageBody        io.Reader
}

// UpdateItemInput defines the mutable listing fields. When a new image
// upload is supplied the previous blob is replaced.
type UpdateItemInput struct {
	AdminID     uuid.UUID
	ItemID      uuid.UUID
	Title       string
	Description string
	Price       decimal.Decimal

	ImageFilename    string
	ImageContentType string
	ImageBody        io.Reader
}

// --- Output DTOs ---

// CatalogItem decorates a listing with its sold state for the storefront.
type CatalogItem struct {
	Item        *entity.Item
	IsPurchased bool
	PurchasedBy *uuid.UUID
}

// CatalogUsecase defines the interface for item listing management and
// the public storefront views.
type CatalogUsecase interface {
	CreateItem(ctx context.Context, input *CreateItemInput) (*entity.Item, error)
	UpdateItem(ctx context.Context, input *UpdateItemInput) (*entity.Item, error)
	DeleteItem(ctx context.Context, itemID, adminID uuid.UUID) error

	// ListItems returns every listing with its sold state.
	ListItems(ctx context.Context) ([]*CatalogItem, error)

	// GetItem returns a single listing.
	GetItem(ctx context.Context, itemID uuid.UUID) (*entity.Item, error)
}
