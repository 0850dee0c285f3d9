package impl

import (
	"context"
	"log/slog"

	deliverycontext "campuskart/internal/delivery/context"
	"campuskart/internal/domain/entity"
	domainerrors "campuskart/internal/domain/errors"
	"campuskart/internal/domain/repository"
	"campuskart/internal/domain/service"
	"campuskart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// allowedImageContentTypes lists the upload types accepted for listing photos.
var allowedImageContentTypes = map[string]struct{}{
	"image/png":  {},
	"image/jpeg": {},
	"image/jpg":  {},
}

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	itemRepo     repository.ItemRepository
	purchaseRepo repository.PurchaseRepository
	imageStore   service.ImageStore
	logger       *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ItemRepo     repository.ItemRepository
	PurchaseRepo repository.PurchaseRepository
	ImageStore   service.ImageStore
	Logger       *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		itemRepo:     params.ItemRepo,
		purchaseRepo: params.PurchaseRepo,
		imageStore:   params.ImageStore,
		logger:       params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func validateImageUpload(contentType string, hasBody bool) error {
	if !hasBody {
		return errors.Wrap(domainerrors.ErrImageRequired, "listing image is required")
	}
	if _, ok := allowedImageContentTypes[contentType]; !ok {
		return errors.Wrapf(domainerrors.ErrImageFormat, "unsupported content type %q", contentType)
	}

	return nil
}

// CreateItem stores the uploaded image and persists a new listing owned
// by the calling admin.
func (srv *catalogService) CreateItem(ctx context.Context, input *usecase.CreateItemInput) (*entity.Item, error) {
	srv.log(ctx).Info("Creating item", slog.Any("adminID", input.AdminID), slog.String("title", input.Title))

	if err := validateImageUpload(input.ImageContentType, input.ImageBody != nil); err != nil {
		srv.log(ctx).Warn("Item image validation failed", slog.Any("adminID", input.AdminID), slog.Any("error", err))

		return nil, err
	}

	stored, err := srv.imageStore.Save(ctx, input.ImageFilename, input.ImageContentType, input.ImageBody)
	if err != nil {
		srv.log(ctx).Error("Failed to store item image", slog.Any("adminID", input.AdminID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrImageUploadFailed, err.Error())
	}

	newItem := &entity.Item{
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		Image: entity.ItemImage{
			Key: stored.Key,
			URL: stored.URL,
		},
		CreatorID: input.AdminID,
	}

	if err := srv.itemRepo.Create(ctx, newItem); err != nil {
		// The listing failed, so the blob is orphaned. Best effort cleanup.
		if delErr := srv.imageStore.Delete(ctx, stored.Key); delErr != nil {
			srv.log(ctx).Warn("Failed to clean up orphaned image", slog.String("key", stored.Key), slog.Any("error", delErr))
		}

		return nil, errors.Wrap(err, "failed to create item")
	}

	srv.log(ctx).Debug("Item created", slog.Any("itemID", newItem.ID))

	return newItem, nil
}

// UpdateItem rewrites the mutable listing fields. When a new image is
// uploaded the old blob is replaced.
func (srv *catalogService) UpdateItem(ctx context.Context, input *usecase.UpdateItemInput) (*entity.Item, error) {
	srv.log(ctx).Info("Updating item", slog.Any("itemID", input.ItemID), slog.Any("adminID", input.AdminID))

	existing, err := srv.itemRepo.FindByID(ctx, input.ItemID)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return nil, errors.Wrap(domainerrors.ErrItemNotFound, "item to update not found")
		}

		return nil, errors.Wrap(err, "failed to load item for update")
	}

	if existing.CreatorID != input.AdminID {
		srv.log(ctx).Warn("Update rejected for foreign item", slog.Any("itemID", input.ItemID), slog.Any("adminID", input.AdminID))

		return nil, errors.Wrap(domainerrors.ErrItemUpdateNotOwned, "item belongs to another admin")
	}

	update := &repository.ItemUpdate{
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
	}

	var replacedKey string
	if input.ImageBody != nil {
		if _, ok := allowedImageContentTypes[input.ImageContentType]; !ok {
			return nil, errors.Wrapf(domainerrors.ErrImageFormat, "unsupported content type %q", input.ImageContentType)
		}

		stored, saveErr := srv.imageStore.Save(ctx, input.ImageFilename, input.ImageContentType, input.ImageBody)
		if saveErr != nil {
			srv.log(ctx).Error("Failed to store replacement image", slog.Any("itemID", input.ItemID), slog.Any("error", saveErr))

			return nil, errors.Wrap(domainerrors.ErrImageUploadFailed, saveErr.Error())
		}

		update.Image = &entity.ItemImage{Key: stored.Key, URL: stored.URL}
		replacedKey = existing.Image.Key
	}

	updated, err := srv.itemRepo.UpdateOwned(ctx, input.ItemID, input.AdminID, update)
	if err != nil {
		if update.Image != nil {
			if delErr := srv.imageStore.Delete(ctx, update.Image.Key); delErr != nil {
				srv.log(ctx).Warn("Failed to clean up orphaned image", slog.String("key", update.Image.Key), slog.Any("error", delErr))
			}
		}
		if errors.Is(err, repository.ErrItemNotFound) {
			return nil, errors.Wrap(domainerrors.ErrItemUpdateNotOwned, "item update matched nothing")
		}

		return nil, errors.Wrap(err, "failed to update item")
	}

	if replacedKey != "" {
		if delErr := srv.imageStore.Delete(ctx, replacedKey); delErr != nil {
			srv.log(ctx).Warn("Failed to delete replaced image", slog.String("key", replacedKey), slog.Any("error", delErr))
		}
	}

	srv.log(ctx).Debug("Item updated", slog.Any("itemID", updated.ID))

	return updated, nil
}

// DeleteItem removes the listing and its stored image.
func (srv *catalogService) DeleteItem(ctx context.Context, itemID, adminID uuid.UUID) error {
	srv.log(ctx).Info("Deleting item", slog.Any("itemID", itemID), slog.Any("adminID", adminID))

	existing, err := srv.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return errors.Wrap(domainerrors.ErrItemNotFound, "item to delete not found")
		}

		return errors.Wrap(err, "failed to load item for delete")
	}

	if existing.CreatorID != adminID {
		srv.log(ctx).Warn("Delete rejected for foreign item", slog.Any("itemID", itemID), slog.Any("adminID", adminID))

		return errors.Wrap(domainerrors.ErrItemDeleteNotOwned, "item belongs to another admin")
	}

	deleted, err := srv.itemRepo.DeleteOwned(ctx, itemID, adminID)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return errors.Wrap(domainerrors.ErrItemDeleteNotOwned, "item delete matched nothing")
		}

		return errors.Wrap(err, "failed to delete item")
	}

	if deleted.Image.Key != "" {
		if delErr := srv.imageStore.Delete(ctx, deleted.Image.Key); delErr != nil {
			srv.log(ctx).Warn("Failed to delete item image", slog.String("key", deleted.Image.Key), slog.Any("error", delErr))
		}
	}

	srv.log(ctx).Debug("Item deleted", slog.Any("itemID", itemID))

	return nil
}

// ListItems returns every listing decorated with its sold state so the
// storefront can gray out claimed items.
func (srv *catalogService) ListItems(ctx context.Context) ([]*usecase.CatalogItem, error) {
	items, err := srv.itemRepo.FindAll(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list items", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list items")
	}

	catalog := make([]*usecase.CatalogItem, 0, len(items))
	for _, item := range items {
		entry := &usecase.CatalogItem{Item: item}

		purchase, findErr := srv.purchaseRepo.FindByItem(ctx, item.ID)
		switch {
		case findErr == nil:
			entry.IsPurchased = true
			buyerID := purchase.BuyerID
			entry.PurchasedBy = &buyerID
		case errors.Is(findErr, repository.ErrPurchaseNotFound):
			// Still available.
		default:
			return nil, errors.Wrap(findErr, "failed to resolve item sold state")
		}

		catalog = append(catalog, entry)
	}

	return catalog, nil
}

// GetItem returns a single listing.
func (srv *catalogService) GetItem(ctx context.Context, itemID uuid.UUID) (*entity.Item, error) {
	item, err := srv.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return nil, errors.Wrap(domainerrors.ErrItemNotFound, "item not found")
		}

		return nil, errors.Wrap(err, "failed to find item by id")
	}

	return item, nil
}
