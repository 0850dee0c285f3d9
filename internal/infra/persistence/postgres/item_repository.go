package postgres

import (
	"context"

	"campuskart/internal/domain/entity"
	domainerrors "campuskart/internal/domain/errors"
	"campuskart/internal/domain/repository"
	"campuskart/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// itemRepository implements the repository.ItemRepository interface.
type itemRepository struct {
	db *gorm.DB
}

// NewItemRepository is the constructor for itemRepository.
func NewItemRepository(db *gorm.DB) repository.ItemRepository {
	return &itemRepository{
		db: db,
	}
}

// Create persists a new item.
func (repo *itemRepository) Create(ctx context.Context, item *entity.Item) error {
	itemM := fromItemDomain(item)

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create item")
	}

	item.ID = itemM.ID
	item.CreatedAt = itemM.CreatedAt
	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

// FindByID retrieves an item by its unique ID.
func (repo *itemRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	var itemM model.ItemModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find item by ID")
	}

	return toItemDomain(&itemM), nil
}

// FindByIDs retrieves all items whose ID is in the given set.
func (repo *itemRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Item, error) {
	if len(ids) == 0 {
		return []*entity.Item{}, nil
	}

	var itemModels []*model.ItemModel

	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find items by IDs")
	}

	return toItemDomainList(itemModels), nil
}

// FindAll retrieves every listed item, newest first.
func (repo *itemRepository) FindAll(ctx context.Context) ([]*entity.Item, error) {
	var itemModels []*model.ItemModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find items")
	}

	return toItemDomainList(itemModels), nil
}

// FindByCreator retrieves all items listed by the given admin.
func (repo *itemRepository) FindByCreator(ctx context.Context, adminID uuid.UUID) ([]*entity.Item, error) {
	var itemModels []*model.ItemModel

	if err := repo.db.WithContext(ctx).
		Where("creator_id = ?", adminID).
		Order("created_at DESC").
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find items by creator")
	}

	return toItemDomainList(itemModels), nil
}

// UpdateOwned updates the item only when it belongs to the given admin.
// An ownership mismatch is indistinguishable from a missing item.
func (repo *itemRepository) UpdateOwned(ctx context.Context, itemID, adminID uuid.UUID, update *repository.ItemUpdate) (*entity.Item, error) {
	updates := map[string]any{
		"title":       update.Title,
		"description": update.Description,
		"price":       update.Price,
	}
	if update.Image != nil {
		updates["image_key"] = update.Image.Key
		updates["image_url"] = update.Image.URL
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ItemModel{}).
		Where("id = ? AND creator_id = ?", itemID, adminID).
		Updates(updates)

	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to update item")
	}

	if result.RowsAffected == 0 {
		return nil, repository.ErrItemNotFound
	}

	return repo.FindByID(ctx, itemID)
}

// DeleteOwned removes the item only when it belongs to the given admin,
// returning the deleted item so the caller can clean up its image blob.
func (repo *itemRepository) DeleteOwned(ctx context.Context, itemID, adminID uuid.UUID) (*entity.Item, error) {
	var itemM model.ItemModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND creator_id = ?", itemID, adminID).
		First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find item for deletion")
	}

	if err := repo.db.WithContext(ctx).
		Where("id = ?", itemM.ID).
		Delete(&model.ItemModel{}).Error; err != nil {
		return nil, errors.Wrap(err, "failed to delete item")
	}

	return toItemDomain(&itemM), nil
}

// --- Mapper Functions ---

// toItemDomain converts a GORM ItemModel to a domain Item entity.
func toItemDomain(data *model.ItemModel) *entity.Item {
	if data == nil {
		return nil
	}

	return &entity.Item{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		Price:       data.Price,
		Image: entity.ItemImage{
			Key: data.ImageKey,
			URL: data.ImageURL,
		},
		CreatorID: data.CreatorID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toItemDomainList(models []*model.ItemModel) []*entity.Item {
	items := make([]*entity.Item, 0, len(models))
	for _, itemM := range models {
		items = append(items, toItemDomain(itemM))
	}

	return items
}

// fromItemDomain converts a domain Item entity to a GORM ItemModel.
func fromItemDomain(data *entity.Item) *model.ItemModel {
	if data == nil {
		return nil
	}

	return &model.ItemModel{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		Price:       data.Price,
		ImageKey:    data.Image.Key,
		ImageURL:    data.Image.URL,
		CreatorID:   data.CreatorID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
