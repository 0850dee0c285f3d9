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

// purchaseRepository implements the repository.PurchaseRepository interface.
type purchaseRepository struct {
	db *gorm.DB
}

// NewPurchaseRepository is the constructor for purchaseRepository.
func NewPurchaseRepository(db *gorm.DB) repository.PurchaseRepository {
	return &purchaseRepository{
		db: db,
	}
}

// Create persists a new purchase. The unique index on item_id makes the
// database the arbiter of single-unit inventory: the loser of a
// concurrent checkout gets ErrDuplicatePurchase.
func (repo *purchaseRepository) Create(ctx context.Context, purchase *entity.Purchase) error {
	purchaseM := fromPurchaseDomain(purchase)

	if err := repo.db.WithContext(ctx).Create(purchaseM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicatePurchase
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create purchase")
	}

	purchase.ID = purchaseM.ID
	purchase.CreatedAt = purchaseM.CreatedAt

	return nil
}

// FindByBuyerAndItem retrieves the purchase a specific buyer holds for a specific item.
func (repo *purchaseRepository) FindByBuyerAndItem(ctx context.Context, buyerID, itemID uuid.UUID) (*entity.Purchase, error) {
	var purchaseM model.PurchaseModel

	if err := repo.db.WithContext(ctx).
		Where("buyer_id = ? AND item_id = ?", buyerID, itemID).
		First(&purchaseM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPurchaseNotFound
		}

		return nil, errors.Wrap(err, "failed to find purchase by buyer and item")
	}

	return toPurchaseDomain(&purchaseM), nil
}

// FindByItem retrieves the purchase claiming the item, regardless of buyer.
func (repo *purchaseRepository) FindByItem(ctx context.Context, itemID uuid.UUID) (*entity.Purchase, error) {
	var purchaseM model.PurchaseModel

	if err := repo.db.WithContext(ctx).
		Where("item_id = ?", itemID).
		First(&purchaseM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPurchaseNotFound
		}

		return nil, errors.Wrap(err, "failed to find purchase by item")
	}

	return toPurchaseDomain(&purchaseM), nil
}

// FindByBuyer retrieves all purchases held by a buyer, newest first.
func (repo *purchaseRepository) FindByBuyer(ctx context.Context, buyerID uuid.UUID) ([]*entity.Purchase, error) {
	var purchaseModels []*model.PurchaseModel

	if err := repo.db.WithContext(ctx).
		Where("buyer_id = ?", buyerID).
		Order("created_at DESC").
		Find(&purchaseModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find purchases by buyer")
	}

	purchases := make([]*entity.Purchase, 0, len(purchaseModels))
	for _, purchaseM := range purchaseModels {
		purchases = append(purchases, toPurchaseDomain(purchaseM))
	}

	return purchases, nil
}

// --- Mapper Functions ---

// toPurchaseDomain converts a GORM PurchaseModel to a domain Purchase entity.
func toPurchaseDomain(data *model.PurchaseModel) *entity.Purchase {
	if data == nil {
		return nil
	}

	return &entity.Purchase{
		ID:        data.ID,
		BuyerID:   data.BuyerID,
		ItemID:    data.ItemID,
		CreatedAt: data.CreatedAt,
	}
}

// fromPurchaseDomain converts a domain Purchase entity to a GORM PurchaseModel.
func fromPurchaseDomain(data *entity.Purchase) *model.PurchaseModel {
	if data == nil {
		return nil
	}

	return &model.PurchaseModel{
		ID:        data.ID,
		BuyerID:   data.BuyerID,
		ItemID:    data.ItemID,
		CreatedAt: data.CreatedAt,
	}
}
