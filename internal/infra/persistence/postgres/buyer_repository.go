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

// buyerRepository implements the repository.BuyerRepository interface.
type buyerRepository struct {
	db *gorm.DB
}

// NewBuyerRepository is the constructor for buyerRepository.
func NewBuyerRepository(db *gorm.DB) repository.BuyerRepository {
	return &buyerRepository{
		db: db,
	}
}

// Create persists a new buyer.
func (repo *buyerRepository) Create(ctx context.Context, buyer *entity.Buyer) error {
	buyerM := fromBuyerDomain(buyer)

	if err := repo.db.WithContext(ctx).Create(buyerM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrBuyerAlreadyExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create buyer")
	}

	// Update the entity with generated values
	buyer.ID = buyerM.ID
	buyer.CreatedAt = buyerM.CreatedAt
	buyer.UpdatedAt = buyerM.UpdatedAt

	return nil
}

// FindByID retrieves a buyer by their unique ID.
func (repo *buyerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Buyer, error) {
	var buyerM model.BuyerModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&buyerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBuyerNotFound
		}

		return nil, errors.Wrap(err, "failed to find buyer by ID")
	}

	return toBuyerDomain(&buyerM), nil
}

// FindByEmail retrieves a buyer by their login email.
func (repo *buyerRepository) FindByEmail(ctx context.Context, email string) (*entity.Buyer, error) {
	var buyerM model.BuyerModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&buyerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBuyerNotFound
		}

		return nil, errors.Wrap(err, "failed to find buyer by email")
	}

	return toBuyerDomain(&buyerM), nil
}

// --- Mapper Functions ---

// toBuyerDomain converts a GORM BuyerModel to a domain Buyer entity.
func toBuyerDomain(data *model.BuyerModel) *entity.Buyer {
	if data == nil {
		return nil
	}

	return &entity.Buyer{
		ID:           data.ID,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromBuyerDomain converts a domain Buyer entity to a GORM BuyerModel.
func fromBuyerDomain(data *entity.Buyer) *model.BuyerModel {
	if data == nil {
		return nil
	}

	return &model.BuyerModel{
		ID:           data.ID,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
