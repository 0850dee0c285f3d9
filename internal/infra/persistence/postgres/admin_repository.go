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

// adminRepository implements the repository.AdminRepository interface.
type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository is the constructor for adminRepository.
func NewAdminRepository(db *gorm.DB) repository.AdminRepository {
	return &adminRepository{
		db: db,
	}
}

// Create persists a new admin.
func (repo *adminRepository) Create(ctx context.Context, admin *entity.Admin) error {
	adminM := fromAdminDomain(admin)

	if err := repo.db.WithContext(ctx).Create(adminM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAdminAlreadyExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create admin")
	}

	admin.ID = adminM.ID
	admin.CreatedAt = adminM.CreatedAt
	admin.UpdatedAt = adminM.UpdatedAt

	return nil
}

// FindByID retrieves an admin by their unique ID.
func (repo *adminRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Admin, error) {
	var adminM model.AdminModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&adminM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdminNotFound
		}

		return nil, errors.Wrap(err, "failed to find admin by ID")
	}

	return toAdminDomain(&adminM), nil
}

// FindByEmail retrieves an admin by their login email.
func (repo *adminRepository) FindByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	var adminM model.AdminModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&adminM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdminNotFound
		}

		return nil, errors.Wrap(err, "failed to find admin by email")
	}

	return toAdminDomain(&adminM), nil
}

// --- Mapper Functions ---

// toAdminDomain converts a GORM AdminModel to a domain Admin entity.
func toAdminDomain(data *model.AdminModel) *entity.Admin {
	if data == nil {
		return nil
	}

	return &entity.Admin{
		ID:           data.ID,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromAdminDomain converts a domain Admin entity to a GORM AdminModel.
func fromAdminDomain(data *entity.Admin) *model.AdminModel {
	if data == nil {
		return nil
	}

	return &model.AdminModel{
		ID:           data.ID,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
