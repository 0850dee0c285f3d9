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

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// Create persists a new order exactly as submitted.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// FindByID retrieves an order by its unique ID.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// FindByItemIDs retrieves all orders referencing any of the given item id strings.
func (repo *orderRepository) FindByItemIDs(ctx context.Context, itemIDs []string) ([]*entity.Order, error) {
	if len(itemIDs) == 0 {
		return []*entity.Order{}, nil
	}

	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("item_id IN ?", itemIDs).
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find orders by item IDs")
	}

	return toOrderDomainList(orderModels), nil
}

// FindByBuyerAndItemIDs retrieves the buyer's orders for the given item id
// strings, filtered by the delivered flag.
func (repo *orderRepository) FindByBuyerAndItemIDs(ctx context.Context, buyerID string, itemIDs []string, delivered bool) ([]*entity.Order, error) {
	if len(itemIDs) == 0 {
		return []*entity.Order{}, nil
	}

	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("buyer_id = ? AND item_id IN ? AND delivered = ?", buyerID, itemIDs, delivered).
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find orders by buyer and item IDs")
	}

	return toOrderDomainList(orderModels), nil
}

// UpdateDelivered flips the delivered flag and returns the updated order.
func (repo *orderRepository) UpdateDelivered(ctx context.Context, id uuid.UUID, delivered bool) (*entity.Order, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Update("delivered", delivered)

	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to update order delivered flag")
	}

	if result.RowsAffected == 0 {
		return nil, repository.ErrOrderNotFound
	}

	return repo.FindByID(ctx, id)
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	return &entity.Order{
		ID:        data.ID,
		Email:     data.Email,
		BuyerID:   data.BuyerID,
		ItemID:    data.ItemID,
		PaymentID: data.PaymentID,
		Amount:    data.Amount,
		Status:    data.Status,
		Phone:     data.Phone,
		Address:   data.Address,
		Delivered: data.Delivered,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toOrderDomainList(models []*model.OrderModel) []*entity.Order {
	orders := make([]*entity.Order, 0, len(models))
	for _, orderM := range models {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	return &model.OrderModel{
		ID:        data.ID,
		Email:     data.Email,
		BuyerID:   data.BuyerID,
		ItemID:    data.ItemID,
		PaymentID: data.PaymentID,
		Amount:    data.Amount,
		Status:    data.Status,
		Phone:     data.Phone,
		Address:   data.Address,
		Delivered: data.Delivered,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
