package impl

import (
	"context"
	"log/slog"

	deliverycontext "campuskart/internal/delivery/context"
	"campuskart/internal/domain/entity"
	"campuskart/internal/domain/repository"
	"campuskart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// purchasesService implements the PurchasesUsecase interface.
type purchasesService struct {
	purchaseRepo repository.PurchaseRepository
	itemRepo     repository.ItemRepository
	orderRepo    repository.OrderRepository
	logger       *slog.Logger
}

// PurchasesServiceParams holds dependencies for purchasesService, injected by Fx.
type PurchasesServiceParams struct {
	fx.In

	PurchaseRepo repository.PurchaseRepository
	ItemRepo     repository.ItemRepository
	OrderRepo    repository.OrderRepository
	Logger       *slog.Logger
}

// NewPurchasesService is the constructor for purchasesService.
func NewPurchasesService(params PurchasesServiceParams) usecase.PurchasesUsecase {
	return &purchasesService{
		purchaseRepo: params.PurchaseRepo,
		itemRepo:     params.ItemRepo,
		orderRepo:    params.OrderRepo,
		logger:       params.Logger,
	}
}

func (srv *purchasesService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListPurchases returns every purchase the buyer holds together with the
// matching items.
func (srv *purchasesService) ListPurchases(ctx context.Context, buyerID uuid.UUID) (*usecase.PurchasesOutput, error) {
	purchases, err := srv.purchaseRepo.FindByBuyer(ctx, buyerID)
	if err != nil {
		srv.log(ctx).Error("Failed to list purchases", slog.Any("buyerID", buyerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list buyer purchases")
	}

	itemIDs := make([]uuid.UUID, 0, len(purchases))
	for _, purchase := range purchases {
		itemIDs = append(itemIDs, purchase.ItemID)
	}

	items, err := srv.itemRepo.FindByIDs(ctx, itemIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load purchased items")
	}

	return &usecase.PurchasesOutput{
		Purchases: purchases,
		Items:     items,
	}, nil
}

// ListAwaitingPickup returns bought items whose order is not yet delivered.
func (srv *purchasesService) ListAwaitingPickup(ctx context.Context, buyerID uuid.UUID) ([]*usecase.OrderedItem, error) {
	return srv.listOrderedItems(ctx, buyerID, false)
}

// ListReceivedItems returns bought items whose order has been delivered.
func (srv *purchasesService) ListReceivedItems(ctx context.Context, buyerID uuid.UUID) ([]*usecase.OrderedItem, error) {
	return srv.listOrderedItems(ctx, buyerID, true)
}

func (srv *purchasesService) listOrderedItems(ctx context.Context, buyerID uuid.UUID, delivered bool) ([]*usecase.OrderedItem, error) {
	purchases, err := srv.purchaseRepo.FindByBuyer(ctx, buyerID)
	if err != nil {
		srv.log(ctx).Error("Failed to load buyer purchases", slog.Any("buyerID", buyerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load buyer purchases")
	}

	if len(purchases) == 0 {
		return []*usecase.OrderedItem{}, nil
	}

	itemIDs := make([]uuid.UUID, 0, len(purchases))
	itemIDStrings := make([]string, 0, len(purchases))
	for _, purchase := range purchases {
		itemIDs = append(itemIDs, purchase.ItemID)
		itemIDStrings = append(itemIDStrings, purchase.ItemID.String())
	}

	orders, err := srv.orderRepo.FindByBuyerAndItemIDs(ctx, buyerID.String(), itemIDStrings, delivered)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load buyer orders")
	}

	items, err := srv.itemRepo.FindByIDs(ctx, itemIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load ordered items")
	}

	itemsByID := make(map[string]*entity.Item, len(items))
	for _, item := range items {
		itemsByID[item.ID.String()] = item
	}

	ordered := make([]*usecase.OrderedItem, 0, len(orders))
	for _, order := range orders {
		item, ok := itemsByID[order.ItemID]
		if !ok {
			// The listing was deleted after the sale. The order alone is
			// not renderable, skip it.
			srv.log(ctx).Warn("Order references missing item", slog.Any("orderID", order.ID), slog.String("itemID", order.ItemID))

			continue
		}

		ordered = append(ordered, &usecase.OrderedItem{
			Item:  item,
			Order: order,
		})
	}

	return ordered, nil
}
