package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "campuskart/internal/delivery/context"
	"campuskart/internal/domain/entity"
	domainerrors "campuskart/internal/domain/errors"
	"campuskart/internal/domain/repository"
	"campuskart/internal/domain/service"
	"campuskart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// unknownBuyerName fills the report when neither the buyer account nor
// the order email yield a display name.
const unknownBuyerName = "Unknown User"

// fulfillmentService implements the FulfillmentUsecase interface.
type fulfillmentService struct {
	itemRepo    repository.ItemRepository
	orderRepo   repository.OrderRepository
	buyerRepo   repository.BuyerRepository
	pickupCodes service.PickupCodeService
	logger      *slog.Logger
}

// FulfillmentServiceParams holds dependencies for fulfillmentService, injected by Fx.
type FulfillmentServiceParams struct {
	fx.In

	ItemRepo    repository.ItemRepository
	OrderRepo   repository.OrderRepository
	BuyerRepo   repository.BuyerRepository
	PickupCodes service.PickupCodeService
	Logger      *slog.Logger
}

// NewFulfillmentService is the constructor for fulfillmentService.
func NewFulfillmentService(params FulfillmentServiceParams) usecase.FulfillmentUsecase {
	return &fulfillmentService{
		itemRepo:    params.ItemRepo,
		orderRepo:   params.OrderRepo,
		buyerRepo:   params.BuyerRepo,
		pickupCodes: params.PickupCodes,
		logger:      params.Logger,
	}
}

func (srv *fulfillmentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListAdminItems returns the admin's own listings.
func (srv *fulfillmentService) ListAdminItems(ctx context.Context, adminID uuid.UUID) ([]*entity.Item, error) {
	items, err := srv.itemRepo.FindByCreator(ctx, adminID)
	if err != nil {
		srv.log(ctx).Error("Failed to list admin items", slog.Any("adminID", adminID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list admin items")
	}

	return items, nil
}

// GetPurchaseReport joins every order against the admin's listings with
// the buyer behind it and totals the revenue.
func (srv *fulfillmentService) GetPurchaseReport(ctx context.Context, adminID uuid.UUID) (*usecase.PurchaseReport, error) {
	srv.log(ctx).Debug("Building purchase report", slog.Any("adminID", adminID))

	items, err := srv.itemRepo.FindByCreator(ctx, adminID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load admin items for report")
	}

	report := &usecase.PurchaseReport{
		TotalRevenue: decimal.Zero,
		Purchases:    []*usecase.AdminPurchase{},
	}

	if len(items) == 0 {
		return report, nil
	}

	itemsByID := make(map[string]*entity.Item, len(items))
	itemIDs := make([]string, 0, len(items))
	for _, item := range items {
		itemsByID[item.ID.String()] = item
		itemIDs = append(itemIDs, item.ID.String())
	}

	orders, err := srv.orderRepo.FindByItemIDs(ctx, itemIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load orders for report")
	}

	for _, order := range orders {
		item, ok := itemsByID[order.ItemID]
		if !ok {
			continue
		}

		report.Purchases = append(report.Purchases, &usecase.AdminPurchase{
			Buyer: srv.resolveBuyerIdentity(ctx, order),
			Item: usecase.SoldItem{
				ID:    item.ID,
				Title: item.Title,
				Price: item.Price,
			},
			Order: order,
		})
		report.TotalRevenue = report.TotalRevenue.Add(order.Amount)
	}

	report.TotalPurchases = len(report.Purchases)

	return report, nil
}

// resolveBuyerIdentity names the buyer behind an order. When the account
// no longer resolves, the identity falls back to what the order itself
// recorded at checkout time.
func (srv *fulfillmentService) resolveBuyerIdentity(ctx context.Context, order *entity.Order) usecase.BuyerIdentity {
	if buyerID, err := uuid.Parse(order.BuyerID); err == nil {
		if buyer, findErr := srv.buyerRepo.FindByID(ctx, buyerID); findErr == nil {
			return usecase.BuyerIdentity{
				ID:    buyer.ID.String(),
				Name:  buyer.FullName(),
				Email: buyer.Email,
			}
		}
	}

	name := unknownBuyerName
	if at := strings.Index(order.Email, "@"); at > 0 {
		name = order.Email[:at]
	}

	return usecase.BuyerIdentity{
		ID:    order.BuyerID,
		Name:  name,
		Email: order.Email,
	}
}

// UpdateDelivered flips an order's delivered flag after checking the
// order belongs to one of the admin's own items.
func (srv *fulfillmentService) UpdateDelivered(ctx context.Context, adminID, orderID uuid.UUID, delivered bool) (*entity.Order, error) {
	srv.log(ctx).Info("Updating delivered flag", slog.Any("orderID", orderID), slog.Bool("delivered", delivered))

	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "order to update not found")
		}

		return nil, errors.Wrap(err, "failed to load order for delivery update")
	}

	if err := srv.checkOrderOwnership(ctx, adminID, order); err != nil {
		return nil, err
	}

	updated, err := srv.orderRepo.UpdateDelivered(ctx, orderID, delivered)
	if err != nil {
		srv.log(ctx).Error("Failed to update delivered flag", slog.Any("orderID", orderID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update delivered flag")
	}

	srv.log(ctx).Debug("Delivered flag updated", slog.Any("orderID", orderID), slog.Bool("delivered", delivered))

	return updated, nil
}

// checkOrderOwnership rejects updates on orders whose item was not listed
// by the calling admin. An order whose item id no longer resolves cannot
// be proven to belong to this admin, so it is rejected the same way.
func (srv *fulfillmentService) checkOrderOwnership(ctx context.Context, adminID uuid.UUID, order *entity.Order) error {
	itemID, err := uuid.Parse(order.ItemID)
	if err != nil {
		srv.log(ctx).Warn("Order item id did not parse", slog.Any("orderID", order.ID), slog.String("itemID", order.ItemID))

		return errors.Wrap(domainerrors.ErrOrderOwnershipViolation, "order item id is not resolvable")
	}

	item, err := srv.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return errors.Wrap(domainerrors.ErrOrderOwnershipViolation, "order item no longer exists")
		}

		return errors.Wrap(err, "failed to load order item for ownership check")
	}

	if item.CreatorID != adminID {
		srv.log(ctx).Warn("Delivery update rejected for foreign order",
			slog.Any("orderID", order.ID), slog.Any("adminID", adminID))

		return errors.Wrap(domainerrors.ErrOrderOwnershipViolation, "order belongs to another admin's item")
	}

	return nil
}

// VerifyPickup resolves a scanned pickup code and marks the order
// delivered, subject to the same ownership check as UpdateDelivered.
func (srv *fulfillmentService) VerifyPickup(ctx context.Context, adminID uuid.UUID, qrData string) (*entity.Order, error) {
	orderID, err := srv.pickupCodes.ParseOrderPickupCode(qrData)
	if err != nil {
		srv.log(ctx).Warn("Pickup code did not parse", slog.Any("adminID", adminID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInvalidPickupCode, err.Error())
	}

	return srv.UpdateDelivered(ctx, adminID, orderID, true)
}
