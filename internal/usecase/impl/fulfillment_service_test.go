package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"campuskart/internal/domain/entity"
	domainerrors "campuskart/internal/domain/errors"
	"campuskart/internal/domain/repository"
	mockRepo "campuskart/internal/mocks/repository"
	mockSvc "campuskart/internal/mocks/service"
	"campuskart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fulfillmentServiceFixtures holds all test dependencies for fulfillment service tests.
type fulfillmentServiceFixtures struct {
	service     usecase.FulfillmentUsecase
	itemRepo    *mockRepo.MockItemRepository
	orderRepo   *mockRepo.MockOrderRepository
	buyerRepo   *mockRepo.MockBuyerRepository
	pickupCodes *mockSvc.MockPickupCodeService
}

func createTestFulfillmentService(t *testing.T) fulfillmentServiceFixtures {
	itemRepo := mockRepo.NewMockItemRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	buyerRepo := mockRepo.NewMockBuyerRepository(t)
	pickupCodes := mockSvc.NewMockPickupCodeService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewFulfillmentService(FulfillmentServiceParams{
		ItemRepo:    itemRepo,
		OrderRepo:   orderRepo,
		BuyerRepo:   buyerRepo,
		PickupCodes: pickupCodes,
		Logger:      logger,
	})

	return fulfillmentServiceFixtures{
		service:     service,
		itemRepo:    itemRepo,
		orderRepo:   orderRepo,
		buyerRepo:   buyerRepo,
		pickupCodes: pickupCodes,
	}
}

func TestFulfillmentService_ListAdminItems_Success(t *testing.T) {
	fx := createTestFulfillmentService(t)

	ctx := context.Background()
	adminID := uuid.New()
	items := []*entity.Item{
		{ID: uuid.New(), Title: "Lamp", CreatorID: adminID},
		{ID: uuid.New(), Title: "Desk", CreatorID: adminID},
	}

	fx.itemRepo.EXPECT().FindByCreator(ctx, adminID).Return(items, nil)

	got, err := fx.service.ListAdminItems(ctx, adminID)

	require.NoError(t, err)
	assert.Equal(t, items, got)
}

func TestFulfillmentService_GetPurchaseReport_Success(t *testing.T) {
	fx := createTestFulfillmentService(t)

	ctx := context.Background()
	adminID := uuid.New()
	buyer := &entity.Buyer{
		ID:        uuid.New(),
		FirstName: "Asha",
		LastName:  "Patil",
		Email:     "asha.patil@campus.test",
	}
	itemA := &entity.Item{ID: uuid.New(), Title: "Lamp", Price: decimal.NewFromInt(500), CreatorID: adminID}
	itemB := &entity.Item{ID: uuid.New(), Title: "Desk", Price: decimal.NewFromInt(2000), CreatorID: adminID}

	ghostBuyerID := uuid.New()
	orders := []*entity.Order{
		{
			ID:      uuid.New(),
			BuyerID: buyer.ID.String(),
			ItemID:  itemA.ID.String(),
			Email:   buyer.Email,
			Amount:  decimal.NewFromInt(500),
		},
		{
			ID:      uuid.New(),
			BuyerID: ghostBuyerID.String(),
			ItemID:  itemB.ID.String(),
			Email:   "ghost.account@campus.test",
			Amount:  decimal.NewFromInt(2000),
		},
	}

	fx.itemRepo.EXPECT().FindByCreator(ctx, adminID).Return([]*entity.Item{itemA, itemB}, nil)
	fx.orderRepo.EXPECT().
		FindByItemIDs(ctx, []string{itemA.ID.String(), itemB.ID.String()}).
		Return(orders, nil)
	fx.buyerRepo.EXPECT().FindByID(ctx, buyer.ID).Return(buyer, nil)
	fx.buyerRepo.EXPECT().FindByID(ctx, ghostBuyerID).Return(nil, repository.ErrBuyerNotFound)

	report, err := fx.service.GetPurchaseReport(ctx, adminID)

	require.NoError(t, err)
	require.NotNil(t, report)
	assert.Equal(t, 2, report.TotalPurchases)
	assert.True(t, report.TotalRevenue.Equal(decimal.NewFromInt(2500)))

	assert.Equal(t, "Asha Patil", report.Purchases[0].Buyer.Name)
	assert.Equal(t, buyer.Email, report.Purchases[0].Buyer.Email)

	// The ghost buyer falls back to the email local part.
	assert.Equal(t, "ghost.account", report.Purchases[1].Buyer.Name)
	assert.Equal(t, ghostBuyerID.String(), report.Purchases[1].Buyer.ID)
}

func TestFulfillmentService_GetPurchaseReport_UnknownBuyerWithoutEmail(t *testing.T) {
	fx := createTestFulfillmentService(t)

	ctx := context.Background()
	adminID := uuid.New()
	item := &entity.Item{ID: uuid.New(), Title: "Lamp", Price: decimal.NewFromInt(500), CreatorID: adminID}

	orders := []*entity.Order{
		{
			ID:      uuid.New(),
			BuyerID: "mystery",
			ItemID:  item.ID.String(),
			Email:   "",
			Amount:  decimal.NewFromInt(500),
		},
	}

	fx.itemRepo.EXPECT().FindByCreator(ctx, adminID).Return([]*entity.Item{item}, nil)
	fx.orderRepo.EXPECT().FindByItemIDs(ctx, []string{item.ID.String()}).Return(orders, nil)

	report, err := fx.service.GetPurchaseReport(ctx, adminID)

	require.NoError(t, err)
	require.Len(t, report.Purchases, 1)
	assert.Equal(t, "Unknown User", report.Purchases[0].Buyer.Name)
}

func TestFulfillmentService_GetPurchaseReport_NoItems(t *testing.T) {
	fx := createTestFulfillmentService(t)

	ctx := context.Background()
	adminID := uuid.New()

	fx.itemRepo.EXPECT().FindByCreator(ctx, adminID).Return([]*entity.Item{}, nil)

	report, err := fx.service.GetPurchaseReport(ctx, adminID)

	require.NoError(t, err)
	assert.Zero(t, report.TotalPurchases)
	assert.True(t, report.TotalRevenue.IsZero())
	assert.Empty(t, report.Purchases)
}

func TestFulfillmentService_UpdateDelivered_Success(t *testing.T) {
	fx := createTestFulfillmentService(t)

	ctx := context.Background()
	adminID := uuid.New()
	itemID := uuid.New()
	orderID := uuid.New()
	order := &entity.Order{ID: orderID, ItemID: itemID.String()}

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)
	fx.itemRepo.EXPECT().
		FindByID(ctx, itemID).
		Return(&entity.Item{ID: itemID, CreatorID: adminID}, nil)
	fx.orderRepo.EXPECT().
		UpdateDelivered(ctx, orderID, true).
		Return(&entity.Order{ID: orderID, ItemID: itemID.String(), Delivered: true}, nil)

	updated, err := fx.service.UpdateDelivered(ctx, adminID, orderID, true)

	require.NoError(t, err)
	assert.True(t, updated.Delivered)
}

func TestFulfillmentService_UpdateDelivered_OrderNotFound(t *testing.T) {
	fx := createTestFulfillmentService(t)

	ctx := context.Background()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(nil, repository.ErrOrderNotFound)

	updated, err := fx.service.UpdateDelivered(ctx, uuid.New(), orderID, true)

	assert.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}

func TestFulfillmentService_UpdateDelivered_ForeignItem(t *testing.T) {
	fx := createTestFulfillmentService(t)

	ctx := context.Background()
	itemID := uuid.New()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, ItemID: itemID.String()}, nil)
	fx.itemRepo.EXPECT().
		FindByID(ctx, itemID).
		Return(&entity.Item{ID: itemID, CreatorID: uuid.New()}, nil)

	updated, err := fx.service.UpdateDelivered(ctx, uuid.New(), orderID, true)

	assert.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderOwnershipViolation))
}

func TestFulfillmentService_UpdateDelivered_UnresolvableItemID(t *testing.T) {
	fx := createTestFulfillmentService(t)

	ctx := context.Background()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, ItemID: "garbage"}, nil)

	updated, err := fx.service.UpdateDelivered(ctx, uuid.New(), orderID, true)

	assert.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderOwnershipViolation))
}

func TestFulfillmentService_VerifyPickup_Success(t *testing.T) {
	fx := createTestFulfillmentService(t)

	ctx := context.Background()
	adminID := uuid.New()
	itemID := uuid.New()
	orderID := uuid.New()

	fx.pickupCodes.EXPECT().ParseOrderPickupCode("qr-payload").Return(orderID, nil)
	fx.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, ItemID: itemID.String()}, nil)
	fx.itemRepo.EXPECT().
		FindByID(ctx, itemID).
		Return(&entity.Item{ID: itemID, CreatorID: adminID}, nil)
	fx.orderRepo.EXPECT().
		UpdateDelivered(ctx, orderID, true).
		Return(&entity.Order{ID: orderID, ItemID: itemID.String(), Delivered: true}, nil)

	order, err := fx.service.VerifyPickup(ctx, adminID, "qr-payload")

	require.NoError(t, err)
	assert.True(t, order.Delivered)
}

func TestFulfillmentService_VerifyPickup_BadCode(t *testing.T) {
	fx := createTestFulfillmentService(t)

	fx.pickupCodes.EXPECT().
		ParseOrderPickupCode("nonsense").
		Return(uuid.Nil, errors.New("invalid payload"))

	order, err := fx.service.VerifyPickup(context.Background(), uuid.New(), "nonsense")

	assert.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidPickupCode))
}
