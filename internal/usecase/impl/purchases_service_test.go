package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"campuskart/internal/domain/entity"
	mockRepo "campuskart/internal/mocks/repository"
	"campuskart/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// purchasesServiceFixtures holds all test dependencies for purchases service tests.
type purchasesServiceFixtures struct {
	service      usecase.PurchasesUsecase
	purchaseRepo *mockRepo.MockPurchaseRepository
	itemRepo     *mockRepo.MockItemRepository
	orderRepo    *mockRepo.MockOrderRepository
}

func createTestPurchasesService(t *testing.T) purchasesServiceFixtures {
	purchaseRepo := mockRepo.NewMockPurchaseRepository(t)
	itemRepo := mockRepo.NewMockItemRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewPurchasesService(PurchasesServiceParams{
		PurchaseRepo: purchaseRepo,
		ItemRepo:     itemRepo,
		OrderRepo:    orderRepo,
		Logger:       logger,
	})

	return purchasesServiceFixtures{
		service:      service,
		purchaseRepo: purchaseRepo,
		itemRepo:     itemRepo,
		orderRepo:    orderRepo,
	}
}

func TestPurchasesService_ListPurchases_Success(t *testing.T) {
	fx := createTestPurchasesService(t)

	ctx := context.Background()
	buyerID := uuid.New()
	itemA := &entity.Item{ID: uuid.New(), Title: "Lamp"}
	itemB := &entity.Item{ID: uuid.New(), Title: "Desk"}
	purchases := []*entity.Purchase{
		{ID: uuid.New(), BuyerID: buyerID, ItemID: itemA.ID},
		{ID: uuid.New(), BuyerID: buyerID, ItemID: itemB.ID},
	}

	fx.purchaseRepo.EXPECT().FindByBuyer(ctx, buyerID).Return(purchases, nil)
	fx.itemRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{itemA.ID, itemB.ID}).
		Return([]*entity.Item{itemA, itemB}, nil)

	output, err := fx.service.ListPurchases(ctx, buyerID)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Len(t, output.Purchases, 2)
	assert.Len(t, output.Items, 2)
}

func TestPurchasesService_ListPurchases_Empty(t *testing.T) {
	fx := createTestPurchasesService(t)

	ctx := context.Background()
	buyerID := uuid.New()

	fx.purchaseRepo.EXPECT().FindByBuyer(ctx, buyerID).Return([]*entity.Purchase{}, nil)
	fx.itemRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{}).Return([]*entity.Item{}, nil)

	output, err := fx.service.ListPurchases(ctx, buyerID)

	require.NoError(t, err)
	assert.Empty(t, output.Purchases)
	assert.Empty(t, output.Items)
}

func TestPurchasesService_ListAwaitingPickup_Success(t *testing.T) {
	fx := createTestPurchasesService(t)

	ctx := context.Background()
	buyerID := uuid.New()
	item := &entity.Item{ID: uuid.New(), Title: "Lamp"}
	purchases := []*entity.Purchase{
		{ID: uuid.New(), BuyerID: buyerID, ItemID: item.ID},
	}
	order := &entity.Order{
		ID:      uuid.New(),
		BuyerID: buyerID.String(),
		ItemID:  item.ID.String(),
	}

	fx.purchaseRepo.EXPECT().FindByBuyer(ctx, buyerID).Return(purchases, nil)
	fx.orderRepo.EXPECT().
		FindByBuyerAndItemIDs(ctx, buyerID.String(), []string{item.ID.String()}, false).
		Return([]*entity.Order{order}, nil)
	fx.itemRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{item.ID}).
		Return([]*entity.Item{item}, nil)

	ordered, err := fx.service.ListAwaitingPickup(ctx, buyerID)

	require.NoError(t, err)
	require.Len(t, ordered, 1)
	assert.Equal(t, item, ordered[0].Item)
	assert.Equal(t, order, ordered[0].Order)
}

func TestPurchasesService_ListAwaitingPickup_NoPurchases(t *testing.T) {
	fx := createTestPurchasesService(t)

	ctx := context.Background()
	buyerID := uuid.New()

	fx.purchaseRepo.EXPECT().FindByBuyer(ctx, buyerID).Return(nil, nil)

	ordered, err := fx.service.ListAwaitingPickup(ctx, buyerID)

	require.NoError(t, err)
	assert.Empty(t, ordered)
}

func TestPurchasesService_ListReceivedItems_FiltersDelivered(t *testing.T) {
	fx := createTestPurchasesService(t)

	ctx := context.Background()
	buyerID := uuid.New()
	item := &entity.Item{ID: uuid.New(), Title: "Desk"}
	purchases := []*entity.Purchase{
		{ID: uuid.New(), BuyerID: buyerID, ItemID: item.ID},
	}
	order := &entity.Order{
		ID:        uuid.New(),
		BuyerID:   buyerID.String(),
		ItemID:    item.ID.String(),
		Delivered: true,
	}

	fx.purchaseRepo.EXPECT().FindByBuyer(ctx, buyerID).Return(purchases, nil)
	fx.orderRepo.EXPECT().
		FindByBuyerAndItemIDs(ctx, buyerID.String(), []string{item.ID.String()}, true).
		Return([]*entity.Order{order}, nil)
	fx.itemRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{item.ID}).
		Return([]*entity.Item{item}, nil)

	ordered, err := fx.service.ListReceivedItems(ctx, buyerID)

	require.NoError(t, err)
	require.Len(t, ordered, 1)
	assert.True(t, ordered[0].Order.Delivered)
}

func TestPurchasesService_ListAwaitingPickup_SkipsMissingItems(t *testing.T) {
	fx := createTestPurchasesService(t)

	ctx := context.Background()
	buyerID := uuid.New()
	deletedItemID := uuid.New()
	purchases := []*entity.Purchase{
		{ID: uuid.New(), BuyerID: buyerID, ItemID: deletedItemID},
	}
	order := &entity.Order{
		ID:      uuid.New(),
		BuyerID: buyerID.String(),
		ItemID:  deletedItemID.String(),
	}

	fx.purchaseRepo.EXPECT().FindByBuyer(ctx, buyerID).Return(purchases, nil)
	fx.orderRepo.EXPECT().
		FindByBuyerAndItemIDs(ctx, buyerID.String(), []string{deletedItemID.String()}, false).
		Return([]*entity.Order{order}, nil)
	fx.itemRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{deletedItemID}).
		Return([]*entity.Item{}, nil)

	ordered, err := fx.service.ListAwaitingPickup(ctx, buyerID)

	require.NoError(t, err)
	assert.Empty(t, ordered)
}
