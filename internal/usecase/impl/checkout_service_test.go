package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"campuskart/config"
	"campuskart/internal/domain/entity"
	domainerrors "campuskart/internal/domain/errors"
	"campuskart/internal/domain/repository"
	"campuskart/internal/domain/service"
	mockRepo "campuskart/internal/mocks/repository"
	mockSvc "campuskart/internal/mocks/service"
	"campuskart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// checkoutServiceFixtures holds all test dependencies for checkout service tests.
type checkoutServiceFixtures struct {
	service      usecase.CheckoutUsecase
	txManager    *mockRepo.MockTransactionManager
	itemRepo     *mockRepo.MockItemRepository
	purchaseRepo *mockRepo.MockPurchaseRepository
	orderRepo    *mockRepo.MockOrderRepository
	buyerRepo    *mockRepo.MockBuyerRepository
	adminRepo    *mockRepo.MockAdminRepository
	gateway      *mockSvc.MockPaymentGateway
	mailer       *mockSvc.MockMailer
	pickupCodes  *mockSvc.MockPickupCodeService
	events       *mockSvc.MockEventPublisher
}

func createTestCheckoutService(t *testing.T) checkoutServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	itemRepo := mockRepo.NewMockItemRepository(t)
	purchaseRepo := mockRepo.NewMockPurchaseRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	buyerRepo := mockRepo.NewMockBuyerRepository(t)
	adminRepo := mockRepo.NewMockAdminRepository(t)
	gateway := mockSvc.NewMockPaymentGateway(t)
	mailer := mockSvc.NewMockMailer(t)
	pickupCodes := mockSvc.NewMockPickupCodeService(t)
	events := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewCheckoutService(CheckoutServiceParams{
		TxManager:    txManager,
		ItemRepo:     itemRepo,
		PurchaseRepo: purchaseRepo,
		OrderRepo:    orderRepo,
		BuyerRepo:    buyerRepo,
		AdminRepo:    adminRepo,
		Gateway:      gateway,
		Mailer:       mailer,
		PickupCodes:  pickupCodes,
		Events:       events,
		Config: &config.Config{
			Stripe: &config.StripeConfig{Currency: "inr"},
		},
		Logger: logger,
	})

	return checkoutServiceFixtures{
		service:      service,
		txManager:    txManager,
		itemRepo:     itemRepo,
		purchaseRepo: purchaseRepo,
		orderRepo:    orderRepo,
		buyerRepo:    buyerRepo,
		adminRepo:    adminRepo,
		gateway:      gateway,
		mailer:       mailer,
		pickupCodes:  pickupCodes,
		events:       events,
	}
}

func TestCheckoutService_BuyItem_Success(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	buyerID := uuid.New()
	item := &entity.Item{ID: uuid.New(), Title: "Cycle", Price: decimal.NewFromInt(3500)}

	fx.itemRepo.EXPECT().FindByID(ctx, item.ID).Return(item, nil)
	fx.purchaseRepo.EXPECT().
		FindByBuyerAndItem(ctx, buyerID, item.ID).
		Return(nil, repository.ErrPurchaseNotFound)
	fx.purchaseRepo.EXPECT().
		FindByItem(ctx, item.ID).
		Return(nil, repository.ErrPurchaseNotFound)
	fx.gateway.EXPECT().
		CreateIntent(ctx, item.Price, "inr").
		Return(&service.PaymentIntent{ID: "pi_123", ClientSecret: "pi_123_secret", Status: "requires_payment_method"}, nil)

	output, err := fx.service.BuyItem(ctx, buyerID, item.ID)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, item, output.Item)
	assert.Equal(t, "pi_123_secret", output.ClientSecret)
}

func TestCheckoutService_BuyItem_ItemNotFound(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	itemID := uuid.New()

	fx.itemRepo.EXPECT().FindByID(ctx, itemID).Return(nil, repository.ErrItemNotFound)

	output, err := fx.service.BuyItem(ctx, uuid.New(), itemID)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrItemNotFound))
}

func TestCheckoutService_BuyItem_AlreadyPurchasedByBuyer(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	buyerID := uuid.New()
	item := &entity.Item{ID: uuid.New(), Price: decimal.NewFromInt(3500)}

	fx.itemRepo.EXPECT().FindByID(ctx, item.ID).Return(item, nil)
	fx.purchaseRepo.EXPECT().
		FindByBuyerAndItem(ctx, buyerID, item.ID).
		Return(&entity.Purchase{ID: uuid.New(), BuyerID: buyerID, ItemID: item.ID}, nil)

	output, err := fx.service.BuyItem(ctx, buyerID, item.ID)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrItemAlreadyPurchased))
}

func TestCheckoutService_BuyItem_SoldToAnotherBuyer(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	buyerID := uuid.New()
	item := &entity.Item{ID: uuid.New(), Price: decimal.NewFromInt(3500)}

	fx.itemRepo.EXPECT().FindByID(ctx, item.ID).Return(item, nil)
	fx.purchaseRepo.EXPECT().
		FindByBuyerAndItem(ctx, buyerID, item.ID).
		Return(nil, repository.ErrPurchaseNotFound)
	fx.purchaseRepo.EXPECT().
		FindByItem(ctx, item.ID).
		Return(&entity.Purchase{ID: uuid.New(), BuyerID: uuid.New(), ItemID: item.ID}, nil)

	output, err := fx.service.BuyItem(ctx, buyerID, item.ID)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrItemAlreadySold))
}

func TestCheckoutService_BuyItem_GatewayFailure(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	buyerID := uuid.New()
	item := &entity.Item{ID: uuid.New(), Price: decimal.NewFromInt(3500)}

	fx.itemRepo.EXPECT().FindByID(ctx, item.ID).Return(item, nil)
	fx.purchaseRepo.EXPECT().
		FindByBuyerAndItem(ctx, buyerID, item.ID).
		Return(nil, repository.ErrPurchaseNotFound)
	fx.purchaseRepo.EXPECT().
		FindByItem(ctx, item.ID).
		Return(nil, repository.ErrPurchaseNotFound)
	fx.gateway.EXPECT().
		CreateIntent(ctx, item.Price, "inr").
		Return(nil, errors.New("stripe unavailable"))

	output, err := fx.service.BuyItem(ctx, buyerID, item.ID)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPaymentIntentFailed))
}

// placeOrderInput builds a well-formed checkout submission against the
// given buyer and item.
func placeOrderInput(buyerID, itemID uuid.UUID) *usecase.PlaceOrderInput {
	return &usecase.PlaceOrderInput{
		Email:     "asha.patil@campus.test",
		BuyerID:   buyerID.String(),
		ItemID:    itemID.String(),
		PaymentID: "pi_123",
		Amount:    decimal.NewFromInt(3500),
		Status:    entity.OrderStatusSucceeded,
		Phone:     "9876543210",
		Address:   "Hostel B, Room 12",
	}
}

func (fx checkoutServiceFixtures) expectOrderCreate(ctx context.Context, orderID uuid.UUID) {
	fx.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(ctx context.Context, order *entity.Order) {
			order.ID = orderID
		}).
		Return(nil)
}

func (fx checkoutServiceFixtures) expectClaim(ctx context.Context, t *testing.T, buyerID, itemID uuid.UUID, existing *entity.Purchase) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockPurchaseRepo := mockRepo.NewMockPurchaseRepository(t)

			mockFactory.EXPECT().NewPurchaseRepository().Return(mockPurchaseRepo)

			if existing != nil {
				mockPurchaseRepo.EXPECT().FindByItem(ctx, itemID).Return(existing, nil)
			} else {
				mockPurchaseRepo.EXPECT().FindByItem(ctx, itemID).Return(nil, repository.ErrPurchaseNotFound)
				mockPurchaseRepo.EXPECT().
					Create(ctx, mock.AnythingOfType("*entity.Purchase")).
					Return(nil)
			}

			return fn(mockFactory)
		})
}

func (fx checkoutServiceFixtures) expectNotifications(ctx context.Context, item *entity.Item, buyer *entity.Buyer, admin *entity.Admin, orderID uuid.UUID) {
	fx.itemRepo.EXPECT().FindByID(ctx, item.ID).Return(item, nil)
	fx.buyerRepo.EXPECT().FindByID(ctx, buyer.ID).Return(buyer, nil)
	fx.adminRepo.EXPECT().FindByID(ctx, admin.ID).Return(admin, nil)
	fx.pickupCodes.EXPECT().GenerateOrderPickupCode(orderID).Return([]byte("png"), nil)
}

func TestCheckoutService_PlaceOrder_Success(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	orderID := uuid.New()
	buyer := &entity.Buyer{ID: uuid.New(), FirstName: "Asha", LastName: "Patil", Email: "asha.patil@campus.test"}
	admin := &entity.Admin{ID: uuid.New(), FirstName: "Rohan", LastName: "Deshmukh", Email: "rohan.deshmukh@campus.test"}
	item := &entity.Item{ID: uuid.New(), Title: "Cycle", Price: decimal.NewFromInt(3500), CreatorID: admin.ID}
	input := placeOrderInput(buyer.ID, item.ID)

	fx.expectOrderCreate(ctx, orderID)
	fx.expectClaim(ctx, t, buyer.ID, item.ID, nil)
	fx.expectNotifications(ctx, item, buyer, admin, orderID)
	fx.mailer.EXPECT().
		SendPurchaseConfirmation(ctx, mock.AnythingOfType("*service.OrderEmailData")).
		Return(nil)
	fx.mailer.EXPECT().
		SendOrderNotification(ctx, mock.AnythingOfType("*service.OrderEmailData")).
		Return(nil)
	fx.events.EXPECT().
		PublishOrderCreated(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Return(nil)

	order, err := fx.service.PlaceOrder(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, orderID, order.ID)
	assert.Equal(t, input.PaymentID, order.PaymentID)
	assert.False(t, order.Delivered)
}

func TestCheckoutService_PlaceOrder_FailedStatusStillPersists(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	orderID := uuid.New()
	buyer := &entity.Buyer{ID: uuid.New(), Email: "asha.patil@campus.test"}
	admin := &entity.Admin{ID: uuid.New(), Email: "rohan.deshmukh@campus.test"}
	item := &entity.Item{ID: uuid.New(), Price: decimal.NewFromInt(3500), CreatorID: admin.ID}

	input := placeOrderInput(buyer.ID, item.ID)
	input.Status = "failed"

	fx.expectOrderCreate(ctx, orderID)
	fx.expectClaim(ctx, t, buyer.ID, item.ID, nil)
	fx.expectNotifications(ctx, item, buyer, admin, orderID)
	fx.mailer.EXPECT().
		SendPurchaseConfirmation(ctx, mock.AnythingOfType("*service.OrderEmailData")).
		Return(nil)
	fx.mailer.EXPECT().
		SendOrderNotification(ctx, mock.AnythingOfType("*service.OrderEmailData")).
		Return(nil)
	fx.events.EXPECT().
		PublishOrderCreated(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Return(nil)

	order, err := fx.service.PlaceOrder(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "failed", order.Status)
}

func TestCheckoutService_PlaceOrder_EmailFailureSwallowed(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	orderID := uuid.New()
	buyer := &entity.Buyer{ID: uuid.New(), Email: "asha.patil@campus.test"}
	admin := &entity.Admin{ID: uuid.New(), Email: "rohan.deshmukh@campus.test"}
	item := &entity.Item{ID: uuid.New(), Price: decimal.NewFromInt(3500), CreatorID: admin.ID}
	input := placeOrderInput(buyer.ID, item.ID)

	fx.expectOrderCreate(ctx, orderID)
	fx.expectClaim(ctx, t, buyer.ID, item.ID, nil)
	fx.expectNotifications(ctx, item, buyer, admin, orderID)
	fx.mailer.EXPECT().
		SendPurchaseConfirmation(ctx, mock.AnythingOfType("*service.OrderEmailData")).
		Return(errors.New("smtp timeout"))
	fx.mailer.EXPECT().
		SendOrderNotification(ctx, mock.AnythingOfType("*service.OrderEmailData")).
		Return(errors.New("smtp timeout"))
	fx.events.EXPECT().
		PublishOrderCreated(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Return(nil)

	order, err := fx.service.PlaceOrder(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, orderID, order.ID)
}

func TestCheckoutService_PlaceOrder_DuplicateClaimSameBuyerIsIdempotent(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	orderID := uuid.New()
	buyer := &entity.Buyer{ID: uuid.New(), Email: "asha.patil@campus.test"}
	admin := &entity.Admin{ID: uuid.New(), Email: "rohan.deshmukh@campus.test"}
	item := &entity.Item{ID: uuid.New(), Price: decimal.NewFromInt(3500), CreatorID: admin.ID}
	input := placeOrderInput(buyer.ID, item.ID)

	fx.expectOrderCreate(ctx, orderID)
	fx.expectClaim(ctx, t, buyer.ID, item.ID, &entity.Purchase{
		ID:      uuid.New(),
		BuyerID: buyer.ID,
		ItemID:  item.ID,
	})
	fx.expectNotifications(ctx, item, buyer, admin, orderID)
	fx.mailer.EXPECT().
		SendPurchaseConfirmation(ctx, mock.AnythingOfType("*service.OrderEmailData")).
		Return(nil)
	fx.mailer.EXPECT().
		SendOrderNotification(ctx, mock.AnythingOfType("*service.OrderEmailData")).
		Return(nil)
	fx.events.EXPECT().
		PublishOrderCreated(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Return(nil)

	order, err := fx.service.PlaceOrder(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, orderID, order.ID)
}

func TestCheckoutService_PlaceOrder_ClaimHeldByAnotherBuyer(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	buyerID := uuid.New()
	itemID := uuid.New()
	input := placeOrderInput(buyerID, itemID)

	fx.expectOrderCreate(ctx, uuid.New())
	fx.expectClaim(ctx, t, buyerID, itemID, &entity.Purchase{
		ID:      uuid.New(),
		BuyerID: uuid.New(),
		ItemID:  itemID,
	})

	order, err := fx.service.PlaceOrder(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrItemAlreadySold))
}

func TestCheckoutService_PlaceOrder_GarbageIDsSkipClaim(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	input := placeOrderInput(uuid.New(), uuid.New())
	input.BuyerID = "not-a-uuid"

	fx.expectOrderCreate(ctx, uuid.New())

	order, err := fx.service.PlaceOrder(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, "not-a-uuid", order.BuyerID)
}

func TestCheckoutService_PlaceOrder_InsertFailure(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	input := placeOrderInput(uuid.New(), uuid.New())

	fx.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Return(errors.New("insert failed"))

	order, err := fx.service.PlaceOrder(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderCreationFailed))
}
