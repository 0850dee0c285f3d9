package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

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

// catalogServiceFixtures holds all test dependencies for catalog service tests.
type catalogServiceFixtures struct {
	service      usecase.CatalogUsecase
	itemRepo     *mockRepo.MockItemRepository
	purchaseRepo *mockRepo.MockPurchaseRepository
	imageStore   *mockSvc.MockImageStore
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	itemRepo := mockRepo.NewMockItemRepository(t)
	purchaseRepo := mockRepo.NewMockPurchaseRepository(t)
	imageStore := mockSvc.NewMockImageStore(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewCatalogService(CatalogServiceParams{
		ItemRepo:     itemRepo,
		PurchaseRepo: purchaseRepo,
		ImageStore:   imageStore,
		Logger:       logger,
	})

	return catalogServiceFixtures{
		service:      service,
		itemRepo:     itemRepo,
		purchaseRepo: purchaseRepo,
		imageStore:   imageStore,
	}
}

func TestCatalogService_CreateItem_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	adminID := uuid.New()
	input := &usecase.CreateItemInput{
		AdminID:          adminID,
		Title:            "Drafting Table",
		Description:      "Barely used, pickup only",
		Price:            decimal.NewFromInt(1200),
		ImageFilename:    "table.jpg",
		ImageContentType: "image/jpeg",
		ImageBody:        strings.NewReader("jpeg-bytes"),
	}

	fx.imageStore.EXPECT().
		Save(ctx, "table.jpg", "image/jpeg", input.ImageBody).
		Return(&service.StoredImage{Key: "items/abc.jpg", URL: "https://cdn.test/items/abc.jpg"}, nil)

	fx.itemRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Item")).
		Run(func(ctx context.Context, item *entity.Item) {
			item.ID = uuid.New()
		}).
		Return(nil)

	item, err := fx.service.CreateItem(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, adminID, item.CreatorID)
	assert.Equal(t, "items/abc.jpg", item.Image.Key)
	assert.Equal(t, "https://cdn.test/items/abc.jpg", item.Image.URL)
	assert.True(t, item.Price.Equal(decimal.NewFromInt(1200)))
}

func TestCatalogService_CreateItem_MissingImage(t *testing.T) {
	fx := createTestCatalogService(t)

	item, err := fx.service.CreateItem(context.Background(), &usecase.CreateItemInput{
		AdminID: uuid.New(),
		Title:   "Drafting Table",
		Price:   decimal.NewFromInt(1200),
	})

	assert.Error(t, err)
	assert.Nil(t, item)
	assert.True(t, errors.Is(err, domainerrors.ErrImageRequired))
}

func TestCatalogService_CreateItem_BadImageFormat(t *testing.T) {
	fx := createTestCatalogService(t)

	item, err := fx.service.CreateItem(context.Background(), &usecase.CreateItemInput{
		AdminID:          uuid.New(),
		Title:            "Drafting Table",
		Price:            decimal.NewFromInt(1200),
		ImageFilename:    "table.gif",
		ImageContentType: "image/gif",
		ImageBody:        strings.NewReader("gif-bytes"),
	})

	assert.Error(t, err)
	assert.Nil(t, item)
	assert.True(t, errors.Is(err, domainerrors.ErrImageFormat))
}

func TestCatalogService_CreateItem_CleansUpBlobOnInsertFailure(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	input := &usecase.CreateItemInput{
		AdminID:          uuid.New(),
		Title:            "Drafting Table",
		Price:            decimal.NewFromInt(1200),
		ImageFilename:    "table.png",
		ImageContentType: "image/png",
		ImageBody:        strings.NewReader("png-bytes"),
	}

	fx.imageStore.EXPECT().
		Save(ctx, "table.png", "image/png", input.ImageBody).
		Return(&service.StoredImage{Key: "items/xyz.png", URL: "https://cdn.test/items/xyz.png"}, nil)

	fx.itemRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Item")).
		Return(errors.New("insert failed"))

	fx.imageStore.EXPECT().Delete(ctx, "items/xyz.png").Return(nil)

	item, err := fx.service.CreateItem(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, item)
}

func TestCatalogService_UpdateItem_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	adminID := uuid.New()
	itemID := uuid.New()
	existing := &entity.Item{
		ID:        itemID,
		Title:     "Old Title",
		Price:     decimal.NewFromInt(900),
		CreatorID: adminID,
	}

	fx.itemRepo.EXPECT().FindByID(ctx, itemID).Return(existing, nil)
	fx.itemRepo.EXPECT().
		UpdateOwned(ctx, itemID, adminID, mock.AnythingOfType("*repository.ItemUpdate")).
		Return(&entity.Item{ID: itemID, Title: "New Title", Price: decimal.NewFromInt(800), CreatorID: adminID}, nil)

	updated, err := fx.service.UpdateItem(ctx, &usecase.UpdateItemInput{
		AdminID: adminID,
		ItemID:  itemID,
		Title:   "New Title",
		Price:   decimal.NewFromInt(800),
	})

	require.NoError(t, err)
	assert.Equal(t, "New Title", updated.Title)
}

func TestCatalogService_UpdateItem_ForeignAdmin(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	itemID := uuid.New()

	fx.itemRepo.EXPECT().
		FindByID(ctx, itemID).
		Return(&entity.Item{ID: itemID, CreatorID: uuid.New()}, nil)

	updated, err := fx.service.UpdateItem(ctx, &usecase.UpdateItemInput{
		AdminID: uuid.New(),
		ItemID:  itemID,
		Title:   "New Title",
	})

	assert.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrItemUpdateNotOwned))
}

func TestCatalogService_UpdateItem_ReplacesImage(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	adminID := uuid.New()
	itemID := uuid.New()
	body := strings.NewReader("new-png")
	existing := &entity.Item{
		ID:        itemID,
		CreatorID: adminID,
		Image:     entity.ItemImage{Key: "items/old.png", URL: "https://cdn.test/items/old.png"},
	}

	fx.itemRepo.EXPECT().FindByID(ctx, itemID).Return(existing, nil)
	fx.imageStore.EXPECT().
		Save(ctx, "new.png", "image/png", body).
		Return(&service.StoredImage{Key: "items/new.png", URL: "https://cdn.test/items/new.png"}, nil)
	fx.itemRepo.EXPECT().
		UpdateOwned(ctx, itemID, adminID, mock.AnythingOfType("*repository.ItemUpdate")).
		Run(func(ctx context.Context, itemID uuid.UUID, adminID uuid.UUID, update *repository.ItemUpdate) {
			require.NotNil(t, update.Image)
			assert.Equal(t, "items/new.png", update.Image.Key)
		}).
		Return(&entity.Item{ID: itemID, CreatorID: adminID}, nil)
	fx.imageStore.EXPECT().Delete(ctx, "items/old.png").Return(nil)

	_, err := fx.service.UpdateItem(ctx, &usecase.UpdateItemInput{
		AdminID:          adminID,
		ItemID:           itemID,
		Title:            "Updated",
		ImageFilename:    "new.png",
		ImageContentType: "image/png",
		ImageBody:        body,
	})

	require.NoError(t, err)
}

func TestCatalogService_DeleteItem_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	adminID := uuid.New()
	itemID := uuid.New()
	item := &entity.Item{
		ID:        itemID,
		CreatorID: adminID,
		Image:     entity.ItemImage{Key: "items/doomed.png"},
	}

	fx.itemRepo.EXPECT().FindByID(ctx, itemID).Return(item, nil)
	fx.itemRepo.EXPECT().DeleteOwned(ctx, itemID, adminID).Return(item, nil)
	fx.imageStore.EXPECT().Delete(ctx, "items/doomed.png").Return(nil)

	err := fx.service.DeleteItem(ctx, itemID, adminID)

	require.NoError(t, err)
}

func TestCatalogService_DeleteItem_ForeignAdmin(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	itemID := uuid.New()

	fx.itemRepo.EXPECT().
		FindByID(ctx, itemID).
		Return(&entity.Item{ID: itemID, CreatorID: uuid.New()}, nil)

	err := fx.service.DeleteItem(ctx, itemID, uuid.New())

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrItemDeleteNotOwned))
}

func TestCatalogService_DeleteItem_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	itemID := uuid.New()

	fx.itemRepo.EXPECT().FindByID(ctx, itemID).Return(nil, repository.ErrItemNotFound)

	err := fx.service.DeleteItem(ctx, itemID, uuid.New())

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrItemNotFound))
}

func TestCatalogService_ListItems_DecoratesSoldState(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	soldItem := &entity.Item{ID: uuid.New(), Title: "Sold Lamp"}
	freeItem := &entity.Item{ID: uuid.New(), Title: "Free Lamp"}
	buyerID := uuid.New()

	fx.itemRepo.EXPECT().FindAll(ctx).Return([]*entity.Item{soldItem, freeItem}, nil)
	fx.purchaseRepo.EXPECT().
		FindByItem(ctx, soldItem.ID).
		Return(&entity.Purchase{ID: uuid.New(), BuyerID: buyerID, ItemID: soldItem.ID}, nil)
	fx.purchaseRepo.EXPECT().
		FindByItem(ctx, freeItem.ID).
		Return(nil, repository.ErrPurchaseNotFound)

	catalog, err := fx.service.ListItems(ctx)

	require.NoError(t, err)
	require.Len(t, catalog, 2)

	assert.True(t, catalog[0].IsPurchased)
	require.NotNil(t, catalog[0].PurchasedBy)
	assert.Equal(t, buyerID, *catalog[0].PurchasedBy)

	assert.False(t, catalog[1].IsPurchased)
	assert.Nil(t, catalog[1].PurchasedBy)
}

func TestCatalogService_GetItem_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	itemID := uuid.New()

	fx.itemRepo.EXPECT().FindByID(ctx, itemID).Return(nil, repository.ErrItemNotFound)

	item, err := fx.service.GetItem(ctx, itemID)

	assert.Error(t, err)
	assert.Nil(t, item)
	assert.True(t, errors.Is(err, domainerrors.ErrItemNotFound))
}
