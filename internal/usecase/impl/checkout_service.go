package impl

import (
	"context"
	"log/slog"

	"campuskart/config"
	deliverycontext "campuskart/internal/delivery/context"
	"campuskart/internal/domain/entity"
	domainerrors "campuskart/internal/domain/errors"
	"campuskart/internal/domain/repository"
	"campuskart/internal/domain/service"
	"campuskart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultCheckoutCurrency = "usd"

// checkoutService implements the CheckoutUsecase interface.
type checkoutService struct {
	txManager    repository.TransactionManager
	itemRepo     repository.ItemRepository
	purchaseRepo repository.PurchaseRepository
	orderRepo    repository.OrderRepository
	buyerRepo    repository.BuyerRepository
	adminRepo    repository.AdminRepository
	gateway      service.PaymentGateway
	mailer       service.Mailer
	pickupCodes  service.PickupCodeService
	events       service.EventPublisher
	currency     string
	logger       *slog.Logger
}

// CheckoutServiceParams holds dependencies for checkoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	ItemRepo     repository.ItemRepository
	PurchaseRepo repository.PurchaseRepository
	OrderRepo    repository.OrderRepository
	BuyerRepo    repository.BuyerRepository
	AdminRepo    repository.AdminRepository
	Gateway      service.PaymentGateway
	Mailer       service.Mailer
	PickupCodes  service.PickupCodeService
	Events       service.EventPublisher
	Config       *config.Config
	Logger       *slog.Logger
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	currency := defaultCheckoutCurrency
	if params.Config != nil && params.Config.Stripe != nil && params.Config.Stripe.Currency != "" {
		currency = params.Config.Stripe.Currency
	}

	return &checkoutService{
		txManager:    params.TxManager,
		itemRepo:     params.ItemRepo,
		purchaseRepo: params.PurchaseRepo,
		orderRepo:    params.OrderRepo,
		buyerRepo:    params.BuyerRepo,
		adminRepo:    params.AdminRepo,
		gateway:      params.Gateway,
		mailer:       params.Mailer,
		pickupCodes:  params.PickupCodes,
		events:       params.Events,
		currency:     currency,
		logger:       params.Logger,
	}
}

func (srv *checkoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// BuyItem vets the item's availability for this buyer and opens a payment
// intent with the gateway. Nothing is reserved; the purchase record is
// claimed later by PlaceOrder.
func (srv *checkoutService) BuyItem(ctx context.Context, buyerID, itemID uuid.UUID) (*usecase.BuyItemOutput, error) {
	srv.log(ctx).Info("Starting checkout", slog.Any("buyerID", buyerID), slog.Any("itemID", itemID))

	item, err := srv.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return nil, errors.Wrap(domainerrors.ErrItemNotFound, "checkout item not found")
		}

		return nil, errors.Wrap(err, "failed to find checkout item")
	}

	// The buyer's own prior claim answers before the generic sold check so
	// the client can tell the two conflicts apart.
	_, err = srv.purchaseRepo.FindByBuyerAndItem(ctx, buyerID, itemID)
	if err == nil {
		return nil, errors.Wrap(domainerrors.ErrItemAlreadyPurchased, "buyer already purchased this item")
	}
	if !errors.Is(err, repository.ErrPurchaseNotFound) {
		return nil, errors.Wrap(err, "failed to check buyer purchase")
	}

	_, err = srv.purchaseRepo.FindByItem(ctx, itemID)
	if err == nil {
		return nil, errors.Wrap(domainerrors.ErrItemAlreadySold, "item already sold to another buyer")
	}
	if !errors.Is(err, repository.ErrPurchaseNotFound) {
		return nil, errors.Wrap(err, "failed to check item sold state")
	}

	intent, err := srv.gateway.CreateIntent(ctx, item.Price, srv.currency)
	if err != nil {
		srv.log(ctx).Error("Failed to create payment intent", slog.Any("itemID", itemID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPaymentIntentFailed, err.Error())
	}

	srv.log(ctx).Debug("Payment intent created", slog.Any("itemID", itemID), slog.String("intentID", intent.ID))

	return &usecase.BuyItemOutput{
		Item:         item,
		ClientSecret: intent.ClientSecret,
	}, nil
}

// PlaceOrder records the checkout as submitted, claims the purchase when
// it parses to real identifiers, and fires the notification side effects.
// Only the order insert can fail the call; pickup code generation, emails
// and the published event are best effort.
func (srv *checkoutService) PlaceOrder(ctx context.Context, input *usecase.PlaceOrderInput) (*entity.Order, error) {
	srv.log(ctx).Info("Placing order", slog.String("itemID", input.ItemID), slog.String("buyerID", input.BuyerID))

	order := &entity.Order{
		Email:     input.Email,
		BuyerID:   input.BuyerID,
		ItemID:    input.ItemID,
		PaymentID: input.PaymentID,
		Amount:    input.Amount,
		Status:    input.Status,
		Phone:     input.Phone,
		Address:   input.Address,
	}

	if err := srv.orderRepo.Create(ctx, order); err != nil {
		srv.log(ctx).Error("Failed to create order", slog.String("itemID", input.ItemID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrOrderCreationFailed, err.Error())
	}

	if order.Status != entity.OrderStatusSucceeded {
		srv.log(ctx).Warn("Order recorded with non-succeeded status",
			slog.Any("orderID", order.ID), slog.String("status", order.Status))
	}

	buyerID, buyerErr := uuid.Parse(input.BuyerID)
	itemID, itemErr := uuid.Parse(input.ItemID)
	if buyerErr != nil || itemErr != nil {
		// The order keeps whatever the client submitted, but garbage ids
		// cannot claim a purchase or be notified about.
		srv.log(ctx).Warn("Order ids did not parse, skipping purchase claim",
			slog.Any("orderID", order.ID), slog.String("buyerID", input.BuyerID), slog.String("itemID", input.ItemID))

		return order, nil
	}

	if err := srv.claimPurchase(ctx, buyerID, itemID); err != nil {
		return nil, err
	}

	srv.notifyOrderPlaced(ctx, order, buyerID, itemID)
	srv.publishOrderEvent(ctx, order)

	return order, nil
}

// claimPurchase marks the item as sold to the buyer. A claim the same
// buyer already holds is left alone so retried checkouts stay idempotent;
// a claim held by another buyer is a conflict.
func (srv *checkoutService) claimPurchase(ctx context.Context, buyerID, itemID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		purchaseRepo := repoFactory.NewPurchaseRepository()

		existing, findErr := purchaseRepo.FindByItem(ctx, itemID)
		if findErr == nil {
			if existing.BuyerID == buyerID {
				return nil
			}

			return errors.Wrap(domainerrors.ErrItemAlreadySold, "purchase already claimed by another buyer")
		}
		if !errors.Is(findErr, repository.ErrPurchaseNotFound) {
			return errors.Wrap(findErr, "failed to check existing purchase")
		}

		createErr := purchaseRepo.Create(ctx, &entity.Purchase{
			BuyerID: buyerID,
			ItemID:  itemID,
		})
		if errors.Is(createErr, repository.ErrDuplicatePurchase) {
			// Lost a concurrent claim race. Same-buyer duplicates are fine.
			winner, winnerErr := purchaseRepo.FindByItem(ctx, itemID)
			if winnerErr == nil && winner.BuyerID == buyerID {
				return nil
			}

			return errors.Wrap(domainerrors.ErrItemAlreadySold, "purchase claim lost to another buyer")
		}

		return createErr
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to claim purchase",
			slog.Any("buyerID", buyerID), slog.Any("itemID", itemID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute purchase claim transaction")
	}

	return nil
}

// notifyOrderPlaced sends the buyer confirmation and the seller
// notification. Every failure here is logged and swallowed.
func (srv *checkoutService) notifyOrderPlaced(ctx context.Context, order *entity.Order, buyerID, itemID uuid.UUID) {
	item, err := srv.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		srv.log(ctx).Warn("Skipping order emails, item lookup failed", slog.Any("orderID", order.ID), slog.Any("error", err))

		return
	}

	buyer, err := srv.buyerRepo.FindByID(ctx, buyerID)
	if err != nil {
		srv.log(ctx).Warn("Skipping order emails, buyer lookup failed", slog.Any("orderID", order.ID), slog.Any("error", err))

		return
	}

	admin, err := srv.adminRepo.FindByID(ctx, item.CreatorID)
	if err != nil {
		srv.log(ctx).Warn("Skipping order emails, seller lookup failed", slog.Any("orderID", order.ID), slog.Any("error", err))

		return
	}

	pickupCode, err := srv.pickupCodes.GenerateOrderPickupCode(order.ID)
	if err != nil {
		srv.log(ctx).Warn("Failed to generate pickup code", slog.Any("orderID", order.ID), slog.Any("error", err))
		pickupCode = nil
	}

	data := &service.OrderEmailData{
		Order:      order,
		Buyer:      buyer,
		Item:       item,
		Admin:      admin,
		PickupCode: pickupCode,
	}

	if err := srv.mailer.SendPurchaseConfirmation(ctx, data); err != nil {
		srv.log(ctx).Warn("Failed to send purchase confirmation", slog.Any("orderID", order.ID), slog.Any("error", err))
	}

	if err := srv.mailer.SendOrderNotification(ctx, data); err != nil {
		srv.log(ctx).Warn("Failed to send order notification", slog.Any("orderID", order.ID), slog.Any("error", err))
	}
}

func (srv *checkoutService) publishOrderEvent(ctx context.Context, order *entity.Order) {
	event := &service.OrderEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		OrderID:   order.ID.String(),
		ItemID:    order.ItemID,
		BuyerID:   order.BuyerID,
		Amount:    order.Amount.String(),
		Status:    order.Status,
	}

	if err := srv.events.PublishOrderCreated(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish order event", slog.Any("orderID", order.ID), slog.Any("error", err))
	}
}
