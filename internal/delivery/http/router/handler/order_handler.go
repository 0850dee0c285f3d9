package handler

import (
	"log/slog"
	"net/http"

	"campuskart/internal/delivery/http/response"
	"campuskart/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// placeOrderRequest carries the checkout submission. The ID fields are
// recorded on the order verbatim, so they deliberately have no format
// validation here.
type placeOrderRequest struct {
	Email     string          `json:"email"  validate:"required,email"`
	BuyerID   string          `json:"userId" validate:"required"`
	ItemID    string          `json:"itemId" validate:"required"`
	PaymentID string          `json:"paymentId"`
	Amount    decimal.Decimal `json:"amount"`
	Status    string          `json:"status"`
	Phone     string          `json:"phone"`
	Address   string          `json:"address"`
}

// OrderHandler holds dependencies for the checkout submission handler.
type OrderHandler struct {
	checkout usecase.CheckoutUsecase
	logger   *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(checkout usecase.CheckoutUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		checkout: checkout,
		logger:   logger,
	}
}

// PlaceOrder records the completed checkout and triggers the follow-up
// side effects (purchase claim, emails, order event).
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	var req placeOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	order, err := h.checkout.PlaceOrder(c.Request().Context(), &usecase.PlaceOrderInput{
		Email:     req.Email,
		BuyerID:   req.BuyerID,
		ItemID:    req.ItemID,
		PaymentID: req.PaymentID,
		Amount:    req.Amount,
		Status:    req.Status,
		Phone:     req.Phone,
		Address:   req.Address,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newOrderResponse(order), "Order placed successfully")
}
