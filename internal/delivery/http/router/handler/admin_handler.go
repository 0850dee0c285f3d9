package handler

import (
	"log/slog"
	"net/http"
	"time"

	"campuskart/config"
	"campuskart/internal/delivery/http/middleware"
	"campuskart/internal/delivery/http/response"
	"campuskart/internal/domain/service"
	"campuskart/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

type updateDeliveredRequest struct {
	Delivered bool `json:"delivered"`
}

type verifyPickupRequest struct {
	QRData string `json:"qrData" validate:"required"`
}

// adminPurchaseResponse joins one order with its item and buyer for the
// seller dashboard.
type adminPurchaseResponse struct {
	Buyer buyerIdentityResponse `json:"buyer"`
	Item  soldItemResponse      `json:"item"`
	Order OrderResponse         `json:"order"`
}

type buyerIdentityResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type soldItemResponse struct {
	ID    string          `json:"id"`
	Title string          `json:"title"`
	Price decimal.Decimal `json:"price"`
}

type purchaseReportResponse struct {
	TotalPurchases int                      `json:"totalPurchases"`
	TotalRevenue   decimal.Decimal          `json:"totalRevenue"`
	Purchases      []*adminPurchaseResponse `json:"purchases"`
}

func newPurchaseReportResponse(report *usecase.PurchaseReport) purchaseReportResponse {
	out := purchaseReportResponse{
		TotalPurchases: report.TotalPurchases,
		TotalRevenue:   report.TotalRevenue,
		Purchases:      make([]*adminPurchaseResponse, 0, len(report.Purchases)),
	}
	for _, purchase := range report.Purchases {
		out.Purchases = append(out.Purchases, &adminPurchaseResponse{
			Buyer: buyerIdentityResponse{
				ID:    purchase.Buyer.ID,
				Name:  purchase.Buyer.Name,
				Email: purchase.Buyer.Email,
			},
			Item: soldItemResponse{
				ID:    purchase.Item.ID.String(),
				Title: purchase.Item.Title,
				Price: purchase.Item.Price,
			},
			Order: newOrderResponse(purchase.Order),
		})
	}

	return out
}

// AdminHandler holds dependencies for admin-facing handlers.
type AdminHandler struct {
	auth         usecase.AuthUsecase
	fulfillment  usecase.FulfillmentUsecase
	tokenService service.TokenService
	cfg          *config.Config
	logger       *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(
	auth usecase.AuthUsecase,
	fulfillment usecase.FulfillmentUsecase,
	tokenService service.TokenService,
	cfg *config.Config,
	logger *slog.Logger,
) *AdminHandler {
	return &AdminHandler{
		auth:         auth,
		fulfillment:  fulfillment,
		tokenService: tokenService,
		cfg:          cfg,
		logger:       logger,
	}
}

// Signup handles admin registration.
func (h *AdminHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signup input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	admin, err := h.auth.SignupAdmin(c.Request().Context(), &usecase.SignupInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newAdminResponse(admin), "Signup succeeded")
}

// Login handles admin login and sets the session cookie.
func (h *AdminHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.auth.LoginAdmin(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	c.SetCookie(sessionCookie(h.cfg, output.Token, h.tokenService.TokenDuration()))

	return response.Success(c, http.StatusOK, LoginResponse{
		Token: output.Token,
		User:  newAdminResponse(output.Admin),
	}, "Login successful")
}

// Logout clears the admin session cookie.
func (h *AdminHandler) Logout(c echo.Context) error {
	c.SetCookie(expiredSessionCookie(h.cfg))

	return response.Success(c, http.StatusOK, nil, "Logged out successfully")
}

// ListItems returns the admin's own listings.
func (h *AdminHandler) ListItems(c echo.Context) error {
	adminID, ok := principalID(c, middleware.ContextKeyAdminID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid admin ID in token")
	}

	items, err := h.fulfillment.ListAdminItems(c.Request().Context(), adminID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newItemResponses(items), "Items retrieved successfully")
}

// GetPurchaseReport returns every sale of the admin's listings with
// buyer identity and revenue totals.
func (h *AdminHandler) GetPurchaseReport(c echo.Context) error {
	adminID, ok := principalID(c, middleware.ContextKeyAdminID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid admin ID in token")
	}

	report, err := h.fulfillment.GetPurchaseReport(c.Request().Context(), adminID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newPurchaseReportResponse(report), "Purchases retrieved successfully")
}

// UpdateDelivered flips the delivered flag on an order against one of
// the admin's own items.
func (h *AdminHandler) UpdateDelivered(c echo.Context) error {
	adminID, ok := principalID(c, middleware.ContextKeyAdminID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid admin ID in token")
	}

	orderID, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order ID")
	}

	var req updateDeliveredRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid delivered input")
	}

	order, err := h.fulfillment.UpdateDelivered(c.Request().Context(), adminID, orderID, req.Delivered)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newOrderResponse(order), "Delivered status updated successfully")
}

// VerifyPickup resolves a scanned pickup code and marks the order delivered.
func (h *AdminHandler) VerifyPickup(c echo.Context) error {
	adminID, ok := principalID(c, middleware.ContextKeyAdminID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid admin ID in token")
	}

	var req verifyPickupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid pickup input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	start := time.Now()
	order, err := h.fulfillment.VerifyPickup(c.Request().Context(), adminID, req.QRData)
	if err != nil {
		return errors.WithStack(err)
	}

	h.logger.Info("Pickup verified",
		slog.String("order_id", order.ID.String()),
		slog.Duration("took", time.Since(start)),
	)

	return response.Success(c, http.StatusOK, newOrderResponse(order), "Pickup verified successfully")
}
