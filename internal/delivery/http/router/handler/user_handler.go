// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"campuskart/config"
	"campuskart/internal/delivery/http/middleware"
	"campuskart/internal/delivery/http/response"
	"campuskart/internal/domain/service"
	"campuskart/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// signupRequest carries the registration payload, shared by buyers and
// admins. The campus email pattern is enforced in the usecase so the
// rule stays configurable.
type signupRequest struct {
	FirstName string `json:"firstName" validate:"required,min=3"`
	LastName  string `json:"lastName"  validate:"required,min=3"`
	Email     string `json:"email"     validate:"required,email"`
	Password  string `json:"password"  validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserHandler holds dependencies for buyer-facing handlers.
type UserHandler struct {
	auth         usecase.AuthUsecase
	purchases    usecase.PurchasesUsecase
	tokenService service.TokenService
	cfg          *config.Config
	logger       *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(
	auth usecase.AuthUsecase,
	purchases usecase.PurchasesUsecase,
	tokenService service.TokenService,
	cfg *config.Config,
	logger *slog.Logger,
) *UserHandler {
	return &UserHandler{
		auth:         auth,
		purchases:    purchases,
		tokenService: tokenService,
		cfg:          cfg,
		logger:       logger,
	}
}

// Signup handles buyer registration.
func (h *UserHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signup input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	buyer, err := h.auth.SignupBuyer(c.Request().Context(), &usecase.SignupInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newBuyerResponse(buyer), "Signup succeeded")
}

// Login handles buyer login and sets the session cookie.
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.auth.LoginBuyer(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	c.SetCookie(sessionCookie(h.cfg, output.Token, h.tokenService.TokenDuration()))

	return response.Success(c, http.StatusOK, LoginResponse{
		Token: output.Token,
		User:  newBuyerResponse(output.Buyer),
	}, "Login successful")
}

// Logout clears the buyer session cookie. The token itself stays valid
// until it expires; logout is purely a client-side affair.
func (h *UserHandler) Logout(c echo.Context) error {
	c.SetCookie(expiredSessionCookie(h.cfg))

	return response.Success(c, http.StatusOK, nil, "Logged out successfully")
}

// ListPurchases returns everything the buyer has bought.
func (h *UserHandler) ListPurchases(c echo.Context) error {
	buyerID, ok := principalID(c, middleware.ContextKeyBuyerID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid buyer ID in token")
	}

	output, err := h.purchases.ListPurchases(c.Request().Context(), buyerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"purchases": newPurchaseResponses(output.Purchases),
		"items":     newItemResponses(output.Items),
	}, "Purchases retrieved successfully")
}

// ListAwaitingPickup returns bought items whose order is not yet delivered.
func (h *UserHandler) ListAwaitingPickup(c echo.Context) error {
	buyerID, ok := principalID(c, middleware.ContextKeyBuyerID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid buyer ID in token")
	}

	entries, err := h.purchases.ListAwaitingPickup(c.Request().Context(), buyerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newOrderedItemResponses(entries), "Awaiting pickup retrieved successfully")
}

// ListReceivedItems returns bought items whose order has been delivered.
func (h *UserHandler) ListReceivedItems(c echo.Context) error {
	buyerID, ok := principalID(c, middleware.ContextKeyBuyerID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid buyer ID in token")
	}

	entries, err := h.purchases.ListReceivedItems(c.Request().Context(), buyerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newOrderedItemResponses(entries), "Received items retrieved successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
