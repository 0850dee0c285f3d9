package handler

import (
	"net/http"
	"time"

	"campuskart/config"
	"campuskart/internal/delivery/http/middleware"
	"campuskart/internal/domain/entity"
	"campuskart/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Entities are never serialized directly; the response models below
// control the wire shape and keep password hashes out of the payload.

// AccountResponse is the public view of a buyer or admin account.
type AccountResponse struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

func newBuyerResponse(buyer *entity.Buyer) AccountResponse {
	return AccountResponse{
		ID:        buyer.ID.String(),
		FirstName: buyer.FirstName,
		LastName:  buyer.LastName,
		Email:     buyer.Email,
		CreatedAt: buyer.CreatedAt,
	}
}

func newAdminResponse(admin *entity.Admin) AccountResponse {
	return AccountResponse{
		ID:        admin.ID.String(),
		FirstName: admin.FirstName,
		LastName:  admin.LastName,
		Email:     admin.Email,
		CreatedAt: admin.CreatedAt,
	}
}

// LoginResponse carries the session token alongside the account so
// non-browser clients can use the bearer header instead of the cookie.
type LoginResponse struct {
	Token string          `json:"token"`
	User  AccountResponse `json:"user"`
}

// ItemResponse is the public view of a listing.
type ItemResponse struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Price       decimal.Decimal  `json:"price"`
	Image       entity.ItemImage `json:"image"`
	CreatorID   string           `json:"creatorId"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

func newItemResponse(item *entity.Item) ItemResponse {
	return ItemResponse{
		ID:          item.ID.String(),
		Title:       item.Title,
		Description: item.Description,
		Price:       item.Price,
		Image:       item.Image,
		CreatorID:   item.CreatorID.String(),
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

func newItemResponses(items []*entity.Item) []ItemResponse {
	out := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, newItemResponse(item))
	}

	return out
}

// CatalogItemResponse decorates a listing with its sold state.
type CatalogItemResponse struct {
	ItemResponse
	IsPurchased bool    `json:"isPurchased"`
	PurchasedBy *string `json:"purchasedBy,omitempty"`
}

func newCatalogItemResponse(item *usecase.CatalogItem) CatalogItemResponse {
	out := CatalogItemResponse{
		ItemResponse: newItemResponse(item.Item),
		IsPurchased:  item.IsPurchased,
	}
	if item.PurchasedBy != nil {
		buyerID := item.PurchasedBy.String()
		out.PurchasedBy = &buyerID
	}

	return out
}

// PurchaseResponse is the public view of a claim record.
type PurchaseResponse struct {
	ID        string    `json:"id"`
	BuyerID   string    `json:"userId"`
	ItemID    string    `json:"itemId"`
	CreatedAt time.Time `json:"createdAt"`
}

func newPurchaseResponses(purchases []*entity.Purchase) []PurchaseResponse {
	out := make([]PurchaseResponse, 0, len(purchases))
	for _, purchase := range purchases {
		out = append(out, PurchaseResponse{
			ID:        purchase.ID.String(),
			BuyerID:   purchase.BuyerID.String(),
			ItemID:    purchase.ItemID.String(),
			CreatedAt: purchase.CreatedAt,
		})
	}

	return out
}

// OrderResponse is the public view of a checkout record.
type OrderResponse struct {
	ID        string          `json:"id"`
	Email     string          `json:"email"`
	BuyerID   string          `json:"userId"`
	ItemID    string          `json:"itemId"`
	PaymentID string          `json:"paymentId"`
	Amount    decimal.Decimal `json:"amount"`
	Status    string          `json:"status"`
	Phone     string          `json:"phone"`
	Address   string          `json:"address"`
	Delivered bool            `json:"delivered"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

func newOrderResponse(order *entity.Order) OrderResponse {
	return OrderResponse{
		ID:        order.ID.String(),
		Email:     order.Email,
		BuyerID:   order.BuyerID,
		ItemID:    order.ItemID,
		PaymentID: order.PaymentID,
		Amount:    order.Amount,
		Status:    order.Status,
		Phone:     order.Phone,
		Address:   order.Address,
		Delivered: order.Delivered,
		CreatedAt: order.CreatedAt,
		UpdatedAt: order.UpdatedAt,
	}
}

// OrderedItemResponse pairs a bought item with its order for the
// awaiting-pickup and received views.
type OrderedItemResponse struct {
	Item  ItemResponse  `json:"item"`
	Order OrderResponse `json:"order"`
}

func newOrderedItemResponses(entries []*usecase.OrderedItem) []OrderedItemResponse {
	out := make([]OrderedItemResponse, 0, len(entries))
	for _, entry := range entries {
		out = append(out, OrderedItemResponse{
			Item:  newItemResponse(entry.Item),
			Order: newOrderResponse(entry.Order),
		})
	}

	return out
}

// principalID reads the authenticated principal set by the auth
// middleware for the given context key.
func principalID(c echo.Context, contextKey string) (uuid.UUID, bool) {
	id, ok := c.Get(contextKey).(uuid.UUID)

	return id, ok
}

// sessionCookie builds the HttpOnly session cookie set at login.
func sessionCookie(cfg *config.Config, token string, maxAge time.Duration) *http.Cookie {
	cookie := &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	}
	if cfg.Auth != nil {
		cookie.Secure = cfg.Auth.CookieSecure
		cookie.Domain = cfg.Auth.CookieDomain
	}

	return cookie
}

// expiredSessionCookie builds the cookie that clears the session at logout.
func expiredSessionCookie(cfg *config.Config) *http.Cookie {
	cookie := sessionCookie(cfg, "", 0)
	cookie.MaxAge = -1

	return cookie
}
