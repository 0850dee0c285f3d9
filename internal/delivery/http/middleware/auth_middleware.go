package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"campuskart/internal/domain/entity"
	"campuskart/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// SessionCookieName is the cookie the login handlers set and the
// authentication middleware reads back.
const SessionCookieName = "jwt"

// Context keys under which the authenticated principal ID is stored.
const (
	ContextKeyBuyerID = "buyerID"
	ContextKeyAdminID = "adminID"
)

// AuthMiddleware validates session tokens. Buyer and admin tokens are
// signed with separate secrets, so each route group authenticates
// against exactly one principal kind.
type AuthMiddleware struct {
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(tokenService service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
		logger:       logger,
	}
}

// AuthenticateBuyer requires a valid buyer session token.
func (m *AuthMiddleware) AuthenticateBuyer(next echo.HandlerFunc) echo.HandlerFunc {
	return m.authenticate(entity.PrincipalBuyer, ContextKeyBuyerID, next)
}

// AuthenticateAdmin requires a valid admin session token.
func (m *AuthMiddleware) AuthenticateAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return m.authenticate(entity.PrincipalAdmin, ContextKeyAdminID, next)
}

func (m *AuthMiddleware) authenticate(kind entity.PrincipalKind, contextKey string, next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString := extractToken(c)
		if tokenString == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Missing session token")
		}

		claims, err := m.tokenService.ValidateToken(tokenString, kind)
		if err != nil {
			m.logger.Warn("Rejected session token",
				slog.String("kind", string(kind)),
				slog.Any("error", err),
			)

			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired session token")
		}

		c.Set(contextKey, claims.PrincipalID)

		return next(c)
	}
}

// extractToken prefers the session cookie and falls back to a bearer
// header for non-browser clients.
func extractToken(c echo.Context) string {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	const bearerPrefix = "Bearer "
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(authHeader, bearerPrefix) {
		return strings.TrimPrefix(authHeader, bearerPrefix)
	}

	return ""
}
