package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"campuskart/internal/domain/entity"
	"campuskart/internal/domain/service"
	mocksservice "campuskart/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestContext(t *testing.T, configure func(*http.Request)) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/user/purchases", nil)
	if configure != nil {
		configure(req)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func newTestAuthMiddleware(t *testing.T) (*AuthMiddleware, *mocksservice.MockTokenService) {
	t.Helper()

	tokenService := mocksservice.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewAuthMiddleware(tokenService, logger), tokenService
}

func TestAuthenticateBuyer_CookieToken(t *testing.T) {
	m, tokenService := newTestAuthMiddleware(t)

	buyerID := uuid.New()
	tokenService.EXPECT().
		ValidateToken("cookie-token", entity.PrincipalBuyer).
		Return(&service.Claims{PrincipalID: buyerID, Kind: entity.PrincipalBuyer}, nil)

	c, _ := newAuthTestContext(t, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "cookie-token"})
	})

	var nextCalled bool
	err := m.AuthenticateBuyer(func(c echo.Context) error {
		nextCalled = true

		return nil
	})(c)

	require.NoError(t, err)
	assert.True(t, nextCalled)
	assert.Equal(t, buyerID, c.Get(ContextKeyBuyerID))
}

func TestAuthenticateBuyer_BearerFallback(t *testing.T) {
	m, tokenService := newTestAuthMiddleware(t)

	buyerID := uuid.New()
	tokenService.EXPECT().
		ValidateToken("bearer-token", entity.PrincipalBuyer).
		Return(&service.Claims{PrincipalID: buyerID, Kind: entity.PrincipalBuyer}, nil)

	c, _ := newAuthTestContext(t, func(req *http.Request) {
		req.Header.Set(echo.HeaderAuthorization, "Bearer bearer-token")
	})

	err := m.AuthenticateBuyer(func(c echo.Context) error {
		return nil
	})(c)

	require.NoError(t, err)
	assert.Equal(t, buyerID, c.Get(ContextKeyBuyerID))
}

func TestAuthenticateBuyer_MissingToken(t *testing.T) {
	m, _ := newTestAuthMiddleware(t)

	c, _ := newAuthTestContext(t, nil)

	err := m.AuthenticateBuyer(func(c echo.Context) error {
		t.Fatal("next handler must not run without a token")

		return nil
	})(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestAuthenticateAdmin_RejectsBuyerToken(t *testing.T) {
	m, tokenService := newTestAuthMiddleware(t)

	tokenService.EXPECT().
		ValidateToken("buyer-token", entity.PrincipalAdmin).
		Return(nil, errors.New("token signed for another principal kind"))

	c, _ := newAuthTestContext(t, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "buyer-token"})
	})

	err := m.AuthenticateAdmin(func(c echo.Context) error {
		t.Fatal("next handler must not run with an invalid token")

		return nil
	})(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	assert.Nil(t, c.Get(ContextKeyAdminID))
}

func TestExtractToken_PrefersCookieOverHeader(t *testing.T) {
	c, _ := newAuthTestContext(t, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "cookie-token"})
		req.Header.Set(echo.HeaderAuthorization, "Bearer bearer-token")
	})

	assert.Equal(t, "cookie-token", extractToken(c))
}

func TestExtractToken_IgnoresMalformedHeader(t *testing.T) {
	c, _ := newAuthTestContext(t, func(req *http.Request) {
		req.Header.Set(echo.HeaderAuthorization, "Token something-else")
	})

	assert.Empty(t, extractToken(c))
}
