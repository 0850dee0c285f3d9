package auth

import (
	"testing"
	"time"

	"campuskart/config"
	"campuskart/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testJWTConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Buyer = "test_buyer_secret_key_very_long_for_testing"
	cfg.SecretKey.Admin = "test_admin_secret_key_very_long_for_testing"
	cfg.Auth = &config.AuthConfig{TokenTTL: 24 * time.Hour}

	return cfg
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	jwtService, err := NewJWTService(testJWTConfig())
	assert.NoError(t, err)
	assert.NotNil(t, jwtService)

	buyerID := uuid.New()

	token, err := jwtService.GenerateToken(buyerID, entity.PrincipalBuyer)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token, entity.PrincipalBuyer)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, buyerID, claims.PrincipalID)
	assert.Equal(t, entity.PrincipalBuyer, claims.Kind)
	assert.Equal(t, buyerID.String(), claims.Subject)
}

func TestJWTService_KindSecretsAreIsolated(t *testing.T) {
	jwtService, err := NewJWTService(testJWTConfig())
	assert.NoError(t, err)

	// A buyer token must not validate against the admin secret.
	buyerToken, err := jwtService.GenerateToken(uuid.New(), entity.PrincipalBuyer)
	assert.NoError(t, err)

	claims, err := jwtService.ValidateToken(buyerToken, entity.PrincipalAdmin)
	assert.Error(t, err)
	assert.Nil(t, claims)

	// And the other way around.
	adminToken, err := jwtService.GenerateToken(uuid.New(), entity.PrincipalAdmin)
	assert.NoError(t, err)

	claims, err = jwtService.ValidateToken(adminToken, entity.PrincipalBuyer)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(testJWTConfig())
	assert.NoError(t, err)

	invalidToken := "clearly-not-a-jwt-token-format"
	claims, err := jwtService.ValidateToken(invalidToken, entity.PrincipalBuyer)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_UnknownPrincipalKind(t *testing.T) {
	jwtService, err := NewJWTService(testJWTConfig())
	assert.NoError(t, err)

	token, err := jwtService.GenerateToken(uuid.New(), entity.PrincipalKind("merchant"))
	assert.Error(t, err)
	assert.Empty(t, token)
	assert.Contains(t, err.Error(), "unknown principal kind")
}

func TestJWTService_EmptySecrets(t *testing.T) {
	cfg := &config.Config{}

	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secrets must be provided")
}

func TestJWTService_TokenDuration(t *testing.T) {
	jwtService, err := NewJWTService(testJWTConfig())
	assert.NoError(t, err)

	assert.Equal(t, 24*time.Hour, jwtService.TokenDuration())
}

func TestJWTService_DefaultTokenDuration(t *testing.T) {
	cfg := testJWTConfig()
	cfg.Auth = nil

	jwtService, err := NewJWTService(cfg)
	assert.NoError(t, err)

	assert.Equal(t, defaultTokenTTL, jwtService.TokenDuration())
}
