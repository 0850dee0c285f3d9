// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"campuskart/config"
	"campuskart/internal/domain/entity"
	"campuskart/internal/domain/service"
	"campuskart/internal/errors"
)

const defaultTokenTTL = 24 * time.Hour

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// Buyer and admin sessions are signed with separate secrets, so a token issued
// for one principal kind never validates as the other.
type jwtService struct {
	buyerSecret string
	adminSecret string
	tokenTTL    time.Duration
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Buyer == "" || cfg.SecretKey.Admin == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	ttl := defaultTokenTTL
	if cfg.Auth != nil && cfg.Auth.TokenTTL > 0 {
		ttl = cfg.Auth.TokenTTL
	}

	return &jwtService{
		buyerSecret: cfg.SecretKey.Buyer,
		adminSecret: cfg.SecretKey.Admin,
		tokenTTL:    ttl,
	}, nil
}

// GenerateToken creates a new session token for the given principal.
func (s *jwtService) GenerateToken(principalID uuid.UUID, kind entity.PrincipalKind) (string, error) {
	secret, err := s.secretFor(kind)
	if err != nil {
		return "", err
	}

	now := time.Now()
	claims := &service.Claims{
		PrincipalID: principalID,
		Kind:        kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   principalID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(secret))
}

// ValidateToken checks the validity of a token string against the secret
// of the expected principal kind.
func (s *jwtService) ValidateToken(tokenString string, kind entity.PrincipalKind) (*service.Claims, error) {
	secret, err := s.secretFor(kind)
	if err != nil {
		return nil, err
	}

	token, err := jwt.ParseWithClaims(tokenString, &service.Claims{}, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*service.Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	if claims.Kind != kind {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return claims, nil
}

// TokenDuration returns the configured session token lifetime.
func (s *jwtService) TokenDuration() time.Duration {
	return s.tokenTTL
}

func (s *jwtService) secretFor(kind entity.PrincipalKind) (string, error) {
	switch kind {
	case entity.PrincipalBuyer:
		return s.buyerSecret, nil
	case entity.PrincipalAdmin:
		return s.adminSecret, nil
	default:
		return "", errors.Errorf("unknown principal kind: %s", kind)
	}
}
