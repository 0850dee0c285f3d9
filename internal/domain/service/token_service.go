package service

import (
	"time"

	"campuskart/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by a session token.
type Claims struct {
	PrincipalID uuid.UUID
	Kind        entity.PrincipalKind
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken creates a new session token for the given principal.
	// Buyer and admin tokens are signed with separate secrets so one can
	// never be replayed as the other.
	GenerateToken(principalID uuid.UUID, kind entity.PrincipalKind) (string, error)

	// ValidateToken checks the validity of a token string against the
	// secret of the expected principal kind.
	ValidateToken(tokenString string, kind entity.PrincipalKind) (*Claims, error)

	// TokenDuration returns the configured session token lifetime.
	TokenDuration() time.Duration
}
