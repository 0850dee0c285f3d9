// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"campuskart/internal/domain/entity"
)

// --- Input DTOs ---

// SignupInput defines the data required to register a new account,
// buyer or admin alike.
type SignupInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// BuyerAuthOutput returns the buyer and their session token after
// a successful login.
type BuyerAuthOutput struct {
	Token string
	Buyer *entity.Buyer
}

// AdminAuthOutput returns the admin and their session token.
type AdminAuthOutput struct {
	Token string
	Admin *entity.Admin
}

// AuthUsecase defines the interface for account registration and login.
// Buyers and admins live in separate stores and get tokens signed with
// separate secrets. Signup creates the account only; a session token is
// issued at login.
type AuthUsecase interface {
	SignupBuyer(ctx context.Context, input *SignupInput) (*entity.Buyer, error)
	LoginBuyer(ctx context.Context, input *LoginInput) (*BuyerAuthOutput, error)

	SignupAdmin(ctx context.Context, input *SignupInput) (*entity.Admin, error)
	LoginAdmin(ctx context.Context, input *LoginInput) (*AdminAuthOutput, error)
}
