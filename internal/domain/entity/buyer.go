// Package entity contains the core business objects of the marketplace,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Buyer is an authenticated end-user who purchases items. Buyers live in
// their own table and their own token space; a buyer account has no
// relation to an admin account even when both share an email address.
type Buyer struct {
	ID           uuid.UUID // Unique identifier for the buyer.
	FirstName    string
	LastName     string
	Email        string // Campus email, used as the login identifier.
	PasswordHash string // bcrypt hash of the buyer's password.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName returns the buyer's display name for emails and summaries.
func (b *Buyer) FullName() string {
	return b.FirstName + " " + b.LastName
}
