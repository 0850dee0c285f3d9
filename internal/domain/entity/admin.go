package entity

import (
	"time"

	"github.com/google/uuid"
)

// Admin is an authenticated principal who lists items and fulfills orders.
// Admins are a distinct identity space from buyers: separate table,
// separate signing secret, never interchangeable.
type Admin struct {
	ID           uuid.UUID
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName returns the admin's display name for emails and summaries.
func (a *Admin) FullName() string {
	return a.FirstName + " " + a.LastName
}
