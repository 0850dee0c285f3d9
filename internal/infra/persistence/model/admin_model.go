package model

import (
	"time"

	"github.com/google/uuid"
)

// AdminModel mirrors the 'admins' table. Admins are the sellers of the
// marketplace and are kept entirely separate from buyers.
type AdminModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	FirstName    string    `gorm:"type:varchar(100);not null"`
	LastName     string    `gorm:"type:varchar(100);not null"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Items []ItemModel `gorm:"foreignKey:CreatorID"`
}

// TableName explicitly sets the table name for GORM.
func (AdminModel) TableName() string {
	return "admins"
}
