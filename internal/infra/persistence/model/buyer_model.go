package model

import (
	"time"

	"github.com/google/uuid"
)

// BuyerModel mirrors the 'buyers' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type BuyerModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	FirstName    string    `gorm:"type:varchar(100);not null"`
	LastName     string    `gorm:"type:varchar(100);not null"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (BuyerModel) TableName() string {
	return "buyers"
}
