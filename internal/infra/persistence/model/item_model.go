package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ItemModel mirrors the 'items' table.
type ItemModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Title       string          `gorm:"type:varchar(255);not null"`
	Description string          `gorm:"type:text;not null"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	ImageKey    string          `gorm:"type:varchar(255);not null"`
	ImageURL    string          `gorm:"type:varchar(1024);not null"`
	CreatorID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ItemModel) TableName() string {
	return "items"
}
