package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel mirrors the 'orders' table. BuyerID and ItemID are stored as
// plain strings because orders record the checkout submission verbatim,
// without referential enforcement against buyers or items.
type OrderModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email     string          `gorm:"type:varchar(255);not null"`
	BuyerID   string          `gorm:"type:varchar(255);not null;index"`
	ItemID    string          `gorm:"type:varchar(255);not null;index"`
	PaymentID string          `gorm:"type:varchar(255);not null"`
	Amount    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status    string          `gorm:"type:varchar(50);not null"`
	Phone     string          `gorm:"type:varchar(50);not null"`
	Address   string          `gorm:"type:text;not null"`
	Delivered bool            `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
