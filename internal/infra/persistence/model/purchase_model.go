package model

import (
	"time"

	"github.com/google/uuid"
)

// PurchaseModel mirrors the 'purchases' table. The unique index on item_id
// enforces single-unit inventory at the database level: once an item is
// sold, a second purchase row can never be inserted.
type PurchaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	BuyerID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ItemID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PurchaseModel) TableName() string {
	return "purchases"
}
