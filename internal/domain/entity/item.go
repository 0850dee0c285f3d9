package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ItemImage references the stored listing photo: the blob key inside the
// bucket and the public URL handed to clients and emails.
type ItemImage struct {
	Key string `json:"public_id"`
	URL string `json:"url"`
}

// Item is a single-unit second-hand good listed by exactly one admin.
// Price is expressed in whole currency units; conversion to gateway minor
// units happens only at the payment-gateway boundary.
type Item struct {
	ID          uuid.UUID
	Title       string
	Description string
	Price       decimal.Decimal
	Image       ItemImage
	CreatorID   uuid.UUID // The admin who listed this item.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
