package service

import (
	"context"
)

// OrderEvent represents a completed checkout published for async consumers.
type OrderEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	OrderID   string `json:"order_id"`
	ItemID    string `json:"item_id"`
	BuyerID   string `json:"buyer_id"`
	Amount    string `json:"amount"`
	Status    string `json:"status"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderCreated publishes an order event for async processing
	PublishOrderCreated(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
