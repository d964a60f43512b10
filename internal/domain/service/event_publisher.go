package service

import (
	"context"
)

// Order event types.
const (
	OrderEventPaid            = "order_paid"
	OrderEventDelivered       = "order_delivered"
	OrderEventTrackingUpdated = "tracking_updated"
)

// OrderEvent is published whenever the order lifecycle or its tracking
// record changes state. Consumers are downstream workers (seller dashboards,
// courier dispatch); publishing is best-effort and never blocks the order flow.
type OrderEvent struct {
	RequestID  string  `json:"request_id,omitempty"` // For distributed tracing
	Type       string  `json:"type"`
	PurchaseID string  `json:"purchase_id"`
	BuyerID    string  `json:"buyer_id"`
	StoreID    string  `json:"store_id"`
	TrackingID string  `json:"tracking_id,omitempty"`
	Status     string  `json:"status,omitempty"`
	Total      float64 `json:"total,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderEvent publishes an order lifecycle event for async processing
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
