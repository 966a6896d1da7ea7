package service

import (
	"context"
	"time"
)

// OrderCompletedEvent is published after a checkout commits.
// The worker uses it to notify customers about tier upgrades.
type OrderCompletedEvent struct {
	RequestID    string    `json:"request_id,omitempty"` // For distributed tracing
	EventType    string    `json:"event_type"`
	OrderID      string    `json:"order_id"`
	CustomerID   string    `json:"customer_id"`
	Total        string    `json:"total"` // Decimal string
	Currency     string    `json:"currency"`
	PointsEarned int64     `json:"points_earned"`
	PreviousTier string    `json:"previous_tier"`
	NewTier      string    `json:"new_tier"`
	TierUpgraded bool      `json:"tier_upgraded"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderCompleted publishes an order completion for async processing
	PublishOrderCompleted(ctx context.Context, event *OrderCompletedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
