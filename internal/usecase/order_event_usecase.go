package usecase

import (
	"context"

	"storefront/internal/domain/service"
)

// OrderEventUsecase handles order events delivered to the worker
type OrderEventUsecase interface {
	// HandleOrderCompleted notifies the customer's devices about a tier upgrade
	HandleOrderCompleted(ctx context.Context, event *service.OrderCompletedEvent) error
}
