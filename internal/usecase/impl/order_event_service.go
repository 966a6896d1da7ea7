package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Firebase batch size limit
const firebaseBatchSize = 500

type orderEventService struct {
	deviceRepo      repository.DeviceRepository
	notificationSvc service.NotificationService
	logger          *slog.Logger
}

// NewOrderEventService creates a new order event service instance
func NewOrderEventService(
	deviceRepo repository.DeviceRepository,
	notificationSvc service.NotificationService,
	logger *slog.Logger,
) usecase.OrderEventUsecase {
	return &orderEventService{
		deviceRepo:      deviceRepo,
		notificationSvc: notificationSvc,
		logger:          logger,
	}
}

func (s *orderEventService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// HandleOrderCompleted pushes a tier-upgrade notice to the customer's active devices.
// Returned errors are transient and should be retried.
func (s *orderEventService) HandleOrderCompleted(ctx context.Context, event *service.OrderCompletedEvent) error {
	logger := s.log(ctx).With(slog.String("order_id", event.OrderID))

	if !event.TierUpgraded {
		logger.Debug("No tier change, nothing to notify")

		return nil
	}

	customerID, err := uuid.Parse(event.CustomerID)
	if err != nil {
		logger.Warn("Dropping event with invalid customer ID", slog.String("customer_id", event.CustomerID))

		return nil
	}

	devices, err := s.deviceRepo.FindActiveDevicesByCustomer(ctx, customerID)
	if err != nil {
		return errors.Wrap(err, "failed to fetch devices")
	}
	if len(devices) == 0 {
		logger.Info("Customer has no active devices")

		return nil
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
	}

	tier := entity.Tier(event.NewTier)
	title := "You reached " + tierLabel(tier)
	body := "Your purchases now earn more points per rand."
	data := map[string]string{
		"type":     "tier_upgrade",
		"order_id": event.OrderID,
		"tier":     tier.String(),
	}

	var totalSent, totalFailed int
	var invalidTokens []string
	for start := 0; start < len(tokens); start += firebaseBatchSize {
		end := min(start+firebaseBatchSize, len(tokens))

		sent, failed, invalid, err := s.notificationSvc.SendBatchNotification(ctx, tokens[start:end], title, body, data)
		if err != nil {
			// Nothing reached the customer yet, so a redelivery is safe
			if start == 0 {
				return errors.Wrap(err, "failed to send tier upgrade notification")
			}

			// A redelivery would push the earlier batches a second time
			logger.Warn("Tier upgrade notification partially sent",
				slog.Int("unsent", len(tokens)-start),
				slog.Any("error", err),
			)

			break
		}
		totalSent += sent
		totalFailed += failed
		invalidTokens = append(invalidTokens, invalid...)
	}

	if len(invalidTokens) > 0 {
		deactivated, err := s.deviceRepo.DeactivateByTokens(ctx, invalidTokens)
		if err != nil {
			logger.Warn("Failed to deactivate invalid tokens", slog.Any("error", err))
		} else {
			logger.Info("Deactivated invalid device tokens", slog.Int64("count", deactivated))
		}
	}

	logger.Info("Tier upgrade notification sent",
		slog.String("tier", tier.String()),
		slog.Int("sent", totalSent),
		slog.Int("failed", totalFailed),
	)

	return nil
}

// tierLabel capitalizes an ASCII tier name.
func tierLabel(tier entity.Tier) string {
	name := tier.String()
	if name == "" {
		return name
	}

	return strings.ToUpper(name[:1]) + name[1:]
}
