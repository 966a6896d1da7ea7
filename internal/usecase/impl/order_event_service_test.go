package impl

import (
	"context"
	"fmt"
	"testing"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderEventServiceFixtures struct {
	service         usecase.OrderEventUsecase
	deviceRepo      *mockRepo.MockDeviceRepository
	notificationSvc *mockSvc.MockNotificationService
}

func createTestOrderEventService(t *testing.T) orderEventServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	notificationSvc := mockSvc.NewMockNotificationService(t)

	return orderEventServiceFixtures{
		service:         NewOrderEventService(deviceRepo, notificationSvc, newDiscardLogger()),
		deviceRepo:      deviceRepo,
		notificationSvc: notificationSvc,
	}
}

func upgradeEvent(customerID uuid.UUID) *service.OrderCompletedEvent {
	return &service.OrderCompletedEvent{
		EventType:    "order.completed",
		OrderID:      uuid.NewString(),
		CustomerID:   customerID.String(),
		Total:        "5500.00",
		Currency:     testCurrency,
		PointsEarned: 5500,
		PreviousTier: string(entity.TierBronze),
		NewTier:      string(entity.TierSilver),
		TierUpgraded: true,
	}
}

func activeDevices(customerID uuid.UUID, n int) []*entity.CustomerDevice {
	devices := make([]*entity.CustomerDevice, n)
	for i := range devices {
		devices[i] = &entity.CustomerDevice{
			ID:         uuid.New(),
			CustomerID: customerID,
			FCMToken:   fmt.Sprintf("token-%d", i),
			IsActive:   true,
		}
	}

	return devices
}

func TestOrderEventService_SendsTierUpgrade(t *testing.T) {
	fx := createTestOrderEventService(t)
	ctx := context.Background()
	customerID := uuid.New()
	event := upgradeEvent(customerID)

	fx.deviceRepo.EXPECT().
		FindActiveDevicesByCustomer(ctx, customerID).
		Return(activeDevices(customerID, 2), nil)
	fx.notificationSvc.EXPECT().
		SendBatchNotification(ctx, []string{"token-0", "token-1"}, "You reached Silver", mock.Anything,
			map[string]string{"type": "tier_upgrade", "order_id": event.OrderID, "tier": "silver"}).
		Return(1, 1, []string{"token-1"}, nil)
	fx.deviceRepo.EXPECT().
		DeactivateByTokens(ctx, []string{"token-1"}).
		Return(int64(1), nil)

	require.NoError(t, fx.service.HandleOrderCompleted(ctx, event))
}

func TestOrderEventService_SkipsWithoutUpgrade(t *testing.T) {
	fx := createTestOrderEventService(t)
	event := upgradeEvent(uuid.New())
	event.TierUpgraded = false

	require.NoError(t, fx.service.HandleOrderCompleted(context.Background(), event))
}

func TestOrderEventService_DropsInvalidCustomerID(t *testing.T) {
	fx := createTestOrderEventService(t)
	event := upgradeEvent(uuid.New())
	event.CustomerID = "not-a-uuid"

	require.NoError(t, fx.service.HandleOrderCompleted(context.Background(), event))
}

func TestOrderEventService_NoDevices(t *testing.T) {
	fx := createTestOrderEventService(t)
	ctx := context.Background()
	customerID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindActiveDevicesByCustomer(ctx, customerID).
		Return(nil, nil)

	require.NoError(t, fx.service.HandleOrderCompleted(ctx, upgradeEvent(customerID)))
}

func TestOrderEventService_BatchesTokens(t *testing.T) {
	fx := createTestOrderEventService(t)
	ctx := context.Background()
	customerID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindActiveDevicesByCustomer(ctx, customerID).
		Return(activeDevices(customerID, firebaseBatchSize+3), nil)

	var batchSizes []int
	fx.notificationSvc.EXPECT().
		SendBatchNotification(ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, tokens []string, _, _ string, _ map[string]string) (int, int, []string, error) {
			batchSizes = append(batchSizes, len(tokens))

			return len(tokens), 0, nil, nil
		}).
		Times(2)

	require.NoError(t, fx.service.HandleOrderCompleted(ctx, upgradeEvent(customerID)))
	assert.Equal(t, []int{firebaseBatchSize, 3}, batchSizes)
}

func TestOrderEventService_PartialSendIsAcked(t *testing.T) {
	fx := createTestOrderEventService(t)
	ctx := context.Background()
	customerID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindActiveDevicesByCustomer(ctx, customerID).
		Return(activeDevices(customerID, firebaseBatchSize+3), nil)

	calls := 0
	fx.notificationSvc.EXPECT().
		SendBatchNotification(ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, tokens []string, _, _ string, _ map[string]string) (int, int, []string, error) {
			calls++
			if calls == 2 {
				return 0, 0, nil, errors.New("unavailable")
			}

			return len(tokens) - 1, 1, []string{"token-0"}, nil
		}).
		Times(2)
	fx.deviceRepo.EXPECT().
		DeactivateByTokens(ctx, []string{"token-0"}).
		Return(int64(1), nil)

	assert.NoError(t, fx.service.HandleOrderCompleted(ctx, upgradeEvent(customerID)))
}

func TestOrderEventService_TransientErrors(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()

	t.Run("device lookup", func(t *testing.T) {
		fx := createTestOrderEventService(t)
		fx.deviceRepo.EXPECT().
			FindActiveDevicesByCustomer(ctx, customerID).
			Return(nil, errors.New("connection reset"))

		assert.Error(t, fx.service.HandleOrderCompleted(ctx, upgradeEvent(customerID)))
	})

	t.Run("send", func(t *testing.T) {
		fx := createTestOrderEventService(t)
		fx.deviceRepo.EXPECT().
			FindActiveDevicesByCustomer(ctx, customerID).
			Return(activeDevices(customerID, 1), nil)
		fx.notificationSvc.EXPECT().
			SendBatchNotification(ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(0, 0, nil, errors.New("unavailable"))

		assert.ErrorContains(t, fx.service.HandleOrderCompleted(ctx, upgradeEvent(customerID)), "failed to send tier upgrade notification")
	})

	t.Run("deactivation failure is not retried", func(t *testing.T) {
		fx := createTestOrderEventService(t)
		fx.deviceRepo.EXPECT().
			FindActiveDevicesByCustomer(ctx, customerID).
			Return(activeDevices(customerID, 1), nil)
		fx.notificationSvc.EXPECT().
			SendBatchNotification(ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(0, 1, []string{"token-0"}, nil)
		fx.deviceRepo.EXPECT().
			DeactivateByTokens(ctx, []string{"token-0"}).
			Return(int64(0), errors.New("deadlock"))

		assert.NoError(t, fx.service.HandleOrderCompleted(ctx, upgradeEvent(customerID)))
	})
}

func TestTierLabel(t *testing.T) {
	assert.Equal(t, "Platinum", tierLabel(entity.TierPlatinum))
	assert.Equal(t, "", tierLabel(""))
}
