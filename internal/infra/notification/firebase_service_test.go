package notification

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNotificationService_FallsBackToLogOnly(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	for _, cfg := range []*config.FirebaseConfig{nil, {}} {
		svc, err := NewNotificationService(Params{
			Ctx:    context.Background(),
			Config: &config.Config{Firebase: cfg},
			Logger: logger,
		})
		require.NoError(t, err)
		assert.IsType(t, &logOnlyService{}, svc)
	}
}

func TestLogOnlyService_ReportsAllDelivered(t *testing.T) {
	svc := NewLogOnlyService(slog.New(slog.NewTextHandler(io.Discard, nil)))

	success, failure, invalid, err := svc.SendBatchNotification(context.Background(), []string{"a", "b"}, "title", "body", nil)
	require.NoError(t, err)
	assert.Equal(t, 2, success)
	assert.Zero(t, failure)
	assert.Empty(t, invalid)

	require.NoError(t, svc.SendSingleNotification(context.Background(), "a", "title", "body", nil))
}
