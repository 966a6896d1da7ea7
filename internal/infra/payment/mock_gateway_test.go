package payment

import (
	"context"
	"io"
	"log/slog"
	"math/rand/v2"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func chargeRequest() *service.ChargeRequest {
	return &service.ChargeRequest{
		OrderID:    uuid.New(),
		CustomerID: uuid.New(),
		Amount:     decimal.RequireFromString("1500.00"),
		Currency:   "ZAR",
		Method:     entity.PaymentMethodCard,
	}
}

func TestMockGateway_AlwaysApproves(t *testing.T) {
	gw := NewMockGateway(0, 0, rand.NewPCG(1, 2), discardLogger())

	for range 20 {
		res, err := gw.Charge(context.Background(), chargeRequest())
		require.NoError(t, err)
		assert.True(t, res.Approved)
		assert.NotEmpty(t, res.Reference)
	}
}

func TestMockGateway_AlwaysDeclines(t *testing.T) {
	gw := NewMockGateway(1, 0, rand.NewPCG(1, 2), discardLogger())

	res, err := gw.Charge(context.Background(), chargeRequest())
	require.NoError(t, err)
	assert.False(t, res.Approved)
	assert.Empty(t, res.Reference)
	assert.Equal(t, declineReasonSimulated, res.DeclineReason)
}

func TestMockGateway_SameSeedSameOutcomes(t *testing.T) {
	outcomes := func() []bool {
		gw := NewMockGateway(0.5, 0, rand.NewPCG(42, 7), discardLogger())
		out := make([]bool, 0, 32)
		for range 32 {
			res, err := gw.Charge(context.Background(), chargeRequest())
			require.NoError(t, err)
			out = append(out, res.Approved)
		}

		return out
	}

	assert.Equal(t, outcomes(), outcomes())
}

func TestMockGateway_RespectsCancellation(t *testing.T) {
	gw := NewMockGateway(0, time.Minute, rand.NewPCG(1, 2), discardLogger())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := gw.Charge(ctx, chargeRequest())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMockGateway_RejectsNonPositiveAmount(t *testing.T) {
	gw := NewMockGateway(0, 0, rand.NewPCG(1, 2), discardLogger())
	req := chargeRequest()
	req.Amount = decimal.Zero

	_, err := gw.Charge(context.Background(), req)
	assert.Error(t, err)
}
