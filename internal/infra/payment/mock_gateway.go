// Package payment contains payment gateway adapters.
package payment

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

const declineReasonSimulated = "simulated decline"

// MockGateway approves or declines charges at a configured rate after a simulated delay.
// Randomness comes from an injected source so runs can be reproduced.
type MockGateway struct {
	failureRate float64
	delay       time.Duration
	logger      *slog.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

// NewMockGateway builds a gateway drawing decisions from src.
func NewMockGateway(failureRate float64, delay time.Duration, src rand.Source, logger *slog.Logger) *MockGateway {
	return &MockGateway{
		failureRate: min(max(failureRate, 0), 1),
		delay:       delay,
		logger:      logger,
		rng:         rand.New(src),
	}
}

// NewPaymentProcessor wires the mock gateway from configuration.
func NewPaymentProcessor(cfg *config.Config, logger *slog.Logger) service.PaymentProcessor {
	var (
		failureRate float64
		delay       time.Duration
		seed        uint64
	)
	if cfg.Payment != nil {
		failureRate = cfg.Payment.FailureRate
		delay = cfg.Payment.ProcessingDelay
		seed = cfg.Payment.Seed
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	logger.Info("Using mock payment gateway",
		slog.Float64("failure_rate", failureRate),
		slog.Duration("delay", delay),
	)

	return NewMockGateway(failureRate, delay, rand.NewPCG(seed, seed>>1|1), logger)
}

// Charge waits for the configured delay, then samples approval.
func (g *MockGateway) Charge(ctx context.Context, req *service.ChargeRequest) (*service.ChargeResult, error) {
	if req == nil || !req.Amount.IsPositive() {
		return nil, errors.New("charge amount must be positive")
	}

	if g.delay > 0 {
		timer := time.NewTimer(g.delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return nil, errors.WithStack(ctx.Err())
		case <-timer.C:
		}
	}

	g.mu.Lock()
	declined := g.rng.Float64() < g.failureRate
	g.mu.Unlock()

	if declined {
		g.logger.Info("Mock payment declined",
			slog.String("order_id", req.OrderID.String()),
			slog.String("method", string(req.Method)),
		)

		return &service.ChargeResult{Approved: false, DeclineReason: declineReasonSimulated}, nil
	}

	return &service.ChargeResult{
		Approved:  true,
		Reference: "mock_" + uuid.NewString(),
	}, nil
}
