package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/availability"
	"storefront/internal/domain/catalog"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/loyalty"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const (
	defaultOrderPageSize = 20
	maxOrderPageSize     = 100
	maxIdempotencyKeyLen = 128
)

// checkoutService implements the CheckoutUsecase interface.
type checkoutService struct {
	txManager    repository.TransactionManager
	orderRepo    repository.OrderRepository
	locationRepo repository.LocationRepository
	catalog      *catalog.Catalog
	cart         usecase.CartUsecase
	payment      service.PaymentProcessor
	publisher    service.EventPublisher
	qrcode       service.QRCodeService
	currency     string
	logger       *slog.Logger
}

// CheckoutServiceParams holds dependencies for CheckoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	OrderRepo    repository.OrderRepository
	LocationRepo repository.LocationRepository
	Catalog      *catalog.Catalog
	Cart         usecase.CartUsecase
	Payment      service.PaymentProcessor
	Publisher    service.EventPublisher
	QRCode       service.QRCodeService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	currency := ""
	if params.Config != nil && params.Config.Catalog != nil {
		currency = params.Config.Catalog.Currency
	}

	return &checkoutService{
		txManager:    params.TxManager,
		orderRepo:    params.OrderRepo,
		locationRepo: params.LocationRepo,
		catalog:      params.Catalog,
		cart:         params.Cart,
		payment:      params.Payment,
		publisher:    params.Publisher,
		qrcode:       params.QRCode,
		currency:     currency,
		logger:       params.Logger,
	}
}

func (srv *checkoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Checkout charges the cart and records a completed order.
//
// Payment happens before the order transaction; a declined charge leaves no
// trace. Points use the tier held before this purchase.
func (srv *checkoutService) Checkout(ctx context.Context, customerID uuid.UUID, input *usecase.CheckoutInput) (*usecase.CheckoutResult, error) {
	if err := validateCheckoutInput(input); err != nil {
		return nil, err
	}

	if replay, err := srv.findReplay(ctx, customerID, input); replay != nil || err != nil {
		return replay, err
	}

	cart, err := srv.cart.GetCart(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, domainerrors.ErrCartEmpty
	}

	orderID := uuid.New()
	items, total, err := srv.resolveItems(ctx, customerID, orderID, cart.Items, input.Fulfilment)
	if err != nil {
		return nil, err
	}

	charge, err := srv.payment.Charge(ctx, &service.ChargeRequest{
		OrderID:        orderID,
		CustomerID:     customerID,
		Amount:         total,
		Currency:       srv.currency,
		Method:         input.PaymentMethod,
		IdempotencyKey: input.IdempotencyKey,
	})
	if err != nil {
		srv.log(ctx).Error("Payment gateway error",
			slog.String("order_id", orderID.String()),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(domainerrors.ErrPaymentUnavailable, err.Error())
	}
	if !charge.Approved {
		srv.log(ctx).Info("Payment declined",
			slog.String("order_id", orderID.String()),
			slog.String("reason", charge.DeclineReason),
		)

		return nil, domainerrors.ErrPaymentDeclined.WithDetails(charge.DeclineReason)
	}

	priorSpend, err := srv.orderRepo.SumCompletedSpend(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read completed spend")
	}
	outcome := loyalty.EvaluatePurchase(priorSpend, total)

	now := time.Now()
	order := &entity.Order{
		ID:               orderID,
		CustomerID:       customerID,
		IdempotencyKey:   input.IdempotencyKey,
		Status:           entity.OrderStatusCompleted,
		PaymentMethod:    input.PaymentMethod,
		PaymentReference: charge.Reference,
		Fulfilment:       input.Fulfilment,
		Total:            total,
		PointsEarned:     outcome.PointsEarned,
		TierAtPurchase:   outcome.PreviousTier,
		TierAfter:        outcome.NewTier,
		Items:            items,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := srv.persistOrder(ctx, order); err != nil {
		if errors.Is(err, repository.ErrDuplicateIdempotencyKey) {
			// A concurrent request with the same key won the insert
			replay, replayErr := srv.findReplay(ctx, customerID, input)
			if replay == nil && replayErr == nil {
				replayErr = errors.Wrap(domainerrors.ErrTransactionFailed, err.Error())
			}

			return replay, replayErr
		}

		srv.log(ctx).Error("Order not persisted after successful charge",
			slog.String("order_id", orderID.String()),
			slog.String("payment_reference", charge.Reference),
			slog.Any("error", err),
		)

		if errors.Is(err, repository.ErrInsufficientStock) {
			return nil, errors.Wrap(domainerrors.ErrInsufficientStock, err.Error())
		}
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}

		return nil, errors.Wrap(domainerrors.ErrTransactionFailed, err.Error())
	}

	if err := srv.cart.ClearCart(ctx, customerID); err != nil {
		srv.log(ctx).Warn("Failed to clear cart after checkout",
			slog.String("order_id", orderID.String()),
			slog.Any("error", err),
		)
	}

	srv.publishCompleted(ctx, order, outcome)

	srv.log(ctx).Info("Checkout completed",
		slog.String("order_id", orderID.String()),
		slog.String("total", total.StringFixed(2)),
		slog.Int64("points_earned", outcome.PointsEarned),
		slog.Bool("tier_upgraded", outcome.Upgraded),
	)

	return &usecase.CheckoutResult{
		Order:        order,
		PointsEarned: outcome.PointsEarned,
		PreviousTier: outcome.PreviousTier,
		NewTier:      outcome.NewTier,
		TierUpgraded: outcome.Upgraded,
	}, nil
}

func validateCheckoutInput(input *usecase.CheckoutInput) error {
	if input == nil {
		return domainerrors.ErrValidationFailed.WrapMessage("checkout input is required")
	}
	input.IdempotencyKey = strings.TrimSpace(input.IdempotencyKey)
	if input.IdempotencyKey == "" || len(input.IdempotencyKey) > maxIdempotencyKeyLen {
		return domainerrors.ErrValidationFailed.WithDetails("idempotency key must be 1-128 characters")
	}
	if !input.PaymentMethod.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("unknown payment method: " + string(input.PaymentMethod))
	}
	if input.Fulfilment != entity.FulfilmentDelivery && input.Fulfilment != entity.FulfilmentCollection {
		return domainerrors.ErrValidationFailed.WithDetails("unknown fulfilment: " + string(input.Fulfilment))
	}

	return nil
}

// findReplay returns the order already placed with the same key, if any.
func (srv *checkoutService) findReplay(ctx context.Context, customerID uuid.UUID, input *usecase.CheckoutInput) (*usecase.CheckoutResult, error) {
	existing, err := srv.orderRepo.FindByIdempotencyKey(ctx, customerID, input.IdempotencyKey)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to look up idempotency key")
	}

	if existing.PaymentMethod != input.PaymentMethod || existing.Fulfilment != input.Fulfilment {
		return nil, domainerrors.ErrIdempotencyKeyReused
	}

	// Replays report the outcome recorded with the order, not today's tier
	tierAfter := existing.TierAfter
	if tierAfter == "" {
		tierAfter = existing.TierAtPurchase
	}

	srv.log(ctx).Info("Checkout replayed",
		slog.String("order_id", existing.ID.String()),
	)

	return &usecase.CheckoutResult{
		Order:        existing,
		PointsEarned: existing.PointsEarned,
		PreviousTier: existing.TierAtPurchase,
		NewTier:      tierAfter,
		TierUpgraded: tierAfter != existing.TierAtPurchase,
		Replayed:     true,
	}, nil
}

// resolveItems prices every cart line from the catalog and enforces delivery and stock.
func (srv *checkoutService) resolveItems(
	ctx context.Context,
	customerID, orderID uuid.UUID,
	lines []entity.CartLineItem,
	fulfilment entity.Fulfilment,
) ([]entity.OrderItem, decimal.Decimal, error) {
	ids := make([]string, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.ID)
	}

	found, err := srv.catalog.FindMany(ctx, ids)
	if err != nil {
		return nil, decimal.Zero, errors.Wrap(err, "failed to resolve cart items")
	}

	var location *entity.CustomerLocation
	if fulfilment == entity.FulfilmentDelivery {
		location, err = loadLocation(ctx, srv.locationRepo, customerID)
		if err != nil {
			return nil, decimal.Zero, err
		}
	}

	items := make([]entity.OrderItem, 0, len(lines))
	total := decimal.Zero
	for _, line := range lines {
		item, ok := found[line.ID]
		if !ok {
			return nil, decimal.Zero, domainerrors.ErrItemNotFound.WithDetails(line.ID)
		}

		if location != nil {
			decision := availability.Evaluate(item.Delivery, location.Address, location.Coordinate)
			if !decision.Eligible {
				return nil, decimal.Zero, availabilityError(item.ID, decision)
			}
		}

		if !item.HasStockFor(line.Quantity) {
			return nil, decimal.Zero, domainerrors.ErrInsufficientStock.WithDetails(item.ID)
		}

		orderItem := entity.OrderItem{
			ID:         uuid.New(),
			OrderID:    orderID,
			ItemID:     item.ID,
			Source:     item.Source,
			Name:       item.Name,
			UnitPrice:  item.Price,
			Quantity:   line.Quantity,
			SupplierID: item.SupplierID,
		}
		items = append(items, orderItem)
		total = total.Add(orderItem.Subtotal())
	}

	return items, total, nil
}

// persistOrder inserts the order and takes marketplace stock in one transaction.
func (srv *checkoutService) persistOrder(ctx context.Context, order *entity.Order) error {
	return srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		if err := txRepoFactory.NewOrderRepository().Create(ctx, order); err != nil {
			return err
		}

		catalogRepo := txRepoFactory.NewCatalogRepository()
		for _, item := range order.Items {
			if item.Source != entity.CatalogSourceMarketplace {
				continue
			}
			if err := catalogRepo.DecrementStock(ctx, item.ItemID, item.Quantity); err != nil {
				return errors.Wrapf(err, "listing %s", item.ItemID)
			}
		}

		return nil
	})
}

// publishCompleted is best effort; the order is already committed.
func (srv *checkoutService) publishCompleted(ctx context.Context, order *entity.Order, outcome loyalty.PurchaseOutcome) {
	event := &service.OrderCompletedEvent{
		RequestID:    deliverycontext.GetRequestIDFromContext(ctx),
		EventType:    constants.EventTypeOrderCompleted,
		OrderID:      order.ID.String(),
		CustomerID:   order.CustomerID.String(),
		Total:        order.Total.StringFixed(2),
		Currency:     srv.currency,
		PointsEarned: outcome.PointsEarned,
		PreviousTier: outcome.PreviousTier.String(),
		NewTier:      outcome.NewTier.String(),
		TierUpgraded: outcome.Upgraded,
		OccurredAt:   order.CreatedAt.UTC(),
	}

	if err := srv.publisher.PublishOrderCompleted(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish order event",
			slog.String("order_id", event.OrderID),
			slog.Any("error", err),
		)
	}
}

// GetOrder returns one of the customer's orders
func (srv *checkoutService) GetOrder(ctx context.Context, customerID, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	// Other customers' orders are reported as missing
	if order.CustomerID != customerID {
		return nil, domainerrors.ErrOrderNotFound
	}

	return order, nil
}

// ListOrders returns a page of the customer's orders, newest first
func (srv *checkoutService) ListOrders(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]*entity.Order, error) {
	if limit <= 0 {
		limit = defaultOrderPageSize
	}
	limit = min(limit, maxOrderPageSize)
	offset = max(offset, 0)

	orders, err := srv.orderRepo.ListByCustomer(ctx, customerID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// PickupQR renders the pickup code for a completed collection order
func (srv *checkoutService) PickupQR(ctx context.Context, customerID, orderID uuid.UUID) ([]byte, error) {
	order, err := srv.GetOrder(ctx, customerID, orderID)
	if err != nil {
		return nil, err
	}

	if order.Fulfilment != entity.FulfilmentCollection || order.Status != entity.OrderStatusCompleted {
		return nil, domainerrors.ErrOrderNotCollectable
	}

	png, err := srv.qrcode.GeneratePickupQR(order.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate pickup QR code")
	}

	return png, nil
}

// VerifyPickup marks a collection order as collected.
// The supplier must own at least one item in the order.
func (srv *checkoutService) VerifyPickup(ctx context.Context, supplierID uuid.UUID, qrPayload string) (*entity.Order, error) {
	orderID, err := srv.qrcode.ParsePickupQR(qrPayload)
	if err != nil {
		return nil, domainerrors.ErrPickupCodeInvalid.WithDetails(err.Error())
	}

	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	if !orderHasSupplier(order, supplierID) {
		return nil, domainerrors.ErrListingOwnership
	}
	if order.Fulfilment != entity.FulfilmentCollection || order.Status != entity.OrderStatusCompleted {
		return nil, domainerrors.ErrOrderNotCollectable
	}

	if err := srv.orderRepo.UpdateStatus(ctx, order.ID, entity.OrderStatusCompleted, entity.OrderStatusCollected); err != nil {
		if errors.Is(err, repository.ErrOrderStatusConflict) {
			return nil, domainerrors.ErrOrderNotCollectable
		}

		return nil, errors.Wrap(err, "failed to mark order collected")
	}

	order.Status = entity.OrderStatusCollected
	order.UpdatedAt = time.Now()

	srv.log(ctx).Info("Order collected",
		slog.String("order_id", order.ID.String()),
		slog.String("supplier_id", supplierID.String()),
	)

	return order, nil
}

func orderHasSupplier(order *entity.Order, supplierID uuid.UUID) bool {
	for _, item := range order.Items {
		if item.SupplierID != nil && *item.SupplierID == supplierID {
			return true
		}
	}

	return false
}
