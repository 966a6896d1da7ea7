package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// checkoutServiceFixtures holds all test dependencies for checkout service tests.
type checkoutServiceFixtures struct {
	service       usecase.CheckoutUsecase
	txManager     *mockRepo.MockTransactionManager
	txFactory     *mockRepo.MockRepositoryFactory
	txOrderRepo   *mockRepo.MockOrderRepository
	txCatalogRepo *mockRepo.MockCatalogRepository
	orderRepo     *mockRepo.MockOrderRepository
	catalogRepo   *mockRepo.MockCatalogRepository
	locationRepo  *mockRepo.MockLocationRepository
	cart          *mockUsecase.MockCartUsecase
	payment       *mockSvc.MockPaymentProcessor
	publisher     *mockSvc.MockEventPublisher
	qrcode        *mockSvc.MockQRCodeService
}

func createTestCheckoutService(t *testing.T) checkoutServiceFixtures {
	f := checkoutServiceFixtures{
		txManager:     mockRepo.NewMockTransactionManager(t),
		txFactory:     mockRepo.NewMockRepositoryFactory(t),
		txOrderRepo:   mockRepo.NewMockOrderRepository(t),
		txCatalogRepo: mockRepo.NewMockCatalogRepository(t),
		orderRepo:     mockRepo.NewMockOrderRepository(t),
		catalogRepo:   mockRepo.NewMockCatalogRepository(t),
		locationRepo:  mockRepo.NewMockLocationRepository(t),
		cart:          mockUsecase.NewMockCartUsecase(t),
		payment:       mockSvc.NewMockPaymentProcessor(t),
		publisher:     mockSvc.NewMockEventPublisher(t),
		qrcode:        mockSvc.NewMockQRCodeService(t),
	}

	f.service = NewCheckoutService(CheckoutServiceParams{
		TxManager:    f.txManager,
		OrderRepo:    f.orderRepo,
		LocationRepo: f.locationRepo,
		Catalog:      newTestCatalog(t, f.catalogRepo),
		Cart:         f.cart,
		Payment:      f.payment,
		Publisher:    f.publisher,
		QRCode:       f.qrcode,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	return f
}

func (f checkoutServiceFixtures) expectNoReplay(customerID uuid.UUID, key string) {
	f.orderRepo.EXPECT().
		FindByIdempotencyKey(mock.Anything, customerID, key).
		Return(nil, repository.ErrOrderNotFound)
}

func (f checkoutServiceFixtures) expectCart(customerID uuid.UUID, lines ...entity.CartLineItem) {
	f.cart.EXPECT().
		GetCart(mock.Anything, customerID).
		Return(&usecase.CartSummary{Items: lines}, nil)
}

func (f checkoutServiceFixtures) expectNoLocation(customerID uuid.UUID) {
	f.locationRepo.EXPECT().
		FindByCustomer(mock.Anything, customerID).
		Return(nil, repository.ErrLocationNotFound)
}

func (f checkoutServiceFixtures) expectApproved() {
	f.payment.EXPECT().
		Charge(mock.Anything, mock.Anything).
		Return(&service.ChargeResult{Approved: true, Reference: "mock_ref"}, nil)
}

// expectTransaction runs the transaction body against the tx-bound mocks.
func (f checkoutServiceFixtures) expectTransaction() {
	f.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.txFactory)
		})
	f.txFactory.EXPECT().NewOrderRepository().Return(f.txOrderRepo)
}

func cartLine(id, price string, quantity int) entity.CartLineItem {
	return entity.CartLineItem{ID: id, Name: id, Price: decimal.RequireFromString(price), Quantity: quantity}
}

func deliveryInput(key string) *usecase.CheckoutInput {
	return &usecase.CheckoutInput{
		PaymentMethod:  entity.PaymentMethodCard,
		IdempotencyKey: key,
		Fulfilment:     entity.FulfilmentDelivery,
	}
}

func TestCheckoutService_Checkout_UpgradesTierWithPreviousTierPoints(t *testing.T) {
	f := createTestCheckoutService(t)
	ctx := context.Background()
	customerID := uuid.New()

	f.expectNoReplay(customerID, "key-1")
	f.expectCart(customerID, cartLine(giftCardID, "1500.00", 1))
	f.expectNoLocation(customerID)

	f.payment.EXPECT().
		Charge(mock.Anything, mock.MatchedBy(func(req *service.ChargeRequest) bool {
			return req.Amount.Equal(decimal.NewFromInt(1500)) &&
				req.Currency == testCurrency &&
				req.Method == entity.PaymentMethodCard &&
				req.CustomerID == customerID
		})).
		Return(&service.ChargeResult{Approved: true, Reference: "mock_ref"}, nil)

	f.orderRepo.EXPECT().
		SumCompletedSpend(mock.Anything, customerID).
		Return(decimal.NewFromInt(4000), nil)

	f.expectTransaction()
	f.txOrderRepo.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(order *entity.Order) bool {
			return order.Status == entity.OrderStatusCompleted &&
				order.PointsEarned == 1500 &&
				order.TierAtPurchase == entity.TierBronze &&
				order.TierAfter == entity.TierSilver &&
				order.PaymentReference == "mock_ref" &&
				len(order.Items) == 1
		})).
		Return(nil)
	f.txFactory.EXPECT().NewCatalogRepository().Return(f.txCatalogRepo)

	f.cart.EXPECT().ClearCart(mock.Anything, customerID).Return(nil)
	f.publisher.EXPECT().
		PublishOrderCompleted(mock.Anything, mock.MatchedBy(func(e *service.OrderCompletedEvent) bool {
			return e.EventType == "order.completed" &&
				e.TierUpgraded &&
				e.PreviousTier == "bronze" &&
				e.NewTier == "silver" &&
				e.PointsEarned == 1500 &&
				e.Total == "1500.00"
		})).
		Return(nil)

	result, err := f.service.Checkout(ctx, customerID, deliveryInput("key-1"))
	require.NoError(t, err)

	assert.Equal(t, int64(1500), result.PointsEarned)
	assert.Equal(t, entity.TierBronze, result.PreviousTier)
	assert.Equal(t, entity.TierSilver, result.NewTier)
	assert.True(t, result.TierUpgraded)
	assert.False(t, result.Replayed)
	assert.True(t, result.Order.Total.Equal(decimal.NewFromInt(1500)))
}

func TestCheckoutService_Checkout_PricesFromCatalog(t *testing.T) {
	f := createTestCheckoutService(t)
	customerID := uuid.New()

	f.expectNoReplay(customerID, "key-1")
	// Stale price in the cart snapshot
	f.expectCart(customerID, cartLine(giftCardID, "999.00", 2))
	f.expectNoLocation(customerID)
	f.payment.EXPECT().
		Charge(mock.Anything, mock.MatchedBy(func(req *service.ChargeRequest) bool {
			return req.Amount.Equal(decimal.NewFromInt(3000))
		})).
		Return(&service.ChargeResult{Approved: true, Reference: "mock_ref"}, nil)
	f.orderRepo.EXPECT().SumCompletedSpend(mock.Anything, customerID).Return(decimal.Zero, nil)
	f.expectTransaction()
	f.txOrderRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	f.txFactory.EXPECT().NewCatalogRepository().Return(f.txCatalogRepo)
	f.cart.EXPECT().ClearCart(mock.Anything, customerID).Return(nil)
	f.publisher.EXPECT().PublishOrderCompleted(mock.Anything, mock.Anything).Return(nil)

	result, err := f.service.Checkout(context.Background(), customerID, deliveryInput("key-1"))
	require.NoError(t, err)
	assert.True(t, result.Order.Items[0].UnitPrice.Equal(decimal.NewFromInt(1500)))
	assert.Equal(t, int64(3000), result.PointsEarned)
}

func TestCheckoutService_Checkout_ReplaysExistingOrder(t *testing.T) {
	f := createTestCheckoutService(t)
	customerID := uuid.New()
	existing := &entity.Order{
		ID:             uuid.New(),
		CustomerID:     customerID,
		IdempotencyKey: "key-1",
		Status:         entity.OrderStatusCompleted,
		PaymentMethod:  entity.PaymentMethodCard,
		Fulfilment:     entity.FulfilmentDelivery,
		Total:          decimal.NewFromInt(1500),
		PointsEarned:   1500,
		TierAtPurchase: entity.TierBronze,
		TierAfter:      entity.TierSilver,
	}

	// Later purchases moved the customer on to Gold; the replay must not
	// consult current spend at all.
	f.orderRepo.EXPECT().
		FindByIdempotencyKey(mock.Anything, customerID, "key-1").
		Return(existing, nil)

	result, err := f.service.Checkout(context.Background(), customerID, deliveryInput("key-1"))
	require.NoError(t, err)

	assert.True(t, result.Replayed)
	assert.Equal(t, existing.ID, result.Order.ID)
	assert.Equal(t, int64(1500), result.PointsEarned)
	assert.Equal(t, entity.TierBronze, result.PreviousTier)
	assert.Equal(t, entity.TierSilver, result.NewTier)
	assert.True(t, result.TierUpgraded)
}

func TestCheckoutService_Checkout_ReplayOfOrderWithoutRecordedOutcome(t *testing.T) {
	f := createTestCheckoutService(t)
	customerID := uuid.New()
	existing := &entity.Order{
		ID:             uuid.New(),
		CustomerID:     customerID,
		IdempotencyKey: "key-1",
		Status:         entity.OrderStatusCompleted,
		PaymentMethod:  entity.PaymentMethodCard,
		Fulfilment:     entity.FulfilmentDelivery,
		Total:          decimal.NewFromInt(200),
		PointsEarned:   400,
		TierAtPurchase: entity.TierGold,
	}

	f.orderRepo.EXPECT().
		FindByIdempotencyKey(mock.Anything, customerID, "key-1").
		Return(existing, nil)

	result, err := f.service.Checkout(context.Background(), customerID, deliveryInput("key-1"))
	require.NoError(t, err)

	assert.Equal(t, entity.TierGold, result.NewTier)
	assert.False(t, result.TierUpgraded)
}

func TestCheckoutService_Checkout_KeyReusedWithDifferentRequest(t *testing.T) {
	f := createTestCheckoutService(t)
	customerID := uuid.New()

	f.orderRepo.EXPECT().
		FindByIdempotencyKey(mock.Anything, customerID, "key-1").
		Return(&entity.Order{
			ID:            uuid.New(),
			CustomerID:    customerID,
			PaymentMethod: entity.PaymentMethodWallet,
			Fulfilment:    entity.FulfilmentDelivery,
		}, nil)

	_, err := f.service.Checkout(context.Background(), customerID, deliveryInput("key-1"))
	assert.ErrorIs(t, err, domainerrors.ErrIdempotencyKeyReused)
}

func TestCheckoutService_Checkout_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		input *usecase.CheckoutInput
	}{
		{"nil input", nil},
		{"blank key", &usecase.CheckoutInput{PaymentMethod: entity.PaymentMethodCard, IdempotencyKey: "  ", Fulfilment: entity.FulfilmentDelivery}},
		{"unknown method", &usecase.CheckoutInput{PaymentMethod: "cash", IdempotencyKey: "k", Fulfilment: entity.FulfilmentDelivery}},
		{"unknown fulfilment", &usecase.CheckoutInput{PaymentMethod: entity.PaymentMethodCard, IdempotencyKey: "k", Fulfilment: "drone"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestCheckoutService(t)

			_, err := f.service.Checkout(context.Background(), uuid.New(), tt.input)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestCheckoutService_Checkout_EmptyCart(t *testing.T) {
	f := createTestCheckoutService(t)
	customerID := uuid.New()

	f.expectNoReplay(customerID, "key-1")
	f.expectCart(customerID)

	_, err := f.service.Checkout(context.Background(), customerID, deliveryInput("key-1"))
	assert.ErrorIs(t, err, domainerrors.ErrCartEmpty)
}

func TestCheckoutService_Checkout_UnknownItem(t *testing.T) {
	f := createTestCheckoutService(t)
	customerID := uuid.New()
	missing := uuid.NewString()

	f.expectNoReplay(customerID, "key-1")
	f.expectCart(customerID, cartLine(missing, "10.00", 1))
	f.catalogRepo.EXPECT().
		FindByIDs(mock.Anything, []string{missing}).
		Return([]*entity.CatalogItem{}, nil)
	f.expectNoLocation(customerID)

	_, err := f.service.Checkout(context.Background(), customerID, deliveryInput("key-1"))
	assert.ErrorIs(t, err, domainerrors.ErrItemNotFound)
}

func TestCheckoutService_Checkout_DeliveryEligibility(t *testing.T) {
	tests := []struct {
		name     string
		itemID   string
		location *entity.CustomerLocation
		wantErr  error
	}{
		{
			name:    "no location set",
			itemID:  capeTownBoxID,
			wantErr: domainerrors.ErrLocationRequired,
		},
		{
			name:     "region does not match",
			itemID:   capeTownBoxID,
			location: &entity.CustomerLocation{Address: "12 Main Rd, Johannesburg"},
			wantErr:  domainerrors.ErrItemUnavailable,
		},
		{
			name:     "outside delivery radius",
			itemID:   bikeTuneUpID,
			location: &entity.CustomerLocation{Coordinate: &entity.Coordinate{Lat: stellenboschLat, Lng: stellenboschLng}},
			wantErr:  domainerrors.ErrItemUnavailable,
		},
		{
			name:     "collection only item",
			itemID:   hamperID,
			location: &entity.CustomerLocation{Address: "Cape Town"},
			wantErr:  domainerrors.ErrItemUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestCheckoutService(t)
			customerID := uuid.New()

			f.expectNoReplay(customerID, "key-1")
			f.expectCart(customerID, cartLine(tt.itemID, "1.00", 1))
			if tt.location == nil {
				f.expectNoLocation(customerID)
			} else {
				tt.location.CustomerID = customerID
				f.locationRepo.EXPECT().FindByCustomer(mock.Anything, customerID).Return(tt.location, nil)
			}

			_, err := f.service.Checkout(context.Background(), customerID, deliveryInput("key-1"))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCheckoutService_Checkout_CollectionSkipsDeliveryCheck(t *testing.T) {
	f := createTestCheckoutService(t)
	customerID := uuid.New()
	input := &usecase.CheckoutInput{
		PaymentMethod:  entity.PaymentMethodInstantEFT,
		IdempotencyKey: "key-1",
		Fulfilment:     entity.FulfilmentCollection,
	}

	f.expectNoReplay(customerID, "key-1")
	f.expectCart(customerID, cartLine(hamperID, "420.00", 1))
	f.expectApproved()
	f.orderRepo.EXPECT().SumCompletedSpend(mock.Anything, customerID).Return(decimal.Zero, nil)
	f.expectTransaction()
	f.txOrderRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	f.txFactory.EXPECT().NewCatalogRepository().Return(f.txCatalogRepo)
	f.cart.EXPECT().ClearCart(mock.Anything, customerID).Return(nil)
	f.publisher.EXPECT().PublishOrderCompleted(mock.Anything, mock.Anything).Return(nil)

	result, err := f.service.Checkout(context.Background(), customerID, input)
	require.NoError(t, err)
	assert.Equal(t, entity.FulfilmentCollection, result.Order.Fulfilment)
	assert.Equal(t, int64(420), result.PointsEarned)
	assert.False(t, result.TierUpgraded)
}

func TestCheckoutService_Checkout_InsufficientStockBeforeCharge(t *testing.T) {
	f := createTestCheckoutService(t)
	customerID := uuid.New()
	listing := marketplaceListing(uuid.New(), "200.00", ptr(1))

	f.expectNoReplay(customerID, "key-1")
	f.expectCart(customerID, cartLine(listing.ID, "200.00", 2))
	f.catalogRepo.EXPECT().
		FindByIDs(mock.Anything, []string{listing.ID}).
		Return([]*entity.CatalogItem{listing}, nil)
	f.expectNoLocation(customerID)

	_, err := f.service.Checkout(context.Background(), customerID, deliveryInput("key-1"))
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientStock)
}

func TestCheckoutService_Checkout_DecrementsMarketplaceStock(t *testing.T) {
	f := createTestCheckoutService(t)
	customerID := uuid.New()
	supplierID := uuid.New()
	listing := marketplaceListing(supplierID, "200.00", ptr(5))

	f.expectNoReplay(customerID, "key-1")
	f.expectCart(customerID, cartLine(listing.ID, "200.00", 2), cartLine(giftCardID, "1500.00", 1))
	f.catalogRepo.EXPECT().
		FindByIDs(mock.Anything, []string{listing.ID}).
		Return([]*entity.CatalogItem{listing}, nil)
	f.expectNoLocation(customerID)
	f.expectApproved()
	f.orderRepo.EXPECT().SumCompletedSpend(mock.Anything, customerID).Return(decimal.Zero, nil)
	f.expectTransaction()
	f.txOrderRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	f.txFactory.EXPECT().NewCatalogRepository().Return(f.txCatalogRepo)
	f.txCatalogRepo.EXPECT().DecrementStock(mock.Anything, listing.ID, 2).Return(nil)
	f.cart.EXPECT().ClearCart(mock.Anything, customerID).Return(nil)
	f.publisher.EXPECT().PublishOrderCompleted(mock.Anything, mock.Anything).Return(nil)

	result, err := f.service.Checkout(context.Background(), customerID, deliveryInput("key-1"))
	require.NoError(t, err)
	assert.True(t, result.Order.Total.Equal(decimal.NewFromInt(1900)))
	require.Len(t, result.Order.Items, 2)
	assert.Equal(t, &supplierID, result.Order.Items[0].SupplierID)
}

func TestCheckoutService_Checkout_StockRaceRollsBack(t *testing.T) {
	f := createTestCheckoutService(t)
	customerID := uuid.New()
	listing := marketplaceListing(uuid.New(), "200.00", ptr(1))

	f.expectNoReplay(customerID, "key-1")
	f.expectCart(customerID, cartLine(listing.ID, "200.00", 1))
	f.catalogRepo.EXPECT().
		FindByIDs(mock.Anything, []string{listing.ID}).
		Return([]*entity.CatalogItem{listing}, nil)
	f.expectNoLocation(customerID)
	f.expectApproved()
	f.orderRepo.EXPECT().SumCompletedSpend(mock.Anything, customerID).Return(decimal.Zero, nil)
	f.expectTransaction()
	f.txOrderRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	f.txFactory.EXPECT().NewCatalogRepository().Return(f.txCatalogRepo)
	f.txCatalogRepo.EXPECT().
		DecrementStock(mock.Anything, listing.ID, 1).
		Return(repository.ErrInsufficientStock)

	_, err := f.service.Checkout(context.Background(), customerID, deliveryInput("key-1"))
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientStock)
	// Cart is kept and nothing is published
	f.cart.AssertNotCalled(t, "ClearCart", mock.Anything, mock.Anything)
	f.publisher.AssertNotCalled(t, "PublishOrderCompleted", mock.Anything, mock.Anything)
}

func TestCheckoutService_Checkout_PaymentDeclined(t *testing.T) {
	f := createTestCheckoutService(t)
	customerID := uuid.New()

	f.expectNoReplay(customerID, "key-1")
	f.expectCart(customerID, cartLine(giftCardID, "1500.00", 1))
	f.expectNoLocation(customerID)
	f.payment.EXPECT().
		Charge(mock.Anything, mock.Anything).
		Return(&service.ChargeResult{Approved: false, DeclineReason: "simulated decline"}, nil)

	_, err := f.service.Checkout(context.Background(), customerID, deliveryInput("key-1"))
	assert.ErrorIs(t, err, domainerrors.ErrPaymentDeclined)
	f.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestCheckoutService_Checkout_PaymentGatewayError(t *testing.T) {
	f := createTestCheckoutService(t)
	customerID := uuid.New()

	f.expectNoReplay(customerID, "key-1")
	f.expectCart(customerID, cartLine(giftCardID, "1500.00", 1))
	f.expectNoLocation(customerID)
	f.payment.EXPECT().
		Charge(mock.Anything, mock.Anything).
		Return(nil, errors.New("connection reset"))

	_, err := f.service.Checkout(context.Background(), customerID, deliveryInput("key-1"))
	assert.ErrorIs(t, err, domainerrors.ErrPaymentUnavailable)
}

func TestCheckoutService_Checkout_PublishFailureDoesNotFail(t *testing.T) {
	f := createTestCheckoutService(t)
	customerID := uuid.New()

	f.expectNoReplay(customerID, "key-1")
	f.expectCart(customerID, cartLine(giftCardID, "1500.00", 1))
	f.expectNoLocation(customerID)
	f.expectApproved()
	f.orderRepo.EXPECT().SumCompletedSpend(mock.Anything, customerID).Return(decimal.Zero, nil)
	f.expectTransaction()
	f.txOrderRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	f.txFactory.EXPECT().NewCatalogRepository().Return(f.txCatalogRepo)
	f.cart.EXPECT().ClearCart(mock.Anything, customerID).Return(errors.New("kv down"))
	f.publisher.EXPECT().PublishOrderCompleted(mock.Anything, mock.Anything).Return(errors.New("topic gone"))

	result, err := f.service.Checkout(context.Background(), customerID, deliveryInput("key-1"))
	require.NoError(t, err)
	assert.NotNil(t, result.Order)
}

func TestCheckoutService_GetOrder_HidesOtherCustomers(t *testing.T) {
	f := createTestCheckoutService(t)
	orderID := uuid.New()

	f.orderRepo.EXPECT().
		FindByID(mock.Anything, orderID).
		Return(&entity.Order{ID: orderID, CustomerID: uuid.New()}, nil)

	_, err := f.service.GetOrder(context.Background(), uuid.New(), orderID)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestCheckoutService_ListOrders_ClampsPaging(t *testing.T) {
	f := createTestCheckoutService(t)
	customerID := uuid.New()

	f.orderRepo.EXPECT().
		ListByCustomer(mock.Anything, customerID, 100, 0).
		Return([]*entity.Order{}, nil)

	orders, err := f.service.ListOrders(context.Background(), customerID, 1000, -5)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestCheckoutService_PickupQR(t *testing.T) {
	customerID := uuid.New()

	t.Run("collection order", func(t *testing.T) {
		f := createTestCheckoutService(t)
		orderID := uuid.New()
		f.orderRepo.EXPECT().FindByID(mock.Anything, orderID).Return(&entity.Order{
			ID: orderID, CustomerID: customerID, Status: entity.OrderStatusCompleted, Fulfilment: entity.FulfilmentCollection,
		}, nil)
		f.qrcode.EXPECT().GeneratePickupQR(orderID).Return([]byte{0x89, 'P', 'N', 'G'}, nil)

		png, err := f.service.PickupQR(context.Background(), customerID, orderID)
		require.NoError(t, err)
		assert.NotEmpty(t, png)
	})

	t.Run("delivery order", func(t *testing.T) {
		f := createTestCheckoutService(t)
		orderID := uuid.New()
		f.orderRepo.EXPECT().FindByID(mock.Anything, orderID).Return(&entity.Order{
			ID: orderID, CustomerID: customerID, Status: entity.OrderStatusCompleted, Fulfilment: entity.FulfilmentDelivery,
		}, nil)

		_, err := f.service.PickupQR(context.Background(), customerID, orderID)
		assert.ErrorIs(t, err, domainerrors.ErrOrderNotCollectable)
	})
}

func TestCheckoutService_VerifyPickup(t *testing.T) {
	supplierID := uuid.New()
	orderID := uuid.New()
	collectionOrder := func() *entity.Order {
		return &entity.Order{
			ID:         orderID,
			CustomerID: uuid.New(),
			Status:     entity.OrderStatusCompleted,
			Fulfilment: entity.FulfilmentCollection,
			Items:      []entity.OrderItem{{ItemID: uuid.NewString(), SupplierID: &supplierID, Quantity: 1}},
		}
	}

	t.Run("marks order collected", func(t *testing.T) {
		f := createTestCheckoutService(t)
		f.qrcode.EXPECT().ParsePickupQR("payload").Return(orderID, nil)
		f.orderRepo.EXPECT().FindByID(mock.Anything, orderID).Return(collectionOrder(), nil)
		f.orderRepo.EXPECT().
			UpdateStatus(mock.Anything, orderID, entity.OrderStatusCompleted, entity.OrderStatusCollected).
			Return(nil)

		order, err := f.service.VerifyPickup(context.Background(), supplierID, "payload")
		require.NoError(t, err)
		assert.Equal(t, entity.OrderStatusCollected, order.Status)
	})

	t.Run("invalid code", func(t *testing.T) {
		f := createTestCheckoutService(t)
		f.qrcode.EXPECT().ParsePickupQR("garbage").Return(uuid.Nil, errors.New("failed to unmarshal QR code data"))

		_, err := f.service.VerifyPickup(context.Background(), supplierID, "garbage")
		assert.ErrorIs(t, err, domainerrors.ErrPickupCodeInvalid)
	})

	t.Run("other supplier", func(t *testing.T) {
		f := createTestCheckoutService(t)
		f.qrcode.EXPECT().ParsePickupQR("payload").Return(orderID, nil)
		f.orderRepo.EXPECT().FindByID(mock.Anything, orderID).Return(collectionOrder(), nil)

		_, err := f.service.VerifyPickup(context.Background(), uuid.New(), "payload")
		assert.ErrorIs(t, err, domainerrors.ErrListingOwnership)
	})

	t.Run("already collected", func(t *testing.T) {
		f := createTestCheckoutService(t)
		f.qrcode.EXPECT().ParsePickupQR("payload").Return(orderID, nil)
		f.orderRepo.EXPECT().FindByID(mock.Anything, orderID).Return(collectionOrder(), nil)
		f.orderRepo.EXPECT().
			UpdateStatus(mock.Anything, orderID, entity.OrderStatusCompleted, entity.OrderStatusCollected).
			Return(repository.ErrOrderStatusConflict)

		_, err := f.service.VerifyPickup(context.Background(), supplierID, "payload")
		assert.ErrorIs(t, err, domainerrors.ErrOrderNotCollectable)
	})
}
