package impl

import (
	"context"
	"log/slog"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/availability"
	"storefront/internal/domain/basket"
	"storefront/internal/domain/catalog"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// cartService rehydrates a customer's basket from the KV store on every call.
// Calls for the same customer serialize on a keyed lock; calls from other
// processes are caught by the store's versioned writes.
type cartService struct {
	kv           service.KVStore
	catalog      *catalog.Catalog
	locationRepo repository.LocationRepository
	currency     string
	logger       *slog.Logger
	locks        *keyedMutex
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	KV           service.KVStore
	Catalog      *catalog.Catalog
	LocationRepo repository.LocationRepository
	Config       *config.Config
	Logger       *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	currency := ""
	if params.Config != nil && params.Config.Catalog != nil {
		currency = params.Config.Catalog.Currency
	}

	return &cartService{
		kv:           params.KV,
		catalog:      params.Catalog,
		locationRepo: params.LocationRepo,
		currency:     currency,
		logger:       params.Logger,
		locks:        newKeyedMutex(),
	}
}

func (s *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func cartKey(customerID uuid.UUID) string {
	return constants.CartKeyPrefix + customerID.String()
}

func wishlistKey(customerID uuid.UUID) string {
	return constants.WishlistKeyPrefix + customerID.String()
}

// loadCart reads the durable cart. Callers hold the cart key's lock when they mutate.
func (s *cartService) loadCart(ctx context.Context, customerID uuid.UUID) (*basket.Cart, error) {
	c, err := basket.LoadCart(ctx, s.kv, cartKey(customerID), s.log(ctx))
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrBasketUnavailable, err.Error())
	}

	return c, nil
}

func (s *cartService) loadWishlist(ctx context.Context, customerID uuid.UUID) (*basket.Wishlist, error) {
	w, err := basket.LoadWishlist(ctx, s.kv, wishlistKey(customerID), s.log(ctx))
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrBasketUnavailable, err.Error())
	}

	return w, nil
}

func (s *cartService) summary(c *basket.Cart) *usecase.CartSummary {
	return &usecase.CartSummary{
		Items:    c.Items(),
		Count:    c.Count(),
		Total:    c.Total(),
		Currency: s.currency,
	}
}

// mutationFailed maps a basket write error to the error shown to customers.
func (s *cartService) mutationFailed(ctx context.Context, customerID uuid.UUID, itemID string, err error) error {
	if errors.Is(err, basket.ErrQuantityLimit) {
		return domainerrors.ErrInsufficientStock.WithDetails(itemID)
	}

	s.log(ctx).Error("Failed to persist basket",
		slog.String("customer_id", customerID.String()),
		slog.Any("error", err),
	)

	return errors.Wrap(domainerrors.ErrBasketPersistFailed, err.Error())
}

// GetCart returns the customer's cart
func (s *cartService) GetCart(ctx context.Context, customerID uuid.UUID) (*usecase.CartSummary, error) {
	c, err := s.loadCart(ctx, customerID)
	if err != nil {
		return nil, err
	}

	return s.summary(c), nil
}

// AddToCart resolves the item, checks delivery and stock, then adds one unit
func (s *cartService) AddToCart(ctx context.Context, customerID uuid.UUID, itemID string) (*usecase.CartSummary, error) {
	item, err := s.catalog.Find(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if err := s.checkDeliverable(ctx, customerID, item); err != nil {
		return nil, err
	}

	return s.addToCart(ctx, customerID, item)
}

func (s *cartService) addToCart(ctx context.Context, customerID uuid.UUID, item *entity.CatalogItem) (*usecase.CartSummary, error) {
	unlock := s.locks.Lock(cartKey(customerID))
	defer unlock()

	c, err := s.loadCart(ctx, customerID)
	if err != nil {
		return nil, err
	}

	if err := c.AddToCartLimited(ctx, item.ToCartLine(1), item.Stock); err != nil {
		return nil, s.mutationFailed(ctx, customerID, item.ID, err)
	}

	return s.summary(c), nil
}

// checkDeliverable lets collection-only items through; delivery is enforced at checkout.
func (s *cartService) checkDeliverable(ctx context.Context, customerID uuid.UUID, item *entity.CatalogItem) error {
	location, err := loadLocation(ctx, s.locationRepo, customerID)
	if err != nil {
		return err
	}

	decision := availability.Evaluate(item.Delivery, location.Address, location.Coordinate)
	if decision.Eligible || decision.Reason == availability.ReasonCollectionOnly {
		return nil
	}

	return availabilityError(item.ID, decision)
}

// UpdateQuantity sets a line's quantity without re-checking delivery.
// Growing a line is bounded by the listing's stock.
func (s *cartService) UpdateQuantity(ctx context.Context, customerID uuid.UUID, itemID string, quantity int) (*usecase.CartSummary, error) {
	unlock := s.locks.Lock(cartKey(customerID))
	defer unlock()

	c, err := s.loadCart(ctx, customerID)
	if err != nil {
		return nil, err
	}

	var limit *int
	if current := c.Quantity(itemID); current > 0 && quantity > current {
		item, err := s.catalog.Find(ctx, itemID)
		if err != nil {
			return nil, err
		}
		limit = item.Stock
	}

	if err := c.UpdateQuantityLimited(ctx, itemID, quantity, limit); err != nil {
		return nil, s.mutationFailed(ctx, customerID, itemID, err)
	}

	return s.summary(c), nil
}

// RemoveFromCart removes a line; unknown items are ignored
func (s *cartService) RemoveFromCart(ctx context.Context, customerID uuid.UUID, itemID string) (*usecase.CartSummary, error) {
	unlock := s.locks.Lock(cartKey(customerID))
	defer unlock()

	c, err := s.loadCart(ctx, customerID)
	if err != nil {
		return nil, err
	}

	if err := c.RemoveFromCart(ctx, itemID); err != nil {
		return nil, s.mutationFailed(ctx, customerID, itemID, err)
	}

	return s.summary(c), nil
}

// ClearCart empties the cart. An unreadable cart is still cleared.
func (s *cartService) ClearCart(ctx context.Context, customerID uuid.UUID) error {
	unlock := s.locks.Lock(cartKey(customerID))
	defer unlock()

	c := basket.NewCart(ctx, s.kv, cartKey(customerID), s.log(ctx))
	if err := c.ClearCart(ctx); err != nil {
		return s.mutationFailed(ctx, customerID, "", err)
	}

	return nil
}

// GetWishlist returns the customer's wishlist
func (s *cartService) GetWishlist(ctx context.Context, customerID uuid.UUID) ([]entity.CatalogItem, error) {
	w, err := s.loadWishlist(ctx, customerID)
	if err != nil {
		return nil, err
	}

	return w.Items(), nil
}

// AddToWishlist saves any catalog item regardless of delivery area
func (s *cartService) AddToWishlist(ctx context.Context, customerID uuid.UUID, itemID string) ([]entity.CatalogItem, error) {
	item, err := s.catalog.Find(ctx, itemID)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(wishlistKey(customerID))
	defer unlock()

	w, err := s.loadWishlist(ctx, customerID)
	if err != nil {
		return nil, err
	}

	if err := w.AddToWishlist(ctx, *item); err != nil {
		return nil, s.mutationFailed(ctx, customerID, item.ID, err)
	}

	return w.Items(), nil
}

// RemoveFromWishlist removes an item; unknown items are ignored
func (s *cartService) RemoveFromWishlist(ctx context.Context, customerID uuid.UUID, itemID string) ([]entity.CatalogItem, error) {
	unlock := s.locks.Lock(wishlistKey(customerID))
	defer unlock()

	w, err := s.loadWishlist(ctx, customerID)
	if err != nil {
		return nil, err
	}

	if err := w.RemoveFromWishlist(ctx, itemID); err != nil {
		return nil, s.mutationFailed(ctx, customerID, itemID, err)
	}

	return w.Items(), nil
}

// MoveToCart adds a wishlisted item to the cart, then drops it from the wishlist.
// The wishlist lock is always taken before the cart lock.
func (s *cartService) MoveToCart(ctx context.Context, customerID uuid.UUID, itemID string) (*usecase.CartSummary, error) {
	unlock := s.locks.Lock(wishlistKey(customerID))
	defer unlock()

	w, err := s.loadWishlist(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if !w.IsInWishlist(itemID) {
		return nil, domainerrors.ErrItemNotFound.WithDetails("not in wishlist: " + itemID)
	}

	item, err := s.catalog.Find(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if err := s.checkDeliverable(ctx, customerID, item); err != nil {
		return nil, err
	}

	summary, err := s.addToCart(ctx, customerID, item)
	if err != nil {
		return nil, err
	}

	if err := w.RemoveFromWishlist(ctx, itemID); err != nil {
		return nil, s.mutationFailed(ctx, customerID, itemID, err)
	}

	return summary, nil
}

// availabilityError maps an ineligible decision to the error shown to customers.
func availabilityError(itemID string, decision availability.Decision) error {
	if decision.Reason == availability.ReasonLocationRequired {
		return domainerrors.ErrLocationRequired.WithDetails(itemID)
	}

	return domainerrors.ErrItemUnavailable.WithDetails(itemID + ": " + string(decision.Reason))
}
