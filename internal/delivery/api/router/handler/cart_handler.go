package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Logger *slog.Logger
}

// CartHandler serves the cart and wishlist
type CartHandler struct {
	cartUC usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC: params.CartUC,
		logger: params.Logger,
	}
}

// AddItemRequest references a catalog item
type AddItemRequest struct {
	ItemID string `json:"item_id" validate:"required,max=128"`
}

// UpdateQuantityRequest sets a cart line quantity
type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}

// GetCart returns the caller's cart
func (h *CartHandler) GetCart(c echo.Context) error {
	customerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	cart, err := h.cartUC.GetCart(c.Request().Context(), customerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// AddToCart adds one unit of an item
func (h *CartHandler) AddToCart(c echo.Context) error {
	customerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req AddItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	cart, err := h.cartUC.AddToCart(c.Request().Context(), customerID, req.ItemID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// UpdateQuantity sets the quantity of a cart line; zero removes it
func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	customerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req UpdateQuantityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quantity input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	cart, err := h.cartUC.UpdateQuantity(c.Request().Context(), customerID, c.Param("itemId"), *req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// RemoveFromCart drops a cart line
func (h *CartHandler) RemoveFromCart(c echo.Context) error {
	customerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	cart, err := h.cartUC.RemoveFromCart(c.Request().Context(), customerID, c.Param("itemId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// ClearCart empties the cart
func (h *CartHandler) ClearCart(c echo.Context) error {
	customerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	if err := h.cartUC.ClearCart(c.Request().Context(), customerID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetWishlist returns the caller's wishlist
func (h *CartHandler) GetWishlist(c echo.Context) error {
	customerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	items, err := h.cartUC.GetWishlist(c.Request().Context(), customerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, items)
}

// AddToWishlist saves an item for later
func (h *CartHandler) AddToWishlist(c echo.Context) error {
	customerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req AddItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid wishlist input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	items, err := h.cartUC.AddToWishlist(c.Request().Context(), customerID, req.ItemID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, items)
}

// RemoveFromWishlist drops an item from the wishlist
func (h *CartHandler) RemoveFromWishlist(c echo.Context) error {
	customerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	items, err := h.cartUC.RemoveFromWishlist(c.Request().Context(), customerID, c.Param("itemId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, items)
}

// MoveToCart moves a wishlist item into the cart
func (h *CartHandler) MoveToCart(c echo.Context) error {
	customerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	cart, err := h.cartUC.MoveToCart(c.Request().Context(), customerID, c.Param("itemId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}
