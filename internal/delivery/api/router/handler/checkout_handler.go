package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HeaderIdempotencyKey may carry the checkout idempotency key instead of the body
const HeaderIdempotencyKey = "Idempotency-Key"

// CheckoutHandlerParams holds dependencies for CheckoutHandler, injected by Fx.
type CheckoutHandlerParams struct {
	fx.In

	CheckoutUC usecase.CheckoutUsecase
	Logger     *slog.Logger
}

// CheckoutHandler serves checkout, order history and pickup
type CheckoutHandler struct {
	checkoutUC usecase.CheckoutUsecase
	logger     *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler
func NewCheckoutHandler(params CheckoutHandlerParams) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutUC: params.CheckoutUC,
		logger:     params.Logger,
	}
}

// CheckoutRequest represents the request body for placing an order
type CheckoutRequest struct {
	PaymentMethod  string `json:"payment_method" validate:"required,oneof=card instant_eft wallet"`
	IdempotencyKey string `json:"idempotency_key" validate:"omitempty,max=128"`
	Fulfilment     string `json:"fulfilment" validate:"required,oneof=delivery collection"`
}

// VerifyPickupRequest carries the scanned QR payload
type VerifyPickupRequest struct {
	Payload string `json:"payload" validate:"required"`
}

// Checkout charges the caller's cart
func (h *CheckoutHandler) Checkout(c echo.Context) error {
	customerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}
	if req.IdempotencyKey == "" {
		req.IdempotencyKey = c.Request().Header.Get(HeaderIdempotencyKey)
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}
	if req.IdempotencyKey == "" {
		return response.BadRequest(c, "VALIDATION_ERROR", "idempotency key is required")
	}

	result, err := h.checkoutUC.Checkout(c.Request().Context(), customerID, &usecase.CheckoutInput{
		PaymentMethod:  entity.PaymentMethod(req.PaymentMethod),
		IdempotencyKey: req.IdempotencyKey,
		Fulfilment:     entity.Fulfilment(req.Fulfilment),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	status := http.StatusCreated
	if result.Replayed {
		status = http.StatusOK
	}

	return response.Success(c, status, result)
}

// ListOrders returns the caller's orders, newest first. Query: limit, offset
func (h *CheckoutHandler) ListOrders(c echo.Context) error {
	customerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	limit, err := intQueryParam(c, "limit")
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "limit must be an integer")
	}
	offset, err := intQueryParam(c, "offset")
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "offset must be an integer")
	}

	orders, err := h.checkoutUC.ListOrders(c.Request().Context(), customerID, limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders)
}

// GetOrder returns one of the caller's orders
func (h *CheckoutHandler) GetOrder(c echo.Context) error {
	customerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	order, err := h.checkoutUC.GetOrder(c.Request().Context(), customerID, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// PickupQR returns the pickup code of a collection order as PNG
func (h *CheckoutHandler) PickupQR(c echo.Context) error {
	customerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	png, err := h.checkoutUC.PickupQR(c.Request().Context(), customerID, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.PNG(c, png)
}

// VerifyPickup marks a scanned order as collected by the calling supplier
func (h *CheckoutHandler) VerifyPickup(c echo.Context) error {
	supplierID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req VerifyPickupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid pickup input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	order, err := h.checkoutUC.VerifyPickup(c.Request().Context(), supplierID, req.Payload)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// intQueryParam reads an optional integer query parameter; absent is zero.
func intQueryParam(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}

	return strconv.Atoi(raw)
}
