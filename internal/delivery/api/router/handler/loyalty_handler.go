package handler

import (
	"net/http"

	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// LoyaltyHandler serves the loyalty dashboard
type LoyaltyHandler struct {
	loyaltyUC usecase.LoyaltyUsecase
}

// NewLoyaltyHandler is the constructor for LoyaltyHandler
func NewLoyaltyHandler(loyaltyUC usecase.LoyaltyUsecase) *LoyaltyHandler {
	return &LoyaltyHandler{loyaltyUC: loyaltyUC}
}

// GetSummary returns the caller's tier, points and progress
func (h *LoyaltyHandler) GetSummary(c echo.Context) error {
	customerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	summary, err := h.loyaltyUC.GetSummary(c.Request().Context(), customerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summary)
}
