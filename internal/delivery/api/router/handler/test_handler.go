package handler

import (
	"net/http"

	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// TestHandler handles development endpoints for token issuing and middleware checks
type TestHandler struct {
	tokenSvc service.TokenService
}

// NewTestHandler creates a new TestHandler instance
func NewTestHandler(tokenSvc service.TokenService) *TestHandler {
	return &TestHandler{tokenSvc: tokenSvc}
}

// IssueTokenRequest asks for a token pair for a development identity
type IssueTokenRequest struct {
	UserID string   `json:"user_id" validate:"omitempty,uuid"`
	Roles  []string `json:"roles" validate:"required,min=1,dive,oneof=customer supplier"`
}

// IssueToken mints a token pair. Identities are owned by an external service in production.
func (h *TestHandler) IssueToken(c echo.Context) error {
	var req IssueTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid token input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	userID := uuid.New()
	if req.UserID != "" {
		userID = uuid.MustParse(req.UserID)
	}

	roles := entity.RolesFromStrings(req.Roles)
	accessToken, refreshToken, err := h.tokenSvc.GenerateTokens(userID, roles.ToStrings())
	if err != nil {
		return response.InternalServerError(c, "TOKEN_ERROR", "Failed to issue token")
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"user_id":       userID,
		"roles":         roles,
		"access_token":  accessToken,
		"refresh_token": refreshToken,
		"refresh_ttl":   int64(h.tokenSvc.GetRefreshTokenDuration().Seconds()),
	})
}

// TestAuthMiddleware tests the authentication middleware
// This endpoint requires a valid JWT token in the Authorization header
func (h *TestHandler) TestAuthMiddleware(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "User ID not found in context")
	}

	roles, ok := middleware.GetRoles(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "User roles not found in context")
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"message": "Authentication middleware test successful",
		"userID":  userID,
		"roles":   roles,
		"status":  "authenticated",
	})
}

// TestPublicEndpoint tests a public endpoint (no authentication required)
func (h *TestHandler) TestPublicEndpoint(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"message": "Public endpoint test successful",
		"status":  "public",
	})
}
