package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler serves the storefront catalog and supplier listings
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// ListCatalog returns catalog items annotated with availability for the caller.
// Query: vertical, only_available
func (h *CatalogHandler) ListCatalog(c echo.Context) error {
	customerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var query usecase.CatalogQuery
	if raw := c.QueryParam("vertical"); raw != "" {
		vertical := entity.Vertical(raw)
		if !vertical.IsValid() {
			return response.BadRequest(c, "VALIDATION_ERROR", "Unknown vertical")
		}
		query.Vertical = &vertical
	}
	if raw := c.QueryParam("only_available"); raw != "" {
		onlyAvailable, err := strconv.ParseBool(raw)
		if err != nil {
			return response.BadRequest(c, "VALIDATION_ERROR", "only_available must be a boolean")
		}
		query.OnlyAvailable = onlyAvailable
	}

	entries, err := h.catalogUC.List(c.Request().Context(), customerID, query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, entries)
}

// GetItem returns one catalog item
func (h *CatalogHandler) GetItem(c echo.Context) error {
	item, err := h.catalogUC.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, item)
}

// CreateListing publishes a marketplace listing for the calling supplier
func (h *CatalogHandler) CreateListing(c echo.Context) error {
	supplierID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req usecase.CreateListingInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid listing input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	item, err := h.catalogUC.CreateListing(c.Request().Context(), supplierID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, item)
}

// ListSupplierListings returns the calling supplier's listings
func (h *CatalogHandler) ListSupplierListings(c echo.Context) error {
	supplierID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	items, err := h.catalogUC.ListSupplierListings(c.Request().Context(), supplierID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, items)
}
