package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/storefront-api/server/internal/repository"
	"github.com/storefront-api/server/internal/service"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductHandler handles product-related HTTP requests
type ProductHandler struct {
	service *service.ProductService
	logger  *slog.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(service *service.ProductService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger,
	}
}

// ListProducts handles GET /products
// The optional category query parameter filters by exact match; a category
// with no matches returns an empty array, not an error.
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	category := r.URL.Query().Get("category")

	products, err := h.service.ListProducts(ctx, category)
	if err != nil {
		if errors.Is(err, repository.ErrStoreUnavailable) {
			WriteError(w, http.StatusInternalServerError, "Database not configured", h.logger)
			return
		}
		h.logger.Error("failed to list products", "category", category, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, products, h.logger)
}

// GetProduct handles GET /products/{productID}
// - 200: successful operation
// - 400: malformed identifier
// - 404: product not found
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	raw := chi.URLParam(r, "productID")

	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		h.logger.Warn("invalid product ID format", "productId", raw, "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid product id", h.logger)
		return
	}

	product, err := h.service.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			h.logger.Info("product not found", "productId", raw)
			WriteError(w, http.StatusNotFound, "Product not found", h.logger)
			return
		}
		if errors.Is(err, repository.ErrStoreUnavailable) {
			WriteError(w, http.StatusInternalServerError, "Database not configured", h.logger)
			return
		}

		h.logger.Error("failed to get product", "productId", raw, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, product, h.logger)
}
