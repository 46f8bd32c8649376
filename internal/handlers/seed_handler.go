package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/storefront-api/server/internal/repository"
	"github.com/storefront-api/server/internal/service"
)

// SeedHandler handles catalog seeding requests
type SeedHandler struct {
	service *service.ProductService
	logger  *slog.Logger
}

// NewSeedHandler creates a new seed handler
func NewSeedHandler(service *service.ProductService, logger *slog.Logger) *SeedHandler {
	return &SeedHandler{
		service: service,
		logger:  logger,
	}
}

// SeedResponse reports the seeding outcome.
type SeedResponse struct {
	Message string `json:"message"`
	Count   int64  `json:"count"`
}

// SeedProducts handles POST /seed
// Inserts the sample catalog when the product collection is empty; otherwise
// a no-op that reports the existing count.
func (h *SeedHandler) SeedProducts(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.SeedProducts(r.Context())
	if err != nil {
		if errors.Is(err, repository.ErrStoreUnavailable) {
			WriteError(w, http.StatusInternalServerError, "Database not configured", h.logger)
			return
		}
		h.logger.Error("failed to seed products", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	resp := SeedResponse{Message: "Products already exist", Count: res.Count}
	if res.Seeded {
		resp.Message = "Seeded"
		h.logger.Info("sample catalog seeded", "count", res.Count)
	}

	WriteJSON(w, http.StatusOK, resp, h.logger)
}
