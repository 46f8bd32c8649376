package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/storefront-api/server/internal/models"
	"github.com/storefront-api/server/internal/repository"
	"github.com/storefront-api/server/internal/service"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
	log          *slog.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService, log *slog.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		log:          log,
	}
}

// CreateOrder handles POST /orders
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req models.OrderRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Warn("failed to decode order request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	conf, err := h.orderService.CreateOrder(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidQuantity):
			WriteError(w, http.StatusBadRequest, "Quantity must be at least 1", h.log)
		case errors.Is(err, service.ErrInvalidPrice):
			WriteError(w, http.StatusBadRequest, "Price must not be negative", h.log)
		case errors.Is(err, service.ErrMissingShipping):
			WriteError(w, http.StatusBadRequest, "Shipping information is incomplete", h.log)
		case errors.Is(err, service.ErrInvalidEmail):
			WriteError(w, http.StatusBadRequest, "Invalid email address", h.log)
		case errors.Is(err, repository.ErrStoreUnavailable):
			WriteError(w, http.StatusInternalServerError, "Database not configured", h.log)
		default:
			h.log.Error("failed to create order", "error", err)
			WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		}
		return
	}

	WriteJSON(w, http.StatusOK, conf, h.log)
	h.log.Info("order created",
		"order_id", conf.ID,
		"reference", conf.Reference,
		"total", conf.Total,
	)
}
