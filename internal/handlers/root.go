package handlers

import (
	"log/slog"
	"net/http"
)

// RootHandler serves the API banner at GET /
type RootHandler struct {
	logger *slog.Logger
}

// NewRootHandler creates a new root handler
func NewRootHandler(logger *slog.Logger) *RootHandler {
	return &RootHandler{
		logger: logger,
	}
}

// ServeHTTP handles GET /
func (h *RootHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{
		"message": "E-commerce API running",
	}, h.logger)
}
