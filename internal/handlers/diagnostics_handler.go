package handlers

import (
	"log/slog"
	"net/http"

	"github.com/storefront-api/server/internal/store"
	"go.mongodb.org/mongo-driver/mongo"
)

// DiagnosticsHandler reports backend and database connectivity at GET /test.
// It always answers 200; failures show up as degraded status text.
type DiagnosticsHandler struct {
	db     *mongo.Database // nil when no connection was established at startup
	urlSet bool
	logger *slog.Logger
}

// NewDiagnosticsHandler creates a new diagnostics handler
func NewDiagnosticsHandler(db *mongo.Database, urlSet bool, logger *slog.Logger) *DiagnosticsHandler {
	return &DiagnosticsHandler{
		db:     db,
		urlSet: urlSet,
		logger: logger,
	}
}

// ServeHTTP handles GET /test
func (h *DiagnosticsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	report := store.Diagnose(r.Context(), h.db, h.urlSet)
	WriteJSON(w, http.StatusOK, report, h.logger)
}
