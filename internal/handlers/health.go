package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/flashcards-service/internal/logger"
)

// DatabasePinger defines the connectivity check the ping endpoint needs.
type DatabasePinger interface {
	PingContext(ctx context.Context) error
}

// NewHealthHandler returns an HTTP handler reporting process liveness.
// @Summary Health check
// @Success 200 "OK"
// @Router /health [get]
func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}
}

// NewPingHandler returns an HTTP handler that round-trips the database.
// @Summary Database ping
// @Success 200 "OK"
// @Failure 500 {object} handlers.ErrorResponse "Database unreachable"
// @Router /ping [get]
func NewPingHandler(db DatabasePinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			logger.Log.Errorw("database ping failed", "err", err)
			writeError(w, http.StatusInternalServerError, "Database error: connection unavailable")
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}
