package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sbilibin2017/flashcards-service/internal/logger"
)

// TopicsLister defines the interface that the topic listing service must implement.
type TopicsLister interface {
	Topics(ctx context.Context) ([]string, error)
}

// NewListTopicsHandler returns an HTTP handler for listing distinct topics.
// @Summary List topics
// @Description Returns every distinct topic, sorted ascending.
// @Tags flashcards
// @Produce json
// @Success 200 {object} handlers.StringListResponse "Topics"
// @Failure 500 {object} handlers.ErrorResponse "Storage failure"
// @Router /flashcards/topics [get]
func NewListTopicsHandler(svc TopicsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		topics, err := svc.Topics(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, fmt.Sprintf("Database error: %v", err))
			return
		}

		if topics == nil {
			topics = []string{}
		}
		writeJSON(w, http.StatusOK, StringListResponse{Msg: "success", Content: topics})
	}
}
