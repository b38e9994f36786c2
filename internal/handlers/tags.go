package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sbilibin2017/flashcards-service/internal/logger"
)

// TagsLister defines the interface that the tag listing service must implement.
type TagsLister interface {
	Tags(ctx context.Context) ([]string, error)
}

// NewListTagsHandler returns an HTTP handler for listing distinct tags.
// @Summary List tags
// @Description Returns every distinct tag across all flashcards, sorted ascending.
// @Tags flashcards
// @Produce json
// @Success 200 {object} handlers.StringListResponse "Tags"
// @Failure 500 {object} handlers.ErrorResponse "Storage failure"
// @Router /flashcards/tags [get]
func NewListTagsHandler(svc TagsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tags, err := svc.Tags(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, fmt.Sprintf("Database error: %v", err))
			return
		}

		if tags == nil {
			tags = []string{}
		}
		writeJSON(w, http.StatusOK, StringListResponse{Msg: "success", Content: tags})
	}
}
