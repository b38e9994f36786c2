package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sbilibin2017/flashcards-service/internal/logger"
	"github.com/sbilibin2017/flashcards-service/internal/models"
)

// FlashcardLister defines the interface that the list service must implement.
type FlashcardLister interface {
	List(ctx context.Context, topic, tag string) ([]models.FlashCard, error)
}

// NewListFlashcardsHandler returns an HTTP handler for listing flashcards.
// @Summary List flashcards
// @Description Lists every flashcard, newest first. Accepts an optional topic or tag filter; topic wins when both are supplied.
// @Tags flashcards
// @Produce json
// @Param topic query string false "Filter by topic (case-insensitive)"
// @Param tag query string false "Filter by exact tag"
// @Success 200 {object} handlers.FlashCardListResponse "Flashcards"
// @Failure 500 {object} handlers.ErrorResponse "Storage failure"
// @Router /flashcards [get]
func NewListFlashcardsHandler(svc FlashcardLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		topic := r.URL.Query().Get("topic")
		tag := r.URL.Query().Get("tag")

		cards, err := svc.List(r.Context(), topic, tag)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, fmt.Sprintf("Database error: %v", err))
			return
		}

		writeJSON(w, http.StatusOK, newFlashCardListResponse(cards))
	}
}
