package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/sbilibin2017/flashcards-service/internal/logger"
	"github.com/sbilibin2017/flashcards-service/internal/models"
	"github.com/sbilibin2017/flashcards-service/internal/services"
)

// RandomPicker defines the interface that the random selection service must implement.
type RandomPicker interface {
	Random(ctx context.Context) (*models.FlashCard, error)
}

// NewRandomFlashcardHandler returns an HTTP handler for picking a random flashcard.
// @Summary Random flashcard
// @Description Returns one uniformly selected flashcard.
// @Tags flashcards
// @Produce json
// @Success 200 {object} handlers.FlashCardResponse "Flashcard"
// @Failure 404 {object} handlers.ErrorResponse "No flashcards stored"
// @Failure 500 {object} handlers.ErrorResponse "Storage failure"
// @Router /flashcards/random [get]
func NewRandomFlashcardHandler(svc RandomPicker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		card, err := svc.Random(r.Context())
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNoFlashcards):
				writeError(w, http.StatusNotFound, "Not found: No flashcards available")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, fmt.Sprintf("Database error: %v", err))
			}
			return
		}

		writeJSON(w, http.StatusOK, FlashCardResponse{
			Msg:     "success",
			Content: newFlashCardContent(*card),
		})
	}
}
