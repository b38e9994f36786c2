package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/flashcards-service/internal/logger"
	"github.com/sbilibin2017/flashcards-service/internal/models"
	"github.com/sbilibin2017/flashcards-service/internal/services"
)

// FlashcardGetter defines the interface that the single-card read service must implement.
type FlashcardGetter interface {
	Get(ctx context.Context, id uuid.UUID) (*models.FlashCard, error)
}

// NewGetFlashcardHandler returns an HTTP handler for fetching one flashcard by id.
// @Summary Get a flashcard
// @Description Returns the flashcard with the given id.
// @Tags flashcards
// @Produce json
// @Param id path string true "Flashcard id"
// @Success 200 {object} handlers.FlashCardResponse "Flashcard"
// @Failure 400 {object} handlers.ErrorResponse "Malformed id"
// @Failure 404 {object} handlers.ErrorResponse "Unknown id"
// @Failure 500 {object} handlers.ErrorResponse "Storage failure"
// @Router /flashcards/{id} [get]
func NewGetFlashcardHandler(svc FlashcardGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("Uuid parsing error: %v", err))
			return
		}

		card, err := svc.Get(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrFlashcardNotFound):
				writeError(w, http.StatusNotFound, fmt.Sprintf("Not found: Flashcard with id %s not found", id))
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
