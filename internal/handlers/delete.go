package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/flashcards-service/internal/logger"
	"github.com/sbilibin2017/flashcards-service/internal/services"
)

// FlashcardDeleter defines the interface that the delete service must implement.
type FlashcardDeleter interface {
	Delete(ctx context.Context, id uuid.UUID) error
}

// NewDeleteFlashcardHandler returns an HTTP handler for deleting a flashcard.
// @Summary Delete a flashcard
// @Description Removes the flashcard with the given id.
// @Tags flashcards
// @Security BearerAuth
// @Param id path string true "Flashcard id"
// @Success 204 "Deleted"
// @Failure 400 {object} handlers.ErrorResponse "Malformed id"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid API key"
// @Failure 404 {object} handlers.ErrorResponse "Unknown id"
// @Failure 500 {object} handlers.ErrorResponse "Storage failure"
// @Router /flashcards/{id} [delete]
func NewDeleteFlashcardHandler(svc FlashcardDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("Uuid parsing error: %v", err))
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			switch {
			case errors.Is(err, services.ErrFlashcardNotFound):
				writeError(w, http.StatusNotFound, fmt.Sprintf("Not found: Flashcard with id %s not found", id))
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, fmt.Sprintf("Database error: %v", err))
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
