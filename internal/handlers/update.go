package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/flashcards-service/internal/logger"
	"github.com/sbilibin2017/flashcards-service/internal/models"
	"github.com/sbilibin2017/flashcards-service/internal/repositories"
	"github.com/sbilibin2017/flashcards-service/internal/services"
)

// FlashcardUpdater defines the interface that the update service must implement.
type FlashcardUpdater interface {
	Update(ctx context.Context, id uuid.UUID, patch models.UpdatedFlashCard) (*models.FlashCard, error)
}

// NewUpdateFlashcardHandler returns an HTTP handler for partially updating a flashcard.
// @Summary Update a flashcard
// @Description Overwrites only the fields present in the request body. Absent fields keep their stored value.
// @Tags flashcards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Flashcard id"
// @Param updatedFlashCard body models.UpdatedFlashCard true "Fields to update"
// @Success 200 {object} handlers.FlashCardResponse "Updated flashcard"
// @Failure 400 {object} handlers.ErrorResponse "Malformed id or invalid field"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid API key"
// @Failure 404 {object} handlers.ErrorResponse "Unknown id"
// @Failure 409 {object} handlers.ErrorResponse "Duplicate question"
// @Failure 500 {object} handlers.ErrorResponse "Storage failure"
// @Router /flashcards/{id} [put]
func NewUpdateFlashcardHandler(svc FlashcardUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("Uuid parsing error: %v", err))
			return
		}

		var patch models.UpdatedFlashCard
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("Error validating incoming data: %v", err))
			return
		}

		updated, err := svc.Update(r.Context(), id, patch)
		if err != nil {
			var dup *repositories.DuplicateQuestionError
			switch {
			case isValidationError(err):
				writeError(w, http.StatusBadRequest, fmt.Sprintf("Error validating incoming data: %v", err))
			case errors.Is(err, services.ErrFlashcardNotFound):
				writeError(w, http.StatusNotFound, fmt.Sprintf("Not found: Flashcard with id %s not found", id))
			case errors.As(err, &dup):
				writeError(w, http.StatusConflict, dup.Error())
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, fmt.Sprintf("Database error: %v", err))
			}
			return
		}

		writeJSON(w, http.StatusOK, FlashCardResponse{
			Msg:     "success",
			Content: newFlashCardContent(*updated),
		})
	}
}
