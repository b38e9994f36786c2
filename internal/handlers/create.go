package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/sbilibin2017/flashcards-service/internal/logger"
	"github.com/sbilibin2017/flashcards-service/internal/models"
	"github.com/sbilibin2017/flashcards-service/internal/repositories"
)

// FlashcardCreator defines the interface that the create service must implement.
type FlashcardCreator interface {
	Create(ctx context.Context, input models.NewFlashCard) (*models.FlashCard, error)
}

// NewCreateFlashcardHandler returns an HTTP handler for creating a flashcard.
// @Summary Create a flashcard
// @Description Validates and stores a new flashcard. Questions must be unique.
// @Tags flashcards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param newFlashCard body models.NewFlashCard true "New flashcard"
// @Success 200 {object} handlers.FlashCardResponse "Created flashcard"
// @Failure 400 {object} handlers.ErrorResponse "Validation failure"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid API key"
// @Failure 409 {object} handlers.ErrorResponse "Duplicate question"
// @Failure 500 {object} handlers.ErrorResponse "Storage failure"
// @Router /flashcards [post]
func NewCreateFlashcardHandler(svc FlashcardCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input models.NewFlashCard
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("Error validating incoming data: %v", err))
			return
		}

		created, err := svc.Create(r.Context(), input)
		if err != nil {
			var dup *repositories.DuplicateQuestionError
			switch {
			case isValidationError(err):
				writeError(w, http.StatusBadRequest, fmt.Sprintf("Error validating incoming data: %v", err))
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
			Content: newFlashCardContent(*created),
		})
	}
}

// isValidationError reports whether err is one of the closed set of
// flashcard validation failures.
func isValidationError(err error) bool {
	return errors.Is(err, models.ErrEmptyQuestion) ||
		errors.Is(err, models.ErrEmptyAnswer) ||
		errors.Is(err, models.ErrEmptyTopic) ||
		errors.Is(err, models.ErrEmptyTags) ||
		errors.Is(err, models.ErrInvalidDifficulty)
}
