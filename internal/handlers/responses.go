package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/flashcards-service/internal/logger"
	"github.com/sbilibin2017/flashcards-service/internal/models"
)

// FlashCardContent is the public projection of a flashcard. Tags, difficulty
// and timestamps stay internal.
// swagger:model FlashCardContent
type FlashCardContent struct {
	ID       uuid.UUID `json:"id"`
	Question string    `json:"question"`
	Answer   string    `json:"answer"`
	Topic    string    `json:"topic"`
}

// FlashCardResponse wraps a single flashcard
// swagger:model FlashCardResponse
type FlashCardResponse struct {
	Msg     string           `json:"msg"`
	Content FlashCardContent `json:"content"`
}

// FlashCardListResponse wraps a list of flashcards
// swagger:model FlashCardListResponse
type FlashCardListResponse struct {
	Msg     string             `json:"msg"`
	Content []FlashCardContent `json:"content"`
}

// StringListResponse wraps a list of tags or topics
// swagger:model StringListResponse
type StringListResponse struct {
	Msg     string   `json:"msg"`
	Content []string `json:"content"`
}

func newFlashCardContent(card models.FlashCard) FlashCardContent {
	return FlashCardContent{
		ID:       card.ID,
		Question: card.Question,
		Answer:   card.Answer,
		Topic:    card.Topic,
	}
}

func newFlashCardListResponse(cards []models.FlashCard) FlashCardListResponse {
	content := make([]FlashCardContent, 0, len(cards))
	for _, card := range cards {
		content = append(content, newFlashCardContent(card))
	}
	return FlashCardListResponse{Msg: "success", Content: content}
}

// writeJSON serializes payload before touching the response so that an
// encoding failure can still surface as a 500.
func writeJSON(w http.ResponseWriter, status int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		logger.Log.Errorw("failed to serialize response", "err", err)
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Error serializing response data: %v", err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(body)
}
