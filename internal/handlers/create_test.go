package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/sbilibin2017/flashcards-service/internal/handlers"
	"github.com/sbilibin2017/flashcards-service/internal/models"
	"github.com/sbilibin2017/flashcards-service/internal/repositories"
	"github.com/stretchr/testify/assert"
)

func sampleCard() *models.FlashCard {
	return &models.FlashCard{
		ID:         uuid.New(),
		Question:   "What does defer do?",
		Answer:     "Schedules a call to run when the function returns.",
		Topic:      "basics",
		Tags:       pq.StringArray{"functions"},
		Difficulty: 1,
		CreatedAt:  time.Now().UTC(),
	}
}

func TestCreateFlashcardHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	card := sampleCard()

	tests := []struct {
		name        string
		body        string
		mockSetup   func(m *handlers.MockFlashcardCreator)
		wantStatus  int
		wantDetails string
	}{
		{
			name: "success",
			body: `{"question":"What does defer do?","answer":"Schedules a call.","topic":"basics","tags":["functions"],"difficulty":1}`,
			mockSetup: func(m *handlers.MockFlashcardCreator) {
				m.EXPECT().Create(gomock.Any(), gomock.Any()).Return(card, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:        "malformed json",
			body:        `{"question":`,
			wantStatus:  http.StatusBadRequest,
			wantDetails: "Error validating incoming data: unexpected EOF",
		},
		{
			name: "validation failure",
			body: `{"question":"","answer":"a","topic":"t","tags":["x"],"difficulty":1}`,
			mockSetup: func(m *handlers.MockFlashcardCreator) {
				m.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, models.ErrEmptyQuestion)
			},
			wantStatus:  http.StatusBadRequest,
			wantDetails: "Error validating incoming data: Question field cannot be empty.",
		},
		{
			name: "duplicate question",
			body: `{"question":"What does defer do?","answer":"a","topic":"t","tags":["x"],"difficulty":1}`,
			mockSetup: func(m *handlers.MockFlashcardCreator) {
				m.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(nil, &repositories.DuplicateQuestionError{Question: "What does defer do?"})
			},
			wantStatus:  http.StatusConflict,
			wantDetails: "Questions must be unique: What does defer do?",
		},
		{
			name: "storage failure",
			body: `{"question":"q","answer":"a","topic":"t","tags":["x"],"difficulty":1}`,
			mockSetup: func(m *handlers.MockFlashcardCreator) {
				m.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))
			},
			wantStatus:  http.StatusInternalServerError,
			wantDetails: "Database error: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := handlers.NewMockFlashcardCreator(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}
			handler := handlers.NewCreateFlashcardHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/v1/flashcards", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			if tt.wantStatus == http.StatusOK {
				var resp handlers.FlashCardResponse
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, "success", resp.Msg)
				assert.Equal(t, card.ID, resp.Content.ID)
				assert.Equal(t, card.Question, resp.Content.Question)
				assert.Equal(t, card.Answer, resp.Content.Answer)
				assert.Equal(t, card.Topic, resp.Content.Topic)
				return
			}

			var errResp handlers.ErrorResponse
			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
			assert.Equal(t, "Error", errResp.Msg)
			assert.Equal(t, tt.wantStatus, errResp.Status)
			assert.Equal(t, tt.wantDetails, errResp.Details)
		})
	}
}
