package handlers_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/flashcards-service/internal/handlers"
	"github.com/sbilibin2017/flashcards-service/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestGetFlashcardHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	card := sampleCard()

	tests := []struct {
		name        string
		id          string
		mockSetup   func(m *handlers.MockFlashcardGetter)
		wantStatus  int
		wantDetails string
	}{
		{
			name: "found",
			id:   card.ID.String(),
			mockSetup: func(m *handlers.MockFlashcardGetter) {
				m.EXPECT().Get(gomock.Any(), card.ID).Return(card, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:        "malformed id",
			id:          "not-a-uuid",
			wantStatus:  http.StatusBadRequest,
			wantDetails: "Uuid parsing error: invalid UUID length: 10",
		},
		{
			name: "unknown id",
			id:   card.ID.String(),
			mockSetup: func(m *handlers.MockFlashcardGetter) {
				m.EXPECT().Get(gomock.Any(), card.ID).Return(nil, services.ErrFlashcardNotFound)
			},
			wantStatus:  http.StatusNotFound,
			wantDetails: fmt.Sprintf("Not found: Flashcard with id %s not found", card.ID),
		},
		{
			name: "storage failure",
			id:   card.ID.String(),
			mockSetup: func(m *handlers.MockFlashcardGetter) {
				m.EXPECT().Get(gomock.Any(), card.ID).Return(nil, errors.New("timeout"))
			},
			wantStatus:  http.StatusInternalServerError,
			wantDetails: "Database error: timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := handlers.NewMockFlashcardGetter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			router := chi.NewRouter()
			router.Get("/v1/flashcards/{id}", handlers.NewGetFlashcardHandler(mockSvc))

			req := httptest.NewRequest(http.MethodGet, "/v1/flashcards/"+tt.id, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantStatus == http.StatusOK {
				var resp handlers.FlashCardResponse
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, "success", resp.Msg)
				assert.Equal(t, card.ID, resp.Content.ID)
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

func TestGetFlashcardHandler_ContentOmitsInternalFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	card := sampleCard()
	mockSvc := handlers.NewMockFlashcardGetter(ctrl)
	mockSvc.EXPECT().Get(gomock.Any(), card.ID).Return(card, nil)

	router := chi.NewRouter()
	router.Get("/v1/flashcards/{id}", handlers.NewGetFlashcardHandler(mockSvc))

	req := httptest.NewRequest(http.MethodGet, "/v1/flashcards/"+card.ID.String(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var raw map[string]any
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))

	content, ok := raw["content"].(map[string]any)
	assert.True(t, ok)
	assert.NotContains(t, content, "tags")
	assert.NotContains(t, content, "difficulty")
	assert.NotContains(t, content, "created_at")

	_ = uuid.MustParse(content["id"].(string))
}
