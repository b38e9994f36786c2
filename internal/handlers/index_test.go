package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/sbilibin2017/flashcards-service/internal/handlers"
	"github.com/stretchr/testify/assert"
)

func TestIndexHandler(t *testing.T) {
	handler := handlers.NewIndexHandler()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), strconv.Itoa(time.Now().UTC().Year()))

	cookies := rec.Result().Cookies()
	var lastVisited *http.Cookie
	for _, c := range cookies {
		if c.Name == "last_visited" {
			lastVisited = c
		}
	}
	assert.NotNil(t, lastVisited)
	assert.Equal(t, "/", lastVisited.Path)

	_, err := time.Parse(time.RFC3339, lastVisited.Value)
	assert.NoError(t, err)
}
