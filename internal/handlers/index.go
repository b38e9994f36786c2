package handlers

import (
	_ "embed"
	"html/template"
	"net/http"
	"time"

	"github.com/sbilibin2017/flashcards-service/internal/logger"
)

//go:embed index.html
var indexHTML string

var indexTemplate = template.Must(template.New("index").Parse(indexHTML))

// NewIndexHandler returns an HTTP handler rendering the landing page. It sets
// a last_visited cookie on every visit.
// @Summary Landing page
// @Produce html
// @Success 200 "Landing page"
// @Router / [get]
func NewIndexHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		now := time.Now().UTC()

		http.SetCookie(w, &http.Cookie{
			Name:  "last_visited",
			Value: now.Format(time.RFC3339),
			Path:  "/",
		})

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := indexTemplate.Execute(w, map[string]any{"Year": now.Year()}); err != nil {
			logger.Log.Errorw("failed to render index page", "err", err)
		}
	}
}
