package middlewares

import (
	"net/http"

	"github.com/sbilibin2017/flashcards-service/internal/logger"
)

// apiKeyErrorBody is the 401 envelope. Kept static so rejecting a request
// can never leak which part of the credential check failed.
const apiKeyErrorBody = `{"msg":"Error","status":401,"details":"Invalid API key"}`

// APIKeyMiddleware returns a middleware that requires the configured shared
// secret as a bearer credential. The Authorization header must equal
// "Bearer <apiKey>" byte-for-byte; any mismatch rejects uniformly.
func APIKeyMiddleware(apiKey string) func(http.Handler) http.Handler {
	expected := "Bearer " + apiKey

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") != expected {
				logger.Log.Errorw("authorization failed", "method", r.Method, "uri", r.RequestURI)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(apiKeyErrorBody))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
