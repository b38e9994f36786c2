package handlers

import (
	"encoding/json"
	"net/http"
)

// fallbackErrorBody is written verbatim when the error envelope itself
// cannot be serialized.
const fallbackErrorBody = `{"msg":"Error","status":500,"details":"Internal server error formatting error response"}`

// ErrorResponse is the error envelope returned by every failing endpoint
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Envelope marker, always "Error"
	Msg string `json:"msg"`

	// HTTP status code repeated in the body
	Status int `json:"status"`

	// Human-readable failure description
	Details string `json:"details"`
}

// writeError renders the error envelope with the given status. Serialization
// of the envelope never fails the request: a hard-coded body is used instead.
func writeError(w http.ResponseWriter, status int, details string) {
	body, err := json.Marshal(ErrorResponse{
		Msg:     "Error",
		Status:  status,
		Details: details,
	})
	if err != nil {
		body = []byte(fallbackErrorBody)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(body)
}
