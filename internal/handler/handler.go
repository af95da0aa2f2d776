package handler

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
)

// orderEnvelope is the success response shape shared by every order route.
// Order holds a single order or a list depending on the route.
type orderEnvelope struct {
	Message string `json:"message"`
	Order   any    `json:"order"`
}

// errorEnvelope is the failure response shape.
type errorEnvelope struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Headers are already sent; nothing useful left to do.
		return
	}
}

// writeOrder writes a success envelope.
func writeOrder(w http.ResponseWriter, status int, message string, order any) {
	writeJSON(w, status, orderEnvelope{Message: message, Order: order})
}

// writeError writes an error envelope with the given status code and message.
func writeError(w http.ResponseWriter, status int, message, detail string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Str("detail", detail).Int("status", status).Msg("handler error")
	writeJSON(w, status, errorEnvelope{Message: message, Error: detail})
}
