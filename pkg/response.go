package pkg

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"
)

var ContentType = struct {
	JSON string
	Text string
}{
	JSON: "application/json",
	Text: "text/plain; charset=utf-8",
}

func WriteResponse(w http.ResponseWriter, contentType, message string) {
	WriteResponseBytes(w, contentType, []byte(message), http.StatusOK)
}

func WriteResponseBytes(w http.ResponseWriter, contentType string, message []byte, statusCode int) {
	if contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}
	w.WriteHeader(statusCode)

	if _, err := w.Write(message); err != nil {
		log.Errorf("failed to write response [%s]: %s", message, err)
	}
}

// WriteJSON marshals value and writes it with the given status code.
// A marshal failure results in a plain 500 response.
func WriteJSON(w http.ResponseWriter, value any, statusCode int) {
	valueJson, err := json.Marshal(value)
	if err != nil {
		log.Errorf("marshal response json: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	WriteResponseBytes(w, ContentType.JSON, valueJson, statusCode)
}

func WriteJSONOK(w http.ResponseWriter, value any) {
	WriteJSON(w, value, http.StatusOK)
}
