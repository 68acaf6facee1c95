package resp

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type ErrorResponse struct {
	Error string `json:"error"`
}

// WriteJSONResponse пишет статус и тело в JSON
func WriteJSONResponse(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

// WriteError ответ вида {"error": "..."}
func WriteError(w http.ResponseWriter, status int, msg string) {
	WriteJSONResponse(w, status, ErrorResponse{Error: msg})
}
