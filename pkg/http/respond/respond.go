package respond

import (
	"encoding/json"
	"net/http"
)

// Failure is the error envelope shared by every endpoint.
type Failure struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// JSON writes an arbitrary payload with the given status code.
func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// Error writes the failure envelope with the given status and message.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, Failure{Success: false, Message: message})
}

// BadRequest writes a 400 failure envelope.
func BadRequest(w http.ResponseWriter) {
	Error(w, http.StatusBadRequest, MsgBadRequest)
}

// NotFound writes a 404 failure envelope.
func NotFound(w http.ResponseWriter) {
	Error(w, http.StatusNotFound, MsgNotFound)
}

// MethodNotAllowed writes a 405 failure envelope.
func MethodNotAllowed(w http.ResponseWriter) {
	Error(w, http.StatusMethodNotAllowed, MsgMethodNotAllowed)
}

// Unprocessable writes a 422 failure envelope.
func Unprocessable(w http.ResponseWriter) {
	Error(w, http.StatusUnprocessableEntity, MsgUnprocessable)
}

// InternalError writes a 500 failure envelope.
func InternalError(w http.ResponseWriter) {
	Error(w, http.StatusInternalServerError, MsgInternalError)
}
