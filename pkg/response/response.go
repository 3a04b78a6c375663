// Package response writes JSON responses in the exact shapes the Bistro Boss
// frontend expects: raw driver acknowledgments and document arrays for data,
// and {"message": ...} bodies for errors.
package response

import (
	"encoding/json"
	"net/http"
)

type messageBody struct {
	Message string `json:"message"`
}

// JSON writes v as the response body with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// Message writes a {"message": msg} body with the given status code.
func Message(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, messageBody{Message: msg})
}

// Unauthorized sends the 401 body the site's client code matches on.
func Unauthorized(w http.ResponseWriter) {
	Message(w, http.StatusUnauthorized, "unAuthorized")
}

// Forbidden sends the 403 body the site's client code matches on.
func Forbidden(w http.ResponseWriter) {
	Message(w, http.StatusForbidden, "forbidden")
}

// BadRequest sends a 400 with the given message.
func BadRequest(w http.ResponseWriter, msg string) {
	Message(w, http.StatusBadRequest, msg)
}

// InternalError sends an undifferentiated 500.
func InternalError(w http.ResponseWriter) {
	Message(w, http.StatusInternalServerError, "internal server error")
}
