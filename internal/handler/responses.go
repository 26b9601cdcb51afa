package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/CaseOpener_Go/internal/cooldown"
	"github.com/osse101/CaseOpener_Go/internal/domain"
	"github.com/osse101/CaseOpener_Go/internal/logger"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"` + ErrMsgGenericServerError + `"}` + "\n"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and writes the mapped response.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, message := mapServiceErrorToUserMessage(err)

	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(opName+" failed", "error", err)
	} else {
		log.Warn(opName+" rejected", "error", err, "status", status)
	}

	respondError(w, status, message)
}

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and
// messages users can act upon.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	var cooldownErr cooldown.ErrOnCooldown
	if errors.As(err, &cooldownErr) {
		return http.StatusTooManyRequests, cooldownErr.Error()
	}

	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, ErrMsgUserNotFoundError
	case errors.Is(err, domain.ErrGameStateNotFound):
		return http.StatusNotFound, ErrMsgGameStateNotFoundError
	case errors.Is(err, domain.ErrCaseNotFound):
		return http.StatusNotFound, ErrMsgCaseNotFoundError
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrCooldownNotFound):
		return http.StatusNotFound, ErrMsgCooldownNotFoundError
	case errors.Is(err, domain.ErrUsernameTaken):
		return http.StatusConflict, ErrMsgUsernameTakenError
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest, ErrMsgNotEnoughMoneyError
	case errors.Is(err, domain.ErrInvalidTradeUp):
		return http.StatusUnprocessableEntity, ErrMsgInvalidTradeUpError
	case errors.Is(err, domain.ErrEmptyCase):
		return http.StatusUnprocessableEntity, ErrMsgEmptyCaseError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrDatabaseError):
		return http.StatusServiceUnavailable, ErrMsgUnavailableError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
