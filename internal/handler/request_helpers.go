package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/CaseOpener_Go/internal/logger"
)

// Path parameter names shared with the router
const (
	ParamUserID = "userID"
	ParamItemID = "itemID"
	ParamCaseID = "caseID"
)

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// DecodeAndValidateRequest decodes a JSON request body and validates it.
// If it returns an error the response has already been written.
//
// Example usage:
//
//	var req OpenCaseRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Open case"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Warn(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// GetPathParam retrieves a required chi URL parameter.
// If ok is false the response has already been written.
func GetPathParam(r *http.Request, w http.ResponseWriter, paramName string) (string, bool) {
	value := chi.URLParam(r, paramName)
	if value == "" {
		logger.FromContext(r.Context()).Warn(fmt.Sprintf("Missing %s path parameter", paramName))
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingPathParam, paramName))
		return "", false
	}
	return value, true
}

// handleUserAction serves a bodyless request scoped to the {userID} path parameter.
func handleUserAction[RES any](
	opName string,
	action func(ctx context.Context, userID string) (RES, error),
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetPathParam(r, w, ParamUserID)
		if !ok {
			return
		}

		res, err := action(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, opName, err)
			return
		}

		respondJSON(w, http.StatusOK, res)
	}
}

// handleUserRequest decodes and validates a REQ body, then serves it scoped
// to the {userID} path parameter.
func handleUserRequest[REQ any, RES any](
	opName string,
	status int,
	action func(ctx context.Context, userID string, req REQ) (RES, error),
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetPathParam(r, w, ParamUserID)
		if !ok {
			return
		}

		var req REQ
		if err := DecodeAndValidateRequest(r, w, &req, opName); err != nil {
			return
		}

		res, err := action(r.Context(), userID, req)
		if err != nil {
			respondServiceError(w, r, opName, err)
			return
		}

		respondJSON(w, status, res)
	}
}
