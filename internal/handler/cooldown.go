package handler

import (
	"net/http"
	"time"

	"github.com/osse101/CaseOpener_Go/internal/game"
)

// SetCooldownRequest is the body of POST /cooldowns
type SetCooldownRequest struct {
	UserID        string    `json:"user_id" validate:"required,uuid"`
	CaseID        string    `json:"case_id" validate:"required,max=64,excludesall=\x00\n\r\t"`
	CooldownUntil time.Time `json:"cooldown_until" validate:"required"`
}

// HandleGetCooldowns lists a player's case cooldowns
// @Summary Get cooldowns
// @Tags cooldowns
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {array} domain.CaseCooldown
// @Security ApiKeyAuth
// @Router /cooldowns/{userID} [get]
func HandleGetCooldowns(svc game.Service) http.HandlerFunc {
	return handleUserAction("Get cooldowns", svc.Cooldowns)
}

// HandleSetCooldown sets or replaces a case cooldown
// @Summary Set cooldown
// @Tags cooldowns
// @Accept json
// @Produce json
// @Param request body SetCooldownRequest true "Cooldown"
// @Success 201 {object} domain.CaseCooldown
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /cooldowns [post]
func HandleSetCooldown(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SetCooldownRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Set cooldown"); err != nil {
			return
		}

		cd, err := svc.SetCooldown(r.Context(), req.UserID, req.CaseID, req.CooldownUntil)
		if err != nil {
			respondServiceError(w, r, "Set cooldown", err)
			return
		}

		respondJSON(w, http.StatusCreated, cd)
	}
}

// HandleClearCooldown removes a case cooldown
// @Summary Clear cooldown
// @Tags cooldowns
// @Produce json
// @Param userID path string true "User ID"
// @Param caseID path string true "Case ID"
// @Success 200 {object} SuccessResponse
// @Security ApiKeyAuth
// @Router /cooldowns/{userID}/{caseID} [delete]
func HandleClearCooldown(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetPathParam(r, w, ParamUserID)
		if !ok {
			return
		}
		caseID, ok := GetPathParam(r, w, ParamCaseID)
		if !ok {
			return
		}

		if err := svc.ClearCooldown(r.Context(), userID, caseID); err != nil {
			respondServiceError(w, r, "Clear cooldown", err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgCooldownClearedSuccess})
	}
}
