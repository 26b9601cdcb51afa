package handler

import (
	"net/http"

	"github.com/osse101/CaseOpener_Go/internal/game"
)

// CaseOddsResponse lists per-item selection probabilities of a case
type CaseOddsResponse struct {
	CaseID string          `json:"case_id"`
	Odds   []game.ItemOdds `json:"odds"`
}

// HandleGetCases lists every case in the catalog
// @Summary List cases
// @Tags cases
// @Produce json
// @Success 200 {array} domain.Case
// @Security ApiKeyAuth
// @Router /cases [get]
func HandleGetCases(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, svc.Cases())
	}
}

// HandleGetCase returns one case with its contents
// @Summary Get case
// @Tags cases
// @Produce json
// @Param caseID path string true "Case ID"
// @Success 200 {object} domain.Case
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /cases/{caseID} [get]
func HandleGetCase(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caseID, ok := GetPathParam(r, w, ParamCaseID)
		if !ok {
			return
		}

		c, err := svc.Case(caseID)
		if err != nil {
			respondServiceError(w, r, "Get case", err)
			return
		}

		respondJSON(w, http.StatusOK, c)
	}
}

// HandleGetCaseOdds returns the chance of each item in a case
// @Summary Get case odds
// @Tags cases
// @Produce json
// @Param caseID path string true "Case ID"
// @Success 200 {object} CaseOddsResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /cases/{caseID}/odds [get]
func HandleGetCaseOdds(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caseID, ok := GetPathParam(r, w, ParamCaseID)
		if !ok {
			return
		}

		odds, err := svc.CaseOdds(caseID)
		if err != nil {
			respondServiceError(w, r, "Get case odds", err)
			return
		}

		respondJSON(w, http.StatusOK, CaseOddsResponse{CaseID: caseID, Odds: odds})
	}
}
