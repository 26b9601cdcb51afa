package handler

import (
	"net/http"

	"github.com/osse101/CaseOpener_Go/internal/game"
)

// HandleGetStats returns profit, inventory and progression figures
// @Summary Get user stats
// @Tags stats
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} stats.Summary
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /game/{userID}/stats [get]
func HandleGetStats(svc game.Service) http.HandlerFunc {
	return handleUserAction("Get stats", svc.Statistics)
}
