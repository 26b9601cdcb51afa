package handler

import (
	"context"
	"net/http"

	"github.com/osse101/CaseOpener_Go/internal/domain"
	"github.com/osse101/CaseOpener_Go/internal/game"
)

// CreateGameStateRequest is the body of POST /gamestate
type CreateGameStateRequest struct {
	UserID  string   `json:"user_id" validate:"required,uuid"`
	Balance *float64 `json:"balance,omitempty" validate:"omitempty,gte=0"`
}

// BestDropRequest describes the most valuable drop of a player
type BestDropRequest struct {
	Name  string  `json:"name" validate:"required,max=128"`
	Value float64 `json:"value" validate:"gte=0"`
}

// UpdateGameStateRequest is a partial update; omitted fields keep their value.
type UpdateGameStateRequest struct {
	Balance     *float64         `json:"balance,omitempty" validate:"omitempty,gte=0"`
	Level       *int             `json:"level,omitempty" validate:"omitempty,gte=1"`
	XP          *int             `json:"xp,omitempty" validate:"omitempty,gte=0"`
	CasesOpened *int             `json:"cases_opened,omitempty" validate:"omitempty,gte=0"`
	TotalSpent  *float64         `json:"total_spent,omitempty" validate:"omitempty,gte=0"`
	TotalEarned *float64         `json:"total_earned,omitempty" validate:"omitempty,gte=0"`
	BestDrop    *BestDropRequest `json:"best_drop,omitempty"`
}

func (req UpdateGameStateRequest) toDomain() domain.GameStateUpdate {
	update := domain.GameStateUpdate{
		Balance:     req.Balance,
		Level:       req.Level,
		XP:          req.XP,
		CasesOpened: req.CasesOpened,
		TotalSpent:  req.TotalSpent,
		TotalEarned: req.TotalEarned,
	}
	if req.BestDrop != nil {
		update.BestDrop = &domain.BestDrop{Name: req.BestDrop.Name, Value: req.BestDrop.Value}
	}
	return update
}

// HandleGetGameState returns a player's wallet and progression
// @Summary Get game state
// @Tags gamestate
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} domain.GameState
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /gamestate/{userID} [get]
func HandleGetGameState(svc game.Service) http.HandlerFunc {
	return handleUserAction("Get game state", svc.GetState)
}

// HandleCreateGameState creates a game state for an existing user
// @Summary Create game state
// @Tags gamestate
// @Accept json
// @Produce json
// @Param request body CreateGameStateRequest true "Owner and optional balance"
// @Success 201 {object} domain.GameState
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /gamestate [post]
func HandleCreateGameState(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateGameStateRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create game state"); err != nil {
			return
		}

		state, err := svc.CreateState(r.Context(), req.UserID, req.Balance)
		if err != nil {
			respondServiceError(w, r, "Create game state", err)
			return
		}

		respondJSON(w, http.StatusCreated, state)
	}
}

// HandleUpdateGameState applies a partial update to a game state
// @Summary Update game state
// @Tags gamestate
// @Accept json
// @Produce json
// @Param userID path string true "User ID"
// @Param request body UpdateGameStateRequest true "Fields to change"
// @Success 200 {object} domain.GameState
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /gamestate/{userID} [patch]
func HandleUpdateGameState(svc game.Service) http.HandlerFunc {
	return handleUserRequest("Update game state", http.StatusOK,
		func(ctx context.Context, userID string, req UpdateGameStateRequest) (*domain.GameState, error) {
			return svc.UpdateState(ctx, userID, req.toDomain())
		})
}
