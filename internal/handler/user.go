package handler

import (
	"net/http"

	"github.com/osse101/CaseOpener_Go/internal/domain"
	"github.com/osse101/CaseOpener_Go/internal/game"
	"github.com/osse101/CaseOpener_Go/internal/logger"
)

// RegisterUserRequest is the body of POST /users
type RegisterUserRequest struct {
	Username string `json:"username" validate:"required,max=32,username"`
}

// RegisterUserResponse carries the new user and their starting state
type RegisterUserResponse struct {
	User  domain.User      `json:"user"`
	State domain.GameState `json:"state"`
}

// HandleRegisterUser registers a player and creates their game state
// @Summary Register user
// @Description Create a user with a fresh game state
// @Tags users
// @Accept json
// @Produce json
// @Param request body RegisterUserRequest true "Username"
// @Success 201 {object} RegisterUserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Username taken"
// @Failure 500 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /users [post]
func HandleRegisterUser(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterUserRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Register user"); err != nil {
			return
		}

		user, state, err := svc.RegisterUser(r.Context(), req.Username)
		if err != nil {
			respondServiceError(w, r, "Register user", err)
			return
		}

		logger.FromContext(r.Context()).Info("User registered", "user_id", user.ID, "username", user.Username)
		respondJSON(w, http.StatusCreated, RegisterUserResponse{User: *user, State: *state})
	}
}

// HandleGetUser returns a registered user
// @Summary Get user
// @Tags users
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} domain.User
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /users/{userID} [get]
func HandleGetUser(svc game.Service) http.HandlerFunc {
	return handleUserAction("Get user", svc.GetUser)
}
