package domain

import "time"

// DefaultStartingBalance is the balance granted to new players.
const DefaultStartingBalance = 1000.0

// BestDrop records the most valuable item a player has opened.
type BestDrop struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// GameState is a player's wallet and progression.
type GameState struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Balance     float64   `json:"balance"`
	Level       int       `json:"level"`
	XP          int       `json:"xp"`
	CasesOpened int       `json:"cases_opened"`
	TotalSpent  float64   `json:"total_spent"`
	TotalEarned float64   `json:"total_earned"`
	BestDrop    *BestDrop `json:"best_drop,omitempty"`
	LastLogin   time.Time `json:"last_login"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewGameState returns the default state for a freshly registered user.
func NewGameState(id, userID string, balance float64, now time.Time) GameState {
	return GameState{
		ID:        id,
		UserID:    userID,
		Balance:   balance,
		Level:     1,
		LastLogin: now,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// GameStateUpdate is a partial update; nil fields are left unchanged.
type GameStateUpdate struct {
	Balance     *float64  `json:"balance,omitempty"`
	Level       *int      `json:"level,omitempty"`
	XP          *int      `json:"xp,omitempty"`
	CasesOpened *int      `json:"cases_opened,omitempty"`
	TotalSpent  *float64  `json:"total_spent,omitempty"`
	TotalEarned *float64  `json:"total_earned,omitempty"`
	BestDrop    *BestDrop `json:"best_drop,omitempty"`
}

// Apply copies the set fields of u onto s.
func (u GameStateUpdate) Apply(s *GameState) {
	if u.Balance != nil {
		s.Balance = *u.Balance
	}
	if u.Level != nil {
		s.Level = *u.Level
	}
	if u.XP != nil {
		s.XP = *u.XP
	}
	if u.CasesOpened != nil {
		s.CasesOpened = *u.CasesOpened
	}
	if u.TotalSpent != nil {
		s.TotalSpent = *u.TotalSpent
	}
	if u.TotalEarned != nil {
		s.TotalEarned = *u.TotalEarned
	}
	if u.BestDrop != nil {
		bd := *u.BestDrop
		s.BestDrop = &bd
	}
}
