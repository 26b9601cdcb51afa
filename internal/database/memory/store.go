// Package memory is an in-process repository.Store. It is the default
// backend and the one used by service tests.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/osse101/CaseOpener_Go/internal/domain"
	"github.com/osse101/CaseOpener_Go/internal/repository"
)

// Store keeps everything in maps. Transactions are serialized; reads and
// non-transactional writes only take the data lock.
type Store struct {
	mu        sync.RWMutex
	txLock    sync.Mutex
	users     map[string]domain.User
	usernames map[string]string
	states    map[string]domain.GameState
	inventory map[string][]domain.InventoryItem
	cooldowns map[string]map[string]domain.CaseCooldown
}

var _ repository.Store = (*Store)(nil)

// New creates an empty store.
func New() *Store {
	return &Store{
		users:     make(map[string]domain.User),
		usernames: make(map[string]string),
		states:    make(map[string]domain.GameState),
		inventory: make(map[string][]domain.InventoryItem),
		cooldowns: make(map[string]map[string]domain.CaseCooldown),
	}
}

// Ping always succeeds.
func (s *Store) Ping(_ context.Context) error { return nil }

// Close is a no-op.
func (s *Store) Close() {}

// ---- Users ----

func (s *Store) CreateUser(_ context.Context, user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.usernames[user.Username]; taken {
		return fmt.Errorf("%w: %s", domain.ErrUsernameTaken, user.Username)
	}
	s.users[user.ID] = user
	s.usernames[user.Username] = user.ID
	return nil
}

func (s *Store) GetUser(_ context.Context, userID string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[userID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUserNotFound, userID)
	}
	return &user, nil
}

func (s *Store) GetUserByUsername(_ context.Context, username string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.usernames[username]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUserNotFound, username)
	}
	user := s.users[id]
	return &user, nil
}

// ---- Game states ----

func (s *Store) CreateGameState(_ context.Context, state domain.GameState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.states[state.UserID] = cloneState(state)
	return nil
}

func (s *Store) GetGameState(_ context.Context, userID string) (*domain.GameState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.states[userID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrGameStateNotFound, userID)
	}
	state = cloneState(state)
	return &state, nil
}

func (s *Store) UpdateGameState(_ context.Context, state domain.GameState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.states[state.UserID]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrGameStateNotFound, state.UserID)
	}
	s.states[state.UserID] = cloneState(state)
	return nil
}

// ---- Inventory ----

func (s *Store) GetInventory(_ context.Context, userID string) ([]domain.InventoryItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]domain.InventoryItem, len(s.inventory[userID]))
	copy(items, s.inventory[userID])
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].AcquiredAt.Before(items[j].AcquiredAt)
	})
	return items, nil
}

func (s *Store) GetInventoryItem(_ context.Context, userID, itemID string) (*domain.InventoryItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.inventory[userID] {
		if item.ID == itemID {
			found := item
			return &found, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrItemNotFound, itemID)
}

func (s *Store) AddInventoryItem(_ context.Context, item domain.InventoryItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.inventory[item.UserID] = append(s.inventory[item.UserID], item)
	return nil
}

func (s *Store) RemoveInventoryItems(_ context.Context, userID string, itemIDs ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.removeLocked(userID, itemIDs)
	return err
}

// removeLocked deletes itemIDs and returns the removed entries.
func (s *Store) removeLocked(userID string, itemIDs []string) ([]domain.InventoryItem, error) {
	wanted := make(map[string]bool, len(itemIDs))
	for _, id := range itemIDs {
		wanted[id] = true
	}

	current := s.inventory[userID]
	kept := make([]domain.InventoryItem, 0, len(current))
	removed := make([]domain.InventoryItem, 0, len(itemIDs))
	for _, item := range current {
		if wanted[item.ID] {
			removed = append(removed, item)
			delete(wanted, item.ID)
			continue
		}
		kept = append(kept, item)
	}

	for _, id := range itemIDs {
		if wanted[id] {
			return nil, fmt.Errorf("%w: %s", domain.ErrItemNotFound, id)
		}
	}
	s.inventory[userID] = kept
	return removed, nil
}

func (s *Store) ClearInventory(_ context.Context, userID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.inventory[userID])
	delete(s.inventory, userID)
	return n, nil
}

// ---- Cooldowns ----

func (s *Store) GetCooldown(_ context.Context, userID, caseID string) (*domain.CaseCooldown, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cd, ok := s.cooldowns[userID][caseID]
	if !ok {
		return nil, nil
	}
	return &cd, nil
}

func (s *Store) ListCooldowns(_ context.Context, userID string) ([]domain.CaseCooldown, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.CaseCooldown, 0, len(s.cooldowns[userID]))
	for _, cd := range s.cooldowns[userID] {
		out = append(out, cd)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CaseID < out[j].CaseID })
	return out, nil
}

func (s *Store) UpsertCooldown(_ context.Context, cd domain.CaseCooldown) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cooldowns[cd.UserID] == nil {
		s.cooldowns[cd.UserID] = make(map[string]domain.CaseCooldown)
	}
	if existing, ok := s.cooldowns[cd.UserID][cd.CaseID]; ok {
		cd.ID = existing.ID
	}
	s.cooldowns[cd.UserID][cd.CaseID] = cd
	return nil
}

func (s *Store) DeleteCooldown(_ context.Context, userID, caseID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.cooldowns[userID], caseID)
	return nil
}

func cloneState(state domain.GameState) domain.GameState {
	if state.BestDrop != nil {
		bd := *state.BestDrop
		state.BestDrop = &bd
	}
	return state
}
