package memory

import (
	"context"

	"github.com/osse101/CaseOpener_Go/internal/domain"
	"github.com/osse101/CaseOpener_Go/internal/repository"
)

// tx applies writes immediately and records an undo step for each.
// Only one tx is open at a time.
type tx struct {
	store *Store
	undo  []func()
	done  bool
}

var _ repository.Tx = (*tx)(nil)

// BeginTx blocks until no other transaction is open.
func (s *Store) BeginTx(ctx context.Context) (repository.Tx, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.txLock.Lock()
	return &tx{store: s}, nil
}

func (t *tx) Commit(_ context.Context) error {
	if t.done {
		return repository.ErrTxClosed
	}
	t.finish()
	return nil
}

func (t *tx) Rollback(_ context.Context) error {
	if t.done {
		return repository.ErrTxClosed
	}
	t.store.mu.Lock()
	for i := len(t.undo) - 1; i >= 0; i-- {
		t.undo[i]()
	}
	t.store.mu.Unlock()
	t.finish()
	return nil
}

func (t *tx) finish() {
	t.done = true
	t.undo = nil
	t.store.txLock.Unlock()
}

// LockUser is a no-op: the whole store is already serialized.
func (t *tx) LockUser(_ context.Context, _ string) error { return nil }

func (t *tx) CreateUser(ctx context.Context, user domain.User) error {
	if err := t.store.CreateUser(ctx, user); err != nil {
		return err
	}
	t.undo = append(t.undo, func() {
		delete(t.store.users, user.ID)
		delete(t.store.usernames, user.Username)
	})
	return nil
}

func (t *tx) GetGameState(ctx context.Context, userID string) (*domain.GameState, error) {
	return t.store.GetGameState(ctx, userID)
}

func (t *tx) CreateGameState(ctx context.Context, state domain.GameState) error {
	if err := t.store.CreateGameState(ctx, state); err != nil {
		return err
	}
	t.undo = append(t.undo, func() { delete(t.store.states, state.UserID) })
	return nil
}

func (t *tx) UpdateGameState(ctx context.Context, state domain.GameState) error {
	prev, err := t.store.GetGameState(ctx, state.UserID)
	if err != nil {
		return err
	}
	if err := t.store.UpdateGameState(ctx, state); err != nil {
		return err
	}
	t.undo = append(t.undo, func() { t.store.states[prev.UserID] = *prev })
	return nil
}

func (t *tx) GetInventory(ctx context.Context, userID string) ([]domain.InventoryItem, error) {
	return t.store.GetInventory(ctx, userID)
}

func (t *tx) GetInventoryItem(ctx context.Context, userID, itemID string) (*domain.InventoryItem, error) {
	return t.store.GetInventoryItem(ctx, userID, itemID)
}

func (t *tx) AddInventoryItem(ctx context.Context, item domain.InventoryItem) error {
	if err := t.store.AddInventoryItem(ctx, item); err != nil {
		return err
	}
	t.undo = append(t.undo, func() { _, _ = t.store.removeLocked(item.UserID, []string{item.ID}) })
	return nil
}

func (t *tx) RemoveInventoryItems(_ context.Context, userID string, itemIDs ...string) error {
	t.store.mu.Lock()
	removed, err := t.store.removeLocked(userID, itemIDs)
	t.store.mu.Unlock()
	if err != nil {
		return err
	}
	t.undo = append(t.undo, t.restoreItems(userID, removed))
	return nil
}

func (t *tx) ClearInventory(_ context.Context, userID string) (int, error) {
	t.store.mu.Lock()
	removed := t.store.inventory[userID]
	delete(t.store.inventory, userID)
	t.store.mu.Unlock()

	t.undo = append(t.undo, t.restoreItems(userID, removed))
	return len(removed), nil
}

// restoreItems puts back only what this tx removed; reads sort by AcquiredAt.
func (t *tx) restoreItems(userID string, removed []domain.InventoryItem) func() {
	return func() {
		if len(removed) == 0 {
			return
		}
		t.store.inventory[userID] = append(t.store.inventory[userID], removed...)
	}
}

func (t *tx) GetCooldown(ctx context.Context, userID, caseID string) (*domain.CaseCooldown, error) {
	return t.store.GetCooldown(ctx, userID, caseID)
}

func (t *tx) ListCooldowns(ctx context.Context, userID string) ([]domain.CaseCooldown, error) {
	return t.store.ListCooldowns(ctx, userID)
}

func (t *tx) UpsertCooldown(ctx context.Context, cd domain.CaseCooldown) error {
	prev, _ := t.store.GetCooldown(ctx, cd.UserID, cd.CaseID)
	if err := t.store.UpsertCooldown(ctx, cd); err != nil {
		return err
	}
	t.undo = append(t.undo, t.restoreCooldown(cd.UserID, cd.CaseID, prev))
	return nil
}

func (t *tx) DeleteCooldown(ctx context.Context, userID, caseID string) error {
	prev, _ := t.store.GetCooldown(ctx, userID, caseID)
	if err := t.store.DeleteCooldown(ctx, userID, caseID); err != nil {
		return err
	}
	t.undo = append(t.undo, t.restoreCooldown(userID, caseID, prev))
	return nil
}

func (t *tx) restoreCooldown(userID, caseID string, prev *domain.CaseCooldown) func() {
	return func() {
		if prev == nil {
			delete(t.store.cooldowns[userID], caseID)
			return
		}
		if t.store.cooldowns[userID] == nil {
			t.store.cooldowns[userID] = make(map[string]domain.CaseCooldown)
		}
		t.store.cooldowns[userID][caseID] = *prev
	}
}
