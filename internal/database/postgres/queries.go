package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/osse101/CaseOpener_Go/internal/domain"
)

// queries implements the repository reads and writes over either the pool
// or an open transaction.
type queries struct {
	db querier
	// forUpdate locks game state rows on read
	forUpdate bool
}

// ---- Users ----

func (q *queries) CreateUser(ctx context.Context, user domain.User) error {
	const query = `
		INSERT INTO users (user_id, username, created_at)
		VALUES ($1, $2, $3)
	`
	if _, err := q.db.Exec(ctx, query, user.ID, user.Username, user.CreatedAt); err != nil {
		if isPgError(err, PgErrorCodeUniqueViolation) {
			return fmt.Errorf("%w: %s", domain.ErrUsernameTaken, user.Username)
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertUser, err)
	}
	return nil
}

func (q *queries) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	if !validID(userID) {
		return nil, fmt.Errorf("%w: %s", domain.ErrUserNotFound, userID)
	}
	return q.getUser(ctx, `SELECT user_id, username, created_at FROM users WHERE user_id = $1`, userID)
}

func (q *queries) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return q.getUser(ctx, `SELECT user_id, username, created_at FROM users WHERE username = $1`, username)
}

func (q *queries) getUser(ctx context.Context, query, key string) (*domain.User, error) {
	var user domain.User
	err := q.db.QueryRow(ctx, query, key).Scan(&user.ID, &user.Username, &user.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrUserNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetUser, err)
	}
	return &user, nil
}

// ---- Game States ----

const gameStateColumns = `game_state_id, user_id, balance, level, xp, cases_opened,
	total_spent, total_earned, best_drop_name, best_drop_value, last_login, created_at, updated_at`

func (q *queries) CreateGameState(ctx context.Context, state domain.GameState) error {
	const query = `
		INSERT INTO game_states (` + gameStateColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	name, value := bestDropArgs(state.BestDrop)
	_, err := q.db.Exec(ctx, query,
		state.ID, state.UserID, state.Balance, state.Level, state.XP, state.CasesOpened,
		state.TotalSpent, state.TotalEarned, name, value, state.LastLogin, state.CreatedAt, state.UpdatedAt)
	if err != nil {
		if isPgError(err, PgErrorCodeForeignKeyViolation) {
			return fmt.Errorf("%w: %s", domain.ErrUserNotFound, state.UserID)
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertState, err)
	}
	return nil
}

func (q *queries) GetGameState(ctx context.Context, userID string) (*domain.GameState, error) {
	if !validID(userID) {
		return nil, fmt.Errorf("%w: %s", domain.ErrGameStateNotFound, userID)
	}

	query := `SELECT ` + gameStateColumns + ` FROM game_states WHERE user_id = $1`
	if q.forUpdate {
		query += ` FOR UPDATE`
	}

	var (
		state     domain.GameState
		bestName  pgtype.Text
		bestValue pgtype.Numeric
	)
	err := q.db.QueryRow(ctx, query, userID).Scan(
		&state.ID, &state.UserID, &state.Balance, &state.Level, &state.XP, &state.CasesOpened,
		&state.TotalSpent, &state.TotalEarned, &bestName, &bestValue,
		&state.LastLogin, &state.CreatedAt, &state.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrGameStateNotFound, userID)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetState, err)
	}

	if bestName.Valid && bestValue.Valid {
		value, err := numericToFloat64(bestValue)
		if err != nil {
			return nil, err
		}
		state.BestDrop = &domain.BestDrop{Name: bestName.String, Value: value}
	}
	return &state, nil
}

func (q *queries) UpdateGameState(ctx context.Context, state domain.GameState) error {
	if !validID(state.UserID) {
		return fmt.Errorf("%w: %s", domain.ErrGameStateNotFound, state.UserID)
	}

	const query = `
		UPDATE game_states
		SET balance = $2, level = $3, xp = $4, cases_opened = $5, total_spent = $6,
		    total_earned = $7, best_drop_name = $8, best_drop_value = $9,
		    last_login = $10, updated_at = $11
		WHERE user_id = $1
	`
	name, value := bestDropArgs(state.BestDrop)
	tag, err := q.db.Exec(ctx, query,
		state.UserID, state.Balance, state.Level, state.XP, state.CasesOpened, state.TotalSpent,
		state.TotalEarned, name, value, state.LastLogin, state.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateState, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrGameStateNotFound, state.UserID)
	}
	return nil
}

func bestDropArgs(bd *domain.BestDrop) (*string, *float64) {
	if bd == nil {
		return nil, nil
	}
	name, value := bd.Name, bd.Value
	return &name, &value
}

// ---- Inventory ----

const inventoryColumns = `inventory_item_id, user_id, item_id, item_name, item_type, rarity, condition,
	stattrak, kills, base_value, current_value, case_source, image, acquired_at`

func scanInventoryItem(row pgx.Row) (domain.InventoryItem, error) {
	var item domain.InventoryItem
	err := row.Scan(
		&item.ID, &item.UserID, &item.ItemID, &item.ItemName, &item.ItemType, &item.Rarity, &item.Condition,
		&item.StatTrak, &item.Kills, &item.BaseValue, &item.CurrentValue, &item.CaseSource, &item.Image, &item.AcquiredAt)
	return item, err
}

func (q *queries) GetInventory(ctx context.Context, userID string) ([]domain.InventoryItem, error) {
	if !validID(userID) {
		return []domain.InventoryItem{}, nil
	}

	rows, err := q.db.Query(ctx,
		`SELECT `+inventoryColumns+` FROM inventory_items WHERE user_id = $1 ORDER BY acquired_at, inventory_item_id`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetInventory, err)
	}
	defer rows.Close()

	items := []domain.InventoryItem{}
	for rows.Next() {
		item, err := scanInventoryItem(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetInventory, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetInventory, err)
	}
	return items, nil
}

func (q *queries) GetInventoryItem(ctx context.Context, userID, itemID string) (*domain.InventoryItem, error) {
	if !validID(userID) || !validID(itemID) {
		return nil, fmt.Errorf("%w: %s", domain.ErrItemNotFound, itemID)
	}

	row := q.db.QueryRow(ctx,
		`SELECT `+inventoryColumns+` FROM inventory_items WHERE user_id = $1 AND inventory_item_id = $2`,
		userID, itemID)
	item, err := scanInventoryItem(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrItemNotFound, itemID)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetInventory, err)
	}
	return &item, nil
}

func (q *queries) AddInventoryItem(ctx context.Context, item domain.InventoryItem) error {
	const query = `
		INSERT INTO inventory_items (` + inventoryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	_, err := q.db.Exec(ctx, query,
		item.ID, item.UserID, item.ItemID, item.ItemName, item.ItemType, item.Rarity, item.Condition,
		item.StatTrak, item.Kills, item.BaseValue, item.CurrentValue, item.CaseSource, item.Image, item.AcquiredAt)
	if err != nil {
		if isPgError(err, PgErrorCodeForeignKeyViolation) {
			return fmt.Errorf("%w: %s", domain.ErrUserNotFound, item.UserID)
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertItem, err)
	}
	return nil
}

// RemoveInventoryItems deletes inside a nested transaction (a savepoint when
// already in one) so a missing id removes nothing.
func (q *queries) RemoveInventoryItems(ctx context.Context, userID string, itemIDs ...string) error {
	for _, id := range itemIDs {
		if !validID(userID) || !validID(id) {
			return fmt.Errorf("%w: %s", domain.ErrItemNotFound, id)
		}
	}
	if len(itemIDs) == 0 {
		return nil
	}

	sub, err := q.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, sub)

	rows, err := sub.Query(ctx,
		`DELETE FROM inventory_items WHERE user_id = $1 AND inventory_item_id = ANY($2::uuid[]) RETURNING inventory_item_id`,
		userID, itemIDs)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteItems, err)
	}
	removed, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteItems, err)
	}

	found := make(map[string]bool, len(removed))
	for _, id := range removed {
		found[id] = true
	}
	for _, id := range itemIDs {
		if !found[id] {
			return fmt.Errorf("%w: %s", domain.ErrItemNotFound, id)
		}
	}

	if err := sub.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

func (q *queries) ClearInventory(ctx context.Context, userID string) (int, error) {
	if !validID(userID) {
		return 0, nil
	}
	tag, err := q.db.Exec(ctx, `DELETE FROM inventory_items WHERE user_id = $1`, userID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToDeleteItems, err)
	}
	return int(tag.RowsAffected()), nil
}

// ---- Cooldowns ----

const cooldownColumns = `cooldown_id, user_id, case_id, cooldown_until`

func scanCooldown(row pgx.Row) (domain.CaseCooldown, error) {
	var cd domain.CaseCooldown
	err := row.Scan(&cd.ID, &cd.UserID, &cd.CaseID, &cd.CooldownUntil)
	return cd, err
}

func (q *queries) GetCooldown(ctx context.Context, userID, caseID string) (*domain.CaseCooldown, error) {
	if !validID(userID) {
		return nil, nil
	}

	row := q.db.QueryRow(ctx,
		`SELECT `+cooldownColumns+` FROM case_cooldowns WHERE user_id = $1 AND case_id = $2`,
		userID, caseID)
	cd, err := scanCooldown(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetCooldown, err)
	}
	return &cd, nil
}

func (q *queries) ListCooldowns(ctx context.Context, userID string) ([]domain.CaseCooldown, error) {
	if !validID(userID) {
		return []domain.CaseCooldown{}, nil
	}

	rows, err := q.db.Query(ctx,
		`SELECT `+cooldownColumns+` FROM case_cooldowns WHERE user_id = $1 ORDER BY case_id`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetCooldown, err)
	}
	defer rows.Close()

	out := []domain.CaseCooldown{}
	for rows.Next() {
		cd, err := scanCooldown(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetCooldown, err)
		}
		out = append(out, cd)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetCooldown, err)
	}
	return out, nil
}

// UpsertCooldown keeps the existing row id when the case is already gated.
func (q *queries) UpsertCooldown(ctx context.Context, cd domain.CaseCooldown) error {
	const query = `
		INSERT INTO case_cooldowns (` + cooldownColumns + `)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, case_id) DO UPDATE SET cooldown_until = EXCLUDED.cooldown_until
	`
	if _, err := q.db.Exec(ctx, query, cd.ID, cd.UserID, cd.CaseID, cd.CooldownUntil); err != nil {
		if isPgError(err, PgErrorCodeForeignKeyViolation) {
			return fmt.Errorf("%w: %s", domain.ErrUserNotFound, cd.UserID)
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpsertCooldown, err)
	}
	return nil
}

func (q *queries) DeleteCooldown(ctx context.Context, userID, caseID string) error {
	if !validID(userID) {
		return nil
	}
	if _, err := q.db.Exec(ctx, `DELETE FROM case_cooldowns WHERE user_id = $1 AND case_id = $2`, userID, caseID); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteCooldown, err)
	}
	return nil
}
