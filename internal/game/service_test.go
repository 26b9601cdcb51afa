package game

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CaseOpener_Go/internal/cooldown"
	"github.com/osse101/CaseOpener_Go/internal/domain"
	"github.com/osse101/CaseOpener_Go/internal/testing/leaktest"
)

func TestRegisterUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	state := f.state(t)
	assert.Equal(t, domain.DefaultStartingBalance, state.Balance)
	assert.Equal(t, 1, state.Level)
	assert.Zero(t, state.XP)

	tests := []struct {
		name     string
		username string
		wantErr  error
	}{
		{"empty", "   ", domain.ErrInvalidInput},
		{"too long", "a123456789012345678901234567890123", domain.ErrInvalidInput},
		{"duplicate", "tester", domain.ErrUsernameTaken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := f.svc.RegisterUser(ctx, tt.username)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateState(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user := domain.User{ID: "u2", Username: "second"}
	require.NoError(t, f.store.CreateUser(ctx, user))

	state, err := f.svc.CreateState(ctx, "u2", float64Ptr(50))
	require.NoError(t, err)
	assert.Equal(t, 50.0, state.Balance)

	_, err = f.svc.CreateState(ctx, "ghost", nil)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	require.NoError(t, f.store.CreateUser(ctx, domain.User{ID: "u3", Username: "third"}))
	_, err = f.svc.CreateState(ctx, "u3", float64Ptr(-1))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateState(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	state, err := f.svc.UpdateState(ctx, f.user.ID, domain.GameStateUpdate{XP: intPtr(2500)})
	require.NoError(t, err)
	assert.Equal(t, 2500, state.XP)
	assert.Equal(t, 3, state.Level)

	state, err = f.svc.UpdateState(ctx, f.user.ID, domain.GameStateUpdate{Level: intPtr(7), Balance: float64Ptr(12.5)})
	require.NoError(t, err)
	assert.Equal(t, 7, state.Level)
	assert.Equal(t, 12.5, state.Balance)

	_, err = f.svc.UpdateState(ctx, f.user.ID, domain.GameStateUpdate{Balance: float64Ptr(-3)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.svc.UpdateState(ctx, "ghost", domain.GameStateUpdate{})
	assert.ErrorIs(t, err, domain.ErrGameStateNotFound)
}

func TestAdjustBalance(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	state, err := f.svc.AdjustBalance(ctx, f.user.ID, -250.25)
	require.NoError(t, err)
	assert.Equal(t, 749.75, state.Balance)

	_, err = f.svc.AdjustBalance(ctx, f.user.ID, -1000)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.Equal(t, 749.75, f.state(t).Balance)
}

func TestOpenCase(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	result, err := f.svc.OpenCase(ctx, f.user.ID, "budget_case")
	require.NoError(t, err)

	assert.Equal(t, "ump45_mudder", result.Item.ID)
	assert.Equal(t, domain.WearFieldTested, result.Item.Condition.Name)
	assert.False(t, result.Item.StatTrak)
	assert.Zero(t, result.Item.Kills)
	assert.Equal(t, 0.35, result.Item.FinalValue)
	assert.Equal(t, testNow, result.Item.AcquiredAt)
	assert.Equal(t, 10, result.XPGained)
	assert.False(t, result.LeveledUp)

	state := f.state(t)
	assert.Equal(t, 997.5, state.Balance)
	assert.Equal(t, 1, state.CasesOpened)
	assert.Equal(t, 2.5, state.TotalSpent)
	assert.Equal(t, 10, state.XP)
	require.NotNil(t, state.BestDrop)
	assert.Equal(t, domain.BestDrop{Name: result.Item.Name, Value: 0.35}, *state.BestDrop)

	items := f.inventory(t)
	require.Len(t, items, 1)
	assert.Equal(t, result.Inventory.ID, items[0].ID)
	assert.Equal(t, "Budget Case", items[0].CaseSource)
	assert.Equal(t, 0.35, items[0].CurrentValue)
	assert.Equal(t, domain.WearFieldTested, items[0].Condition)
	assert.Equal(t, 1, f.recorder.opened)
}

func TestOpenCase_BestDropOnlyImproves(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.OpenCase(ctx, f.user.ID, "operation_case")
	require.NoError(t, err)
	best := *f.state(t).BestDrop

	_, err = f.svc.OpenCase(ctx, f.user.ID, "budget_case")
	require.NoError(t, err)
	assert.Equal(t, best, *f.state(t).BestDrop)
}

func TestOpenCase_XPBonusAndLevelUp(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.UpdateState(ctx, f.user.ID, domain.GameStateUpdate{CasesOpened: intPtr(20), XP: intPtr(990)})
	require.NoError(t, err)

	result, err := f.svc.OpenCase(ctx, f.user.ID, "budget_case")
	require.NoError(t, err)
	assert.Equal(t, 20, result.XPGained)
	assert.True(t, result.LeveledUp)
	assert.Equal(t, 2, result.State.Level)
	assert.Equal(t, 1010, result.State.XP)
	assert.Equal(t, 21, result.State.CasesOpened)
}

func TestOpenCase_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(t *testing.T, f *fixture)
		caseID  string
		userID  func(f *fixture) string
		wantErr error
	}{
		{
			name:    "unknown case",
			caseID:  "no_such_case",
			wantErr: domain.ErrCaseNotFound,
		},
		{
			name: "insufficient funds",
			setup: func(t *testing.T, f *fixture) {
				_, err := f.svc.UpdateState(context.Background(), f.user.ID, domain.GameStateUpdate{Balance: float64Ptr(24.99)})
				require.NoError(t, err)
			},
			caseID:  "premium_case",
			wantErr: domain.ErrInsufficientFunds,
		},
		{
			name:    "unknown user",
			caseID:  "budget_case",
			userID:  func(*fixture) string { return "ghost" },
			wantErr: domain.ErrGameStateNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			if tt.setup != nil {
				tt.setup(t, f)
			}
			userID := f.user.ID
			if tt.userID != nil {
				userID = tt.userID(f)
			}
			before := *f.state(t)

			_, err := f.svc.OpenCase(context.Background(), userID, tt.caseID)
			assert.ErrorIs(t, err, tt.wantErr)

			after := f.state(t)
			assert.Equal(t, before.Balance, after.Balance)
			assert.Equal(t, before.CasesOpened, after.CasesOpened)
			assert.Empty(t, f.inventory(t))
			assert.Zero(t, f.recorder.opened)
		})
	}
}

func TestOpenCase_Cooldown(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.OpenCase(ctx, f.user.ID, "daily_free")
	require.NoError(t, err)

	_, err = f.svc.OpenCase(ctx, f.user.ID, "daily_free")
	require.Error(t, err)
	assert.ErrorIs(t, err, cooldown.ErrOnCooldown{})

	var onCooldown cooldown.ErrOnCooldown
	require.ErrorAs(t, err, &onCooldown)
	assert.Equal(t, "daily_free", onCooldown.CaseID)
	assert.Positive(t, onCooldown.Remaining)

	assert.Len(t, f.inventory(t), 1)
	assert.Equal(t, 1, f.recorder.cooldowns)
	assert.Equal(t, domain.DefaultStartingBalance, f.state(t).Balance)

	active, err := f.svc.Cooldowns(ctx, f.user.ID)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "daily_free", active[0].CaseID)

	require.NoError(t, f.svc.ClearCooldown(ctx, f.user.ID, "daily_free"))
	_, err = f.svc.OpenCase(ctx, f.user.ID, "daily_free")
	assert.NoError(t, err)
}

func TestSetCooldown_UnknownCase(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.SetCooldown(context.Background(), f.user.ID, "nope", testNow)
	assert.ErrorIs(t, err, domain.ErrCaseNotFound)
}

func TestPurchaseCase(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	state, err := f.svc.PurchaseCase(ctx, f.user.ID, "operation_case")
	require.NoError(t, err)
	assert.Equal(t, 990.0, state.Balance)
	assert.Zero(t, state.CasesOpened)
	assert.Equal(t, 10.0, state.TotalSpent)
	assert.Empty(t, f.inventory(t))

	summary, err := f.svc.Statistics(ctx, f.user.ID)
	require.NoError(t, err)
	assert.Equal(t, -10.0, summary.TotalProfit)
	assert.Equal(t, -100.0, summary.ProfitPercentage)

	_, err = f.svc.UpdateState(ctx, f.user.ID, domain.GameStateUpdate{Balance: float64Ptr(5)})
	require.NoError(t, err)
	_, err = f.svc.PurchaseCase(ctx, f.user.ID, "operation_case")
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
}

func TestCaseOdds(t *testing.T) {
	f := newFixture(t)

	odds, err := f.svc.CaseOdds("elite_knife_case")
	require.NoError(t, err)
	require.Len(t, odds, 4)

	var total float64
	for _, o := range odds {
		assert.Equal(t, domain.RarityKnife, o.Rarity)
		assert.InDelta(t, 0.25, o.Probability, 1e-9)
		total += o.Probability
	}
	assert.InDelta(t, 1.0, total, 1e-9)

	_, err = f.svc.CaseOdds("missing")
	assert.ErrorIs(t, err, domain.ErrCaseNotFound)
}

func TestOpenCase_ConcurrentSameUser(t *testing.T) {
	f := newFixture(t)
	const opens = 20

	leaktest.CheckNoGoroutineLeak(t, func() {
		var wg sync.WaitGroup
		errs := make(chan error, opens)
		for i := 0; i < opens; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := f.svc.OpenCase(context.Background(), f.user.ID, "budget_case")
				errs <- err
			}()
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			assert.NoError(t, err)
		}
	})

	state := f.state(t)
	assert.Equal(t, opens, state.CasesOpened)
	assert.Equal(t, 950.0, state.Balance)
	assert.Equal(t, 50.0, state.TotalSpent)
	assert.Len(t, f.inventory(t), opens)
}

func TestStatistics(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.OpenCase(ctx, f.user.ID, "budget_case")
	require.NoError(t, err)

	summary, err := f.svc.Statistics(ctx, f.user.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.CasesOpened)
	assert.Equal(t, 1, summary.ItemCount)
	assert.Equal(t, 0.35, summary.InventoryValue)
	assert.Equal(t, -2.5, summary.TotalProfit)
}
