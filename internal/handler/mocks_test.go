package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CaseOpener_Go/internal/domain"
	"github.com/osse101/CaseOpener_Go/internal/game"
	"github.com/osse101/CaseOpener_Go/internal/stats"
)

// MockGameService mocks game.Service
type MockGameService struct {
	mock.Mock
}

var _ game.Service = (*MockGameService)(nil)

func (m *MockGameService) RegisterUser(ctx context.Context, username string) (*domain.User, *domain.GameState, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.User), args.Get(1).(*domain.GameState), args.Error(2)
}

func (m *MockGameService) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockGameService) GetState(ctx context.Context, userID string) (*domain.GameState, error) {
	args := m.Called(ctx, userID)
	return stateArg(args, 0), args.Error(1)
}

func (m *MockGameService) CreateState(ctx context.Context, userID string, balance *float64) (*domain.GameState, error) {
	args := m.Called(ctx, userID, balance)
	return stateArg(args, 0), args.Error(1)
}

func (m *MockGameService) UpdateState(ctx context.Context, userID string, update domain.GameStateUpdate) (*domain.GameState, error) {
	args := m.Called(ctx, userID, update)
	return stateArg(args, 0), args.Error(1)
}

func (m *MockGameService) AdjustBalance(ctx context.Context, userID string, delta float64) (*domain.GameState, error) {
	args := m.Called(ctx, userID, delta)
	return stateArg(args, 0), args.Error(1)
}

func (m *MockGameService) GetInventory(ctx context.Context, userID string) ([]domain.InventoryItem, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryItem), args.Error(1)
}

func (m *MockGameService) AddInventoryItem(ctx context.Context, item domain.InventoryItem) (*domain.InventoryItem, error) {
	args := m.Called(ctx, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryItem), args.Error(1)
}

func (m *MockGameService) RemoveInventoryItem(ctx context.Context, userID, itemID string) error {
	return m.Called(ctx, userID, itemID).Error(0)
}

func (m *MockGameService) ClearInventory(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockGameService) Cases() []domain.Case {
	return m.Called().Get(0).([]domain.Case)
}

func (m *MockGameService) Case(caseID string) (domain.Case, error) {
	args := m.Called(caseID)
	return args.Get(0).(domain.Case), args.Error(1)
}

func (m *MockGameService) CaseOdds(caseID string) ([]game.ItemOdds, error) {
	args := m.Called(caseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]game.ItemOdds), args.Error(1)
}

func (m *MockGameService) OpenCase(ctx context.Context, userID, caseID string) (*game.OpenResult, error) {
	args := m.Called(ctx, userID, caseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*game.OpenResult), args.Error(1)
}

func (m *MockGameService) PurchaseCase(ctx context.Context, userID, caseID string) (*domain.GameState, error) {
	args := m.Called(ctx, userID, caseID)
	return stateArg(args, 0), args.Error(1)
}

func (m *MockGameService) SellItem(ctx context.Context, userID, itemID string) (*game.SellResult, error) {
	args := m.Called(ctx, userID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*game.SellResult), args.Error(1)
}

func (m *MockGameService) SellAll(ctx context.Context, userID string) (*game.SellResult, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*game.SellResult), args.Error(1)
}

func (m *MockGameService) TradeUp(ctx context.Context, userID string, itemIDs []string) (*game.TradeUpResult, error) {
	args := m.Called(ctx, userID, itemIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*game.TradeUpResult), args.Error(1)
}

func (m *MockGameService) MarketPrices(ctx context.Context, userID string) (map[string]float64, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]float64), args.Error(1)
}

func (m *MockGameService) BuyMarketItem(ctx context.Context, userID, itemID string) (*game.BuyResult, error) {
	args := m.Called(ctx, userID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*game.BuyResult), args.Error(1)
}

func (m *MockGameService) Statistics(ctx context.Context, userID string) (*stats.Summary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stats.Summary), args.Error(1)
}

func (m *MockGameService) Cooldowns(ctx context.Context, userID string) ([]domain.CaseCooldown, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CaseCooldown), args.Error(1)
}

func (m *MockGameService) SetCooldown(ctx context.Context, userID, caseID string, until time.Time) (domain.CaseCooldown, error) {
	args := m.Called(ctx, userID, caseID, until)
	return args.Get(0).(domain.CaseCooldown), args.Error(1)
}

func (m *MockGameService) ClearCooldown(ctx context.Context, userID, caseID string) error {
	return m.Called(ctx, userID, caseID).Error(0)
}

func stateArg(args mock.Arguments, i int) *domain.GameState {
	if args.Get(i) == nil {
		return nil
	}
	return args.Get(i).(*domain.GameState)
}

// MockPinger mocks the storage readiness check
type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// newRequest builds a request with chi URL params already resolved.
func newRequest(t *testing.T, method, target string, body interface{}, params map[string]string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}

	req := httptest.NewRequest(method, target, &buf)
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}
