package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/CaseOpener_Go/internal/domain"
)

const testUserID = "5b0c7a4e-3f0e-4e63-8a43-1d3f8e6f2c11"

func TestHandleRegisterUser(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    interface{}
		setupMock      func(*MockGameService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Success",
			requestBody: RegisterUserRequest{Username: "newuser"},
			setupMock: func(m *MockGameService) {
				m.On("RegisterUser", mock.Anything, "newuser").Return(
					&domain.User{ID: testUserID, Username: "newuser"},
					&domain.GameState{UserID: testUserID, Balance: 1000, Level: 1},
					nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"username":"newuser"`,
		},
		{
			name:        "Username Taken",
			requestBody: RegisterUserRequest{Username: "taken"},
			setupMock: func(m *MockGameService) {
				m.On("RegisterUser", mock.Anything, "taken").Return(nil, nil, domain.ErrUsernameTaken)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   ErrMsgUsernameTakenError,
		},
		{
			name:           "Invalid Request - Missing Username",
			requestBody:    RegisterUserRequest{},
			setupMock:      func(m *MockGameService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequestSummary,
		},
		{
			name:           "Invalid JSON",
			requestBody:    "{not json",
			setupMock:      func(m *MockGameService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockGameService{}
			tt.setupMock(svc)

			req := newRequest(t, http.MethodPost, "/api/v1/users", tt.requestBody, nil)
			w := httptest.NewRecorder()

			HandleRegisterUser(svc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			svc.AssertExpectations(t)
		})
	}
}

func TestHandleGetUser(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		svc := &MockGameService{}
		svc.On("GetUser", mock.Anything, testUserID).Return(&domain.User{ID: testUserID, Username: "tester"}, nil)

		req := newRequest(t, http.MethodGet, "/api/v1/users/"+testUserID, nil, map[string]string{ParamUserID: testUserID})
		w := httptest.NewRecorder()

		HandleGetUser(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"username":"tester"`)
		svc.AssertExpectations(t)
	})

	t.Run("Not Found", func(t *testing.T) {
		svc := &MockGameService{}
		svc.On("GetUser", mock.Anything, "missing").Return(nil, domain.ErrUserNotFound)

		req := newRequest(t, http.MethodGet, "/api/v1/users/missing", nil, map[string]string{ParamUserID: "missing"})
		w := httptest.NewRecorder()

		HandleGetUser(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgUserNotFoundError)
	})

	t.Run("Missing Path Param", func(t *testing.T) {
		svc := &MockGameService{}

		req := newRequest(t, http.MethodGet, "/api/v1/users/", nil, nil)
		w := httptest.NewRecorder()

		HandleGetUser(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Missing userID path parameter")
		svc.AssertNotCalled(t, "GetUser", mock.Anything, mock.Anything)
	})
}

func TestHandleGameState(t *testing.T) {
	t.Run("Create With Balance", func(t *testing.T) {
		svc := &MockGameService{}
		svc.On("CreateState", mock.Anything, testUserID, mock.MatchedBy(func(b *float64) bool {
			return b != nil && *b == 250
		})).Return(&domain.GameState{UserID: testUserID, Balance: 250, Level: 1}, nil)

		body := `{"user_id":"` + testUserID + `","balance":250}`
		req := newRequest(t, http.MethodPost, "/api/v1/gamestate", body, nil)
		w := httptest.NewRecorder()

		HandleCreateGameState(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"balance":250`)
		svc.AssertExpectations(t)
	})

	t.Run("Create Rejects Negative Balance", func(t *testing.T) {
		svc := &MockGameService{}

		body := `{"user_id":"` + testUserID + `","balance":-5}`
		req := newRequest(t, http.MethodPost, "/api/v1/gamestate", body, nil)
		w := httptest.NewRecorder()

		HandleCreateGameState(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"balance"`)
	})

	t.Run("Partial Update", func(t *testing.T) {
		svc := &MockGameService{}
		svc.On("UpdateState", mock.Anything, testUserID, mock.MatchedBy(func(u domain.GameStateUpdate) bool {
			return u.XP != nil && *u.XP == 1500 && u.Balance == nil &&
				u.BestDrop != nil && u.BestDrop.Name == "AWP | Asiimov"
		})).Return(&domain.GameState{UserID: testUserID, XP: 1500, Level: 2}, nil)

		body := `{"xp":1500,"best_drop":{"name":"AWP | Asiimov","value":140.21}}`
		req := newRequest(t, http.MethodPatch, "/api/v1/gamestate/"+testUserID, body, map[string]string{ParamUserID: testUserID})
		w := httptest.NewRecorder()

		HandleUpdateGameState(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"level":2`)
		svc.AssertExpectations(t)
	})

	t.Run("Get Missing State", func(t *testing.T) {
		svc := &MockGameService{}
		svc.On("GetState", mock.Anything, testUserID).Return(nil, domain.ErrGameStateNotFound)

		req := newRequest(t, http.MethodGet, "/api/v1/gamestate/"+testUserID, nil, map[string]string{ParamUserID: testUserID})
		w := httptest.NewRecorder()

		HandleGetGameState(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
