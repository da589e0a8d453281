package update

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/eventsphere/user-service/internal/models"
)

// MockService реализует интерфейс update.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Update(ctx context.Context, id string, req models.DummyUserUpdate) (*models.User, error) {
	args := m.Called(ctx, id, req)
	if res := args.Get(0); res != nil {
		return res.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

const testID = "3b6ad1c0-7a19-4a9a-91cd-0d8ffb1b2a64"

func TestUpdateHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		id             string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешное обновление пользователя",
			id:   testID,
			body: `{"firstName":"Alice"}`,
			setupMock: func(m *MockService) {
				first := "Alice"
				user := &models.User{ID: testID, Username: "alice", FirstName: &first}
				m.On("Update", mock.Anything, testID, mock.AnythingOfType("models.DummyUserUpdate")).
					Return(user, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"firstName":"Alice"`,
		},
		{
			name:           "некорректный UUID в URL",
			id:             "abc",
			body:           `{}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `invalid user id`,
		},
		{
			name:           "некорректный JSON",
			id:             testID,
			body:           `{"username":`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `invalid request body`,
		},
		{
			name:           "слишком короткое имя",
			id:             testID,
			body:           `{"username":"ab"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `field Username must contain at least 3 characters`,
		},
		{
			name: "пользователь не найден",
			id:   testID,
			body: `{"firstName":"Alice"}`,
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, testID, mock.AnythingOfType("models.DummyUserUpdate")).
					Return(nil, models.ErrUserNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `user not found`,
		},
		{
			name: "новое имя занято",
			id:   testID,
			body: `{"username":"taken"}`,
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, testID, mock.AnythingOfType("models.DummyUserUpdate")).
					Return(nil, models.ErrUsernameExists)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `this username is already registered`,
		},
		{
			name: "ошибка сервиса",
			id:   testID,
			body: `{"firstName":"Alice"}`,
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, testID, mock.AnythingOfType("models.DummyUserUpdate")).
					Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `could not update user`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPatch, "/v1/users/"+tt.id, strings.NewReader(tt.body))
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.id)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
