package changepassword

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

// MockService реализует интерфейс changepassword.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) ChangePassword(ctx context.Context, id string, req models.DummyChangePassword) error {
	args := m.Called(ctx, id, req)
	return args.Error(0)
}

const testID = "3b6ad1c0-7a19-4a9a-91cd-0d8ffb1b2a64"

func TestChangePasswordHandler(t *testing.T) {
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
			name: "успешная смена пароля",
			id:   testID,
			body: `{"old":"oldpass1","new":"newpass1","confirm":"newpass1"}`,
			setupMock: func(m *MockService) {
				m.On("ChangePassword", mock.Anything, testID, mock.AnythingOfType("models.DummyChangePassword")).
					Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `password updated`,
		},
		{
			name:           "некорректный UUID в URL",
			id:             "abc",
			body:           `{"old":"oldpass1","new":"newpass1","confirm":"newpass1"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `invalid user id`,
		},
		{
			name:           "слишком короткий новый пароль",
			id:             testID,
			body:           `{"old":"oldpass1","new":"a1","confirm":"a1"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `field New must contain at least 6 characters`,
		},
		{
			name:           "новый пароль без цифр",
			id:             testID,
			body:           `{"old":"oldpass1","new":"letters","confirm":"letters"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `password must contain at least one letter and one digit`,
		},
		{
			name: "неверный старый пароль",
			id:   testID,
			body: `{"old":"wrong123","new":"newpass1","confirm":"newpass1"}`,
			setupMock: func(m *MockService) {
				m.On("ChangePassword", mock.Anything, testID, mock.AnythingOfType("models.DummyChangePassword")).
					Return(models.ErrIncorrectOldPassword)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `old password is incorrect`,
		},
		{
			name: "подтверждение не совпадает",
			id:   testID,
			body: `{"old":"oldpass1","new":"newpass1","confirm":"other123"}`,
			setupMock: func(m *MockService) {
				m.On("ChangePassword", mock.Anything, testID, mock.AnythingOfType("models.DummyChangePassword")).
					Return(models.ErrPasswordMismatch)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `new password and confirmation do not match`,
		},
		{
			name: "пользователь не найден",
			id:   testID,
			body: `{"old":"oldpass1","new":"newpass1","confirm":"newpass1"}`,
			setupMock: func(m *MockService) {
				m.On("ChangePassword", mock.Anything, testID, mock.AnythingOfType("models.DummyChangePassword")).
					Return(models.ErrUserNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `user not found`,
		},
		{
			name: "ошибка сервиса",
			id:   testID,
			body: `{"old":"oldpass1","new":"newpass1","confirm":"newpass1"}`,
			setupMock: func(m *MockService) {
				m.On("ChangePassword", mock.Anything, testID, mock.AnythingOfType("models.DummyChangePassword")).
					Return(errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `could not change password`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPatch, "/v1/users/"+tt.id+"/change-password", strings.NewReader(tt.body))
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.id)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
					"response body should contain %s, got %s", tt.expectedBody, w.Body.String())
			}

			mockService.AssertExpectations(t)
		})
	}
}
