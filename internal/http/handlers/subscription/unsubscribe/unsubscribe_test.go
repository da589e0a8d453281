package unsubscribe

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

// MockService реализует интерфейс unsubscribe.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Unsubscribe(ctx context.Context, userID string, itemID int64) error {
	args := m.Called(ctx, userID, itemID)
	return args.Error(0)
}

const testUserID = "3b6ad1c0-7a19-4a9a-91cd-0d8ffb1b2a64"

func TestUnsubscribeHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		userID         string
		itemID         string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "успешная отписка",
			userID: testUserID,
			itemID: "7",
			setupMock: func(m *MockService) {
				m.On("Unsubscribe", mock.Anything, testUserID, int64(7)).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `subscription deleted`,
		},
		{
			name:           "некорректный UUID пользователя",
			userID:         "abc",
			itemID:         "7",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `invalid user id`,
		},
		{
			name:           "некорректный ID элемента",
			userID:         testUserID,
			itemID:         "seven",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `invalid item id`,
		},
		{
			name:   "подписки не было",
			userID: testUserID,
			itemID: "7",
			setupMock: func(m *MockService) {
				m.On("Unsubscribe", mock.Anything, testUserID, int64(7)).
					Return(models.ErrSubscriptionNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `subscription not found`,
		},
		{
			name:   "пользователь не найден",
			userID: testUserID,
			itemID: "7",
			setupMock: func(m *MockService) {
				m.On("Unsubscribe", mock.Anything, testUserID, int64(7)).
					Return(models.ErrUserNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `user not found`,
		},
		{
			name:   "ошибка сервиса",
			userID: testUserID,
			itemID: "7",
			setupMock: func(m *MockService) {
				m.On("Unsubscribe", mock.Anything, testUserID, int64(7)).
					Return(errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `could not delete subscription`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			url := "/v1/users/" + tt.userID + "/subscriptions/events/" + tt.itemID
			req := httptest.NewRequest(http.MethodDelete, url, nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.userID)
			rctx.URLParams.Add("itemId", tt.itemID)
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
