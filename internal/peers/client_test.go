package peers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventsphere/user-service/internal/models"
)

func TestEventClient_Find(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/events/42":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":42,"title":"GopherCon","location":"Berlin"}`))
		case "/v1/events/404":
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	client := NewEventClient(srv.URL+"/v1/events", time.Second, 2)

	t.Run("событие найдено", func(t *testing.T) {
		item, err := client.Find(context.Background(), 42)
		require.NoError(t, err)
		event, ok := item.(*models.EventDto)
		require.True(t, ok)
		assert.Equal(t, int64(42), event.ID)
		assert.Equal(t, "GopherCon", event.Title)
	})

	t.Run("событие не существует", func(t *testing.T) {
		_, err := client.Find(context.Background(), 404)
		assert.True(t, errors.Is(err, models.ErrItemNotFound))
	})

	t.Run("ошибка соседнего сервиса", func(t *testing.T) {
		_, err := client.Find(context.Background(), 500)
		assert.True(t, errors.Is(err, models.ErrPeerUnavailable))
	})
}

func TestClient_RetriesOnTransientError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":7,"name":"Music"}`))
	}))
	defer srv.Close()

	client := NewCategoryClient(srv.URL, time.Second, 3)

	item, err := client.Find(context.Background(), 7)
	require.NoError(t, err)
	category, ok := item.(*models.CategoryDto)
	require.True(t, ok)
	assert.Equal(t, "Music", category.Name)
	assert.Equal(t, int32(2), calls.Load())
}

func TestClient_PeerDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	srv.Close() // соединение должно падать

	client := NewEventClient(srv.URL, 100*time.Millisecond, 2)

	_, err := client.Find(context.Background(), 1)
	assert.True(t, errors.Is(err, models.ErrPeerUnavailable))
}
