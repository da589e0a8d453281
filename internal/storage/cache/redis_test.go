package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventsphere/user-service/internal/config"
	"github.com/eventsphere/user-service/internal/models"
)

func setupTestCache(t *testing.T) *Cache {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	t.Cleanup(func() { mr.Close() })

	cfg := config.RedisConnection{
		AddressRedis: mr.Addr(),
		Password:     "",
		DB:           0,
		User:         "",
	}

	cache, err := InitServer(context.Background(), cfg)
	require.NoError(t, err)
	return cache
}

func TestSetAndGet(t *testing.T) {
	cache := setupTestCache(t)

	expected := models.User{
		ID:       "3b6ad1c0-7a19-4a9a-91cd-0d8ffb1b2a64",
		Username: "alice",
		Email:    "alice@example.com",
	}
	err := cache.Set("user:"+expected.ID, expected, time.Hour)
	require.NoError(t, err)

	var actual models.User
	found, err := cache.Get("user:"+expected.ID, &actual)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, expected.Username, actual.Username)
	assert.Equal(t, expected.Email, actual.Email)
}

func TestGetNotFound(t *testing.T) {
	cache := setupTestCache(t)

	var out models.User
	found, err := cache.Get("user:no_such_key", &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestPasswordHashNotCached(t *testing.T) {
	cache := setupTestCache(t)

	user := models.User{ID: "id-1", Username: "alice", Password: "$2a$10$hash"}
	err := cache.Set("user:id-1", user, time.Hour)
	require.NoError(t, err)

	// Поле Password помечено json:"-", поэтому хэш не попадает в Redis.
	var restored models.User
	found, err := cache.Get("user:id-1", &restored)
	require.NoError(t, err)
	require.True(t, found)
	assert.Empty(t, restored.Password)
}

func TestInvalidate(t *testing.T) {
	cache := setupTestCache(t)

	err := cache.Set("key", "value", time.Minute)
	require.NoError(t, err)

	err = cache.Invalidate("key")
	require.NoError(t, err)

	var out string
	found, err := cache.Get("key", &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestGetInvalidJSON(t *testing.T) {
	cache := setupTestCache(t)

	err := cache.Db.Set(context.Background(), "bad", []byte("not-json"), time.Minute).Err()
	require.NoError(t, err)

	var out models.User
	found, err := cache.Get("bad", &out)
	assert.False(t, found)
	assert.Error(t, err)
}

func TestInitServerInvalidAddr(t *testing.T) {
	cfg := config.RedisConnection{
		AddressRedis: "127.0.0.1:9999",
	}

	cache, err := InitServer(context.Background(), cfg)
	assert.Nil(t, cache)
	assert.Error(t, err)
}
