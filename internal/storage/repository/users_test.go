package repository

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventsphere/user-service/internal/models"
)

func testUser(username, email string) models.User {
	first := "Test"
	last := "User"
	dob := time.Date(1990, 5, 20, 0, 0, 0, 0, time.UTC)
	return models.User{
		Username:    username,
		Password:    "$2a$10$testhash",
		Email:       email,
		FirstName:   &first,
		LastName:    &last,
		DateOfBirth: &dob,
	}
}

func TestCreateAndGetUser(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()
	ctx := context.Background()

	created, err := storage.CreateUser(ctx, testUser("alice", "alice@example.com"))
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.False(t, created.UpdatedAt.IsZero())

	got, err := storage.GetUser(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, "alice@example.com", got.Email)
	require.NotNil(t, got.FirstName)
	assert.Equal(t, "Test", *got.FirstName)
	require.NotNil(t, got.DateOfBirth)
	assert.Equal(t, 1990, got.DateOfBirth.Year())
}

func TestGetUserNotFound(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	_, err := storage.GetUser(context.Background(), "3b6ad1c0-7a19-4a9a-91cd-0d8ffb1b2a64")
	require.ErrorIs(t, err, models.ErrUserNotFound)
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()
	ctx := context.Background()

	_, err := storage.CreateUser(ctx, testUser("alice", "alice@example.com"))
	require.NoError(t, err)

	_, err = storage.CreateUser(ctx, testUser("alice", "other@example.com"))
	require.ErrorIs(t, err, models.ErrUsernameExists)
}

// Почта, прошедшая формат-валидацию, но не помещающаяся в колонку,
// должна отклоняться как некорректные данные, а не как внутренняя ошибка.
func TestCreateUserOverlongEmail(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()
	ctx := context.Background()

	longEmail := strings.Repeat("a", 120) + "@example.com"
	_, err := storage.CreateUser(ctx, testUser("alice", longEmail))
	require.ErrorIs(t, err, models.ErrUserNotValid)
}

func TestUpdateUserOverlongEmail(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()
	ctx := context.Background()

	created, err := storage.CreateUser(ctx, testUser("alice", "alice@example.com"))
	require.NoError(t, err)

	created.Email = strings.Repeat("a", 120) + "@example.com"
	_, err = storage.UpdateUser(ctx, *created)
	require.ErrorIs(t, err, models.ErrUserNotValid)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()
	ctx := context.Background()

	_, err := storage.CreateUser(ctx, testUser("alice", "alice@example.com"))
	require.NoError(t, err)

	_, err = storage.CreateUser(ctx, testUser("bob", "alice@example.com"))
	require.ErrorIs(t, err, models.ErrEmailExists)
}

func TestListUsers(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()
	ctx := context.Background()

	for _, u := range []models.User{
		testUser("alice", "alice@example.com"),
		testUser("bob", "bob@example.com"),
		testUser("carol", "carol@example.com"),
	} {
		_, err := storage.CreateUser(ctx, u)
		require.NoError(t, err)
	}

	users, err := storage.ListUsers(ctx, 2, 0)
	require.NoError(t, err)
	assert.Len(t, users, 2)

	users, err = storage.ListUsers(ctx, 2, 2)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestUpdateUser(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()
	ctx := context.Background()

	created, err := storage.CreateUser(ctx, testUser("alice", "alice@example.com"))
	require.NoError(t, err)

	created.Username = "alice2"
	created.Email = "alice2@example.com"
	updated, err := storage.UpdateUser(ctx, *created)
	require.NoError(t, err)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt) || updated.UpdatedAt.Equal(updated.CreatedAt))

	got, err := storage.GetUser(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice2", got.Username)
	assert.Equal(t, "alice2@example.com", got.Email)
}

func TestUpdateUserDuplicateUsername(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()
	ctx := context.Background()

	_, err := storage.CreateUser(ctx, testUser("alice", "alice@example.com"))
	require.NoError(t, err)
	created, err := storage.CreateUser(ctx, testUser("bob", "bob@example.com"))
	require.NoError(t, err)

	created.Username = "alice"
	_, err = storage.UpdateUser(ctx, *created)
	require.ErrorIs(t, err, models.ErrUsernameExists)
}

func TestUpdateUserPassword(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()
	ctx := context.Background()

	created, err := storage.CreateUser(ctx, testUser("alice", "alice@example.com"))
	require.NoError(t, err)

	err = storage.UpdateUserPassword(ctx, created.ID, "$2a$10$newhash")
	require.NoError(t, err)

	got, err := storage.GetUser(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "$2a$10$newhash", got.Password)
}

func TestUpdateUserPasswordNotFound(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	err := storage.UpdateUserPassword(context.Background(),
		"3b6ad1c0-7a19-4a9a-91cd-0d8ffb1b2a64", "$2a$10$newhash")
	require.ErrorIs(t, err, models.ErrUserNotFound)
}

func TestDeleteUser(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()
	ctx := context.Background()

	created, err := storage.CreateUser(ctx, testUser("alice", "alice@example.com"))
	require.NoError(t, err)

	count, err := storage.DeleteUser(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	_, err = storage.GetUser(ctx, created.ID)
	require.ErrorIs(t, err, models.ErrUserNotFound)
}

func TestUserExists(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()
	ctx := context.Background()

	_, err := storage.CreateUser(ctx, testUser("alice", "alice@example.com"))
	require.NoError(t, err)

	exists, err := storage.UserExistsByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = storage.UserExistsByUsername(ctx, "bob")
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = storage.UserExistsByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = storage.UserExistsByEmail(ctx, "bob@example.com")
	require.NoError(t, err)
	assert.False(t, exists)
}
