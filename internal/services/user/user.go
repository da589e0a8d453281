// Package services содержит бизнес-логику для управления учётными записями пользователей.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/eventsphere/user-service/internal/lib/password"
	"github.com/eventsphere/user-service/internal/lib/sl"
	"github.com/eventsphere/user-service/internal/models"
)

// UserRepository определяет методы для работы с пользователями в хранилище.
type UserRepository interface {
	// CreateUser сохраняет нового пользователя и возвращает строку с ID и метками времени.
	CreateUser(ctx context.Context, user models.User) (*models.User, error)
	// GetUser возвращает пользователя по ID или models.ErrUserNotFound.
	GetUser(ctx context.Context, id string) (*models.User, error)
	// ListUsers возвращает страницу пользователей.
	ListUsers(ctx context.Context, limit, offset int) ([]*models.User, error)
	// UpdateUser сохраняет изменённые поля пользователя.
	UpdateUser(ctx context.Context, user models.User) (*models.User, error)
	// UpdateUserPassword перезаписывает хэш пароля.
	UpdateUserPassword(ctx context.Context, id, passwordHash string) error
	// DeleteUser удаляет пользователя, возвращает количество удалённых строк.
	DeleteUser(ctx context.Context, id string) (int64, error)
	// UserExistsByUsername проверяет занятость имени.
	UserExistsByUsername(ctx context.Context, username string) (bool, error)
	// UserExistsByEmail проверяет занятость почты.
	UserExistsByEmail(ctx context.Context, email string) (bool, error)
}

// SubscriptionCleaner удаляет все подписки пользователя; используется
// при каскадном удалении учётной записи.
type SubscriptionCleaner interface {
	DeleteAllByUser(ctx context.Context, userID string) (int64, error)
}

// DeletePublisher публикует уведомление об удалении пользователя для соседних сервисов.
type DeletePublisher interface {
	PublishUserDeleted(id string) error
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение из кеша по ключу.
	Invalidate(key string) error
}

// UserService реализует операции над учётной записью: создание с проверкой
// уникальности, частичное обновление, смену пароля и каскадное удаление.
type UserService struct {
	repo      UserRepository
	cleaners  []SubscriptionCleaner
	publisher DeletePublisher
	cache     Cache
	log       *slog.Logger
}

// NewUserService создает новый экземпляр UserService.
func NewUserService(repo UserRepository, cleaners []SubscriptionCleaner, publisher DeletePublisher, cache Cache, log *slog.Logger) *UserService {
	return &UserService{
		repo:      repo,
		cleaners:  cleaners,
		publisher: publisher,
		cache:     cache,
		log:       log,
	}
}

// List возвращает страницу пользователей.
func (s *UserService) List(ctx context.Context, page, size int) ([]*models.User, error) {
	return s.repo.ListUsers(ctx, size, page*size)
}

// Get возвращает пользователя по ID, используя кеш или хранилище.
func (s *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	var result *models.User
	cacheKey := fmt.Sprintf("user:%s", id)
	found, err := s.cache.Get(cacheKey, &result)
	if err != nil {
		s.log.Warn("failed to read user from cache", slog.String("key", cacheKey), sl.Err(err))
	}
	if found {
		return result, nil
	}

	result, err = s.repo.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(cacheKey, result, time.Hour); err != nil {
		s.log.Warn("failed to cache user", slog.String("key", cacheKey), sl.Err(err))
	}
	return result, nil
}

// Create создает нового пользователя. Занятость имени проверяется раньше
// занятости почты, чтобы при двойном конфликте ошибка была про имя.
// Метки времени клиента отбрасываются: их выставляет база.
func (s *UserService) Create(ctx context.Context, req models.DummyUser) (*models.User, error) {
	exists, err := s.repo.UserExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, models.ErrUsernameExists
	}

	exists, err = s.repo.UserExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, models.ErrEmailExists
	}

	dateOfBirth, err := parseDateOfBirth(req.DateOfBirth)
	if err != nil {
		return nil, err
	}

	hash, err := password.GetHash(req.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username:    req.Username,
		Password:    hash,
		Email:       req.Email,
		DateOfBirth: dateOfBirth,
	}
	if req.FirstName != "" {
		user.FirstName = &req.FirstName
	}
	if req.LastName != "" {
		user.LastName = &req.LastName
	}

	created, err := s.repo.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}
	s.log.Info("created new user", slog.String("id", created.ID))

	cacheKey := fmt.Sprintf("user:%s", created.ID)
	if err := s.cache.Set(cacheKey, created, time.Hour); err != nil {
		s.log.Warn("failed to cache user", slog.String("key", cacheKey), sl.Err(err))
	}

	return created, nil
}

// Update применяет частичное обновление (merge-patch): меняются только
// присланные поля, отличающиеся от сохранённых. Смена имени или почты
// заново проверяется на уникальность; совпадение с текущим значением того
// же пользователя конфликтом не считается.
func (s *UserService) Update(ctx context.Context, id string, req models.DummyUserUpdate) (*models.User, error) {
	user, err := s.repo.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Username != nil && *req.Username != user.Username {
		exists, err := s.repo.UserExistsByUsername(ctx, *req.Username)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, models.ErrUsernameExists
		}
		user.Username = *req.Username
	}

	if req.Email != nil && *req.Email != user.Email {
		exists, err := s.repo.UserExistsByEmail(ctx, *req.Email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, models.ErrEmailExists
		}
		user.Email = *req.Email
	}

	if req.FirstName != nil {
		user.FirstName = req.FirstName
	}
	if req.LastName != nil {
		user.LastName = req.LastName
	}
	if req.DateOfBirth != nil {
		dateOfBirth, err := parseDateOfBirth(*req.DateOfBirth)
		if err != nil {
			return nil, err
		}
		user.DateOfBirth = dateOfBirth
	}

	updated, err := s.repo.UpdateUser(ctx, *user)
	if err != nil {
		return nil, err
	}
	s.log.Info("updated user", slog.String("id", id))

	cacheKey := fmt.Sprintf("user:%s", id)
	if err := s.cache.Set(cacheKey, updated, time.Hour); err != nil {
		s.log.Warn("failed to cache user", slog.String("key", cacheKey), sl.Err(err))
	}
	return updated, nil
}

// ChangePassword меняет пароль пользователя после проверки старого пароля
// и совпадения нового с подтверждением.
func (s *UserService) ChangePassword(ctx context.Context, id string, req models.DummyChangePassword) error {
	user, err := s.repo.GetUser(ctx, id)
	if err != nil {
		return err
	}

	if err := password.CompareHash(user.Password, req.Old); err != nil {
		return models.ErrIncorrectOldPassword
	}
	if req.New != req.Confirm {
		return models.ErrPasswordMismatch
	}

	hash, err := password.GetHash(req.New)
	if err != nil {
		return err
	}
	if err := s.repo.UpdateUserPassword(ctx, id, hash); err != nil {
		return err
	}
	s.log.Info("changed user password", slog.String("id", id))

	cacheKey := fmt.Sprintf("user:%s", id)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to invalidate user cache", slog.String("key", cacheKey), sl.Err(err))
	}
	return nil
}

// Delete удаляет пользователя вместе с его подписками и публикует
// уведомление user.delete для соседних сервисов.
func (s *UserService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetUser(ctx, id); err != nil {
		return err
	}

	for _, cleaner := range s.cleaners {
		count, err := cleaner.DeleteAllByUser(ctx, id)
		if err != nil {
			return err
		}
		s.log.Info("deleted user subscriptions", slog.String("id", id), slog.Int64("count", count))
	}

	if _, err := s.repo.DeleteUser(ctx, id); err != nil {
		return err
	}
	s.log.Info("deleted user", slog.String("id", id))

	cacheKey := fmt.Sprintf("user:%s", id)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to invalidate user cache", slog.String("key", cacheKey), sl.Err(err))
	}

	if err := s.publisher.PublishUserDeleted(id); err != nil {
		// Удаление уже состоялось; потеря уведомления не должна ронять запрос.
		s.log.Error("failed to publish user.delete notification", slog.String("id", id), sl.Err(err))
	}
	return nil
}

// parseDateOfBirth разбирает дату рождения и проверяет, что она в прошлом.
func parseDateOfBirth(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	dateOfBirth, err := time.Parse(models.DateOfBirthFormat, raw)
	if err != nil {
		return nil, fmt.Errorf("invalid date of birth: %w", models.ErrUserNotValid)
	}
	if !dateOfBirth.Before(time.Now()) {
		return nil, fmt.Errorf("birth date must be in the past: %w", models.ErrUserNotValid)
	}
	return &dateOfBirth, nil
}
