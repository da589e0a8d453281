// Package services содержит бизнес-логику для управления подписками пользователей
// на события и категории, включая обогащение данными соседних сервисов.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/eventsphere/user-service/internal/lib/sl"
	"github.com/eventsphere/user-service/internal/models"
)

// SubscriptionRepository определяет методы для работы с подписками в хранилище.
type SubscriptionRepository interface {
	// CreateSubscription добавляет новую подписку пользователя на элемент.
	CreateSubscription(ctx context.Context, userID string, itemID int64) (*models.Subscription, error)
	// FindSubscription возвращает подписку пары пользователь-элемент.
	FindSubscription(ctx context.Context, userID string, itemID int64) (*models.Subscription, error)
	// SubscriptionExists проверяет наличие подписки у пары пользователь-элемент.
	SubscriptionExists(ctx context.Context, userID string, itemID int64) (bool, error)
	// ListSubscriptions возвращает страницу подписок пользователя.
	ListSubscriptions(ctx context.Context, userID string, limit, offset int) ([]*models.Subscription, error)
	// DeleteSubscription удаляет подписку, возвращает количество удалённых строк.
	DeleteSubscription(ctx context.Context, userID string, itemID int64) (int64, error)
	// DeleteAllByItem удаляет подписки всех пользователей на элемент.
	DeleteAllByItem(ctx context.Context, itemID int64) (int64, error)
	// DeleteAllByUser удаляет все подписки пользователя.
	DeleteAllByUser(ctx context.Context, userID string) (int64, error)
}

// UserProvider проверяет существование пользователя перед операциями с подписками.
type UserProvider interface {
	Get(ctx context.Context, id string) (*models.User, error)
}

// ItemClient получает данные элемента (события или категории) из соседнего сервиса.
type ItemClient interface {
	Find(ctx context.Context, id int64) (any, error)
}

// SubscriptionService реализует бизнес-логику подписок одного вида.
// Один экземпляр обслуживает события, другой категории: различаются
// только хранилищем и клиентом соседнего сервиса.
type SubscriptionService struct {
	repo  SubscriptionRepository
	users UserProvider
	items ItemClient
	log   *slog.Logger
}

// NewSubscriptionService создает новый экземпляр SubscriptionService.
func NewSubscriptionService(repo SubscriptionRepository, users UserProvider, items ItemClient, log *slog.Logger) *SubscriptionService {
	return &SubscriptionService{
		repo:  repo,
		users: users,
		items: items,
		log:   log,
	}
}

// ListItems возвращает страницу данных элементов, на которые подписан
// пользователь, в порядке подписок. Наружу отдаются данные соседнего
// сервиса, а не сами строки подписок. Обогащение атомарно: если не удалось
// получить хотя бы один элемент, возвращается ошибка целиком, без
// частичного результата.
func (s *SubscriptionService) ListItems(ctx context.Context, userID string, page, size int) ([]any, error) {
	if _, err := s.users.Get(ctx, userID); err != nil {
		return nil, err
	}

	subs, err := s.repo.ListSubscriptions(ctx, userID, size, page*size)
	if err != nil {
		return nil, err
	}

	items := make([]any, 0, len(subs))
	for _, sub := range subs {
		item, err := s.items.Find(ctx, sub.ItemID)
		if err != nil {
			return nil, fmt.Errorf("enrich subscription %d: %w", sub.ID, err)
		}
		items = append(items, item)
	}
	return items, nil
}

// Get возвращает одну подписку пользователя вместе с данными элемента.
func (s *SubscriptionService) Get(ctx context.Context, userID string, itemID int64) (*models.Subscription, error) {
	if _, err := s.users.Get(ctx, userID); err != nil {
		return nil, err
	}

	sub, err := s.repo.FindSubscription(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}

	item, err := s.items.Find(ctx, itemID)
	if err != nil {
		return nil, err
	}
	sub.Item = item
	return sub, nil
}

// Subscribe подписывает пользователя на элемент. Элемент сначала
// запрашивается у соседнего сервиса: подписка на несуществующий элемент
// не создаётся, при недоступности сервиса операция завершается ошибкой.
func (s *SubscriptionService) Subscribe(ctx context.Context, userID string, itemID int64) (*models.Subscription, error) {
	if _, err := s.users.Get(ctx, userID); err != nil {
		return nil, err
	}

	exists, err := s.repo.SubscriptionExists(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, models.ErrSubscriptionExists
	}

	item, err := s.items.Find(ctx, itemID)
	if err != nil {
		return nil, err
	}

	sub, err := s.repo.CreateSubscription(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}
	s.log.Info("created subscription",
		slog.String("user_id", userID), slog.Int64("item_id", itemID))

	sub.Item = item
	return sub, nil
}

// Unsubscribe удаляет подписку пользователя на элемент одним запросом.
// Отсутствие удалённых строк означает, что подписки не было.
func (s *SubscriptionService) Unsubscribe(ctx context.Context, userID string, itemID int64) error {
	if _, err := s.users.Get(ctx, userID); err != nil {
		return err
	}

	count, err := s.repo.DeleteSubscription(ctx, userID, itemID)
	if err != nil {
		return err
	}
	if count == 0 {
		return models.ErrSubscriptionNotFound
	}
	s.log.Info("removed subscription",
		slog.String("user_id", userID), slog.Int64("item_id", itemID))
	return nil
}

// CascadeDeleteByItem удаляет подписки всех пользователей на элемент.
// Операция идемпотентна: отсутствие подписок не является ошибкой.
func (s *SubscriptionService) CascadeDeleteByItem(ctx context.Context, itemID int64) (int64, error) {
	return s.repo.DeleteAllByItem(ctx, itemID)
}

// HandleItemDeleted обрабатывает сообщение брокера об удалении элемента:
// тело содержит ID удалённого элемента в формате JSON.
func (s *SubscriptionService) HandleItemDeleted(body []byte) error {
	const op = "services.HandleItemDeleted"

	var itemID int64
	if err := json.Unmarshal(body, &itemID); err != nil {
		s.log.Error("failed to decode delete notification", sl.Err(err))
		// Повторная доставка битого сообщения не поможет.
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := s.CascadeDeleteByItem(ctx, itemID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("removed subscriptions for deleted item",
		slog.Int64("item_id", itemID), slog.Int64("count", count))
	return nil
}
