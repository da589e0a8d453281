package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/eventsphere/user-service/internal/models"
)

// SubscriptionStorage реализует доступ к одной из двух структурно одинаковых
// таблиц подписок (user_event_subscription, user_category_subscription).
// Имя таблицы и колонки элемента фиксируются при создании, запросы общие.
type SubscriptionStorage struct {
	db         *sql.DB
	table      string
	itemColumn string
}

// NewEventSubscriptionStorage создаёт хранилище подписок на события.
func NewEventSubscriptionStorage(s *Storage) *SubscriptionStorage {
	return &SubscriptionStorage{db: s.DB, table: "user_event_subscription", itemColumn: "event_id"}
}

// NewCategorySubscriptionStorage создаёт хранилище подписок на категории.
func NewCategorySubscriptionStorage(s *Storage) *SubscriptionStorage {
	return &SubscriptionStorage{db: s.DB, table: "user_category_subscription", itemColumn: "category_id"}
}

// CreateSubscription вставляет новую подписку и возвращает строку
// с идентификатором и временной меткой, выставленными сервером.
func (s *SubscriptionStorage) CreateSubscription(ctx context.Context, userID string, itemID int64) (*models.Subscription, error) {
	const op = "storage.CreateSubscription"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := fmt.Sprintf(`INSERT INTO %s (user_id, %s)
			  VALUES ($1, $2)
			  RETURNING id, created_at`, s.table, s.itemColumn)
	sub := models.Subscription{UserID: userID, ItemID: itemID}
	if err := s.db.QueryRowContext(ctx, query, userID, itemID).Scan(&sub.ID, &sub.CreatedAt); err != nil {
		return nil, fmt.Errorf("%s: %w", op, translateConstraint(err))
	}
	return &sub, nil
}

// FindSubscription возвращает подписку пары (пользователь, элемент)
// или models.ErrSubscriptionNotFound.
func (s *SubscriptionStorage) FindSubscription(ctx context.Context, userID string, itemID int64) (*models.Subscription, error) {
	const op = "storage.FindSubscription"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := fmt.Sprintf(`SELECT id, user_id, %s, created_at
			  FROM %s
			  WHERE user_id = $1 AND %s = $2`, s.itemColumn, s.table, s.itemColumn)
	var sub models.Subscription
	row := s.db.QueryRowContext(ctx, query, userID, itemID)
	if err := row.Scan(&sub.ID, &sub.UserID, &sub.ItemID, &sub.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, models.ErrSubscriptionNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &sub, nil
}

// SubscriptionExists проверяет наличие подписки пары (пользователь, элемент).
func (s *SubscriptionStorage) SubscriptionExists(ctx context.Context, userID string, itemID int64) (bool, error) {
	const op = "storage.SubscriptionExists"
	select {
	case <-ctx.Done():
		return false, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE user_id = $1 AND %s = $2)`,
		s.table, s.itemColumn)
	var exists bool
	if err := s.db.QueryRowContext(ctx, query, userID, itemID).Scan(&exists); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return exists, nil
}

// ListSubscriptions возвращает страницу подписок пользователя в порядке создания.
func (s *SubscriptionStorage) ListSubscriptions(ctx context.Context, userID string, limit, offset int) ([]*models.Subscription, error) {
	const op = "storage.ListSubscriptions"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := fmt.Sprintf(`SELECT id, user_id, %s, created_at
			  FROM %s
			  WHERE user_id = $1
			  ORDER BY id
			  LIMIT $2 OFFSET $3`, s.itemColumn, s.table)
	rows, err := s.db.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Subscription
	for rows.Next() {
		var sub models.Subscription
		if err := rows.Scan(&sub.ID, &sub.UserID, &sub.ItemID, &sub.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &sub)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// DeleteSubscription удаляет подписку пары (пользователь, элемент) и возвращает
// количество удалённых строк. Один атомарный DELETE: при гонке двух
// одновременных отписок вторая получит ноль строк, а не ошибку базы.
func (s *SubscriptionStorage) DeleteSubscription(ctx context.Context, userID string, itemID int64) (int64, error) {
	const op = "storage.DeleteSubscription"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := fmt.Sprintf(`DELETE FROM %s WHERE user_id = $1 AND %s = $2`, s.table, s.itemColumn)
	result, err := s.db.ExecContext(ctx, query, userID, itemID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return rowsAffected, nil
}

// DeleteAllByItem удаляет все подписки на элемент независимо от пользователя.
// Повторный вызов для уже отсутствующего элемента удаляет ноль строк.
func (s *SubscriptionStorage) DeleteAllByItem(ctx context.Context, itemID int64) (int64, error) {
	const op = "storage.DeleteAllByItem"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, s.table, s.itemColumn)
	result, err := s.db.ExecContext(ctx, query, itemID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return rowsAffected, nil
}

// DeleteAllByUser удаляет все подписки пользователя.
// Вызывается при удалении самого пользователя.
func (s *SubscriptionStorage) DeleteAllByUser(ctx context.Context, userID string) (int64, error) {
	const op = "storage.DeleteAllByUser"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := fmt.Sprintf(`DELETE FROM %s WHERE user_id = $1`, s.table)
	result, err := s.db.ExecContext(ctx, query, userID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return rowsAffected, nil
}
