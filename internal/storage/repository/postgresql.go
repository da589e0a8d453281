// Package repository реализует хранилище данных на основе PostgreSQL
// для управления пользователями и их подписками на события и категории.
// Уникальность username/email и пары (пользователь, элемент) гарантируется
// ограничениями базы; нарушения переводятся в доменные ошибки.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/eventsphere/user-service/internal/models"
)

// Storage инкапсулирует соединение с базой данных PostgreSQL
// и реализует методы работы с пользователями и подписками.
type Storage struct {
	DB *sql.DB
}

// New создаёт подключение к PostgreSQL.
func New(storageConnectionString string) (*Storage, error) {
	const op = "storage.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		DB: db,
	}, nil
}

// CheckDatabaseReady проверяет готовность базы данных.
func CheckDatabaseReady(storage *Storage) error {
	var exists bool
	err := storage.DB.QueryRow(`SELECT EXISTS (
        SELECT FROM information_schema.tables
        WHERE table_name = 'users'
    )`).Scan(&exists)
	if err != nil || !exists {
		return fmt.Errorf("required table users missing or query error: %w", err)
	}
	return nil
}

// translateConstraint переводит нарушение уникального ограничения в доменную
// ошибку по имени ограничения. Ограничения базы — источник истины для
// инвариантов уникальности, проверки существования в сервисах лишь дают
// предсказуемый порядок сообщений.
func translateConstraint(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgerrcode.UniqueViolation {
		return err
	}
	switch pgErr.ConstraintName {
	case "users_username_key":
		return models.ErrUsernameExists
	case "users_email_key":
		return models.ErrEmailExists
	case "user_event_subscription_pair_key", "user_category_subscription_pair_key":
		return models.ErrSubscriptionExists
	}
	return err
}

// translateDataViolation переводит отклонение строки базой данных —
// значение не помещается в колонку (класс 22) или нарушает CHECK-ограничение —
// в models.ErrUserNotValid. Нарушения уникальности сюда не попадают,
// их переводит translateConstraint.
func translateDataViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	if pgerrcode.IsDataException(pgErr.Code) || pgErr.Code == pgerrcode.CheckViolation {
		return fmt.Errorf("%s: %w", pgErr.Message, models.ErrUserNotValid)
	}
	return err
}
