package models

import "errors"

// Доменные ошибки сервиса. Слой хранилища и бизнес-логика возвращают их
// (возможно обёрнутыми), HTTP-обработчики переводят в статус-коды.
var (
	// ErrUserNotFound пользователь с таким id не существует.
	ErrUserNotFound = errors.New("user not found")
	// ErrUsernameExists имя пользователя уже зарегистрировано.
	ErrUsernameExists = errors.New("this username is already registered")
	// ErrEmailExists почта уже зарегистрирована.
	ErrEmailExists = errors.New("this email is already registered")
	// ErrUserNotValid хранилище отклонило данные пользователя.
	ErrUserNotValid = errors.New("invalid user data")

	// ErrIncorrectOldPassword старый пароль не совпадает с сохранённым.
	ErrIncorrectOldPassword = errors.New("incorrect old password")
	// ErrPasswordMismatch новый пароль и подтверждение не совпадают.
	ErrPasswordMismatch = errors.New("passwords don't match")

	// ErrSubscriptionNotFound подписка для пары (пользователь, элемент) не найдена.
	ErrSubscriptionNotFound = errors.New("subscription not found")
	// ErrSubscriptionExists подписка для пары (пользователь, элемент) уже есть.
	ErrSubscriptionExists = errors.New("subscription already exists")

	// ErrItemNotFound соседний сервис сообщил, что элемента не существует.
	ErrItemNotFound = errors.New("item not found")
	// ErrPeerUnavailable соседний сервис недоступен или ответил ошибкой.
	ErrPeerUnavailable = errors.New("peer service unavailable")
)
