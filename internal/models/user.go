// Package models содержит доменную модель пользователя сервиса,
// а также вспомогательные структуры для приёма данных из JSON-запросов.
// Структуры используются в бизнес‑логике и при работе с хранилищем.
package models

import "time"

// User представляет учётную запись пользователя.
// Поля CreatedAt и UpdatedAt выставляются сервером, значения клиента отбрасываются.
type User struct {
	ID          string     `json:"id"`       // Уникальный идентификатор (UUID, генерируется базой)
	Username    string     `json:"username"` // Имя пользователя (уникальное)
	Password    string     `json:"-"`        // bcrypt-хэш пароля, наружу не отдаётся
	Email       string     `json:"email"`    // Электронная почта (уникальная)
	FirstName   *string    `json:"firstName,omitempty"`
	LastName    *string    `json:"lastName,omitempty"`
	DateOfBirth *time.Time `json:"dateOfBirth,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// DummyUser используется для приёма данных из JSON-запроса на создание пользователя,
// прежде чем конвертировать их в User. Дата рождения приходит строкой,
// чтобы её можно было валидировать и парсить вручную.
type DummyUser struct {
	Username    string `json:"username" validate:"required,min=3,max=50"`
	Password    string `json:"password" validate:"required,min=6,max=255"`
	Email       string `json:"email" validate:"required,email"`
	FirstName   string `json:"firstName" validate:"omitempty,min=3,max=50"`
	LastName    string `json:"lastName" validate:"omitempty,min=3,max=50"`
	DateOfBirth string `json:"dateOfBirth" validate:"omitempty"` // Формат 2006-01-02, должна быть в прошлом
}

// DummyUserUpdate используется для приёма частичного обновления (merge-patch):
// применяются только ненулевые поля, отличающиеся от сохранённых значений.
type DummyUserUpdate struct {
	Username    *string `json:"username" validate:"omitempty,min=3,max=50"`
	Email       *string `json:"email" validate:"omitempty,email"`
	FirstName   *string `json:"firstName" validate:"omitempty,min=3,max=50"`
	LastName    *string `json:"lastName" validate:"omitempty,min=3,max=50"`
	DateOfBirth *string `json:"dateOfBirth" validate:"omitempty"`
}

// DummyChangePassword используется для приёма запроса на смену пароля.
type DummyChangePassword struct {
	Old     string `json:"old" validate:"required"`
	New     string `json:"new" validate:"required,min=6,max=255"`
	Confirm string `json:"confirm" validate:"required"`
}

// DateOfBirthFormat формат даты рождения в запросах.
const DateOfBirthFormat = "2006-01-02"
