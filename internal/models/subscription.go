// Package models содержит доменные структуры подписок пользователя
// на события и категории, принадлежащие соседнему сервису.
package models

import "time"

// Subscription представляет связь пользователя с внешним элементом
// (событием или категорией). ItemID — идентификатор в домене соседнего
// сервиса. Поле Item заполняется при чтении актуальными данными из
// соседнего сервиса и никогда не сохраняется в базу.
type Subscription struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"userId"`
	ItemID    int64     `json:"itemId"`
	CreatedAt time.Time `json:"createdAt"`
	Item      any       `json:"item,omitempty"` // Транзитные данные из соседнего сервиса
}

// EventDto описывает событие, полученное из event-service.
type EventDto struct {
	ID          int64        `json:"id"`
	CreatorID   int64        `json:"creatorId"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	ImageURL    string       `json:"imageUrl"`
	Location    string       `json:"location"`
	Date        string       `json:"date"`
	Time        string       `json:"time"`
	CreatedAt   *time.Time   `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time   `json:"updatedAt,omitempty"`
	Category    *CategoryDto `json:"category,omitempty"`
}

// CategoryDto описывает категорию, полученную из event-service.
type CategoryDto struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}
