// Package response содержит вспомогательные типы и функции для формирования
// унифицированных JSON‑ответов об ошибках HTTP‑обработчиков. Тело ошибки
// содержит метку времени, сообщение и описание запроса.
package response

import (
	"fmt"
	"time"

	"github.com/go-playground/validator"
)

// ErrorDetails описывает стандартную структуру JSON‑ответа об ошибке.
// Поле Details содержит описание запроса, на котором возникла ошибка.
type ErrorDetails struct {
	Timestamp time.Time `json:"timestamp" example:"2026-08-31T12:00:00Z"`
	Message   string    `json:"message" example:"user not found"`
	Details   string    `json:"details" example:"uri=/v1/users/42"`
}

// ValidationErrorDetails — структура ответа на запрос, не прошедший валидацию.
// Message содержит нарушения, сгруппированные по именам полей.
type ValidationErrorDetails struct {
	Timestamp time.Time           `json:"timestamp"`
	Message   map[string][]string `json:"message"`
	Details   string              `json:"details"`
}

// Error возвращает ErrorDetails с переданным сообщением.
func Error(msg, details string) ErrorDetails {
	return ErrorDetails{
		Timestamp: time.Now().UTC(),
		Message:   msg,
		Details:   details,
	}
}

// ValidationError формирует ответ на основе ошибок валидации.
// Каждое нарушение превращается в человеко‑читаемый текст и кладётся
// в список нарушений своего поля.
func ValidationError(errs validator.ValidationErrors, details string) ValidationErrorDetails {
	msgs := make(map[string][]string)

	for _, err := range errs {
		field := err.Field()
		switch err.ActualTag() {
		case "required":
			msgs[field] = append(msgs[field], fmt.Sprintf("field %s is a required field", field))
		case "min":
			msgs[field] = append(msgs[field], fmt.Sprintf("field %s must contain at least %s characters", field, err.Param()))
		case "max":
			msgs[field] = append(msgs[field], fmt.Sprintf("field %s must contain at most %s characters", field, err.Param()))
		case "email":
			msgs[field] = append(msgs[field], fmt.Sprintf("field %s must be a valid email address", field))
		default:
			msgs[field] = append(msgs[field], fmt.Sprintf("field %s is not a valid", field))
		}
	}
	return ValidationErrorDetails{
		Timestamp: time.Now().UTC(),
		Message:   msgs,
		Details:   details,
	}
}

// FieldError формирует ответ о нарушении для одного поля: для проверок,
// которые выполняются вручную, вне валидатора.
func FieldError(field, msg, details string) ValidationErrorDetails {
	return ValidationErrorDetails{
		Timestamp: time.Now().UTC(),
		Message:   map[string][]string{field: {msg}},
		Details:   details,
	}
}
