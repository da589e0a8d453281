// Package changepassword реализует HTTP-обработчик для смены пароля пользователя.
//
// Запрос содержит старый пароль, новый пароль и его подтверждение.
// Старый пароль сверяется с сохранённым хэшем, новый должен совпадать
// с подтверждением и отвечать требованиям сложности.
package changepassword

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"
	"github.com/google/uuid"

	"github.com/eventsphere/user-service/internal/http/response"
	"github.com/eventsphere/user-service/internal/lib/password"
	"github.com/eventsphere/user-service/internal/lib/sl"
	"github.com/eventsphere/user-service/internal/models"
)

// Handler управляет HTTP-запросами на смену пароля.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики для смены пароля
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс бизнес-логики смены пароля.
type Service interface {
	ChangePassword(ctx context.Context, id string, req models.DummyChangePassword) error
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Сменить пароль пользователя
// @Description Меняет пароль после проверки старого пароля и подтверждения нового.
// @Tags Users
// @Accept  json
// @Produce  json
// @Param id path string true "UUID пользователя"
// @Param request body models.DummyChangePassword true "Старый и новый пароли"
// @Success 200 {object} map[string]string "Пароль изменён"
// @Failure 400 {object} response.ValidationErrorDetails "Некорректный запрос или несовпадение паролей"
// @Failure 404 {object} response.ErrorDetails "Пользователь не найден"
// @Failure 500 {object} response.ErrorDetails "Ошибка сервера"
// @Router /v1/users/{id}/change-password [patch]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.changepassword"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)
	details := "uri=" + r.RequestURI

	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		log.Error("failed to decode id from url", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid user id", details))
		return
	}

	var req models.DummyChangePassword
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body", details))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors), details))
		return
	}
	if !password.HasLetterAndDigit(req.New) {
		log.Error("new password does not meet complexity requirements")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.FieldError("new",
			"password must contain at least one letter and one digit", details))
		return
	}

	err := h.service.ChangePassword(r.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrUserNotFound):
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("user not found", details))
		case errors.Is(err, models.ErrIncorrectOldPassword):
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("old password is incorrect", details))
		case errors.Is(err, models.ErrPasswordMismatch):
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("new password and confirmation do not match", details))
		default:
			log.Error("failed to change password", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not change password", details))
		}
		return
	}

	log.Info("success to change password", slog.String("id", id))
	render.JSON(w, r, map[string]string{"message": "password updated"})
}
