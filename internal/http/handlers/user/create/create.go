// Package create реализует HTTP-обработчик для регистрации новых пользователей.
//
// Handler принимает JSON-запрос с данными пользователя, валидирует их,
// вызывает бизнес-логику создания через сервис и возвращает созданную
// учётную запись в JSON-формате.
//
// В случае ошибок формируются соответствующие HTTP-ответы с описанием проблемы.
package create

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/eventsphere/user-service/internal/http/response"
	"github.com/eventsphere/user-service/internal/lib/password"
	"github.com/eventsphere/user-service/internal/lib/sl"
	"github.com/eventsphere/user-service/internal/models"
)

// Handler управляет HTTP-запросами на создание пользователей.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики для создания пользователя
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс бизнес-логики создания пользователя.
type Service interface {
	Create(ctx context.Context, req models.DummyUser) (*models.User, error)
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
// @Summary Зарегистрировать нового пользователя
// @Description Создает учётную запись с уникальными именем и почтой. Возвращает созданного пользователя.
// @Tags Users
// @Accept  json
// @Produce  json
// @Param request body models.DummyUser true "Данные нового пользователя"
// @Success 201 {object} models.User "Пользователь создан"
// @Failure 400 {object} response.ValidationErrorDetails "Некорректный JSON или ошибка валидации"
// @Failure 409 {object} response.ErrorDetails "Имя или почта уже заняты"
// @Failure 500 {object} response.ErrorDetails "Ошибка сервера при создании пользователя"
// @Router /v1/users [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)
	details := "uri=" + r.RequestURI

	var req models.DummyUser
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body", details))
		return
	}
	log.Info("request body decoded", slog.String("username", req.Username))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors), details))
		return
	}
	if !password.HasLetterAndDigit(req.Password) {
		log.Error("password does not meet complexity requirements")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.FieldError("password",
			"password must contain at least one letter and one digit", details))
		return
	}
	log.Info("all fields are validated")

	user, err := h.service.Create(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrUsernameExists):
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error("this username is already registered", details))
		case errors.Is(err, models.ErrEmailExists):
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error("this email is already registered", details))
		case errors.Is(err, models.ErrUserNotValid):
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error(), details))
		default:
			log.Error("failed to create user", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not create user", details))
		}
		return
	}

	log.Info("success to create user", slog.String("id", user.ID))
	w.Header().Set("Location", r.URL.Path+"/"+user.ID)
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, user)
}
