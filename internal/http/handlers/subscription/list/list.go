// Package list реализует HTTP-обработчик для получения списка элементов,
// на которые подписан пользователь.
//
// В ответ попадают данные элементов из соседнего сервиса, а не строки
// подписок. Обогащение атомарно: при недоступности соседнего сервиса
// возвращается ошибка целиком, без частичного результата.
package list

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/google/uuid"

	userlist "github.com/eventsphere/user-service/internal/http/handlers/user/list"
	"github.com/eventsphere/user-service/internal/http/response"
	"github.com/eventsphere/user-service/internal/lib/sl"
	"github.com/eventsphere/user-service/internal/models"
)

// Handler обрабатывает запросы на получение страницы подписок.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики для получения подписок
}

// Service описывает интерфейс бизнес-логики получения данных элементов подписок.
type Service interface {
	ListItems(ctx context.Context, userID string, page, size int) ([]any, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получить подписки пользователя
// @Description Возвращает страницу данных элементов, на которые подписан пользователь.
// @Tags Subscriptions
// @Produce  json
// @Param id path string true "UUID пользователя"
// @Param page query int false "Номер страницы, начиная с 0"
// @Param size query int false "Размер страницы, по умолчанию 10"
// @Success 200 {array} models.EventDto "Страница данных элементов"
// @Failure 400 {object} response.ErrorDetails "Некорректный UUID"
// @Failure 404 {object} response.ErrorDetails "Пользователь не найден"
// @Failure 502 {object} response.ErrorDetails "Соседний сервис недоступен"
// @Failure 500 {object} response.ErrorDetails "Ошибка сервера"
// @Router /v1/users/{id}/subscriptions/events [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)
	details := "uri=" + r.RequestURI

	userID := chi.URLParam(r, "id")
	if _, err := uuid.Parse(userID); err != nil {
		log.Error("failed to decode id from url", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid user id", details))
		return
	}

	page, size := userlist.ParsePagination(r)

	items, err := h.service.ListItems(r.Context(), userID, page, size)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrUserNotFound):
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("user not found", details))
		case errors.Is(err, models.ErrItemNotFound):
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("subscribed item no longer exists", details))
		case errors.Is(err, models.ErrPeerUnavailable):
			log.Error("peer service unavailable", sl.Err(err))
			w.WriteHeader(http.StatusBadGateway)
			render.JSON(w, r, response.Error("peer service is unavailable", details))
		default:
			log.Error("failed to list subscriptions", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not list subscriptions", details))
		}
		return
	}
	if items == nil {
		items = []any{}
	}

	log.Info("success to list subscriptions", slog.Int("count", len(items)))
	render.JSON(w, r, items)
}
