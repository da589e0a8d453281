// Package read реализует HTTP-обработчик для получения одной подписки пользователя.
package read

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/google/uuid"

	"github.com/eventsphere/user-service/internal/http/response"
	"github.com/eventsphere/user-service/internal/lib/sl"
	"github.com/eventsphere/user-service/internal/models"
)

// Handler обрабатывает запросы на получение подписки пары пользователь-элемент.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики для получения подписки
}

// Service описывает интерфейс бизнес-логики чтения подписки.
type Service interface {
	Get(ctx context.Context, userID string, itemID int64) (*models.Subscription, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получить подписку
// @Description Возвращает подписку пользователя на элемент вместе с данными элемента.
// @Tags Subscriptions
// @Produce  json
// @Param id path string true "UUID пользователя"
// @Param itemId path int true "ID элемента"
// @Success 200 {object} models.Subscription "Подписка с данными элемента"
// @Failure 400 {object} response.ErrorDetails "Некорректные параметры"
// @Failure 404 {object} response.ErrorDetails "Пользователь или подписка не найдены"
// @Failure 502 {object} response.ErrorDetails "Соседний сервис недоступен"
// @Failure 500 {object} response.ErrorDetails "Ошибка сервера"
// @Router /v1/users/{id}/subscriptions/events/{itemId} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.read"

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

	itemID, err := strconv.ParseInt(chi.URLParam(r, "itemId"), 10, 64)
	if err != nil {
		log.Error("failed to decode item id from url", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid item id", details))
		return
	}

	sub, err := h.service.Get(r.Context(), userID, itemID)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrUserNotFound):
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("user not found", details))
		case errors.Is(err, models.ErrSubscriptionNotFound):
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("subscription not found", details))
		case errors.Is(err, models.ErrItemNotFound):
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("subscribed item no longer exists", details))
		case errors.Is(err, models.ErrPeerUnavailable):
			log.Error("peer service unavailable", sl.Err(err))
			w.WriteHeader(http.StatusBadGateway)
			render.JSON(w, r, response.Error("peer service is unavailable", details))
		default:
			log.Error("failed to read subscription", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not read subscription", details))
		}
		return
	}

	log.Info("success to read subscription",
		slog.String("user_id", userID), slog.Int64("item_id", itemID))
	render.JSON(w, r, sub)
}
