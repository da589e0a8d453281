// Package subscribe реализует HTTP-обработчик для подписки пользователя на элемент.
//
// Перед созданием подписки элемент запрашивается у соседнего сервиса:
// подписка на несуществующий элемент не создаётся.
package subscribe

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

// Handler управляет HTTP-запросами на создание подписок.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики для создания подписки
}

// Service описывает интерфейс бизнес-логики создания подписки.
type Service interface {
	Subscribe(ctx context.Context, userID string, itemID int64) (*models.Subscription, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Подписать пользователя на элемент
// @Description Создает подписку после проверки существования элемента в соседнем сервисе.
// @Tags Subscriptions
// @Produce  json
// @Param id path string true "UUID пользователя"
// @Param itemId path int true "ID элемента"
// @Success 201 {object} models.Subscription "Подписка создана"
// @Failure 400 {object} response.ErrorDetails "Некорректные параметры"
// @Failure 404 {object} response.ErrorDetails "Пользователь или элемент не найдены"
// @Failure 409 {object} response.ErrorDetails "Подписка уже существует"
// @Failure 502 {object} response.ErrorDetails "Соседний сервис недоступен"
// @Failure 500 {object} response.ErrorDetails "Ошибка сервера"
// @Router /v1/users/{id}/subscriptions/events/{itemId} [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.subscribe"
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

	sub, err := h.service.Subscribe(r.Context(), userID, itemID)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrUserNotFound):
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("user not found", details))
		case errors.Is(err, models.ErrItemNotFound):
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("item not found", details))
		case errors.Is(err, models.ErrSubscriptionExists):
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error("subscription already exists", details))
		case errors.Is(err, models.ErrPeerUnavailable):
			log.Error("peer service unavailable", sl.Err(err))
			w.WriteHeader(http.StatusBadGateway)
			render.JSON(w, r, response.Error("peer service is unavailable", details))
		default:
			log.Error("failed to create subscription", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not create subscription", details))
		}
		return
	}

	log.Info("success to create subscription",
		slog.String("user_id", userID), slog.Int64("item_id", itemID))
	w.Header().Set("Location", r.URL.Path)
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, sub)
}
