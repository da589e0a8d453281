// Package list реализует HTTP-обработчик для получения списка пользователей с пагинацией.
package list

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/eventsphere/user-service/internal/http/response"
	"github.com/eventsphere/user-service/internal/lib/sl"
	"github.com/eventsphere/user-service/internal/models"
)

// Handler обрабатывает запросы на получение страницы пользователей.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики для получения списка пользователей
}

// Service описывает интерфейс бизнес-логики получения списка пользователей.
type Service interface {
	List(ctx context.Context, page, size int) ([]*models.User, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ParsePagination извлекает параметры страницы из запроса.
// Отсутствующие или некорректные значения заменяются значениями по умолчанию.
func ParsePagination(r *http.Request) (page, size int) {
	page = 0
	size = 10
	if raw := r.URL.Query().Get("page"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 0 {
			page = v
		}
	}
	if raw := r.URL.Query().Get("size"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			size = v
		}
	}
	return page, size
}

// ServeHTTP godoc
// @Summary Получить список пользователей
// @Description Возвращает страницу пользователей. Параметры page и size опциональны.
// @Tags Users
// @Produce  json
// @Param page query int false "Номер страницы, начиная с 0"
// @Param size query int false "Размер страницы, по умолчанию 10"
// @Success 200 {array} models.User "Страница пользователей"
// @Failure 500 {object} response.ErrorDetails "Ошибка сервера"
// @Router /v1/users [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)
	details := "uri=" + r.RequestURI

	page, size := ParsePagination(r)

	users, err := h.service.List(r.Context(), page, size)
	if err != nil {
		log.Error("failed to list users", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list users", details))
		return
	}
	if users == nil {
		users = []*models.User{}
	}

	log.Info("success to list users", slog.Int("count", len(users)))
	render.JSON(w, r, users)
}
