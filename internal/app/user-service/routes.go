// Package userservice предоставляет маршруты для основного приложения.
package userservice

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	sublist "github.com/eventsphere/user-service/internal/http/handlers/subscription/list"
	subread "github.com/eventsphere/user-service/internal/http/handlers/subscription/read"
	"github.com/eventsphere/user-service/internal/http/handlers/subscription/subscribe"
	"github.com/eventsphere/user-service/internal/http/handlers/subscription/unsubscribe"
	"github.com/eventsphere/user-service/internal/http/handlers/user/changepassword"
	"github.com/eventsphere/user-service/internal/http/handlers/user/create"
	"github.com/eventsphere/user-service/internal/http/handlers/user/list"
	"github.com/eventsphere/user-service/internal/http/handlers/user/read"
	"github.com/eventsphere/user-service/internal/http/handlers/user/remove"
	"github.com/eventsphere/user-service/internal/http/handlers/user/update"
	"github.com/eventsphere/user-service/internal/http/mware"
	subservice "github.com/eventsphere/user-service/internal/services/subscription"
	usersvc "github.com/eventsphere/user-service/internal/services/user"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, userService *usersvc.UserService,
	eventSubscriptions, categorySubscriptions *subservice.SubscriptionService) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
		mware.RateLimitMiddleware(logger),
	)

	r.Route("/v1/users", func(r chi.Router) {
		r.Get("/", list.New(logger, userService).ServeHTTP)
		r.Post("/", create.New(logger, userService).ServeHTTP)
		r.Get("/{id}", read.New(logger, userService).ServeHTTP)
		r.Patch("/{id}", update.New(logger, userService).ServeHTTP)
		r.Delete("/{id}", remove.New(logger, userService).ServeHTTP)
		r.Patch("/{id}/change-password", changepassword.New(logger, userService).ServeHTTP)

		r.Route("/{id}/subscriptions/events", func(r chi.Router) {
			r.Get("/", sublist.New(logger, eventSubscriptions).ServeHTTP)
			r.Get("/{itemId}", subread.New(logger, eventSubscriptions).ServeHTTP)
			r.Post("/{itemId}", subscribe.New(logger, eventSubscriptions).ServeHTTP)
			r.Delete("/{itemId}", unsubscribe.New(logger, eventSubscriptions).ServeHTTP)
		})

		r.Route("/{id}/subscriptions/categories", func(r chi.Router) {
			r.Get("/", sublist.New(logger, categorySubscriptions).ServeHTTP)
			r.Get("/{itemId}", subread.New(logger, categorySubscriptions).ServeHTTP)
			r.Post("/{itemId}", subscribe.New(logger, categorySubscriptions).ServeHTTP)
			r.Delete("/{itemId}", unsubscribe.New(logger, categorySubscriptions).ServeHTTP)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
