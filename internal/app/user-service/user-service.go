// Package userservice собирает приложение сервиса пользователей:
// хранилище, кеш, клиенты соседних сервисов, брокер сообщений и HTTP-сервер.
package userservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/streadway/amqp"

	"github.com/eventsphere/user-service/internal/config"
	"github.com/eventsphere/user-service/internal/migrations"
	"github.com/eventsphere/user-service/internal/peers"
	"github.com/eventsphere/user-service/internal/rabbitmq"
	subscriptionservice "github.com/eventsphere/user-service/internal/services/subscription"
	usersvc "github.com/eventsphere/user-service/internal/services/user"
	"github.com/eventsphere/user-service/internal/storage/cache"
	"github.com/eventsphere/user-service/internal/storage/repository"
)

// App представляет приложение сервиса пользователей.
type App struct {
	server               *http.Server
	conn                 *amqp.Connection
	ch                   *amqp.Channel
	eventSubscriptions   *subscriptionservice.SubscriptionService
	categorySubscription *subscriptionservice.SubscriptionService
	cfg                  *config.Config
	logger               *slog.Logger
	db                   *repository.Storage
}

func waitForDB(db *repository.Storage) error {
	for range 10 {
		err := repository.CheckDatabaseReady(db)
		if err == nil {
			return nil
		}
		time.Sleep(3 * time.Second)
	}
	return fmt.Errorf("database not ready after retries")
}

// New создает новый экземпляр приложения.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to connect storage: %w", err)
	}
	if err = migrations.Run(db.DB, "./migrations"); err != nil {
		return nil, err
	}
	if err = waitForDB(db); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, fmt.Errorf("cache not initialized: %w", err)
	}

	conn, err := rabbitmq.Connect(cfg.RabbitMQURL, cfg.RabbitMQMaxRetries, cfg.RabbitMQRetryDelay)
	if err != nil {
		return nil, fmt.Errorf("failed to connect RabbitMQ: %w", err)
	}

	queues := rabbitmq.GetDeleteQueues(cfg.RabbitMQ)
	ch, err := rabbitmq.SetupChannel(conn, cfg.Exchange, queues)
	if err != nil {
		closeResources(nil, conn, logger)
		return nil, fmt.Errorf("failed to setup RabbitMQ channel: %w", err)
	}

	publisher := rabbitmq.NewPublisher(ch, cfg.Exchange, cfg.UserDeleteKey)

	eventStorage := repository.NewEventSubscriptionStorage(db)
	categoryStorage := repository.NewCategorySubscriptionStorage(db)

	userService := usersvc.NewUserService(
		db,
		[]usersvc.SubscriptionCleaner{eventStorage, categoryStorage},
		publisher,
		cacheRedis,
		logger,
	)

	eventClient := peers.NewEventClient(cfg.EventServiceURL, cfg.TimeoutPeers, cfg.RetriesPeers)
	categoryClient := peers.NewCategoryClient(cfg.CategoryServiceURL, cfg.TimeoutPeers, cfg.RetriesPeers)

	eventSubscriptions := subscriptionservice.NewSubscriptionService(eventStorage, userService, eventClient, logger)
	categorySubscriptions := subscriptionservice.NewSubscriptionService(categoryStorage, userService, categoryClient, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, userService, eventSubscriptions, categorySubscriptions)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server:               srv,
		conn:                 conn,
		ch:                   ch,
		eventSubscriptions:   eventSubscriptions,
		categorySubscription: categorySubscriptions,
		cfg:                  cfg,
		logger:               logger,
		db:                   db,
	}, nil
}

func closeResources(ch *amqp.Channel, conn *amqp.Connection, logger *slog.Logger) {
	if ch != nil {
		if err := ch.Close(); err != nil {
			logger.Error("failed to close channel", "error", err)
		}
	}
	if conn != nil {
		if err := conn.Close(); err != nil {
			logger.Error("failed to close connection", "error", err)
		}
	}
}

// Run запускает потребителей уведомлений об удалении и HTTP-сервер.
func (a *App) Run(ctx context.Context) error {
	err := rabbitmq.ConsumerMessage(ctx, a.ch, a.cfg.EventDeleteQueue, a.logger, a.eventSubscriptions.HandleItemDeleted)
	if err != nil {
		a.logger.Error("failed to start event delete consumer", slog.Any("err", err))
		return err
	}

	err = rabbitmq.ConsumerMessage(ctx, a.ch, a.cfg.CategoryDeleteQueue, a.logger, a.categorySubscription.HandleItemDeleted)
	if err != nil {
		a.logger.Error("failed to start category delete consumer", slog.Any("err", err))
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		closeResources(a.ch, a.conn, a.logger)
		if closeErr := a.db.DB.Close(); closeErr != nil {
			a.logger.Error("failed to close storage", slog.Any("err", closeErr))
		}
		return err
	}
}
