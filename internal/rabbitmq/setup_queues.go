package rabbitmq

import (
	"fmt"

	"github.com/streadway/amqp"

	"github.com/eventsphere/user-service/internal/config"
)

// QueueConfig описывает очередь и ключ маршрутизации, которым она привязана к обмену.
type QueueConfig struct {
	QueueName  string
	RoutingKey string
}

// GetDeleteQueues возвращает очереди уведомлений об удалении, которые
// слушает и в которые публикует этот сервис. Один прямой обмен,
// по ключу маршрутизации на назначение.
func GetDeleteQueues(cfg config.RabbitMQ) []QueueConfig {
	return []QueueConfig{
		{QueueName: cfg.UserDeleteQueue, RoutingKey: cfg.UserDeleteKey},
		{QueueName: cfg.EventDeleteQueue, RoutingKey: cfg.EventDeleteKey},
		{QueueName: cfg.CategoryDeleteQueue, RoutingKey: cfg.CategoryDeleteKey},
	}
}

// SetupChannel открывает канал, объявляет прямой обмен и привязывает к нему очереди.
func SetupChannel(conn *amqp.Connection, exchange string, queues []QueueConfig) (*amqp.Channel, error) {
	const op = "rabbitmq.SetupChannel"

	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := ch.Qos(10, 0, false); err != nil {
		return nil, fmt.Errorf("failed to set QoS: %w", err)
	}

	err = ch.ExchangeDeclare(
		exchange,
		"direct",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for _, q := range queues {
		_, err := ch.QueueDeclare(
			q.QueueName,
			true,
			false,
			false,
			false,
			nil,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to declare queue %s: %w", op, q.QueueName, err)
		}

		err = ch.QueueBind(
			q.QueueName,
			q.RoutingKey,
			exchange,
			false,
			nil,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to bind queue %s with routing key %s: %w", op, q.QueueName, q.RoutingKey, err)
		}
	}

	return ch, nil
}
