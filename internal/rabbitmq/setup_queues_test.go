package rabbitmq

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eventsphere/user-service/internal/config"
)

func TestGetDeleteQueues(t *testing.T) {
	cfg := config.RabbitMQ{
		UserDeleteQueue:     "user.delete.queue",
		UserDeleteKey:       "user.delete",
		EventDeleteQueue:    "event.delete.queue",
		EventDeleteKey:      "event.delete",
		CategoryDeleteQueue: "category.delete.queue",
		CategoryDeleteKey:   "category.delete",
	}

	queues := GetDeleteQueues(cfg)

	assert.Len(t, queues, 3)
	assert.Equal(t, QueueConfig{QueueName: "user.delete.queue", RoutingKey: "user.delete"}, queues[0])
	assert.Equal(t, QueueConfig{QueueName: "event.delete.queue", RoutingKey: "event.delete"}, queues[1])
	assert.Equal(t, QueueConfig{QueueName: "category.delete.queue", RoutingKey: "category.delete"}, queues[2])
}
