// Package peers реализует HTTP-клиенты соседних сервисов, владеющих
// данными событий и категорий. Сервис хранит только внешние идентификаторы,
// сами данные запрашиваются на каждое чтение и не кешируются.
//
// Ошибки разделяются на два вида: models.ErrItemNotFound, если соседний
// сервис ответил 404, и models.ErrPeerUnavailable при сетевых ошибках и
// прочих статусах — клиентам они нужны для разного поведения при повторе.
package peers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/eventsphere/user-service/internal/models"
)

// Client базовый HTTP-клиент соседнего сервиса с ограниченным таймаутом
// и небольшим числом повторов на транспортные ошибки.
type Client struct {
	baseURL    string
	retries    int
	httpClient *http.Client
}

// NewClient создаёт клиент для baseURL вида http://host/v1/events.
func NewClient(baseURL string, timeout time.Duration, retries int) *Client {
	if retries < 1 {
		retries = 1
	}
	return &Client{
		baseURL:    baseURL,
		retries:    retries,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// getJSON запрашивает {baseURL}/{id} и декодирует тело ответа в out.
func (c *Client) getJSON(ctx context.Context, id int64, out any) error {
	const op = "peers.getJSON"

	url := fmt.Sprintf("%s/%d", c.baseURL, id)

	var lastErr error
	for range c.retries {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		switch {
		case resp.StatusCode == http.StatusNotFound:
			_ = resp.Body.Close()
			return fmt.Errorf("%s: id %d: %w", op, id, models.ErrItemNotFound)
		case resp.StatusCode != http.StatusOK:
			lastErr = fmt.Errorf("unexpected status: %s", resp.Status)
			_ = resp.Body.Close()
			continue
		}

		err = json.NewDecoder(resp.Body).Decode(out)
		_ = resp.Body.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		return nil
	}

	return fmt.Errorf("%s: %v: %w", op, lastErr, models.ErrPeerUnavailable)
}

// EventClient запрашивает события из event-service.
type EventClient struct {
	*Client
}

// NewEventClient создаёт клиент событий.
func NewEventClient(baseURL string, timeout time.Duration, retries int) *EventClient {
	return &EventClient{Client: NewClient(baseURL, timeout, retries)}
}

// Find возвращает событие по его ID.
func (c *EventClient) Find(ctx context.Context, id int64) (any, error) {
	var event models.EventDto
	if err := c.getJSON(ctx, id, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

// CategoryClient запрашивает категории из event-service.
type CategoryClient struct {
	*Client
}

// NewCategoryClient создаёт клиент категорий.
func NewCategoryClient(baseURL string, timeout time.Duration, retries int) *CategoryClient {
	return &CategoryClient{Client: NewClient(baseURL, timeout, retries)}
}

// Find возвращает категорию по её ID.
func (c *CategoryClient) Find(ctx context.Context, id int64) (any, error) {
	var category models.CategoryDto
	if err := c.getJSON(ctx, id, &category); err != nil {
		return nil, err
	}
	return &category, nil
}
