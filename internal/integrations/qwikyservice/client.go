package qwikyservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/qwiky-admin-proxy/internal/domain"
)

// Client клиент для работы с Qwiky admin API
// Каждый вызов - один запрос к внешнему API, без ретраев и кэша
type Client struct {
	baseURL    string
	hoodID     string
	httpClient *http.Client
	log        Logger
	metrics    MetricsCollector
}

type Option func(*Client)

// WithMetrics включает сбор метрик по вызовам внешнего API
func WithMetrics(m MetricsCollector) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// NewClient создает новый экземпляр клиента Qwiky API
func NewClient(baseURL, hoodID string, timeout time.Duration, log Logger, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		hoodID:  hoodID,
		httpClient: &http.Client{
			Timeout: timeout,
			// 3xx отдаётся вызывающему как не-2xx статус, POST не переигрывается как GET
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		log: log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// operation описание одного вызова внешнего API
type operation struct {
	name   string
	method string
	path   string
	query  url.Values
}

// ListBookings получает страницу бронирований района
func (c *Client) ListBookings(ctx context.Context, token string, page, size int) (json.RawMessage, error) {
	return c.do(ctx, token, operation{
		name:   OpListBookings,
		method: http.MethodGet,
		path:   c.hoodBookingsPath(),
		query: url.Values{
			"page": {strconv.Itoa(page)},
			"size": {strconv.Itoa(size)},
			"sort": {domain.BookingsSort},
		},
	})
}

// CountBookings возвращает общее количество бронирований района (page.totalElements)
// Если счётчик в ответе отсутствует, возвращает 0
func (c *Client) CountBookings(ctx context.Context, token string) (int64, error) {
	body, err := c.do(ctx, token, operation{
		name:   OpCountBookings,
		method: http.MethodGet,
		path:   c.hoodBookingsPath(),
		query: url.Values{
			"page": {"0"},
			"size": {"1"},
		},
	})
	if err != nil {
		return 0, err
	}

	var page bookingsPage
	if err := json.Unmarshal(body, &page); err != nil {
		return 0, translateError(0, nil, fmt.Errorf("failed to decode bookings page: %w", err)).withOperation(OpCountBookings)
	}
	if page.Page == nil || page.Page.TotalElements == nil {
		return 0, nil
	}
	return *page.Page.TotalElements, nil
}

// GetUser получает пользователя по ID
func (c *Client) GetUser(ctx context.Context, token, userID string) (json.RawMessage, error) {
	return c.do(ctx, token, operation{
		name:   OpGetUser,
		method: http.MethodGet,
		path:   "/admin/user/" + url.PathEscape(userID),
	})
}

// CancelBooking отменяет бронирование
func (c *Client) CancelBooking(ctx context.Context, token, bookingID string) (json.RawMessage, error) {
	return c.do(ctx, token, operation{
		name:   OpCancelBooking,
		method: http.MethodPost,
		path:   "/admin/booking/" + url.PathEscape(bookingID) + "/cancel",
	})
}

// SettleBooking отмечает бронирование как рассчитанное
func (c *Client) SettleBooking(ctx context.Context, token, bookingID string) (json.RawMessage, error) {
	return c.do(ctx, token, operation{
		name:   OpSettleBooking,
		method: http.MethodPost,
		path:   "/admin/booking/" + url.PathEscape(bookingID) + "/settled",
	})
}

func (c *Client) hoodBookingsPath() string {
	return "/admin/booking/hood/" + url.PathEscape(c.hoodID)
}

// do выполняет запрос и приводит любой результат к json.RawMessage или *UpstreamError
func (c *Client) do(ctx context.Context, token string, op operation) (json.RawMessage, error) {
	endpoint := c.baseURL + op.path
	if len(op.query) > 0 {
		endpoint += "?" + op.query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, op.method, endpoint, nil)
	if err != nil {
		return nil, translateError(0, nil, fmt.Errorf("failed to create request: %w", err)).withOperation(op.name)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	c.log.Debug("Qwiky %s: sending %s %s", op.name, op.method, op.path)

	started := time.Now()
	body, status, err := c.send(req)
	c.observe(op.name, status, err, time.Since(started))

	if err != nil {
		upErr := translateError(status, body, err).withOperation(op.name)
		c.logFailure(op, upErr)
		return nil, upErr
	}
	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		upErr := translateError(status, body, nil).withOperation(op.name)
		c.logFailure(op, upErr)
		return nil, upErr
	}
	if !json.Valid(body) {
		upErr := translateError(0, nil, fmt.Errorf("invalid JSON in response body")).withOperation(op.name)
		c.logFailure(op, upErr)
		return nil, upErr
	}

	c.log.Info("Qwiky %s: %s %s -> %d", op.name, op.method, op.path, status)
	return json.RawMessage(body), nil
}

func (c *Client) send(req *http.Request) ([]byte, int, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, resp.StatusCode, nil
}

func (c *Client) logFailure(op operation, err *UpstreamError) {
	switch {
	case errors.Is(err, ErrUpstreamStatus):
		c.log.Warn("Qwiky %s: %s %s -> %d: %s", op.name, op.method, op.path, err.StatusCode, err.Detail)
	case errors.Is(err, ErrTimeout):
		c.log.Error("Qwiky %s: %s %s timed out", op.name, op.method, op.path)
	default:
		c.log.Error("Qwiky %s: %s %s failed: %s", op.name, op.method, op.path, err.Detail)
	}
}

func (c *Client) observe(operation string, status int, err error, duration time.Duration) {
	if c.metrics == nil {
		return
	}

	label := strconv.Itoa(status)
	if err != nil {
		label = "error"
		if isTimeout(err) {
			label = "timeout"
		}
	}
	c.metrics.ObserveUpstream(operation, label, duration)
}
