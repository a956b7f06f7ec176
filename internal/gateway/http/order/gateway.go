package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"scheduler/internal/entities"
	orderservice "scheduler/internal/service/order"
	retrierconfig "scheduler/pkg/retrier"
	"scheduler/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "order-service"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 1 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

type httpStatusError struct {
	code int
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("order-service responded %d", e.code)
}

type OrderGateway struct {
	client  httpDoer
	baseURL string
	retrier retrier
}

func New(client httpDoer, baseURL string) *OrderGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryableErr,
	}

	return &OrderGateway{
		client:  client,
		baseURL: baseURL,
		retrier: backoff_adapter.New(retryConfig),
	}
}

// GetOrderByRef запрашивает заказ у order-service для верификации
// событий и отображения номера заказа.
func (o *OrderGateway) GetOrderByRef(ctx context.Context, orderRef string) (*entities.Order, error) {
	endpoint := fmt.Sprintf("%s/orders/%s", o.baseURL, url.PathEscape(orderRef))

	var payload orderPayload

	err := o.executeWithMetrics(ctx, "GetOrderByRef", func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return fmt.Errorf("build request: %w", err)
		}

		resp, err := o.client.Do(req)
		if err != nil {
			return fmt.Errorf("do request: %w", err)
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusOK:
			if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
				return fmt.Errorf("decode response: %w", err)
			}
			return nil
		case resp.StatusCode == http.StatusNotFound:
			return orderservice.ErrOrderNotFound
		default:
			return &httpStatusError{code: resp.StatusCode}
		}
	})
	if err != nil {
		return nil, fmt.Errorf("gateway order, get order: %s: %w", orderRef, err)
	}

	return toDomain(&payload), nil
}

// ретраим 429, 5xx и сетевые сбои; бизнес-ответы — нет
func isRetryableErr(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, orderservice.ErrOrderNotFound) {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var statusErr *httpStatusError
	if errors.As(err, &statusErr) {
		return statusErr.code == http.StatusTooManyRequests || statusErr.code >= http.StatusInternalServerError
	}
	return true
}

func (o *OrderGateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := o.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	statusCode := getStatusCode(err)
	GatewayRequestDuration.WithLabelValues(serviceName, method, statusCode).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, method, statusCode).Inc()
	}

	return err
}

func getStatusCode(err error) string {
	if err == nil {
		return "200"
	}

	var statusErr *httpStatusError
	if errors.As(err, &statusErr) {
		return strconv.Itoa(statusErr.code)
	}
	if errors.Is(err, orderservice.ErrOrderNotFound) {
		return "404"
	}
	return "error"
}
