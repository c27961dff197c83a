package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"atrid_reportes/internal/models"
)

// OrderSource is the order backend as seen by the report engine. Both date
// bounds of ListOrders are optional; when set they are sent as absolute
// RFC 3339 instants and the backend returns every order placed inside the
// closed interval.
type OrderSource interface {
	ListOrders(ctx context.Context, inicio, fin *time.Time) ([]models.Order, error)
	DeleteOrder(ctx context.Context, orderID int64) error
}

// orderRepository talks HTTP+JSON to the order backend.
type orderRepository struct {
	baseURL string
	client  *http.Client
}

// NewOrderRepository creates an OrderSource for the backend at baseURL.
// A timeout of zero leaves the client without a deadline; callers are then
// expected to bound requests through the context.
func NewOrderRepository(baseURL string, timeout time.Duration) OrderSource {
	return &orderRepository{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (r *orderRepository) ListOrders(ctx context.Context, inicio, fin *time.Time) ([]models.Order, error) {
	params := url.Values{}
	if inicio != nil {
		params.Set("inicio", inicio.Format(time.RFC3339Nano))
	}
	if fin != nil {
		params.Set("fin", fin.Format(time.RFC3339Nano))
	}

	endpoint := r.baseURL + "/ordenes"
	if encoded := params.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build list orders request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: backend returned status %d", ErrFetchFailed, resp.StatusCode)
	}

	var orders []models.Order
	if err := json.NewDecoder(resp.Body).Decode(&orders); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrFetchFailed, err)
	}
	return orders, nil
}

func (r *orderRepository) DeleteOrder(ctx context.Context, orderID int64) error {
	endpoint := r.baseURL + "/ordenes/" + strconv.FormatInt(orderID, 10)

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build delete order request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDeleteFailed, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: order %d", ErrNotFound, orderID)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return fmt.Errorf("%w: backend returned status %d", ErrDeleteFailed, resp.StatusCode)
	}
	return nil
}
