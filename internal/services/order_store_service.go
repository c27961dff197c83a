package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"atrid_reportes/internal/models"
	"atrid_reportes/internal/repositories"
)

var (
	// ErrOrderNotFound is returned when an operation references an order id
	// that is not part of the currently loaded period.
	ErrOrderNotFound = errors.New("order not found in loaded period")

	// ErrDeleteInFlight is returned when a delete is requested for an order
	// that already has a delete request outstanding.
	ErrDeleteInFlight = errors.New("delete already in progress for order")
)

// OrderFilter restricts the visible order set beyond the period filtering
// the backend already applied. A nil filter keeps every order.
type OrderFilter func(models.Order) bool

// OrderStore owns the order collection for the currently selected period.
// The collection is replaced wholesale on every period load and mutated only
// by single-order deletion; the selection is a reference into the collection
// by id, never a copy. All operations are safe for concurrent use.
//
// When the period changes while a load is still outstanding, the most recent
// request wins: results carrying a stale load sequence are discarded.
type OrderStore struct {
	source repositories.OrderSource

	mu             sync.Mutex
	orders         []models.Order
	selectedID     *int64
	deletingIDs    []int64
	commissionRate decimal.Decimal
	periodStart    *time.Time
	periodEnd      *time.Time
	loadSeq        uint64
	filter         OrderFilter
}

// NewOrderStore creates an empty store reading from the given order source.
func NewOrderStore(source repositories.OrderSource) *OrderStore {
	return &OrderStore{source: source}
}

// SetFilter installs an in-memory filter applied on top of the loaded
// collection. Pass nil to remove it.
func (s *OrderStore) SetFilter(filter OrderFilter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = filter
}

// LoadPeriod replaces the collection with the orders placed inside the
// closed day interval [start, end]. start is normalized to the beginning of
// its day and end to the end of its day before the backend is queried.
//
// On failure the previous collection is left untouched and the error is
// returned for the caller to surface. A result that arrives after a newer
// load has started is discarded without touching any state.
func (s *OrderStore) LoadPeriod(ctx context.Context, start, end time.Time) error {
	inicio := beginningOfDay(start)
	fin := endOfDay(end)

	s.mu.Lock()
	s.loadSeq++
	seq := s.loadSeq
	s.periodStart = &inicio
	s.periodEnd = &fin
	s.mu.Unlock()

	return s.load(ctx, seq, &inicio, &fin)
}

// Reload refetches the currently selected period. Before any period has
// been chosen it lists orders without date bounds.
func (s *OrderStore) Reload(ctx context.Context) error {
	s.mu.Lock()
	s.loadSeq++
	seq := s.loadSeq
	inicio := s.periodStart
	fin := s.periodEnd
	s.mu.Unlock()

	return s.load(ctx, seq, inicio, fin)
}

func (s *OrderStore) load(ctx context.Context, seq uint64, inicio, fin *time.Time) error {
	orders, err := s.source.ListOrders(ctx, inicio, fin)

	s.mu.Lock()
	defer s.mu.Unlock()

	// A newer load started while this one was on the wire; its result wins.
	if seq != s.loadSeq {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load orders for period: %w", err)
	}

	s.orders = orders
	if s.selectedID != nil && s.indexOfLocked(*s.selectedID) < 0 {
		s.selectedID = nil
	}
	return nil
}

// SelectOrder sets the order shown in the detail view. Pass nil to clear the
// selection. Selecting an id that is not in the loaded collection returns
// ErrOrderNotFound and leaves the selection unchanged.
func (s *OrderStore) SelectOrder(orderID *int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if orderID == nil {
		s.selectedID = nil
		return nil
	}
	if s.indexOfLocked(*orderID) < 0 {
		return ErrOrderNotFound
	}
	id := *orderID
	s.selectedID = &id
	return nil
}

// DeleteOrder removes one order, backend first. An id absent from the
// collection is a no-op. A second delete for an id whose request is still
// outstanding returns ErrDeleteInFlight without issuing another request.
// On backend failure the collection is left unchanged; the in-flight marker
// is cleared on every path.
func (s *OrderStore) DeleteOrder(ctx context.Context, orderID int64) error {
	s.mu.Lock()
	if s.indexOfLocked(orderID) < 0 {
		s.mu.Unlock()
		return nil
	}
	if s.isDeletingLocked(orderID) {
		s.mu.Unlock()
		return ErrDeleteInFlight
	}
	s.deletingIDs = append(s.deletingIDs, orderID)
	s.mu.Unlock()

	err := s.source.DeleteOrder(ctx, orderID)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearDeletingLocked(orderID)

	if err != nil {
		return fmt.Errorf("failed to delete order %d: %w", orderID, err)
	}

	if idx := s.indexOfLocked(orderID); idx >= 0 {
		s.orders = append(s.orders[:idx], s.orders[idx+1:]...)
	}
	if s.selectedID != nil && *s.selectedID == orderID {
		s.selectedID = nil
	}
	return nil
}

// SetCommissionRate sets the percentage applied to the period total when
// deriving the commission amount.
func (s *OrderStore) SetCommissionRate(rate decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.commissionRate = rate
}

// CommissionRate returns the configured commission percentage.
func (s *OrderStore) CommissionRate() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commissionRate
}

// Orders returns the visible order collection in backend order, with the
// in-memory filter applied when one is installed.
func (s *OrderStore) Orders() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visibleLocked()
}

// SelectedOrder returns the order currently open for detail viewing, or nil.
func (s *OrderStore) SelectedOrder() *models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selectedID == nil {
		return nil
	}
	idx := s.indexOfLocked(*s.selectedID)
	if idx < 0 {
		return nil
	}
	order := s.orders[idx]
	return &order
}

// DeletingID returns the id of the most recently started in-flight deletion,
// or nil when none is outstanding.
func (s *OrderStore) DeletingID() *int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.deletingIDs) == 0 {
		return nil
	}
	id := s.deletingIDs[len(s.deletingIDs)-1]
	return &id
}

// IsDeleting reports whether a delete request is outstanding for orderID.
func (s *OrderStore) IsDeleting(orderID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isDeletingLocked(orderID)
}

// Period returns the normalized bounds of the currently selected period.
// Both are nil before the first LoadPeriod.
func (s *OrderStore) Period() (start, end *time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.periodStart, s.periodEnd
}

// Summary computes the aggregate report figures over the visible collection.
func (s *OrderStore) Summary() models.ReportSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return BuildReportSummary(s.visibleLocked(), s.commissionRate)
}

// OrderSummaries shapes the visible collection into listing rows.
func (s *OrderStore) OrderSummaries() []models.OrderSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	visible := s.visibleLocked()
	summaries := make([]models.OrderSummary, 0, len(visible))
	for _, o := range visible {
		summaries = append(summaries, BuildOrderSummary(o, s.isDeletingLocked(o.ID)))
	}
	return summaries
}

func (s *OrderStore) visibleLocked() []models.Order {
	visible := make([]models.Order, 0, len(s.orders))
	for _, o := range s.orders {
		if s.filter == nil || s.filter(o) {
			visible = append(visible, o)
		}
	}
	return visible
}

func (s *OrderStore) indexOfLocked(orderID int64) int {
	for i, o := range s.orders {
		if o.ID == orderID {
			return i
		}
	}
	return -1
}

func (s *OrderStore) isDeletingLocked(orderID int64) bool {
	for _, id := range s.deletingIDs {
		if id == orderID {
			return true
		}
	}
	return false
}

func (s *OrderStore) clearDeletingLocked(orderID int64) {
	for i, id := range s.deletingIDs {
		if id == orderID {
			s.deletingIDs = append(s.deletingIDs[:i], s.deletingIDs[i+1:]...)
			return
		}
	}
}

// beginningOfDay normalizes t to 00:00:00 in its own location.
func beginningOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// endOfDay normalizes t to the last instant of its day.
func endOfDay(t time.Time) time.Time {
	return beginningOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}
