package store

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/elrammalachi-lab/booze-bags/internal/domain/orders"
)

// OrdersKey is the storage key holding the order tracker's state.
const OrdersKey = "booze-bags-orders-v1"

// OrderStore owns the order tracker's collection. The persisted payload is a
// plain JSON array, not wrapped in an object.
type OrderStore struct {
	kv     KV
	logger *slog.Logger

	mu       sync.Mutex
	orders   []orders.Order
	revision int64

	monthlyCache struct {
		revision int64
		valid    bool
		stats    orders.MonthlyBreakdown
	}
}

// NewOrderStore creates a store over the given persistence collaborator.
func NewOrderStore(kv KV, logger *slog.Logger) *OrderStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &OrderStore{kv: kv, logger: logger}
}

// Load reads the persisted orders. A missing or unparseable payload is
// replaced by an empty array, which is persisted immediately so later loads
// are clean.
func (s *OrderStore) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	payload, ok, err := s.kv.Read(ctx, OrdersKey)
	if err != nil {
		return err
	}
	if ok {
		var list []orders.Order
		if err := json.Unmarshal([]byte(payload), &list); err == nil {
			s.orders = list
			return nil
		}
		s.logger.Warn("unparseable orders payload, resetting to empty")
	}

	s.orders = []orders.Order{}
	s.persist(ctx)
	return nil
}

// Snapshot returns a copy of the current orders.
func (s *OrderStore) Snapshot() []orders.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copySlice(s.orders)
}

// Get returns an order by identity.
func (s *OrderStore) Get(id string) (orders.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return orders.Order{}, ErrNotFound
}

// Create adds an order, assigning identity and creation timestamp when absent.
func (s *OrderStore) Create(ctx context.Context, o orders.Order) orders.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(o.ID) == "" {
		o.ID = uuid.NewString()
	}
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now()
	}
	if o.Status == "" {
		o.Status = orders.StatusOpen
	}
	s.orders = append(s.orders, o)
	s.commit(ctx)
	return o
}

// Update replaces an order in place, preserving identity and creation timestamp.
func (s *OrderStore) Update(ctx context.Context, o orders.Order) (orders.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.orders {
		if existing.ID != o.ID {
			continue
		}
		o.CreatedAt = existing.CreatedAt
		s.orders[i] = o
		s.commit(ctx)
		return o, nil
	}
	return orders.Order{}, ErrNotFound
}

// Delete removes an order by identity; unknown identities are a no-op.
func (s *OrderStore) Delete(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, o := range s.orders {
		if o.ID == id {
			s.orders = append(s.orders[:i:i], s.orders[i+1:]...)
			s.commit(ctx)
			return true
		}
	}
	return false
}

// Monthly returns the derived monthly breakdown, memoized per store revision.
func (s *OrderStore) Monthly() orders.MonthlyBreakdown {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.monthlyCache.valid && s.monthlyCache.revision == s.revision {
		return s.monthlyCache.stats
	}

	stats := orders.ComputeMonthly(copySlice(s.orders))
	s.monthlyCache.revision = s.revision
	s.monthlyCache.valid = true
	s.monthlyCache.stats = stats
	return stats
}

// Revision reports the mutation counter; it changes whenever state changes.
func (s *OrderStore) Revision() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.revision
}

func (s *OrderStore) commit(ctx context.Context) {
	s.revision++
	s.persist(ctx)
}

// persist writes the whole collection; failures are logged and swallowed so
// the tracker stays usable without durable storage. Callers must hold the mutex.
func (s *OrderStore) persist(ctx context.Context) {
	payload, err := json.Marshal(s.orders)
	if err != nil {
		s.logger.Warn("failed to serialize orders", "error", err)
		return
	}
	if err := s.kv.Write(ctx, OrdersKey, string(payload)); err != nil {
		s.logger.Debug("failed to persist orders", "error", err)
	}
}
