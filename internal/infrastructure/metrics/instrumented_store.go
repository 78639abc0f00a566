package metrics

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/customer-api/internal/domain/entity"
	"github.com/jhoicas/customer-api/internal/domain/repository"
)

var _ repository.CustomerStore = (*InstrumentedStore)(nil)

// InstrumentedStore decorador que registra métricas de cualquier CustomerStore.
type InstrumentedStore struct {
	next repository.CustomerStore
	m    *Metrics
}

// NewInstrumentedStore envuelve next.
func NewInstrumentedStore(next repository.CustomerStore, m *Metrics) *InstrumentedStore {
	return &InstrumentedStore{next: next, m: m}
}

// Refresh sincroniza el gauge de clientes con el contenido actual del store.
func (s *InstrumentedStore) Refresh(ctx context.Context) error {
	_, err := s.List(ctx)
	return err
}

func (s *InstrumentedStore) List(ctx context.Context) ([]entity.Customer, error) {
	start := time.Now()
	list, err := s.next.List(ctx)
	s.observe("list", start, outcome(true, err))
	if err == nil {
		s.m.CustomersTotal.Set(float64(len(list)))
	}
	return list, err
}

func (s *InstrumentedStore) GetByID(ctx context.Context, id uuid.UUID) (entity.Customer, bool, error) {
	start := time.Now()
	c, found, err := s.next.GetByID(ctx, id)
	s.observe("get", start, outcome(found, err))
	return c, found, err
}

func (s *InstrumentedStore) Create(ctx context.Context, in entity.Customer) (entity.Customer, error) {
	start := time.Now()
	c, err := s.next.Create(ctx, in)
	s.observe("create", start, outcome(true, err))
	if err == nil {
		s.m.CustomersTotal.Inc()
	}
	return c, err
}

func (s *InstrumentedStore) Update(ctx context.Context, id uuid.UUID, in entity.Customer) (entity.Customer, bool, error) {
	start := time.Now()
	c, found, err := s.next.Update(ctx, id, in)
	s.observe("update", start, outcome(found, err))
	return c, found, err
}

func (s *InstrumentedStore) Patch(ctx context.Context, id uuid.UUID, patch entity.CustomerPatch) (entity.Customer, bool, error) {
	start := time.Now()
	c, found, err := s.next.Patch(ctx, id, patch)
	s.observe("patch", start, outcome(found, err))
	return c, found, err
}

func (s *InstrumentedStore) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	start := time.Now()
	existed, err := s.next.Delete(ctx, id)
	s.observe("delete", start, outcome(existed, err))
	if err == nil && existed {
		s.m.CustomersTotal.Dec()
	}
	return existed, err
}

func (s *InstrumentedStore) observe(op string, start time.Time, result string) {
	s.m.OperationDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	s.m.OperationsTotal.WithLabelValues(op, result).Inc()
}

func outcome(found bool, err error) string {
	switch {
	case err != nil:
		return OutcomeError
	case !found:
		return OutcomeNotFound
	default:
		return OutcomeOK
	}
}
