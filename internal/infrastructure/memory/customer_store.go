// Package memory implementa CustomerStore en memoria del proceso.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/customer-api/internal/domain/entity"
	"github.com/jhoicas/customer-api/internal/domain/repository"
)

var _ repository.CustomerStore = (*CustomerStore)(nil)

// CustomerStore colección de clientes indexada por ID y protegida por un RWMutex.
// Las lecturas devuelven copias; el store es el único dueño de sus entidades.
type CustomerStore struct {
	mu        sync.RWMutex
	customers map[uuid.UUID]*entity.Customer
	issued    map[uuid.UUID]struct{} // todos los IDs entregados, incluidos los borrados

	now   func() time.Time
	newID func() uuid.UUID
}

// Option configura el store al construirlo.
type Option func(*CustomerStore)

// WithClock reemplaza el reloj (para tests).
func WithClock(now func() time.Time) Option {
	return func(s *CustomerStore) { s.now = now }
}

// WithIDGenerator reemplaza el generador de IDs (para tests).
func WithIDGenerator(gen func() uuid.UUID) Option {
	return func(s *CustomerStore) { s.newID = gen }
}

// NewCustomerStore construye un store vacío.
func NewCustomerStore(opts ...Option) *CustomerStore {
	s := &CustomerStore{
		customers: make(map[uuid.UUID]*entity.Customer),
		issued:    make(map[uuid.UUID]struct{}),
		now:       time.Now,
		newID:     uuid.New,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List devuelve todos los clientes ordenados por fecha de creación (y luego ID).
func (s *CustomerStore) List(_ context.Context) ([]entity.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.Customer, 0, len(s.customers))
	for _, c := range s.customers {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedDate.Equal(out[j].CreatedDate) {
			return out[i].CreatedDate.Before(out[j].CreatedDate)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out, nil
}

// GetByID obtiene un cliente por ID.
func (s *CustomerStore) GetByID(_ context.Context, id uuid.UUID) (entity.Customer, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.customers[id]
	if !ok {
		return entity.Customer{}, false, nil
	}
	return *c, true, nil
}

// Create persiste un cliente nuevo con ID y fechas generados por el store.
func (s *CustomerStore) Create(_ context.Context, in entity.Customer) (entity.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	c := &entity.Customer{
		ID:               s.nextID(),
		CustomerName:     in.CustomerName,
		Version:          in.Version,
		CreatedDate:      now,
		LastModifiedDate: now,
	}
	s.customers[c.ID] = c
	return *c, nil
}

// Update sobrescribe CustomerName y Version del cliente existente.
func (s *CustomerStore) Update(_ context.Context, id uuid.UUID, in entity.Customer) (entity.Customer, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.customers[id]
	if !ok {
		return entity.Customer{}, false, nil
	}
	c.CustomerName = in.CustomerName
	c.Version = in.Version
	c.LastModifiedDate = s.now()
	return *c, true, nil
}

// Patch aplica solo los campos presentes del patch.
func (s *CustomerStore) Patch(_ context.Context, id uuid.UUID, patch entity.CustomerPatch) (entity.Customer, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.customers[id]
	if !ok {
		return entity.Customer{}, false, nil
	}
	patch.Apply(c)
	c.LastModifiedDate = s.now()
	return *c, true, nil
}

// Delete elimina el cliente; borrar un ID inexistente no es un error.
func (s *CustomerStore) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.customers[id]; !ok {
		return false, nil
	}
	delete(s.customers, id)
	return true, nil
}

// Len número de clientes vivos.
func (s *CustomerStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.customers)
}

// nextID genera un ID nunca entregado antes. Requiere s.mu tomado.
func (s *CustomerStore) nextID() uuid.UUID {
	for {
		id := s.newID()
		if _, used := s.issued[id]; used {
			continue
		}
		s.issued[id] = struct{}{}
		return id
	}
}
