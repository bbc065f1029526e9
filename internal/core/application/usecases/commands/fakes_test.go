package commands_test

import (
	"context"
	"fmt"
	"sync"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// memOrderStore is an in-memory order repository with the same versioned
// write semantics as the real one: an update only lands when the stored
// version still matches the version the aggregate was loaded with. Reads
// hand out detached copies, so concurrent handlers race exactly like they
// would against separate database sessions.
type memOrderStore struct {
	mu     sync.Mutex
	orders map[kernel.UUID]*order.Order
}

func newMemOrderStore() *memOrderStore {
	return &memOrderStore{orders: make(map[kernel.UUID]*order.Order)}
}

func cloneOrder(aggregate *order.Order, version int64) *order.Order {
	clone, err := order.RestoreOrder(
		aggregate.ID(),
		aggregate.ClientID(),
		aggregate.DriverID(),
		aggregate.Category(),
		aggregate.Status(),
		aggregate.Origin(),
		aggregate.Destination(),
		aggregate.Pickup(),
		aggregate.Price(),
		aggregate.Comment(),
		aggregate.Rating(),
		aggregate.RejectReason(),
		aggregate.CreatedAt(),
		aggregate.UpdatedAt(),
		aggregate.EndedAt(),
		version,
	)
	if err != nil {
		panic(fmt.Sprintf("cloneOrder: %v", err))
	}
	return clone
}

func (s *memOrderStore) Add(_ context.Context, aggregate *order.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.orders[aggregate.ID()]; exists {
		return errs.NewValueIsInvalidError("orderID")
	}
	s.orders[aggregate.ID()] = cloneOrder(aggregate, aggregate.Version())
	return nil
}

func (s *memOrderStore) Update(_ context.Context, aggregate *order.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, exists := s.orders[aggregate.ID()]
	if !exists {
		return errs.NewObjectNotFoundError("orderID", aggregate.ID().String())
	}
	if stored.Version() != aggregate.Version() {
		return errs.NewVersionConflictError("order", aggregate.ID().String(), aggregate.Version())
	}
	s.orders[aggregate.ID()] = cloneOrder(aggregate, aggregate.Version()+1)
	return nil
}

func (s *memOrderStore) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, exists := s.orders[id]
	if !exists {
		return nil, errs.NewObjectNotFoundError("orderID", id.String())
	}
	return cloneOrder(stored, stored.Version()), nil
}

func (s *memOrderStore) GetAll(_ context.Context, filter ports.OrderFilter) ([]*order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []*order.Order
	for _, stored := range s.orders {
		if filter.ClientID != nil && !stored.ClientID().IsEqual(*filter.ClientID) {
			continue
		}
		if filter.DriverID != nil {
			assigned := stored.DriverID()
			if assigned == nil || !assigned.IsEqual(*filter.DriverID) {
				continue
			}
		}
		if filter.Category != nil && stored.Category() != *filter.Category {
			continue
		}
		excluded := false
		for _, status := range filter.StatusNotIn {
			if stored.Status() == status {
				excluded = true
				break
			}
		}
		if excluded {
			continue
		}
		result = append(result, cloneOrder(stored, stored.Version()))
	}
	return result, nil
}

func (s *memOrderStore) GetStaleCreated(_ context.Context, olderThan time.Duration) ([]*order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-olderThan)
	var result []*order.Order
	for _, stored := range s.orders {
		if stored.Status() == order.StatusCreated && stored.UpdatedAt().Before(cutoff) {
			result = append(result, cloneOrder(stored, stored.Version()))
		}
	}
	return result, nil
}

// fakeOrderUoW wraps the store with no-op transaction control. The store's
// own locking provides the atomicity the tests care about.
type fakeOrderUoW struct {
	store *memOrderStore
}

func (u *fakeOrderUoW) Begin(context.Context) error            { return nil }
func (u *fakeOrderUoW) Commit(context.Context) error           { return nil }
func (u *fakeOrderUoW) Rollback(context.Context) error         { return nil }
func (u *fakeOrderUoW) OrderRepository() ports.OrderRepository { return u.store }

type fakeOrderUoWFactory struct {
	store *memOrderStore
}

func (f *fakeOrderUoWFactory) Create() commands.OrderUoW {
	return &fakeOrderUoW{store: f.store}
}

// recordingDispatcher collects dispatched events for assertions.
type recordingDispatcher struct {
	mu     sync.Mutex
	events []order.DomainEvent
}

func (d *recordingDispatcher) Dispatch(_ context.Context, events []order.DomainEvent) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = append(d.events, events...)
}

func (d *recordingDispatcher) kinds() []order.EventKind {
	d.mu.Lock()
	defer d.mu.Unlock()

	kinds := make([]order.EventKind, 0, len(d.events))
	for _, event := range d.events {
		kinds = append(kinds, event.Kind())
	}
	return kinds
}
