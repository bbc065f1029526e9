// Package dispatch reacts to newly created orders: it indexes the pickup
// point, finds nearby licensed drivers, and fans the offer out to them. The
// engine orchestrates I/O around the pure services.Matcher domain service.
package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"dispatch/internal/core/application/eventbus"
	"dispatch/internal/core/application/notifier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// Engine handles OrderCreated events. Fan-out is best-effort and parallel per
// recipient: a recipient that cannot be reached never blocks or fails the
// others, and zero eligible drivers is a normal outcome.
type Engine struct {
	orders   ports.OrderRepository
	licenses ports.CategoryLicenseRepository
	presence ports.PresenceRegistry
	location ports.LocationCache
	router   *notifier.Router
	matcher  services.Matcher

	searchRadiusKm float64
	searchLimit    int

	logger *slog.Logger
}

// NewEngine creates a dispatch engine. searchRadiusKm bounds the proximity
// search around the pickup point; searchLimit caps the candidate set.
func NewEngine(
	orders ports.OrderRepository,
	licenses ports.CategoryLicenseRepository,
	presence ports.PresenceRegistry,
	location ports.LocationCache,
	router *notifier.Router,
	searchRadiusKm float64,
	searchLimit int,
	logger *slog.Logger,
) *Engine {
	return &Engine{
		orders:         orders,
		licenses:       licenses,
		presence:       presence,
		location:       location,
		router:         router,
		matcher:        services.NewMatcher(),
		searchRadiusKm: searchRadiusKm,
		searchLimit:    searchLimit,
		logger:         logger.With("component", "dispatch"),
	}
}

// Register subscribes the engine on the dispatcher.
func (e *Engine) Register(dispatcher *eventbus.Dispatcher) {
	dispatcher.Subscribe(order.EventOrderCreated, e.HandleOrderCreated)
}

// HandleOrderCreated indexes the order's pickup point and offers the order to
// drivers. Recipients are the online driver fleet plus any nearby licensed
// drivers who are offline; the latter go through the push channel. The order
// is re-read first so a redispatched event for an already taken order becomes
// a no-op.
func (e *Engine) HandleOrderCreated(ctx context.Context, event order.DomainEvent) error {
	created, ok := event.(order.OrderCreated)
	if !ok {
		return fmt.Errorf("unexpected event type %T for %s", event, event.Kind())
	}

	aggregate, err := e.orders.Get(ctx, created.OrderID())
	if err != nil {
		return err
	}

	if aggregate.Status() != order.StatusCreated {
		e.logger.Debug("skipping dispatch for order no longer open",
			"orderId", aggregate.ID().String(),
			"status", aggregate.Status().String())
		return nil
	}

	if err = e.location.UpdateOrderLocation(ctx, created.OrderID(), created.Category, created.Pickup); err != nil {
		e.logger.Warn("failed to index order pickup point",
			"orderId", created.OrderID().String(),
			"error", err)
	}

	eligible, err := e.findEligible(ctx, aggregate, created.Pickup)
	if err != nil {
		return err
	}

	recipients := e.collectRecipients(aggregate.ClientID(), eligible)
	if len(recipients) == 0 {
		e.logger.Info("no drivers to offer order to",
			"orderId", aggregate.ID().String(),
			"category", aggregate.Category().String())
		return nil
	}

	e.fanOut(ctx, aggregate, recipients)

	e.logger.Info("order offered to drivers",
		"orderId", aggregate.ID().String(),
		"category", aggregate.Category().String(),
		"eligible", len(eligible),
		"recipients", len(recipients))

	return nil
}

// findEligible runs the proximity search and filters the result down to
// drivers licensed for the order's category.
func (e *Engine) findEligible(ctx context.Context, aggregate *order.Order, pickup kernel.GeoPoint) ([]kernel.UUID, error) {
	nearby, err := e.location.FindNearestDrivers(ctx, pickup, e.searchRadiusKm, e.searchLimit)
	if err != nil {
		return nil, errs.NewDependencyError("location cache", err)
	}

	if len(nearby) == 0 {
		return nil, nil
	}

	driverIDs := make([]kernel.UUID, 0, len(nearby))
	for _, candidate := range nearby {
		driverIDs = append(driverIDs, candidate.DriverID)
	}

	licensesByDriver, err := e.licenses.GetAllByDrivers(ctx, driverIDs)
	if err != nil {
		return nil, err
	}

	candidates := make([]services.Candidate, 0, len(nearby))
	for _, candidate := range nearby {
		candidates = append(candidates, services.Candidate{
			DriverID: candidate.DriverID,
			Licenses: licensesByDriver[candidate.DriverID],
		})
	}

	return e.matcher.Match(aggregate, candidates)
}

// collectRecipients unions the online driver fleet with the eligible nearby
// drivers, so offline licensed drivers still get the offer over push. The
// ordering client never receives their own order.
func (e *Engine) collectRecipients(clientID kernel.UUID, eligible []kernel.UUID) []kernel.UUID {
	seen := make(map[kernel.UUID]struct{})
	var recipients []kernel.UUID

	add := func(id kernel.UUID) {
		if id.IsEqual(clientID) {
			return
		}
		if _, dup := seen[id]; dup {
			return
		}
		seen[id] = struct{}{}
		recipients = append(recipients, id)
	}

	for _, id := range e.presence.OnlineUsers(ports.RoleDriver) {
		add(id)
	}
	for _, id := range eligible {
		add(id)
	}

	return recipients
}

func (e *Engine) fanOut(ctx context.Context, aggregate *order.Order, recipients []kernel.UUID) {
	payload := notifier.Payload{
		OrderID:  aggregate.ID().String(),
		ClientID: aggregate.ClientID().String(),
		Category: aggregate.Category().String(),
		Lat:      aggregate.Pickup().Lat(),
		Lng:      aggregate.Pickup().Lng(),
		Price:    aggregate.Price().Amount(),
		Address:  aggregate.Origin().Address(),
	}

	var wg sync.WaitGroup
	for _, driverID := range recipients {
		wg.Add(1)
		go func() {
			defer wg.Done()
			e.router.NotifyUser(ctx, driverID, notifier.EventNewOrder, payload)
		}()
	}
	wg.Wait()
}
