package cmd

import (
	"log/slog"

	wsadapter "dispatch/internal/adapters/in/ws"
	"dispatch/internal/adapters/out/inmem/presence"
	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/adapters/out/push"
	"dispatch/internal/adapters/out/redisgeo"
	"dispatch/internal/core/application/dispatch"
	"dispatch/internal/core/application/eventbus"
	"dispatch/internal/core/application/notifier"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// CompositionRoot wires adapters, use cases, and the event pipeline.
// Everything downstream of the dispatcher (engine, notification lifecycle)
// is registered here so command handlers only ever see the EventDispatcher
// interface.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory

	dispatcher *eventbus.Dispatcher
	presence   *presence.Registry
	locations  *redisgeo.LocationCache
	router     *notifier.Router
	logger     *slog.Logger
}

// NewCompositionRoot builds the object graph. The returned root is ready:
// the dispatch engine and the notification lifecycle are already subscribed
// to the event dispatcher.
func NewCompositionRoot(configs Config, gormDB *gorm.DB, redisClient *redis.Client, logger *slog.Logger) CompositionRoot {
	uowFactory := postgres.NewGormUnitOfWorkFactory(gormDB)

	registry := presence.NewRegistry(logger)
	locations := redisgeo.NewLocationCache(redisClient)
	sink := push.NewLogSink(logger)
	router := notifier.NewRouter(registry, sink, logger)
	dispatcher := eventbus.NewDispatcher(logger)

	lifecycle := notifier.NewLifecycle(router, locations, logger)
	lifecycle.Register(dispatcher)

	engine := dispatch.NewEngine(
		uowFactory.Create().OrderRepository(),
		uowFactory.Create().CategoryLicenseRepository(),
		registry,
		locations,
		router,
		configs.SearchRadiusKm,
		configs.SearchLimit,
		logger,
	)
	engine.Register(dispatcher)

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *uowFactory,
		dispatcher: dispatcher,
		presence:   registry,
		locations:  locations,
		router:     router,
		logger:     logger,
	}
}

// Dispatcher exposes the event dispatcher for command handler wiring.
func (c *CompositionRoot) Dispatcher() *eventbus.Dispatcher {
	return c.dispatcher
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.dispatcher)
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	return commands.NewAcceptOrderCommandHandler(c.orderUoWFactory(), c.dispatcher)
}

func (c *CompositionRoot) CreateDriverArrivedCommandHandler() commands.DriverArrivedCommandHandler {
	return commands.NewDriverArrivedCommandHandler(c.orderUoWFactory(), c.dispatcher)
}

func (c *CompositionRoot) CreateStartRideCommandHandler() commands.StartRideCommandHandler {
	return commands.NewStartRideCommandHandler(c.orderUoWFactory(), c.dispatcher)
}

func (c *CompositionRoot) CreateCompleteRideCommandHandler() commands.CompleteRideCommandHandler {
	return commands.NewCompleteRideCommandHandler(c.orderUoWFactory(), c.dispatcher)
}

func (c *CompositionRoot) CreateRejectByClientCommandHandler() commands.RejectByClientCommandHandler {
	return commands.NewRejectByClientCommandHandler(c.orderUoWFactory(), c.dispatcher)
}

func (c *CompositionRoot) CreateRejectByDriverCommandHandler() commands.RejectByDriverCommandHandler {
	return commands.NewRejectByDriverCommandHandler(c.orderUoWFactory(), c.dispatcher, c.logger)
}

func (c *CompositionRoot) CreateRateOrderCommandHandler() commands.RateOrderCommandHandler {
	return commands.NewRateOrderCommandHandler(c.orderUoWFactory(), c.dispatcher)
}

func (c *CompositionRoot) CreateAddCategoryLicenseCommandHandler() commands.AddCategoryLicenseCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddCategoryLicenseCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateDriverLocationCommandHandler() commands.UpdateDriverLocationCommandHandler {
	return commands.NewUpdateDriverLocationCommandHandler(c.orderUoWFactory(), c.locations, c.router)
}

func (c *CompositionRoot) CreateRedispatchStaleOrdersCommandHandler() commands.RedispatchStaleOrdersCommandHandler {
	return commands.NewRedispatchStaleOrdersCommandHandler(c.orderUoWFactory(), c.dispatcher, c.logger)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetClientOrderHistoryQueryHandler() queries.GetClientOrderHistoryQueryHandler {
	return queries.NewGetClientOrderHistoryQueryHandler(c.gormDB)
}

// CreateWSHandler builds the WebSocket upgrade handler bound to the shared
// presence registry.
func (c *CompositionRoot) CreateWSHandler() *wsadapter.Handler {
	updateLocation := c.CreateUpdateDriverLocationCommandHandler()
	return wsadapter.NewHandler(c.presence, c.locations, &updateLocation, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
