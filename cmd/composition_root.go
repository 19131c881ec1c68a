package cmd

import (
	"log/slog"
	"strconv"

	httpserver "localmarket/internal/adapters/in/http"
	"localmarket/internal/adapters/out/memory"
	"localmarket/internal/adapters/out/postgres"
	rediscartstore "localmarket/internal/adapters/out/redis/cartstore"
	"localmarket/internal/core/application/usecases/commands"
	"localmarket/internal/core/application/usecases/queries"
	"localmarket/internal/core/domain/services"
	"localmarket/internal/core/ports"
	"localmarket/internal/jobs"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	cartStore  *rediscartstore.RedisCartStore
	backlog    *memory.ActivityBacklog
	allocator  services.ReferenceAllocator
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, redisClient *redis.Client, logger *slog.Logger) (CompositionRoot, error) {
	padLength, err := strconv.Atoi(config.OrderRefPadLength)
	if err != nil {
		return CompositionRoot{}, err
	}

	allocator, err := services.NewReferenceAllocator(services.ReferenceAllocatorConfig{
		RefPrefix:    config.OrderRefPrefix,
		RefPadLength: padLength,
	})
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		cartStore:  rediscartstore.NewRedisCartStore(redisClient),
		backlog:    memory.NewActivityBacklog(),
		allocator:  allocator,
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) CreateSalesOrderProcessor() (*commands.SalesOrderProcessor, error) {
	var f commands.SalesOrderUoWFactory = FuncSalesOrderUoWFactory(func() commands.SalesOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSalesOrderProcessor(f, c.allocator, c.backlog, c.logger)
}

func (c *CompositionRoot) CreateCheckoutCommandHandler() (commands.CheckoutCommandHandler, error) {
	processor, err := c.CreateSalesOrderProcessor()
	if err != nil {
		return commands.CheckoutCommandHandler{}, err
	}

	var f commands.CheckoutUoWFactory = FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCheckoutCommandHandler(f, c.cartStore, processor, c.logger)
}

func (c *CompositionRoot) CreateUpdateOrderRowsCommandHandler() (commands.UpdateOrderRowsCommandHandler, error) {
	processor, err := c.CreateSalesOrderProcessor()
	if err != nil {
		return commands.UpdateOrderRowsCommandHandler{}, err
	}

	var f commands.OrderEditUoWFactory = FuncOrderEditUoWFactory(func() commands.OrderEditUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderRowsCommandHandler(f, processor)
}

func (c *CompositionRoot) CreateGetProducerOrdersQueryHandler() queries.GetProducerOrdersQueryHandler {
	return queries.NewGetProducerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderActivityQueryHandler() queries.GetOrderActivityQueryHandler {
	return queries.NewGetOrderActivityQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	var f ports.UnitOfWorkFactory = FuncUnitOfWorkFactory(func() ports.UnitOfWork {
		return c.uowFactory.Create()
	})
	return jobs.NewJobManager(f, c.backlog, c.logger)
}

func (c *CompositionRoot) CreateHTTPServer() (*httpserver.Server, error) {
	checkoutHandler, err := c.CreateCheckoutCommandHandler()
	if err != nil {
		return nil, err
	}

	updateOrderRowsHandler, err := c.CreateUpdateOrderRowsCommandHandler()
	if err != nil {
		return nil, err
	}

	return httpserver.NewServer(
		checkoutHandler,
		updateOrderRowsHandler,
		c.CreateGetProducerOrdersQueryHandler(),
		c.CreateGetOrderActivityQueryHandler(),
		c.cartStore,
	), nil
}

type FuncSalesOrderUoWFactory func() commands.SalesOrderUoW

func (f FuncSalesOrderUoWFactory) Create() commands.SalesOrderUoW {
	return f()
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}

type FuncOrderEditUoWFactory func() commands.OrderEditUoW

func (f FuncOrderEditUoWFactory) Create() commands.OrderEditUoW {
	return f()
}

type FuncUnitOfWorkFactory func() ports.UnitOfWork

func (f FuncUnitOfWorkFactory) Create() ports.UnitOfWork {
	return f()
}
