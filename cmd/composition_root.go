package cmd

import (
	"log/slog"
	"strings"

	httpadapter "commerce/internal/adapters/in/http"
	"commerce/internal/adapters/out/kafka"
	"commerce/internal/adapters/out/postgres"
	"commerce/internal/core/application/usecases/commands"
	"commerce/internal/core/application/usecases/queries"
	"commerce/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters and use cases together.
// All handler factory methods hand out fresh handlers over the shared
// unit of work factory and database connection.
type CompositionRoot struct {
	gormDB     *gorm.DB
	config     Config
	logger     *slog.Logger
	publisher  *kafka.SaramaEventPublisher
	uowFactory *postgres.GormUnitOfWorkFactory
}

// NewCompositionRoot builds the object graph from configuration.
// The Kafka publisher is created eagerly so a broker misconfiguration
// fails the boot instead of the first command.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	publisher, err := kafka.NewSaramaEventPublisher(
		strings.Split(config.KafkaHost, ","),
		config.KafkaOrdersTopic,
		config.KafkaItemsTopic,
		logger,
	)
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		gormDB:     gormDB,
		config:     config,
		logger:     logger,
		publisher:  publisher,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, publisher, logger),
	}, nil
}

// Close releases resources held by the root, currently the Kafka producer.
func (c *CompositionRoot) Close() error {
	return c.publisher.Close()
}

func (c *CompositionRoot) itemUoWFactory() commands.ItemUoWFactory {
	return FuncItemUoWFactory(func() commands.ItemUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateItemCommandHandler() commands.CreateItemCommandHandler {
	return commands.NewCreateItemCommandHandler(c.itemUoWFactory())
}

func (c *CompositionRoot) CreateUpdateItemCommandHandler() commands.UpdateItemCommandHandler {
	return commands.NewUpdateItemCommandHandler(c.itemUoWFactory())
}

func (c *CompositionRoot) CreateActivateItemCommandHandler() commands.ActivateItemCommandHandler {
	return commands.NewActivateItemCommandHandler(c.itemUoWFactory())
}

func (c *CompositionRoot) CreateDeactivateItemCommandHandler() commands.DeactivateItemCommandHandler {
	return commands.NewDeactivateItemCommandHandler(c.itemUoWFactory())
}

func (c *CompositionRoot) CreateReserveStockCommandHandler() commands.ReserveStockCommandHandler {
	return commands.NewReserveStockCommandHandler(c.itemUoWFactory())
}

func (c *CompositionRoot) CreateReleaseStockCommandHandler() commands.ReleaseStockCommandHandler {
	return commands.NewReleaseStockCommandHandler(c.itemUoWFactory())
}

func (c *CompositionRoot) CreateCommitStockCommandHandler() commands.CommitStockCommandHandler {
	return commands.NewCommitStockCommandHandler(c.itemUoWFactory())
}

func (c *CompositionRoot) CreateAdjustStockCommandHandler() commands.AdjustStockCommandHandler {
	return commands.NewAdjustStockCommandHandler(c.itemUoWFactory())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateOrderItemsCommandHandler() commands.UpdateOrderItemsCommandHandler {
	return commands.NewUpdateOrderItemsCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateValidateOrderCommandHandler() commands.ValidateOrderCommandHandler {
	return commands.NewValidateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateProcessOrderPaymentCommandHandler() commands.ProcessOrderPaymentCommandHandler {
	return commands.NewProcessOrderPaymentCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateShipOrderCommandHandler() commands.ShipOrderCommandHandler {
	return commands.NewShipOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDeliverOrderCommandHandler() commands.DeliverOrderCommandHandler {
	return commands.NewDeliverOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateExpirePendingOrdersCommandHandler() commands.ExpirePendingOrdersCommandHandler {
	return commands.NewExpirePendingOrdersCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateGetActiveItemsQueryHandler() queries.GetActiveItemsQueryHandler {
	return queries.NewGetActiveItemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLowStockItemsQueryHandler() queries.GetLowStockItemsQueryHandler {
	return queries.NewGetLowStockItemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerOrdersQueryHandler() queries.GetCustomerOrdersQueryHandler {
	return queries.NewGetCustomerOrdersQueryHandler(c.gormDB)
}

// CreateHTTPServer assembles the REST server over all use case handlers.
func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	handlers := httpadapter.Handlers{
		CreateItem:     c.CreateCreateItemCommandHandler(),
		UpdateItem:     c.CreateUpdateItemCommandHandler(),
		ActivateItem:   c.CreateActivateItemCommandHandler(),
		DeactivateItem: c.CreateDeactivateItemCommandHandler(),
		ReserveStock:   c.CreateReserveStockCommandHandler(),
		ReleaseStock:   c.CreateReleaseStockCommandHandler(),
		CommitStock:    c.CreateCommitStockCommandHandler(),
		AdjustStock:    c.CreateAdjustStockCommandHandler(),

		CreateOrder:         c.CreateCreateOrderCommandHandler(),
		UpdateOrderItems:    c.CreateUpdateOrderItemsCommandHandler(),
		ValidateOrder:       c.CreateValidateOrderCommandHandler(),
		ProcessOrderPayment: c.CreateProcessOrderPaymentCommandHandler(),
		ShipOrder:           c.CreateShipOrderCommandHandler(),
		DeliverOrder:        c.CreateDeliverOrderCommandHandler(),
		CancelOrder:         c.CreateCancelOrderCommandHandler(),

		ActiveItems:    c.CreateGetActiveItemsQueryHandler(),
		LowStockItems:  c.CreateGetLowStockItemsQueryHandler(),
		CustomerOrders: c.CreateGetCustomerOrdersQueryHandler(),
	}

	return httpadapter.NewServer(handlers, c.config.LowStockThreshold)
}

// CreateJobManager assembles the background jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateExpirePendingOrdersCommandHandler(),
		c.CreateGetLowStockItemsQueryHandler(),
		c.config.PendingOrderWindow,
		c.config.LowStockThreshold,
		c.logger,
	)
}

type FuncItemUoWFactory func() commands.ItemUoW

func (f FuncItemUoWFactory) Create() commands.ItemUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
