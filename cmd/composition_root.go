package cmd

import (
	"io"
	"log/slog"
	"time"

	httpin "forwarding/internal/adapters/in/http"
	"forwarding/internal/adapters/out/bcrypthash"
	"forwarding/internal/adapters/out/jwtcodec"
	"forwarding/internal/adapters/out/postgres"
	"forwarding/internal/adapters/out/postgres/principalrepo"
	"forwarding/internal/adapters/out/rabbitmq"
	"forwarding/internal/core/application/security"
	"forwarding/internal/core/application/usecases/commands"
	"forwarding/internal/core/application/usecases/queries"
	"forwarding/internal/core/domain/services"
	"forwarding/internal/core/ports"
	"forwarding/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot builds the application graph once at startup. The signing
// key and the bcrypt cost are fixed here and never change afterwards.
type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	codec      *jwtcodec.Codec
	hasher     *bcrypthash.Hasher
	publisher  ports.OrderEventPublisher
	clock      commands.Clock
	logger     *slog.Logger
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	codec, err := jwtcodec.NewCodec([]byte(cfg.JWTSecret), cfg.TokenTTL, jwtcodec.WithIssuer(cfg.JWTIssuer))
	if err != nil {
		return nil, err
	}

	hasher, err := bcrypthash.NewHasher(cfg.BcryptCost)
	if err != nil {
		return nil, err
	}

	var publisher ports.OrderEventPublisher = rabbitmq.NewLoggingPublisher(logger)
	if cfg.RabbitMQURL != "" {
		publisher, err = rabbitmq.Dial(cfg.RabbitMQURL, cfg.OrderEventsExchange, logger)
		if err != nil {
			return nil, err
		}
	}

	return &CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, logger),
		codec:      codec,
		hasher:     hasher,
		publisher:  publisher,
		clock:      time.Now,
		logger:     logger,
	}, nil
}

// Close releases the broker connection, if any.
func (c *CompositionRoot) Close() error {
	if closer, ok := c.publisher.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

func (c *CompositionRoot) CreateLoginCommandHandler() commands.LoginCommandHandler {
	return commands.NewLoginCommandHandler(
		principalrepo.NewGormCredentialStore(c.gormDB),
		c.hasher,
		c.codec,
		c.clock,
		c.logger,
	)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), services.NewOrderPlanner(), c.clock, c.logger)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(
		c.orderUoWFactory(),
		services.NewOrderWorkflow(),
		c.publisher,
		c.clock,
		c.logger,
	)
}

func (c *CompositionRoot) CreateCreateCarrierCommandHandler() commands.CreateCarrierCommandHandler {
	return commands.NewCreateCarrierCommandHandler(c.carrierUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateCheckCarrierDocumentsCommandHandler() commands.CheckCarrierDocumentsCommandHandler {
	return commands.NewCheckCarrierDocumentsCommandHandler(c.carrierUoWFactory(), c.clock, c.logger)
}

func (c *CompositionRoot) CreateCreatePrincipalCommandHandler() commands.CreatePrincipalCommandHandler {
	var f commands.PrincipalUoWFactory = FuncPrincipalUoWFactory(func() commands.PrincipalUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreatePrincipalCommandHandler(f, c.hasher, c.logger)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllCarriersQueryHandler() queries.GetAllCarriersQueryHandler {
	return queries.NewGetAllCarriersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllWarehousesQueryHandler() queries.GetAllWarehousesQueryHandler {
	return queries.NewGetAllWarehousesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateRequestAuthorizationFilter() security.RequestAuthorizationFilter {
	return security.NewRequestAuthorizationFilter(c.codec)
}

func (c *CompositionRoot) CreateAccessPolicy() security.AccessPolicy {
	return security.NewDefaultAccessPolicy()
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		Login:             c.CreateLoginCommandHandler(),
		CreateOrder:       c.CreateCreateOrderCommandHandler(),
		ChangeOrderStatus: c.CreateChangeOrderStatusCommandHandler(),
		CreateCarrier:     c.CreateCreateCarrierCommandHandler(),
		CreatePrincipal:   c.CreateCreatePrincipalCommandHandler(),
		GetActiveOrders:   c.CreateGetActiveOrdersQueryHandler(),
		GetOrder:          c.CreateGetOrderQueryHandler(),
		GetAllCarriers:    c.CreateGetAllCarriersQueryHandler(),
		GetAllWarehouses:  c.CreateGetAllWarehousesQueryHandler(),
	}, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	handler := c.CreateCheckCarrierDocumentsCommandHandler()
	return jobs.NewJobManager(&handler, c.cfg.CarrierExpirySchedule, c.cfg.CarrierExpiryWindow, c.logger)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) carrierUoWFactory() commands.CarrierUoWFactory {
	return FuncCarrierUoWFactory(func() commands.CarrierUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCarrierUoWFactory func() commands.CarrierUoW

func (f FuncCarrierUoWFactory) Create() commands.CarrierUoW {
	return f()
}

type FuncPrincipalUoWFactory func() commands.PrincipalUoW

func (f FuncPrincipalUoWFactory) Create() commands.PrincipalUoW {
	return f()
}
