package queries_test

import (
	"context"
	"testing"
	"time"

	"forwarding/internal/adapters/out/postgres/carrierrepo"
	"forwarding/internal/adapters/out/postgres/orderrepo"
	"forwarding/internal/adapters/out/postgres/warehouserepo"
	"forwarding/internal/core/application/usecases/queries"
	"forwarding/internal/core/domain/model/carrier"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/order"
	"forwarding/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(string, any) {}

type QueryHandlersTestSuite struct {
	suite.Suite
	container   *postgres.PostgresContainer
	db          *gorm.DB
	orderRepo   *orderrepo.GormOrderRepository
	carrierRepo *carrierrepo.GormCarrierRepository
	now         time.Time
}

func (suite *QueryHandlersTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &carrierrepo.CarrierDTO{}, &warehouserepo.WarehouseDTO{})
	suite.Require().NoError(err)

	suite.orderRepo = orderrepo.NewGormOrderRepository(db, noopTracker{})
	suite.carrierRepo = carrierrepo.NewGormCarrierRepository(db, noopTracker{})
	suite.now = time.Date(2026, time.May, 4, 9, 0, 0, 0, time.UTC)
}

func (suite *QueryHandlersTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *QueryHandlersTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, carriers, warehouses CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *QueryHandlersTestSuite) addCarrier(shortName, vat string) *carrier.Carrier {
	c, err := carrier.NewCarrier(kernel.NewUUID(), carrier.Details{
		FullName:           shortName + " Transport Ltd",
		ShortName:          shortName,
		VatNumber:          vat,
		TermOfPaymentDays:  30,
		InsuranceExpiresOn: suite.now.AddDate(0, 6, 0),
		LicenceExpiresOn:   suite.now.AddDate(1, 0, 0),
	})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.carrierRepo.Add(context.Background(), c))
	return c
}

func (suite *QueryHandlersTestSuite) addOrder(carrierID *kernel.UUID, status order.Status, createdAt time.Time) *order.Order {
	o, err := order.NewOrder(kernel.NewUUID(), carrierID, "tiles", createdAt)
	suite.Require().NoError(err)

	path := map[order.Status][]order.Status{
		order.OnLoading:           {order.OnLoading},
		order.OnTheWayToUnloading: {order.OnLoading, order.OnTheWayToUnloading},
		order.Unloaded:            {order.OnLoading, order.OnTheWayToUnloading, order.OnUnloading, order.Unloaded},
		order.Cancelled:           {order.Cancelled},
	}
	for _, next := range path[status] {
		suite.Require().NoError(o.ApplyStatus(next))
	}

	suite.Require().NoError(suite.orderRepo.Add(context.Background(), o))
	return o
}

func (suite *QueryHandlersTestSuite) TestGetActiveOrders_EmptyDatabase_ReturnsEmptySlice() {
	handler := queries.NewGetActiveOrdersQueryHandler(suite.db)

	result, err := handler.Handle(context.Background(), queries.NewGetActiveOrdersQuery())

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *QueryHandlersTestSuite) TestGetActiveOrders_ExcludesTerminalOrders() {
	c := suite.addCarrier("NORDIC", "SE556677889901")
	carrierID := c.ID()

	first := suite.addOrder(nil, order.AssignedToCompanyTruck, suite.now.Add(-3*time.Hour))
	second := suite.addOrder(&carrierID, order.OnTheWayToUnloading, suite.now.Add(-2*time.Hour))
	suite.addOrder(nil, order.Unloaded, suite.now.Add(-4*time.Hour))
	suite.addOrder(&carrierID, order.Cancelled, suite.now.Add(-time.Hour))

	handler := queries.NewGetActiveOrdersQueryHandler(suite.db)
	result, err := handler.Handle(context.Background(), queries.NewGetActiveOrdersQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	suite.True(result[0].ID.IsEqual(first.ID()))
	suite.Nil(result[0].CarrierID)
	suite.Empty(result[0].CarrierShortName)
	suite.Equal(order.AssignedToCompanyTruck, result[0].Status)

	suite.True(result[1].ID.IsEqual(second.ID()))
	suite.Require().NotNil(result[1].CarrierID)
	suite.True(result[1].CarrierID.IsEqual(carrierID))
	suite.Equal("NORDIC", result[1].CarrierShortName)
	suite.Equal(order.OnTheWayToUnloading, result[1].Status)
	suite.Equal("tiles", result[1].Goods)
}

func (suite *QueryHandlersTestSuite) TestGetActiveOrders_ContextCancellation_ReturnsError() {
	suite.addOrder(nil, order.AssignedToCompanyTruck, suite.now)
	handler := queries.NewGetActiveOrdersQueryHandler(suite.db)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := handler.Handle(ctx, queries.NewGetActiveOrdersQuery())

	suite.Require().ErrorIs(err, errs.ErrInfrastructure)
	suite.Nil(result)
}

func (suite *QueryHandlersTestSuite) TestGetOrder_ReturnsOrder() {
	o := suite.addOrder(nil, order.OnLoading, suite.now)
	handler := queries.NewGetOrderQueryHandler(suite.db)
	query, err := queries.NewGetOrderQuery(o.ID())
	suite.Require().NoError(err)

	result, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.True(result.ID.IsEqual(o.ID()))
	suite.Equal(order.OnLoading, result.Status)
	suite.WithinDuration(suite.now, result.CreatedAt, time.Millisecond)
}

func (suite *QueryHandlersTestSuite) TestGetOrder_UnknownID_ReturnsNotFound() {
	handler := queries.NewGetOrderQueryHandler(suite.db)
	query, err := queries.NewGetOrderQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = handler.Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersTestSuite) TestGetAllCarriers_SortedByShortName() {
	suite.addCarrier("ZETA", "DE811907980")
	suite.addCarrier("ALFA", "PL5252248481")

	handler := queries.NewGetAllCarriersQueryHandler(suite.db)
	result, err := handler.Handle(context.Background(), queries.NewGetAllCarriersQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal("ALFA", result[0].ShortName)
	suite.Equal("PL5252248481", result[0].VatNumber)
	suite.Equal(30, result[0].TermOfPaymentDays)
	suite.Equal(time.Date(2026, time.November, 4, 0, 0, 0, 0, time.UTC), result[0].InsuranceExpiresOn)
	suite.Equal("ZETA", result[1].ShortName)
}

func (suite *QueryHandlersTestSuite) TestGetAllWarehouses_SortedByName() {
	suite.Require().NoError(suite.db.Create(&[]warehouserepo.WarehouseDTO{
		{ID: uuid.New(), Name: "Poznan Hub", Address: "Glogowska 1, Poznan"},
		{ID: uuid.New(), Name: "Gdansk Port", Address: "Portowa 7, Gdansk"},
	}).Error)

	handler := queries.NewGetAllWarehousesQueryHandler(suite.db)
	result, err := handler.Handle(context.Background(), queries.NewGetAllWarehousesQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal("Gdansk Port", result[0].Name)
	suite.Equal("Portowa 7, Gdansk", result[0].Address)
	suite.Equal("Poznan Hub", result[1].Name)
}

func (suite *QueryHandlersTestSuite) TestInvalidQueries_ReturnErrors() {
	_, err := queries.NewGetActiveOrdersQueryHandler(suite.db).Handle(context.Background(), queries.GetActiveOrdersQuery{})
	suite.Require().ErrorIs(err, queries.ErrGetActiveOrdersQueryIsNotConstructed)

	_, err = queries.NewGetAllCarriersQueryHandler(suite.db).Handle(context.Background(), queries.GetAllCarriersQuery{})
	suite.Require().ErrorIs(err, queries.ErrGetAllCarriersQueryIsNotConstructed)
}

func TestQueryHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(QueryHandlersTestSuite))
}
