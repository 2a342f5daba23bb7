package queries_test

import (
	"context"
	"testing"
	"time"

	"storefront/internal/adapters/out/postgres/orderrepo"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/account"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetCustomerOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetCustomerOrdersQueryHandler
	orderRepo *orderrepo.GormOrderRepository
	customer  account.Principal
}

func (suite *GetCustomerOrdersQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{}, &orderrepo.PaymentDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetCustomerOrdersQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, mockAggregateTracker{})

	suite.customer, err = account.NewPrincipal(kernel.NewUUID(), account.RoleCustomer)
	suite.Require().NoError(err)
}

func (suite *GetCustomerOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetCustomerOrdersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetCustomerOrdersQueryHandlerTestSuite) TestHandle_NoOrders_ReturnsEmptySlice() {
	result := suite.handle()

	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetCustomerOrdersQueryHandlerTestSuite) TestHandle_PendingOrder_IsCancellable() {
	ord := suite.orderFor(suite.customer.ID(), order.StatusPending, nil)
	err := suite.orderRepo.Add(context.Background(), ord)
	suite.Require().NoError(err)

	result := suite.handle()

	suite.Require().Len(result, 1)
	suite.True(result[0].Cancellable)
	suite.False(result[0].Returnable)
}

func (suite *GetCustomerOrdersQueryHandlerTestSuite) TestHandle_CompletedOrder_IsReturnable() {
	ord := suite.orderFor(suite.customer.ID(), order.StatusCompleted, nil)
	err := suite.orderRepo.Add(context.Background(), ord)
	suite.Require().NoError(err)

	result := suite.handle()

	suite.Require().Len(result, 1)
	suite.False(result[0].Cancellable)
	suite.True(result[0].Returnable)
	suite.Nil(result[0].ReturnStatus)
}

func (suite *GetCustomerOrdersQueryHandlerTestSuite) TestHandle_OpenReturn_BlocksASecondReturn() {
	request, err := order.RestoreReturnRequest(order.ReturnApproved,
		order.ReturnMethodUPSStore, "arrived damaged", time.Now().UTC())
	suite.Require().NoError(err)

	ord := suite.orderFor(suite.customer.ID(), order.StatusCompleted, request)
	err = suite.orderRepo.Add(context.Background(), ord)
	suite.Require().NoError(err)

	result := suite.handle()

	suite.Require().Len(result, 1)
	suite.False(result[0].Returnable)
	suite.Require().NotNil(result[0].ReturnStatus)
	suite.Equal(order.ReturnApproved, *result[0].ReturnStatus)
	suite.Equal("arrived damaged", result[0].ReturnReason)
}

func (suite *GetCustomerOrdersQueryHandlerTestSuite) TestHandle_AttachesLinesAndTotal() {
	item1, err := order.NewItem(kernel.NewUUID(), 2, 19.99)
	suite.Require().NoError(err)
	item2, err := order.NewItem(kernel.NewUUID(), 1, 5.00)
	suite.Require().NoError(err)

	ord, err := order.RestoreOrder(kernel.NewUUID(), suite.customer.ID(), order.TypePickup,
		order.StatusPending, []order.Item{item1, item2}, nil, nil, nil, 1, time.Now().UTC())
	suite.Require().NoError(err)
	err = suite.orderRepo.Add(context.Background(), ord)
	suite.Require().NoError(err)

	result := suite.handle()

	suite.Require().Len(result, 1)
	suite.Len(result[0].Items, 2)
	suite.InDelta(44.98, result[0].Total, 0.001)
}

func (suite *GetCustomerOrdersQueryHandlerTestSuite) TestHandle_DoesNotLeakOtherCustomersOrders() {
	mine := suite.orderFor(suite.customer.ID(), order.StatusPending, nil)
	theirs := suite.orderFor(kernel.NewUUID(), order.StatusPending, nil)

	for _, o := range []*order.Order{mine, theirs} {
		err := suite.orderRepo.Add(context.Background(), o)
		suite.Require().NoError(err)
	}

	result := suite.handle()

	suite.Require().Len(result, 1)
	suite.True(mine.ID().IsEqual(result[0].ID))
}

func (suite *GetCustomerOrdersQueryHandlerTestSuite) handle() []queries.GetCustomerOrdersQueryResponse {
	query, err := queries.NewGetCustomerOrdersQuery(suite.customer)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	return result
}

func (suite *GetCustomerOrdersQueryHandlerTestSuite) orderFor(
	customerID kernel.UUID,
	status order.Status,
	request *order.ReturnRequest,
) *order.Order {
	item, err := order.NewItem(kernel.NewUUID(), 1, 12.00)
	suite.Require().NoError(err)

	ord, err := order.RestoreOrder(kernel.NewUUID(), customerID, order.TypePickup,
		status, []order.Item{item}, nil, nil, request, 1, time.Now().UTC())
	suite.Require().NoError(err)
	return ord
}

func TestGetCustomerOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetCustomerOrdersQueryHandlerTestSuite))
}
