package queries_test

import (
	"context"
	"testing"
	"time"

	"storefront/internal/adapters/out/postgres/cartrepo"
	"storefront/internal/adapters/out/postgres/catalogrepo"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/account"
	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetCartQueryHandlerTestSuite struct {
	suite.Suite
	container   *postgres.PostgresContainer
	db          *gorm.DB
	handler     queries.GetCartQueryHandler
	cartRepo    *cartrepo.GormCartRepository
	catalogRepo *catalogrepo.GormCatalogRepository
	customer    account.Principal
	testVariant *product.Variant
}

func (suite *GetCartQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&catalogrepo.ProductDTO{}, &catalogrepo.VariantDTO{}, &cartrepo.CartItemDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetCartQueryHandler(db)
	suite.cartRepo = cartrepo.NewGormCartRepository(db)
	suite.catalogRepo = catalogrepo.NewGormCatalogRepository(db)

	suite.customer, err = account.NewPrincipal(kernel.NewUUID(), account.RoleCustomer)
	suite.Require().NoError(err)

	// One catalog entry shared by every test
	prod, err := product.NewProduct(kernel.NewUUID(), "Canvas Tote",
		"Heavy cotton tote bag", "https://cdn.example.com/tote.jpg", time.Now().UTC())
	suite.Require().NoError(err)
	err = suite.catalogRepo.AddProduct(ctx, prod)
	suite.Require().NoError(err)

	suite.testVariant, err = product.NewVariant(kernel.NewUUID(), prod.ID(), "M", "Natural", 24.50, 10)
	suite.Require().NoError(err)
	err = suite.catalogRepo.AddVariant(ctx, suite.testVariant)
	suite.Require().NoError(err)
}

func (suite *GetCartQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetCartQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE cart_items").Error
	suite.Require().NoError(err)
}

func (suite *GetCartQueryHandlerTestSuite) TestHandle_EmptyCart_ReturnsEmptySlice() {
	query, err := queries.NewGetCartQuery(suite.customer)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetCartQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetCartQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetCartQuery constructor")
}

func (suite *GetCartQueryHandlerTestSuite) TestHandle_JoinsCatalogDetails() {
	line, err := cart.NewCartItem(kernel.NewUUID(), suite.customer.ID(),
		suite.testVariant.ID(), 3, time.Now().UTC())
	suite.Require().NoError(err)
	err = suite.cartRepo.Add(context.Background(), line)
	suite.Require().NoError(err)

	query, err := queries.NewGetCartQuery(suite.customer)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(suite.testVariant.ID().IsEqual(result[0].VariantID))
	suite.Equal("Canvas Tote", result[0].ProductName)
	suite.Equal("M", result[0].Size)
	suite.Equal("Natural", result[0].Color)
	suite.Equal(3, result[0].Quantity)
	suite.InDelta(24.50, result[0].UnitPrice, 0.001)
	suite.InDelta(73.50, result[0].Subtotal, 0.001)
}

func (suite *GetCartQueryHandlerTestSuite) TestHandle_IgnoresOtherCustomersLines() {
	mine, err := cart.NewCartItem(kernel.NewUUID(), suite.customer.ID(),
		suite.testVariant.ID(), 1, time.Now().UTC())
	suite.Require().NoError(err)
	err = suite.cartRepo.Add(context.Background(), mine)
	suite.Require().NoError(err)

	other, err := cart.NewCartItem(kernel.NewUUID(), kernel.NewUUID(),
		suite.testVariant.ID(), 5, time.Now().UTC())
	suite.Require().NoError(err)
	err = suite.cartRepo.Add(context.Background(), other)
	suite.Require().NoError(err)

	query, err := queries.NewGetCartQuery(suite.customer)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(1, result[0].Quantity)
}

func (suite *GetCartQueryHandlerTestSuite) TestHandle_LinesOrderedOldestFirst() {
	ctx := context.Background()
	base := time.Now().UTC().Add(-time.Hour)

	prod, err := product.NewProduct(kernel.NewUUID(), "Wool Scarf",
		"Merino wool scarf", "https://cdn.example.com/scarf.jpg", time.Now().UTC())
	suite.Require().NoError(err)
	err = suite.catalogRepo.AddProduct(ctx, prod)
	suite.Require().NoError(err)

	second, err := product.NewVariant(kernel.NewUUID(), prod.ID(), "OS", "Grey", 18.00, 4)
	suite.Require().NoError(err)
	err = suite.catalogRepo.AddVariant(ctx, second)
	suite.Require().NoError(err)

	newerLine, err := cart.NewCartItem(kernel.NewUUID(), suite.customer.ID(),
		second.ID(), 1, base.Add(30*time.Minute))
	suite.Require().NoError(err)
	err = suite.cartRepo.Add(ctx, newerLine)
	suite.Require().NoError(err)

	olderLine, err := cart.NewCartItem(kernel.NewUUID(), suite.customer.ID(),
		suite.testVariant.ID(), 2, base)
	suite.Require().NoError(err)
	err = suite.cartRepo.Add(ctx, olderLine)
	suite.Require().NoError(err)

	query, err := queries.NewGetCartQuery(suite.customer)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.True(suite.testVariant.ID().IsEqual(result[0].VariantID))
	suite.True(second.ID().IsEqual(result[1].VariantID))
}

func TestGetCartQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetCartQueryHandlerTestSuite))
}
