package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"storefront/cmd"
	httpadapter "storefront/internal/adapters/in/http"
	"storefront/internal/jobs"
	"storefront/internal/pkg/auth"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := connectDB(configs)

	root := cmd.NewCompositionRoot(configs, gormDB)

	tokens, err := auth.NewTokenService(configs.JWTSecret, configs.TokenTTL)
	if err != nil {
		log.Fatalf("Error creating token service: %v", err)
	}

	server := httpadapter.NewServer(
		tokens,
		auth.NewPasswordHasher(),
		root.CreateAccountRepository(),
		httpadapter.Handlers{
			RegisterCustomer:     root.CreateRegisterCustomerCommandHandler(),
			SubmitRegistration:   root.CreateSubmitRegistrationCommandHandler(),
			ApproveRegistration:  root.CreateApproveRegistrationCommandHandler(),
			RejectRegistration:   root.CreateRejectRegistrationCommandHandler(),
			AddCartItem:          root.CreateAddCartItemCommandHandler(),
			RemoveCartItem:       root.CreateRemoveCartItemCommandHandler(),
			ClearCart:            root.CreateClearCartCommandHandler(),
			PlaceOrder:           root.CreatePlaceOrderCommandHandler(),
			CancelOrder:          root.CreateCancelOrderCommandHandler(),
			RequestReturn:        root.CreateRequestReturnCommandHandler(),
			UpdateOrderStatus:    root.CreateUpdateOrderStatusCommandHandler(),
			UpdateReturnStatus:   root.CreateUpdateReturnStatusCommandHandler(),
			AssignDelivery:       root.CreateAssignDeliveryCommandHandler(),
			UpdateDeliveryStatus: root.CreateUpdateDeliveryStatusCommandHandler(),

			GetCatalog:              root.CreateGetCatalogQueryHandler(),
			GetCart:                 root.CreateGetCartQueryHandler(),
			GetCustomerOrders:       root.CreateGetCustomerOrdersQueryHandler(),
			GetAdminOrders:          root.CreateGetAdminOrdersQueryHandler(),
			GetEmployeeDeliveries:   root.CreateGetEmployeeDeliveriesQueryHandler(),
			GetPendingRegistrations: root.CreateGetPendingRegistrationsQueryHandler(),
		},
	)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(
		root.CreatePurgeStaleCartItemsCommandHandler(),
		configs.CartRetention,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(server, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:      goDotEnvVariable("HTTP_PORT"),
		DBHost:        goDotEnvVariable("DB_HOST"),
		DBPort:        goDotEnvVariable("DB_PORT"),
		DBUser:        goDotEnvVariable("DB_USER"),
		DBPassword:    goDotEnvVariable("DB_PASSWORD"),
		DBName:        goDotEnvVariable("DB_NAME"),
		DBSslMode:     goDotEnvVariable("DB_SSLMODE"),
		JWTSecret:     goDotEnvVariable("JWT_SECRET"),
		TokenTTL:      durationEnvVariable("TOKEN_TTL"),
		CartRetention: durationEnvVariable("CART_RETENTION"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func durationEnvVariable(key string) time.Duration {
	value := goDotEnvVariable(key)
	duration, err := time.ParseDuration(value)
	if err != nil {
		log.Fatalf("Error parsing %s as duration: %v", key, err)
	}
	return duration
}

func connectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func startWebServer(server *httpadapter.Server, port string) {
	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
