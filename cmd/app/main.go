package main

import (
	"fmt"
	nethttp "net/http"
	"os"

	"fulfillment/cmd"
	httpadapter "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/notifier"
	"fulfillment/internal/adapters/out/postgres/cancellationrepo"
	"fulfillment/internal/adapters/out/postgres/invoicerepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/planrepo"
	"fulfillment/internal/adapters/out/postgres/refundrepo"
	"fulfillment/internal/adapters/out/postgres/reprintrepo"
	"fulfillment/internal/adapters/out/postgres/shipmentrepo"

	"log/slog"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustOpenDB(configs)
	redisClient := redis.NewClient(&redis.Options{
		Addr:     configs.RedisAddr,
		Password: configs.RedisPassword,
	})

	app, err := cmd.NewCompositionRoot(configs, gormDB, redisClient, logger)
	if err != nil {
		log.Fatalf("Failed to build composition root: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
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
		RedisAddr:     goDotEnvVariable("REDIS_ADDR"),
		RedisPassword: goDotEnvVariable("REDIS_PASSWORD"),
		SystemUserID:  goDotEnvVariable("SYSTEM_USER_ID"),
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

func mustOpenDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&cancellationrepo.CancellationRequestDTO{},
		&refundrepo.RefundDTO{},
		&reprintrepo.ReprintDTO{},
		&planrepo.PlanDTO{},
		&planrepo.PlanDetailDTO{},
		&shipmentrepo.ShipmentEventDTO{},
		&invoicerepo.InvoiceDTO{},
		&notifier.NotificationDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	return db
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server := httpadapter.NewServer(
		app.CreatePlaceOrderCommandHandler(),
		app.CreateAdvanceItemStatusCommandHandler(),
		app.CreateGroupSubmittedOrdersCommandHandler(),
		app.CreateUpdatePlanDetailStatusCommandHandler(),
		app.CreateRequestCancellationCommandHandler(),
		app.CreateReviewCancellationCommandHandler(),
		app.CreateRequestRefundCommandHandler(),
		app.CreateReviewRefundCommandHandler(),
		app.CreateSubmitReprintCommandHandler(),
		app.CreateApproveReprintCommandHandler(),
		app.CreateRejectReprintCommandHandler(),
		app.CreateRecordShipmentEventCommandHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateGetPendingCancellationsQueryHandler(),
		app.CreateGetPendingRefundsQueryHandler(),
		app.CreateGetShipmentEventsQueryHandler(),
	)

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(nethttp.StatusOK, "Healthy")
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
