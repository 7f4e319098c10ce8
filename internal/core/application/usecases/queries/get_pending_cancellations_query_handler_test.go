package queries_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/cancellationrepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/cancellation"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetPendingCancellationsQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetPendingCancellationsQueryHandler
}

func (suite *GetPendingCancellationsQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&cancellationrepo.CancellationRequestDTO{},
	)
	suite.Require().NoError(err)

	suite.handler = queries.NewGetPendingCancellationsQueryHandler(db)
}

func (suite *GetPendingCancellationsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetPendingCancellationsQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE cancellation_requests, orders CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetPendingCancellationsQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetPendingCancellationsQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetPendingCancellationsQueryHandlerTestSuite) TestHandle_PendingRequests_ReturnsQueueOldestFirst() {
	older := suite.insertOrderWithRequest("GIFT-100", cancellation.Pending,
		time.Now().UTC().Add(-2*time.Hour))
	newer := suite.insertOrderWithRequest("GIFT-101", cancellation.Pending,
		time.Now().UTC().Add(-1*time.Hour))

	query := queries.NewGetPendingCancellationsQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	suite.Equal(older, result[0].RequestID)
	suite.Equal("GIFT-100", result[0].OrderCode)
	suite.Equal(order.StatusConfirmed.String(), result[0].PreviousStatus)
	suite.Equal("customer changed their mind", result[0].Reason)

	suite.Equal(newer, result[1].RequestID)
	suite.Equal("GIFT-101", result[1].OrderCode)
}

func (suite *GetPendingCancellationsQueryHandlerTestSuite) TestHandle_ResolvedRequests_AreExcluded() {
	suite.insertOrderWithRequest("GIFT-100", cancellation.Approved, time.Now().UTC())
	suite.insertOrderWithRequest("GIFT-101", cancellation.Rejected, time.Now().UTC())
	pending := suite.insertOrderWithRequest("GIFT-102", cancellation.Pending, time.Now().UTC())

	query := queries.NewGetPendingCancellationsQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(pending, result[0].RequestID)
}

func (suite *GetPendingCancellationsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetPendingCancellationsQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetPendingCancellationsQuery constructor")
}

// insertOrderWithRequest seeds one held order with a cancellation request in
// the given review state and returns the request ID.
func (suite *GetPendingCancellationsQueryHandlerTestSuite) insertOrderWithRequest(
	code string,
	status cancellation.Status,
	createdAt time.Time,
) kernel.UUID {
	orderID := kernel.NewUUID()
	requestID := kernel.NewUUID()

	err := suite.db.Create(&orderrepo.OrderDTO{
		ID:       orderID.Bytes(),
		Code:     code,
		SellerID: kernel.NewUUID().Bytes(),
		Customer: orderrepo.CustomerDTO{
			Name:    "Jane Roe",
			Phone:   "+1-202-555-0134",
			Address: "12 Main St",
		},
		Status:          int(order.StatusHold),
		PaymentStatus:   int(order.Unpaid),
		ProductionLabel: order.StatusHold.String(),
		TotalCost:       50.0,
	}).Error
	suite.Require().NoError(err)

	err = suite.db.Create(&cancellationrepo.CancellationRequestDTO{
		ID:             requestID.Bytes(),
		OrderID:        orderID.Bytes(),
		RequestedBy:    kernel.NewUUID().Bytes(),
		Reason:         "customer changed their mind",
		Status:         int(status),
		PreviousStatus: int(order.StatusConfirmed),
		CreatedAt:      createdAt,
	}).Error
	suite.Require().NoError(err)

	return requestID
}

func TestGetPendingCancellationsQueryHandlerTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	suite.Run(t, new(GetPendingCancellationsQueryHandlerTestSuite))
}
