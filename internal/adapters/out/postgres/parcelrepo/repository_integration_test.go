package parcelrepo_test

import (
	"context"
	"testing"
	"time"

	"parceltrack/internal/adapters/out/postgres/parcelrepo"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// ParcelRepositoryIntegrationTestSuite provides integration tests for ParcelRepository
// using PostgreSQL containers to verify database persistence behavior.
type ParcelRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *parcelrepo.GormParcelRepository
	tracker    *MockAggregateTracker
}

func (suite *ParcelRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&parcelrepo.ParcelDTO{}, &parcelrepo.TrackingEventDTO{}))
}

func (suite *ParcelRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE parcels CASCADE").Error)
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE tracking_events CASCADE").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = parcelrepo.NewGormParcelRepository(suite.db, suite.tracker)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestAdd_ValidParcel_Success() {
	ctx := context.Background()
	testParcel := suite.createTestParcel()

	suite.tracker.On("TrackAggregate", testParcel.ID(), testParcel).Once()

	err := suite.repository.Add(ctx, testParcel)
	suite.Require().NoError(err)

	suite.assertParcelCount(1)
	// The creation event must land in the ledger table with the parcel
	suite.assertEventCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestAdd_DuplicateTrackingNumber_Conflict() {
	ctx := context.Background()
	first := suite.createTestParcel()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	duplicate, err := parcel.RestoreParcel(
		kernel.NewUUID(),
		first.TrackingNumber(),
		first.SenderID(),
		first.Recipient(),
		first.Weight(),
		first.Dimensions(),
		first.PackageType(),
		first.DeliverySpeed(),
		first.DeclaredValue(),
		first.ContentDescription(),
		first.Flags(),
		first.ShippingCost(),
		parcel.Created,
		nil,
		time.Now(),
		nil,
		nil,
	)
	suite.Require().NoError(err)

	err = suite.repository.Add(ctx, duplicate)
	suite.Require().ErrorIs(err, errs.ErrConflict)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestGet_RoundTrip_PreservesAggregate() {
	ctx := context.Background()
	testParcel := suite.createTestParcel()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testParcel))

	restored, err := suite.repository.Get(ctx, testParcel.ID())
	suite.Require().NoError(err)

	suite.True(restored.IsEqual(testParcel))
	suite.True(restored.TrackingNumber().IsEqual(testParcel.TrackingNumber()))
	suite.Equal(testParcel.Status(), restored.Status())
	suite.Equal(testParcel.ShippingCost().Cents(), restored.ShippingCost().Cents())
	suite.Equal(testParcel.Recipient().Name(), restored.Recipient().Name())
	suite.Len(restored.Events(), 1)
	suite.Nil(restored.AssignedDriverID())
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestGetByTrackingNumber_Found() {
	ctx := context.Background()
	testParcel := suite.createTestParcel()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testParcel))

	restored, err := suite.repository.GetByTrackingNumber(ctx, testParcel.TrackingNumber())
	suite.Require().NoError(err)
	suite.True(restored.IsEqual(testParcel))
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestGetByTrackingNumber_Unknown_NotFound() {
	ctx := context.Background()

	_, err := suite.repository.GetByTrackingNumber(ctx, kernel.NewTrackingNumber())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestUpdate_PersistsTransitionAndNewEvents() {
	ctx := context.Background()
	testParcel := suite.createTestParcel()
	actorID := kernel.NewUUID()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testParcel))

	suite.Require().NoError(testParcel.TransitionTo(parcel.PickedUp, "Depot 7", "picked up by courier", &actorID))
	suite.Require().NoError(suite.repository.Update(ctx, testParcel))

	restored, err := suite.repository.Get(ctx, testParcel.ID())
	suite.Require().NoError(err)

	suite.Equal(parcel.PickedUp, restored.Status())
	suite.Require().Len(restored.Events(), 2)
	suite.Equal(parcel.PickedUp, restored.Events()[1].Status())
	suite.Equal("Depot 7", restored.Events()[1].Location())
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestGetAllUnassignedInSorting_FiltersAndOrders() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	sortingOne := suite.createTestParcel()
	suite.advanceToSorting(sortingOne)
	suite.Require().NoError(suite.repository.Add(ctx, sortingOne))

	sortingTwo := suite.createTestParcel()
	suite.advanceToSorting(sortingTwo)
	suite.Require().NoError(suite.repository.Add(ctx, sortingTwo))

	created := suite.createTestParcel()
	suite.Require().NoError(suite.repository.Add(ctx, created))

	assigned := suite.createTestParcel()
	suite.advanceToSorting(assigned)
	suite.Require().NoError(assigned.AssignDriver(kernel.NewUUID(), "Alex Smith"))
	suite.Require().NoError(suite.repository.Add(ctx, assigned))

	result, err := suite.repository.GetAllUnassignedInSorting(ctx)
	suite.Require().NoError(err)

	suite.Require().Len(result, 2)
	ids := map[kernel.UUID]bool{
		result[0].ID(): true,
		result[1].ID(): true,
	}
	suite.True(ids[sortingOne.ID()])
	suite.True(ids[sortingTwo.ID()])
}

func (suite *ParcelRepositoryIntegrationTestSuite) createTestParcel() *parcel.Parcel {
	recipient, err := parcel.NewRecipient("Jane Doe", "12 Harbor Lane", "555-0142")
	suite.Require().NoError(err)

	dimensions, err := parcel.NewDimensions(30, 20, 40)
	suite.Require().NoError(err)

	p, err := parcel.NewParcel(
		kernel.NewUUID(),
		kernel.NewTrackingNumber(),
		kernel.NewUUID(),
		recipient,
		2.5,
		dimensions,
		parcel.MediumBox,
		kernel.Standard,
		kernel.MoneyFromCents(50000),
		"books",
		parcel.HandlingFlags{},
		kernel.MoneyFromCents(12000),
	)
	suite.Require().NoError(err)
	return p
}

func (suite *ParcelRepositoryIntegrationTestSuite) advanceToSorting(p *parcel.Parcel) {
	actorID := kernel.NewUUID()
	suite.Require().NoError(p.TransitionTo(parcel.PickedUp, "Depot 7", "picked up", &actorID))
	suite.Require().NoError(p.TransitionTo(parcel.InTransit, "Linehaul", "in transit", &actorID))
	suite.Require().NoError(p.TransitionTo(parcel.Sorting, "Hub North", "arrived at hub", &actorID))
}

func (suite *ParcelRepositoryIntegrationTestSuite) assertParcelCount(expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Model(&parcelrepo.ParcelDTO{}).Count(&count).Error)
	suite.Equal(expected, count)
}

func (suite *ParcelRepositoryIntegrationTestSuite) assertEventCount(expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Model(&parcelrepo.TrackingEventDTO{}).Count(&count).Error)
	suite.Equal(expected, count)
}

func TestParcelRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ParcelRepositoryIntegrationTestSuite))
}
