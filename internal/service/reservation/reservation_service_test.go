package reservation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Domenick1991/airline-mgmt/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockReservationRepository struct {
	mock.Mock
}

func (m *MockReservationRepository) Allocate(ctx context.Context, customerID int, flightNumber string, flightDate time.Time) (*domain.Reservation, error) {
	args := m.Called(ctx, customerID, flightNumber, flightDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationRepository) OrderHistory(ctx context.Context, flightNumber string, flightDate time.Time) ([]domain.PassengerRecord, error) {
	args := m.Called(ctx, flightNumber, flightDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PassengerRecord), args.Error(1)
}

func (m *MockReservationRepository) ByCustomer(ctx context.Context, customerID int) ([]domain.CustomerReservation, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CustomerReservation), args.Error(1)
}

func (m *MockReservationRepository) PromoteWaitlisted(ctx context.Context) ([]domain.Reservation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

type MockProducer struct {
	mock.Mock
}

func (m *MockProducer) Publish(ctx context.Context, topic, key string, value interface{}) error {
	args := m.Called(ctx, topic, key, value)
	return args.Error(0)
}

func TestReservationService_Reserve_Confirmed(t *testing.T) {
	mockRepo := &MockReservationRepository{}
	mockProducer := &MockProducer{}

	service := NewReservationService(mockRepo, mockProducer, "reservation-events")

	ctx := context.Background()
	flightDate := time.Date(2025, 5, 5, 0, 0, 0, 0, time.UTC)
	allocated := &domain.Reservation{ID: "R0042", CustomerID: 7, FlightInstanceID: 12, Status: domain.StatusReserved}

	mockRepo.On("Allocate", ctx, 7, "F105", flightDate).Return(allocated, nil).Once()
	mockProducer.On("Publish", ctx, "reservation-events", "R0042", mock.Anything).Return(nil).Once()

	res, err := service.Reserve(ctx, 7, "F105", flightDate)

	assert.NoError(t, err)
	assert.NotNil(t, res)
	assert.Equal(t, "R0042", res.ID)
	assert.Equal(t, domain.StatusReserved, res.Status)

	mockRepo.AssertExpectations(t)
	mockProducer.AssertExpectations(t)
}

func TestReservationService_Reserve_Waitlisted(t *testing.T) {
	mockRepo := &MockReservationRepository{}
	mockProducer := &MockProducer{}

	service := NewReservationService(mockRepo, mockProducer, "reservation-events",
		WithNotificationsTopic("reservation-notifications"))

	ctx := context.Background()
	flightDate := time.Date(2025, 5, 5, 0, 0, 0, 0, time.UTC)
	allocated := &domain.Reservation{ID: "R0043", CustomerID: 8, FlightInstanceID: 12, Status: domain.StatusWaitlist}

	mockRepo.On("Allocate", ctx, 8, "F105", flightDate).Return(allocated, nil).Once()
	mockProducer.On("Publish", ctx, "reservation-events", "R0043", mock.Anything).Return(nil).Once()
	mockProducer.On("Publish", ctx, "reservation-notifications", "R0043", mock.Anything).Return(nil).Once()

	res, err := service.Reserve(ctx, 8, "F105", flightDate)

	assert.NoError(t, err)
	assert.Equal(t, domain.StatusWaitlist, res.Status)

	mockRepo.AssertExpectations(t)
	mockProducer.AssertExpectations(t)
}

func TestReservationService_Reserve_InstanceClosed(t *testing.T) {
	mockRepo := &MockReservationRepository{}
	mockProducer := &MockProducer{}

	service := NewReservationService(mockRepo, mockProducer, "reservation-events")

	ctx := context.Background()
	flightDate := time.Date(2025, 5, 5, 0, 0, 0, 0, time.UTC)

	mockRepo.On("Allocate", ctx, 7, "F105", flightDate).Return(nil, domain.ErrInstanceClosed).Once()

	res, err := service.Reserve(ctx, 7, "F105", flightDate)

	assert.Nil(t, res)
	assert.ErrorIs(t, err, domain.ErrInstanceClosed)

	mockRepo.AssertExpectations(t)
	mockProducer.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// A committed reservation must survive a broken broker.
func TestReservationService_Reserve_PublishFailureIsNotFatal(t *testing.T) {
	mockRepo := &MockReservationRepository{}
	mockProducer := &MockProducer{}

	service := NewReservationService(mockRepo, mockProducer, "reservation-events")

	ctx := context.Background()
	flightDate := time.Date(2025, 5, 5, 0, 0, 0, 0, time.UTC)
	allocated := &domain.Reservation{ID: "R0044", CustomerID: 9, FlightInstanceID: 12, Status: domain.StatusReserved}

	mockRepo.On("Allocate", ctx, 9, "F105", flightDate).Return(allocated, nil).Once()
	mockProducer.On("Publish", ctx, "reservation-events", "R0044", mock.Anything).
		Return(errors.New("broker unavailable")).Once()

	res, err := service.Reserve(ctx, 9, "F105", flightDate)

	assert.NoError(t, err)
	assert.Equal(t, "R0044", res.ID)

	mockRepo.AssertExpectations(t)
	mockProducer.AssertExpectations(t)
}

func TestReservationService_Reserve_NoProducerConfigured(t *testing.T) {
	mockRepo := &MockReservationRepository{}

	service := NewReservationService(mockRepo, nil, "")

	ctx := context.Background()
	flightDate := time.Date(2025, 5, 5, 0, 0, 0, 0, time.UTC)
	allocated := &domain.Reservation{ID: "R0045", CustomerID: 10, FlightInstanceID: 12, Status: domain.StatusReserved}

	mockRepo.On("Allocate", ctx, 10, "F105", flightDate).Return(allocated, nil).Once()

	res, err := service.Reserve(ctx, 10, "F105", flightDate)

	assert.NoError(t, err)
	assert.Equal(t, "R0045", res.ID)

	mockRepo.AssertExpectations(t)
}

func TestReservationService_PromoteWaitlisted(t *testing.T) {
	mockRepo := &MockReservationRepository{}
	mockProducer := &MockProducer{}

	service := NewReservationService(mockRepo, mockProducer, "reservation-events")

	ctx := context.Background()
	promoted := []domain.Reservation{
		{ID: "R0050", CustomerID: 3, FlightInstanceID: 5, Status: domain.StatusReserved},
		{ID: "R0051", CustomerID: 4, FlightInstanceID: 6, Status: domain.StatusReserved},
	}

	mockRepo.On("PromoteWaitlisted", ctx).Return(promoted, nil).Once()
	mockProducer.On("Publish", ctx, "reservation-events", "R0050", mock.Anything).Return(nil).Once()
	mockProducer.On("Publish", ctx, "reservation-events", "R0051", mock.Anything).Return(nil).Once()

	got, err := service.PromoteWaitlisted(ctx)

	assert.NoError(t, err)
	assert.Len(t, got, 2)

	mockRepo.AssertExpectations(t)
	mockProducer.AssertExpectations(t)
}

func TestReservationService_OrderHistory(t *testing.T) {
	mockRepo := &MockReservationRepository{}

	service := NewReservationService(mockRepo, nil, "")

	ctx := context.Background()
	flightDate := time.Date(2025, 5, 5, 0, 0, 0, 0, time.UTC)
	records := []domain.PassengerRecord{
		{CustomerID: 1, FirstName: "John", LastName: "Smith", Status: domain.StatusReserved},
		{CustomerID: 2, FirstName: "Jane", LastName: "Doe", Status: domain.StatusWaitlist},
	}

	mockRepo.On("OrderHistory", ctx, "F105", flightDate).Return(records, nil).Once()

	got, err := service.OrderHistory(ctx, "F105", flightDate)

	assert.NoError(t, err)
	assert.Equal(t, records, got)

	mockRepo.AssertExpectations(t)
}
