package crew

import (
	"context"
	"testing"
	"time"

	"github.com/Domenick1991/airline-mgmt/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) FindByLogin(ctx context.Context, firstName, lastName string, id int) (*domain.Customer, error) {
	args := m.Called(ctx, firstName, lastName, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

type MockCrewRepository struct {
	mock.Mock
}

func (m *MockCrewRepository) CreatePilot(ctx context.Context, name string) (*domain.Pilot, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Pilot), args.Error(1)
}

func (m *MockCrewRepository) CreateTechnician(ctx context.Context, name string) (*domain.Technician, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Technician), args.Error(1)
}

func (m *MockCrewRepository) FindPilotByName(ctx context.Context, name string) (*domain.Pilot, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Pilot), args.Error(1)
}

func (m *MockCrewRepository) FindTechnicianByName(ctx context.Context, name string) (*domain.Technician, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Technician), args.Error(1)
}

type MockMaintenanceRepository struct {
	mock.Mock
}

func (m *MockMaintenanceRepository) CreateRequest(ctx context.Context, req *domain.MaintenanceRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockMaintenanceRepository) RequestsByPilot(ctx context.Context, pilotID string) ([]domain.MaintenanceRequest, error) {
	args := m.Called(ctx, pilotID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MaintenanceRequest), args.Error(1)
}

func (m *MockMaintenanceRepository) AddRepair(ctx context.Context, repair *domain.Repair) error {
	args := m.Called(ctx, repair)
	return args.Error(0)
}

func (m *MockMaintenanceRepository) RepairsBetween(ctx context.Context, planeID string, from, to time.Time) ([]domain.Repair, error) {
	args := m.Called(ctx, planeID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Repair), args.Error(1)
}

func TestCrewService_CreateCustomer_Success(t *testing.T) {
	mockCustomers := &MockCustomerRepository{}
	mockCrew := &MockCrewRepository{}
	mockMaintenance := &MockMaintenanceRepository{}

	service := NewCrewService(mockCustomers, mockCrew, mockMaintenance)

	ctx := context.Background()
	input := CreateCustomerInput{
		FirstName: "John",
		LastName:  "Smith",
		Gender:    "Male",
		DOB:       time.Date(1990, 3, 14, 0, 0, 0, 0, time.UTC),
		Address:   "12 Main St.",
		Phone:     "401-555-0123",
		Zip:       "02912",
	}

	mockCustomers.On("Create", ctx, mock.AnythingOfType("*domain.Customer")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Customer).ID = 42
		}).Return(nil).Once()

	customer, err := service.CreateCustomer(ctx, input)

	assert.NoError(t, err)
	assert.NotNil(t, customer)
	assert.Equal(t, 42, customer.ID)
	assert.Equal(t, "John", customer.FirstName)

	mockCustomers.AssertExpectations(t)
}

func TestCrewService_CreateCustomer_MissingName(t *testing.T) {
	service := NewCrewService(&MockCustomerRepository{}, &MockCrewRepository{}, &MockMaintenanceRepository{})

	_, err := service.CreateCustomer(context.Background(), CreateCustomerInput{LastName: "Smith"})

	assert.Error(t, err)
}

func TestCrewService_CreatePilot(t *testing.T) {
	mockCrew := &MockCrewRepository{}
	service := NewCrewService(&MockCustomerRepository{}, mockCrew, &MockMaintenanceRepository{})

	ctx := context.Background()
	mockCrew.On("CreatePilot", ctx, "Amelia Earhart").
		Return(&domain.Pilot{ID: "P007", Name: "Amelia Earhart"}, nil).Once()

	pilot, err := service.CreatePilot(ctx, "Amelia Earhart")

	assert.NoError(t, err)
	assert.Equal(t, "P007", pilot.ID)

	mockCrew.AssertExpectations(t)
}

func TestCrewService_CreatePilot_IDSpaceFull(t *testing.T) {
	mockCrew := &MockCrewRepository{}
	service := NewCrewService(&MockCustomerRepository{}, mockCrew, &MockMaintenanceRepository{})

	ctx := context.Background()
	mockCrew.On("CreatePilot", ctx, "Amelia Earhart").Return(nil, domain.ErrCapacityExhausted).Once()

	_, err := service.CreatePilot(ctx, "Amelia Earhart")

	assert.ErrorIs(t, err, domain.ErrCapacityExhausted)

	mockCrew.AssertExpectations(t)
}

func TestCrewService_SubmitMaintenanceRequest(t *testing.T) {
	mockMaintenance := &MockMaintenanceRepository{}
	service := NewCrewService(&MockCustomerRepository{}, &MockCrewRepository{}, mockMaintenance)

	ctx := context.Background()
	requestDate := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	mockMaintenance.On("CreateRequest", ctx, mock.AnythingOfType("*domain.MaintenanceRequest")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.MaintenanceRequest).ID = 17
		}).Return(nil).Once()

	req, err := service.SubmitMaintenanceRequest(ctx, "P007", "PL012", "RC042", requestDate)

	assert.NoError(t, err)
	assert.Equal(t, 17, req.ID)
	assert.Equal(t, "PL012", req.PlaneID)
	assert.Equal(t, "P007", req.PilotID)

	mockMaintenance.AssertExpectations(t)
}

func TestCrewService_AddRepair(t *testing.T) {
	mockMaintenance := &MockMaintenanceRepository{}
	service := NewCrewService(&MockCustomerRepository{}, &MockCrewRepository{}, mockMaintenance)

	ctx := context.Background()
	repairDate := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	mockMaintenance.On("AddRepair", ctx, mock.AnythingOfType("*domain.Repair")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Repair).ID = 9
		}).Return(nil).Once()

	repair, err := service.AddRepair(ctx, "T003", "PL012", "RC042", repairDate)

	assert.NoError(t, err)
	assert.Equal(t, 9, repair.ID)
	assert.Equal(t, "T003", repair.TechnicianID)

	mockMaintenance.AssertExpectations(t)
}

func TestCrewService_RepairsBetween(t *testing.T) {
	mockMaintenance := &MockMaintenanceRepository{}
	service := NewCrewService(&MockCustomerRepository{}, &MockCrewRepository{}, mockMaintenance)

	ctx := context.Background()
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	repairs := []domain.Repair{{ID: 1, PlaneID: "PL012", RepairCode: "RC042", RepairDate: from, TechnicianID: "T003"}}

	mockMaintenance.On("RepairsBetween", ctx, "PL012", from, to).Return(repairs, nil).Once()

	got, err := service.RepairsBetween(ctx, "PL012", from, to)

	assert.NoError(t, err)
	assert.Len(t, got, 1)

	mockMaintenance.AssertExpectations(t)
}
