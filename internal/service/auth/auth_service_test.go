package auth

import (
	"context"
	"errors"
	"testing"

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

func TestAuthService_LoginCustomer_Success(t *testing.T) {
	mockCustomers := &MockCustomerRepository{}
	mockCrew := &MockCrewRepository{}

	service := NewAuthService(mockCustomers, mockCrew, "24601")

	ctx := context.Background()
	mockCustomers.On("FindByLogin", ctx, "John", "Smith", 42).
		Return(&domain.Customer{ID: 42, FirstName: "John", LastName: "Smith"}, nil).Once()

	sess, err := service.LoginCustomer(ctx, "John", "Smith", 42)

	assert.NoError(t, err)
	assert.NotNil(t, sess)
	assert.Equal(t, domain.RoleCustomer, sess.Role)
	assert.Equal(t, "42", sess.ID)

	mockCustomers.AssertExpectations(t)
}

func TestAuthService_LoginCustomer_NotFound(t *testing.T) {
	mockCustomers := &MockCustomerRepository{}
	mockCrew := &MockCrewRepository{}

	service := NewAuthService(mockCustomers, mockCrew, "24601")

	ctx := context.Background()
	mockCustomers.On("FindByLogin", ctx, "John", "Smith", 42).Return(nil, domain.ErrNotFound).Once()

	sess, err := service.LoginCustomer(ctx, "John", "Smith", 42)

	// No record is a failed login, not an error.
	assert.NoError(t, err)
	assert.Nil(t, sess)

	mockCustomers.AssertExpectations(t)
}

func TestAuthService_LoginCustomer_RepositoryError(t *testing.T) {
	mockCustomers := &MockCustomerRepository{}
	mockCrew := &MockCrewRepository{}

	service := NewAuthService(mockCustomers, mockCrew, "24601")

	ctx := context.Background()
	mockCustomers.On("FindByLogin", ctx, "John", "Smith", 42).
		Return(nil, errors.New("connection reset")).Once()

	sess, err := service.LoginCustomer(ctx, "John", "Smith", 42)

	assert.Error(t, err)
	assert.Nil(t, sess)

	mockCustomers.AssertExpectations(t)
}

func TestAuthService_LoginPilot(t *testing.T) {
	mockCustomers := &MockCustomerRepository{}
	mockCrew := &MockCrewRepository{}

	service := NewAuthService(mockCustomers, mockCrew, "24601")

	ctx := context.Background()
	mockCrew.On("FindPilotByName", ctx, "Amelia Earhart").
		Return(&domain.Pilot{ID: "P007", Name: "Amelia Earhart"}, nil).Once()

	sess, err := service.LoginPilot(ctx, "Amelia Earhart")

	assert.NoError(t, err)
	assert.NotNil(t, sess)
	assert.Equal(t, domain.RolePilot, sess.Role)
	assert.Equal(t, "P007", sess.ID)

	mockCrew.AssertExpectations(t)
}

func TestAuthService_LoginTechnician_NotFound(t *testing.T) {
	mockCustomers := &MockCustomerRepository{}
	mockCrew := &MockCrewRepository{}

	service := NewAuthService(mockCustomers, mockCrew, "24601")

	ctx := context.Background()
	mockCrew.On("FindTechnicianByName", ctx, "Nikola Tesla").Return(nil, domain.ErrNotFound).Once()

	sess, err := service.LoginTechnician(ctx, "Nikola Tesla")

	assert.NoError(t, err)
	assert.Nil(t, sess)

	mockCrew.AssertExpectations(t)
}

func TestAuthService_LoginManager(t *testing.T) {
	service := NewAuthService(nil, nil, "24601")

	assert.Nil(t, service.LoginManager("wrong"))
	assert.Nil(t, service.LoginManager(""))

	sess := service.LoginManager("24601")
	assert.NotNil(t, sess)
	assert.Equal(t, domain.RoleManager, sess.Role)
	assert.Empty(t, sess.ID)
}
