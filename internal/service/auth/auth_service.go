package auth

import (
	"context"
	"errors"
	"strconv"

	"github.com/Domenick1991/airline-mgmt/internal/domain"
	"github.com/Domenick1991/airline-mgmt/internal/repository"
)

// Session is the token a successful login yields. Its role value is the
// sole authorization input to the menu dispatcher.
type Session struct {
	Role domain.Role
	ID   string
}

type AuthUseCase interface {
	LoginCustomer(ctx context.Context, firstName, lastName string, id int) (*Session, error)
	LoginPilot(ctx context.Context, fullName string) (*Session, error)
	LoginTechnician(ctx context.Context, fullName string) (*Session, error)
	LoginManager(secret string) *Session
}

type AuthService struct {
	customers     repository.CustomerRepository
	crew          repository.CrewRepository
	managerSecret string
}

func NewAuthService(customers repository.CustomerRepository, crew repository.CrewRepository, managerSecret string) *AuthService {
	return &AuthService{customers: customers, crew: crew, managerSecret: managerSecret}
}

// Login failures return (nil, nil): no session, not an error. The caller
// stays at the pre-login menu.
func (s *AuthService) LoginCustomer(ctx context.Context, firstName, lastName string, id int) (*Session, error) {
	customer, err := s.customers.FindByLogin(ctx, firstName, lastName, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &Session{Role: domain.RoleCustomer, ID: strconv.Itoa(customer.ID)}, nil
}

func (s *AuthService) LoginPilot(ctx context.Context, fullName string) (*Session, error) {
	pilot, err := s.crew.FindPilotByName(ctx, fullName)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &Session{Role: domain.RolePilot, ID: pilot.ID}, nil
}

func (s *AuthService) LoginTechnician(ctx context.Context, fullName string) (*Session, error) {
	technician, err := s.crew.FindTechnicianByName(ctx, fullName)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &Session{Role: domain.RoleTechnician, ID: technician.ID}, nil
}

// The manager has no backing record, only a shared secret.
func (s *AuthService) LoginManager(secret string) *Session {
	if secret != s.managerSecret {
		return nil
	}
	return &Session{Role: domain.RoleManager}
}

var _ AuthUseCase = (*AuthService)(nil)
