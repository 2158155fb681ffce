package crew

import (
	"context"
	"errors"
	"time"

	"github.com/Domenick1991/airline-mgmt/internal/domain"
	"github.com/Domenick1991/airline-mgmt/internal/repository"
)

type CrewUseCase interface {
	CreateCustomer(ctx context.Context, input CreateCustomerInput) (*domain.Customer, error)
	CreatePilot(ctx context.Context, fullName string) (*domain.Pilot, error)
	CreateTechnician(ctx context.Context, fullName string) (*domain.Technician, error)
	SubmitMaintenanceRequest(ctx context.Context, pilotID, planeID, repairCode string, requestDate time.Time) (*domain.MaintenanceRequest, error)
	MaintenanceRequestsByPilot(ctx context.Context, pilotID string) ([]domain.MaintenanceRequest, error)
	AddRepair(ctx context.Context, technicianID, planeID, repairCode string, repairDate time.Time) (*domain.Repair, error)
	RepairsBetween(ctx context.Context, planeID string, from, to time.Time) ([]domain.Repair, error)
}

type CreateCustomerInput struct {
	FirstName string
	LastName  string
	Gender    string
	DOB       time.Time
	Address   string
	Phone     string
	Zip       string
}

type CrewService struct {
	customers   repository.CustomerRepository
	crew        repository.CrewRepository
	maintenance repository.MaintenanceRepository
}

func NewCrewService(customers repository.CustomerRepository, crew repository.CrewRepository, maintenance repository.MaintenanceRepository) *CrewService {
	return &CrewService{customers: customers, crew: crew, maintenance: maintenance}
}

func (s *CrewService) CreateCustomer(ctx context.Context, input CreateCustomerInput) (*domain.Customer, error) {
	if input.FirstName == "" || input.LastName == "" {
		return nil, errors.New("first and last name are required")
	}

	customer := &domain.Customer{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Gender:    input.Gender,
		DOB:       input.DOB,
		Address:   input.Address,
		Phone:     input.Phone,
		Zip:       input.Zip,
	}
	if err := s.customers.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *CrewService) CreatePilot(ctx context.Context, fullName string) (*domain.Pilot, error) {
	if fullName == "" {
		return nil, errors.New("name is required")
	}
	return s.crew.CreatePilot(ctx, fullName)
}

func (s *CrewService) CreateTechnician(ctx context.Context, fullName string) (*domain.Technician, error) {
	if fullName == "" {
		return nil, errors.New("name is required")
	}
	return s.crew.CreateTechnician(ctx, fullName)
}

func (s *CrewService) SubmitMaintenanceRequest(ctx context.Context, pilotID, planeID, repairCode string, requestDate time.Time) (*domain.MaintenanceRequest, error) {
	req := &domain.MaintenanceRequest{
		PlaneID:     planeID,
		RepairCode:  repairCode,
		RequestDate: requestDate,
		PilotID:     pilotID,
	}
	if err := s.maintenance.CreateRequest(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *CrewService) MaintenanceRequestsByPilot(ctx context.Context, pilotID string) ([]domain.MaintenanceRequest, error) {
	return s.maintenance.RequestsByPilot(ctx, pilotID)
}

func (s *CrewService) AddRepair(ctx context.Context, technicianID, planeID, repairCode string, repairDate time.Time) (*domain.Repair, error) {
	repair := &domain.Repair{
		PlaneID:      planeID,
		RepairCode:   repairCode,
		RepairDate:   repairDate,
		TechnicianID: technicianID,
	}
	if err := s.maintenance.AddRepair(ctx, repair); err != nil {
		return nil, err
	}
	return repair, nil
}

func (s *CrewService) RepairsBetween(ctx context.Context, planeID string, from, to time.Time) ([]domain.Repair, error) {
	return s.maintenance.RepairsBetween(ctx, planeID, from, to)
}

var _ CrewUseCase = (*CrewService)(nil)
