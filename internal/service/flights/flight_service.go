package flights

import (
	"context"
	"time"

	"github.com/Domenick1991/airline-mgmt/internal/domain"
	"github.com/Domenick1991/airline-mgmt/internal/repository"
)

type FlightUseCase interface {
	WeeklySchedule(ctx context.Context, flightNumber string) ([]domain.Schedule, error)
	Seats(ctx context.Context, flightNumber string, flightDate time.Time) (*domain.FlightInstance, error)
	Status(ctx context.Context, flightNumber string, flightDate time.Time) (*domain.FlightStatus, error)
	FlightsOfDay(ctx context.Context, flightDate time.Time) ([]domain.DayFlight, error)
	Search(ctx context.Context, departureCity, arrivalCity string, flightDate time.Time) ([]domain.SearchResult, error)
	TicketCost(ctx context.Context, flightNumber string, flightDate time.Time) (int, error)
	PlaneInfo(ctx context.Context, flightNumber string) (*domain.Plane, error)
}

// Cache is satisfied by the redis schedule cache; a nil cache disables
// caching entirely.
type Cache interface {
	GetSchedule(ctx context.Context, flightNumber string) ([]domain.Schedule, error)
	SetSchedule(ctx context.Context, flightNumber string, items []domain.Schedule) error
}

type FlightService struct {
	repo  repository.FlightRepository
	cache Cache
}

func NewFlightService(repo repository.FlightRepository, cache Cache) *FlightService {
	return &FlightService{repo: repo, cache: cache}
}

func (s *FlightService) WeeklySchedule(ctx context.Context, flightNumber string) ([]domain.Schedule, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetSchedule(ctx, flightNumber); err == nil && cached != nil {
			return cached, nil
		}
	}

	items, err := s.repo.WeeklySchedule(ctx, flightNumber)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetSchedule(ctx, flightNumber, items)
	}
	return items, nil
}

func (s *FlightService) Seats(ctx context.Context, flightNumber string, flightDate time.Time) (*domain.FlightInstance, error) {
	return s.repo.Instance(ctx, flightNumber, flightDate)
}

func (s *FlightService) Status(ctx context.Context, flightNumber string, flightDate time.Time) (*domain.FlightStatus, error) {
	return s.repo.Status(ctx, flightNumber, flightDate)
}

func (s *FlightService) FlightsOfDay(ctx context.Context, flightDate time.Time) ([]domain.DayFlight, error) {
	return s.repo.FlightsOfDay(ctx, flightDate)
}

func (s *FlightService) Search(ctx context.Context, departureCity, arrivalCity string, flightDate time.Time) ([]domain.SearchResult, error) {
	return s.repo.Search(ctx, departureCity, arrivalCity, flightDate)
}

func (s *FlightService) TicketCost(ctx context.Context, flightNumber string, flightDate time.Time) (int, error) {
	return s.repo.TicketCost(ctx, flightNumber, flightDate)
}

func (s *FlightService) PlaneInfo(ctx context.Context, flightNumber string) (*domain.Plane, error) {
	return s.repo.Plane(ctx, flightNumber)
}

var _ FlightUseCase = (*FlightService)(nil)
