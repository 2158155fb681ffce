package reservation

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Domenick1991/airline-mgmt/internal/domain"
	"github.com/Domenick1991/airline-mgmt/internal/kafka"
	"github.com/Domenick1991/airline-mgmt/internal/repository"
	"github.com/google/uuid"
)

type ReservationUseCase interface {
	Reserve(ctx context.Context, customerID int, flightNumber string, flightDate time.Time) (*domain.Reservation, error)
	OrderHistory(ctx context.Context, flightNumber string, flightDate time.Time) ([]domain.PassengerRecord, error)
	ListByCustomer(ctx context.Context, customerID int) ([]domain.CustomerReservation, error)
	PromoteWaitlisted(ctx context.Context) ([]domain.Reservation, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type ReservationService struct {
	reservations       repository.ReservationRepository
	producer           Producer
	reservationTopic   string
	notificationsTopic string
}

type ReservationServiceOption func(*ReservationService)

func WithNotificationsTopic(topic string) ReservationServiceOption {
	return func(s *ReservationService) {
		s.notificationsTopic = topic
	}
}

func NewReservationService(
	reservations repository.ReservationRepository,
	producer Producer,
	reservationTopic string,
	opts ...ReservationServiceOption,
) *ReservationService {
	service := &ReservationService{
		reservations:     reservations,
		producer:         producer,
		reservationTopic: reservationTopic,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// Reserve commits the allocation and then reports it. A failed publish is
// a warning, never a reason to undo a committed reservation.
func (s *ReservationService) Reserve(ctx context.Context, customerID int, flightNumber string, flightDate time.Time) (*domain.Reservation, error) {
	res, err := s.reservations.Allocate(ctx, customerID, flightNumber, flightDate)
	if err != nil {
		return nil, err
	}

	eventType := "reservation_created"
	if res.Status == domain.StatusWaitlist {
		eventType = "reservation_waitlisted"
	}
	if err := s.publish(ctx, eventType, res, flightNumber, flightDate); err != nil {
		log.Printf("WARNING: failed to publish %s event for reservation %s: %v", eventType, res.ID, err)
	}
	return res, nil
}

func (s *ReservationService) OrderHistory(ctx context.Context, flightNumber string, flightDate time.Time) ([]domain.PassengerRecord, error) {
	return s.reservations.OrderHistory(ctx, flightNumber, flightDate)
}

func (s *ReservationService) ListByCustomer(ctx context.Context, customerID int) ([]domain.CustomerReservation, error) {
	return s.reservations.ByCustomer(ctx, customerID)
}

// PromoteWaitlisted is the worker sweep: it moves waitlisted reservations
// onto freed seats and announces each promotion.
func (s *ReservationService) PromoteWaitlisted(ctx context.Context) ([]domain.Reservation, error) {
	promoted, err := s.reservations.PromoteWaitlisted(ctx)
	if err != nil {
		return promoted, err
	}
	for i := range promoted {
		if perr := s.publish(ctx, "reservation_promoted", &promoted[i], "", time.Time{}); perr != nil {
			log.Printf("WARNING: failed to publish promotion event for reservation %s: %v", promoted[i].ID, perr)
		}
	}
	return promoted, nil
}

func (s *ReservationService) publish(ctx context.Context, eventType string, res *domain.Reservation, flightNumber string, flightDate time.Time) error {
	if s.producer == nil || s.reservationTopic == "" {
		return nil
	}
	event := kafka.ReservationEvent{
		EventID:       uuid.NewString(),
		Type:          eventType,
		ReservationID: res.ID,
		CustomerID:    res.CustomerID,
		FlightNumber:  flightNumber,
		Status:        string(res.Status),
		OccurredAt:    time.Now(),
	}
	if !flightDate.IsZero() {
		event.FlightDate = flightDate.Format("2006-01-02")
	}
	if err := s.producer.Publish(ctx, s.reservationTopic, res.ID, event); err != nil {
		return err
	}
	if s.notificationsTopic != "" {
		if err := s.producer.Publish(ctx, s.notificationsTopic, res.ID, event); err != nil {
			return fmt.Errorf("publish notification: %w", err)
		}
	}
	return nil
}

var _ ReservationUseCase = (*ReservationService)(nil)
