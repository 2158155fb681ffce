package email

import (
	"context"
	"fmt"

	"github.com/Domenick1991/airline-mgmt/internal/kafka"
)

type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.ReservationEvent) error {
	fmt.Printf("notify customer %d: reservation %s is %s for flight %s on %s\n",
		event.CustomerID, event.ReservationID, event.Status, event.FlightNumber, event.FlightDate)
	return nil
}
