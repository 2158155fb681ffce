package domain

import "fmt"

type ReservationStatus string

const (
	StatusReserved ReservationStatus = "reserved"
	StatusWaitlist ReservationStatus = "waitlist"
	StatusFlown    ReservationStatus = "flown"
)

// MaxReservationSeq is the last identifier the four-digit R#### space can
// hold.
const MaxReservationSeq = 9999

type Reservation struct {
	ID               string
	CustomerID       int
	FlightInstanceID int
	Status           ReservationStatus
}

// DecideStatus returns the status a new reservation receives against the
// seat counters read at decision time.
func DecideStatus(seatsTotal, seatsSold int) ReservationStatus {
	if seatsSold < seatsTotal {
		return StatusReserved
	}
	return StatusWaitlist
}

// FormatReservationID renders a sequence value as a padded reservation
// identifier, or ErrCapacityExhausted once the space is used up.
func FormatReservationID(seq int) (string, error) {
	if seq < 1 || seq > MaxReservationSeq {
		return "", ErrCapacityExhausted
	}
	return fmt.Sprintf("R%04d", seq), nil
}
