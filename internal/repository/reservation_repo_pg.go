package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Domenick1991/airline-mgmt/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReservationRepository interface {
	Allocate(ctx context.Context, customerID int, flightNumber string, flightDate time.Time) (*domain.Reservation, error)
	OrderHistory(ctx context.Context, flightNumber string, flightDate time.Time) ([]domain.PassengerRecord, error)
	ByCustomer(ctx context.Context, customerID int) ([]domain.CustomerReservation, error)
	PromoteWaitlisted(ctx context.Context) ([]domain.Reservation, error)
}

type PGReservationRepository struct {
	db *pgxpool.Pool
}

func NewReservationRepository(db *pgxpool.Pool) ReservationRepository {
	return &PGReservationRepository{db: db}
}

// Allocate runs the whole reserve-or-waitlist decision as one transaction.
// The instance row is locked FOR UPDATE so concurrent callers serialize on
// the seat counters; the seat increment is additionally conditional so
// seats_sold can never pass seats_total.
func (r *PGReservationRepository) Allocate(ctx context.Context, customerID int, flightNumber string, flightDate time.Time) (*domain.Reservation, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var instanceID, seatsTotal, seatsSold int
	err = tx.QueryRow(ctx, `SELECT flightinstanceid, seatstotal, seatssold FROM flightinstance
		WHERE flightnumber=$1 AND flightdate=$2 FOR UPDATE`, flightNumber, flightDate).
		Scan(&instanceID, &seatsTotal, &seatsSold)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	var flown bool
	if err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM reservation WHERE flightinstanceid=$1 AND status=$2)`,
		instanceID, domain.StatusFlown).Scan(&flown); err != nil {
		return nil, err
	}
	if flown {
		return nil, domain.ErrInstanceClosed
	}

	status := domain.DecideStatus(seatsTotal, seatsSold)

	var seq int
	if err := tx.QueryRow(ctx, `SELECT nextval('reservation_id_seq')`).Scan(&seq); err != nil {
		return nil, err
	}
	id, err := domain.FormatReservationID(seq)
	if err != nil {
		return nil, err
	}

	if _, err := tx.Exec(ctx, `INSERT INTO reservation (reservationid, customerid, flightinstanceid, status)
		VALUES ($1, $2, $3, $4)`, id, customerID, instanceID, status); err != nil {
		return nil, err
	}

	if status == domain.StatusReserved {
		cmd, err := tx.Exec(ctx, `UPDATE flightinstance SET seatssold = seatssold + 1
			WHERE flightinstanceid=$1 AND seatssold < seatstotal`, instanceID)
		if err != nil {
			return nil, err
		}
		if cmd.RowsAffected() == 0 {
			return nil, fmt.Errorf("seat counter drift on flight instance %d", instanceID)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &domain.Reservation{ID: id, CustomerID: customerID, FlightInstanceID: instanceID, Status: status}, nil
}

func (r *PGReservationRepository) OrderHistory(ctx context.Context, flightNumber string, flightDate time.Time) ([]domain.PassengerRecord, error) {
	var instanceID int
	err := r.db.QueryRow(ctx, `SELECT flightinstanceid FROM flightinstance WHERE flightnumber=$1 AND flightdate=$2`,
		flightNumber, flightDate).Scan(&instanceID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	rows, err := r.db.Query(ctx, `SELECT c.customerid, c.firstname, c.lastname, r.status
		FROM reservation r
		JOIN customer c ON r.customerid = c.customerid
		WHERE r.flightinstanceid=$1
		ORDER BY r.status, c.customerid`, instanceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]domain.PassengerRecord, 0)
	for rows.Next() {
		var rec domain.PassengerRecord
		if err := rows.Scan(&rec.CustomerID, &rec.FirstName, &rec.LastName, &rec.Status); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *PGReservationRepository) ByCustomer(ctx context.Context, customerID int) ([]domain.CustomerReservation, error) {
	rows, err := r.db.Query(ctx, `SELECT r.reservationid, fi.flightnumber, fi.flightdate, r.status
		FROM reservation r
		JOIN flightinstance fi ON r.flightinstanceid = fi.flightinstanceid
		WHERE r.customerid=$1
		ORDER BY r.reservationid`, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.CustomerReservation, 0)
	for rows.Next() {
		var cr domain.CustomerReservation
		if err := rows.Scan(&cr.ReservationID, &cr.FlightNumber, &cr.FlightDate, &cr.Status); err != nil {
			return nil, err
		}
		items = append(items, cr)
	}
	return items, rows.Err()
}

// PromoteWaitlisted moves the oldest waitlisted reservation onto each open
// instance that has seats free. Each promotion re-locks its instance row,
// so the sweep cannot race a concurrent Allocate.
func (r *PGReservationRepository) PromoteWaitlisted(ctx context.Context) ([]domain.Reservation, error) {
	rows, err := r.db.Query(ctx, `SELECT DISTINCT fi.flightinstanceid
		FROM flightinstance fi
		JOIN reservation r ON r.flightinstanceid = fi.flightinstanceid
		WHERE fi.seatssold < fi.seatstotal AND r.status=$1`, domain.StatusWaitlist)
	if err != nil {
		return nil, err
	}
	instanceIDs := make([]int, 0)
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, err
		}
		instanceIDs = append(instanceIDs, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	promoted := make([]domain.Reservation, 0)
	for _, instanceID := range instanceIDs {
		res, err := r.promoteOne(ctx, instanceID)
		if err != nil {
			return promoted, err
		}
		if res != nil {
			promoted = append(promoted, *res)
		}
	}
	return promoted, nil
}

func (r *PGReservationRepository) promoteOne(ctx context.Context, instanceID int) (*domain.Reservation, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var seatsTotal, seatsSold int
	err = tx.QueryRow(ctx, `SELECT seatstotal, seatssold FROM flightinstance WHERE flightinstanceid=$1 FOR UPDATE`,
		instanceID).Scan(&seatsTotal, &seatsSold)
	if err != nil {
		return nil, err
	}
	if seatsSold >= seatsTotal {
		// Filled between the scan and the lock.
		return nil, nil
	}

	var flown bool
	if err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM reservation WHERE flightinstanceid=$1 AND status=$2)`,
		instanceID, domain.StatusFlown).Scan(&flown); err != nil {
		return nil, err
	}
	if flown {
		return nil, nil
	}

	var res domain.Reservation
	err = tx.QueryRow(ctx, `UPDATE reservation SET status=$1
		WHERE reservationid = (
			SELECT reservationid FROM reservation
			WHERE flightinstanceid=$2 AND status=$3
			ORDER BY reservationid LIMIT 1
		)
		RETURNING reservationid, customerid, flightinstanceid, status`,
		domain.StatusReserved, instanceID, domain.StatusWaitlist).
		Scan(&res.ID, &res.CustomerID, &res.FlightInstanceID, &res.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	cmd, err := tx.Exec(ctx, `UPDATE flightinstance SET seatssold = seatssold + 1
		WHERE flightinstanceid=$1 AND seatssold < seatstotal`, instanceID)
	if err != nil {
		return nil, err
	}
	if cmd.RowsAffected() == 0 {
		return nil, fmt.Errorf("seat counter drift on flight instance %d", instanceID)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &res, nil
}

var _ ReservationRepository = (*PGReservationRepository)(nil)
