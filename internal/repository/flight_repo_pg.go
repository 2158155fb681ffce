package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Domenick1991/airline-mgmt/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FlightRepository interface {
	WeeklySchedule(ctx context.Context, flightNumber string) ([]domain.Schedule, error)
	Instance(ctx context.Context, flightNumber string, flightDate time.Time) (*domain.FlightInstance, error)
	Status(ctx context.Context, flightNumber string, flightDate time.Time) (*domain.FlightStatus, error)
	FlightsOfDay(ctx context.Context, flightDate time.Time) ([]domain.DayFlight, error)
	Search(ctx context.Context, departureCity, arrivalCity string, flightDate time.Time) ([]domain.SearchResult, error)
	TicketCost(ctx context.Context, flightNumber string, flightDate time.Time) (int, error)
	Plane(ctx context.Context, flightNumber string) (*domain.Plane, error)
}

type PGFlightRepository struct {
	db *pgxpool.Pool
}

func NewFlightRepository(db *pgxpool.Pool) FlightRepository {
	return &PGFlightRepository{db: db}
}

func (r *PGFlightRepository) WeeklySchedule(ctx context.Context, flightNumber string) ([]domain.Schedule, error) {
	rows, err := r.db.Query(ctx, `SELECT flightnumber, dayofweek, departuretime::text, arrivaltime::text
		FROM schedule
		WHERE flightnumber=$1
		ORDER BY CASE dayofweek
			WHEN 'Monday' THEN 1
			WHEN 'Tuesday' THEN 2
			WHEN 'Wednesday' THEN 3
			WHEN 'Thursday' THEN 4
			WHEN 'Friday' THEN 5
			WHEN 'Saturday' THEN 6
			WHEN 'Sunday' THEN 7
			ELSE 8 END`, flightNumber)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.Schedule, 0)
	for rows.Next() {
		var s domain.Schedule
		if err := rows.Scan(&s.FlightNumber, &s.DayOfWeek, &s.DepartureTime, &s.ArrivalTime); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return items, rows.Err()
}

func (r *PGFlightRepository) Instance(ctx context.Context, flightNumber string, flightDate time.Time) (*domain.FlightInstance, error) {
	row := r.db.QueryRow(ctx, `SELECT flightinstanceid, flightnumber, flightdate, numofstops, seatstotal, seatssold, ticketcost, departedontime, arrivedontime
		FROM flightinstance WHERE flightnumber=$1 AND flightdate=$2`, flightNumber, flightDate)

	var fi domain.FlightInstance
	err := row.Scan(&fi.ID, &fi.FlightNumber, &fi.FlightDate, &fi.NumOfStops, &fi.SeatsTotal, &fi.SeatsSold,
		&fi.TicketCost, &fi.DepartedOnTime, &fi.ArrivedOnTime)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &fi, nil
}

func (r *PGFlightRepository) Status(ctx context.Context, flightNumber string, flightDate time.Time) (*domain.FlightStatus, error) {
	row := r.db.QueryRow(ctx, `SELECT s.departuretime::text, s.arrivaltime::text, fi.departedontime, fi.arrivedontime
		FROM flightinstance fi
		JOIN schedule s ON fi.flightnumber = s.flightnumber
			AND s.dayofweek = TO_CHAR(fi.flightdate, 'FMDay')
		WHERE fi.flightnumber=$1 AND fi.flightdate=$2`, flightNumber, flightDate)

	var st domain.FlightStatus
	err := row.Scan(&st.DepartureTime, &st.ArrivalTime, &st.DepartedOnTime, &st.ArrivedOnTime)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &st, nil
}

func (r *PGFlightRepository) FlightsOfDay(ctx context.Context, flightDate time.Time) ([]domain.DayFlight, error) {
	rows, err := r.db.Query(ctx, `SELECT fi.flightinstanceid, fi.flightnumber, f.departurecity, f.arrivalcity, fi.numofstops,
			s.departuretime::text, s.arrivaltime::text, fi.departedontime, fi.arrivedontime
		FROM flightinstance fi
		JOIN flight f ON fi.flightnumber = f.flightnumber
		JOIN schedule s ON fi.flightnumber = s.flightnumber
			AND s.dayofweek = TO_CHAR(fi.flightdate, 'FMDay')
		WHERE fi.flightdate=$1
		ORDER BY fi.flightnumber, s.departuretime`, flightDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.DayFlight, 0)
	for rows.Next() {
		var d domain.DayFlight
		if err := rows.Scan(&d.InstanceID, &d.FlightNumber, &d.DepartureCity, &d.ArrivalCity, &d.NumOfStops,
			&d.DepartureTime, &d.ArrivalTime, &d.DepartedOnTime, &d.ArrivedOnTime); err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	return items, rows.Err()
}

func (r *PGFlightRepository) Search(ctx context.Context, departureCity, arrivalCity string, flightDate time.Time) ([]domain.SearchResult, error) {
	rows, err := r.db.Query(ctx, `SELECT f.flightnumber, fi.flightdate, s.departuretime::text, s.arrivaltime::text, fi.numofstops,
			ROUND(100.0 * SUM(CASE WHEN fi.departedontime THEN 1 ELSE 0 END) / COUNT(*), 2) AS ontimepercent
		FROM flight f
		JOIN flightinstance fi ON f.flightnumber = fi.flightnumber
		JOIN schedule s ON s.flightnumber = f.flightnumber
		WHERE f.departurecity=$1 AND f.arrivalcity=$2 AND fi.flightdate=$3
		GROUP BY f.flightnumber, fi.flightdate, s.departuretime, s.arrivaltime, fi.numofstops`,
		departureCity, arrivalCity, flightDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.SearchResult, 0)
	for rows.Next() {
		var sr domain.SearchResult
		if err := rows.Scan(&sr.FlightNumber, &sr.FlightDate, &sr.DepartureTime, &sr.ArrivalTime, &sr.NumOfStops, &sr.OnTimePercent); err != nil {
			return nil, err
		}
		items = append(items, sr)
	}
	return items, rows.Err()
}

func (r *PGFlightRepository) TicketCost(ctx context.Context, flightNumber string, flightDate time.Time) (int, error) {
	var cost int
	err := r.db.QueryRow(ctx, `SELECT ticketcost FROM flightinstance WHERE flightnumber=$1 AND flightdate=$2`,
		flightNumber, flightDate).Scan(&cost)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrNotFound
		}
		return 0, err
	}
	return cost, nil
}

func (r *PGFlightRepository) Plane(ctx context.Context, flightNumber string) (*domain.Plane, error) {
	row := r.db.QueryRow(ctx, `SELECT p.planeid, p.make, p.model, p.year, p.lastrepairdate
		FROM plane p
		JOIN flight f ON f.planeid = p.planeid
		WHERE f.flightnumber=$1`, flightNumber)

	var p domain.Plane
	err := row.Scan(&p.ID, &p.Make, &p.Model, &p.Year, &p.LastRepairDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

var _ FlightRepository = (*PGFlightRepository)(nil)
