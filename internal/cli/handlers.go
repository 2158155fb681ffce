package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/Domenick1991/airline-mgmt/internal/domain"
	"github.com/Domenick1991/airline-mgmt/internal/service/auth"
)

const dateLayout = "2006-01-02"

// Manager handlers.

func (a *App) viewFlightSchedule(ctx context.Context, _ *auth.Session) error {
	flightNumber, err := a.prompter.FlightNumber()
	if err != nil {
		return err
	}
	items, err := a.flights.WeeklySchedule(ctx, flightNumber)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Fprintf(a.out, "No schedule found for flight %s.\n", flightNumber)
		return nil
	}

	rows := make([][]string, 0, len(items))
	for _, s := range items {
		rows = append(rows, []string{s.DayOfWeek, s.DepartureTime, s.ArrivalTime})
	}
	fmt.Fprintf(a.out, "Weekly schedule for flight %s:\n", flightNumber)
	a.table([]string{"Day", "Departure", "Arrival"}, rows)
	return nil
}

func (a *App) viewFlightSeats(ctx context.Context, _ *auth.Session) error {
	flightNumber, flightDate, err := a.promptInstance()
	if err != nil {
		return err
	}
	instance, err := a.flights.Seats(ctx, flightNumber, flightDate)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Flight %s on %s: %d seats sold, %d seats still available.\n",
		flightNumber, flightDate.Format(dateLayout), instance.SeatsSold, instance.SeatsTotal-instance.SeatsSold)
	return nil
}

func (a *App) viewFlightStatus(ctx context.Context, _ *auth.Session) error {
	flightNumber, flightDate, err := a.promptInstance()
	if err != nil {
		return err
	}
	status, err := a.flights.Status(ctx, flightNumber, flightDate)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Flight %s on %s:\n", flightNumber, flightDate.Format(dateLayout))
	fmt.Fprintf(a.out, "  Departure %s, departed on time: %s\n", status.DepartureTime, yesNo(status.DepartedOnTime))
	fmt.Fprintf(a.out, "  Arrival   %s, arrived on time:  %s\n", status.ArrivalTime, yesNo(status.ArrivedOnTime))
	return nil
}

func (a *App) viewFlightsOfDay(ctx context.Context, _ *auth.Session) error {
	flightDate, err := a.prompter.Date("Flight Date")
	if err != nil {
		return err
	}
	items, err := a.flights.FlightsOfDay(ctx, flightDate)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Fprintf(a.out, "No flights scheduled on %s.\n", flightDate.Format(dateLayout))
		return nil
	}

	rows := make([][]string, 0, len(items))
	for _, f := range items {
		rows = append(rows, []string{
			f.FlightNumber,
			f.DepartureCity,
			f.ArrivalCity,
			strconv.Itoa(f.NumOfStops),
			f.DepartureTime,
			f.ArrivalTime,
			yesNo(f.DepartedOnTime),
			yesNo(f.ArrivedOnTime),
		})
	}
	fmt.Fprintf(a.out, "Flights on %s:\n", flightDate.Format(dateLayout))
	a.table([]string{"Flight", "From", "To", "Stops", "Departure", "Arrival", "Departed OT", "Arrived OT"}, rows)
	return nil
}

// viewOrderHistory prints all passengers of an instance grouped by
// reservation status.
func (a *App) viewOrderHistory(ctx context.Context, _ *auth.Session) error {
	flightNumber, flightDate, err := a.promptInstance()
	if err != nil {
		return err
	}
	records, err := a.reservations.OrderHistory(ctx, flightNumber, flightDate)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Fprintf(a.out, "No reservations for flight %s on %s.\n", flightNumber, flightDate.Format(dateLayout))
		return nil
	}

	groups := []struct {
		title  string
		status domain.ReservationStatus
	}{
		{"Passengers who made reservations", domain.StatusReserved},
		{"Passengers on the waiting list", domain.StatusWaitlist},
		{"Passengers who actually flew", domain.StatusFlown},
	}
	for _, g := range groups {
		fmt.Fprintf(a.out, "%s:\n", g.title)
		found := false
		for _, r := range records {
			if r.Status != g.status {
				continue
			}
			found = true
			fmt.Fprintf(a.out, "  %d %s %s\n", r.CustomerID, r.FirstName, r.LastName)
		}
		if !found {
			fmt.Fprintln(a.out, "  (none)")
		}
	}
	return nil
}

func (a *App) viewTicketCost(ctx context.Context, _ *auth.Session) error {
	flightNumber, flightDate, err := a.promptInstance()
	if err != nil {
		return err
	}
	cost, err := a.flights.TicketCost(ctx, flightNumber, flightDate)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Ticket cost for flight %s on %s: $%d\n", flightNumber, flightDate.Format(dateLayout), cost)
	return nil
}

func (a *App) viewPlaneInfo(ctx context.Context, _ *auth.Session) error {
	flightNumber, err := a.prompter.FlightNumber()
	if err != nil {
		return err
	}
	plane, err := a.flights.PlaneInfo(ctx, flightNumber)
	if err != nil {
		return err
	}
	lastRepair := "never"
	if plane.LastRepairDate != nil {
		lastRepair = plane.LastRepairDate.Format(dateLayout)
	}
	fmt.Fprintf(a.out, "Plane %s: %s %s, year %d, last repair: %s\n",
		plane.ID, plane.Make, plane.Model, plane.Year, lastRepair)
	return nil
}

// Customer handlers.

func (a *App) searchFlights(ctx context.Context, _ *auth.Session) error {
	departureCity, err := a.prompter.City("Departure City")
	if err != nil {
		return err
	}
	arrivalCity, err := a.prompter.City("Arrival City")
	if err != nil {
		return err
	}
	flightDate, err := a.prompter.Date("Flight Date")
	if err != nil {
		return err
	}
	results, err := a.flights.Search(ctx, departureCity, arrivalCity, flightDate)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		fmt.Fprintf(a.out, "No flights found from %s to %s on %s.\n",
			departureCity, arrivalCity, flightDate.Format(dateLayout))
		return nil
	}

	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{
			r.FlightNumber,
			r.FlightDate.Format(dateLayout),
			r.DepartureTime,
			r.ArrivalTime,
			strconv.Itoa(r.NumOfStops),
			fmt.Sprintf("%.0f%%", r.OnTimePercent),
		})
	}
	a.table([]string{"Flight", "Date", "Departure", "Arrival", "Stops", "On-time"}, rows)
	return nil
}

func (a *App) makeReservation(ctx context.Context, sess *auth.Session) error {
	customerID, err := strconv.Atoi(sess.ID)
	if err != nil {
		return fmt.Errorf("malformed customer session id %q: %w", sess.ID, err)
	}
	flightNumber, flightDate, err := a.promptInstance()
	if err != nil {
		return err
	}

	res, err := a.reservations.Reserve(ctx, customerID, flightNumber, flightDate)
	if err != nil {
		return err
	}
	switch res.Status {
	case domain.StatusWaitlist:
		fmt.Fprintf(a.out, "Flight is full. Reservation ID: %s - Added to waitlist!\n", res.ID)
	default:
		fmt.Fprintf(a.out, "Reservation ID: %s - Confirmed!\n", res.ID)
	}
	return nil
}

func (a *App) viewMyReservations(ctx context.Context, sess *auth.Session) error {
	customerID, err := strconv.Atoi(sess.ID)
	if err != nil {
		return fmt.Errorf("malformed customer session id %q: %w", sess.ID, err)
	}
	items, err := a.reservations.ListByCustomer(ctx, customerID)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Fprintln(a.out, "You have no reservations.")
		return nil
	}

	rows := make([][]string, 0, len(items))
	for _, r := range items {
		rows = append(rows, []string{
			r.ReservationID,
			r.FlightNumber,
			r.FlightDate.Format(dateLayout),
			string(r.Status),
		})
	}
	a.table([]string{"Reservation", "Flight", "Date", "Status"}, rows)
	return nil
}

// Pilot handlers.

func (a *App) maintenanceRequest(ctx context.Context, _ *auth.Session) error {
	pilotID, err := a.prompter.PilotID()
	if err != nil {
		return err
	}
	planeID, err := a.prompter.PlaneID()
	if err != nil {
		return err
	}
	repairCode, err := a.prompter.RepairCode()
	if err != nil {
		return err
	}
	requestDate, err := a.prompter.Date("Request Date")
	if err != nil {
		return err
	}

	req, err := a.crew.SubmitMaintenanceRequest(ctx, pilotID, planeID, repairCode, requestDate)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Maintenance request %d submitted for plane %s.\n", req.ID, req.PlaneID)
	return nil
}

func (a *App) viewMyMaintenanceRequests(ctx context.Context, sess *auth.Session) error {
	items, err := a.crew.MaintenanceRequestsByPilot(ctx, sess.ID)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Fprintln(a.out, "You have no maintenance requests.")
		return nil
	}

	rows := make([][]string, 0, len(items))
	for _, r := range items {
		rows = append(rows, []string{
			strconv.Itoa(r.ID),
			r.PlaneID,
			r.RepairCode,
			r.RequestDate.Format(dateLayout),
		})
	}
	a.table([]string{"Request", "Plane", "Code", "Date"}, rows)
	return nil
}

// Technician handlers.

func (a *App) viewRepairs(ctx context.Context, _ *auth.Session) error {
	planeID, err := a.prompter.PlaneID()
	if err != nil {
		return err
	}
	from, err := a.prompter.Date("Start Date")
	if err != nil {
		return err
	}
	to, err := a.prompter.Date("End Date")
	if err != nil {
		return err
	}

	items, err := a.crew.RepairsBetween(ctx, planeID, from, to)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Fprintf(a.out, "No repairs for plane %s between %s and %s.\n",
			planeID, from.Format(dateLayout), to.Format(dateLayout))
		return nil
	}

	rows := make([][]string, 0, len(items))
	for _, r := range items {
		rows = append(rows, []string{
			strconv.Itoa(r.ID),
			r.RepairCode,
			r.RepairDate.Format(dateLayout),
			r.TechnicianID,
		})
	}
	fmt.Fprintf(a.out, "Repairs for plane %s:\n", planeID)
	a.table([]string{"Repair", "Code", "Date", "Technician"}, rows)
	return nil
}

func (a *App) addRepairRecord(ctx context.Context, _ *auth.Session) error {
	technicianID, err := a.prompter.TechnicianID()
	if err != nil {
		return err
	}
	planeID, err := a.prompter.PlaneID()
	if err != nil {
		return err
	}
	repairCode, err := a.prompter.RepairCode()
	if err != nil {
		return err
	}
	repairDate, err := a.prompter.Date("Repair Date")
	if err != nil {
		return err
	}

	repair, err := a.crew.AddRepair(ctx, technicianID, planeID, repairCode, repairDate)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Repair %d recorded for plane %s.\n", repair.ID, repair.PlaneID)
	return nil
}

// promptInstance reads the flight-number/date pair most operations key on.
func (a *App) promptInstance() (string, time.Time, error) {
	flightNumber, err := a.prompter.FlightNumber()
	if err != nil {
		return "", time.Time{}, err
	}
	flightDate, err := a.prompter.Date("Flight Date")
	if err != nil {
		return "", time.Time{}, err
	}
	return flightNumber, flightDate, nil
}
