package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/Domenick1991/airline-mgmt/internal/domain"
	"github.com/Domenick1991/airline-mgmt/internal/service/auth"
)

const codeLogout = 20

// action binds a menu code to exactly one role. Codes are globally unique,
// so a code typed under the wrong role is rejected as unauthorized rather
// than silently running another role's handler.
type action struct {
	role  domain.Role
	label string
	run   func(ctx context.Context, sess *auth.Session) error
}

func (a *App) actions() map[int]action {
	return map[int]action{
		1: {domain.RoleManager, "View Flight Schedule", a.viewFlightSchedule},
		2: {domain.RoleManager, "View Flight Seats", a.viewFlightSeats},
		3: {domain.RoleManager, "View Flight Status", a.viewFlightStatus},
		4: {domain.RoleManager, "View Flights of the Day", a.viewFlightsOfDay},
		5: {domain.RoleManager, "View Full Order ID History", a.viewOrderHistory},
		6: {domain.RoleManager, "View Ticket Cost", a.viewTicketCost},
		7: {domain.RoleManager, "View Plane Info", a.viewPlaneInfo},

		10: {domain.RoleCustomer, "Search Flights", a.searchFlights},
		11: {domain.RoleCustomer, "Make a Reservation", a.makeReservation},
		12: {domain.RoleCustomer, "View My Reservations", a.viewMyReservations},

		14: {domain.RolePilot, "View My Maintenance Requests", a.viewMyMaintenanceRequests},
		15: {domain.RolePilot, "Submit Maintenance Request", a.maintenanceRequest},

		16: {domain.RoleTechnician, "View Repairs", a.viewRepairs},
		17: {domain.RoleTechnician, "Add Repair Record", a.addRepairRecord},
	}
}

// session runs the logged-in loop for one role until logout or EOF.
func (a *App) session(ctx context.Context, sess *auth.Session) {
	actions := a.actions()
	for {
		if ctx.Err() != nil {
			return
		}
		a.printSessionMenu(actions, sess.Role)

		choice := a.readChoice()
		if choice == codeLogout || choice == choiceEOF {
			fmt.Fprintln(a.out, "Logged out.")
			return
		}

		act, ok := actions[choice]
		if !ok {
			fmt.Fprintln(a.out, "Unrecognized choice!")
			continue
		}
		if act.role != sess.Role {
			fmt.Fprintln(a.out, "You are not authorized to use this function.")
			continue
		}
		if err := act.run(ctx, sess); err != nil {
			a.reportError(err)
		}
	}
}

func (a *App) printSessionMenu(actions map[int]action, role domain.Role) {
	codes := make([]int, 0, len(actions))
	for code, act := range actions {
		if act.role == role {
			codes = append(codes, code)
		}
	}
	sort.Ints(codes)

	fmt.Fprintln(a.out)
	fmt.Fprintf(a.out, "%s MENU\n", role)
	fmt.Fprintln(a.out, "---------")
	for _, code := range codes {
		fmt.Fprintf(a.out, "%d. %s\n", code, actions[code].label)
	}
	fmt.Fprintf(a.out, "%d. Log out\n", codeLogout)
	fmt.Fprint(a.out, "Please make your choice: ")
}
