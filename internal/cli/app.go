package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/Domenick1991/airline-mgmt/internal/domain"
	"github.com/Domenick1991/airline-mgmt/internal/service/auth"
	"github.com/Domenick1991/airline-mgmt/internal/service/crew"
	"github.com/Domenick1991/airline-mgmt/internal/service/flights"
	"github.com/Domenick1991/airline-mgmt/internal/service/reservation"
	"github.com/Domenick1991/airline-mgmt/internal/validate"
)

const banner = `
*******************************************************
              Airline Management
*******************************************************`

// choiceEOF signals that the input stream closed; the session loop treats
// it as a logout and the main loop as an exit.
const choiceEOF = -2

// App is the interactive terminal frontend. Input and output streams are
// injected so the whole session can be driven from a test.
type App struct {
	in       *bufio.Reader
	out      io.Writer
	prompter *validate.Prompter

	auth         auth.AuthUseCase
	flights      flights.FlightUseCase
	reservations reservation.ReservationUseCase
	crew         crew.CrewUseCase
}

func New(
	in io.Reader,
	out io.Writer,
	bands validate.Bands,
	authSvc auth.AuthUseCase,
	flightSvc flights.FlightUseCase,
	reservationSvc reservation.ReservationUseCase,
	crewSvc crew.CrewUseCase,
) *App {
	// The prompter and the menu loop must share one buffered reader,
	// otherwise each would swallow lines the other expects.
	reader := bufio.NewReader(in)
	return &App{
		in:           reader,
		out:          out,
		prompter:     validate.NewPrompter(reader, out, bands),
		auth:         authSvc,
		flights:      flightSvc,
		reservations: reservationSvc,
		crew:         crewSvc,
	}
}

// Run drives the logged-out state until the user exits or input ends.
func (a *App) Run(ctx context.Context) error {
	fmt.Fprintln(a.out, banner)
	for {
		if ctx.Err() != nil {
			return nil
		}
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "MAIN MENU")
		fmt.Fprintln(a.out, "---------")
		fmt.Fprintln(a.out, "1. Create user")
		fmt.Fprintln(a.out, "2. Log in")
		fmt.Fprintln(a.out, "9. < EXIT")
		fmt.Fprint(a.out, "Please make your choice: ")

		switch choice := a.readChoice(); choice {
		case 1:
			a.createUser(ctx)
		case 2:
			sess, err := a.login(ctx)
			if err != nil {
				a.reportError(err)
				continue
			}
			if sess != nil {
				a.session(ctx, sess)
			}
		case 9, choiceEOF:
			fmt.Fprintln(a.out, "Bye!")
			return nil
		default:
			fmt.Fprintln(a.out, "Unrecognized choice!")
		}
	}
}

// readChoice reads one numeric menu choice. Bad input maps to -1, which no
// menu recognizes; it never consumes a validation retry budget.
func (a *App) readChoice() int {
	line, err := a.in.ReadString('\n')
	if err != nil && line == "" {
		return choiceEOF
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return -1
	}
	return n
}

func (a *App) login(ctx context.Context) (*auth.Session, error) {
	fmt.Fprintln(a.out, "Login as: 1. Customer 2. Pilot 3. Technician 4. Manager")
	choice, err := a.prompter.Line("Enter choice")
	if err != nil {
		return nil, err
	}

	switch choice {
	case "1":
		firstName, err := a.prompter.FirstName()
		if err != nil {
			return nil, err
		}
		lastName, err := a.prompter.LastName()
		if err != nil {
			return nil, err
		}
		id, err := a.prompter.CustomerID()
		if err != nil {
			return nil, err
		}
		sess, err := a.auth.LoginCustomer(ctx, firstName, lastName, id)
		if err != nil {
			return nil, err
		}
		if sess == nil {
			fmt.Fprintln(a.out, "Login failed! Customer not found.")
			return nil, nil
		}
		fmt.Fprintln(a.out, "Login successful as Customer!")
		return sess, nil
	case "2":
		name, err := a.prompter.FullName("Pilot")
		if err != nil {
			return nil, err
		}
		sess, err := a.auth.LoginPilot(ctx, name)
		if err != nil {
			return nil, err
		}
		if sess == nil {
			fmt.Fprintln(a.out, "Login failed! Pilot not found.")
			return nil, nil
		}
		fmt.Fprintln(a.out, "Login successful as Pilot!")
		return sess, nil
	case "3":
		name, err := a.prompter.FullName("Technician")
		if err != nil {
			return nil, err
		}
		sess, err := a.auth.LoginTechnician(ctx, name)
		if err != nil {
			return nil, err
		}
		if sess == nil {
			fmt.Fprintln(a.out, "Login failed! Technician not found.")
			return nil, nil
		}
		fmt.Fprintln(a.out, "Login successful as Technician!")
		return sess, nil
	case "4":
		secret, err := a.prompter.Line("Enter manager password")
		if err != nil {
			return nil, err
		}
		sess := a.auth.LoginManager(secret)
		if sess == nil {
			fmt.Fprintln(a.out, "Incorrect password!")
			return nil, nil
		}
		fmt.Fprintln(a.out, "Manager login successful!")
		return sess, nil
	default:
		fmt.Fprintln(a.out, "Unrecognized user type.")
		return nil, nil
	}
}

func (a *App) createUser(ctx context.Context) {
	fmt.Fprintln(a.out, "Select user type:")
	fmt.Fprintln(a.out, "1. Customer")
	fmt.Fprintln(a.out, "2. Pilot")
	fmt.Fprintln(a.out, "3. Technician")
	choice, err := a.prompter.Line("Enter choice")
	if err != nil {
		a.reportError(err)
		return
	}

	switch choice {
	case "1":
		input, err := a.promptCustomer()
		if err != nil {
			a.reportError(err)
			return
		}
		customer, err := a.crew.CreateCustomer(ctx, *input)
		if err != nil {
			a.reportError(err)
			return
		}
		fmt.Fprintf(a.out, "Customer created with ID: %d\n", customer.ID)
	case "2":
		name, err := a.prompter.FullName("Pilot")
		if err != nil {
			a.reportError(err)
			return
		}
		pilot, err := a.crew.CreatePilot(ctx, name)
		if err != nil {
			a.reportError(err)
			return
		}
		fmt.Fprintf(a.out, "Pilot created with ID: %s\n", pilot.ID)
	case "3":
		name, err := a.prompter.FullName("Technician")
		if err != nil {
			a.reportError(err)
			return
		}
		technician, err := a.crew.CreateTechnician(ctx, name)
		if err != nil {
			a.reportError(err)
			return
		}
		fmt.Fprintf(a.out, "Technician created with ID: %s\n", technician.ID)
	default:
		fmt.Fprintln(a.out, "Invalid choice. Returning to main menu.")
	}
}

func (a *App) promptCustomer() (*crew.CreateCustomerInput, error) {
	firstName, err := a.prompter.FirstName()
	if err != nil {
		return nil, err
	}
	lastName, err := a.prompter.LastName()
	if err != nil {
		return nil, err
	}
	gender, err := a.prompter.Gender()
	if err != nil {
		return nil, err
	}
	dob, err := a.prompter.Date("Date of Birth")
	if err != nil {
		return nil, err
	}
	address, err := a.prompter.Address()
	if err != nil {
		return nil, err
	}
	phone, err := a.prompter.Phone()
	if err != nil {
		return nil, err
	}
	zip, err := a.prompter.Zip()
	if err != nil {
		return nil, err
	}
	return &crew.CreateCustomerInput{
		FirstName: firstName,
		LastName:  lastName,
		Gender:    gender,
		DOB:       dob,
		Address:   address,
		Phone:     phone,
		Zip:       zip,
	}, nil
}

// reportError converts every business and validation failure into a
// user-visible message; nothing here may crash the session loop.
func (a *App) reportError(err error) {
	switch {
	case errors.Is(err, validate.ErrAttemptsExhausted):
		fmt.Fprintln(a.out, "Returning to main menu.")
	case errors.Is(err, domain.ErrNotFound):
		fmt.Fprintln(a.out, "No matching records found.")
	case errors.Is(err, domain.ErrInstanceClosed):
		fmt.Fprintln(a.out, "Sorry, this flight is already flown. No further reservations or waitlist allowed.")
	case errors.Is(err, domain.ErrCapacityExhausted):
		fmt.Fprintln(a.out, "Identifier space is exhausted. Cannot create a new record.")
	default:
		fmt.Fprintln(a.out, "The operation failed. Please try again.")
		log.Printf("operation failed: %v", err)
	}
}
