package validate

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
)

// ErrAttemptsExhausted is returned when a prompt burns through its retry
// budget; callers abort the current operation and fall back to the menu.
var ErrAttemptsExhausted = errors.New("too many invalid attempts")

const maxAttempts = 5

// Prompter reads one validated value per call from an injected input
// stream. It never loops past maxAttempts and never panics on bad input.
type Prompter struct {
	in    *bufio.Reader
	out   io.Writer
	bands Bands
}

func NewPrompter(in io.Reader, out io.Writer, bands Bands) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out, bands: bands}
}

func (p *Prompter) ask(label, example string, parse func(string) (string, error)) (string, error) {
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		fmt.Fprintf(p.out, "%s: ", label)
		line, err := p.in.ReadString('\n')
		if err != nil && line == "" {
			// Input stream closed; treat as an aborted prompt.
			fmt.Fprintln(p.out, "Too many invalid attempts.")
			return "", ErrAttemptsExhausted
		}
		value, perr := parse(strings.TrimSpace(line))
		if perr == nil {
			return value, nil
		}
		fmt.Fprintf(p.out, "Invalid input: %v. Example: %s\n", perr, example)
	}
	fmt.Fprintln(p.out, "Too many invalid attempts.")
	return "", ErrAttemptsExhausted
}

// Line reads one raw trimmed line with no validation, for inputs such as
// the manager secret and menu sub-choices.
func (p *Prompter) Line(label string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", label)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", ErrAttemptsExhausted
	}
	return strings.TrimSpace(line), nil
}

func (p *Prompter) Date(label string) (time.Time, error) {
	s, err := p.ask(label+" (yyyy-mm-dd)", "2025-05-05", func(s string) (string, error) {
		return Date(s, p.bands)
	})
	if err != nil {
		return time.Time{}, err
	}
	return time.Parse("2006-01-02", s)
}

func (p *Prompter) City(label string) (string, error) {
	return p.ask(label, "New York", City)
}

func (p *Prompter) FirstName() (string, error) {
	return p.ask("First Name", "Kevin", FirstName)
}

func (p *Prompter) LastName() (string, error) {
	return p.ask("Last Name", "Hall", LastName)
}

func (p *Prompter) FullName(role string) (string, error) {
	return p.ask(role+" Full Name", "Gina Moore", FullName)
}

func (p *Prompter) CustomerID() (int, error) {
	s, err := p.ask("Customer ID (1-999)", "4", func(s string) (string, error) {
		if _, err := CustomerID(s); err != nil {
			return "", err
		}
		return s, nil
	})
	if err != nil {
		return 0, err
	}
	id, err := CustomerID(s)
	return id, err
}

func (p *Prompter) PilotID() (string, error) {
	return p.ask("Pilot ID (P001-P999)", "P010", PilotID)
}

func (p *Prompter) TechnicianID() (string, error) {
	return p.ask("Technician ID (T001-T999)", "T101", TechnicianID)
}

func (p *Prompter) FlightNumber() (string, error) {
	label := fmt.Sprintf("Flight Number (F%03d-F%03d)", p.bands.MinFlightNumber, p.bands.MaxFlightNumber)
	return p.ask(label, "F105", func(s string) (string, error) {
		return FlightNumber(s, p.bands)
	})
}

func (p *Prompter) Gender() (string, error) {
	return p.ask("Gender (M/F/O)", "F", Gender)
}

func (p *Prompter) Phone() (string, error) {
	return p.ask("Phone #", "123-456-7890", Phone)
}

func (p *Prompter) Zip() (string, error) {
	return p.ask("Zip Code (5 digits)", "92507", Zip)
}

func (p *Prompter) Address() (string, error) {
	return p.ask("Address", "900 University Ave.", Address)
}

func (p *Prompter) PlaneID() (string, error) {
	return p.ask("Plane ID", "PL001", PlaneID)
}

func (p *Prompter) RepairCode() (string, error) {
	return p.ask("Repair Code (RC001-RC999)", "RC004", RepairCode)
}
