package validate

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Bands holds the configured ranges dates and flight numbers must fall in.
type Bands struct {
	MinYear         int
	MaxYear         int
	MinFlightNumber int
	MaxFlightNumber int
}

func DefaultBands() Bands {
	return Bands{MinYear: 2025, MaxYear: 2026, MinFlightNumber: 100, MaxFlightNumber: 120}
}

var (
	dateRe      = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	cityRe      = regexp.MustCompile(`^[A-Za-z ]{2,15}$`)
	firstNameRe = regexp.MustCompile(`^[A-Za-z]{2,15}$`)
	lastNameRe  = regexp.MustCompile(`^[A-Za-z]{2,30}$`)
	fullNameRe  = regexp.MustCompile(`^[A-Za-z]{2,30}\s+[A-Za-z]{2,30}$`)
	customerRe  = regexp.MustCompile(`^\d{1,3}$`)
	crewIDRe    = regexp.MustCompile(`^[A-Za-z]\d{1,3}$`)
	flightRe    = regexp.MustCompile(`^[Ff]\d{3}$`)
	phoneRe     = regexp.MustCompile(`^\d{3}-\d{3}-\d{4}$`)
	zipRe       = regexp.MustCompile(`^\d{5}$`)
	addressRe   = regexp.MustCompile(`^[A-Za-z0-9.,'\- ]+$`)
	planeRe     = regexp.MustCompile(`^[Pp][Ll]\d{3}$`)
	repairRe    = regexp.MustCompile(`^[Rr][Cc]\d{3}$`)
	resvRe      = regexp.MustCompile(`^[Rr]\d{1,4}$`)
)

var daysInMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// Date checks a yyyy-mm-dd string against the calendar and the configured
// year band and returns it unchanged when valid.
func Date(s string, b Bands) (string, error) {
	if !dateRe.MatchString(s) {
		return "", errors.New("date must be in yyyy-mm-dd form")
	}
	year, _ := strconv.Atoi(s[0:4])
	month, _ := strconv.Atoi(s[5:7])
	day, _ := strconv.Atoi(s[8:10])

	if year < b.MinYear || year > b.MaxYear {
		return "", fmt.Errorf("year must be between %d and %d", b.MinYear, b.MaxYear)
	}
	if month < 1 || month > 12 {
		return "", errors.New("month must be between 01 and 12")
	}
	maxDay := daysInMonth[month-1]
	if month == 2 && isLeapYear(year) {
		maxDay = 29
	}
	if day < 1 || day > maxDay {
		return "", fmt.Errorf("day must be between 01 and %02d", maxDay)
	}
	return s, nil
}

func isLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// City accepts letters and spaces, 2-15 characters, and word-capitalizes
// the result.
func City(s string) (string, error) {
	if !cityRe.MatchString(s) {
		return "", errors.New("city must be 2-15 letters and spaces")
	}
	return capitalizeWords(s), nil
}

func FirstName(s string) (string, error) {
	if !firstNameRe.MatchString(s) {
		return "", errors.New("first name must be 2-15 letters")
	}
	return capitalizeWords(s), nil
}

func LastName(s string) (string, error) {
	if !lastNameRe.MatchString(s) {
		return "", errors.New("last name must be 2-30 letters")
	}
	return capitalizeWords(s), nil
}

// FullName accepts exactly two letter tokens and normalizes each to
// leading-capital form separated by one space.
func FullName(s string) (string, error) {
	if !fullNameRe.MatchString(s) {
		return "", errors.New("enter a first and last name, each 2-30 letters")
	}
	return capitalizeWords(s), nil
}

func CustomerID(s string) (int, error) {
	if !customerRe.MatchString(s) {
		return 0, errors.New("customer ID must be an integer between 1 and 999")
	}
	id, _ := strconv.Atoi(s)
	if id < 1 || id > 999 {
		return 0, errors.New("customer ID must be an integer between 1 and 999")
	}
	return id, nil
}

// PilotID accepts P with a 1-3 digit suffix in 1-999, case-insensitive,
// and zero-pads the result ("p7" becomes "P007").
func PilotID(s string) (string, error) {
	return crewID(s, 'P', "pilot ID")
}

func TechnicianID(s string) (string, error) {
	return crewID(s, 'T', "technician ID")
}

func crewID(s string, prefix byte, label string) (string, error) {
	if !crewIDRe.MatchString(s) || strings.ToUpper(s[:1])[0] != prefix {
		return "", fmt.Errorf("%s must be %c followed by digits 001-999", label, prefix)
	}
	num, _ := strconv.Atoi(s[1:])
	if num < 1 || num > 999 {
		return "", fmt.Errorf("%s must be %c followed by digits 001-999", label, prefix)
	}
	return fmt.Sprintf("%c%03d", prefix, num), nil
}

// FlightNumber accepts F plus three digits inside the configured band and
// uppercases the prefix.
func FlightNumber(s string, b Bands) (string, error) {
	if !flightRe.MatchString(s) {
		return "", fmt.Errorf("flight number must be between F%03d and F%03d", b.MinFlightNumber, b.MaxFlightNumber)
	}
	num, _ := strconv.Atoi(s[1:])
	if num < b.MinFlightNumber || num > b.MaxFlightNumber {
		return "", fmt.Errorf("flight number must be between F%03d and F%03d", b.MinFlightNumber, b.MaxFlightNumber)
	}
	return fmt.Sprintf("F%03d", num), nil
}

func Gender(s string) (string, error) {
	g := strings.ToUpper(s)
	if g != "M" && g != "F" && g != "O" {
		return "", errors.New("gender must be M, F, or O")
	}
	return g, nil
}

func Phone(s string) (string, error) {
	if !phoneRe.MatchString(s) {
		return "", errors.New("phone must be in 123-456-7890 form")
	}
	return s, nil
}

func Zip(s string) (string, error) {
	if !zipRe.MatchString(s) {
		return "", errors.New("zip code must be exactly 5 digits")
	}
	return s, nil
}

func Address(s string) (string, error) {
	if len(s) < 5 || len(s) > 100 || !addressRe.MatchString(s) {
		return "", errors.New("address must be 5-100 characters of letters, digits, comma, dot, dash, and spaces")
	}
	return s, nil
}

func PlaneID(s string) (string, error) {
	if !planeRe.MatchString(s) {
		return "", errors.New("plane ID must be in PLXXX form")
	}
	return strings.ToUpper(s), nil
}

func RepairCode(s string) (string, error) {
	if !repairRe.MatchString(s) {
		return "", errors.New("repair code must be RC followed by digits 001-999")
	}
	num, _ := strconv.Atoi(s[2:])
	if num < 1 || num > 999 {
		return "", errors.New("repair code must be RC followed by digits 001-999")
	}
	return fmt.Sprintf("RC%03d", num), nil
}

func ReservationID(s string) (string, error) {
	if !resvRe.MatchString(s) {
		return "", errors.New("reservation ID must be R followed by digits 0001-9999")
	}
	num, _ := strconv.Atoi(s[1:])
	if num < 1 || num > 9999 {
		return "", errors.New("reservation ID must be R followed by digits 0001-9999")
	}
	return fmt.Sprintf("R%04d", num), nil
}

func capitalizeWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
