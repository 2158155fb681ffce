package domain

import "time"

type Customer struct {
	ID        int
	FirstName string
	LastName  string
	Gender    string
	DOB       time.Time
	Address   string
	Phone     string
	Zip       string
}

type Pilot struct {
	ID   string
	Name string
}

type Technician struct {
	ID   string
	Name string
}

type Flight struct {
	Number        string
	DepartureCity string
	ArrivalCity   string
	PlaneID       string
}

// Schedule is one weekly recurrence slot of a flight. Times are kept as
// the "HH:MM:SS" text Postgres renders for time columns.
type Schedule struct {
	FlightNumber  string
	DayOfWeek     string
	DepartureTime string
	ArrivalTime   string
}

// FlightInstance is a single dated occurrence of a flight. SeatsSold must
// never exceed SeatsTotal.
type FlightInstance struct {
	ID             int
	FlightNumber   string
	FlightDate     time.Time
	NumOfStops     int
	SeatsTotal     int
	SeatsSold      int
	TicketCost     int
	DepartedOnTime bool
	ArrivedOnTime  bool
}

type Plane struct {
	ID             string
	Make           string
	Model          string
	Year           int
	LastRepairDate *time.Time
}

type Repair struct {
	ID           int
	PlaneID      string
	RepairCode   string
	RepairDate   time.Time
	TechnicianID string
}

type MaintenanceRequest struct {
	ID          int
	PlaneID     string
	RepairCode  string
	RequestDate time.Time
	PilotID     string
}

// FlightStatus combines the scheduled times with the recorded outcome of
// one flight instance.
type FlightStatus struct {
	DepartureTime  string
	ArrivalTime    string
	DepartedOnTime bool
	ArrivedOnTime  bool
}

// DayFlight is one row of the flights-of-the-day listing.
type DayFlight struct {
	InstanceID     int
	FlightNumber   string
	DepartureCity  string
	ArrivalCity    string
	NumOfStops     int
	DepartureTime  string
	ArrivalTime    string
	DepartedOnTime bool
	ArrivedOnTime  bool
}

// SearchResult is one row of a city-pair search, with the historical
// on-time percentage for the flight.
type SearchResult struct {
	FlightNumber  string
	FlightDate    time.Time
	DepartureTime string
	ArrivalTime   string
	NumOfStops    int
	OnTimePercent float64
}

// PassengerRecord is one reservation row of an order-history report.
type PassengerRecord struct {
	CustomerID int
	FirstName  string
	LastName   string
	Status     ReservationStatus
}

// CustomerReservation is one row of a customer's own reservation listing.
type CustomerReservation struct {
	ReservationID string
	FlightNumber  string
	FlightDate    time.Time
	Status        ReservationStatus
}
