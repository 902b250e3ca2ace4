package model

import (
	"fmt"
	"rimbest/shared/failure"
	"rimbest/shared/timezone"
	"strings"
	"time"
)

const EntityName = "booking"

const (
	StatusPending   = "PENDING"
	StatusConfirmed = "CONFIRMED"
	StatusCancelled = "CANCELLED"

	PaymentStatusPaid    = "PAID"
	PaymentStatusPending = "PENDING"
)

// CancellationWindow is how long before departure a booking stops being cancellable.
const CancellationWindow = 48 * time.Hour

const numberPrefix = "RB-"

// TicketFlight is the flight subset the remote API embeds in each ticket.
type TicketFlight struct {
	ID                   int64             `json:"id"`
	FlightNumber         string            `json:"flightNumber"`
	DepartureCity        string            `json:"departureCity"`
	ArrivalCity          string            `json:"arrivalCity"`
	DepartureAirportCode string            `json:"departureAirportCode,omitempty"`
	ArrivalAirportCode   string            `json:"arrivalAirportCode,omitempty"`
	DepartureTime        timezone.DateTime `json:"departureTime"`
	ArrivalTime          timezone.DateTime `json:"arrivalTime"`
}

type Ticket struct {
	ID             int64         `json:"id"`
	PassengerName  string        `json:"passengerName"`
	PassengerEmail string        `json:"passengerEmail"`
	Price          float64       `json:"price"`
	SeatNumber     string        `json:"seatNumber"`
	Status         string        `json:"status"`
	CheckedIn      bool          `json:"checkedIn"`
	BaggageChecked bool          `json:"baggageChecked"`
	Flight         *TicketFlight `json:"flight,omitempty"`
}

type Booking struct {
	ID            int64             `json:"id"`
	BookingNumber string            `json:"bookingNumber"`
	BookingDate   timezone.DateTime `json:"bookingDate"`
	TotalPrice    float64           `json:"totalPrice"`
	Status        string            `json:"status"`
	PaymentStatus string            `json:"paymentStatus"`
	Tickets       []Ticket          `json:"tickets"`
}

// Number is the server assigned booking number, or RB- and the id padded
// to six digits when the server sent none.
func (b Booking) Number() string {
	if number := strings.TrimSpace(b.BookingNumber); number != "" {
		return number
	}

	return fmt.Sprintf("%s%06d", numberPrefix, b.ID)
}

func (b Booking) PrimaryTicket() (Ticket, bool) {
	if len(b.Tickets) == 0 {
		return Ticket{}, false
	}

	return b.Tickets[0], true
}

// Departure is the primary ticket's departure time.
func (b Booking) Departure() (time.Time, bool) {
	ticket, ok := b.PrimaryTicket()
	if !ok || ticket.Flight == nil || ticket.Flight.DepartureTime.IsZero() {
		return time.Time{}, false
	}

	return ticket.Flight.DepartureTime.Time, true
}

// IsPaid trusts the server. A missing payment status counts as paid because
// older remote versions never send one.
func (b Booking) IsPaid() bool {
	status := strings.ToUpper(strings.TrimSpace(b.PaymentStatus))

	return status == "" || status == PaymentStatusPaid
}

func (b Booking) IsCancelled() bool {
	return strings.EqualFold(b.Status, StatusCancelled)
}

// CanCancel fails closed when the departure cannot be determined.
func CanCancel(b Booking, now time.Time) bool {
	if b.IsCancelled() {
		return false
	}

	departure, ok := b.Departure()
	if !ok {
		return false
	}

	return departure.Sub(now) >= CancellationWindow
}

// Cancel moves the booking to CANCELLED. It never moves back.
func (b *Booking) Cancel() error {
	if b.IsCancelled() {
		return failure.BusinessRule("This booking is already cancelled.")
	}

	b.Status = StatusCancelled

	return nil
}

// Passenger is one traveller in a booking request.
type Passenger struct {
	PassengerName  string `json:"passengerName"`
	PassengerEmail string `json:"passengerEmail"`
}

type BookingRequest struct {
	FlightID   int64       `json:"flightId"`
	Passengers []Passenger `json:"passengers"`
}

type CancellationResult struct {
	BookingID     int64   `json:"bookingId"`
	BookingNumber string  `json:"bookingNumber"`
	RefundAmount  float64 `json:"refundAmount"`
	Status        string  `json:"status"`
}

func NewCancellationResult(b Booking) CancellationResult {
	return CancellationResult{
		BookingID:     b.ID,
		BookingNumber: b.Number(),
		RefundAmount:  b.TotalPrice,
		Status:        StatusCancelled,
	}
}

// StatusAll keeps every status in a list filter.
const StatusAll = "all"

// Filter narrows a booking list. Query is matched case-insensitively against
// the booking number and each ticket's flight number, route and passenger.
type Filter struct {
	Status string
	Query  string
}

func (f Filter) Match(b Booking) bool {
	if status := strings.TrimSpace(f.Status); status != "" && !strings.EqualFold(status, StatusAll) &&
		!strings.EqualFold(status, b.Status) {
		return false
	}

	query := strings.ToLower(strings.TrimSpace(f.Query))
	if query == "" {
		return true
	}

	if strings.Contains(strings.ToLower(b.Number()), query) {
		return true
	}

	for _, ticket := range b.Tickets {
		fields := []string{ticket.PassengerName, ticket.PassengerEmail}
		if ticket.Flight != nil {
			fields = append(fields, ticket.Flight.FlightNumber, ticket.Flight.DepartureCity, ticket.Flight.ArrivalCity)
		}

		for _, field := range fields {
			if strings.Contains(strings.ToLower(field), query) {
				return true
			}
		}
	}

	return false
}

// Newer first; ties broken by the higher id.
func CompareRecent(a, b Booking) int {
	if c := b.BookingDate.Compare(a.BookingDate.Time); c != 0 {
		return c
	}

	switch {
	case a.ID > b.ID:
		return -1
	case a.ID < b.ID:
		return 1
	default:
		return 0
	}
}
