package dto

import (
	"net/http"
	"rimbest/internal/domains/booking/model"
	"rimbest/shared/constant"
	gDto "rimbest/shared/dto"
	"rimbest/shared/timezone"
	"strings"
	"time"
)

const (
	DefaultPageSize = 10
	Currency        = "MRU"

	QueryStatus = "status"
	QuerySearch = "q"
)

type ListRequest struct {
	Status string `json:"status" validate:"omitempty,oneof=all pending confirmed cancelled"`
	Search string `json:"q"      validate:"omitempty,max=100"`
	gDto.QueryParams
}

func (l *ListRequest) FromRequest(r *http.Request) {
	query := r.URL.Query()

	l.Status = strings.ToLower(strings.TrimSpace(query.Get(QueryStatus)))
	if l.Status == "" {
		l.Status = model.StatusAll
	}

	l.Search = strings.TrimSpace(query.Get(QuerySearch))
	l.QueryParams.FromRequest(r, DefaultPageSize)
}

func (l *ListRequest) ToFilter() model.Filter {
	return model.Filter{Status: l.Status, Query: l.Search}
}

func formatTime(t timezone.DateTime) string {
	if t.IsZero() {
		return ""
	}

	return timezone.Format(t.Time, constant.DateFormat)
}

type FlightResponse struct {
	ID                   int64  `json:"id"`
	FlightNumber         string `json:"flightNumber"`
	DepartureCity        string `json:"departureCity"`
	ArrivalCity          string `json:"arrivalCity"`
	DepartureAirportCode string `json:"departureAirportCode,omitempty"`
	ArrivalAirportCode   string `json:"arrivalAirportCode,omitempty"`
	DepartureTime        string `json:"departureTime"`
	ArrivalTime          string `json:"arrivalTime"`
}

func (r *FlightResponse) FromModel(m model.TicketFlight) {
	r.ID = m.ID
	r.FlightNumber = m.FlightNumber
	r.DepartureCity = m.DepartureCity
	r.ArrivalCity = m.ArrivalCity
	r.DepartureAirportCode = m.DepartureAirportCode
	r.ArrivalAirportCode = m.ArrivalAirportCode
	r.DepartureTime = formatTime(m.DepartureTime)
	r.ArrivalTime = formatTime(m.ArrivalTime)
}

type TicketResponse struct {
	ID             int64           `json:"id"`
	PassengerName  string          `json:"passengerName"`
	PassengerEmail string          `json:"passengerEmail"`
	Price          float64         `json:"price"`
	SeatNumber     string          `json:"seatNumber"`
	Status         string          `json:"status"`
	CheckedIn      bool            `json:"checkedIn"`
	BaggageChecked bool            `json:"baggageChecked"`
	Flight         *FlightResponse `json:"flight,omitempty"`
}

func (r *TicketResponse) FromModel(m model.Ticket) {
	r.ID = m.ID
	r.PassengerName = m.PassengerName
	r.PassengerEmail = m.PassengerEmail
	r.Price = m.Price
	r.SeatNumber = m.SeatNumber
	r.Status = m.Status
	r.CheckedIn = m.CheckedIn
	r.BaggageChecked = m.BaggageChecked

	if m.Flight != nil {
		r.Flight = &FlightResponse{}
		r.Flight.FromModel(*m.Flight)
	}
}

// BookingResponse carries the derived booking number and the cancellation
// eligibility at the time of the read.
type BookingResponse struct {
	ID            int64            `json:"id"`
	BookingNumber string           `json:"bookingNumber"`
	BookingDate   string           `json:"bookingDate"`
	TotalPrice    float64          `json:"totalPrice"`
	Currency      string           `json:"currency"`
	Status        string           `json:"status"`
	PaymentStatus string           `json:"paymentStatus"`
	Paid          bool             `json:"paid"`
	CanCancel     bool             `json:"canCancel"`
	Tickets       []TicketResponse `json:"tickets"`
}

func (r *BookingResponse) FromModel(m model.Booking, now time.Time) {
	r.ID = m.ID
	r.BookingNumber = m.Number()
	r.BookingDate = formatTime(m.BookingDate)
	r.TotalPrice = m.TotalPrice
	r.Currency = Currency
	r.Status = m.Status
	r.PaymentStatus = m.PaymentStatus
	r.Paid = m.IsPaid()
	r.CanCancel = model.CanCancel(m, now)

	r.Tickets = make([]TicketResponse, len(m.Tickets))
	for i, ticket := range m.Tickets {
		r.Tickets[i].FromModel(ticket)
	}
}

type GetBookingsResponse struct {
	Bookings   []BookingResponse `json:"bookings"`
	Pagination gDto.Pagination   `json:"pagination"`
}

func (r *GetBookingsResponse) FromModels(page []model.Booking, total int, params gDto.QueryParams, now time.Time) {
	r.Pagination = gDto.NewPagination(params, total)

	r.Bookings = make([]BookingResponse, len(page))
	for i, mod := range page {
		r.Bookings[i].FromModel(mod, now)
	}
}

type CancellationResponse struct {
	BookingID     int64   `json:"bookingId"`
	BookingNumber string  `json:"bookingNumber"`
	RefundAmount  float64 `json:"refundAmount"`
	Currency      string  `json:"currency"`
	Status        string  `json:"status"`
}

func (r *CancellationResponse) FromModel(m model.CancellationResult) {
	r.BookingID = m.BookingID
	r.BookingNumber = m.BookingNumber
	r.RefundAmount = m.RefundAmount
	r.Currency = Currency
	r.Status = m.Status
}
