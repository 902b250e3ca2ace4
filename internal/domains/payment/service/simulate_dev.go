//go:build dev

package service

import (
	"fmt"
	"math/rand/v2"
	bookingModel "rimbest/internal/domains/booking/model"
	flightModel "rimbest/internal/domains/flight/model"
	"rimbest/shared/timezone"
)

const (
	seatRows    = 30
	seatLetters = "ABCDEF"
)

// simulate fabricates a confirmed and paid booking without calling the remote API.
func (s *serviceImpl) simulate(flight flightModel.Flight, passenger bookingModel.Passenger) (bookingModel.Booking, error) {
	id := rand.Int64N(900000) + 100000
	seat := fmt.Sprintf("%d%c", rand.IntN(seatRows)+1, seatLetters[rand.IntN(len(seatLetters))])

	return bookingModel.Booking{
		ID:            id,
		BookingDate:   timezone.NewDateTime(s.clock.Now()),
		TotalPrice:    flight.Price,
		Status:        bookingModel.StatusConfirmed,
		PaymentStatus: bookingModel.PaymentStatusPaid,
		Tickets: []bookingModel.Ticket{{
			ID:             id,
			PassengerName:  passenger.PassengerName,
			PassengerEmail: passenger.PassengerEmail,
			Price:          flight.Price,
			SeatNumber:     seat,
			Status:         bookingModel.StatusConfirmed,
			Flight: &bookingModel.TicketFlight{
				ID:                   flight.ID,
				FlightNumber:         flight.FlightNumber,
				DepartureCity:        flight.DepartureCity,
				ArrivalCity:          flight.ArrivalCity,
				DepartureAirportCode: flight.DepartureAirportCode,
				ArrivalAirportCode:   flight.ArrivalAirportCode,
				DepartureTime:        flight.DepartureTime,
				ArrivalTime:          flight.ArrivalTime,
			},
		}},
	}, nil
}
