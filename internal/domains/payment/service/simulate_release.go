//go:build !dev

package service

import (
	bookingModel "rimbest/internal/domains/booking/model"
	flightModel "rimbest/internal/domains/flight/model"
	"rimbest/shared/failure"
)

func (s *serviceImpl) simulate(flightModel.Flight, bookingModel.Passenger) (bookingModel.Booking, error) {
	return bookingModel.Booking{}, failure.Unimplemented("payment test mode is not available in this build")
}
