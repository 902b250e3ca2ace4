package model

import bookingModel "rimbest/internal/domains/booking/model"

// Charge is the outcome of a payment. Confirmed reflects what the server
// reported after polling, never a local assumption.
type Charge struct {
	Booking   bookingModel.Booking
	Confirmed bool
	Simulated bool
}
