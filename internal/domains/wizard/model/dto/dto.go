package dto

import (
	"encoding/json"
	bookingDto "rimbest/internal/domains/booking/model/dto"
	flightDto "rimbest/internal/domains/flight/model/dto"
	"rimbest/internal/domains/wizard/model"
	"rimbest/shared/constant"
	"rimbest/shared/failure"
	"rimbest/shared/timezone"
	"strconv"
	"time"
)

const fieldFlightID = "flightId"

type StartRequest struct {
	FlightID json.Number `json:"flightId" validate:"required"`
}

// ToFlightID rejects anything but a positive whole number.
func (s StartRequest) ToFlightID() (int64, error) {
	id, err := strconv.ParseInt(s.FlightID.String(), 10, 64)
	if err != nil || id <= 0 {
		return 0, failure.Validation(fieldFlightID, fieldFlightID+" must be a valid flight id")
	}

	return id, nil
}

// PassengerRequest is checked field by field in declaration order; only the
// first failure is reported.
type PassengerRequest struct {
	FullName       string `json:"fullName"       validate:"required,min=2"`
	Email          string `json:"email"          validate:"required,email"`
	Phone          string `json:"phone"          validate:"required,min=8"`
	DateOfBirth    string `json:"dateOfBirth"    validate:"required,isodate"`
	Nationality    string `json:"nationality"    validate:"required,min=2"`
	PassportNumber string `json:"passportNumber" validate:"required,min=5"`
	PassportExpiry string `json:"passportExpiry" validate:"required,isodate"`
}

func (p PassengerRequest) ToModel() model.Passenger {
	return model.Passenger(p)
}

type PassengerResponse struct {
	FullName       string `json:"fullName"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	DateOfBirth    string `json:"dateOfBirth"`
	Nationality    string `json:"nationality"`
	PassportNumber string `json:"passportNumber"`
	PassportExpiry string `json:"passportExpiry"`
}

type WizardResponse struct {
	ID               string                      `json:"id"`
	Step             int                         `json:"step"`
	StepName         string                      `json:"stepName"`
	Flight           flightDto.FlightResponse    `json:"flight"`
	Passenger        *PassengerResponse          `json:"passenger,omitempty"`
	Booking          *bookingDto.BookingResponse `json:"booking,omitempty"`
	PaymentConfirmed bool                        `json:"paymentConfirmed"`
	ExpiresAt        string                      `json:"expiresAt"`
}

func (r *WizardResponse) FromModel(m model.Wizard, now time.Time) {
	r.ID = m.ID
	r.Step = m.Step
	r.StepName = m.StepName()
	r.Flight.FromModel(m.Flight)
	r.PaymentConfirmed = m.PaymentConfirmed
	r.ExpiresAt = timezone.Format(m.ExpiresAt, constant.DateFormat)

	if m.Passenger != nil {
		passenger := PassengerResponse(*m.Passenger)
		r.Passenger = &passenger
	}

	if m.Booking != nil {
		r.Booking = &bookingDto.BookingResponse{}
		r.Booking.FromModel(*m.Booking, now)
	}
}
