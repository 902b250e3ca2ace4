package model

import (
	bookingModel "rimbest/internal/domains/booking/model"
	flightModel "rimbest/internal/domains/flight/model"
	"rimbest/shared/failure"
	"time"
)

const EntityName = "wizard"

const (
	StepPassenger    = 1
	StepPayment      = 2
	StepConfirmation = 3
)

const (
	messagePassengerStep = "Passenger details can only be changed on the passenger step."
	messagePaymentStep   = "Complete the passenger step before paying."
	messageTerminal      = "This booking is confirmed and can no longer be changed."
	messageNotConfirmed  = "The ticket is available once the booking is confirmed."
)

var stepNames = map[int]string{
	StepPassenger:    "passenger",
	StepPayment:      "payment",
	StepConfirmation: "confirmation",
}

// Passenger is held in the wizard only. It is dropped once the booking is
// confirmed.
type Passenger struct {
	FullName       string `json:"fullName"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	DateOfBirth    string `json:"dateOfBirth"`
	Nationality    string `json:"nationality"`
	PassportNumber string `json:"passportNumber"`
	PassportExpiry string `json:"passportExpiry"`
}

func (p Passenger) ToBookingPassenger() bookingModel.Passenger {
	return bookingModel.Passenger{
		PassengerName:  p.FullName,
		PassengerEmail: p.Email,
	}
}

// Wizard walks one user through passenger, payment and confirmation.
type Wizard struct {
	ID               string                `json:"id"`
	UserID           int64                 `json:"userId"`
	Flight           flightModel.Flight    `json:"flight"`
	Step             int                   `json:"step"`
	Passenger        *Passenger            `json:"passenger,omitempty"`
	Booking          *bookingModel.Booking `json:"booking,omitempty"`
	PaymentConfirmed bool                  `json:"paymentConfirmed"`
	CreatedAt        time.Time             `json:"createdAt"`
	ExpiresAt        time.Time             `json:"expiresAt"`
}

func New(id string, userID int64, flight flightModel.Flight, now time.Time, ttl time.Duration) Wizard {
	return Wizard{
		ID:        id,
		UserID:    userID,
		Flight:    flight,
		Step:      StepPassenger,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

func clamp(step int) int {
	return min(max(step, StepPassenger), StepConfirmation)
}

func (w *Wizard) setStep(step int) {
	w.Step = clamp(step)
}

func (w Wizard) StepName() string {
	return stepNames[clamp(w.Step)]
}

func (w Wizard) OwnedBy(userID int64) bool {
	return w.UserID == userID
}

func (w Wizard) Completed() bool {
	return w.Step == StepConfirmation && w.Booking != nil
}

// SubmitPassenger stores already validated passenger data and moves to payment.
func (w *Wizard) SubmitPassenger(p Passenger) error {
	if w.Step != StepPassenger {
		return failure.BusinessRule(messagePassengerStep)
	}

	w.Passenger = &p
	w.setStep(StepPayment)

	return nil
}

// Back goes from payment to passenger. The passenger step stays put and the
// confirmation step is terminal.
func (w *Wizard) Back() error {
	if w.Step == StepConfirmation {
		return failure.BusinessRule(messageTerminal)
	}

	w.setStep(w.Step - 1)

	return nil
}

// CanPay reports why payment is not possible yet.
func (w Wizard) CanPay() error {
	switch {
	case w.Step == StepConfirmation:
		return failure.BusinessRule(messageTerminal)
	case w.Step != StepPayment || w.Passenger == nil:
		return failure.BusinessRule(messagePaymentStep)
	default:
		return nil
	}
}

// Complete records the booking and forgets the passenger's personal data.
func (w *Wizard) Complete(booking bookingModel.Booking, confirmed bool) error {
	if err := w.CanPay(); err != nil {
		return err
	}

	w.Booking = &booking
	w.PaymentConfirmed = confirmed
	w.Passenger = nil
	w.setStep(StepConfirmation)

	return nil
}

func (w Wizard) ConfirmedBooking() (bookingModel.Booking, error) {
	if !w.Completed() {
		return bookingModel.Booking{}, failure.BusinessRule(messageNotConfirmed)
	}

	return *w.Booking, nil
}
