package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventBookingConfirmed = "booking.confirmed"
	EventBookingCancelled = "booking.cancelled"
)

// Event is published for other services once a booking changes state.
type Event struct {
	ID            string    `json:"id"`
	Type          string    `json:"type"`
	BookingID     int64     `json:"bookingId"`
	BookingNumber string    `json:"bookingNumber"`
	UserID        int64     `json:"userId"`
	OccurredAt    time.Time `json:"occurredAt"`
	Booking       Booking   `json:"booking"`
}

func NewEvent(eventType string, b Booking, userID int64, occurredAt time.Time) Event {
	return Event{
		ID:            uuid.NewString(),
		Type:          eventType,
		BookingID:     b.ID,
		BookingNumber: b.Number(),
		UserID:        userID,
		OccurredAt:    occurredAt,
		Booking:       b,
	}
}
