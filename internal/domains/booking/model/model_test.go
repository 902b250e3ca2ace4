package model_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rimbest/internal/domains/booking/model"
	"rimbest/shared/failure"
	"rimbest/shared/timezone"
)

var now = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func bookingDeparting(status string, departure time.Time) model.Booking {
	return model.Booking{
		ID:     34,
		Status: status,
		Tickets: []model.Ticket{{
			ID:     1,
			Flight: &model.TicketFlight{FlightNumber: "RB101", DepartureTime: timezone.NewDateTime(departure)},
		}},
	}
}

func TestCanCancel(t *testing.T) {
	tests := []struct {
		name    string
		booking model.Booking
		want    bool
	}{
		{name: "exactly 48h is eligible", booking: bookingDeparting(model.StatusConfirmed, now.Add(48*time.Hour)), want: true},
		{name: "48h minus one second is not", booking: bookingDeparting(model.StatusConfirmed, now.Add(48*time.Hour-time.Second))},
		{name: "far future pending", booking: bookingDeparting(model.StatusPending, now.Add(30*24*time.Hour)), want: true},
		{name: "cancelled far in the future", booking: bookingDeparting(model.StatusCancelled, now.Add(30*24*time.Hour))},
		{name: "cancelled in lower case", booking: bookingDeparting("cancelled", now.Add(30*24*time.Hour))},
		{name: "already departed", booking: bookingDeparting(model.StatusConfirmed, now.Add(-time.Hour))},
		{name: "no tickets", booking: model.Booking{ID: 1, Status: model.StatusConfirmed}},
		{name: "ticket without flight", booking: model.Booking{ID: 1, Status: model.StatusConfirmed, Tickets: []model.Ticket{{ID: 1}}}},
		{name: "flight without departure", booking: bookingDeparting(model.StatusConfirmed, time.Time{})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.CanCancel(tt.booking, now))
		})
	}
}

func TestBooking_Number(t *testing.T) {
	assert.Equal(t, "RB-000034", model.Booking{ID: 34}.Number())
	assert.Equal(t, "RB-1234567", model.Booking{ID: 1234567}.Number())
	assert.Equal(t, "BK-2024-77", model.Booking{ID: 34, BookingNumber: "BK-2024-77"}.Number())
	assert.Equal(t, "RB-000034", model.Booking{ID: 34, BookingNumber: "  "}.Number())
}

func TestBooking_Cancel(t *testing.T) {
	b := bookingDeparting(model.StatusConfirmed, now)

	require.NoError(t, b.Cancel())
	assert.Equal(t, model.StatusCancelled, b.Status)

	err := b.Cancel()
	require.Error(t, err)
	assert.True(t, failure.Is(err, failure.KindBusinessRule))
	assert.Equal(t, model.StatusCancelled, b.Status)
}

func TestBooking_IsPaid(t *testing.T) {
	assert.True(t, model.Booking{PaymentStatus: "PAID"}.IsPaid())
	assert.True(t, model.Booking{}.IsPaid())
	assert.False(t, model.Booking{PaymentStatus: "PENDING"}.IsPaid())
}

func TestBooking_DecodeRemote(t *testing.T) {
	raw := `{
		"id": 34,
		"bookingNumber": "",
		"bookingDate": "2024-02-20T09:15:00",
		"totalPrice": 42000,
		"status": "CONFIRMED",
		"tickets": [{
			"id": 9,
			"passengerName": "Jean-Paul O'Brien",
			"seatNumber": null,
			"flight": {"id": 3, "flightNumber": "RB101", "departureTime": "2024-03-10T08:30:00"}
		}]
	}`

	var b model.Booking
	require.NoError(t, json.Unmarshal([]byte(raw), &b))

	assert.Equal(t, "RB-000034", b.Number())

	departure, ok := b.Departure()
	require.True(t, ok)
	assert.Equal(t, 8, departure.Hour())
	assert.Equal(t, "", b.Tickets[0].SeatNumber)
}

func TestNewCancellationResult(t *testing.T) {
	b := model.Booking{ID: 34, TotalPrice: 42000, Status: model.StatusConfirmed}

	assert.Equal(t, model.CancellationResult{
		BookingID:     34,
		BookingNumber: "RB-000034",
		RefundAmount:  42000,
		Status:        model.StatusCancelled,
	}, model.NewCancellationResult(b))
}

func TestFilter_Match(t *testing.T) {
	b := model.Booking{
		ID:     34,
		Status: model.StatusConfirmed,
		Tickets: []model.Ticket{{
			PassengerName:  "Aminetou Mint Ahmed",
			PassengerEmail: "aminetou@rimbest.mr",
			Flight:         &model.TicketFlight{FlightNumber: "RB101", DepartureCity: "Nouakchott", ArrivalCity: "Atar"},
		}},
	}

	tests := []struct {
		name   string
		filter model.Filter
		want   bool
	}{
		{name: "empty filter", filter: model.Filter{}, want: true},
		{name: "all status", filter: model.Filter{Status: "all"}, want: true},
		{name: "status is case insensitive", filter: model.Filter{Status: "confirmed"}, want: true},
		{name: "other status", filter: model.Filter{Status: "cancelled"}, want: false},
		{name: "derived booking number", filter: model.Filter{Query: "rb-000034"}, want: true},
		{name: "arrival city", filter: model.Filter{Query: "ATAR"}, want: true},
		{name: "passenger name", filter: model.Filter{Query: "mint"}, want: true},
		{name: "flight number", filter: model.Filter{Query: "rb101"}, want: true},
		{name: "no match", filter: model.Filter{Query: "dakar"}, want: false},
		{name: "status and query both apply", filter: model.Filter{Status: "cancelled", Query: "atar"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Match(b))
		})
	}
}
