package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookingModel "rimbest/internal/domains/booking/model"
	flightModel "rimbest/internal/domains/flight/model"
	"rimbest/internal/domains/wizard/model"
	"rimbest/shared/failure"
)

var now = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func passenger() model.Passenger {
	return model.Passenger{FullName: "Aminetou", Email: "aminetou@rimbest.mr"}
}

func TestWizard_Steps(t *testing.T) {
	w := model.New("wiz-1", 7, flightModel.Flight{ID: 12}, now, 30*time.Minute)

	assert.Equal(t, model.StepPassenger, w.Step)
	assert.Equal(t, "passenger", w.StepName())
	assert.Equal(t, now.Add(30*time.Minute), w.ExpiresAt)

	require.NoError(t, w.Back())
	assert.Equal(t, model.StepPassenger, w.Step, "back on step 1 stays on step 1")

	assert.Equal(t, failure.KindBusinessRule, failure.GetKind(w.CanPay()))
	assert.Error(t, w.Complete(bookingModel.Booking{ID: 34}, true))

	require.NoError(t, w.SubmitPassenger(passenger()))
	assert.Equal(t, model.StepPayment, w.Step)
	assert.Error(t, w.SubmitPassenger(passenger()), "passenger step is over")

	require.NoError(t, w.Back())
	assert.Equal(t, model.StepPassenger, w.Step)
	require.NoError(t, w.SubmitPassenger(passenger()))

	_, err := w.ConfirmedBooking()
	assert.Equal(t, failure.KindBusinessRule, failure.GetKind(err))

	require.NoError(t, w.Complete(bookingModel.Booking{ID: 34}, true))
	assert.Equal(t, model.StepConfirmation, w.Step)
	assert.Equal(t, "confirmation", w.StepName())
	assert.Nil(t, w.Passenger)
	assert.True(t, w.Completed())

	assert.Error(t, w.Back(), "confirmation is terminal")
	assert.Equal(t, model.StepConfirmation, w.Step)

	booking, err := w.ConfirmedBooking()
	require.NoError(t, err)
	assert.Equal(t, int64(34), booking.ID)
}

func TestWizard_StepNameClamped(t *testing.T) {
	assert.Equal(t, "passenger", model.Wizard{Step: -4}.StepName())
	assert.Equal(t, "confirmation", model.Wizard{Step: 9}.StepName())
}

func TestWizard_OwnedBy(t *testing.T) {
	w := model.New("wiz-1", 7, flightModel.Flight{}, now, time.Minute)

	assert.True(t, w.OwnedBy(7))
	assert.False(t, w.OwnedBy(8))
}
