package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"rimbest/internal/domains/ticket/model"
)

func TestFileName(t *testing.T) {
	date := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		bookingNumber string
		passenger     string
		want          string
	}{
		{name: "punctuation and spaces stripped", bookingNumber: "RB-000034", passenger: "Jean-Paul O'Brien", want: "recu_RB-000034_jeanpaulobrien_2024-03-01.pdf"},
		{name: "digits kept", bookingNumber: "RB-000001", passenger: "Agent 007", want: "recu_RB-000001_agent007_2024-03-01.pdf"},
		{name: "accents dropped", bookingNumber: "RB-000002", passenger: "Zoé Mériem", want: "recu_RB-000002_zomriem_2024-03-01.pdf"},
		{name: "empty name", bookingNumber: "RB-000003", passenger: "", want: "recu_RB-000003__2024-03-01.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.FileName(tt.bookingNumber, tt.passenger, date))
		})
	}
}
