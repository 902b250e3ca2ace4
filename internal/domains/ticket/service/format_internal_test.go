package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{amount: 0, want: "0 MRU"},
		{amount: 950, want: "950 MRU"},
		{amount: 12500, want: "12 500 MRU"},
		{amount: 1234567.5, want: "1 234 567,50 MRU"},
		{amount: 99.05, want: "99,05 MRU"},
		{amount: -1500, want: "-1 500 MRU"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, formatPrice(tt.amount))
		})
	}
}
