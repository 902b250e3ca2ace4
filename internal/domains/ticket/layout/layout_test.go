package layout_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rimbest/internal/domains/ticket/layout"
)

func TestDefault(t *testing.T) {
	l, err := layout.Default()
	require.NoError(t, err)

	assert.Equal(t, "A4", l.Page.Size)
	assert.Equal(t, "À assigner", l.Label("seatPlaceholder", ""))
	assert.Equal(t, "fallback", l.Label("missing", "fallback"))

	var kinds []string
	for _, el := range l.Elements {
		kinds = append(kinds, el.Kind)
	}

	assert.Contains(t, kinds, layout.KindTable)
	assert.Contains(t, kinds, layout.KindBadge)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "not yaml", data: "page: [unterminated"},
		{name: "missing page", data: "elements:\n  - kind: text\n"},
		{name: "no elements", data: "page: {size: A4, unit: mm}\n"},
		{name: "unknown kind", data: "page: {size: A4, unit: mm}\nelements:\n  - kind: circle\n"},
		{name: "undefined color", data: "page: {size: A4, unit: mm}\nelements:\n  - kind: text\n    color: pink\n"},
		{name: "table without columns", data: "page: {size: A4, unit: mm}\nelements:\n  - kind: table\n    headerHeight: 10\n    rowHeight: 12\n"},
		{name: "bad alignment", data: "page: {size: A4, unit: mm}\nelements:\n  - kind: text\n    align: justify\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := layout.Parse([]byte(tt.data))

			assert.ErrorIs(t, err, layout.ErrInvalidLayout)
		})
	}
}

func TestRender(t *testing.T) {
	l, err := layout.Default()
	require.NoError(t, err)

	values := map[string]string{
		"issuer":        "RimBest Airways",
		"title":         "Reçu de réservation",
		"bookingNumber": "RB-000034",
		"passengerName": "Jean-Paul O'Brien",
		"seatNumber":    "À assigner",
		"paymentBadge":  "PAYÉ",
	}
	meta := layout.Metadata{
		Title:     "Reçu de réservation - RB-000034",
		Author:    "RimBest Airways",
		CreatedAt: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
	}

	first, err := l.Render(values, meta)
	require.NoError(t, err)

	second, err := l.Render(values, meta)
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(first, []byte("%PDF-")))
	assert.True(t, bytes.Equal(first, second), "rendering must be byte stable")
}
