package service

import (
	"math"
	"rimbest/shared/timezone"
	"strconv"
	"strings"
	"time"
)

const (
	layoutDate    = "02/01/2006"
	layoutClock   = "15:04"
	currencyLabel = "MRU"
	missingValue  = "-"
)

func formatDate(t time.Time) string {
	if t.IsZero() {
		return missingValue
	}

	return timezone.Format(t, layoutDate)
}

func formatClock(t time.Time) string {
	if t.IsZero() {
		return missingValue
	}

	return timezone.Format(t, layoutClock)
}

// formatPrice groups thousands with spaces. Whole amounts print without
// decimals ("12 500 MRU"); cents follow a comma ("1 234 567,50 MRU").
func formatPrice(amount float64) string {
	cents := int64(math.Round(math.Abs(amount) * 100))
	whole, fraction := cents/100, cents%100

	digits := strconv.FormatInt(whole, 10)

	var out strings.Builder

	if amount < 0 && cents > 0 {
		out.WriteByte('-')
	}

	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out.WriteByte(' ')
		}

		out.WriteRune(d)
	}

	if fraction > 0 {
		out.WriteByte(',')

		if fraction < 10 {
			out.WriteByte('0')
		}

		out.WriteString(strconv.FormatInt(fraction, 10))
	}

	return out.String() + " " + currencyLabel
}
