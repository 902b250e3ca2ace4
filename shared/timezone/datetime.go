package timezone

import (
	"bytes"
	"fmt"
	"time"
)

// Layouts accepted from the remote API. Zone-less values are read in the app location.
var dateTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// DateTime is a time.Time that decodes the remote API's timestamp shapes.
type DateTime struct {
	time.Time
}

func NewDateTime(t time.Time) DateTime {
	return DateTime{Time: t}
}

func (d *DateTime) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) || bytes.Equal(data, []byte(`""`)) {
		d.Time = time.Time{}

		return nil
	}

	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("timestamp must be a JSON string: %s", data)
	}

	value := string(data[1 : len(data)-1])

	for _, layout := range dateTimeLayouts {
		var (
			t   time.Time
			err error
		)

		if layout == time.RFC3339Nano {
			t, err = time.Parse(layout, value)
		} else {
			t, err = Parse(layout, value)
		}

		if err == nil {
			d.Time = t

			return nil
		}
	}

	return fmt.Errorf("unsupported timestamp %q", value)
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}

	return []byte(`"` + d.Format(time.RFC3339) + `"`), nil
}
