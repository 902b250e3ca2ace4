package model

import (
	"rimbest/shared/constant"
	"rimbest/shared/timezone"
	"strings"
	"time"
	"unicode"
)

const (
	TableName  = "ticket_receipts"
	EntityName = "receipt"

	FieldID            = "id"
	FieldBookingID     = "booking_id"
	FieldBookingNumber = "booking_number"
	FieldFileName      = "file_name"
	FieldObjectURL     = "object_url"
	FieldCreatedAt     = "created_at"
)

// Artifact is a rendered receipt ready to be downloaded or archived.
type Artifact struct {
	FileName      string
	BookingID     int64
	BookingNumber string
	Content       []byte
}

// Receipt records an archived artifact.
type Receipt struct {
	ID            string    `db:"id"             json:"id"`
	BookingID     int64     `db:"booking_id"     json:"bookingId"`
	BookingNumber string    `db:"booking_number" json:"bookingNumber"`
	FileName      string    `db:"file_name"      json:"fileName"`
	ObjectURL     string    `db:"object_url"     json:"objectUrl"`
	CreatedAt     time.Time `db:"created_at"     json:"createdAt"`
}

// FileName is recu_<bookingNumber>_<name>_<date>.pdf where name keeps only
// the lower cased letters and digits of the passenger name.
func FileName(bookingNumber, passengerName string, date time.Time) string {
	var name strings.Builder

	for _, r := range passengerName {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			name.WriteRune(unicode.ToLower(r))
		}
	}

	return "recu_" + bookingNumber + "_" + name.String() + "_" + timezone.Format(date, constant.ISODateFormat) + ".pdf"
}
