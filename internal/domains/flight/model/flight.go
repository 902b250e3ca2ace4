package model

import (
	"rimbest/shared/constant"
	"rimbest/shared/timezone"
	"strings"
)

const (
	EntityName = "flight"

	FieldDepartureCity = "departureCity"
	FieldArrivalCity   = "arrivalCity"
	FieldDepartureDate = "departureDate"
	FieldMinPrice      = "minPrice"
	FieldMaxPrice      = "maxPrice"
	FieldSort          = "sort"
)

const (
	SortByTime        = "time"
	SortByPrice       = "price"
	SortByDestination = "destination"
)

const Currency = "MRU"

type Airline struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	IataCode string `json:"iataCode"`
	LogoURL  string `json:"logoUrl"`
}

// Flight is owned by the remote catalog and never mutated here.
type Flight struct {
	ID                   int64             `json:"id"`
	FlightNumber         string            `json:"flightNumber"`
	DepartureCity        string            `json:"departureCity"`
	ArrivalCity          string            `json:"arrivalCity"`
	DepartureAirportCode string            `json:"departureAirportCode"`
	ArrivalAirportCode   string            `json:"arrivalAirportCode"`
	DepartureTime        timezone.DateTime `json:"departureTime"`
	ArrivalTime          timezone.DateTime `json:"arrivalTime"`
	Price                float64           `json:"price"`
	AvailableSeats       int               `json:"availableSeats"`
	Airline              Airline           `json:"airline"`
}

func (f Flight) HasSeats() bool {
	return f.AvailableSeats > 0
}

// Criteria narrows the catalog. Empty fields do not filter.
type Criteria struct {
	DepartureCity string
	ArrivalCity   string
	DepartureDate string
	MinPrice      *float64
	MaxPrice      *float64
	SortBy        string
}

func (c Criteria) Match(f Flight) bool {
	if c.MinPrice != nil && f.Price < *c.MinPrice {
		return false
	}

	if c.MaxPrice != nil && f.Price > *c.MaxPrice {
		return false
	}

	if !containsFold(f.DepartureCity, c.DepartureCity) || !containsFold(f.ArrivalCity, c.ArrivalCity) {
		return false
	}

	if c.DepartureDate != "" {
		if f.DepartureTime.IsZero() || timezone.Format(f.DepartureTime.Time, constant.ISODateFormat) != c.DepartureDate {
			return false
		}
	}

	return true
}

// Less orders flights by the criteria's sort key. Unknown keys sort by
// departure time, ties break on id.
func (c Criteria) Less(a, b Flight) bool {
	switch c.SortBy {
	case SortByPrice:
		if a.Price != b.Price {
			return a.Price < b.Price
		}
	case SortByDestination:
		if cmp := strings.Compare(strings.ToLower(a.ArrivalCity), strings.ToLower(b.ArrivalCity)); cmp != 0 {
			return cmp < 0
		}
	default:
		if !a.DepartureTime.Equal(b.DepartureTime.Time) {
			return a.DepartureTime.Before(b.DepartureTime.Time)
		}
	}

	return a.ID < b.ID
}

func containsFold(value, term string) bool {
	term = strings.TrimSpace(term)
	if term == "" {
		return true
	}

	return strings.Contains(strings.ToLower(value), strings.ToLower(term))
}
