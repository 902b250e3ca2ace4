package dto

import (
	"net/http"
	"rimbest/internal/domains/flight/model"
	"rimbest/shared/constant"
	gDto "rimbest/shared/dto"
	"rimbest/shared/failure"
	"rimbest/shared/timezone"
	"strconv"
	"strings"
)

// DefaultPageSize is the number of flights per results page.
const DefaultPageSize = 5

type SearchRequest struct {
	DepartureCity string   `json:"departureCity" validate:"omitempty,max=100"`
	ArrivalCity   string   `json:"arrivalCity"   validate:"omitempty,max=100"`
	DepartureDate string   `json:"departureDate" validate:"omitempty,isodate"`
	MinPrice      *float64 `json:"minPrice"      validate:"omitempty,gte=0"`
	MaxPrice      *float64 `json:"maxPrice"      validate:"omitempty,gte=0"`
	Sort          string   `json:"sort"          validate:"omitempty,oneof=time price destination"`
	gDto.QueryParams
}

// FromRequest reads the search from query parameters. Malformed prices are
// reported as validation errors.
func (s *SearchRequest) FromRequest(r *http.Request) error {
	query := r.URL.Query()

	s.DepartureCity = strings.TrimSpace(query.Get(model.FieldDepartureCity))
	s.ArrivalCity = strings.TrimSpace(query.Get(model.FieldArrivalCity))
	s.DepartureDate = strings.TrimSpace(query.Get(model.FieldDepartureDate))
	s.Sort = strings.ToLower(strings.TrimSpace(query.Get(model.FieldSort)))

	var err error

	if s.MinPrice, err = parsePrice(query.Get(model.FieldMinPrice), model.FieldMinPrice); err != nil {
		return err
	}

	if s.MaxPrice, err = parsePrice(query.Get(model.FieldMaxPrice), model.FieldMaxPrice); err != nil {
		return err
	}

	s.QueryParams.FromRequest(r, DefaultPageSize)

	return nil
}

func (s *SearchRequest) ToCriteria() model.Criteria {
	sortBy := s.Sort
	if sortBy == "" {
		sortBy = model.SortByTime
	}

	return model.Criteria{
		DepartureCity: s.DepartureCity,
		ArrivalCity:   s.ArrivalCity,
		DepartureDate: s.DepartureDate,
		MinPrice:      s.MinPrice,
		MaxPrice:      s.MaxPrice,
		SortBy:        sortBy,
	}
}

func formatTime(t timezone.DateTime) string {
	if t.IsZero() {
		return ""
	}

	return timezone.Format(t.Time, constant.DateFormat)
}

func parsePrice(value, field string) (*float64, error) {
	if value == "" {
		return nil, nil
	}

	price, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, failure.Validation(field, field+" must be a number")
	}

	return &price, nil
}

type AirlineResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	IataCode string `json:"iataCode"`
	LogoURL  string `json:"logoUrl"`
}

func (r *AirlineResponse) FromModel(m model.Airline) {
	r.ID = m.ID
	r.Name = m.Name
	r.IataCode = m.IataCode
	r.LogoURL = m.LogoURL
}

type FlightResponse struct {
	ID                   int64           `json:"id"`
	FlightNumber         string          `json:"flightNumber"`
	DepartureCity        string          `json:"departureCity"`
	ArrivalCity          string          `json:"arrivalCity"`
	DepartureAirportCode string          `json:"departureAirportCode"`
	ArrivalAirportCode   string          `json:"arrivalAirportCode"`
	DepartureTime        string          `json:"departureTime"`
	ArrivalTime          string          `json:"arrivalTime"`
	Price                float64         `json:"price"`
	Currency             string          `json:"currency"`
	AvailableSeats       int             `json:"availableSeats"`
	Airline              AirlineResponse `json:"airline"`
}

func (r *FlightResponse) FromModel(m model.Flight) {
	r.ID = m.ID
	r.FlightNumber = m.FlightNumber
	r.DepartureCity = m.DepartureCity
	r.ArrivalCity = m.ArrivalCity
	r.DepartureAirportCode = m.DepartureAirportCode
	r.ArrivalAirportCode = m.ArrivalAirportCode
	r.DepartureTime = formatTime(m.DepartureTime)
	r.ArrivalTime = formatTime(m.ArrivalTime)
	r.Price = m.Price
	r.Currency = model.Currency
	r.AvailableSeats = m.AvailableSeats
	r.Airline.FromModel(m.Airline)
}

type SearchResponse struct {
	Flights    []FlightResponse `json:"flights"`
	Pagination gDto.Pagination  `json:"pagination"`
}

// FromModels keeps the page of already sorted flights plus totals.
func (r *SearchResponse) FromModels(page []model.Flight, total int, params gDto.QueryParams) {
	r.Pagination = gDto.NewPagination(params, total)

	r.Flights = make([]FlightResponse, len(page))
	for i, mod := range page {
		r.Flights[i].FromModel(mod)
	}
}

type GetAirlinesResponse struct {
	Airlines []AirlineResponse `json:"airlines"`
}

func (r *GetAirlinesResponse) FromModels(models []model.Airline) {
	r.Airlines = make([]AirlineResponse, len(models))
	for i, mod := range models {
		r.Airlines[i].FromModel(mod)
	}
}
