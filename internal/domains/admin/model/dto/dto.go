package dto

import (
	"cmp"
	"maps"
	"rimbest/internal/domains/admin/model"
	bookingDto "rimbest/internal/domains/booking/model/dto"
	"slices"
	"strings"
	"time"
)

const Currency = "MRU"

type UserResponse struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber"`
	Role        string `json:"role"`
}

func (r *UserResponse) FromModel(m model.User) {
	r.ID = m.ID
	r.Username = m.Username
	r.Email = m.Email
	r.FullName = m.FullName
	r.PhoneNumber = m.PhoneNumber
	r.Role = strings.ToUpper(m.Role)
}

type GetUsersResponse struct {
	Users []UserResponse `json:"users"`
}

func (r *GetUsersResponse) FromModels(models []model.User) {
	r.Users = make([]UserResponse, len(models))
	for i, mod := range models {
		r.Users[i].FromModel(mod)
	}
}

type RouteResponse struct {
	Route    string `json:"route"`
	Bookings int64  `json:"bookings"`
}

type StatsResponse struct {
	TotalUsers     int64                        `json:"totalUsers"`
	TotalBookings  int64                        `json:"totalBookings"`
	TotalFlights   int64                        `json:"totalFlights"`
	TotalRevenue   float64                      `json:"totalRevenue"`
	Currency       string                       `json:"currency"`
	RecentBookings []bookingDto.BookingResponse `json:"recentBookings"`
	PopularRoutes  []RouteResponse              `json:"popularRoutes"`
}

// FromModel orders popular routes by bookings, most booked first.
func (r *StatsResponse) FromModel(m model.Stats, now time.Time) {
	r.TotalUsers = m.TotalUsers
	r.TotalBookings = m.TotalBookings
	r.TotalFlights = m.TotalFlights
	r.TotalRevenue = m.TotalRevenue
	r.Currency = Currency

	r.RecentBookings = make([]bookingDto.BookingResponse, len(m.RecentBookings))
	for i, booking := range m.RecentBookings {
		r.RecentBookings[i].FromModel(booking, now)
	}

	r.PopularRoutes = make([]RouteResponse, 0, len(m.PopularRoutes))
	for route, count := range m.PopularRoutes {
		r.PopularRoutes = append(r.PopularRoutes, RouteResponse{Route: route, Bookings: count})
	}

	slices.SortFunc(r.PopularRoutes, func(a, b RouteResponse) int {
		if c := cmp.Compare(b.Bookings, a.Bookings); c != 0 {
			return c
		}

		return strings.Compare(a.Route, b.Route)
	})
}

type MonthRevenue struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}

type RevenueResponse struct {
	Months   []MonthRevenue `json:"months"`
	Total    float64        `json:"total"`
	Currency string         `json:"currency"`
}

// FromModel lists months in key order, which is chronological for the
// remote API's YYYY-MM labels.
func (r *RevenueResponse) FromModel(m model.MonthlyRevenue) {
	r.Currency = Currency
	r.Months = make([]MonthRevenue, 0, len(m))

	for _, month := range slices.Sorted(maps.Keys(m)) {
		r.Months = append(r.Months, MonthRevenue{Month: month, Revenue: m[month]})
		r.Total += m[month]
	}
}
