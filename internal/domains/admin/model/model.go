package model

import bookingModel "rimbest/internal/domains/booking/model"

type User struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber"`
	Role        string `json:"role"`
}

// Stats is the remote dashboard summary. PopularRoutes maps "From - To" to
// a booking count.
type Stats struct {
	TotalUsers     int64                  `json:"totalUsers"`
	TotalBookings  int64                  `json:"totalBookings"`
	TotalFlights   int64                  `json:"totalFlights"`
	TotalRevenue   float64                `json:"totalRevenue"`
	RecentBookings []bookingModel.Booking `json:"recentBookings"`
	PopularRoutes  map[string]int64       `json:"popularRoutes"`
}

// MonthlyRevenue maps a month label to its revenue.
type MonthlyRevenue map[string]float64
