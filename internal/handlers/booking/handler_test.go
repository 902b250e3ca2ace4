package booking_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"rimbest/infras/otel/mocks"
	authModel "rimbest/internal/domains/auth/model"
	"rimbest/internal/domains/booking/model/dto"
	bookingMocks "rimbest/internal/domains/booking/mocks"
	ticketModel "rimbest/internal/domains/ticket/model"
	"rimbest/internal/handlers/booking"
	"rimbest/shared/failure"
	"rimbest/transport/http/response"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var session = authModel.Session{Token: "t", UserID: 7, Role: "USER"}

func newRouter(svc *bookingMocks.MockBookingService, signedIn bool) *chi.Mux {
	handler := booking.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if signedIn {
				r = r.WithContext(authModel.WithSession(r.Context(), session))
			}

			next.ServeHTTP(w, r)
		})
	})
	router.Route("/v1", handler.Router)

	return router
}

func TestHandler_GetBookings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := bookingMocks.NewMockBookingService(ctrl)
	svc.EXPECT().
		GetAll(gomock.Any(), session, gomock.Any()).
		DoAndReturn(func(_ any, _ authModel.Session, req dto.ListRequest) (dto.GetBookingsResponse, error) {
			assert.Equal(t, "confirmed", req.Status)
			assert.Equal(t, "nouakchott", req.Search)
			assert.Equal(t, 2, req.Page)

			return dto.GetBookingsResponse{Bookings: []dto.BookingResponse{{ID: 1, BookingNumber: "RB-000001"}}}, nil
		})

	rec := httptest.NewRecorder()
	newRouter(svc, true).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/bookings?status=CONFIRMED&q=nouakchott&page=2", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body response.Data[dto.GetBookingsResponse]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Data)
	require.Len(t, body.Data.Bookings, 1)
	assert.Equal(t, "RB-000001", body.Data.Bookings[0].BookingNumber)
}

func TestHandler_CancelBooking(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		signedIn   bool
		setupMock  func(svc *bookingMocks.MockBookingService)
		wantStatus int
		wantError  string
	}{
		{
			name:     "cancelled",
			path:     "/v1/bookings/34/cancel",
			signedIn: true,
			setupMock: func(svc *bookingMocks.MockBookingService) {
				svc.EXPECT().Cancel(gomock.Any(), session, int64(34)).Return(dto.CancellationResponse{BookingID: 34, Status: "CANCELLED"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:     "server reason shown verbatim",
			path:     "/v1/bookings/34/cancel",
			signedIn: true,
			setupMock: func(svc *bookingMocks.MockBookingService) {
				svc.EXPECT().Cancel(gomock.Any(), session, int64(34)).Return(dto.CancellationResponse{}, failure.BusinessRule("too late"))
			},
			wantStatus: http.StatusBadRequest,
			wantError:  "too late",
		},
		{
			name:       "id must be numeric",
			path:       "/v1/bookings/abc/cancel",
			signedIn:   true,
			setupMock:  func(svc *bookingMocks.MockBookingService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "no session",
			path:       "/v1/bookings/34/cancel",
			setupMock:  func(svc *bookingMocks.MockBookingService) {},
			wantStatus: http.StatusUnauthorized,
			wantError:  failure.MessageAuth,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := bookingMocks.NewMockBookingService(ctrl)
			tt.setupMock(svc)

			rec := httptest.NewRecorder()
			newRouter(svc, tt.signedIn).ServeHTTP(rec, httptest.NewRequest(http.MethodPut, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantError != "" {
				var body map[string]any
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, tt.wantError, body["error"])
			}
		})
	}
}

func TestHandler_DownloadTicket(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := bookingMocks.NewMockBookingService(ctrl)
	svc.EXPECT().Ticket(gomock.Any(), session, int64(34)).Return(ticketModel.Artifact{
		FileName: "recu_RB-000034_jeanpaulobrien_2024-03-01.pdf",
		Content:  []byte("%PDF-1.3"),
	}, nil)

	rec := httptest.NewRecorder()
	newRouter(svc, true).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/bookings/34/ticket", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "recu_RB-000034_jeanpaulobrien_2024-03-01.pdf")
	assert.Equal(t, "%PDF-1.3", rec.Body.String())
}

func TestHandler_GetBookings_UnknownStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rec := httptest.NewRecorder()
	newRouter(bookingMocks.NewMockBookingService(ctrl), true).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/bookings?status=refunded", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
