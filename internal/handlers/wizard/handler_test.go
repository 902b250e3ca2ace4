package wizard_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"rimbest/infras/otel/mocks"
	authModel "rimbest/internal/domains/auth/model"
	paymentDto "rimbest/internal/domains/payment/model/dto"
	"rimbest/internal/domains/wizard/model/dto"
	wizardMocks "rimbest/internal/domains/wizard/mocks"
	"rimbest/internal/handlers/wizard"
	"rimbest/shared/failure"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var session = authModel.Session{Token: "t", UserID: 7, Role: "USER"}

func newRouter(svc *wizardMocks.MockWizardService) *chi.Mux {
	handler := wizard.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(authModel.WithSession(r.Context(), session)))
		})
	})
	router.Route("/v1", handler.Router)

	return router
}

func TestHandler_Start(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMock  func(svc *wizardMocks.MockWizardService)
		wantStatus int
	}{
		{
			name: "created",
			body: `{"flightId": 12}`,
			setupMock: func(svc *wizardMocks.MockWizardService) {
				svc.EXPECT().Start(gomock.Any(), session, dto.StartRequest{FlightID: "12"}).Return(dto.WizardResponse{ID: "w-1", Step: 1}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing flight id",
			body:       `{}`,
			setupMock:  func(svc *wizardMocks.MockWizardService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "flight not found",
			body: `{"flightId": 99}`,
			setupMock: func(svc *wizardMocks.MockWizardService) {
				svc.EXPECT().Start(gomock.Any(), session, gomock.Any()).Return(dto.WizardResponse{}, failure.NotFound("Flight not found."))
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := wizardMocks.NewMockWizardService(ctrl)
			tt.setupMock(svc)

			rec := httptest.NewRecorder()
			newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/wizards", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandler_SubmitPassenger_FieldReported(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := wizardMocks.NewMockWizardService(ctrl)
	svc.EXPECT().
		SubmitPassenger(gomock.Any(), session, "w-1", dto.PassengerRequest{FullName: "A"}).
		Return(dto.WizardResponse{}, failure.Validation("fullName", "fullName must be at least 2 characters"))

	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/wizards/w-1/passenger", strings.NewReader(`{"fullName":"A"}`)))

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "fullName", body["field"])
	assert.Equal(t, "validation", body["kind"])
}

func TestHandler_SubmitPayment(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMock  func(svc *wizardMocks.MockWizardService)
		wantStatus int
	}{
		{
			name: "paid",
			body: `{"cardNumber":"4111111111111111","cardHolder":"Jean","expiryDate":"09/27","cvv":"123"}`,
			setupMock: func(svc *wizardMocks.MockWizardService) {
				svc.EXPECT().
					SubmitPayment(gomock.Any(), session, "w-1", paymentDto.PaymentRequest{
						CardNumber: "4111111111111111", CardHolder: "Jean", ExpiryDate: "09/27", CVV: "123",
					}).
					Return(dto.WizardResponse{ID: "w-1", Step: 3, PaymentConfirmed: true}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "duplicate submission",
			body: `{"cardNumber":"4111111111111111","cardHolder":"Jean","expiryDate":"09/27","cvv":"123"}`,
			setupMock: func(svc *wizardMocks.MockWizardService) {
				svc.EXPECT().SubmitPayment(gomock.Any(), session, "w-1", gomock.Any()).
					Return(dto.WizardResponse{}, failure.Conflict("A payment is already being processed for this booking."))
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:       "malformed body",
			body:       `{"cardNumber":`,
			setupMock:  func(svc *wizardMocks.MockWizardService) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := wizardMocks.NewMockWizardService(ctrl)
			tt.setupMock(svc)

			rec := httptest.NewRecorder()
			newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/wizards/w-1/payment", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
