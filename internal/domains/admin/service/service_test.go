package service_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/mock/gomock"

	"rimbest/infras/otel"
	"rimbest/infras/otel/mocks"
	adminMocks "rimbest/internal/domains/admin/mocks"
	"rimbest/internal/domains/admin/model"
	"rimbest/internal/domains/admin/model/dto"
	"rimbest/internal/domains/admin/service"
	authModel "rimbest/internal/domains/auth/model"
	"rimbest/shared/clock"
	"rimbest/shared/failure"
)

var (
	now   = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	admin = authModel.Session{Token: "token-admin", UserID: 1, Role: "ROLE_ADMIN"}
	user  = authModel.Session{Token: "token-user", UserID: 7, Role: "USER"}
)

func newService(t *testing.T) (*adminMocks.MockAdmin, service.Admin) {
	ctrl := gomock.NewController(t)
	repo := adminMocks.NewMockAdmin(ctrl)

	return repo, service.New(repo, clock.NewFake(now), mocks.NewOtel())
}

func TestAdminService_GetStats(t *testing.T) {
	tests := []struct {
		name       string
		session    authModel.Session
		setupMock  func(repo *adminMocks.MockAdmin)
		wantRoutes []dto.RouteResponse
		wantCode   int
	}{
		{
			name:    "routes ordered by popularity",
			session: admin,
			setupMock: func(repo *adminMocks.MockAdmin) {
				repo.EXPECT().GetStats(gomock.Any(), "token-admin").Return(model.Stats{
					TotalUsers:    12,
					PopularRoutes: map[string]int64{"Nouakchott - Atar": 3, "Nouakchott - Nouadhibou": 9, "Atar - Zouerate": 3},
				}, nil)
			},
			wantRoutes: []dto.RouteResponse{
				{Route: "Nouakchott - Nouadhibou", Bookings: 9},
				{Route: "Atar - Zouerate", Bookings: 3},
				{Route: "Nouakchott - Atar", Bookings: 3},
			},
		},
		{
			name:      "regular user is refused",
			session:   user,
			setupMock: func(*adminMocks.MockAdmin) {},
			wantCode:  http.StatusForbidden,
		},
		{
			name:    "remote refusal",
			session: admin,
			setupMock: func(repo *adminMocks.MockAdmin) {
				repo.EXPECT().GetStats(gomock.Any(), "token-admin").Return(model.Stats{}, failure.Unauthorized(failure.MessageAuth))
			},
			wantCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, svc := newService(t)
			tt.setupMock(repo)

			res, err := svc.GetStats(context.Background(), tt.session)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(12), res.TotalUsers)
			assert.Equal(t, tt.wantRoutes, res.PopularRoutes)
		})
	}
}

func TestAdminService_GetUsers(t *testing.T) {
	repo, svc := newService(t)

	repo.EXPECT().GetUsers(gomock.Any(), "token-admin").Return([]model.User{{ID: 7, Username: "amine", Role: "user"}}, nil)

	res, err := svc.GetUsers(context.Background(), admin)

	require.NoError(t, err)
	require.Len(t, res.Users, 1)
	assert.Equal(t, "USER", res.Users[0].Role)
}

func TestAdminService_GetMonthlyRevenue(t *testing.T) {
	repo, svc := newService(t)

	repo.EXPECT().GetMonthlyRevenue(gomock.Any(), "token-admin").
		Return(model.MonthlyRevenue{"2024-02": 2500, "2024-01": 1000.5}, nil)

	res, err := svc.GetMonthlyRevenue(context.Background(), admin)

	require.NoError(t, err)
	assert.Equal(t, []dto.MonthRevenue{{Month: "2024-01", Revenue: 1000.5}, {Month: "2024-02", Revenue: 2500}}, res.Months)
	assert.InDelta(t, 3500.5, res.Total, 0.001)
	assert.Equal(t, "MRU", res.Currency)
}

func TestAdminService_GetStats_SpanStatus(t *testing.T) {
	tests := []struct {
		name       string
		session    authModel.Session
		setupMock  func(repo *adminMocks.MockAdmin)
		wantStatus codes.Code
	}{
		{
			name:    "success leaves the span unset",
			session: admin,
			setupMock: func(repo *adminMocks.MockAdmin) {
				repo.EXPECT().GetStats(gomock.Any(), "token-admin").Return(model.Stats{}, nil)
			},
			wantStatus: codes.Unset,
		},
		{
			name:    "remote failure marks the span",
			session: admin,
			setupMock: func(repo *adminMocks.MockAdmin) {
				repo.EXPECT().GetStats(gomock.Any(), "token-admin").Return(model.Stats{}, failure.Connectivity())
			},
			wantStatus: codes.Error,
		},
		{
			name:       "refused user marks the span",
			session:    user,
			setupMock:  func(*adminMocks.MockAdmin) {},
			wantStatus: codes.Error,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := tracetest.NewSpanRecorder()
			provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

			ctrl := gomock.NewController(t)
			repo := adminMocks.NewMockAdmin(ctrl)
			tt.setupMock(repo)

			svc := service.New(repo, clock.NewFake(now), otel.NewWithProvider(provider))
			_, _ = svc.GetStats(context.Background(), tt.session)

			spans := recorder.Ended()
			require.Len(t, spans, 1)
			assert.Equal(t, "service.GetStats", spans[0].Name())
			assert.Equal(t, tt.wantStatus, spans[0].Status().Code)
		})
	}
}
