package http_test

import (
	"net/http"
	"net/http/httptest"
	"rimbest/config"
	"rimbest/infras/otel/mocks"
	authMocks "rimbest/internal/domains/auth/mocks"
	"rimbest/permissions"
	cacheMocks "rimbest/shared/cache/mocks"
	"rimbest/shared/constant"
	transport "rimbest/transport/http"
	"rimbest/transport/http/middleware"
	"rimbest/transport/http/router"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newServer(t *testing.T) *transport.HTTP {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	cfg := &config.Config{}
	cfg.App.CORS.Enable = true

	otel := mocks.NewOtel()
	app := middleware.NewAppMiddleware(otel, cfg, cacheMocks.NewMockRedisCache(ctrl))
	authRole := middleware.NewAuthRoleMiddleware(authMocks.NewMockAuthService(ctrl), otel, permissions.Get(), cfg)

	return transport.New(cfg, router.New(cfg, router.DomainHandlers{}, app, authRole))
}

func TestHTTP_Health(t *testing.T) {
	server := newServer(t)

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(constant.RequestHeaderRequestID))
	assert.Equal(t, transport.ServerStateReady, server.State())
}

func TestHTTP_ProtectedRouteNeedsToken(t *testing.T) {
	server := newServer(t)

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/bookings", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHTTP_Preflight(t *testing.T) {
	server := newServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/v1/bookings", nil)
	req.Header.Set("Origin", "https://rimbest.mr")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
