package restapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rimbest/config"
	"rimbest/infras/otel/mocks"
	"rimbest/infras/restapi"
	"rimbest/shared/failure"
)

func newClient(baseURL string, timeoutSeconds int) restapi.Client {
	cfg := &config.Config{}
	cfg.Remote.BaseURL = baseURL
	cfg.Remote.TimeoutSeconds = timeoutSeconds

	return restapi.New(cfg, mocks.NewOtel())
}

func TestClient_Do_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/bookings", r.URL.Path)
		assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))
		assert.Equal(t, "CONFIRMED", r.URL.Query().Get("status"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.EqualValues(t, 7, body["flightId"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":34,"status":"CONFIRMED"}`))
	}))
	defer srv.Close()

	client := newClient(srv.URL+"/api/", 5)

	var out struct {
		ID     int64  `json:"id"`
		Status string `json:"status"`
	}

	err := client.Do(context.Background(), restapi.Request{
		Method: http.MethodPost,
		Path:   "/bookings",
		Token:  "token-123",
		Query:  url.Values{"status": []string{"CONFIRMED"}},
		Body:   map[string]any{"flightId": 7},
	}, &out)

	require.NoError(t, err)
	assert.Equal(t, int64(34), out.ID)
	assert.Equal(t, "CONFIRMED", out.Status)
}

func TestClient_Do_ErrorMapping(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantKind    failure.Kind
		wantMessage string
	}{
		{
			name:        "bad request carries server reason verbatim",
			status:      http.StatusBadRequest,
			body:        `{"message":"too late"}`,
			wantKind:    failure.KindBusinessRule,
			wantMessage: "too late",
		},
		{
			name:        "bad request without reason uses default",
			status:      http.StatusBadRequest,
			body:        `{}`,
			wantKind:    failure.KindBusinessRule,
			wantMessage: "The request was rejected by the server.",
		},
		{
			name:        "unauthorized",
			status:      http.StatusUnauthorized,
			wantKind:    failure.KindAuth,
			wantMessage: failure.MessageAuth,
		},
		{
			name:        "forbidden",
			status:      http.StatusForbidden,
			body:        `{"message":"Access is denied"}`,
			wantKind:    failure.KindAuth,
			wantMessage: failure.MessageAuth,
		},
		{
			name:        "not found",
			status:      http.StatusNotFound,
			body:        `{"message":"Flight not found"}`,
			wantKind:    failure.KindNotFound,
			wantMessage: "Flight not found",
		},
		{
			name:        "server error is unknown",
			status:      http.StatusInternalServerError,
			body:        `{"message":"NullPointerException"}`,
			wantKind:    failure.KindUnknown,
			wantMessage: failure.MessageUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			err := newClient(srv.URL, 5).Do(context.Background(), restapi.Request{
				Method: http.MethodPut,
				Path:   "/bookings/34/cancel",
			}, nil)

			require.Error(t, err)
			assert.Equal(t, tt.wantKind, failure.GetKind(err))
			assert.Equal(t, tt.wantMessage, err.Error())
		})
	}
}

func TestClient_Do_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	baseURL := srv.URL
	srv.Close()

	err := newClient(baseURL, 1).Do(context.Background(), restapi.Request{Method: http.MethodGet, Path: "/flights"}, nil)

	assert.True(t, failure.Is(err, failure.KindConnectivity))
	assert.Equal(t, failure.MessageConnectivity, err.Error())
}

func TestClient_Do_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := newClient(srv.URL, 5).Do(ctx, restapi.Request{Method: http.MethodPut, Path: "/bookings/1/cancel"}, nil)

	assert.True(t, failure.Is(err, failure.KindConnectivity))
}
