package response_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rimbest/shared/failure"
	"rimbest/transport/http/response"
)

func TestWithError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantCode  int
		wantError string
		wantKind  failure.Kind
		wantField string
	}{
		{
			name:      "wrapped business rule keeps only its reason",
			err:       fmt.Errorf("failed to cancel booking: %w", failure.BusinessRule("too late")),
			wantCode:  http.StatusBadRequest,
			wantError: "too late",
			wantKind:  failure.KindBusinessRule,
		},
		{
			name:      "validation carries the field",
			err:       failure.Validation("phone", "phone must be at least 8 characters"),
			wantCode:  http.StatusBadRequest,
			wantError: "phone must be at least 8 characters",
			wantKind:  failure.KindValidation,
			wantField: "phone",
		},
		{
			name:      "plain errors never leak",
			err:       errors.New("pq: password authentication failed"),
			wantCode:  http.StatusInternalServerError,
			wantError: failure.MessageUnknown,
			wantKind:  failure.KindUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()

			response.WithError(recorder, tt.err)

			assert.Equal(t, tt.wantCode, recorder.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
			assert.Equal(t, tt.wantError, body["error"])
			assert.Equal(t, string(tt.wantKind), body["kind"])
			assert.Equal(t, tt.wantField, body["field"])
		})
	}
}

func TestWithPDF(t *testing.T) {
	recorder := httptest.NewRecorder()

	response.WithPDF(recorder, "recu_RB-000034_aminetou_2024-03-01.pdf", []byte("%PDF-1.3"))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "application/pdf", recorder.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename=recu_RB-000034_aminetou_2024-03-01.pdf`, recorder.Header().Get("Content-Disposition"))
	assert.Equal(t, "%PDF-1.3", recorder.Body.String())
}

func TestWithJSON(t *testing.T) {
	recorder := httptest.NewRecorder()

	response.WithJSON(recorder, http.StatusCreated, map[string]int{"step": 1})

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.JSONEq(t, `{"data":{"step":1}}`, recorder.Body.String())
}
