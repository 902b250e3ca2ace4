package dto_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rimbest/internal/domains/flight/model"
	"rimbest/internal/domains/flight/model/dto"
	"rimbest/shared/failure"
	"rimbest/shared/validator"
)

func TestSearchRequest_FromRequest(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		wantErr   string
		wantField string
		check     func(t *testing.T, req dto.SearchRequest)
	}{
		{
			name:   "defaults",
			target: "/v1/flights",
			check: func(t *testing.T, req dto.SearchRequest) {
				assert.Equal(t, 1, req.Page)
				assert.Equal(t, dto.DefaultPageSize, req.Limit)
				assert.Equal(t, model.SortByTime, req.ToCriteria().SortBy)
				assert.Nil(t, req.MinPrice)
			},
		},
		{
			name:   "all filters",
			target: "/v1/flights?departureCity=+Nouakchott+&arrivalCity=Paris&departureDate=2024-03-01&minPrice=100&maxPrice=5000.5&sort=PRICE&page=2",
			check: func(t *testing.T, req dto.SearchRequest) {
				criteria := req.ToCriteria()
				assert.Equal(t, "Nouakchott", criteria.DepartureCity)
				assert.Equal(t, "Paris", criteria.ArrivalCity)
				assert.Equal(t, "2024-03-01", criteria.DepartureDate)
				assert.Equal(t, model.SortByPrice, criteria.SortBy)
				require.NotNil(t, criteria.MaxPrice)
				assert.InDelta(t, 5000.5, *criteria.MaxPrice, 0.001)
				assert.Equal(t, 2, req.Page)
			},
		},
		{
			name:      "malformed price",
			target:    "/v1/flights?minPrice=cheap",
			wantErr:   "minPrice must be a number",
			wantField: "minPrice",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.SearchRequest{}

			err := req.FromRequest(httptest.NewRequest("GET", tt.target, nil))

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, err.Error())
				assert.Equal(t, tt.wantField, failure.GetField(err))

				return
			}

			require.NoError(t, err)
			require.NoError(t, validator.ValidateStruct(&req))
			tt.check(t, req)
		})
	}
}

func TestSearchRequest_Validation(t *testing.T) {
	req := dto.SearchRequest{}
	require.NoError(t, req.FromRequest(httptest.NewRequest("GET", "/v1/flights?departureDate=01/03/2024", nil)))

	err := validator.ValidateStruct(&req)

	require.Error(t, err)
	assert.Equal(t, "departureDate", failure.GetField(err))
}
