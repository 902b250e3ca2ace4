package dto_test

import (
	"net/http"
	"net/url"
	"rimbest/shared/dto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name         string
		queryParams  map[string]string
		defaultLimit int
		expected     dto.QueryParams
	}{
		{
			name:         "with all valid parameters",
			queryParams:  map[string]string{"page": "2", "limit": "20", "sort_by": "price", "sort_dir": "asc"},
			defaultLimit: 5,
			expected:     dto.QueryParams{Page: 2, Limit: 20, SortBy: "price", SortDir: "ASC"},
		},
		{
			name:         "defaults applied when missing",
			queryParams:  map[string]string{},
			defaultLimit: 5,
			expected:     dto.QueryParams{Page: 1, Limit: 5},
		},
		{
			name:         "no defaults when limit is zero",
			queryParams:  map[string]string{},
			defaultLimit: 0,
			expected:     dto.QueryParams{},
		},
		{
			name:         "invalid numbers fall back to defaults",
			queryParams:  map[string]string{"page": "-1", "limit": "abc", "sort_dir": "sideways"},
			defaultLimit: 5,
			expected:     dto.QueryParams{Page: 1, Limit: 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := url.Parse("http://example.com/v1/flights")
			require.NoError(t, err)

			query := u.Query()
			for key, value := range tt.queryParams {
				query.Set(key, value)
			}
			u.RawQuery = query.Encode()

			req, err := http.NewRequest(http.MethodGet, u.String(), nil)
			require.NoError(t, err)

			params := dto.QueryParams{}
			params.FromRequest(req, tt.defaultLimit)

			assert.Equal(t, tt.expected, params)
		})
	}
}

func TestNewPagination(t *testing.T) {
	p := dto.NewPagination(dto.QueryParams{Page: 2, Limit: 5}, 11)

	assert.Equal(t, dto.Pagination{Page: 2, Limit: 5, TotalItems: 11, TotalPages: 3}, p)
}
