package shared_test

import (
	"rimbest/shared"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *bool
	}{
		{name: "empty string returns nil", input: "", expected: nil},
		{name: "valid true string", input: "true", expected: boolPtr(true)},
		{name: "valid 0 string", input: "0", expected: boolPtr(false)},
		{name: "invalid string returns nil", input: "invalid", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.ConvertStringToBool(tt.input))
		})
	}
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "flight:get:12", shared.BuildCacheKey("flight:get", "12"))
	assert.Equal(t, "limiter:10.0.0.1:curl", shared.BuildCacheKey("limiter", "10.0.0.1", "", "curl"))
	assert.Equal(t, "airline:gets", shared.BuildCacheKey("airline:gets"))
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{name: "zero total returns 1", total: 0, limit: 5, expected: 1},
		{name: "zero limit returns 1", total: 100, limit: 0, expected: 1},
		{name: "exact division", total: 10, limit: 5, expected: 2},
		{name: "division with remainder", total: 11, limit: 5, expected: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	tests := []struct {
		name     string
		page     int
		limit    int
		expected []int
	}{
		{name: "first page", page: 1, limit: 5, expected: []int{1, 2, 3, 4, 5}},
		{name: "last partial page", page: 2, limit: 5, expected: []int{6, 7}},
		{name: "page past the end", page: 3, limit: 5, expected: []int{}},
		{name: "page below one is clamped", page: 0, limit: 5, expected: []int{1, 2, 3, 4, 5}},
		{name: "no limit returns everything", page: 1, limit: 0, expected: items},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.Paginate(items, tt.page, tt.limit))
		})
	}
}

func boolPtr(b bool) *bool {
	return &b
}
