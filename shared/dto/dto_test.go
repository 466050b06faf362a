package dto_test

import (
	"hotel/shared/dto"
	"hotel/shared/failure"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		queryParams    map[string]string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name:           "with all valid parameters",
			queryParams:    map[string]string{"page": "2", "limit": "20"},
			defaultRequest: false,
			expected:       dto.QueryParams{Page: 2, Limit: 20},
		},
		{
			name:           "with invalid values",
			queryParams:    map[string]string{"page": "-1", "limit": "abc"},
			defaultRequest: false,
			expected:       dto.QueryParams{},
		},
		{
			name:           "with defaults",
			queryParams:    map[string]string{},
			defaultRequest: true,
			expected:       dto.QueryParams{Page: 1, Limit: 10},
		},
		{
			name:           "defaults keep explicit values",
			queryParams:    map[string]string{"limit": "5"},
			defaultRequest: true,
			expected:       dto.QueryParams{Page: 1, Limit: 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := url.Values{}
			for k, v := range tt.queryParams {
				values.Set(k, v)
			}

			req := &http.Request{URL: &url.URL{RawQuery: values.Encode()}}

			var q dto.QueryParams
			q.FromRequest(req, tt.defaultRequest)

			assert.Equal(t, tt.expected, q)
		})
	}
}

func TestDateRange_Parse(t *testing.T) {
	checkin, checkout, err := dto.DateRange{Checkin: "2024-05-01", Checkout: "2024-05-03"}.Parse()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), checkin)
	assert.Equal(t, time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC), checkout)

	tests := []dto.DateRange{
		{Checkin: "2024-05-03", Checkout: "2024-05-03"},
		{Checkin: "2024-05-04", Checkout: "2024-05-03"},
		{Checkin: "05/01/2024", Checkout: "2024-05-03"},
		{Checkin: "2024-05-01", Checkout: ""},
	}

	for _, tt := range tests {
		_, _, err := tt.Parse()
		assert.True(t, failure.IsInvalidArgument(err), tt)
	}
}

func TestDateRange_FromRequest(t *testing.T) {
	req := &http.Request{URL: &url.URL{RawQuery: "checkin=2024-05-01&checkout=2024-05-03"}}

	var d dto.DateRange
	d.FromRequest(req)

	assert.Equal(t, dto.DateRange{Checkin: "2024-05-01", Checkout: "2024-05-03"}, d)
}
