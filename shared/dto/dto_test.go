package dto_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"tandoor/shared/constant"
	"tandoor/shared/dto"
)

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		queryParams    map[string]string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name: "with all valid parameters",
			queryParams: map[string]string{
				"page":     "2",
				"limit":    "20",
				"sort_by":  "name",
				"sort_dir": "ASC",
			},
			defaultRequest: false,
			expected: dto.QueryParams{
				Page:    2,
				Limit:   20,
				SortBy:  "name",
				SortDir: "ASC",
			},
		},
		{
			name:           "defaults applied when nothing is given",
			queryParams:    map[string]string{},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:  constant.DefaultValuePage,
				Limit: constant.DefaultValueLimit,
			},
		},
		{
			name:           "no defaults when disabled",
			queryParams:    map[string]string{},
			defaultRequest: false,
			expected:       dto.QueryParams{},
		},
		{
			name: "invalid numbers fall back to defaults",
			queryParams: map[string]string{
				"page":  "invalid",
				"limit": "-5",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:  constant.DefaultValuePage,
				Limit: constant.DefaultValueLimit,
			},
		},
		{
			name: "sort direction is normalized to upper case",
			queryParams: map[string]string{
				"sort_dir": "desc",
			},
			defaultRequest: false,
			expected: dto.QueryParams{
				SortDir: "DESC",
			},
		},
		{
			name: "unknown sort direction is dropped",
			queryParams: map[string]string{
				"sort_dir": "sideways",
			},
			defaultRequest: false,
			expected:       dto.QueryParams{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := url.Values{}
			for key, value := range tt.queryParams {
				values.Set(key, value)
			}

			req := &http.Request{URL: &url.URL{RawQuery: values.Encode()}}

			params := dto.QueryParams{}
			params.FromRequest(req, tt.defaultRequest)

			assert.Equal(t, tt.expected, params)
		})
	}
}

func TestNewestFirst(t *testing.T) {
	params := dto.NewestFirst(3, 25)

	assert.Equal(t, 3, params.Page)
	assert.Equal(t, 25, params.Limit)
	assert.Equal(t, constant.DefaultValueSortBy, params.SortBy)
	assert.Equal(t, dto.SortDirDesc, params.SortDir)
}

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name       string
		filter     dto.Filter
		wantClause string
		wantArgs   map[string]any
	}{
		{
			name:       "equality with table",
			filter:     dto.Filter{Field: "status", Operator: dto.FilterOperatorEq, Value: "pending", Table: "reservations"},
			wantClause: "reservations.status = :status",
			wantArgs:   map[string]any{"status": "pending"},
		},
		{
			name:       "equality without table",
			filter:     dto.Filter{Field: "available", Operator: dto.FilterOperatorEq, Value: true},
			wantClause: "available = :available",
			wantArgs:   map[string]any{"available": true},
		},
		{
			name:       "custom arg name",
			filter:     dto.Filter{ArgName: "status_filter", Field: "status", Operator: dto.FilterOperatorEq, Value: "pending"},
			wantClause: "status = :status_filter",
			wantArgs:   map[string]any{"status_filter": "pending"},
		},
		{
			name:       "not equal",
			filter:     dto.Filter{Field: "status", Operator: dto.FilterOperatorNotEq, Value: "confirmed"},
			wantClause: "status != :status",
			wantArgs:   map[string]any{"status": "confirmed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clause, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.wantClause, clause)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "status", Operator: dto.FilterOperatorEq, Value: "pending", Table: "reservations"},
			dto.Filter{Field: "guests", Operator: dto.FilterOperatorEq, Value: 4, Table: "reservations"},
		},
	}

	clause, args := group.GetWhereClause()

	assert.Contains(t, clause, "reservations.status = :status")
	assert.Contains(t, clause, "AND")
	assert.Contains(t, clause, "reservations.guests = :guests")
	assert.Equal(t, "pending", args["status"])
	assert.Equal(t, 4, args["guests"])
}

func TestFilterGroup_Empty(t *testing.T) {
	group := dto.FilterGroup{}

	clause, args := group.GetWhereClause()

	assert.Empty(t, clause)
	assert.Empty(t, args)
}
