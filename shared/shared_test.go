package shared_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"tandoor/shared"
	cacheMocks "tandoor/shared/cache/mocks"
	"tandoor/shared/dto"
)

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  *bool
	}{
		{name: "true value", value: "true", want: boolPtr(true)},
		{name: "false value", value: "false", want: boolPtr(false)},
		{name: "numeric true", value: "1", want: boolPtr(true)},
		{name: "empty string", value: "", want: nil},
		{name: "garbage", value: "maybe", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shared.ConvertStringToBool(tt.value)

			if tt.want == nil {
				assert.Nil(t, got)

				return
			}

			assert.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name  string
		total int
		limit int
		want  int
	}{
		{name: "exact division", total: 20, limit: 10, want: 2},
		{name: "remainder rounds up", total: 25, limit: 10, want: 3},
		{name: "zero total", total: 0, limit: 10, want: 1},
		{name: "zero limit", total: 20, limit: 0, want: 1},
		{name: "fewer rows than a page", total: 3, limit: 10, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "menu:get", shared.BuildCacheKey("menu:get"))
	assert.Equal(t, "menu:get:starters", shared.BuildCacheKey("menu:get", "starters"))
	assert.Equal(t, "menu:get:starters:true", shared.BuildCacheKey("menu:get", "starters", "true"))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 2, Limit: 10, SortBy: "created_at", SortDir: dto.SortDirDesc}

	plain := shared.BuildCacheKeyWithQuery("reservation:gets", params, dto.FilterGroup{})
	assert.Contains(t, plain, "reservation:gets:2:10:created_at:DESC")

	filtered := shared.BuildCacheKeyWithQuery("reservation:gets", params, dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "status", Operator: dto.FilterOperatorEq, Value: "pending"},
		},
	})

	assert.NotEqual(t, plain, filtered)
	assert.Contains(t, filtered, "status=pending")
}

func TestInvalidateCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().
		Clear(gomock.Any(), "reservation:gets:*").
		Return(nil)

	shared.InvalidateCaches(context.Background(), mockCache, "reservation:gets")

	// Clear failures are swallowed.
	mockCache.EXPECT().
		Clear(gomock.Any(), "reservation:gets:*").
		Return(errors.New("connection refused"))

	shared.InvalidateCaches(context.Background(), mockCache, "reservation:gets")
}

func TestFilterByID(t *testing.T) {
	filter := shared.FilterByID(42, "id", "reservations")

	where, args := filter.GetWhereClause()

	assert.Contains(t, where, "reservations.id = :id")
	assert.Equal(t, int64(42), args["id"])
}

func boolPtr(b bool) *bool {
	return &b
}
