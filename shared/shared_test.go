package shared_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"transbook/shared"
	"transbook/shared/dto"
)

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "booking:get:9", shared.BuildCacheKey("booking:get", "9"))
}

func TestBuildCacheKeyWithQuery_Deterministic(t *testing.T) {
	params := dto.QueryParams{SortBy: "created_at", SortDir: dto.SortDirDesc}
	filter := dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: "status", Operator: dto.FilterOperatorEq, Value: "pending", Table: "bookings"},
			dto.Filter{Field: "user_id", Operator: dto.FilterOperatorEq, Value: 5, Table: "bookings"},
		},
	}

	first := shared.BuildCacheKeyWithQuery("booking:gets", params, filter)

	for i := 0; i < 20; i++ {
		assert.Equal(t, first, shared.BuildCacheKeyWithQuery("booking:gets", params, filter))
	}
}

func TestBuildCacheKeyWithQuery_DistinguishesQueries(t *testing.T) {
	base := dto.QueryParams{SortBy: "created_at", SortDir: dto.SortDirDesc}
	other := dto.QueryParams{SortBy: "booking_date", SortDir: dto.SortDirDesc}

	keyA := shared.BuildCacheKeyWithQuery("booking:gets", base, dto.FilterGroup{})
	keyB := shared.BuildCacheKeyWithQuery("booking:gets", other, dto.FilterGroup{})

	assert.NotEqual(t, keyA, keyB)
}

func TestFilterByID(t *testing.T) {
	group := shared.FilterByID(int64(9), "id", "bookings")

	assert.Len(t, group.Filters, 1)

	filter, ok := group.Filters[0].(dto.Filter)
	assert.True(t, ok)
	assert.Equal(t, "id", filter.Field)
	assert.Equal(t, int64(9), filter.Value)
	assert.Equal(t, dto.FilterOperatorEq, filter.Operator)
	assert.Equal(t, "bookings", filter.Table)
}
