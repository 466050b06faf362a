package shared_test

import (
	"context"
	"errors"
	"hotel/shared"
	"hotel/shared/cache/mocks"
	"hotel/shared/failure"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestConvertStringToInt(t *testing.T) {
	n, err := shared.ConvertStringToInt("101")
	assert.NoError(t, err)
	assert.Equal(t, 101, n)

	_, err = shared.ConvertStringToInt("1o1")
	assert.True(t, failure.IsInvalidArgument(err))
}

func TestConvertStringToDate(t *testing.T) {
	date, err := shared.ConvertStringToDate("2024-02-29")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), date)

	for _, value := range []string{"", "2023-02-29", "01/03/2024"} {
		_, err = shared.ConvertStringToDate(value)
		assert.True(t, failure.IsInvalidArgument(err), value)
	}
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name  string
		total int
		limit int
		want  int
	}{
		{name: "no data", total: 0, limit: 10, want: 1},
		{name: "exact", total: 20, limit: 10, want: 2},
		{name: "remainder", total: 21, limit: 10, want: 3},
		{name: "invalid limit", total: 5, limit: 0, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, []int{1, 2}, shared.Paginate(items, 1, 2))
	assert.Equal(t, []int{5}, shared.Paginate(items, 3, 2))
	assert.Empty(t, shared.Paginate(items, 4, 2))
	assert.Equal(t, items, shared.Paginate(items, 0, 0))
}

func TestRoundMoney(t *testing.T) {
	assert.InDelta(t, 121.5, shared.RoundMoney(121.5), 1e-9)
	assert.InDelta(t, 33.34, shared.RoundMoney(33.335000001), 1e-9)
	assert.InDelta(t, -67.5, shared.RoundMoney(-67.5), 1e-9)
	assert.Equal(t, "50.00", shared.FormatMoney(50))
	assert.Equal(t, "-135.00", shared.FormatMoney(-135))
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "room:available:double:2024-01-01:2024-01-03",
		shared.BuildCacheKey("room:available", "double", "2024-01-01", "2024-01-03"))
	assert.Equal(t, "room:gets", shared.BuildCacheKey("room:gets"))
}

func TestInvalidateCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := mocks.NewMockRedisCache(ctrl)
	mockCache.EXPECT().Clear(gomock.Any(), "booking:on:*").Return(nil)
	mockCache.EXPECT().Clear(gomock.Any(), "room:available:*").Return(errors.New("redis down"))

	shared.InvalidateCaches(context.Background(), mockCache, "booking:on")
	shared.InvalidateCaches(context.Background(), mockCache, "room:available")
}
