package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPaginatedResponse(t *testing.T) {
	t.Run("computes the total page count", func(t *testing.T) {
		cases := []struct {
			total      int64
			limit      int64
			totalPages int64
		}{
			{total: 0, limit: 20, totalPages: 0},
			{total: 1, limit: 20, totalPages: 1},
			{total: 20, limit: 20, totalPages: 1},
			{total: 21, limit: 20, totalPages: 2},
			{total: 5, limit: 2, totalPages: 3},
			{total: 101, limit: 10, totalPages: 11},
		}
		for _, c := range cases {
			response, err := BuildPaginatedResponse([]string{}, 1, c.limit, c.total)
			require.NoError(t, err)
			assert.Equal(t, c.totalPages, response.Pagination.TotalPages, "total=%d limit=%d", c.total, c.limit)
		}
	})

	t.Run("is free of hidden state", func(t *testing.T) {
		first, err := BuildPaginatedResponse([]string{"a", "b"}, 2, 2, 5)
		require.NoError(t, err)
		second, err := BuildPaginatedResponse([]string{"a", "b"}, 2, 2, 5)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("wraps the items and metadata", func(t *testing.T) {
		response, err := BuildPaginatedResponse([]string{"a", "b"}, 2, 2, 5)
		require.NoError(t, err)
		assert.True(t, response.Success)
		assert.Equal(t, []string{"a", "b"}, response.Data)
		assert.Equal(t, &PaginationMetadata{
			Page:       2,
			Limit:      2,
			Total:      5,
			TotalPages: 3,
		}, response.Pagination)
	})

	t.Run("rejects out-of-range input", func(t *testing.T) {
		_, err := BuildPaginatedResponse([]string{"a"}, 0, 20, 100)
		assert.ErrorIs(t, err, ErrInvalidArgument)

		_, err = BuildPaginatedResponse([]string{"a"}, 1, 0, 100)
		assert.ErrorIs(t, err, ErrInvalidArgument)

		_, err = BuildPaginatedResponse([]string{"a"}, 1, 20, -1)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("handles an empty first page", func(t *testing.T) {
		response, err := BuildPaginatedResponse[string](nil, 1, 20, 0)
		require.NoError(t, err)
		assert.Equal(t, []string{}, response.Data)
		assert.Zero(t, response.Pagination.TotalPages)

		raw, err := json.Marshal(response)
		require.NoError(t, err)
		assert.JSONEq(t, `{"success":true,"data":[],"pagination":{"page":1,"limit":20,"total":0,"totalPages":0}}`, string(raw))
	})

	t.Run("handles an exactly full page", func(t *testing.T) {
		items := make([]int, 20)
		response, err := BuildPaginatedResponse(items, 1, 20, 20)
		require.NoError(t, err)
		assert.Equal(t, int64(1), response.Pagination.TotalPages)
		assert.Len(t, response.Data, 20)
	})
}
