package schema

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned whenever pagination input is outside of its allowed range
var ErrInvalidArgument = errors.New("invalid argument")

// PaginatedResponse represents the unified envelope wrapping every collection API result
type PaginatedResponse[T any] struct {
	Success    bool                `json:"success"`
	Data       []T                 `json:"data"`
	Pagination *PaginationMetadata `json:"pagination"`
}

// PaginationMetadata represents the metadata present in a PaginatedResponse
type PaginationMetadata struct {
	Page       int64 `json:"page"`
	Limit      int64 `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

// BuildPaginatedResponse builds a unified paginated API response.
// The page is 1-based and the limit has to be positive; total holds the amount of items matching the
// corresponding query before pagination was applied.
func BuildPaginatedResponse[T any](data []T, page, limit, total int64) (*PaginatedResponse[T], error) {
	if page < 1 {
		return nil, fmt.Errorf("%w: page has to be >= 1 (got %d)", ErrInvalidArgument, page)
	}
	if limit < 1 {
		return nil, fmt.Errorf("%w: limit has to be >= 1 (got %d)", ErrInvalidArgument, limit)
	}
	if total < 0 {
		return nil, fmt.Errorf("%w: total has to be >= 0 (got %d)", ErrInvalidArgument, total)
	}
	if data == nil {
		data = []T{}
	}
	return &PaginatedResponse[T]{
		Success: true,
		Data:    data,
		Pagination: &PaginationMetadata{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: (total + limit - 1) / limit,
		},
	}, nil
}
