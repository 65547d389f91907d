package validation

import (
	"math"
	"net/http"

	"github.com/omniwork/contracthub/internal/api/schema"
)

// reserved names every list endpoint understands; everything else is treated as a module-specific filter
var reservedListParameters = map[string]struct{}{
	"page":   {},
	"limit":  {},
	"search": {},
}

// ListParams holds the query parameters shared by every list endpoint.
// Page is 1-based; Filters collects all non-reserved query parameters as free-form
// module-specific filters the endpoint itself is responsible for interpreting.
type ListParams struct {
	Page    int64
	Limit   int64
	Search  string
	Filters map[string]string
}

// List extracts and validates the unified list query parameters out of the given request.
// Omitted parameters fall back to page 1 and the given default limit; the limit is capped at maxLimit.
func List(request *http.Request, defaultLimit, maxLimit int64) (*ListParams, []*schema.Error) {
	var errs []*schema.Error

	page, err := QueryNumber(request, "page", false, 1, 1, math.MaxInt64)
	if err != nil {
		errs = append(errs, err)
	}

	limit, err := QueryNumber(request, "limit", false, defaultLimit, 1, maxLimit)
	if err != nil {
		errs = append(errs, err)
	}

	search, err := QueryString(request, "search", false, "")
	if err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return nil, errs
	}

	params := &ListParams{
		Page:    page,
		Limit:   limit,
		Search:  search,
		Filters: map[string]string{},
	}
	for key, values := range request.URL.Query() {
		if _, reserved := reservedListParameters[key]; reserved {
			continue
		}
		if len(values) > 0 {
			params.Filters[key] = values[0]
		}
	}
	return params, nil
}

// Offset converts the 1-based page into a database row offset
func (params *ListParams) Offset() int64 {
	return (params.Page - 1) * params.Limit
}
