package dto

import (
	"errors"
	"net/url"
	"strconv"

	"clinic-management-api/internal/domain/entity"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

var (
	ErrInvalidPage  = errors.New("page must be an integer greater than or equal to 1")
	ErrInvalidLimit = errors.New("limit must be an integer between 1 and 100")
)

// ListQueryOptions describes the sortable surface of one resource. SortColumns
// maps wire-level sortBy names onto real column names; anything not in the map
// falls back to the default, so column names are never taken from the caller.
type ListQueryOptions struct {
	DefaultSortBy    string
	DefaultSortOrder string
	SortColumns      map[string]string
}

// ParseListQuery validates pagination/search/sort query parameters. Out of
// range page or limit values are errors, not clamped; defaults apply only when
// the parameter is absent.
func ParseListQuery(values url.Values, opts ListQueryOptions) (entity.ListQuery, error) {
	q := entity.ListQuery{
		Page:      defaultPage,
		Limit:     defaultLimit,
		Search:    values.Get("search"),
		SortBy:    opts.DefaultSortBy,
		SortOrder: opts.DefaultSortOrder,
	}
	if q.SortOrder == "" {
		q.SortOrder = "asc"
	}

	if raw := values.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return entity.ListQuery{}, ErrInvalidPage
		}
		q.Page = page
	}

	if raw := values.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > maxLimit {
			return entity.ListQuery{}, ErrInvalidLimit
		}
		q.Limit = limit
	}

	if raw := values.Get("sortBy"); raw != "" {
		if column, ok := opts.SortColumns[raw]; ok {
			q.SortBy = column
		}
	}

	if raw := values.Get("sortOrder"); raw == "asc" || raw == "desc" {
		q.SortOrder = raw
	}

	return q, nil
}
