// Package pagination implements the list-endpoint paging convention shared by
// posts and user listings.
package pagination

import (
	"net/http"
	"strconv"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Params are the parsed page/limit query parameters.
type Params struct {
	Page  int
	Limit int
}

// Parse reads page and limit from the query string, falling back to the
// defaults on missing or malformed values.
func Parse(r *http.Request) Params {
	p := Params{Page: DefaultPage, Limit: DefaultLimit}

	if v := r.URL.Query().Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			p.Page = n
		}
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			p.Limit = n
		}
	}
	return p
}

// Offset returns the row offset for the current page.
func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Meta describes a page of results.
type Meta struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalItems  int64 `json:"totalItems"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

// NewMeta computes paging metadata for a total item count.
// totalPages = ceil(totalItems / limit).
func NewMeta(p Params, totalItems int64) Meta {
	totalPages := int((totalItems + int64(p.Limit) - 1) / int64(p.Limit))
	return Meta{
		CurrentPage: p.Page,
		TotalPages:  totalPages,
		TotalItems:  totalItems,
		HasNextPage: p.Page < totalPages,
		HasPrevPage: p.Page > 1,
	}
}
