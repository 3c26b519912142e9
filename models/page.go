package models

import "math"

const (
	DefaultPage  = 1
	DefaultLimit = 8
	MaxLimit     = 100

	// MaxPage keeps (page-1)*limit within int for every allowed limit.
	MaxPage = math.MaxInt / MaxLimit
)

// PageRequest selects one page of the archive listing. Pages start at 1.
type PageRequest struct {
	Page  int
	Limit int
}

// NewPageRequest applies defaults to missing or non-positive values and caps
// the page and the limit.
func NewPageRequest(page, limit int) PageRequest {
	if page <= 0 {
		page = DefaultPage
	}
	if page > MaxPage {
		page = MaxPage
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return PageRequest{Page: page, Limit: limit}
}

// Offset is the number of records before p. A request that did not come
// from NewPageRequest and would overflow reports offset 0.
func (p PageRequest) Offset() int {
	if p.Page <= 1 || p.Limit <= 0 || p.Page-1 > math.MaxInt/p.Limit {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// ListResult is the response envelope of the listing endpoints.
type ListResult struct {
	Data  []Totenbild `json:"data"`
	Total int         `json:"total"`
}

// HasMore reports whether pages beyond p exist.
func (r ListResult) HasMore(p PageRequest) bool {
	return p.Offset()+len(r.Data) < r.Total
}
