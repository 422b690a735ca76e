// Package pagination implements offset paging over a stable sort order.
package pagination

import "math"

// Limits bounds the page size a caller may request.
type Limits struct {
	DefaultSize int
	MaxSize     int
}

// DefaultLimits matches the list views of the web client.
var DefaultLimits = Limits{DefaultSize: 5, MaxSize: 50}

// Request is a normalised page request. Build it with Normalize.
type Request struct {
	Page     int
	PageSize int
}

// Normalize applies the boundary policy: page < 1 becomes 1, a page size
// below 1 becomes the default and one above the maximum is capped. Pages
// whose offset would not fit in an int are lowered until it does.
func (l Limits) Normalize(page, pageSize int) Request {
	if l.DefaultSize < 1 {
		l.DefaultSize = DefaultLimits.DefaultSize
	}
	if l.MaxSize < l.DefaultSize {
		l.MaxSize = l.DefaultSize
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = l.DefaultSize
	}
	if pageSize > l.MaxSize {
		pageSize = l.MaxSize
	}
	// Keeps Offset from overflowing; such a page is past any real collection.
	if page-1 > math.MaxInt/pageSize {
		page = math.MaxInt / pageSize
	}
	return Request{Page: page, PageSize: pageSize}
}

// Offset is the number of rows to skip.
func (r Request) Offset() int {
	return (r.Page - 1) * r.PageSize
}

// Limit is the number of rows to fetch.
func (r Request) Limit() int {
	return r.PageSize
}

// TotalPages is ceil(total / pageSize); zero when nothing matches.
func TotalPages(total int64, pageSize int) int {
	if total <= 0 || pageSize < 1 {
		return 0
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}
