package entity

import "strings"

// SortKey names a stable ordering of the lecture catalog.
type SortKey string

const (
	SortLatest     SortKey = "registerDate"
	SortOldest     SortKey = "oldest"
	SortSeries     SortKey = "series"
	SortInstructor SortKey = "instructor"

	DefaultSort = SortLatest
)

var sortAliases = map[string]SortKey{
	"registerdate": SortLatest,
	"latest":       SortLatest,
	"newest":       SortLatest,
	"등록일순":         SortLatest,
	"oldest":       SortOldest,
	"series":       SortSeries,
	"강의순":          SortSeries,
	"instructor":   SortInstructor,
	"강사순":          SortInstructor,
}

// ParseSortKey resolves a client-supplied sort name. Unknown or empty names
// fall back to DefaultSort.
func ParseSortKey(s string) SortKey {
	if key, ok := sortAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return key
	}
	return DefaultSort
}

// ListQuery is a listing request as received from a client, before
// boundary normalisation.
type ListQuery struct {
	Category string
	Page     int
	PageSize int
	SortBy   string
}

// CategoryFilter returns the exact-match category, or "" for no filter.
func (q ListQuery) CategoryFilter() string {
	c := strings.TrimSpace(q.Category)
	if strings.EqualFold(c, CategoryAll) {
		return ""
	}
	return c
}

// DisplayCategory is the category echoed back in pagination metadata.
func (q ListQuery) DisplayCategory() string {
	if c := q.CategoryFilter(); c != "" {
		return c
	}
	return CategoryAll
}

type Pagination struct {
	CurrentPage int     `json:"currentPage"`
	TotalPages  int     `json:"totalPages"`
	Category    string  `json:"category"`
	PageSize    int     `json:"pageSize"`
	TotalItems  int64   `json:"totalItems"`
	SortBy      SortKey `json:"sortBy"`
}

type LecturePage struct {
	Items      []LectureSummary `json:"items"`
	Pagination Pagination       `json:"pagination"`
}
