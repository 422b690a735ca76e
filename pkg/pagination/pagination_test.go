package pagination

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	limits := Limits{DefaultSize: 5, MaxSize: 20}

	cases := []struct {
		name           string
		page, pageSize int
		want           Request
	}{
		{"regular", 3, 4, Request{Page: 3, PageSize: 4}},
		{"zero page", 0, 4, Request{Page: 1, PageSize: 4}},
		{"negative page", -7, 4, Request{Page: 1, PageSize: 4}},
		{"zero size", 2, 0, Request{Page: 2, PageSize: 5}},
		{"negative size", 2, -1, Request{Page: 2, PageSize: 5}},
		{"oversized", 1, 500, Request{Page: 1, PageSize: 20}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, limits.Normalize(tc.page, tc.pageSize))
		})
	}
}

func TestNormalize_BrokenLimitsFallBack(t *testing.T) {
	req := Limits{}.Normalize(1, 0)
	assert.Equal(t, DefaultLimits.DefaultSize, req.PageSize)
}

func TestNormalize_HugePageKeepsOffsetPositive(t *testing.T) {
	for _, size := range []int{1, 5, 50} {
		for _, page := range []int{math.MaxInt/4 + 2, math.MaxInt - 1, math.MaxInt} {
			req := Limits{DefaultSize: 5, MaxSize: 50}.Normalize(page, size)
			assert.Greater(t, req.Offset(), 0, "page=%d size=%d", page, size)
			assert.Greater(t, req.Page, 1)
		}
	}
}

func TestOffsetAndLimit(t *testing.T) {
	req := Request{Page: 3, PageSize: 5}
	assert.Equal(t, 10, req.Offset())
	assert.Equal(t, 5, req.Limit())
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 5))
	assert.Equal(t, 1, TotalPages(1, 5))
	assert.Equal(t, 1, TotalPages(5, 5))
	assert.Equal(t, 2, TotalPages(6, 5))
	assert.Equal(t, 3, TotalPages(11, 4))
	assert.Equal(t, 0, TotalPages(10, 0))
}

// Walking every page by offset must reproduce the collection exactly once.
func TestPagesCoverCollection(t *testing.T) {
	for total := 0; total <= 23; total++ {
		for size := 1; size <= 7; size++ {
			seen := 0
			for page := 1; page <= TotalPages(int64(total), size); page++ {
				req := Request{Page: page, PageSize: size}
				assert.Less(t, req.Offset(), total)
				n := total - req.Offset()
				if n > req.Limit() {
					n = req.Limit()
				}
				assert.Equal(t, seen, req.Offset(), "total=%d size=%d page=%d", total, size, page)
				seen += n
			}
			assert.Equal(t, total, seen, "total=%d size=%d", total, size)
		}
	}
}
