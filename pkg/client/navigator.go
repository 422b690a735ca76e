package client

import "context"

const CategoryAll = "all"

// Lister fetches one page of the lecture catalog.
type Lister interface {
	ListLectures(ctx context.Context, opts ListOptions) (*LecturePage, error)
}

// Navigator keeps the browsing state of the catalog: the category, sort
// order and page being viewed. State only changes when a fetch succeeds.
type Navigator struct {
	lister   Lister
	pageSize int

	category string
	sortBy   string
	page     int
	current  *LecturePage
}

func NewNavigator(lister Lister, pageSize int) *Navigator {
	return &Navigator{
		lister:   lister,
		pageSize: pageSize,
		category: CategoryAll,
		page:     1,
	}
}

func (n *Navigator) Category() string { return n.category }
func (n *Navigator) Sort() string     { return n.sortBy }
func (n *Navigator) Page() int        { return n.page }

// Current returns the last fetched page, nil before the first fetch.
func (n *Navigator) Current() *LecturePage { return n.current }

// Open switches to category and shows its first page.
func (n *Navigator) Open(ctx context.Context, category string) (*LecturePage, error) {
	if category == "" {
		category = CategoryAll
	}
	return n.fetch(ctx, category, n.sortBy, 1)
}

// SortBy reorders the current category and returns to its first page.
func (n *Navigator) SortBy(ctx context.Context, key string) (*LecturePage, error) {
	return n.fetch(ctx, n.category, key, 1)
}

func (n *Navigator) Goto(ctx context.Context, page int) (*LecturePage, error) {
	if page < 1 {
		page = 1
	}
	return n.fetch(ctx, n.category, n.sortBy, page)
}

func (n *Navigator) HasNext() bool {
	return n.current != nil && n.page < n.current.Pagination.TotalPages
}

func (n *Navigator) HasPrev() bool {
	return n.page > 1
}

// Next moves one page forward. On the last page it returns the current
// page without fetching.
func (n *Navigator) Next(ctx context.Context) (*LecturePage, error) {
	if n.current != nil && !n.HasNext() {
		return n.current, nil
	}
	return n.fetch(ctx, n.category, n.sortBy, n.page+1)
}

// Prev moves one page back. On the first page it returns the current page
// without fetching, once one has been loaded.
func (n *Navigator) Prev(ctx context.Context) (*LecturePage, error) {
	if !n.HasPrev() && n.current != nil {
		return n.current, nil
	}
	page := n.page - 1
	if page < 1 {
		page = 1
	}
	return n.fetch(ctx, n.category, n.sortBy, page)
}

func (n *Navigator) fetch(ctx context.Context, category, sortBy string, page int) (*LecturePage, error) {
	result, err := n.lister.ListLectures(ctx, ListOptions{
		Category: category,
		Page:     page,
		PageSize: n.pageSize,
		SortBy:   sortBy,
	})
	if err != nil {
		return nil, err
	}

	n.category, n.sortBy, n.page, n.current = category, sortBy, page, result
	if result.Pagination.CurrentPage > 0 {
		n.page = result.Pagination.CurrentPage
	}
	return result, nil
}
