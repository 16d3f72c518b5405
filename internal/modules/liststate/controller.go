// Package liststate is the shared state controller behind the bus and
// booking list views: keyword, sort field and direction, optional date
// filter and a 1-indexed page, all derived into request query parameters.
// One configurable controller replaces the near-duplicate table variants
// of the original views.
package liststate

import "sync"

type SortOrder string

const (
	Asc  SortOrder = "asc"
	Desc SortOrder = "desc"
)

// DefaultSortField is the travel date, ascending, matching the default
// ordering of the bus table.
const DefaultSortField = "travelDate"

// Query is the derived request-parameter set for one list fetch.
type Query struct {
	Page      int
	PerPage   int
	SortBy    string
	SortOrder SortOrder
	Keyword   string
	Date      string
}

type Controller struct {
	mu         sync.Mutex
	sortBy     string
	sortOrder  SortOrder
	keyword    string
	date       string
	page       int
	perPage    int
	totalPages int

	issued   uint64 // newest fetch sequence handed out
	accepted uint64 // newest fetch sequence applied
}

func New(perPage int) *Controller {
	if perPage < 1 {
		perPage = 10
	}
	return &Controller{
		sortBy:    DefaultSortField,
		sortOrder: Asc,
		page:      1,
		perPage:   perPage,
	}
}

func (c *Controller) Query() Query {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Query{
		Page:      c.page,
		PerPage:   c.perPage,
		SortBy:    c.sortBy,
		SortOrder: c.sortOrder,
		Keyword:   c.keyword,
		Date:      c.date,
	}
}

// SetKeyword changes the free-text filter. The page deliberately stays
// where it is; only ClearFilters resets it.
func (c *Controller) SetKeyword(keyword string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.keyword = keyword
}

func (c *Controller) SetDate(date string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.date = date
}

func (c *Controller) SetSortBy(field string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sortBy = field
}

func (c *Controller) ToggleSortOrder() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sortOrder == Asc {
		c.sortOrder = Desc
	} else {
		c.sortOrder = Asc
	}
}

func (c *Controller) ClearFilters() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.keyword = ""
	c.date = ""
	c.page = 1
}

func (c *Controller) Page() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

func (c *Controller) TotalPages() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totalPages
}

func (c *Controller) CanPrev() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page > 1
}

func (c *Controller) CanNext() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page < c.totalPages
}

// NextPage and PrevPage move inside [1, totalPages]; at either boundary
// they are no-ops, which is what keeps the matching controls disabled.
func (c *Controller) NextPage() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.page < c.totalPages {
		c.page++
	}
}

func (c *Controller) PrevPage() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.page > 1 {
		c.page--
	}
}

// BeginFetch hands out a sequence number for a fetch about to be issued.
// Responses must come back through Apply with the same number; anything
// older than the newest issued fetch is discarded, so a slow response for
// an earlier filter set can never overwrite a later one's result.
func (c *Controller) BeginFetch() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.issued++
	return c.issued
}

// Apply records a fetch result's pagination metadata. It reports whether
// the response is current; stale responses leave the state untouched.
func (c *Controller) Apply(seq uint64, totalPages int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if seq < c.issued || seq <= c.accepted {
		return false
	}
	c.accepted = seq
	if totalPages < 0 {
		totalPages = 0
	}
	c.totalPages = totalPages
	if c.page > totalPages && totalPages > 0 {
		c.page = totalPages
	}
	return true
}
