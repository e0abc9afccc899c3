package helpers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10

	// MaxPage and MaxLimit keep (page-1)*limit and page+1 inside int64.
	MaxPage  = 1 << 30
	MaxLimit = 1 << 20
)

// Page is a parsed page/limit pair from the query string.
type Page struct {
	Page  int
	Limit int
}

// Offset is the number of rows before this page.
func (p Page) Offset() uint64 {
	return uint64((p.Page - 1) * p.Limit)
}

// NewPage normalizes raw page and limit values. Anything below 1 falls back
// to the defaults; values above the maximums are clamped.
func NewPage(page, limit int) Page {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	page = min(page, MaxPage)
	limit = min(limit, MaxLimit)
	return Page{Page: page, Limit: limit}
}

// ParsePage reads ?page= and ?limit= from the request. Non-numeric values
// are treated as missing.
func ParsePage(c *gin.Context) Page {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil {
		page = DefaultPage
	}
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil {
		limit = DefaultLimit
	}
	return NewPage(page, limit)
}

// NextPage returns page+1 when the read came back exactly full, nil otherwise.
// With unbounded reads the count is the whole table, so a next page is only
// announced when the table happens to hold exactly limit rows.
func NextPage(count int, p Page) *int {
	if count != p.Limit {
		return nil
	}
	next := p.Page + 1
	return &next
}
