package catalog

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// PageSize is the number of recipes on a catalog page.
const PageSize = 12

// Page describes one slice of an ordered result. Pages are 1-indexed.
type Page struct {
	Number     int   `json:"number"`
	Size       int   `json:"size"`
	TotalPages int   `json:"total_pages"`
	TotalItems int64 `json:"total_items"`
}

// Paginate resolves the requested page against total items. Requests
// outside the range clamp to the first or last page, and an empty result
// still has one (empty) page.
func Paginate(total int64, requested, size int) Page {
	if size <= 0 {
		size = PageSize
	}
	if total < 0 {
		total = 0
	}

	pages := int((total + int64(size) - 1) / int64(size))
	if pages < 1 {
		pages = 1
	}

	number := requested
	if number < 1 {
		number = 1
	}
	if number > pages {
		number = pages
	}

	return Page{
		Number:     number,
		Size:       size,
		TotalPages: pages,
		TotalItems: total,
	}
}

// ParsePage reads a page parameter. Missing or malformed values mean page 1.
// Numbers too large for an int are kept as the largest page so Paginate
// clamps them to the last one.
func ParsePage(raw string) int {
	raw = strings.TrimSpace(raw)
	n, err := strconv.Atoi(raw)
	if errors.Is(err, strconv.ErrRange) && !strings.HasPrefix(raw, "-") {
		return math.MaxInt
	}
	if err != nil {
		return 1
	}
	return n
}

func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

func (p Page) HasPrevious() bool {
	return p.Number > 1
}

func (p Page) HasNext() bool {
	return p.Number < p.TotalPages
}

func (p Page) Previous() int {
	return p.Number - 1
}

func (p Page) Next() int {
	return p.Number + 1
}
