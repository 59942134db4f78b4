package common

import (
	"net/http"
	"strconv"
)

// Page describes one page of a listing.
type Page struct {
	Number int
	Size   int
}

// Skip returns the number of records preceding this page.
func (p Page) Skip() int64 {
	return int64(p.Size) * int64(p.Number-1)
}

// PageFromRequest reads the "page" query parameter, defaulting to the first
// page. The page size is fixed by the caller (configuration).
func PageFromRequest(r *http.Request, size int) Page {
	number, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || number < 1 {
		number = 1
	}
	return Page{Number: number, Size: size}
}

// TotalPages returns the page count needed to hold total records.
func TotalPages(total int64, size int) int {
	if size <= 0 || total <= 0 {
		return 0
	}
	pages := total / int64(size)
	if total%int64(size) != 0 {
		pages++
	}
	return int(pages)
}
