// Package pagination builds compact page-number sequences for list surfaces.
package pagination

import "strconv"

// Ellipsis marks a collapsed run of pages in a range.
const Ellipsis = "..."

// delta is how many pages are shown on each side of the current page.
const delta = 2

// Range returns the page numbers to display for the given current page and
// total page count: always page 1 and the last page, every page within delta
// of the current page, and an ellipsis marker wherever the gap between two
// neighbours is larger than one.
func Range(currentPage, totalPages int) []string {
	if totalPages < 1 {
		totalPages = 1
	}
	if currentPage < 1 {
		currentPage = 1
	}
	if currentPage > totalPages {
		currentPage = totalPages
	}

	pages := []int{1}

	lo := max(2, currentPage-delta)
	hi := min(totalPages-1, currentPage+delta)
	for i := lo; i <= hi; i++ {
		pages = append(pages, i)
	}

	if totalPages > 1 {
		pages = append(pages, totalPages)
	}

	out := make([]string, 0, len(pages)+2)
	prev := 0
	for _, p := range pages {
		if prev != 0 && p-prev > 1 {
			out = append(out, Ellipsis)
		}
		out = append(out, strconv.Itoa(p))
		prev = p
	}

	return out
}
