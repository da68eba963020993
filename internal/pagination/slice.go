package pagination

// Bounds returns the half-open window [start, end) of a total-length sequence
// shown on the given 1-based page. Pages past the end, and non-positive page
// or perPage values, yield the empty window (total, total).
//
//nolint:nonamedreturns // Named returns document the window edges.
func Bounds(total, perPage, page int) (start, end int) {
	if total <= 0 {
		return 0, 0
	}
	if perPage < MinPerPage || page < FirstPage {
		return total, total
	}

	start = (page - 1) * perPage
	if start >= total {
		return total, total
	}

	end = start + perPage
	if end > total {
		end = total
	}
	return start, end
}

// Slice returns the items shown on the given 1-based page, preserving order.
// It never fails: an out-of-range page returns an empty slice.
func Slice[T any](items []T, perPage, page int) []T {
	start, end := Bounds(len(items), perPage, page)
	if start == end {
		return []T{}
	}
	return items[start:end]
}
