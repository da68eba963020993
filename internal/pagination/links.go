package pagination

import "strconv"

// IndexName is the file name of a tag's first page. Later pages are named
// page{n}.html; there is no page1.html alias.
const IndexName = "index.html"

// Link is one node of a tag's navigation graph.
type Link struct {
	Page         int
	Path         string
	PreviousPage *int
	NextPage     *int
	PreviousPath *string
	NextPath     *string
}

// PagePath returns the output file name of the given 1-based page.
func PagePath(page int) string {
	if page <= FirstPage {
		return IndexName
	}
	return "page" + strconv.Itoa(page) + ".html"
}

// BuildLinks returns one Link per page, in ascending page order. Paths are
// assigned first and neighbours resolved from that table afterwards, so a
// link always points at the exact path of the adjacent page.
func BuildLinks(totalPages int) []Link {
	if totalPages < FirstPage {
		totalPages = FirstPage
	}

	paths := make([]string, totalPages)
	for i := range paths {
		paths[i] = PagePath(i + 1)
	}

	links := make([]Link, totalPages)
	for i := range links {
		link := Link{Page: i + 1, Path: paths[i]}
		if i > 0 {
			link.PreviousPage = intPtr(i)
			link.PreviousPath = strPtr(paths[i-1])
		}
		if i < totalPages-1 {
			link.NextPage = intPtr(i + 2)
			link.NextPath = strPtr(paths[i+1])
		}
		links[i] = link
	}
	return links
}

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }
