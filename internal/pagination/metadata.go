package pagination

// Info contains the navigation and counting metadata of one paginated page.
// Nil pointers mark absent links (first page has no previous, last page no next).
type Info struct {
	PerPage      int     `json:"per_page"           yaml:"per_page"`
	TotalPages   int     `json:"total_pages"        yaml:"total_pages"`
	TotalItems   int     `json:"total_posts"        yaml:"total_posts"`
	PreviousPage *int    `json:"previous_page"      yaml:"previous_page"`
	NextPage     *int    `json:"next_page"          yaml:"next_page"`
	PreviousPath *string `json:"previous_page_path" yaml:"previous_page_path"`
	NextPath     *string `json:"next_page_path"     yaml:"next_page_path"`
}

// NewInfo builds the metadata for one page from its link and the tag totals.
func NewInfo(link Link, perPage, totalPages, totalItems int) Info {
	return Info{
		PerPage:      perPage,
		TotalPages:   totalPages,
		TotalItems:   totalItems,
		PreviousPage: link.PreviousPage,
		NextPage:     link.NextPage,
		PreviousPath: link.PreviousPath,
		NextPath:     link.NextPath,
	}
}

// HasPrevious reports whether the page links to a predecessor.
func (i Info) HasPrevious() bool { return i.PreviousPage != nil && i.PreviousPath != nil }

// HasNext reports whether the page links to a successor.
func (i Info) HasNext() bool { return i.NextPage != nil && i.NextPath != nil }
