package pagination

import "fmt"

// Pagination defaults and limits.
const (
	DefaultPerPage = 10
	MinPerPage     = 1
	FirstPage      = 1
)

// PageCount returns the number of pages needed to show itemCount items with
// perPage items per page. An empty group still spans one page so every tag
// gets an index. A negative itemCount is treated as zero.
func PageCount(itemCount, perPage int) (int, error) {
	if err := ValidatePerPage(perPage); err != nil {
		return 0, err
	}
	if itemCount <= 0 {
		return FirstPage, nil
	}
	pages := itemCount / perPage
	if itemCount%perPage > 0 {
		pages++
	}
	return pages, nil
}

// ValidatePerPage rejects a per-page size below MinPerPage with
// ErrInvalidConfiguration.
func ValidatePerPage(perPage int) error {
	if perPage < MinPerPage {
		return fmt.Errorf("%w: per_page must be >= %d when paginating, got %d",
			ErrInvalidConfiguration, MinPerPage, perPage)
	}
	return nil
}
