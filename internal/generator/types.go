package generator

import (
	"github.com/rshade/tagpages/internal/content"
	"github.com/rshade/tagpages/internal/pagination"
)

// Mode selects how tag pages are laid out for a run.
type Mode string

// Layout modes.
const (
	ModeFlat      Mode = "flat"
	ModePaginated Mode = "paginated"
)

// DefaultLayout is the template identifier used when none is configured.
const DefaultLayout = "tag_index"

// Options configures a Generator.
type Options struct {
	// Paginate splits each tag across pages of PerPage items.
	Paginate bool

	// PerPage is the maximum number of items on one page. Required when Paginate is set.
	PerPage int

	// Layout is the template identifier passed through to the renderer.
	Layout string

	// Concurrency bounds the number of tags laid out at once. Zero means runtime.NumCPU().
	Concurrency int
}

// Mode reports the layout mode these options select.
func (o Options) Mode() Mode {
	if o.Paginate {
		return ModePaginated
	}
	return ModeFlat
}

// PageDescriptor is one renderer-ready tag index page.
type PageDescriptor struct {
	Tag        string           `json:"tag"                  yaml:"tag"`
	Title      string           `json:"title"                yaml:"title"`
	Page       int              `json:"page"                 yaml:"page"`
	Path       string           `json:"path"                 yaml:"path"`
	Layout     string           `json:"layout"               yaml:"layout"`
	TotalItems int              `json:"total_items"          yaml:"total_items"`
	Items      []content.Item   `json:"items"                yaml:"items"`
	Pagination *pagination.Info `json:"pagination,omitempty" yaml:"pagination,omitempty"`
}

// IsPaginated reports whether the page carries pagination metadata.
func (d PageDescriptor) IsPaginated() bool {
	return d.Pagination != nil
}
