package generator

import (
	"context"
	"fmt"
	"runtime"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/rshade/tagpages/internal/content"
	"github.com/rshade/tagpages/internal/pagination"
	"github.com/rshade/tagpages/internal/tags"
)

// Generator lays out tag index pages for a fixed set of options.
type Generator struct {
	opts   Options
	logger zerolog.Logger
}

// New creates a Generator. An empty Layout falls back to DefaultLayout.
func New(opts Options, logger zerolog.Logger) *Generator {
	if opts.Layout == "" {
		opts.Layout = DefaultLayout
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = runtime.NumCPU()
	}
	return &Generator{opts: opts, logger: logger}
}

// Options returns the effective options.
func (g *Generator) Options() Options {
	return g.opts
}

// Validate checks the options before any page is produced.
func (g *Generator) Validate() error {
	if !g.opts.Paginate {
		return nil
	}
	return pagination.ValidatePerPage(g.opts.PerPage)
}

// Generate returns the descriptors of every tag index page: tags in sorted
// order, pages ascending within a tag. Invalid options fail before any
// layout work starts and yield no descriptors.
func (g *Generator) Generate(ctx context.Context, items []content.Item) ([]PageDescriptor, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	groups := tags.GroupItems(items)
	g.logger.Debug().
		Ctx(ctx).
		Str("operation", "generate").
		Str("mode", string(g.opts.Mode())).
		Int("item_count", len(items)).
		Int("tag_count", len(groups)).
		Msg("laying out tag pages")

	// Each worker owns exactly one slot, so results stay in tag order.
	perTag := make([][]PageDescriptor, len(groups))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(g.opts.Concurrency)
	for i, group := range groups {
		i, group := i, group
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			pages, err := g.layoutGroup(group)
			if err != nil {
				return fmt.Errorf("tag %q: %w", group.Tag, err)
			}
			perTag[i] = pages
			g.logger.Debug().
				Ctx(ctx).
				Str("tag", group.Tag).
				Int("items", len(group.Items)).
				Int("pages", len(pages)).
				Msg("tag laid out")
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, pages := range perTag {
		total += len(pages)
	}
	out := make([]PageDescriptor, 0, total)
	for _, pages := range perTag {
		out = append(out, pages...)
	}

	g.logger.Info().
		Ctx(ctx).
		Str("operation", "generate").
		Int("tag_count", len(groups)).
		Int("page_count", len(out)).
		Msg("tag pages generated")

	return out, nil
}

// layoutGroup produces the pages of a single tag.
func (g *Generator) layoutGroup(group tags.Group) ([]PageDescriptor, error) {
	if !g.opts.Paginate {
		return []PageDescriptor{g.descriptor(group, pagination.FirstPage, pagination.IndexName, group.Items)}, nil
	}

	totalPages, err := pagination.PageCount(len(group.Items), g.opts.PerPage)
	if err != nil {
		return nil, err
	}

	links := pagination.BuildLinks(totalPages)
	pages := make([]PageDescriptor, 0, totalPages)
	for _, link := range links {
		slice := pagination.Slice(group.Items, g.opts.PerPage, link.Page)
		d := g.descriptor(group, link.Page, link.Path, slice)
		info := pagination.NewInfo(link, g.opts.PerPage, totalPages, len(group.Items))
		d.Pagination = &info
		pages = append(pages, d)
	}
	return pages, nil
}

func (g *Generator) descriptor(group tags.Group, page int, path string, items []content.Item) PageDescriptor {
	return PageDescriptor{
		Tag:        group.Tag,
		Title:      group.Tag,
		Page:       page,
		Path:       path,
		Layout:     g.opts.Layout,
		TotalItems: len(group.Items),
		Items:      items,
	}
}
