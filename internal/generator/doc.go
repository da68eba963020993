// Package generator lays out the tag index pages of a site.
//
// Generate groups items by tag and emits one PageDescriptor per output page.
// In flat mode every tag gets a single index page holding all its items. In
// paginated mode a tag's items are split into pages of PerPage items, each
// carrying pagination.Info with links to its neighbours.
//
// The result is an ordered value: tags in sorted order, pages ascending. The
// caller renders and writes the descriptors; nothing is retained here.
package generator
