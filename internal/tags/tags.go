// Package tags derives the distinct, ordered tag set from content items and
// groups the items under each tag.
//
// Tags compare by exact string value and sort in byte order, which for UTF-8
// is code-point order. The order never depends on the locale, so runs are
// reproducible across machines.
package tags

import (
	"slices"

	"github.com/rshade/tagpages/internal/content"
)

// Group is a tag and the items carrying it, in input order.
type Group struct {
	Tag   string
	Items []content.Item
}

// Collect returns every distinct tag in items exactly once, sorted.
// Empty tag strings are skipped.
func Collect(items []content.Item) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, item := range items {
		for _, tag := range item.Tags {
			if tag == "" {
				continue
			}
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			out = append(out, tag)
		}
	}
	slices.Sort(out)
	return out
}

// GroupItems returns one Group per collected tag, in Collect order. Items keep
// their input order and appear once per group even when they repeat a tag.
func GroupItems(items []content.Item) []Group {
	tags := Collect(items)
	index := make(map[string]int, len(tags))
	groups := make([]Group, len(tags))
	for i, tag := range tags {
		index[tag] = i
		groups[i] = Group{Tag: tag, Items: []content.Item{}}
	}

	for _, item := range items {
		var added map[string]struct{}
		for _, tag := range item.Tags {
			i, ok := index[tag]
			if !ok {
				continue
			}
			if _, dup := added[tag]; dup {
				continue
			}
			if added == nil {
				added = make(map[string]struct{}, len(item.Tags))
			}
			added[tag] = struct{}{}
			groups[i].Items = append(groups[i].Items, item)
		}
	}
	return groups
}

// Counts returns the number of items carrying each tag.
func Counts(groups []Group) map[string]int {
	counts := make(map[string]int, len(groups))
	for _, g := range groups {
		counts[g.Tag] = len(g.Items)
	}
	return counts
}
