// Package content holds the tagged items handed to the page planner and
// reads them from a manifest file.
package content

import "time"

// Item is one content unit: a title and the tags it carries. The planner
// never modifies items; URL and Date are carried through for renderers.
type Item struct {
	Title string    `json:"title"          yaml:"title"`
	Tags  []string  `json:"tags"           yaml:"tags"`
	URL   string    `json:"url,omitempty"  yaml:"url,omitempty"`
	Date  time.Time `json:"date,omitzero"  yaml:"date,omitempty"`
}

// HasTag reports whether the item carries tag, by exact comparison.
func (i Item) HasTag(tag string) bool {
	for _, t := range i.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Manifest is the on-disk list of items.
type Manifest struct {
	Items []Item `json:"items" yaml:"items"`
}
