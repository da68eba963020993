package generator

// Summary aggregates a generation result.
type Summary struct {
	Tags       int `json:"tags"        yaml:"tags"`
	Pages      int `json:"pages"       yaml:"pages"`
	ItemRefs   int `json:"item_refs"   yaml:"item_refs"`
	MaxPages   int `json:"max_pages"   yaml:"max_pages"`
	EmptyPages int `json:"empty_pages" yaml:"empty_pages"`
}

// Summarize counts the tags, pages and item references in descriptors.
func Summarize(descriptors []PageDescriptor) Summary {
	var s Summary
	pagesPerTag := make(map[string]int)
	for _, d := range descriptors {
		if _, ok := pagesPerTag[d.Tag]; !ok {
			s.Tags++
		}
		pagesPerTag[d.Tag]++
		if pagesPerTag[d.Tag] > s.MaxPages {
			s.MaxPages = pagesPerTag[d.Tag]
		}
		s.Pages++
		s.ItemRefs += len(d.Items)
		if len(d.Items) == 0 {
			s.EmptyPages++
		}
	}
	return s
}
