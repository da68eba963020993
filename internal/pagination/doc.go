// Package pagination provides the page arithmetic for tag index pages.
//
// This package contains the pure layout helpers used by the generator:
//   - PageCount: number of pages a tag's items span (never less than one)
//   - Bounds and Slice: half-open item window for a 1-based page number
//   - BuildLinks: the previous/next navigation graph between a tag's pages
//   - Info: navigation and counting metadata attached to a paginated page
//
// None of the functions allocate shared state, so they are safe to call from
// concurrent per-tag workers.
package pagination
