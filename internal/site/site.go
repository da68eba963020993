// Package site maps logical tag pages onto site output paths.
package site

import (
	"net/url"
	"path"
	"strings"
)

// DefaultBasePath is the directory that holds every tag's index pages.
const DefaultBasePath = "tag"

// EscapeTag percent-encodes a tag for use as a single path segment.
// Dot-only tags such as "." and ".." are fully encoded so they name a
// directory instead of navigating the path.
func EscapeTag(tag string) string {
	if strings.Trim(tag, ".") == "" && tag != "" {
		return strings.Repeat("%2E", len(tag))
	}
	return url.PathEscape(tag)
}

// PagePath returns "{base}/{escapedTag}/{file}". Leading and trailing
// slashes on base are dropped; an empty base places tags at the site root.
// An empty file yields the tag directory itself.
func PagePath(base, tag, file string) string {
	parts := make([]string, 0, 3)
	if base = strings.Trim(base, "/"); base != "" {
		parts = append(parts, path.Clean(base))
	}
	parts = append(parts, EscapeTag(tag))
	if file != "" {
		parts = append(parts, file)
	}
	return strings.Join(parts, "/")
}

// PageURL is PagePath rooted at "/".
func PageURL(base, tag, file string) string {
	return "/" + PagePath(base, tag, file)
}
