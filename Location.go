package navlink

import (
	"strings"

	"github.com/rohanthewiz/navlink/core/match"
)

// SplitPathAndQuery splits a raw request target into its path and whatever
// follows it - a "?query" or "#fragment" - returned without the delimiter.
// Activeness never depends on the query or fragment, so strip them before
// the path reaches the matcher.
func SplitPathAndQuery(raw string) (path, rest string) {
	if i := strings.IndexAny(raw, "?#"); i >= 0 {
		return raw[:i], raw[i+1:]
	}
	return raw, ""
}

// CurrentPath extracts the canonical current path from a raw request target,
// dropping any query string or fragment. Feed the result to NewNav or to
// match.IsActive directly.
func CurrentPath(raw string) string {
	p, _ := SplitPathAndQuery(raw)
	return match.Canonicalize(p)
}
