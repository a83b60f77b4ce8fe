// Package match decides whether a navigation link is "active", that is,
// whether the link's target path corresponds to the application's current
// location. It is a leaf package: pure functions over canonical path strings,
// no state, safe to call from any goroutine.
package match

import "strings"

// Mode selects how a target path is compared against the current path.
type Mode uint8

const (
	// Exact activates a link only when the current path equals the target path.
	// This is the default.
	Exact Mode = iota

	// Partial also activates a link when the current path is nested below the
	// target path on a segment boundary, e.g. target /docs is active while the
	// application is at /docs/getting-started. Opt in for section links.
	Partial
)

// String returns the mode name for debugging output.
func (m Mode) String() string {
	switch m {
	case Exact:
		return "exact"
	case Partial:
		return "partial"
	}
	return "unknown"
}

// Canonicalize returns the canonical form of a path: a leading slash,
// no duplicate slashes, and no trailing slash except for the lone root "/".
// An empty path canonicalizes to "/". Percent-decoding and dot-segment
// resolution belong to the router's own decode step, not here.
func Canonicalize(path string) string {
	if path == "" || path == "/" {
		return "/"
	}

	if isCanonical(path) {
		return path
	}

	if path[0] != '/' {
		path = "/" + path
	}

	for strings.Contains(path, "//") {
		path = strings.ReplaceAll(path, "//", "/")
	}

	for len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	return path
}

// isCanonical is the zero-allocation fast path for paths that are already
// in canonical form, which is the common case for router-produced paths.
func isCanonical(path string) bool {
	if path[0] != '/' || path[len(path)-1] == '/' {
		return false
	}

	for i := 1; i < len(path); i++ {
		if path[i] == '/' && path[i-1] == '/' {
			return false
		}
	}

	return true
}

// IsActive reports whether a link targeting targetPath should be styled as
// active while the application is at currentPath.
//
// Under Exact mode the paths must be equal after canonicalization. Under
// Partial mode an equal path still counts, and so does a current path nested
// below the target on a segment boundary: /docs matches /docs/api, but /doc
// does not - naive prefix overlap is not enough. The root path "/" never
// matches partially; otherwise a home link would stay highlighted on every
// page of the application.
//
// Query strings and fragments must be stripped by the caller before the paths
// reach this function (see navlink.CurrentPath).
func IsActive(currentPath, targetPath string, mode Mode) bool {
	current := Canonicalize(currentPath)
	target := Canonicalize(targetPath)

	if current == target {
		return true
	}

	if mode == Exact {
		return false
	}

	if target == "/" {
		return false
	}

	return len(current) > len(target) &&
		current[len(target)] == '/' &&
		current[:len(target)] == target
}
