package navlink

import (
	"fmt"
	"strings"

	"github.com/rohanthewiz/navlink/core/match"
)

// Route is one navigable destination: a name plus a canonical path pattern.
// Patterns are made of fixed segments and ":param" placeholders, e.g.
// "/blog/:post". Route values are immutable and belong to the RouteSet that
// created them.
type Route struct {
	name    string
	pattern string
	params  int
}

// Name returns the name the route was registered under.
func (r Route) Name() string { return r.name }

// Pattern returns the route's canonical path pattern.
func (r Route) Pattern() string { return r.pattern }

// Path resolves the route to its canonical path, substituting the given
// values for the pattern's ":param" placeholders in order. Resolution is
// deterministic: the same route and values always produce the same string,
// and that string is exactly the href rendered into the link, so exact
// matches against the current path hold by construction.
//
// Path panics when the number of values does not match the pattern. Resolving
// a route with the wrong arity is a programming error on par with registering
// conflicting routes, and surfacing it at development time beats rendering a
// broken href.
func (r Route) Path(params ...string) string {
	if len(params) != r.params {
		panic(fmt.Sprintf("navlink: route %q takes %d parameter(s), got %d",
			r.name, r.params, len(params)))
	}

	if r.params == 0 {
		return r.pattern
	}

	var sb strings.Builder
	sb.Grow(len(r.pattern) + 16)

	rest := r.pattern
	next := 0

	for {
		colon := strings.IndexByte(rest, ':')
		if colon < 0 {
			sb.WriteString(rest)
			break
		}

		sb.WriteString(rest[:colon])

		end := strings.IndexByte(rest[colon:], '/')
		if end < 0 {
			end = len(rest) - colon
		}

		sb.WriteString(params[next])
		next++
		rest = rest[colon+end:]
	}

	// an empty parameter value would leave a double slash behind
	return match.Canonicalize(sb.String())
}

// RouteSet is the closed set of routes an application navigates between,
// declared once at startup. Registration panics on bad input so that a
// misconfigured route table fails fast instead of manifesting later as a
// link that never highlights.
type RouteSet struct {
	byName map[string]Route
	routes []Route
}

// NewRouteSet creates an empty route set.
func NewRouteSet() *RouteSet {
	return &RouteSet{byName: make(map[string]Route)}
}

// Add registers a route under a unique name with a unique path pattern and
// returns the Route value. The pattern must begin with "/".
func (rs *RouteSet) Add(name, pattern string) Route {
	if name == "" {
		panic("navlink: route name must not be empty")
	}
	if pattern == "" || pattern[0] != '/' {
		panic(fmt.Sprintf("navlink: route %q pattern must begin with '/', got %q", name, pattern))
	}
	if _, exists := rs.byName[name]; exists {
		panic(fmt.Sprintf("navlink: duplicate route name %q", name))
	}

	canonical := match.Canonicalize(pattern)

	for _, r := range rs.routes {
		if r.pattern == canonical {
			panic(fmt.Sprintf("navlink: pattern %q already registered as route %q", canonical, r.name))
		}
	}

	route := Route{
		name:    name,
		pattern: canonical,
		params:  countParams(canonical),
	}

	rs.byName[name] = route
	rs.routes = append(rs.routes, route)
	return route
}

// Lookup returns the route registered under name.
func (rs *RouteSet) Lookup(name string) (Route, bool) {
	r, ok := rs.byName[name]
	return r, ok
}

// Routes returns the registered routes in registration order.
func (rs *RouteSet) Routes() []Route {
	out := make([]Route, len(rs.routes))
	copy(out, rs.routes)
	return out
}

// countParams counts the ":param" segments of a canonical pattern.
func countParams(pattern string) (n int) {
	for i := 0; i < len(pattern); i++ {
		if pattern[i] == ':' && pattern[i-1] == '/' {
			n++
		}
	}
	return n
}
