package navlink

import (
	"strings"

	"github.com/rohanthewiz/element"
	"github.com/rohanthewiz/navlink/core/match"
)

// Crumb is one entry of a breadcrumb trail.
type Crumb struct {
	Href   string
	Label  string
	Active bool
}

// Trail derives a breadcrumb trail from the current path: a Home crumb for
// the root, then one crumb per path segment with an accumulated href. Only
// the last crumb is active. Labels are prettified segment names; hosts that
// want their own labels can rebuild the slice before rendering.
func Trail(currentPath string) []Crumb {
	p := match.Canonicalize(currentPath)

	crumbs := []Crumb{{Href: "/", Label: "Home", Active: p == "/"}}
	if p == "/" {
		return crumbs
	}

	segments := strings.Split(p[1:], "/")
	href := ""

	for i, seg := range segments {
		href += "/" + seg
		crumbs = append(crumbs, Crumb{
			Href:   href,
			Label:  prettify(seg),
			Active: i == len(segments)-1,
		})
	}

	return crumbs
}

// prettify turns a path segment like "getting-started" into "Getting started".
func prettify(segment string) string {
	s := strings.ReplaceAll(segment, "-", " ")
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Breadcrumbs renders a breadcrumb trail for the current path. Inactive
// crumbs are links; the active crumb renders as plain text with aria-current
// so it cannot navigate to itself.
type Breadcrumbs struct {
	Current string
	Class   string // class for the wrapping <nav>; "breadcrumbs" when empty
}

// Render writes the trail as <nav><ol><li>… markup.
func (bc Breadcrumbs) Render(b *element.Builder) (x any) {
	class := bc.Class
	if class == "" {
		class = "breadcrumbs"
	}

	crumbs := Trail(bc.Current)

	b.Nav("class", class, "aria-label", "Breadcrumb").R(
		b.Ol().R(
			func() (y any) {
				for _, crumb := range crumbs {
					if crumb.Active {
						b.Li().R(
							b.Span("aria-current", "page").T(crumb.Label),
						)
						continue
					}
					b.Li().R(
						b.A("href", crumb.Href).T(crumb.Label),
					)
				}
				return
			}(),
		),
	)
	return
}
