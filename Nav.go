package navlink

import (
	"github.com/rohanthewiz/element"
	"github.com/rohanthewiz/navlink/core/match"
)

// Nav mints links that all share one current path. Build one Nav per render
// pass from the router's location and use it for every link on the page; the
// current path is only read here, never changed.
type Nav struct {
	Current string
}

// NewNav returns a Nav for the given current path. The path is canonicalized
// once so every link minted from this Nav compares against the same string.
func NewNav(currentPath string) Nav {
	return Nav{Current: match.Canonicalize(currentPath)}
}

// IsActive reports whether a link to target would be active under mode.
// This is the boundary most host integrations need: hand it a resolved
// target path and merge the answer into your own markup.
func (n Nav) IsActive(target string, mode match.Mode) bool {
	return match.IsActive(n.Current, target, mode)
}

// Link returns an exact-match NavLink to the given path.
func (n Nav) Link(to, text string) NavLink {
	return NavLink{Current: n.Current, To: to, Text: text}
}

// LinkMode returns a NavLink with an explicit match mode. Use match.Partial
// for section links that should stay lit on nested pages.
func (n Nav) LinkMode(to, text string, mode match.Mode) NavLink {
	return NavLink{Current: n.Current, To: to, Text: text, Mode: mode}
}

// RouteLink resolves a route and returns an exact-match NavLink to it.
func (n Nav) RouteLink(r Route, text string, params ...string) NavLink {
	return NavLink{Current: n.Current, To: r.Path(params...), Text: text}
}

// RouteLinkMode resolves a route and returns a NavLink with an explicit
// match mode.
func (n Nav) RouteLinkMode(r Route, text string, mode match.Mode, params ...string) NavLink {
	return NavLink{Current: n.Current, To: r.Path(params...), Text: text, Mode: mode}
}

// MenuItem is one entry of a Menu. Items with children render as a nested
// list; parent items are typically Partial so the whole section stays lit
// while the application is on any of its nested pages.
type MenuItem struct {
	To       string
	Text     string
	Mode     match.Mode
	Children []MenuItem
}

// Menu renders a possibly nested <ul> of nav links sharing one current path.
// Each item's activeness is derived independently; siblings never affect one
// another.
type Menu struct {
	Current string
	Items   []MenuItem

	Class       string // class for the top-level <ul>
	ItemClass   string // class for each <li>
	LinkClass   string // base class for links; DefaultClass when empty
	ActiveClass string // active class for links; DefaultActiveClass when empty
}

// Render writes the menu markup.
func (m Menu) Render(b *element.Builder) (x any) {
	m.renderLevel(b, m.Items, m.Class)
	return
}

func (m Menu) renderLevel(b *element.Builder, items []MenuItem, ulClass string) {
	var ulAttrs []string
	if ulClass != "" {
		ulAttrs = append(ulAttrs, "class", ulClass)
	}

	b.Ul(ulAttrs...).R(
		func() (x any) {
			for _, item := range items {
				var liAttrs []string
				if m.ItemClass != "" {
					liAttrs = append(liAttrs, "class", m.ItemClass)
				}

				link := NavLink{
					Current:     m.Current,
					To:          item.To,
					Text:        item.Text,
					Mode:        item.Mode,
					Class:       m.LinkClass,
					ActiveClass: m.ActiveClass,
				}

				kids := item.Children

				b.Li(liAttrs...).R(
					element.RenderComponents(b, link),
					func() (y any) {
						if len(kids) > 0 {
							m.renderLevel(b, kids, "")
						}
						return
					}(),
				)
			}
			return
		}(),
	)
}
