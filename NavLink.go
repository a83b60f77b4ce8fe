package navlink

import (
	"github.com/rohanthewiz/element"
	"github.com/rohanthewiz/navlink/core/match"
)

// Default CSS classes. The base class is always present on a rendered link;
// the active class joins it only while the link's target matches the current
// path.
const (
	DefaultClass       = "nav-link"
	DefaultActiveClass = "active"
)

// LinkState is the activeness of one link, derived fresh on every render from
// the current path, the target path, and the match mode. Nothing is stored.
type LinkState struct {
	IsActive bool
}

// NavLink renders an anchor element that knows whether it points at the
// current location. Build NavLinks through a Nav so sibling links share one
// current path, or populate the fields directly.
type NavLink struct {
	Current string     // canonical current path
	To      string     // resolved target path, also the rendered href
	Mode    match.Mode // Exact unless Partial is opted into

	Text string            // link text; ignored when Body is set
	Body element.Component // arbitrary link content

	Class       string // base class; DefaultClass when empty
	ActiveClass string // appended while active; DefaultActiveClass when empty

	Attrs []string // extra attribute pairs passed through to the anchor
}

// State derives the link's activeness. Pure: the same current path, target,
// and mode always produce the same answer.
func (n NavLink) State() LinkState {
	return LinkState{IsActive: match.IsActive(n.Current, n.To, n.Mode)}
}

// Render writes the anchor. aria-current marks the active link for assistive
// technology, mirroring what the state class does visually.
func (n NavLink) Render(b *element.Builder) (x any) {
	state := n.State()

	attrs := make([]string, 0, len(n.Attrs)+6)
	attrs = append(attrs, "href", n.To, "class", n.classes(state))
	if state.IsActive {
		attrs = append(attrs, "aria-current", "page")
	}
	attrs = append(attrs, n.Attrs...)

	if n.Body != nil {
		b.A(attrs...).R(
			element.RenderComponents(b, n.Body),
		)
		return
	}

	b.A(attrs...).T(n.Text)
	return
}

func (n NavLink) classes(state LinkState) string {
	base := n.Class
	if base == "" {
		base = DefaultClass
	}

	if !state.IsActive {
		return base
	}

	active := n.ActiveClass
	if active == "" {
		active = DefaultActiveClass
	}
	return base + " " + active
}
