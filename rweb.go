package navlink

import "github.com/rohanthewiz/rweb"

// FromContext builds a Nav from the request path of an rweb context, so
// handlers rendering server-side navigation can do:
//
//	nav := navlink.FromContext(ctx)
//	element.RenderComponents(b, nav.Link("/about", "About"))
//
// rweb exposes the request path already stripped of the query string; it is
// canonicalized here so the links all compare against one string.
func FromContext(ctx rweb.Context) Nav {
	return NewNav(ctx.Request().Path())
}
