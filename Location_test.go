package navlink_test

import (
	"testing"

	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/navlink"
)

func TestSplitPathAndQuery(t *testing.T) {
	path, rest := navlink.SplitPathAndQuery("/search?q=go")
	assert.Equal(t, path, "/search")
	assert.Equal(t, rest, "q=go")

	path, rest = navlink.SplitPathAndQuery("/docs#install")
	assert.Equal(t, path, "/docs")
	assert.Equal(t, rest, "install")

	path, rest = navlink.SplitPathAndQuery("/plain")
	assert.Equal(t, path, "/plain")
	assert.Equal(t, rest, "")
}

func TestCurrentPath(t *testing.T) {
	assert.Equal(t, navlink.CurrentPath("/search?q=go"), "/search")
	assert.Equal(t, navlink.CurrentPath("/docs/?page=2"), "/docs")
	assert.Equal(t, navlink.CurrentPath(""), "/")
	assert.Equal(t, navlink.CurrentPath("/?utm=x"), "/")
}

func TestQueryNeverAffectsActiveness(t *testing.T) {
	nav := navlink.NewNav(navlink.CurrentPath("/docs?page=2"))
	assert.True(t, nav.Link("/docs", "Docs").State().IsActive)
}
