package page

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hinaltilavat/portfolio/internal/content"
	"github.com/hinaltilavat/portfolio/internal/nav"
	"github.com/hinaltilavat/portfolio/internal/visibility"
)

func newPage(t *testing.T, opts Options) *Page {
	t.Helper()
	c, err := content.Load(time.Now())
	require.NoError(t, err)
	p := New(c, opts)
	t.Cleanup(p.Close)
	return p
}

func TestMountState(t *testing.T) {
	p := newPage(t, Options{ViewportHeight: 900})

	v := p.View()
	assert.Equal(t, RegionState{true, RevealedClass}, v.Regions["home"])
	for _, id := range []string{"about", "projects", "blog"} {
		assert.Equal(t, RegionState{false, HiddenClass}, v.Regions[id], id)
	}
	assert.Equal(t, visibility.DefaultThreshold, v.Threshold)
}

func TestNavDefaultsToHome(t *testing.T) {
	p := newPage(t, Options{})

	entries := p.NavEntries()
	require.Len(t, entries, 4)
	assert.True(t, entries[0].Active)
	assert.Equal(t, ActiveNavClass, entries[0].Class)
	for _, e := range entries[1:] {
		assert.False(t, e.Active)
		assert.Equal(t, IdleNavClass, e.Class)
	}
}

func TestActivatingProjectsScrollsAndReveals(t *testing.T) {
	var revealed []visibility.Region
	p := newPage(t, Options{
		ViewportHeight: 1000,
		OnReveal:       func(r visibility.Region) { revealed = append(revealed, r) },
	})

	require.NoError(t, p.Navigate(visibility.Projects))

	assert.Equal(t, visibility.Projects, p.Nav.Active())
	assert.Equal(t, 1000.0+720, p.Window.ScrollY())
	assert.True(t, p.Visibility.Revealed(visibility.Projects))
	// about's bottom edge sits exactly at the top of the viewport
	assert.Equal(t, []visibility.Region{visibility.About, visibility.Projects}, revealed)
	assert.Equal(t, RevealedClass, p.RegionClass(visibility.Projects))
}

func TestActivateLeavesRevealedFlagsUntilScrollDispatched(t *testing.T) {
	p := newPage(t, Options{ViewportHeight: 900})
	before := p.Visibility.Snapshot()

	require.NoError(t, p.Nav.Activate(visibility.Projects))

	assert.Equal(t, visibility.Projects, p.Nav.Active())
	assert.Equal(t, before, p.Visibility.Snapshot())
	assert.Zero(t, p.Window.ScrollY())
	assert.Equal(t, HiddenClass, p.RegionClass(visibility.Projects))

	require.True(t, p.Nav.ScrollPending())

	assert.True(t, p.Visibility.Revealed(visibility.Projects))
	assert.False(t, p.Visibility.Revealed(visibility.Blog))
}

func TestNavigateUnknownRegion(t *testing.T) {
	p := newPage(t, Options{})
	before := p.Visibility.Snapshot()

	assert.ErrorIs(t, p.Navigate("contact"), nav.ErrUnknownRegion)
	assert.Equal(t, visibility.Home, p.Nav.Active())
	assert.Equal(t, before, p.Visibility.Snapshot())
}

func TestScrollingRevealsInOrder(t *testing.T) {
	p := newPage(t, Options{ViewportHeight: 1000})

	p.Window.ScrollTo(300)
	assert.True(t, p.Visibility.Revealed(visibility.About))
	assert.False(t, p.Visibility.Revealed(visibility.Projects))

	p.Window.ScrollTo(0)
	assert.True(t, p.Visibility.Revealed(visibility.About), "reveal is permanent")
}

func TestCloseStopsObservingScroll(t *testing.T) {
	p := newPage(t, Options{ViewportHeight: 1000})
	p.Close()

	p.Window.ScrollTo(3000)

	assert.Equal(t, 0, p.Window.Listeners())
	assert.False(t, p.Visibility.Revealed(visibility.Blog))
}

func TestCustomThreshold(t *testing.T) {
	p := newPage(t, Options{ViewportHeight: 1000, Threshold: 0.5})

	p.Window.ScrollTo(400)

	// about top sits at 600, below the 500px line
	assert.False(t, p.Visibility.Revealed(visibility.About))
	assert.Equal(t, 0.5, p.View().Threshold)
}
