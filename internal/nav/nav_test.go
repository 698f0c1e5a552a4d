package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hinaltilavat/portfolio/internal/visibility"
)

type recordingScroller struct {
	requests []visibility.Region
}

func (s *recordingScroller) ScrollIntoView(r visibility.Region) bool {
	s.requests = append(s.requests, r)
	return true
}

func TestItems(t *testing.T) {
	assert.Equal(t, []Item{
		{visibility.Home, "Home"},
		{visibility.About, "About"},
		{visibility.Projects, "Projects"},
		{visibility.Blog, "Blog"},
	}, Items())
}

func TestNavigatorStartsAtHome(t *testing.T) {
	n := New(nil)

	assert.Equal(t, visibility.Home, n.Active())
	assert.True(t, n.IsActive(visibility.Home))
	assert.Zero(t, n.Activations())
}

func TestActivateProjects(t *testing.T) {
	for _, prior := range []visibility.Region{visibility.Home, visibility.Blog, visibility.Projects} {
		t.Run(string(prior), func(t *testing.T) {
			s := &recordingScroller{}
			n := New(s)
			require.NoError(t, n.Activate(prior))
			n.ScrollPending()
			s.requests = nil
			before := n.Activations()

			require.NoError(t, n.Activate(visibility.Projects))

			assert.Equal(t, visibility.Projects, n.Active())
			assert.Equal(t, before+1, n.Activations())
			assert.Empty(t, s.requests, "activation only queues the scroll")

			assert.True(t, n.ScrollPending())
			assert.Equal(t, []visibility.Region{visibility.Projects}, s.requests)
		})
	}
}

func TestActivateDoesNotTouchVisibility(t *testing.T) {
	w := visibility.NewWindow(1000,
		visibility.Section{Region: visibility.Home, Height: 1000},
		visibility.Section{Region: visibility.Projects, Height: 900},
	)
	c := visibility.New(visibility.Regions)
	c.Mount(w, w)
	defer c.Unmount()
	before := c.Snapshot()

	n := New(w)
	require.NoError(t, n.Activate(visibility.Projects))

	assert.Equal(t, before, c.Snapshot())
	assert.Zero(t, w.ScrollY())

	require.True(t, n.ScrollPending())
	assert.True(t, c.Revealed(visibility.Projects), "the dispatched scroll reveals the target")
}

func TestActivateUnknownRegion(t *testing.T) {
	s := &recordingScroller{}
	n := New(s)

	err := n.Activate("contact")

	assert.ErrorIs(t, err, ErrUnknownRegion)
	assert.Equal(t, visibility.Home, n.Active())
	assert.False(t, n.ScrollPending())
	assert.Empty(t, s.requests)
	assert.Zero(t, n.Activations())
}

func TestScrollPendingDeliversLatestOnce(t *testing.T) {
	s := &recordingScroller{}
	n := New(s)

	require.NoError(t, n.Activate(visibility.About))
	require.NoError(t, n.Activate(visibility.Blog))

	target, ok := n.Pending()
	assert.True(t, ok)
	assert.Equal(t, visibility.Blog, target)

	assert.True(t, n.ScrollPending())
	assert.False(t, n.ScrollPending())
	assert.Equal(t, []visibility.Region{visibility.Blog}, s.requests)
}

func TestScrollPendingWithoutScroller(t *testing.T) {
	n := New(nil)
	require.NoError(t, n.Activate(visibility.About))

	assert.False(t, n.ScrollPending())
	_, ok := n.Pending()
	assert.False(t, ok)
}

func TestScrollPendingMovesWindow(t *testing.T) {
	w := visibility.NewWindow(1000,
		visibility.Section{Region: visibility.Home, Height: 1000},
		visibility.Section{Region: visibility.About, Height: 500},
		visibility.Section{Region: visibility.Projects, Height: 900},
		visibility.Section{Region: visibility.Blog, Height: 800},
	)
	n := New(w)

	require.NoError(t, n.Activate(visibility.Projects))
	require.True(t, n.ScrollPending())

	assert.Equal(t, 1500.0, w.ScrollY())
}
