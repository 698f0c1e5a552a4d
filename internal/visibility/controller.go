// Package visibility tracks which page regions have scrolled into view.
//
// A Controller holds one monotonic "revealed" flag per region. Flags start
// hidden (except the first region, which is revealed at construction) and flip
// to revealed the first time the region's bounding box satisfies InView. They
// never flip back.
//
// Controllers are confined to a single goroutine, the same one that delivers
// scroll events, so no locking is done.
package visibility

// Region identifies an addressable section of the page.
type Region string

// The page sections, top to bottom.
const (
	Home     Region = "home"
	About    Region = "about"
	Projects Region = "projects"
	Blog     Region = "blog"
)

// Regions is the fixed, ordered set of sections on the page.
var Regions = []Region{Home, About, Projects, Blog}

// DefaultThreshold is the fraction of the viewport height a region's top edge
// must cross before it is revealed.
const DefaultThreshold = 0.85

// Valid reports whether r is one of Regions.
func (r Region) Valid() bool {
	for _, known := range Regions {
		if r == known {
			return true
		}
	}
	return false
}

// Rect is a bounding box relative to the top of the viewport.
type Rect struct {
	Top    float64
	Bottom float64
}

// Surface is the rendered output the controller measures.
type Surface interface {
	ViewportHeight() float64
	// Rect returns false when the region is not currently rendered.
	Rect(Region) (Rect, bool)
}

// EventSource delivers scroll notifications. The returned func removes the
// listener.
type EventSource interface {
	OnScroll(func()) (remove func())
}

// InView is the reveal predicate.
func InView(rect Rect, viewportHeight, threshold float64) bool {
	return rect.Top < viewportHeight*threshold && rect.Bottom >= 0
}

// Option configures a Controller.
type Option func(*Controller)

// WithThreshold overrides DefaultThreshold. Values outside (0, 1] are ignored.
func WithThreshold(t float64) Option {
	return func(c *Controller) {
		if t > 0 && t <= 1 {
			c.threshold = t
		}
	}
}

// WithOnReveal registers fn to run once per Hidden to Revealed transition.
func WithOnReveal(fn func(Region)) Option {
	return func(c *Controller) {
		c.onReveal = fn
	}
}

// Controller owns the revealed flags for a single page view.
type Controller struct {
	order     []Region
	revealed  map[Region]bool
	threshold float64
	onReveal  func(Region)

	surface Surface
	remove  func()
}

// New creates a controller for the given regions. The first region starts
// revealed; duplicates are collapsed.
func New(regions []Region, opts ...Option) *Controller {
	c := &Controller{
		revealed:  make(map[Region]bool, len(regions)),
		threshold: DefaultThreshold,
	}
	for _, r := range regions {
		if _, dup := c.revealed[r]; dup {
			continue
		}
		c.order = append(c.order, r)
		c.revealed[r] = false
	}
	for _, opt := range opts {
		opt(c)
	}
	if len(c.order) > 0 {
		c.revealed[c.order[0]] = true
	}
	return c
}

// Threshold returns the active reveal threshold.
func (c *Controller) Threshold() float64 { return c.threshold }

// Mount attaches the controller to a display context, subscribes to scroll
// events, and runs one check so regions already in view are revealed. A
// mounted controller ignores further Mount calls, and a nil surface is
// ignored without subscribing.
func (c *Controller) Mount(surface Surface, events EventSource) {
	if c.surface != nil || surface == nil {
		return
	}
	c.surface = surface
	if events != nil {
		c.remove = events.OnScroll(c.Check)
	}
	c.Check()
}

// Unmount removes the scroll listener and detaches the surface. Flags keep
// their values. Safe to call more than once.
func (c *Controller) Unmount() {
	if c.remove != nil {
		c.remove()
		c.remove = nil
	}
	c.surface = nil
}

// Mounted reports whether the controller is attached to a surface.
func (c *Controller) Mounted() bool { return c.surface != nil }

// Check evaluates every tracked region against the current surface. Regions
// that are not rendered are left alone.
func (c *Controller) Check() {
	if c.surface == nil {
		return
	}
	height := c.surface.ViewportHeight()
	for _, r := range c.order {
		if c.revealed[r] {
			continue
		}
		rect, ok := c.surface.Rect(r)
		if !ok || !InView(rect, height, c.threshold) {
			continue
		}
		c.revealed[r] = true
		if c.onReveal != nil {
			c.onReveal(r)
		}
	}
}

// Revealed reports the flag for r. Untracked regions are never revealed.
func (c *Controller) Revealed(r Region) bool {
	return c.revealed[r]
}

// Snapshot returns a copy of every flag.
func (c *Controller) Snapshot() map[Region]bool {
	out := make(map[Region]bool, len(c.revealed))
	for r, v := range c.revealed {
		out[r] = v
	}
	return out
}
