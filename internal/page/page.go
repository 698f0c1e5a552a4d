// Package page assembles one view of the portfolio: the visibility controller,
// the navigator, and the static content, mounted against a display context.
package page

import (
	"github.com/hinaltilavat/portfolio/internal/content"
	"github.com/hinaltilavat/portfolio/internal/nav"
	"github.com/hinaltilavat/portfolio/internal/visibility"
)

// Entry-animation classes for a region and highlight classes for a nav
// control.
const (
	RevealedClass = "opacity-100 translate-y-0"
	HiddenClass   = "opacity-0 translate-y-10"

	ActiveNavClass = "text-teal-400 border-b-2 border-teal-400"
	IdleNavClass   = "text-gray-300 hover:text-teal-300 hover:border-b-2 hover:border-teal-300"
)

// Nominal section heights used to lay out the server-side window. Home always
// fills the viewport.
var nominalHeights = map[visibility.Region]float64{
	visibility.About:    720,
	visibility.Projects: 1400,
	visibility.Blog:     800,
}

// Options tunes a page view. Zero values take the defaults.
type Options struct {
	ViewportHeight float64
	Threshold      float64
	OnReveal       func(visibility.Region)
}

// Page is a single mounted page view. It is not safe for concurrent use.
type Page struct {
	Content    *content.Content
	Window     *visibility.Window
	Visibility *visibility.Controller
	Nav        *nav.Navigator
}

// New lays out the page, mounts the visibility controller (running the
// initial check), and binds navigation to the window. Callers must Close it.
func New(c *content.Content, opts Options) *Page {
	height := opts.ViewportHeight
	if height <= 0 {
		height = 900
	}
	sections := make([]visibility.Section, 0, len(visibility.Regions))
	for _, r := range visibility.Regions {
		h := nominalHeights[r]
		if r == visibility.Home {
			h = height
		}
		sections = append(sections, visibility.Section{Region: r, Height: h})
	}
	w := visibility.NewWindow(height, sections...)

	var vopts []visibility.Option
	if opts.Threshold > 0 {
		vopts = append(vopts, visibility.WithThreshold(opts.Threshold))
	}
	if opts.OnReveal != nil {
		vopts = append(vopts, visibility.WithOnReveal(opts.OnReveal))
	}
	ctrl := visibility.New(visibility.Regions, vopts...)
	ctrl.Mount(w, w)

	return &Page{
		Content:    c,
		Window:     w,
		Visibility: ctrl,
		Nav:        nav.New(w),
	}
}

// Navigate activates r and then delivers the queued smooth scroll as its own
// event, which is when the controller gets to see the new position.
func (p *Page) Navigate(r visibility.Region) error {
	if err := p.Nav.Activate(r); err != nil {
		return err
	}
	p.Nav.ScrollPending()
	return nil
}

// Close tears down the scroll subscription.
func (p *Page) Close() {
	p.Visibility.Unmount()
}

// RegionClass returns the entry-animation classes for r.
func (p *Page) RegionClass(r visibility.Region) string {
	if p.Visibility.Revealed(r) {
		return RevealedClass
	}
	return HiddenClass
}

// NavClass returns the highlight classes for r's nav control.
func (p *Page) NavClass(r visibility.Region) string {
	if p.Nav.IsActive(r) {
		return ActiveNavClass
	}
	return IdleNavClass
}

// NavEntry is a navigation control ready for rendering.
type NavEntry struct {
	ID     string
	Label  string
	Class  string
	Active bool
}

// RegionState is a section's visibility ready for rendering.
type RegionState struct {
	Revealed bool
	Class    string
}

// View is the template data for the portfolio page.
type View struct {
	*content.Content
	Nav       []NavEntry
	Active    string
	Regions   map[string]RegionState
	Threshold float64
}

// NavEntries renders the navigation bar for the current selection.
func (p *Page) NavEntries() []NavEntry {
	items := nav.Items()
	out := make([]NavEntry, 0, len(items))
	for _, it := range items {
		out = append(out, NavEntry{
			ID:     string(it.Region),
			Label:  it.Label,
			Class:  p.NavClass(it.Region),
			Active: p.Nav.IsActive(it.Region),
		})
	}
	return out
}

// View snapshots the page for rendering.
func (p *Page) View() View {
	regions := make(map[string]RegionState, len(visibility.Regions))
	for r, revealed := range p.Visibility.Snapshot() {
		regions[string(r)] = RegionState{Revealed: revealed, Class: p.RegionClass(r)}
	}
	return View{
		Content:   p.Content,
		Nav:       p.NavEntries(),
		Active:    string(p.Nav.Active()),
		Regions:   regions,
		Threshold: p.Visibility.Threshold(),
	}
}
