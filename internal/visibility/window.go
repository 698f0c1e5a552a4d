package visibility

import "slices"

// Section is one vertically stacked block of the document.
type Section struct {
	Region Region
	Height float64
}

// Window simulates a browsing context: sections laid out top to bottom, a
// viewport of fixed height, and a vertical scroll offset. It implements both
// Surface and EventSource.
type Window struct {
	viewport  float64
	sections  []Section
	scrollY   float64
	listeners map[int]func()
	nextID    int
}

// NewWindow lays out sections in order starting at document offset zero.
func NewWindow(viewportHeight float64, sections ...Section) *Window {
	return &Window{
		viewport:  viewportHeight,
		sections:  append([]Section(nil), sections...),
		listeners: make(map[int]func()),
	}
}

// ViewportHeight returns the visible height.
func (w *Window) ViewportHeight() float64 { return w.viewport }

// ScrollY returns the current scroll offset.
func (w *Window) ScrollY() float64 { return w.scrollY }

// Rect returns the section's box relative to the viewport.
func (w *Window) Rect(r Region) (Rect, bool) {
	offset, height, ok := w.locate(r)
	if !ok {
		return Rect{}, false
	}
	top := offset - w.scrollY
	return Rect{Top: top, Bottom: top + height}, true
}

func (w *Window) locate(r Region) (offset, height float64, ok bool) {
	for _, s := range w.sections {
		if s.Region == r {
			return offset, s.Height, true
		}
		offset += s.Height
	}
	return 0, 0, false
}

// OnScroll registers fn for every subsequent scroll.
func (w *Window) OnScroll(fn func()) func() {
	id := w.nextID
	w.nextID++
	w.listeners[id] = fn
	return func() { delete(w.listeners, id) }
}

// Listeners returns the number of registered scroll handlers.
func (w *Window) Listeners() int { return len(w.listeners) }

// MaxScroll is the largest reachable offset: document height minus the
// viewport, never below zero.
func (w *Window) MaxScroll() float64 {
	var total float64
	for _, s := range w.sections {
		total += s.Height
	}
	return max(total-w.viewport, 0)
}

// ScrollTo moves the viewport and notifies listeners. The offset is clamped
// to [0, MaxScroll].
func (w *Window) ScrollTo(y float64) {
	w.scrollY = min(max(y, 0), w.MaxScroll())
	for _, fn := range w.snapshotListeners() {
		fn()
	}
}

// ScrollIntoView scrolls so the region's top meets the top of the viewport,
// or as far as the document allows. It returns false if the region is not
// rendered.
func (w *Window) ScrollIntoView(r Region) bool {
	offset, _, ok := w.locate(r)
	if !ok {
		return false
	}
	w.ScrollTo(offset)
	return true
}

// Remove drops a section from the rendered output.
func (w *Window) Remove(r Region) {
	kept := w.sections[:0]
	for _, s := range w.sections {
		if s.Region != r {
			kept = append(kept, s)
		}
	}
	w.sections = kept
}

// listeners may unregister themselves while being notified.
func (w *Window) snapshotListeners() []func() {
	ids := make([]int, 0, len(w.listeners))
	for id := range w.listeners {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	fns := make([]func(), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, w.listeners[id])
	}
	return fns
}
