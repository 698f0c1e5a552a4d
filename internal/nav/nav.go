// Package nav holds the navigation bar entries and the single active
// selection. The selection is independent of region visibility.
package nav

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hinaltilavat/portfolio/internal/visibility"
)

// ErrUnknownRegion is returned when activating a region outside the page.
var ErrUnknownRegion = errors.New("unknown region")

// Item is one navigation control.
type Item struct {
	Region visibility.Region
	Label  string
}

// Items returns the navigation controls in page order.
func Items() []Item {
	items := make([]Item, 0, len(visibility.Regions))
	for _, r := range visibility.Regions {
		items = append(items, Item{Region: r, Label: label(r)})
	}
	return items
}

func label(r visibility.Region) string {
	s := string(r)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Scroller performs the smooth scroll requested by an activation.
type Scroller interface {
	ScrollIntoView(visibility.Region) bool
}

// Navigator tracks the highlighted region. Activation only records the
// scroll request; ScrollPending performs it.
type Navigator struct {
	active      visibility.Region
	pending     visibility.Region
	scroller    Scroller
	activations int
}

// New returns a navigator with home active. scroller may be nil.
func New(scroller Scroller) *Navigator {
	return &Navigator{active: visibility.Home, scroller: scroller}
}

// Activate highlights r and queues a smooth scroll to it. A later activation
// replaces an undelivered request.
func (n *Navigator) Activate(r visibility.Region) error {
	if !r.Valid() {
		return fmt.Errorf("activate %q: %w", r, ErrUnknownRegion)
	}
	n.active = r
	n.pending = r
	n.activations++
	return nil
}

// Pending returns the queued scroll target, if any.
func (n *Navigator) Pending() (visibility.Region, bool) {
	return n.pending, n.pending != ""
}

// ScrollPending hands the queued target to the scroller and clears it. It
// reports whether a scroll took place.
func (n *Navigator) ScrollPending() bool {
	r, ok := n.Pending()
	if !ok {
		return false
	}
	n.pending = ""
	if n.scroller == nil {
		return false
	}
	return n.scroller.ScrollIntoView(r)
}

// Active returns the highlighted region.
func (n *Navigator) Active() visibility.Region { return n.active }

// IsActive reports whether r is highlighted.
func (n *Navigator) IsActive(r visibility.Region) bool { return n.active == r }

// Activations counts successful Activate calls.
func (n *Navigator) Activations() int { return n.activations }
