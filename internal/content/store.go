package content

import (
	"errors"
	"fmt"
	"html/template"
)

// ErrUnknownStore is returned by ParseStore for anything but android or ios.
var ErrUnknownStore = errors.New("unknown store")

// Store is an app marketplace a project can link to.
type Store string

const (
	Android Store = "android"
	IOS     Store = "ios"
)

// ParseStore accepts only the known store names.
func ParseStore(s string) (Store, error) {
	switch Store(s) {
	case Android, IOS:
		return Store(s), nil
	}
	return "", fmt.Errorf("parse store %q: %w", s, ErrUnknownStore)
}

// Label is the button text for the store.
func (s Store) Label() string {
	switch s {
	case Android:
		return "Play Store"
	case IOS:
		return "App Store"
	}
	return ""
}

// Class is the badge colour for the store button.
func (s Store) Class() string {
	switch s {
	case Android:
		return "bg-green-500 hover:bg-green-400"
	case IOS:
		return "bg-blue-500 hover:bg-blue-400"
	}
	return ""
}

const iconClasses = "w-5 h-5 inline-block mr-1"

var icons = map[Store]template.HTML{
	Android: template.HTML(`<svg class="` + iconClasses + `" viewBox="0 0 24 24" fill="currentColor" xmlns="http://www.w3.org/2000/svg" data-store="android">` +
		`<path d="M20.771 11.152L16.892 7.272a.748.748 0 00-1.058 0L11.95 11.152l2.942 2.942 5.879-2.942a.748.748 0 000-1.058v.058zm-9.925 4.29L7.272 11.868a.748.748 0 00-1.058 0L2.33 15.752l2.942 2.942L9.152 14.81a.748.748 0 000-1.058l-3.88-3.88.058.058zm3.946-8.164l3.88 3.88-3.88 3.88-3.88-3.88 3.88-3.88zm-4.29 9.925l3.88-3.88-3.88-3.88-3.88 3.88 3.88 3.88zM15.834 4.23l-2.942 2.942-2.942-2.942 2.942-2.942 2.942 2.942zm-7.004 15.54l2.942-2.942 2.942 2.942-2.942 2.942-2.942-2.942z"/>` +
		`<path d="M17.318 1.39L6.682 1.39a.75.75 0 00-.53.22L1.39 6.372a.75.75 0 000 1.06l4.762 4.762a.75.75 0 00.53.22h10.636a.75.75 0 00.53-.22l4.762-4.762a.75.75 0 000-1.06L17.848 1.61a.75.75 0 00-.53-.22zM7.75 11.25L3.5 7l4.25-4.25L12 7l-4.25 4.25zm8.5 0L12 7l4.25-4.25L20.5 7l-4.25 4.25z"/>` +
		`</svg>`),
	IOS: template.HTML(`<svg class="` + iconClasses + `" viewBox="0 0 24 24" fill="currentColor" xmlns="http://www.w3.org/2000/svg" data-store="ios">` +
		`<path d="M17.623 11.083C17.62 8.399 19.832 6.6 19.832 6.6c-1.426-1.691-3.532-1.917-4.332-1.944-2.054-.054-3.91.998-4.884.998-.998 0-2.51-.998-4.126-.944-2.16.081-4.048 1.213-5.076 3.048C-1.43 10.456.656 15.038 2.636 17.722c.998 1.349 2.133 2.834 3.586 2.834 1.426 0 1.944-.89 3.726-.89s2.246.89 3.754.89c1.534 0 2.562-1.457 3.56-2.861 1.16-1.608 1.636-3.131 1.663-3.212-.055-.027-3.292-1.213-3.292-3.346zM15.07 4.718c.863-.998 1.454-2.375 1.322-3.726-.97.055-2.482.675-3.346 1.664-.755.863-1.509 2.321-1.349 3.645.971.136 2.51.562 3.373-1.583z"/>` +
		`</svg>`),
}

// Icon returns the fixed SVG glyph for the store, or empty for an unknown
// store.
func (s Store) Icon() template.HTML {
	return icons[s]
}

// StoreLink points a project at one of its store listings. Links always open
// in a new browsing context.
type StoreLink struct {
	Store Store
	URL   string
}

// External links open in a new browsing context without a referrer or
// window.opener.
const (
	LinkTarget = "_blank"
	LinkRel    = "noopener noreferrer"
)
