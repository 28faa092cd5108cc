// Package preset holds the active visual variant of the showcase site and
// its persistence and URL synchronization. One variant value drives both the
// preset component set and, through a derived projection, the legacy theme
// CSS variables.
package preset

// Variant is one of the three interchangeable visual skins.
type Variant string

const (
	Modern  Variant = "modern"
	Trad    Variant = "trad"
	Premium Variant = "premium"
)

// QueryParam is the URL query parameter carrying a pinned variant,
// enabling shareable links like "/?preset=trad".
const QueryParam = "preset"

// order fixes the toggle cycle.
var order = []Variant{Modern, Trad, Premium}

// Parse validates a raw variant value.
func Parse(s string) (Variant, bool) {
	switch Variant(s) {
	case Modern, Trad, Premium:
		return Variant(s), true
	}
	return "", false
}

func (v Variant) String() string { return string(v) }

// Next returns the variant following v in the fixed toggle cycle
// (modern → trad → premium → modern).
func (v Variant) Next() Variant {
	for i, p := range order {
		if p == v {
			return order[(i+1)%len(order)]
		}
	}
	return Modern
}

// DataAttr is the value set as data-preset on the document root and body.
func (v Variant) DataAttr() string { return string(v) }

// BodyClass is the preset-scoped class applied to the body, replacing any
// previously applied preset-* class.
func (v Variant) BodyClass() string { return "preset-" + string(v) }

// Resolve implements the initial-state resolution order: a recognized URL
// value wins and must be persisted by the caller (second result true), else
// a recognized stored value, else Modern.
func Resolve(fromURL, stored string) (Variant, bool) {
	if v, ok := Parse(fromURL); ok {
		return v, true
	}
	if v, ok := Parse(stored); ok {
		return v, false
	}
	return Modern, false
}
