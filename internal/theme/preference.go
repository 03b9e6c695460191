// Package theme holds the visitor's light/dark/system preference, resolves it
// against the color-scheme signal, and reflects the result onto the page root.
package theme

import (
	"errors"
	"fmt"
	"strings"
)

// Preference is what the visitor asked for.
type Preference string

const (
	Light  Preference = "light"
	Dark   Preference = "dark"
	System Preference = "system"
)

// Mode is a resolved theme: always light or dark.
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// ErrInvalidPreference is returned when a value outside light, dark and system
// is offered to the store.
var ErrInvalidPreference = errors.New("invalid theme preference")

// ParsePreference accepts the three persisted spellings. Surrounding
// whitespace and case are ignored.
func ParsePreference(s string) (Preference, error) {
	switch p := Preference(strings.ToLower(strings.TrimSpace(s))); p {
	case Light, Dark, System:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPreference, s)
	}
}

// Valid reports whether p is one of the enumerated preferences.
func (p Preference) Valid() bool {
	return p == Light || p == Dark || p == System
}

func (p Preference) String() string { return string(p) }

// Opposite flips a resolved mode.
func Opposite(m Mode) Mode {
	if m == ModeDark {
		return ModeLight
	}
	return ModeDark
}

// Resolve collapses p against the current OS signal.
func Resolve(p Preference, os Mode) Mode {
	switch p {
	case Light:
		return ModeLight
	case Dark:
		return ModeDark
	default:
		if os == ModeDark {
			return ModeDark
		}
		return ModeLight
	}
}

// PreferenceFor returns the explicit preference matching a resolved mode.
func PreferenceFor(m Mode) Preference {
	if m == ModeDark {
		return Dark
	}
	return Light
}
