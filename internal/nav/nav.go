// Package nav is the header controller: scroll-linked chrome, the mobile menu
// flag, and smooth navigation between page sections.
package nav

import "strings"

// ScrollThreshold is the offset the header switches chrome beyond. An offset
// of exactly this value is not scrolled.
const ScrollThreshold = 50

// Behavior mirrors the scroll-behavior options a host understands.
type Behavior string

const (
	Smooth Behavior = "smooth"
	Auto   Behavior = "auto"
)

// Item is one header link.
type Item struct {
	Name string
	Href string
}

// ID returns the section identifier without the leading '#'.
func (i Item) ID() string { return SectionID(i.Href) }

var items = [...]Item{
	{Name: "About", Href: "#about"},
	{Name: "Skills", Href: "#skills"},
	{Name: "Projects", Href: "#projects"},
	{Name: "Connect", Href: "#connect"},
}

// Items returns the fixed header entries in display order.
func Items() []Item {
	out := make([]Item, len(items))
	copy(out, items[:])
	return out
}

// SectionIDs lists the identifiers of every navigable section.
func SectionIDs() []string {
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.ID()
	}
	return ids
}

// SectionID normalises "#projects" and "projects" to "projects".
func SectionID(target string) string {
	return strings.TrimPrefix(strings.TrimSpace(target), "#")
}
