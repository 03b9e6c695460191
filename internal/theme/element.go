package theme

import "sync"

// Element stands in for the document root. The page renderer reads it back
// when it writes the <html> tag.
type Element struct {
	mu     sync.Mutex
	mode   Mode
	writes int
}

func (e *Element) SetTheme(m Mode) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.mode = m
	e.writes++
}

// Mode is the last reflected theme, or "" before the first reflection.
func (e *Element) Mode() Mode {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.mode
}

// Class is the value for the root class attribute.
func (e *Element) Class() string {
	return string(e.Mode())
}

// Writes counts reflections.
func (e *Element) Writes() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.writes
}
