package nav

import "sync"

// Window is the scrollable viewport.
type Window interface {
	ScrollY() float64
	OnScroll(fn func()) (remove func())
	ScrollTo(top float64, behavior Behavior)
}

// Element is anything that can be scrolled into view.
type Element interface {
	ScrollIntoView(behavior Behavior)
}

// Document resolves section identifiers to elements.
type Document interface {
	Lookup(id string) (Element, bool)
}

// Controller tracks the two independent header flags.
type Controller struct {
	mu       sync.Mutex
	win      Window
	doc      Document
	scrolled bool
	menuOpen bool
	mounts   int
	remove   func()
}

func NewController(win Window, doc Document) *Controller {
	return &Controller{win: win, doc: doc}
}

// Mount starts following scroll events and syncs with the current offset.
// Mounts are counted: the listener is shared and released when the last
// handle unmounts. Each returned unmount only counts on its first call.
func (c *Controller) Mount() (unmount func()) {
	c.mu.Lock()
	c.mounts++
	if c.remove == nil {
		c.remove = c.win.OnScroll(c.handleScroll)
	}
	c.mu.Unlock()
	c.handleScroll()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			c.mounts--
			var remove func()
			if c.mounts == 0 {
				remove, c.remove = c.remove, nil
			}
			c.mu.Unlock()
			if remove != nil {
				remove()
			}
		})
	}
}

func (c *Controller) handleScroll() {
	y := c.win.ScrollY()
	c.mu.Lock()
	c.scrolled = y > ScrollThreshold
	c.mu.Unlock()
}

// Scrolled reports whether the header shows its scrolled chrome.
func (c *Controller) Scrolled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.scrolled
}

// MenuOpen reports whether the mobile menu is shown.
func (c *Controller) MenuOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.menuOpen
}

func (c *Controller) ToggleMenu() {
	c.mu.Lock()
	c.menuOpen = !c.menuOpen
	c.mu.Unlock()
}

func (c *Controller) CloseMenu() {
	c.mu.Lock()
	c.menuOpen = false
	c.mu.Unlock()
}

// Navigate closes the menu and smooth-scrolls to the section named by target.
// An unknown or empty identifier is a silent no-op; the result reports
// whether a scroll happened.
func (c *Controller) Navigate(target string) bool {
	c.CloseMenu()

	id := SectionID(target)
	if id == "" || c.doc == nil {
		return false
	}
	el, ok := c.doc.Lookup(id)
	if !ok || el == nil {
		return false
	}
	el.ScrollIntoView(Smooth)
	return true
}

// Home is the logo action: close the menu and return to the top.
func (c *Controller) Home() {
	c.CloseMenu()
	c.win.ScrollTo(0, Smooth)
}
