package nav

import (
	"sync"

	"github.com/brettarda/brett-dev/internal/event"
)

// Viewport is a settable Window. The server renders from a fresh viewport at
// offset zero; tests drive it directly.
type Viewport struct {
	mu  sync.Mutex
	y   float64
	bus event.Bus[float64]
}

func (v *Viewport) ScrollY() float64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.y
}

// SetScrollY moves the viewport and fires a scroll event.
func (v *Viewport) SetScrollY(y float64) {
	v.mu.Lock()
	v.y = y
	v.mu.Unlock()
	v.bus.Publish(y)
}

func (v *Viewport) OnScroll(fn func()) (remove func()) {
	return v.bus.Subscribe(func(float64) { fn() })
}

func (v *Viewport) ScrollTo(top float64, _ Behavior) {
	v.SetScrollY(top)
}

// Listeners reports live scroll subscriptions.
func (v *Viewport) Listeners() int { return v.bus.Len() }

// PageDocument knows which section anchors a rendered page contains and
// remembers the last one scrolled into view.
type PageDocument struct {
	mu       sync.Mutex
	sections map[string]struct{}
	target   string
}

func NewPageDocument(ids ...string) *PageDocument {
	d := &PageDocument{sections: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		d.sections[id] = struct{}{}
	}
	return d
}

func (d *PageDocument) Lookup(id string) (Element, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.sections[id]; !ok {
		return nil, false
	}
	return anchor{doc: d, id: id}, true
}

// Target is the last section scrolled into view, or "".
func (d *PageDocument) Target() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.target
}

type anchor struct {
	doc *PageDocument
	id  string
}

func (a anchor) ScrollIntoView(Behavior) {
	a.doc.mu.Lock()
	a.doc.target = a.id
	a.doc.mu.Unlock()
}
