package theme

import (
	"net/http"
	"strings"
	"sync"

	"github.com/brettarda/brett-dev/internal/event"
)

// ClientHintHeader carries the browser's prefers-color-scheme value.
const ClientHintHeader = "Sec-CH-Prefers-Color-Scheme"

// Signal is a settable color-scheme source.
type Signal struct {
	mu   sync.Mutex
	mode Mode
	bus  event.Bus[Mode]
}

func NewSignal(initial Mode) *Signal {
	return &Signal{mode: normalizeMode(initial)}
}

func (s *Signal) Current() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// Set updates the signal and notifies subscribers when it actually changed.
func (s *Signal) Set(m Mode) {
	m = normalizeMode(m)
	s.mu.Lock()
	changed := s.mode != m
	s.mode = m
	s.mu.Unlock()
	if changed {
		s.bus.Publish(m)
	}
}

func (s *Signal) Subscribe(fn func(Mode)) (dispose func()) {
	return s.bus.Subscribe(fn)
}

// Subscribers reports live subscriptions.
func (s *Signal) Subscribers() int { return s.bus.Len() }

type fixedScheme Mode

func (f fixedScheme) Current() Mode               { return Mode(f) }
func (f fixedScheme) Subscribe(func(Mode)) func() { return event.Nop }

// SchemeFromRequest reads the color-scheme client hint. Within one request it
// cannot change, so subscriptions never fire. A missing hint reads as light,
// the same answer a browser gives when the dark media query does not match.
func SchemeFromRequest(r *http.Request) ColorScheme {
	v := strings.Trim(strings.TrimSpace(r.Header.Get(ClientHintHeader)), `"`)
	return fixedScheme(normalizeMode(Mode(strings.ToLower(v))))
}

func normalizeMode(m Mode) Mode {
	if m == ModeDark {
		return ModeDark
	}
	return ModeLight
}
