package theme

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/brettarda/brett-dev/internal/event"
)

// DefaultStorageKey is the key the preference is persisted under.
const DefaultStorageKey = "brett-portfolio-theme"

// Storage persists the raw preference string.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// ColorScheme is the host's OS-level color-scheme signal.
type ColorScheme interface {
	Current() Mode
	Subscribe(fn func(Mode)) (dispose func())
}

// Root receives the resolved theme so styling can key off it.
type Root interface {
	SetTheme(Mode)
}

// Options configures a Store.
type Options struct {
	Key     string
	Default Preference
	Storage Storage
	Scheme  ColorScheme
	Root    Root
	Logger  zerolog.Logger
}

// Store is the single writer of the persisted preference and of the root
// element's theme. Construct one per page lifetime and Close it on teardown.
type Store struct {
	mu         sync.Mutex
	key        string
	preference Preference
	resolved   Mode
	storage    Storage
	scheme     ColorScheme
	root       Root
	log        zerolog.Logger

	changes   event.Bus[Mode]
	unsub     func()
	closeOnce sync.Once
}

// NewStore loads the persisted preference, reflects the resolved theme once,
// and starts following the color-scheme signal.
func NewStore(opts Options) (*Store, error) {
	if opts.Storage == nil {
		return nil, fmt.Errorf("theme store: storage is required")
	}
	if opts.Scheme == nil {
		return nil, fmt.Errorf("theme store: color scheme is required")
	}
	if opts.Default == "" {
		opts.Default = Dark
	}
	if !opts.Default.Valid() {
		return nil, fmt.Errorf("theme store: default: %w: %q", ErrInvalidPreference, opts.Default)
	}
	if opts.Key == "" {
		opts.Key = DefaultStorageKey
	}

	s := &Store{
		key:     opts.Key,
		storage: opts.Storage,
		scheme:  opts.Scheme,
		root:    opts.Root,
		log:     opts.Logger.With().Str("component", "theme").Logger(),
	}

	s.preference = opts.Default
	if raw, ok := opts.Storage.Get(opts.Key); ok {
		if p, err := ParsePreference(raw); err == nil {
			s.preference = p
		} else {
			s.log.Debug().Str("stored", raw).Str("default", string(opts.Default)).Msg("ignoring unrecognized stored theme")
		}
	}

	s.resolved = Resolve(s.preference, s.scheme.Current())
	s.reflect(s.resolved)

	s.unsub = s.scheme.Subscribe(s.onScheme)
	return s, nil
}

// Preference returns the active preference.
func (s *Store) Preference() Preference {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.preference
}

// Resolved returns the applied theme. A system preference is read against the
// signal at call time.
func (s *Store) Resolved() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Resolve(s.preference, s.scheme.Current())
}

// Set validates, persists, then recomputes and reflects. Invalid values and
// storage failures leave the store unchanged.
func (s *Store) Set(p Preference) error {
	if !p.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidPreference, p)
	}
	if err := s.storage.Set(s.key, string(p)); err != nil {
		return fmt.Errorf("persist theme: %w", err)
	}

	s.mu.Lock()
	s.preference = p
	s.mu.Unlock()

	s.recompute()
	return nil
}

// Toggle forces the explicit opposite of the resolved theme. It never selects
// system, so a system preference becomes a sticky light or dark choice.
func (s *Store) Toggle() error {
	return s.Set(PreferenceFor(Opposite(s.Resolved())))
}

// Subscribe observes changes of the resolved theme.
func (s *Store) Subscribe(fn func(Mode)) (dispose func()) {
	return s.changes.Subscribe(fn)
}

// Close releases the color-scheme subscription. Safe to call more than once.
func (s *Store) Close() {
	s.closeOnce.Do(func() {
		if s.unsub != nil {
			s.unsub()
		}
	})
}

func (s *Store) onScheme(Mode) {
	s.recompute()
}

func (s *Store) recompute() {
	s.mu.Lock()
	next := Resolve(s.preference, s.scheme.Current())
	changed := next != s.resolved
	s.resolved = next
	s.mu.Unlock()

	if !changed {
		return
	}
	s.reflect(next)
	s.changes.Publish(next)
}

func (s *Store) reflect(m Mode) {
	if s.root != nil {
		s.root.SetTheme(m)
	}
}
