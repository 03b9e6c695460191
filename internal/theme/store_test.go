package theme

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, storage Storage, signal *Signal, root *Element) *Store {
	t.Helper()
	s, err := NewStore(Options{
		Key:     DefaultStorageKey,
		Default: Dark,
		Storage: storage,
		Scheme:  signal,
		Root:    root,
		Logger:  zerolog.Nop(),
	})
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s
}

func TestStore_DefaultsWhenNothingPersisted(t *testing.T) {
	root := &Element{}
	s := newTestStore(t, NewMemoryStorage(), NewSignal(ModeLight), root)

	assert.Equal(t, Dark, s.Preference())
	assert.Equal(t, ModeDark, s.Resolved())
	assert.Equal(t, ModeDark, root.Mode())
	assert.Equal(t, 1, root.Writes())
}

func TestStore_CorruptValueFallsBackToDefault(t *testing.T) {
	storage := NewMemoryStorage()
	require.NoError(t, storage.Set(DefaultStorageKey, "sepia"))

	s := newTestStore(t, storage, NewSignal(ModeLight), &Element{})

	assert.Equal(t, Dark, s.Preference())
	raw, _ := storage.Get(DefaultStorageKey)
	assert.Equal(t, "sepia", raw, "a corrupt value is ignored, not rewritten")
}

func TestStore_ResolvedIsAlwaysLightOrDark(t *testing.T) {
	for _, p := range []Preference{Light, Dark, System} {
		for _, os := range []Mode{ModeLight, ModeDark} {
			s := newTestStore(t, NewMemoryStorage(), NewSignal(os), &Element{})
			require.NoError(t, s.Set(p))
			got := s.Resolved()
			assert.Contains(t, []Mode{ModeLight, ModeDark}, got, "preference %s / os %s", p, os)
		}
	}
}

func TestStore_SystemTracksSignal(t *testing.T) {
	signal := NewSignal(ModeLight)
	root := &Element{}
	s := newTestStore(t, NewMemoryStorage(), signal, root)
	require.NoError(t, s.Set(System))

	assert.Equal(t, ModeLight, s.Resolved())
	assert.Equal(t, ModeLight, root.Mode())

	signal.Set(ModeDark)
	assert.Equal(t, ModeDark, s.Resolved())
	assert.Equal(t, ModeDark, root.Mode())

	signal.Set(ModeLight)
	assert.Equal(t, ModeLight, s.Resolved())
	assert.Equal(t, ModeLight, root.Mode())
}

func TestStore_ExplicitPreferenceIgnoresSignal(t *testing.T) {
	signal := NewSignal(ModeDark)
	root := &Element{}
	s := newTestStore(t, NewMemoryStorage(), signal, root)
	require.NoError(t, s.Set(Light))

	signal.Set(ModeLight)
	signal.Set(ModeDark)

	assert.Equal(t, ModeLight, s.Resolved())
	assert.Equal(t, ModeLight, root.Mode())
}

func TestStore_PersistenceRoundTrip(t *testing.T) {
	storage := NewMemoryStorage()
	signal := NewSignal(ModeDark)

	first := newTestStore(t, storage, signal, &Element{})
	require.NoError(t, first.Set(Light))
	first.Close()

	reloaded := newTestStore(t, storage, signal, &Element{})
	assert.Equal(t, Light, reloaded.Preference())
	assert.Equal(t, ModeLight, reloaded.Resolved())
}

func TestStore_ToggleCycle(t *testing.T) {
	storage := NewMemoryStorage()
	s := newTestStore(t, storage, NewSignal(ModeLight), &Element{})
	require.Equal(t, ModeDark, s.Resolved())

	require.NoError(t, s.Toggle())
	assert.Equal(t, ModeLight, s.Resolved())
	raw, _ := storage.Get(DefaultStorageKey)
	assert.Equal(t, "light", raw)

	require.NoError(t, s.Toggle())
	assert.Equal(t, ModeDark, s.Resolved())
	raw, _ = storage.Get(DefaultStorageKey)
	assert.Equal(t, "dark", raw)
}

func TestStore_ToggleFromSystemBecomesExplicit(t *testing.T) {
	signal := NewSignal(ModeDark)
	s := newTestStore(t, NewMemoryStorage(), signal, &Element{})
	require.NoError(t, s.Set(System))

	require.NoError(t, s.Toggle())
	assert.Equal(t, Light, s.Preference())

	signal.Set(ModeLight)
	signal.Set(ModeDark)
	assert.Equal(t, ModeLight, s.Resolved())
}

func TestStore_SetRejectsInvalidPreference(t *testing.T) {
	storage := NewMemoryStorage()
	root := &Element{}
	s := newTestStore(t, storage, NewSignal(ModeLight), root)

	err := s.Set(Preference("purple"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidPreference))

	assert.Equal(t, Dark, s.Preference())
	_, persisted := storage.Get(DefaultStorageKey)
	assert.False(t, persisted)
	assert.Equal(t, 1, root.Writes())
}

type failingStorage struct{ *MemoryStorage }

func (f *failingStorage) Set(string, string) error { return errors.New("quota exceeded") }

func TestStore_StorageFailureLeavesStateUnchanged(t *testing.T) {
	storage := &failingStorage{MemoryStorage: NewMemoryStorage()}
	s := newTestStore(t, storage, NewSignal(ModeLight), &Element{})

	err := s.Set(Light)
	require.Error(t, err)
	assert.Equal(t, Dark, s.Preference())
}

func TestStore_ReflectsOnlyOnChange(t *testing.T) {
	root := &Element{}
	s := newTestStore(t, NewMemoryStorage(), NewSignal(ModeDark), root)

	require.NoError(t, s.Set(System)) // dark -> dark via OS signal
	require.NoError(t, s.Set(Dark))
	assert.Equal(t, 1, root.Writes())

	require.NoError(t, s.Set(Light))
	assert.Equal(t, 2, root.Writes())
}

func TestStore_SubscribersSeeResolvedChanges(t *testing.T) {
	s := newTestStore(t, NewMemoryStorage(), NewSignal(ModeLight), &Element{})
	var seen []Mode
	dispose := s.Subscribe(func(m Mode) { seen = append(seen, m) })

	require.NoError(t, s.Toggle())
	require.NoError(t, s.Toggle())
	dispose()
	require.NoError(t, s.Toggle())

	assert.Equal(t, []Mode{ModeLight, ModeDark}, seen)
}

func TestStore_CloseReleasesSignalOnce(t *testing.T) {
	signal := NewSignal(ModeLight)
	root := &Element{}
	s, err := NewStore(Options{Storage: NewMemoryStorage(), Scheme: signal, Root: root})
	require.NoError(t, err)
	require.Equal(t, 1, signal.Subscribers())

	s.Close()
	s.Close()
	assert.Zero(t, signal.Subscribers())

	require.NoError(t, s.Set(System))
	require.Equal(t, ModeLight, root.Mode())

	// After teardown the OS signal no longer reaches the root.
	signal.Set(ModeDark)
	assert.Equal(t, ModeLight, root.Mode())
	assert.Equal(t, ModeDark, s.Resolved(), "reads still consult the signal")
}

func TestNewStore_RejectsInvalidDefault(t *testing.T) {
	_, err := NewStore(Options{Default: "neon", Storage: NewMemoryStorage(), Scheme: NewSignal(ModeLight)})
	require.ErrorIs(t, err, ErrInvalidPreference)
}

func TestCookieStorage_PersistsAcrossRequests(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/theme", nil)
	rec := httptest.NewRecorder()

	s := newTestStore(t, NewCookieStorage(req, rec, false), NewSignal(ModeLight), &Element{})
	require.NoError(t, s.Set(Light))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, DefaultStorageKey, cookies[0].Name)
	assert.Equal(t, "light", cookies[0].Value)
	assert.False(t, cookies[0].HttpOnly)
	assert.Equal(t, "/", cookies[0].Path)

	next := httptest.NewRequest(http.MethodGet, "/", nil)
	next.AddCookie(cookies[0])
	reloaded := newTestStore(t, NewCookieStorage(next, httptest.NewRecorder(), false), NewSignal(ModeDark), &Element{})
	assert.Equal(t, Light, reloaded.Preference())
	assert.Equal(t, ModeLight, reloaded.Resolved())
}

func TestSchemeFromRequest(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, ModeLight, SchemeFromRequest(req).Current())

	req.Header.Set(ClientHintHeader, `"dark"`)
	assert.Equal(t, ModeDark, SchemeFromRequest(req).Current())

	req.Header.Set(ClientHintHeader, "light")
	assert.Equal(t, ModeLight, SchemeFromRequest(req).Current())
}

func TestParsePreference(t *testing.T) {
	p, err := ParsePreference(" System ")
	require.NoError(t, err)
	assert.Equal(t, System, p)

	_, err = ParsePreference("")
	assert.ErrorIs(t, err, ErrInvalidPreference)
}
