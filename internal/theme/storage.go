package theme

import (
	"net/http"
	"sync"
	"time"
)

// MemoryStorage keeps values in a map. It stands in for persistent storage in
// tests and during static export.
type MemoryStorage struct {
	mu     sync.Mutex
	values map[string]string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string]string)}
}

func (m *MemoryStorage) Get(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok
}

func (m *MemoryStorage) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// CookieMaxAge is how long a persisted preference survives.
const CookieMaxAge = 365 * 24 * time.Hour

// CookieStorage persists the preference as a cookie on the response and reads
// it back from the request. The cookie is readable from script so the page can
// apply the theme before first paint.
type CookieStorage struct {
	r      *http.Request
	w      http.ResponseWriter
	secure bool
	set    map[string]string
}

func NewCookieStorage(r *http.Request, w http.ResponseWriter, secure bool) *CookieStorage {
	return &CookieStorage{r: r, w: w, secure: secure, set: make(map[string]string)}
}

func (c *CookieStorage) Get(key string) (string, bool) {
	if v, ok := c.set[key]; ok {
		return v, true
	}
	ck, err := c.r.Cookie(key)
	if err != nil {
		return "", false
	}
	return ck.Value, true
}

func (c *CookieStorage) Set(key, value string) error {
	http.SetCookie(c.w, &http.Cookie{
		Name:     key,
		Value:    value,
		Path:     "/",
		MaxAge:   int(CookieMaxAge.Seconds()),
		SameSite: http.SameSiteLaxMode,
		Secure:   c.secure,
		HttpOnly: false,
	})
	c.set[key] = value
	return nil
}
