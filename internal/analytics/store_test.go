package analytics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *clock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = t
}

func openTestStore(t *testing.T, clk *clock) *Store {
	t.Helper()
	s, err := Open(Options{
		Path:   filepath.Join(t.TempDir(), "analytics.db"),
		Salt:   "test-salt",
		Logger: zerolog.Nop(),
		Now:    clk.Now,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestOpen_RequiresPath(t *testing.T) {
	_, err := Open(Options{})
	assert.Error(t, err)
}

func TestHashIP_StableAndOpaque(t *testing.T) {
	s := openTestStore(t, &clock{t: time.Now()})

	a := s.HashIP("203.0.113.7")
	assert.Len(t, a, 16)
	assert.Equal(t, a, s.HashIP("203.0.113.7"))
	assert.NotEqual(t, a, s.HashIP("203.0.113.8"))
	assert.NotContains(t, a, "203")
}

func TestStats_CountsAndWindows(t *testing.T) {
	ctx := context.Background()
	clk := &clock{t: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)}
	s := openTestStore(t, clk)

	clk.Set(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	require.NoError(t, s.RecordVisit(ctx, "1.1.1.1", "ua", "/"))
	clk.Set(time.Date(2026, 3, 8, 9, 0, 0, 0, time.UTC))
	require.NoError(t, s.RecordVisit(ctx, "1.1.1.1", "ua", "/"))
	clk.Set(time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC))
	require.NoError(t, s.RecordVisit(ctx, "2.2.2.2", "ua", "/nav/skills"))

	require.NoError(t, s.RecordTheme(ctx, "light", "light"))
	require.NoError(t, s.RecordTheme(ctx, "dark", "dark"))
	require.NoError(t, s.RecordTheme(ctx, "light", "light"))
	require.NoError(t, s.RecordNav(ctx, "skills"))

	clk.Set(time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC))
	stats, err := s.Stats(ctx)
	require.NoError(t, err)

	assert.EqualValues(t, 3, stats.TotalVisitors)
	assert.EqualValues(t, 2, stats.UniqueVisitors)
	assert.EqualValues(t, 1, stats.VisitorsToday)
	assert.EqualValues(t, 2, stats.VisitorsThisWeek)
	assert.Equal(t, []Count{{Label: "light", Count: 2}, {Label: "dark", Count: 1}}, stats.ThemeChoices)
	assert.Equal(t, []Count{{Label: "skills", Count: 1}}, stats.TopSections)
	require.Len(t, stats.RecentVisitors, 3)
	assert.Equal(t, "/nav/skills", stats.RecentVisitors[0].Path)
	assert.Equal(t, time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC), stats.RecentVisitors[0].Timestamp)
}

func TestRecordTheme_RejectsUnknownValues(t *testing.T) {
	s := openTestStore(t, &clock{t: time.Now()})
	assert.Error(t, s.RecordTheme(context.Background(), "sepia", "light"))
}

func TestCleanup_RemovesOldRows(t *testing.T) {
	ctx := context.Background()
	clk := &clock{t: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	s := openTestStore(t, clk)

	require.NoError(t, s.RecordVisit(ctx, "1.1.1.1", "ua", "/"))
	require.NoError(t, s.RecordNav(ctx, "about"))
	clk.Set(time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, s.RecordVisit(ctx, "1.1.1.1", "ua", "/"))

	n, err := s.Cleanup(ctx, 365*24*time.Hour)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	stats, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, stats.TotalVisitors)
	assert.Empty(t, stats.TopSections)
}

func TestGo_FlushAndClose(t *testing.T) {
	s := openTestStore(t, &clock{t: time.Now()})

	for i := 0; i < 5; i++ {
		s.Go("visit", func(ctx context.Context) error {
			return s.RecordVisit(ctx, "1.1.1.1", "ua", "/")
		})
	}
	s.Flush()

	stats, err := s.Stats(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 5, stats.TotalVisitors)

	require.NoError(t, s.Close())
	s.Go("late", func(context.Context) error {
		t.Error("write after close must not run")
		return nil
	})
	require.NoError(t, s.Close())
}

func TestMiddleware_SkipsUntrackedAndDNT(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := openTestStore(t, &clock{t: time.Now()})

	r := gin.New()
	r.Use(Middleware(s))
	ok := func(c *gin.Context) { c.Status(http.StatusOK) }
	r.GET("/", ok)
	r.GET("/static/app.css", ok)
	r.GET("/healthz", ok)
	r.POST("/theme", ok)

	do := func(method, path string, dnt bool) {
		req := httptest.NewRequest(method, path, nil)
		if dnt {
			req.Header.Set("DNT", "1")
		}
		r.ServeHTTP(httptest.NewRecorder(), req)
	}
	do(http.MethodGet, "/", false)
	do(http.MethodGet, "/", true)
	do(http.MethodGet, "/static/app.css", false)
	do(http.MethodGet, "/healthz", false)
	do(http.MethodPost, "/theme", false)
	s.Flush()

	stats, err := s.Stats(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 1, stats.TotalVisitors)
}

func TestTracked(t *testing.T) {
	assert.True(t, Tracked("/"))
	assert.True(t, Tracked("/nav/about"))
	assert.False(t, Tracked("/admin/dashboard"))
	assert.False(t, Tracked("/static/app.js"))
	assert.False(t, Tracked("/favicon.ico"))
}
