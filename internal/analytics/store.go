// Package analytics records privacy-conscious visit, theme and navigation
// counts in SQLite.
package analytics

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"embed"
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrations embed.FS

// timeLayout is how timestamps are stored. Plain UTC text sorts and compares
// correctly as a string.
const timeLayout = "2006-01-02 15:04:05"

// RecentLimit caps the recent visitor list in Stats.
const RecentLimit = 50

// VisitorMetric is one tracked page view. The client address is stored only
// as a salted hash.
type VisitorMetric struct {
	ID        int64     `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

// Count is a labelled tally.
type Count struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

type Stats struct {
	TotalVisitors    int64           `json:"total_visitors"`
	UniqueVisitors   int64           `json:"unique_visitors"`
	VisitorsToday    int64           `json:"visitors_today"`
	VisitorsThisWeek int64           `json:"visitors_this_week"`
	ThemeChoices     []Count         `json:"theme_choices"`
	TopSections      []Count         `json:"top_sections"`
	RecentVisitors   []VisitorMetric `json:"recent_visitors"`
}

type Options struct {
	Path   string
	Salt   string
	Logger zerolog.Logger
	// Now defaults to time.Now.
	Now func() time.Time
}

// Store owns the analytics database. Background writes started with Go are
// tracked so Close can wait for them.
type Store struct {
	db   *sql.DB
	salt string
	log  zerolog.Logger
	now  func() time.Time

	wg     sync.WaitGroup
	mu     sync.Mutex
	closed bool
}

// Open opens the database at opts.Path and applies pending migrations.
func Open(opts Options) (*Store, error) {
	if opts.Path == "" {
		return nil, errors.New("analytics: database path is required")
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	db, err := sql.Open("sqlite", buildDSN(opts.Path))
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// One writer keeps SQLite from returning SQLITE_BUSY under concurrent inserts.
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if err := runMigrations(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{
		db:   db,
		salt: opts.Salt,
		log:  opts.Logger.With().Str("component", "analytics").Logger(),
		now:  opts.Now,
	}, nil
}

func buildDSN(path string) string {
	params := url.Values{}
	params.Add("_pragma", "busy_timeout(5000)")
	params.Add("_pragma", "journal_mode(WAL)")
	params.Add("_pragma", "synchronous(NORMAL)")
	return "file:" + path + "?" + params.Encode()
}

func runMigrations(db *sql.DB) error {
	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("goose set dialect: %w", err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}

// HashIP returns a truncated salted SHA-256 of ip. The same ip hashes the
// same way for the life of the salt.
func (s *Store) HashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip + s.salt))
	return hex.EncodeToString(sum[:])[:16]
}

func (s *Store) stamp() string {
	return s.now().UTC().Format(timeLayout)
}

// RecordVisit stores a page view for ip, which is hashed before it is written.
func (s *Store) RecordVisit(ctx context.Context, ip, userAgent, path string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO visitors (hashed_ip, user_agent, path, created_at) VALUES (?, ?, ?, ?)`,
		s.HashIP(ip), userAgent, path, s.stamp())
	if err != nil {
		return fmt.Errorf("record visit: %w", err)
	}
	return nil
}

// RecordTheme stores an accepted theme change.
func (s *Store) RecordTheme(ctx context.Context, preference, resolved string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO theme_events (preference, resolved, created_at) VALUES (?, ?, ?)`,
		preference, resolved, s.stamp())
	if err != nil {
		return fmt.Errorf("record theme: %w", err)
	}
	return nil
}

// RecordNav stores a successful section navigation.
func (s *Store) RecordNav(ctx context.Context, section string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO nav_events (section, created_at) VALUES (?, ?)`,
		section, s.stamp())
	if err != nil {
		return fmt.Errorf("record nav: %w", err)
	}
	return nil
}

// Go runs fn in the background. Failures are logged, never returned to the
// request that triggered them. Calls after Close are dropped.
func (s *Store) Go(what string, fn func(ctx context.Context) error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := fn(ctx); err != nil {
			s.log.Error().Err(err).Str("op", what).Msg("analytics write failed")
		}
	}()
}

// Flush waits for background writes started so far.
func (s *Store) Flush() {
	s.wg.Wait()
}

// Cleanup deletes rows older than retention and reports how many went.
func (s *Store) Cleanup(ctx context.Context, retention time.Duration) (int64, error) {
	cutoff := s.now().Add(-retention).UTC().Format(timeLayout)

	var total int64
	for _, table := range []string{"visitors", "theme_events", "nav_events"} {
		res, err := s.db.ExecContext(ctx, `DELETE FROM `+table+` WHERE created_at < ?`, cutoff)
		if err != nil {
			return total, fmt.Errorf("cleanup %s: %w", table, err)
		}
		n, _ := res.RowsAffected()
		total += n
	}
	if total > 0 {
		s.log.Info().Int64("rows", total).Dur("retention", retention).Msg("privacy cleanup removed old records")
	}
	return total, nil
}

// Stats gathers the dashboard figures.
func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	now := s.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).Format(timeLayout)
	week := now.Add(-7 * 24 * time.Hour).Format(timeLayout)

	stats := &Stats{}
	counts := []struct {
		dst   *int64
		query string
		args  []any
	}{
		{&stats.TotalVisitors, `SELECT COUNT(*) FROM visitors`, nil},
		{&stats.UniqueVisitors, `SELECT COUNT(DISTINCT hashed_ip) FROM visitors`, nil},
		{&stats.VisitorsToday, `SELECT COUNT(*) FROM visitors WHERE created_at >= ?`, []any{today}},
		{&stats.VisitorsThisWeek, `SELECT COUNT(*) FROM visitors WHERE created_at >= ?`, []any{week}},
	}
	for _, c := range counts {
		if err := s.db.QueryRowContext(ctx, c.query, c.args...).Scan(c.dst); err != nil {
			return nil, fmt.Errorf("stats: %w", err)
		}
	}

	var err error
	stats.ThemeChoices, err = s.tally(ctx, `SELECT preference, COUNT(*) FROM theme_events GROUP BY preference ORDER BY COUNT(*) DESC, preference`)
	if err != nil {
		return nil, err
	}
	stats.TopSections, err = s.tally(ctx, `SELECT section, COUNT(*) FROM nav_events GROUP BY section ORDER BY COUNT(*) DESC, section LIMIT 10`)
	if err != nil {
		return nil, err
	}
	stats.RecentVisitors, err = s.Recent(ctx, RecentLimit)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *Store) tally(ctx context.Context, query string) ([]Count, error) {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}
	defer rows.Close()

	var out []Count
	for rows.Next() {
		var c Count
		if err := rows.Scan(&c.Label, &c.Count); err != nil {
			return nil, fmt.Errorf("stats: scan: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Recent returns the newest visits first.
func (s *Store) Recent(ctx context.Context, limit int) ([]VisitorMetric, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, hashed_ip, user_agent, path, created_at FROM visitors ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent visitors: %w", err)
	}
	defer rows.Close()

	var out []VisitorMetric
	for rows.Next() {
		var (
			v  VisitorMetric
			ts string
		)
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &ts); err != nil {
			return nil, fmt.Errorf("recent visitors: scan: %w", err)
		}
		v.Timestamp, err = time.ParseInLocation(timeLayout, ts, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("recent visitors: timestamp %q: %w", ts, err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// Close waits for background writes and closes the database.
func (s *Store) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()

	s.wg.Wait()
	return s.db.Close()
}
