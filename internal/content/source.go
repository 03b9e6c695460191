package content

import (
	"context"
	"fmt"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// Source hands out the current Site. Readers never see a partially loaded
// value.
type Source struct {
	site atomic.Pointer[Site]
}

func NewSource(site *Site) *Source {
	s := &Source{}
	s.site.Store(site)
	return s
}

func (s *Source) Current() *Site { return s.site.Load() }

func (s *Source) Replace(site *Site) { s.site.Store(site) }

// Reload loads path into the source. On error the previous Site stays.
func (s *Source) Reload(path string) error {
	site, err := Load(path)
	if err != nil {
		return err
	}
	s.Replace(site)
	return nil
}

// WatchDebounce is how long Watch waits after the last change before
// reloading.
const WatchDebounce = 500 * time.Millisecond

// Watch reloads path into src whenever it changes, until ctx is done. The
// parent directory is watched so editors that replace the file on save are
// still seen.
func Watch(ctx context.Context, path string, src *Source, log zerolog.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create content watcher: %w", err)
	}
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	go func() {
		defer watcher.Close()
		target := filepath.Clean(path)
		var timer *time.Timer
		defer func() {
			if timer != nil {
				timer.Stop()
			}
		}()

		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
					continue
				}
				log.Debug().Str("file", ev.Name).Str("op", ev.Op.String()).Msg("content change detected")
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(WatchDebounce, func() {
					if err := src.Reload(path); err != nil {
						log.Warn().Err(err).Str("file", path).Msg("content reload failed, keeping previous content")
						return
					}
					log.Info().Str("file", path).Msg("content reloaded")
				})
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Warn().Err(err).Msg("content watcher error")
			}
		}
	}()
	return nil
}
