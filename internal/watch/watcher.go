// Package watch turns a directory into a drop folder: every image file
// that lands in it is normalized, identified through the gateway, and
// appended to the history. Rapid writes are debounced so a file is only
// picked up once its contents have settled.
package watch

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"verdant/internal/imaging"
	"verdant/internal/logging"
	"verdant/internal/types"
)

// settleDuration is how long a file must stay quiet after its last
// write before it is processed.
const settleDuration = 500 * time.Millisecond

// Identifier runs the identification flow for one normalized image.
type Identifier interface {
	Identify(ctx context.Context, imageDataURL string, lang types.Language) (*types.Identification, error)
}

// Appender stores completed records.
type Appender interface {
	Append(ctx context.Context, rec *types.Identification) error
}

// Config wires a Watcher.
type Config struct {
	Dir      string
	Language types.Language
	Workers  int

	Identifier Identifier
	Appender   Appender

	// OnIdentified, when set, is called after each record is stored.
	OnIdentified func(rec *types.Identification)
}

// Watcher is the drop-folder daemon.
type Watcher struct {
	cfg Config
	log *zap.Logger

	mu        sync.Mutex
	pending   map[string]time.Time
	processed map[string]bool
}

// New builds a Watcher. Workers below 1 are raised to 1.
func New(cfg Config) *Watcher {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return &Watcher{
		cfg:       cfg,
		log:       logging.Named(logging.CategoryWatch),
		pending:   make(map[string]time.Time),
		processed: make(map[string]bool),
	}
}

// Run watches the drop folder until ctx is canceled. Identification
// runs on a bounded worker pool so a burst of dropped photos does not
// fan out into unbounded concurrent API calls.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	if err := fw.Add(w.cfg.Dir); err != nil {
		return err
	}
	w.log.Info("watching drop folder",
		zap.String("dir", w.cfg.Dir), zap.Int("workers", w.cfg.Workers))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(w.cfg.Workers)

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

loop:
	for {
		select {
		case <-ctx.Done():
			break loop
		case <-groupCtx.Done():
			break loop

		case event, ok := <-fw.Events:
			if !ok {
				break loop
			}
			w.handleEvent(event)

		case err, ok := <-fw.Errors:
			if !ok {
				break loop
			}
			w.log.Error("watch error", zap.Error(err))

		case <-ticker.C:
			for _, path := range w.takeSettled() {
				path := path
				group.Go(func() error {
					w.process(groupCtx, path)
					return nil
				})
			}
		}
	}

	return group.Wait()
}

// handleEvent records create/write events for image files; everything
// else is ignored.
func (w *Watcher) handleEvent(event fsnotify.Event) {
	if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
		return
	}
	if !isImagePath(event.Name) {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.processed[event.Name] {
		return
	}
	w.pending[event.Name] = time.Now()
}

// takeSettled returns the files whose last write is old enough, marking
// them processed so each file is identified exactly once.
func (w *Watcher) takeSettled() []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	var ready []string
	now := time.Now()
	for path, last := range w.pending {
		if now.Sub(last) >= settleDuration {
			delete(w.pending, path)
			w.processed[path] = true
			ready = append(ready, path)
		}
	}
	return ready
}

func (w *Watcher) process(ctx context.Context, path string) {
	dataURL, err := imaging.NormalizeFile(path)
	if err != nil {
		w.log.Warn("skipping file", zap.String("path", path), zap.Error(err))
		return
	}

	rec, err := w.cfg.Identifier.Identify(ctx, dataURL, w.cfg.Language)
	if err != nil {
		w.log.Error("identification failed",
			zap.String("path", path), zap.Error(err))
		return
	}
	if err := w.cfg.Appender.Append(ctx, rec); err != nil {
		w.log.Error("failed to store record",
			zap.String("path", path), zap.Error(err))
		return
	}

	w.log.Info("identified dropped photo",
		zap.String("path", path),
		zap.String("name", rec.DisplayName()),
		zap.Int("health_score", rec.HealthScore))
	if w.cfg.OnIdentified != nil {
		w.cfg.OnIdentified(rec)
	}
}

func isImagePath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp":
		return true
	}
	return false
}
