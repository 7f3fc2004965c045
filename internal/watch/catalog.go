// Package watch reloads a catalog file when it changes on disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/ChicagoDave/haydaycalc/pkg/catalog"
	"github.com/ChicagoDave/haydaycalc/pkg/validation"
)

const defaultDebounce = 250 * time.Millisecond

// CatalogWatcher reloads one catalog file and hands every valid revision to
// OnLoad. Revisions that fail to parse or validate are logged and skipped.
type CatalogWatcher struct {
	Path     string
	OnLoad   func(*catalog.Catalog)
	Logger   *zap.Logger
	Debounce time.Duration
}

// NewCatalogWatcher creates a watcher for the catalog at path.
func NewCatalogWatcher(path string, logger *zap.Logger, onLoad func(*catalog.Catalog)) *CatalogWatcher {
	return &CatalogWatcher{
		Path:     path,
		OnLoad:   onLoad,
		Logger:   logger,
		Debounce: defaultDebounce,
	}
}

// Run watches until ctx is cancelled. The parent directory is watched so
// editors that save by rename are still seen.
func (w *CatalogWatcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer fw.Close()

	target := filepath.Clean(w.Path)
	dir := filepath.Dir(target)
	if err := fw.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}
	w.Logger.Info("watching catalog", zap.String("path", target))

	var settle <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			// Editors often write a file in several bursts.
			settle = time.After(w.Debounce)

		case <-settle:
			settle = nil
			w.reload()

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.Logger.Warn("catalog watcher error", zap.Error(err))
		}
	}
}

func (w *CatalogWatcher) reload() {
	c, err := catalog.Load(w.Path)
	if err != nil {
		w.Logger.Warn("catalog reload failed", zap.String("path", w.Path), zap.Error(err))
		return
	}
	if err := validation.ValidateCatalog(c).Err(); err != nil {
		w.Logger.Warn("catalog reload rejected", zap.String("path", w.Path), zap.Error(err))
		return
	}
	w.OnLoad(c)
}
