package migrate

import (
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher re-runs dry-run scans whenever files under the project root
// change. Rapid bursts of events are debounced into a single re-scan. Apply
// is forced off: watching an apply run would rewrite files it is watching.
type Watcher struct {
	engine   *Engine
	logger   *slog.Logger
	req      Request
	onReport func(*Report)
	debounce time.Duration

	mu      sync.Mutex
	watcher *fsnotify.Watcher
	timer   *time.Timer
	stopped bool
}

// NewWatcher builds a watcher for a disk-mode request. onReport receives
// every completed re-scan, including the initial one.
func NewWatcher(engine *Engine, req Request, debounce time.Duration, onReport func(*Report), logger *slog.Logger) (*Watcher, error) {
	if len(req.Files) > 0 {
		return nil, fmt.Errorf("%w: watch mode needs a disk root, not a virtual file set", ErrInvalidRequest)
	}
	if debounce <= 0 {
		debounce = 300 * time.Millisecond
	}
	req.Apply = false
	return &Watcher{
		engine:   engine,
		logger:   logger,
		req:      req,
		onReport: onReport,
		debounce: debounce,
	}, nil
}

// Start validates the request, runs an initial scan, and begins watching.
// It returns once watching is established; events are handled on a
// background goroutine until Stop.
func (w *Watcher) Start() error {
	cfg, err := Validate(w.req)
	if err != nil {
		return err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	w.mu.Lock()
	w.watcher = fsw
	w.mu.Unlock()

	if err := w.addDirs(cfg); err != nil {
		fsw.Close()
		return err
	}

	w.rescan()
	go w.loop()
	return nil
}

// addDirs registers the root and every non-excluded subdirectory.
func (w *Watcher) addDirs(cfg *ScanConfig) error {
	patterns := exclusionPatterns(cfg.Excluded)
	root := cfg.Disk.Root
	return filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil
		}
		rel, relErr := filepath.Rel(root, p)
		if relErr == nil && p != root && matchesAny(patterns, filepath.ToSlash(rel)) {
			return filepath.SkipDir
		}
		if addErr := w.watcher.Add(p); addErr != nil {
			w.logger.Warn("cannot watch directory", "path", p, "error", addErr)
		}
		return nil
	})
}

func (w *Watcher) loop() {
	for {
		select {
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			w.schedule()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error", "error", err)
		}
	}
}

// schedule arms (or re-arms) the debounce timer.
func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.rescan)
}

func (w *Watcher) rescan() {
	report, err := w.engine.Run(w.req)
	if err != nil {
		w.logger.Error("rescan failed", "error", err)
		return
	}
	w.logger.Info("rescan complete",
		"files", report.Summary.FilesScanned,
		"findings", report.Summary.FindingCount,
		"pending_changes", report.Summary.ChangeCount)
	if w.onReport != nil {
		w.onReport(report)
	}
}

// Stop shuts the watcher down. Safe to call more than once.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return
	}
	w.stopped = true
	if w.timer != nil {
		w.timer.Stop()
	}
	if w.watcher != nil {
		w.watcher.Close()
	}
}
