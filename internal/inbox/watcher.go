// Package inbox imports gift files dropped into a watched directory.
package inbox

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/heartmarshall/florarium-backend/internal/domain"
	"github.com/heartmarshall/florarium-backend/internal/metrics"
)

// Extension of gift files.
const Extension = ".flower"

const (
	processedDir = "processed"
	rejectedDir  = "rejected"
)

type importer interface {
	ImportGift(ctx context.Context, data []byte) (domain.Flower, error)
}

// Result is what happened to one inbox file.
type Result string

const (
	ResultImported Result = "imported"
	ResultRejected Result = "rejected"
	ResultSkipped  Result = "skipped"
)

// Watcher imports every .flower file that appears in dir. Imported files
// move to processed/, files the garden refuses move to rejected/.
type Watcher struct {
	dir    string
	imp    importer
	settle time.Duration
	log    *slog.Logger

	mu     sync.Mutex
	timers map[string]*time.Timer
}

// New prepares dir and its processed/ and rejected/ subdirectories.
func New(logger *slog.Logger, dir string, imp importer) (*Watcher, error) {
	for _, d := range []string{dir, filepath.Join(dir, processedDir), filepath.Join(dir, rejectedDir)} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return nil, fmt.Errorf("inbox: create %s: %w", d, err)
		}
	}
	return &Watcher{
		dir:    dir,
		imp:    imp,
		settle: 250 * time.Millisecond,
		log:    logger.With("component", "inbox"),
		timers: make(map[string]*time.Timer),
	}, nil
}

// Run imports files already waiting in the inbox, then watches it until
// ctx is done. Writes are debounced so half-copied files are not read.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("inbox: watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(w.dir); err != nil {
		return fmt.Errorf("inbox: watch %s: %w", w.dir, err)
	}
	w.log.InfoContext(ctx, "watching gift inbox", slog.String("dir", w.dir))

	w.scan(ctx)

	ready := make(chan string, 16)
	defer w.stopTimers()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) {
				continue
			}
			if isGiftFile(ev.Name) {
				w.debounce(ctx, ev.Name, ready)
			}
		case path := <-ready:
			_, _ = w.ProcessFile(ctx, path)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.log.WarnContext(ctx, "inbox watcher error", slog.String("error", err.Error()))
		}
	}
}

func (w *Watcher) scan(ctx context.Context) {
	entries, err := os.ReadDir(w.dir)
	if err != nil {
		w.log.WarnContext(ctx, "inbox scan failed", slog.String("error", err.Error()))
		return
	}
	for _, e := range entries {
		if e.Type().IsRegular() && isGiftFile(e.Name()) {
			_, _ = w.ProcessFile(ctx, filepath.Join(w.dir, e.Name()))
		}
	}
}

func (w *Watcher) debounce(ctx context.Context, path string, ready chan<- string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if t, ok := w.timers[path]; ok {
		t.Reset(w.settle)
		return
	}
	w.timers[path] = time.AfterFunc(w.settle, func() {
		w.mu.Lock()
		delete(w.timers, path)
		w.mu.Unlock()
		select {
		case ready <- path:
		case <-ctx.Done():
		}
	})
}

func (w *Watcher) stopTimers() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for path, t := range w.timers {
		t.Stop()
		delete(w.timers, path)
	}
}

// ProcessFile imports one gift file and moves it out of the inbox. Files
// are left in place when the garden is unavailable.
func (w *Watcher) ProcessFile(ctx context.Context, path string) (Result, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return ResultSkipped, nil
	}
	if err != nil {
		return ResultSkipped, fmt.Errorf("inbox: read %s: %w", path, err)
	}

	f, err := w.imp.ImportGift(ctx, data)
	switch {
	case err == nil:
		w.log.InfoContext(ctx, "gift imported from inbox",
			slog.String("file", filepath.Base(path)),
			slog.String("flower_id", f.ID.String()),
		)
		metrics.InboxFile(string(ResultImported))
		return ResultImported, w.move(path, processedDir)
	case errors.Is(err, domain.ErrClosed) || ctx.Err() != nil:
		return ResultSkipped, err
	default:
		w.log.WarnContext(ctx, "gift rejected",
			slog.String("file", filepath.Base(path)),
			slog.String("error", err.Error()),
		)
		metrics.InboxFile(string(ResultRejected))
		if mvErr := w.move(path, rejectedDir); mvErr != nil {
			return ResultRejected, mvErr
		}
		return ResultRejected, err
	}
}

// move renames path into sub, suffixing the name when it is taken.
func (w *Watcher) move(path, sub string) error {
	name := filepath.Base(path)
	dst := filepath.Join(w.dir, sub, name)
	if _, err := os.Stat(dst); err == nil {
		ext := filepath.Ext(name)
		dst = filepath.Join(w.dir, sub,
			fmt.Sprintf("%s-%d%s", strings.TrimSuffix(name, ext), time.Now().UnixNano(), ext))
	}
	if err := os.Rename(path, dst); err != nil {
		return fmt.Errorf("inbox: move %s to %s: %w", name, sub, err)
	}
	return nil
}

func isGiftFile(path string) bool {
	base := filepath.Base(path)
	return strings.EqualFold(filepath.Ext(base), Extension) && !strings.HasPrefix(base, ".")
}
