package filestore

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/heartmarshall/florarium-backend/internal/domain"
)

// BackupDir stores rotating .bouquet backup files.
type BackupDir struct {
	dir string
	log *slog.Logger
}

// NewBackupDir creates the backup directory if needed.
func NewBackupDir(dir string, logger *slog.Logger) (*BackupDir, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("filestore: create %s: %w", dir, err)
	}
	return &BackupDir{dir: dir, log: logger.With("adapter", "backups")}, nil
}

// Write stores data as a new backup taken at t and returns its path.
func (b *BackupDir) Write(t time.Time, data []byte) (string, error) {
	path := filepath.Join(b.dir, domain.BackupFileName(t))
	if err := WriteFileAtomic(path, data); err != nil {
		return "", fmt.Errorf("filestore: %w", err)
	}
	return path, nil
}

// List returns backup paths, newest first.
func (b *BackupDir) List() ([]string, error) {
	entries, err := os.ReadDir(b.dir)
	if err != nil {
		return nil, fmt.Errorf("filestore: list backups: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), domain.BackupFileExtension) {
			continue
		}
		names = append(names, e.Name())
	}
	// Names embed a sortable timestamp.
	sort.Sort(sort.Reverse(sort.StringSlice(names)))

	paths := make([]string, len(names))
	for i, n := range names {
		paths[i] = filepath.Join(b.dir, n)
	}
	return paths, nil
}

// Prune deletes all but the keep most recent backups and returns how many
// files were removed.
func (b *BackupDir) Prune(keep int) (int, error) {
	paths, err := b.List()
	if err != nil {
		return 0, err
	}
	if keep < 0 {
		keep = 0
	}
	removed := 0
	for _, p := range paths[min(keep, len(paths)):] {
		if err := os.Remove(p); err != nil {
			b.log.Warn("remove old backup failed", slog.String("path", p), slog.String("error", err.Error()))
			continue
		}
		removed++
	}
	return removed, nil
}
