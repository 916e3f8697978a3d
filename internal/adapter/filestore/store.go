package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/heartmarshall/florarium-backend/internal/domain"
)

// Collection aliases the domain list name so callers can use the short form.
type Collection = domain.Collection

const (
	Discovered = domain.CollectionDiscovered
	Favorites  = domain.CollectionFavorites
)

func fileName(c Collection) string {
	if c == Favorites {
		return "favorites.json"
	}
	return "flowers_collection.json"
}

// legacyKey is where older builds kept the collection inside preferences.
func legacyKey(c Collection) string {
	if c == Favorites {
		return "favorites"
	}
	return "discoveredFlowers"
}

// legacyStore is the preferences store holding pre-migration blobs.
type legacyStore interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Delete(ctx context.Context, keys ...string) error
}

// Store keeps flower collections as JSON documents in a directory.
type Store struct {
	dir    string
	legacy legacyStore
	log    *slog.Logger
}

// New creates the documents directory if needed. legacy may be nil.
func New(dir string, legacy legacyStore, logger *slog.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("filestore: create %s: %w", dir, err)
	}
	return &Store{dir: dir, legacy: legacy, log: logger.With("adapter", "filestore")}, nil
}

// Dir returns the documents directory.
func (s *Store) Dir() string { return s.dir }

// Load reads a collection. An empty or missing file triggers a one-time
// migration from the legacy preferences blob.
func (s *Store) Load(ctx context.Context, c Collection) ([]domain.Flower, error) {
	path := filepath.Join(s.dir, fileName(c))

	raw, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("filestore: read %s: %w", fileName(c), err)
	}

	var flowers []domain.Flower
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &flowers); err != nil {
			return nil, fmt.Errorf("filestore: decode %s: %w", fileName(c), err)
		}
	}
	if len(flowers) > 0 {
		return flowers, nil
	}
	return s.migrate(ctx, c)
}

func (s *Store) migrate(ctx context.Context, c Collection) ([]domain.Flower, error) {
	if s.legacy == nil {
		return nil, nil
	}

	var flowers []domain.Flower
	found, err := s.legacy.Get(ctx, legacyKey(c), &flowers)
	if err != nil {
		return nil, fmt.Errorf("filestore: read legacy %s: %w", legacyKey(c), err)
	}
	if !found || len(flowers) == 0 {
		return nil, nil
	}

	if err := s.Save(ctx, c, flowers); err != nil {
		s.log.ErrorContext(ctx, "legacy migration failed, keeping legacy data",
			slog.String("collection", string(c)),
			slog.String("error", err.Error()),
		)
		return flowers, nil
	}
	if err := s.legacy.Delete(ctx, legacyKey(c)); err != nil {
		s.log.WarnContext(ctx, "delete legacy key failed", slog.String("key", legacyKey(c)), slog.String("error", err.Error()))
	}

	s.log.InfoContext(ctx, "migrated legacy collection",
		slog.String("collection", string(c)),
		slog.Int("flowers", len(flowers)),
	)
	return flowers, nil
}

// Save writes a collection atomically.
func (s *Store) Save(_ context.Context, c Collection, flowers []domain.Flower) error {
	if flowers == nil {
		flowers = []domain.Flower{}
	}
	raw, err := json.MarshalIndent(flowers, "", "  ")
	if err != nil {
		return fmt.Errorf("filestore: encode %s: %w", fileName(c), err)
	}
	if err := WriteFileAtomic(filepath.Join(s.dir, fileName(c)), raw); err != nil {
		return fmt.Errorf("filestore: %w", err)
	}
	return nil
}

// Reset removes both collection files.
func (s *Store) Reset(_ context.Context) error {
	for _, c := range []Collection{Discovered, Favorites} {
		err := os.Remove(filepath.Join(s.dir, fileName(c)))
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("filestore: remove %s: %w", fileName(c), err)
		}
	}
	return nil
}

// WriteFileAtomic writes data to a temp file in the target directory and
// renames it into place.
func WriteFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp for %s: %w", filepath.Base(path), err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync %s: %w", filepath.Base(path), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", filepath.Base(path), err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename %s: %w", filepath.Base(path), err)
	}
	return nil
}
