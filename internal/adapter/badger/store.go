package badger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/dgraph-io/badger/v4"
)

// Config controls how the preferences database is opened.
type Config struct {
	Path           string
	InMemory       bool
	SyncWrites     bool
	GCDiscardRatio float64
}

// Store is a JSON-valued key/value store for flags, counters and metadata.
type Store struct {
	db  *badger.DB
	cfg Config
	log *slog.Logger
}

// Open opens (or creates) the preferences database.
func Open(cfg Config, logger *slog.Logger) (*Store, error) {
	if !cfg.InMemory && cfg.Path == "" {
		return nil, errors.New("badger: path is required for persistent database")
	}

	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(cfg.Path, 0o750); err != nil {
			return nil, fmt.Errorf("badger: create directory %s: %w", cfg.Path, err)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}

	log := logger.With("adapter", "badger")
	opts = opts.
		WithSyncWrites(cfg.SyncWrites).
		WithNumVersionsToKeep(1).
		WithLogger(&slogAdapter{log: log})

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("badger: open: %w", err)
	}
	return &Store{db: db, cfg: cfg, log: log}, nil
}

// Get decodes the value stored under key into dst.
// It reports false when the key does not exist.
func (s *Store) Get(_ context.Context, key string, dst any) (bool, error) {
	var raw []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("badger: get %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("badger: decode %s: %w", key, err)
	}
	return true, nil
}

// Set stores v as JSON under key.
func (s *Store) Set(_ context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("badger: encode %s: %w", key, err)
	}
	if err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), raw)
	}); err != nil {
		return fmt.Errorf("badger: set %s: %w", key, err)
	}
	return nil
}

// Delete removes keys. Missing keys are ignored.
func (s *Store) Delete(_ context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := s.db.Update(func(txn *badger.Txn) error {
		for _, k := range keys {
			if err := txn.Delete([]byte(k)); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return fmt.Errorf("badger: delete: %w", err)
	}
	return nil
}

// Keys lists every stored key. Used by diagnostics and tests.
func (s *Store) Keys(_ context.Context) ([]string, error) {
	var keys []string
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			keys = append(keys, string(it.Item().KeyCopy(nil)))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("badger: list keys: %w", err)
	}
	return keys, nil
}

// RunGC runs one value-log garbage collection pass: it rewrites files
// until badger reports nothing left to reclaim. Meant to be called
// periodically. In-memory stores have no value log.
func (s *Store) RunGC(ctx context.Context) error {
	if s.cfg.InMemory {
		return nil
	}
	ratio := s.cfg.GCDiscardRatio
	if ratio <= 0 || ratio >= 1 {
		ratio = 0.5
	}

	rewritten := 0
	for ctx.Err() == nil {
		err := s.db.RunValueLogGC(ratio)
		if errors.Is(err, badger.ErrNoRewrite) || errors.Is(err, badger.ErrRejected) {
			break
		}
		if err != nil {
			return fmt.Errorf("badger: value log gc: %w", err)
		}
		rewritten++
	}

	s.log.DebugContext(ctx, "value log gc finished", slog.Int("rewritten", rewritten))
	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// slogAdapter routes badger's internal logging to slog.
type slogAdapter struct {
	log *slog.Logger
}

func (l *slogAdapter) Errorf(format string, args ...any) {
	l.log.Error(fmt.Sprintf(format, args...))
}

func (l *slogAdapter) Warningf(format string, args ...any) {
	l.log.Warn(fmt.Sprintf(format, args...))
}

func (l *slogAdapter) Infof(format string, args ...any) {
	l.log.Debug(fmt.Sprintf(format, args...))
}

func (l *slogAdapter) Debugf(format string, args ...any) {
	l.log.Debug(fmt.Sprintf(format, args...))
}
