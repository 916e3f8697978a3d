package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	// Pure-Go SQLite driver, registered as "sqlite".
	_ "modernc.org/sqlite"

	"github.com/heartmarshall/florarium-backend/internal/domain"
)

// Keys read by the widget process.
const (
	KeyWidgetData          = "widgetData"
	KeyHasUnrevealedFlower = "hasUnrevealedFlower"
	KeyNextFlowerTime      = "nextFlowerTime"
	KeyPendingFlower       = "pendingFlower"
)

const schema = `
CREATE TABLE IF NOT EXISTS shared_defaults (
	key        TEXT PRIMARY KEY,
	value      BLOB NOT NULL,
	updated_at TEXT NOT NULL
)`

// WidgetStore is the shared container the widget process reads. The
// garden only ever writes it.
type WidgetStore struct {
	db  *sql.DB
	now func() time.Time
	log *slog.Logger
}

// Open opens or creates the shared database at path.
// Use ":memory:" for tests.
func Open(ctx context.Context, path string, logger *slog.Logger) (*WidgetStore, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("sqlite: open: %w", err)
	}
	// One connection keeps ":memory:" databases shared across calls.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: ping: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: init schema: %w", err)
	}
	return &WidgetStore{db: db, now: time.Now, log: logger.With("adapter", "sqlite")}, nil
}

// Publish replaces every widget key in a single transaction. Nil values
// delete their key.
func (s *WidgetStore) Publish(ctx context.Context, p domain.WidgetProjection) error {
	values := map[string]any{
		KeyWidgetData:          p.Snapshot,
		KeyHasUnrevealedFlower: p.HasUnrevealedFlower,
		KeyNextFlowerTime:      nil,
		KeyPendingFlower:       nil,
	}
	if p.NextFlowerTime != nil {
		values[KeyNextFlowerTime] = *p.NextFlowerTime
	}
	if p.PendingFlower != nil {
		values[KeyPendingFlower] = *p.PendingFlower
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlite: begin: %w", err)
	}
	defer tx.Rollback()

	updated := s.now().UTC().Format(time.RFC3339Nano)
	for key, v := range values {
		if v == nil {
			if _, err := tx.ExecContext(ctx, `DELETE FROM shared_defaults WHERE key = ?`, key); err != nil {
				return fmt.Errorf("sqlite: delete %s: %w", key, err)
			}
			continue
		}
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("sqlite: encode %s: %w", key, err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO shared_defaults (key, value, updated_at) VALUES (?, ?, ?)
			 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
			key, raw, updated,
		); err != nil {
			return fmt.Errorf("sqlite: write %s: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sqlite: commit: %w", err)
	}

	s.log.DebugContext(ctx, "widget projection published",
		slog.Int("recent", len(p.Snapshot.RecentFlowers)),
		slog.Bool("pending", p.HasUnrevealedFlower),
	)
	return nil
}

// Read decodes the value stored under key into dst, as the widget would.
// It reports false when the key is absent.
func (s *WidgetStore) Read(ctx context.Context, key string, dst any) (bool, error) {
	var raw []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM shared_defaults WHERE key = ?`, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("sqlite: read %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("sqlite: decode %s: %w", key, err)
	}
	return true, nil
}

// Close releases the database.
func (s *WidgetStore) Close() error {
	return s.db.Close()
}
