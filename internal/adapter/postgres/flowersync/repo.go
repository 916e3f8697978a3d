// Package flowersync stores a garden's flowers in PostgreSQL for cloud sync.
package flowersync

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/florarium-backend/internal/adapter/postgres"
	"github.com/heartmarshall/florarium-backend/internal/domain"
)

const (
	flowersTable  = "synced_flowers"
	metadataTable = "sync_metadata"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides synced-flower persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new flower sync repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ListFlowers returns every flower stored for account, most recently
// discovered first.
func (r *Repo) ListFlowers(ctx context.Context, account string) ([]domain.Flower, error) {
	query, args, err := psql.
		Select("payload").
		From(flowersTable).
		Where(sq.Eq{"account_id": account}).
		OrderBy("COALESCE(discovery_date, generated_date) DESC", "flower_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, flowersTable, account)
	}

	payloads, err := pgx.CollectRows(rows, pgx.RowTo[[]byte])
	if err != nil {
		return nil, postgres.MapError(err, flowersTable, account)
	}

	flowers := make([]domain.Flower, 0, len(payloads))
	for _, p := range payloads {
		var f domain.Flower
		if err := json.Unmarshal(p, &f); err != nil {
			return nil, fmt.Errorf("%s %s: decode payload: %w", flowersTable, account, err)
		}
		flowers = append(flowers, f)
	}
	return flowers, nil
}

// UpsertFlowers inserts or replaces flowers by id.
func (r *Repo) UpsertFlowers(ctx context.Context, account string, flowers []domain.Flower) error {
	if len(flowers) == 0 {
		return nil
	}

	now := time.Now().UTC()
	insert := psql.
		Insert(flowersTable).
		Columns("account_id", "flower_id", "name", "payload", "generated_date", "discovery_date", "is_favorite", "updated_at")

	for _, f := range flowers {
		payload, err := json.Marshal(f)
		if err != nil {
			return fmt.Errorf("encode flower %s: %w", f.ID, err)
		}
		insert = insert.Values(account, f.ID, f.Name, payload, f.GeneratedDate, f.Discovery.Date, f.IsFavorite, now)
	}

	query, args, err := insert.Suffix(`ON CONFLICT (account_id, flower_id) DO UPDATE SET
		name = EXCLUDED.name,
		payload = EXCLUDED.payload,
		generated_date = EXCLUDED.generated_date,
		discovery_date = EXCLUDED.discovery_date,
		is_favorite = EXCLUDED.is_favorite,
		updated_at = EXCLUDED.updated_at`).ToSql()
	if err != nil {
		return fmt.Errorf("build upsert query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, flowersTable, account)
	}
	return nil
}

// DeleteFlowersExcept removes every flower of account whose id is not in keep
// and returns how many rows were removed.
func (r *Repo) DeleteFlowersExcept(ctx context.Context, account string, keep []uuid.UUID) (int, error) {
	del := psql.Delete(flowersTable).Where(sq.Eq{"account_id": account})
	if len(keep) > 0 {
		ids := make([]string, len(keep))
		for i, id := range keep {
			ids[i] = id.String()
		}
		del = del.Where(sq.NotEq{"flower_id": ids})
	}

	query, args, err := del.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, flowersTable, account)
	}
	return int(tag.RowsAffected()), nil
}

// GetMetadata returns the sync metadata of account.
// Returns domain.ErrNotFound if the account never synced.
func (r *Repo) GetMetadata(ctx context.Context, account string) (domain.SyncMetadata, error) {
	query, args, err := psql.
		Select("last_modified", "device_id", "flower_count").
		From(metadataTable).
		Where(sq.Eq{"account_id": account}).
		ToSql()
	if err != nil {
		return domain.SyncMetadata{}, fmt.Errorf("build metadata query: %w", err)
	}

	var m domain.SyncMetadata
	err = postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).
		Scan(&m.LastModified, &m.DeviceID, &m.FlowerCount)
	if err != nil {
		return domain.SyncMetadata{}, postgres.MapError(err, metadataTable, account)
	}
	return m, nil
}

// PutMetadata stores the sync metadata of account.
func (r *Repo) PutMetadata(ctx context.Context, account string, m domain.SyncMetadata) error {
	query, args, err := psql.
		Insert(metadataTable).
		Columns("account_id", "device_id", "flower_count", "last_modified").
		Values(account, m.DeviceID, m.FlowerCount, m.LastModified).
		Suffix(`ON CONFLICT (account_id) DO UPDATE SET
			device_id = EXCLUDED.device_id,
			flower_count = EXCLUDED.flower_count,
			last_modified = EXCLUDED.last_modified`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build metadata upsert: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, metadataTable, account)
	}
	return nil
}

// DeleteAccount removes all flowers and metadata of account.
func (r *Repo) DeleteAccount(ctx context.Context, account string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	for _, table := range []string{flowersTable, metadataTable} {
		query, args, err := psql.Delete(table).Where(sq.Eq{"account_id": account}).ToSql()
		if err != nil {
			return fmt.Errorf("build delete %s: %w", table, err)
		}
		if _, err := q.Exec(ctx, query, args...); err != nil {
			return postgres.MapError(err, table, account)
		}
	}
	return nil
}
