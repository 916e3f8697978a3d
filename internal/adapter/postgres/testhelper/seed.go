package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/florarium-backend/internal/domain"
)

// UniqueAccount returns an account id no other test uses.
func UniqueAccount() string {
	return "account-" + uuid.New().String()[:8]
}

// SeedFlower inserts a synced flower for account and returns it.
func SeedFlower(t *testing.T, pool *pgxpool.Pool, account, name string, generated time.Time) domain.Flower {
	t.Helper()

	f := domain.NewFlower(name, "seeded "+name, generated.UTC().Truncate(time.Microsecond))
	payload, err := json.Marshal(f)
	if err != nil {
		t.Fatalf("SeedFlower: marshal: %v", err)
	}

	_, err = pool.Exec(context.Background(),
		`INSERT INTO synced_flowers (account_id, flower_id, name, payload, generated_date, is_favorite)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		account, f.ID, f.Name, payload, f.GeneratedDate, f.IsFavorite,
	)
	if err != nil {
		t.Fatalf("SeedFlower: insert: %v", err)
	}
	return f
}
