package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	repo "github.com/baharkarakas/mindbank/internal/repository"
)

type recordsRepo struct {
	pool *pgxpool.Pool
}

func (r *recordsRepo) Get(ctx context.Context, key string) ([]byte, error) {
	var payload []byte
	err := r.pool.QueryRow(ctx,
		`SELECT payload FROM records WHERE key=$1`,
		key,
	).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, repo.ErrNotFound
	}
	return payload, err
}

func (r *recordsRepo) Put(ctx context.Context, key string, payload []byte) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO records(key, payload, updated_at)
		 VALUES($1, $2, now())
		 ON CONFLICT (key) DO UPDATE
		    SET payload = EXCLUDED.payload,
		        updated_at = EXCLUDED.updated_at`,
		key, string(payload),
	)
	return err
}

// Quarantine keeps the unreadable row under a backup key.
func (r *recordsRepo) Quarantine(ctx context.Context, key string) (string, error) {
	backup := repo.BackupName(key, time.Now().UTC())
	tag, err := r.pool.Exec(ctx,
		`UPDATE records SET key=$2, updated_at=now() WHERE key=$1`,
		key, backup,
	)
	if err != nil {
		return "", err
	}
	if tag.RowsAffected() == 0 {
		return "", repo.ErrNotFound
	}
	return backup, nil
}
