package negotiation

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const pgSchema = `
CREATE TABLE IF NOT EXISTS language_negotiation (
	type_id   text NOT NULL,
	position  integer NOT NULL,
	method_id text NOT NULL,
	PRIMARY KEY (type_id, position)
);
CREATE TABLE IF NOT EXISTS language_types (
	type_id  text PRIMARY KEY,
	position integer NOT NULL
);`

// PGStore is a SettingsStore backed by PostgreSQL. Sequences are stored one
// row per (type, position, method) and replaced transactionally, so readers
// always see a fully-formed snapshot.
type PGStore struct {
	pool *pgxpool.Pool
}

// NewPGStore creates a Postgres-backed settings store and bootstraps its
// schema.
func NewPGStore(ctx context.Context, pool *pgxpool.Pool) (*PGStore, error) {
	if _, err := pool.Exec(ctx, pgSchema); err != nil {
		return nil, errors.Join(ErrStoreUnavailable, err)
	}
	return &PGStore{pool: pool}, nil
}

// Get returns the stored sequence for the type.
func (s *PGStore) Get(ctx context.Context, t TypeID) ([]MethodID, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT method_id FROM language_negotiation WHERE type_id = $1 ORDER BY position`,
		string(t))
	if err != nil {
		return nil, errors.Join(ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var seq []MethodID
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, errors.Join(ErrStoreUnavailable, err)
		}
		seq = append(seq, MethodID(id))
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrStoreUnavailable, err)
	}
	return seq, nil
}

// Set replaces the stored sequence for the type.
func (s *PGStore) Set(ctx context.Context, t TypeID, seq []MethodID) error {
	return s.inTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx,
			`DELETE FROM language_negotiation WHERE type_id = $1`, string(t)); err != nil {
			return err
		}
		for i, id := range seq {
			if _, err := tx.Exec(ctx,
				`INSERT INTO language_negotiation (type_id, position, method_id) VALUES ($1, $2, $3)`,
				string(t), i, string(id)); err != nil {
				return err
			}
		}
		return nil
	})
}

// EnabledTypes returns the recorded configurable type IDs.
func (s *PGStore) EnabledTypes(ctx context.Context) ([]TypeID, error) {
	rows, err := s.pool.Query(ctx, `SELECT type_id FROM language_types ORDER BY position`)
	if err != nil {
		return nil, errors.Join(ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var types []TypeID
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, errors.Join(ErrStoreUnavailable, err)
		}
		types = append(types, TypeID(id))
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrStoreUnavailable, err)
	}
	return types, nil
}

// SetEnabledTypes replaces the recorded configurable type IDs.
func (s *PGStore) SetEnabledTypes(ctx context.Context, types []TypeID) error {
	return s.inTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM language_types`); err != nil {
			return err
		}
		for i, id := range types {
			if _, err := tx.Exec(ctx,
				`INSERT INTO language_types (type_id, position) VALUES ($1, $2)`,
				string(id), i); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *PGStore) inTx(ctx context.Context, fn func(pgx.Tx) error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}

var _ SettingsStore = (*PGStore)(nil)
