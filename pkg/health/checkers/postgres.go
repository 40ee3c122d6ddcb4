package checkers

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

var errSchemaMissing = errors.New("schema not migrated: users table is missing")

// PostgresChecker reports ready once the database answers and the
// migrations have created the users table.
type PostgresChecker struct {
	pool *pgxpool.Pool
}

func NewPostgresChecker(pool *pgxpool.Pool) *PostgresChecker {
	return &PostgresChecker{pool: pool}
}

func (c *PostgresChecker) Name() string { return "postgres" }

func (c *PostgresChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	var migrated bool
	if err := c.pool.QueryRow(ctx, `SELECT to_regclass('public.users') IS NOT NULL`).Scan(&migrated); err != nil {
		return err
	}
	if !migrated {
		return errSchemaMissing
	}
	return nil
}
