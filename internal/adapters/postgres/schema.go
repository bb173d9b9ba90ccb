package postgres

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var schemaSQL string

// EnsureSchema создает таблицы и индексы, если их еще нет. Идемпотентна.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if pool == nil {
		return fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	if _, err := pool.Exec(ctx, schemaSQL); err != nil {
		return storeError("failed to apply schema", err)
	}
	return nil
}
