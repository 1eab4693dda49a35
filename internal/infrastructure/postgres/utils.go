package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/UDDITwork/FINREP-sub006/internal/domain/entity"
)

// Querier lo que necesitan los repos; lo cumplen *pgxpool.Pool y pgx.Tx.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// scanID los IDs se guardan como CHAR(24) hex.
func scanID(raw string) (entity.ID, error) {
	id, err := entity.ParseID(strings.TrimSpace(raw))
	if err != nil {
		return entity.ID{}, fmt.Errorf("id inválido en DB %q: %w", raw, err)
	}
	return id, nil
}
