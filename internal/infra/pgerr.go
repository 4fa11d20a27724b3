package infra

import (
	"errors"
	"fmt"

	"github.com/Vovarama1992/cloudio/internal/ports"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

func mapPgError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%s: %w", op, ports.ErrConflict)
		case pgForeignKeyViolation:
			return fmt.Errorf("%s: %w: unknown category", op, ports.ErrInvalidInput)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
