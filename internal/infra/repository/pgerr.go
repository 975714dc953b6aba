package repository

import (
	"errors"

	"flight-booking/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
)

// classify maps a pgx error onto a repository error kind.
func classify(msg string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return infra.WrapRepoErr(infra.KindNotFound, msg, err)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrCodeUniqueViolation:
			return infra.WrapRepoErr(infra.KindDuplicateKey, msg, err)
		case pgErrCodeForeignKeyViolation:
			return infra.WrapRepoErr(infra.KindForeignKeyViolated, msg, err)
		}
	}
	return infra.WrapRepoErr(infra.KindDBFailure, msg, err)
}
