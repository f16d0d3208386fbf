package repository

import (
	"errors"

	"condo-parking/internal/infra"
	"condo-parking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation    = "23505"
	pgForeignKeyViolated = "23503"
	pgExclusionViolation = "23P01"
)

// classifyError maps pgx errors onto repository error kinds so usecases can
// branch on infra.IsKind without seeing SQLSTATEs.
func classifyError(msg string, err error) error {
	if pgconv.IsNoRows(err) {
		return infra.WrapRepoErr(msg, err, infra.KindNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return infra.WrapRepoErr(msg, err, infra.KindDuplicateKey)
		case pgForeignKeyViolated:
			return infra.WrapRepoErr(msg, err, infra.KindForeignKeyViolated)
		case pgExclusionViolation:
			return infra.WrapRepoErr(msg, err, infra.KindConflict)
		}
	}

	return infra.WrapRepoErr(msg, err)
}
