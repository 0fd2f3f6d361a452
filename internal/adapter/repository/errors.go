package repository

import (
	"database/sql"
	stderrors "errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Kipkoech854/Real-estate-management/pkg/errors"
)

// classify turns a driver error into an AppError. resource names the
// entity for NotFound and Conflict messages, action is logged with the
// underlying error.
func classify(resource, action string, err error) error {
	if err == nil {
		return nil
	}

	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		return err
	}

	if stderrors.Is(err, pgx.ErrNoRows) || stderrors.Is(err, sql.ErrNoRows) {
		return errors.NotFound(resource, err)
	}

	var pgErr *pgconn.PgError
	if stderrors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return errors.Conflict(fmt.Sprintf("%s already exists", resource), err)
		case pgerrcode.ForeignKeyViolation:
			return errors.NotFound("Referenced record", err)
		case pgerrcode.CheckViolation, pgerrcode.NotNullViolation, pgerrcode.InvalidTextRepresentation:
			return errors.Validation(fmt.Sprintf("Invalid %s", resource), err)
		}
		if unavailable(pgErr.Code) {
			return errors.StorageUnavailable("Database unavailable", fmt.Errorf("%s: %w", action, err))
		}
		return errors.Internal(fmt.Sprintf("Failed to %s", action), err)
	}

	return errors.StorageUnavailable("Database unavailable", fmt.Errorf("%s: %w", action, err))
}

// unavailable reports server errors that mean the database cannot serve
// requests right now: connection failures, shutdowns, exhausted resources
// and rejected logins.
func unavailable(code string) bool {
	return pgerrcode.IsConnectionException(code) ||
		pgerrcode.IsInsufficientResources(code) ||
		pgerrcode.IsOperatorIntervention(code) ||
		pgerrcode.IsInvalidAuthorizationSpecification(code)
}
