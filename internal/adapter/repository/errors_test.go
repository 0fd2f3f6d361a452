package repository

import (
	"database/sql"
	stderrors "errors"
	"net"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/Kipkoech854/Real-estate-management/pkg/errors"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code string
	}{
		{"pgx no rows", pgx.ErrNoRows, errors.CodeNotFound},
		{"sql no rows", sql.ErrNoRows, errors.CodeNotFound},
		{"unique violation", &pgconn.PgError{Code: pgerrcode.UniqueViolation}, errors.CodeConflict},
		{"foreign key", &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}, errors.CodeNotFound},
		{"check violation", &pgconn.PgError{Code: pgerrcode.CheckViolation}, errors.CodeValidation},
		{"bad uuid", &pgconn.PgError{Code: pgerrcode.InvalidTextRepresentation}, errors.CodeValidation},
		{"other server error", &pgconn.PgError{Code: pgerrcode.SyntaxError}, errors.CodeInternal},
		{"admin shutdown", &pgconn.PgError{Code: pgerrcode.AdminShutdown}, errors.CodeStorageUnavailable},
		{"cannot connect now", &pgconn.PgError{Code: pgerrcode.CannotConnectNow}, errors.CodeStorageUnavailable},
		{"too many connections", &pgconn.PgError{Code: pgerrcode.TooManyConnections}, errors.CodeStorageUnavailable},
		{"connection failure", &pgconn.PgError{Code: pgerrcode.ConnectionFailure}, errors.CodeStorageUnavailable},
		{"bad password", &pgconn.PgError{Code: pgerrcode.InvalidPassword}, errors.CodeStorageUnavailable},
		{"dial failure", &net.OpError{Op: "dial", Err: stderrors.New("connection refused")}, errors.CodeStorageUnavailable},
		{"already classified", errors.Forbidden("nope", nil), errors.CodeForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classify("Conversation", "create conversation", tt.err)
			assert.True(t, errors.Is(err, tt.code), "got %v", err)
		})
	}

	assert.NoError(t, classify("User", "get user", nil))
}
