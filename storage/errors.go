package storage

import (
	"errors"

	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
)

// pgForeignKeyViolation is the class 23 integrity-constraint code raised when
// an insert references a missing parent row.
const pgForeignKeyViolation = pq.ErrorCode("23503")

// isForeignKeyViolation reports whether err is a foreign-key constraint error
// from either supported driver. The caller translates it to ParentNotFound.
func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pgForeignKeyViolation
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey
	}

	return false
}
