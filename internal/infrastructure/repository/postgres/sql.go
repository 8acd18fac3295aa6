package postgres

import (
	"database/sql"

	crerr "github.com/cockroachdb/errors"

	"github.com/soccerstats/dashboard-api/internal/usecase"
)

func isNotFound(err error) bool {
	return err == sql.ErrNoRows
}

// markUnavailable classifies driver and connection failures so the
// transport layer can answer 503 instead of a generic 500. Not-found
// is handled before wrapping and is never marked.
func markUnavailable(err error) error {
	if err == nil || isNotFound(err) {
		return err
	}
	return crerr.Mark(err, usecase.ErrDataSourceUnavailable)
}
