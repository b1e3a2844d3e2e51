package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-lab-access/internal/logger"
)

// NewPostgresDBForTest wraps conn as a postgres connection classified by c.
func NewPostgresDBForTest(conn *sql.DB, c ErrorClassificator) *DB {
	return &DB{
		DB:                 conn,
		dialect:            "postgres",
		builder:            sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		errorClassificator: c,
		logger:             logger.Nop(),
	}
}
