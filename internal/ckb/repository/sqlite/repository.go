// Package sqlite stores the decomposed CKB history in a single SQLite file.
package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/cockroachdb/errors"
	// registers the "sqlite3" database/sql driver
	_ "github.com/mattn/go-sqlite3"

	"github.com/goodnatureofminers/blockinsight7000-ckb/internal/errs"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// Repository owns the store connection. All statements run on one connection
// so that connection-scoped pragmas apply to every write.
type Repository struct {
	db      *sql.DB
	metrics Metrics
}

// NewRepository opens the SQLite file at path, creating it when missing.
func NewRepository(ctx context.Context, path string, metrics Metrics) (*Repository, error) {
	if path == "" {
		return nil, errors.Mark(errors.New("sqlite path is required"), errs.Configuration)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite")
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.Wrapf(err, "ping sqlite %s", path)
	}

	return &Repository{db: db, metrics: metrics}, nil
}

// DB exposes the underlying connection for schema management.
func (r *Repository) DB() *sql.DB {
	return r.db
}

// Close closes the store connection.
func (r *Repository) Close() error {
	return r.db.Close()
}
