// Package schema applies the store's two schema steps: base tables before the
// bulk load and secondary indexes after it.
package schema

import (
	"context"
	"database/sql"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-ckb/internal/errs"
	"github.com/goodnatureofminers/blockinsight7000-ckb/migrations"
)

const (
	// VersionTables is the migration step that creates the base tables.
	VersionTables uint = 1
	// VersionIndexes is the migration step that creates the secondary indexes.
	VersionIndexes uint = 2
)

var (
	bulkPragmas = []string{
		"PRAGMA synchronous = OFF",
		"PRAGMA journal_mode = MEMORY",
		"PRAGMA temp_store = MEMORY",
		"PRAGMA cache_size = -262144",
		"PRAGMA locking_mode = EXCLUSIVE",
	}
	durablePragmas = []string{
		"PRAGMA synchronous = FULL",
		"PRAGMA journal_mode = DELETE",
		"PRAGMA locking_mode = NORMAL",
	}
)

// Manager runs schema steps against a store connection it does not own.
type Manager struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewManager creates a Manager for db.
func NewManager(db *sql.DB, logger *zap.Logger) *Manager {
	return &Manager{
		db:     db,
		logger: logger.Named("schema"),
	}
}

// EnsureTables creates the base tables unless some schema step was already applied.
func (m *Manager) EnsureTables(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return m.withMigrate(func(mg *migrate.Migrate) error {
		version, dirty, err := mg.Version()
		switch {
		case errors.Is(err, migrate.ErrNilVersion):
			m.logger.Info("creating base tables")
			if err := mg.Migrate(VersionTables); err != nil {
				return errors.Wrap(err, "create base tables")
			}
			return nil
		case err != nil:
			return errors.Wrap(err, "read schema version")
		case dirty:
			return errors.Mark(errors.Newf("schema version %d is dirty", version), errs.Configuration)
		default:
			m.logger.Info("base tables already present", zap.Uint("version", version))
			return nil
		}
	})
}

// Prepare creates the base tables and switches the connection to bulk-write pragmas.
func (m *Manager) Prepare(ctx context.Context) error {
	if err := m.EnsureTables(ctx); err != nil {
		return err
	}
	return m.exec(ctx, bulkPragmas)
}

// BuildIndexes creates every secondary index in one step and restores durable pragmas.
func (m *Manager) BuildIndexes(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	started := time.Now()
	err := m.withMigrate(func(mg *migrate.Migrate) error {
		if err := mg.Migrate(VersionIndexes); err != nil {
			if errors.Is(err, migrate.ErrNoChange) {
				m.logger.Info("secondary indexes already present")
				return nil
			}
			return errors.Wrap(err, "create secondary indexes")
		}
		return nil
	})
	if err != nil {
		return err
	}
	m.logger.Info("secondary indexes built", zap.Duration("took", time.Since(started)))

	return m.exec(ctx, durablePragmas)
}

// Drop rolls back every schema step, removing indexes and tables.
func (m *Manager) Drop(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return m.withMigrate(func(mg *migrate.Migrate) error {
		if err := mg.Down(); err != nil {
			if errors.Is(err, migrate.ErrNoChange) {
				m.logger.Info("schema already empty")
				return nil
			}
			return errors.Wrap(err, "drop schema")
		}
		return nil
	})
}

// Version reports the applied schema step; zero means none.
func (m *Manager) Version() (version uint, dirty bool, err error) {
	err = m.withMigrate(func(mg *migrate.Migrate) error {
		var verr error
		version, dirty, verr = mg.Version()
		if errors.Is(verr, migrate.ErrNilVersion) {
			return nil
		}
		return verr
	})
	return version, dirty, err
}

// withMigrate builds a migrator on the shared connection. The migrator is not
// closed because that would close db; only the embedded source is released.
func (m *Manager) withMigrate(fn func(*migrate.Migrate) error) error {
	src, err := iofs.New(migrations.SQLite, migrations.SQLiteDir)
	if err != nil {
		return errors.Wrap(err, "open embedded migrations")
	}
	defer func() {
		if cerr := src.Close(); cerr != nil {
			m.logger.Warn("close migration source", zap.Error(cerr))
		}
	}()

	driver, err := sqlite3.WithInstance(m.db, &sqlite3.Config{})
	if err != nil {
		return errors.Wrap(err, "init migration driver")
	}

	mg, err := migrate.NewWithInstance("iofs", src, "sqlite3", driver)
	if err != nil {
		return errors.Wrap(err, "init migrate")
	}
	mg.Log = migrateLogger{logger: m.logger.Sugar()}

	return fn(mg)
}

func (m *Manager) exec(ctx context.Context, statements []string) error {
	for _, stmt := range statements {
		if _, err := m.db.ExecContext(ctx, stmt); err != nil {
			return errors.Wrapf(err, "exec %q", stmt)
		}
	}
	return nil
}

type migrateLogger struct {
	logger *zap.SugaredLogger
}

func (l migrateLogger) Printf(format string, v ...interface{}) {
	l.logger.Debugf(format, v...)
}

func (l migrateLogger) Verbose() bool {
	return false
}
