package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-ckb/internal/ckb/repository/sqlite"
	"github.com/goodnatureofminers/blockinsight7000-ckb/internal/ckb/schema"
	"github.com/goodnatureofminers/blockinsight7000-ckb/internal/metrics"
)

const (
	targetTables  = "tables"
	targetIndexes = "indexes"
	targetDown    = "down"
)

type config struct {
	StorePath string `long:"store-path" env:"MIGRATIONS_SQLITE_PATH" default:"ckb.db" description:"Path of the SQLite store file"`
	Network   string `long:"network" env:"MIGRATIONS_NETWORK" default:"mainnet" description:"Network name used in metrics labels"`
	Target    string `long:"target" env:"MIGRATIONS_TARGET" default:"indexes" choice:"tables" choice:"indexes" choice:"down" description:"tables creates the bare tables, indexes also builds secondary indexes, down drops everything"`
}

func main() {
	cfg := config{}
	if _, err := flags.Parse(&cfg); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		fmt.Fprintf(os.Stderr, "failed to parse flags: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := runMigrations(ctx, cfg, logger); err != nil {
		logger.Fatal("migration run failed", zap.Error(err))
	}
}

func runMigrations(ctx context.Context, cfg config, logger *zap.Logger) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	repo, err := sqlite.NewRepository(ctx, cfg.StorePath, metrics.NewSQLiteRepository(cfg.Network))
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Error("store close error", zap.Error(err))
		}
	}()

	manager := schema.NewManager(repo.DB(), logger)
	switch cfg.Target {
	case targetTables:
		err = manager.EnsureTables(ctx)
	case targetIndexes:
		if err = manager.EnsureTables(ctx); err == nil {
			err = manager.BuildIndexes(ctx)
		}
	case targetDown:
		err = manager.Drop(ctx)
	default:
		return fmt.Errorf("unknown target %q", cfg.Target)
	}
	if err != nil {
		return err
	}

	version, dirty, err := manager.Version()
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	logger.Info("migrations applied successfully",
		zap.String("target", cfg.Target),
		zap.Uint("version", version),
		zap.Bool("dirty", dirty),
	)
	return nil
}
