package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/automaxprocs/maxprocs"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-ckb/internal/ckb/nervos"
	"github.com/goodnatureofminers/blockinsight7000-ckb/internal/ckb/repository/sqlite"
	"github.com/goodnatureofminers/blockinsight7000-ckb/internal/ckb/schema"
	"github.com/goodnatureofminers/blockinsight7000-ckb/internal/ckb/service/loader"
	"github.com/goodnatureofminers/blockinsight7000-ckb/internal/errs"
	"github.com/goodnatureofminers/blockinsight7000-ckb/internal/metrics"
)

type config struct {
	RPCURL             string        `long:"rpc-url" env:"CKB_LOADER_RPC_URL" description:"CKB node JSON-RPC URL" default:"http://127.0.0.1:8114"`
	StorePath          string        `long:"store-path" env:"CKB_LOADER_STORE_PATH" description:"path of the SQLite store file" default:"ckb.db"`
	Network            string        `long:"network" env:"CKB_LOADER_NETWORK" description:"network name used in metrics labels" default:"mainnet"`
	WindowSize         uint64        `long:"window-size" env:"CKB_LOADER_WINDOW_SIZE" description:"blocks fetched concurrently as one window" default:"100"`
	Concurrency        int           `long:"concurrency" env:"CKB_LOADER_CONCURRENCY" description:"windows in flight" default:"3"`
	EndBlock           uint64        `long:"end-block" env:"CKB_LOADER_END_BLOCK" description:"last block to load, 0 loads up to the node tip" default:"0"`
	FlushSize          int           `long:"flush-size" env:"CKB_LOADER_FLUSH_SIZE" description:"buffered blocks that trigger a store write" default:"20000"`
	ForceDrainInterval uint64        `long:"force-drain-interval" env:"CKB_LOADER_FORCE_DRAIN_INTERVAL" description:"force a full drain every N blocks, 0 disables" default:"100000"`
	ProgressInterval   uint64        `long:"progress-interval" env:"CKB_LOADER_PROGRESS_INTERVAL" description:"log progress every N blocks, 0 disables" default:"1000"`
	RPCTimeout         time.Duration `long:"rpc-timeout" env:"CKB_LOADER_RPC_TIMEOUT" description:"timeout of a single RPC request" default:"30s"`
	RPCRetries         int           `long:"rpc-retries" env:"CKB_LOADER_RPC_RETRIES" description:"retries of a transient RPC failure, 0 makes it fatal" default:"0"`
	RPCRateLimit       int           `long:"rpc-rate-limit" env:"CKB_LOADER_RPC_RATE_LIMIT" description:"max RPC requests per second, 0 disables" default:"0"`
	MetricsAddr        string        `long:"metrics-addr" env:"CKB_LOADER_METRICS_ADDR" description:"address for metrics server" default:":2112"`
}

func (c config) loaderConfig() loader.Config {
	return loader.Config{
		WindowSize:         c.WindowSize,
		Concurrency:        c.Concurrency,
		EndBlock:           c.EndBlock,
		FlushSize:          c.FlushSize,
		ForceDrainInterval: c.ForceDrainInterval,
		ProgressInterval:   c.ProgressInterval,
	}
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if _, err := maxprocs.Set(maxprocs.Logger(logger.Sugar().Infof)); err != nil {
		logger.Warn("failed to set GOMAXPROCS", zap.Error(err))
	}

	svc, err := run(ctx, cfg, logger)
	if err != nil {
		fields := []zap.Field{zap.Error(err), zap.Bool("configuration", errors.Is(err, errs.Configuration))}
		if svc != nil {
			if last, ok := svc.LastCommitted(); ok {
				fields = append(fields, zap.Uint64("last_committed_block", last))
			} else {
				fields = append(fields, zap.String("last_committed_block", "none"))
			}
		}
		logger.Fatal("ckb history loader failed", fields...)
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) (*loader.HistoryLoaderService, error) {
	if err := cfg.loaderConfig().Validate(); err != nil {
		return nil, err
	}
	if err := nervos.ValidateURL(cfg.RPCURL); err != nil {
		return nil, err
	}

	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	repo, err := sqlite.NewRepository(ctx, cfg.StorePath, metrics.NewSQLiteRepository(cfg.Network))
	if err != nil {
		return nil, errors.Wrap(err, "init repository")
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Error("failed to close store", zap.Error(err))
		}
	}()

	client, err := nervos.Dial(ctx, cfg.RPCURL, cfg.RPCTimeout, cfg.Concurrency*int(cfg.WindowSize))
	if err != nil {
		return nil, errors.Wrap(err, "init ckb rpc client")
	}
	defer client.Close()

	rpc := nervos.NewRPCClient(client, metrics.NewRPCClient(cfg.Network), cfg.RPCRateLimit)
	source := nervos.NewHistorySource(rpc, cfg.RPCRetries, logger.Named("source"))

	svc, err := loader.NewHistoryLoaderService(
		cfg.loaderConfig(),
		source,
		repo,
		schema.NewManager(repo.DB(), logger),
		metrics.NewHistoryLoader(cfg.Network),
		logger.With(zap.String("network", cfg.Network)),
	)
	if err != nil {
		return nil, err
	}
	return svc, svc.Run(ctx)
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
