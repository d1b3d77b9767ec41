// Package main runs the burn-claim API daemon: verification, the claim
// ledger, and the JSON HTTP API.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/btcsuite/btcd/rpcclient"
	"github.com/goodnatureofminers/burnbridge7000-backend/internal/admission"
	"github.com/goodnatureofminers/burnbridge7000-backend/internal/claims"
	chexport "github.com/goodnatureofminers/burnbridge7000-backend/internal/export/clickhouse"
	"github.com/goodnatureofminers/burnbridge7000-backend/internal/follower"
	"github.com/goodnatureofminers/burnbridge7000-backend/internal/localchain"
	"github.com/goodnatureofminers/burnbridge7000-backend/internal/metrics"
	"github.com/goodnatureofminers/burnbridge7000-backend/internal/model"
	"github.com/goodnatureofminers/burnbridge7000-backend/internal/repository/bolt"
	"github.com/goodnatureofminers/burnbridge7000-backend/internal/scan"
	"github.com/goodnatureofminers/burnbridge7000-backend/internal/settlement"
	"github.com/goodnatureofminers/burnbridge7000-backend/internal/spv"
	"github.com/goodnatureofminers/burnbridge7000-backend/internal/transport"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

type config struct {
	Addr                  string        `long:"addr" env:"BURND_ADDR" description:"API listen address" default:":8000"`
	DBPath                string        `long:"db-path" env:"BURND_DB_PATH" description:"bbolt database path" default:"burnd.db"`
	Network               model.Network `long:"network" env:"BURND_NETWORK" description:"foreign network the daemon serves" required:"true"`
	RequiredConfirmations uint32        `long:"required-confirmations" env:"BURND_REQUIRED_CONFIRMATIONS" description:"foreign confirmations required before a claim is accepted" default:"6"`
	LocalFinalityDepth    uint32        `long:"local-finality-depth" env:"BURND_LOCAL_FINALITY_DEPTH" description:"local blocks burying a claim before it is marked final" default:"6"`
	MinSupportedHeight    uint32        `long:"min-supported-height" env:"BURND_MIN_SUPPORTED_HEIGHT" description:"lowest foreign height the oracle serves" default:"0"`
	DisableBurns          bool          `long:"disable-burns" env:"BURND_DISABLE_BURNS" description:"start with the admission gate closed on first start"`
	ForeignRPCURL         string        `long:"foreign-rpc-url" env:"BURND_FOREIGN_RPC_URL" description:"foreign node RPC URL" default:"http://127.0.0.1:8332"`
	ForeignRPCUser        string        `long:"foreign-rpc-user" env:"BURND_FOREIGN_RPC_USER" description:"foreign node RPC username"`
	ForeignRPCPassword    string        `long:"foreign-rpc-password" env:"BURND_FOREIGN_RPC_PASSWORD" description:"foreign node RPC password"`
	LocalRPCURL           string        `long:"local-rpc-url" env:"BURND_LOCAL_RPC_URL" description:"local node RPC URL" default:"http://127.0.0.1:9332"`
	LocalRPCUser          string        `long:"local-rpc-user" env:"BURND_LOCAL_RPC_USER" description:"local node RPC username"`
	LocalRPCPassword      string        `long:"local-rpc-password" env:"BURND_LOCAL_RPC_PASSWORD" description:"local node RPC password"`
	ClickhouseDSN         string        `long:"clickhouse-dsn" env:"BURND_CLICKHOUSE_DSN" description:"optional ClickHouse DSN for analytics export"`
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

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("burnd failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	if !cfg.Network.Valid() {
		return fmt.Errorf("unsupported network %q", cfg.Network)
	}

	store, err := bolt.NewRepository(cfg.DBPath, metrics.NewClaimStore())
	if err != nil {
		return fmt.Errorf("open claim store: %w", err)
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			logger.Error("close claim store", zap.Error(closeErr))
		}
	}()

	foreignClient, err := newRPCClient(cfg.ForeignRPCURL, cfg.ForeignRPCUser, cfg.ForeignRPCPassword)
	if err != nil {
		return fmt.Errorf("init foreign rpc client: %w", err)
	}
	defer func() {
		foreignClient.Shutdown()
		foreignClient.WaitForShutdown()
	}()
	spvRPC := spv.NewRPCClient(foreignClient, metrics.NewSpvRPCClient(string(cfg.Network)))
	oracle, err := spv.NewNodeOracle(spvRPC, cfg.MinSupportedHeight)
	if err != nil {
		return fmt.Errorf("init spv oracle: %w", err)
	}

	localClient, err := newRPCClient(cfg.LocalRPCURL, cfg.LocalRPCUser, cfg.LocalRPCPassword)
	if err != nil {
		return fmt.Errorf("init local rpc client: %w", err)
	}
	defer func() {
		localClient.Shutdown()
		localClient.WaitForShutdown()
	}()
	engine, err := localchain.NewEngine(localClient, metrics.NewLocalchainRPCClient())
	if err != nil {
		return fmt.Errorf("init local engine: %w", err)
	}

	gate, err := admission.NewGate(store, !cfg.DisableBurns, logger)
	if err != nil {
		return fmt.Errorf("init admission gate: %w", err)
	}

	service, err := claims.NewService(
		store,
		oracle,
		engine,
		gate,
		cfg.Network,
		cfg.RequiredConfirmations,
		metrics.NewClaimService(string(cfg.Network)),
		logger,
	)
	if err != nil {
		return fmt.Errorf("init claim service: %w", err)
	}

	ledger, err := settlement.NewLedger(store, metrics.NewSettlement(), logger)
	if err != nil {
		return fmt.Errorf("init settlement ledger: %w", err)
	}

	cursor, err := scan.NewCursor(store, oracle, metrics.NewScanner(string(cfg.Network)), logger)
	if err != nil {
		return fmt.Errorf("init scan cursor: %w", err)
	}

	chainFollower, err := follower.NewFollower(engine, service, ledger, cfg.LocalFinalityDepth, logger)
	if err != nil {
		return fmt.Errorf("init chain follower: %w", err)
	}
	go func() {
		if runErr := chainFollower.Run(ctx); runErr != nil && !errors.Is(runErr, context.Canceled) {
			logger.Error("chain follower stopped", zap.Error(runErr))
		}
	}()

	if cfg.ClickhouseDSN != "" {
		sink, err := chexport.NewRepository(cfg.ClickhouseDSN, metrics.NewExporter())
		if err != nil {
			return fmt.Errorf("init clickhouse sink: %w", err)
		}
		defer func() {
			if closeErr := sink.Close(); closeErr != nil {
				logger.Error("close clickhouse sink", zap.Error(closeErr))
			}
		}()

		exporter, err := chexport.NewExporter(service, ledger, sink, logger)
		if err != nil {
			return fmt.Errorf("init exporter: %w", err)
		}
		go func() {
			if runErr := exporter.Run(ctx); runErr != nil {
				logger.Error("exporter stopped", zap.Error(runErr))
			}
		}()
	}

	handler := transport.NewHandler(service, cursor, gate, ledger, logger)
	mux := handler.Routes()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("shutting down the http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("starting http server",
		zap.String("addr", cfg.Addr),
		zap.String("network", string(cfg.Network)),
	)
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func newRPCClient(rawURL, user, password string) (*rpcclient.Client, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse rpc url: %w", err)
	}
	if parsed.Scheme != "http" {
		return nil, fmt.Errorf("rpc url scheme %q not supported, use http", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("rpc url missing host")
	}

	connCfg := &rpcclient.ConnConfig{
		Host:         parsed.Host,
		User:         user,
		Pass:         password,
		HTTPPostMode: true,
		DisableTLS:   true,
	}
	return rpcclient.New(connCfg, nil)
}
