// Package main runs the foreign-chain scanning daemon. It discovers burn
// transactions and submits claims through the API daemon, which stays the
// only writer of persistent state.
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
	"github.com/goodnatureofminers/burnbridge7000-backend/internal/metrics"
	"github.com/goodnatureofminers/burnbridge7000-backend/internal/model"
	"github.com/goodnatureofminers/burnbridge7000-backend/internal/scan"
	"github.com/goodnatureofminers/burnbridge7000-backend/internal/spv"
	"github.com/goodnatureofminers/burnbridge7000-backend/internal/transport"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type config struct {
	APIBaseURL         string        `long:"api-base-url" env:"BURN_SCANNER_API_BASE_URL" description:"burnd API base URL" default:"http://127.0.0.1:8000"`
	Network            model.Network `long:"network" env:"BURN_SCANNER_NETWORK" description:"foreign network to scan" required:"true"`
	ConfirmationDepth  uint32        `long:"confirmation-depth" env:"BURN_SCANNER_CONFIRMATION_DEPTH" description:"stay this many blocks behind the foreign tip" default:"6"`
	MinSupportedHeight uint32        `long:"min-supported-height" env:"BURN_SCANNER_MIN_SUPPORTED_HEIGHT" description:"lowest foreign height to scan" default:"0"`
	ForeignRPCURL      string        `long:"foreign-rpc-url" env:"BURN_SCANNER_FOREIGN_RPC_URL" description:"foreign node RPC URL" default:"http://127.0.0.1:8332"`
	ForeignRPCUser     string        `long:"foreign-rpc-user" env:"BURN_SCANNER_FOREIGN_RPC_USER" description:"foreign node RPC username"`
	ForeignRPCPassword string        `long:"foreign-rpc-password" env:"BURN_SCANNER_FOREIGN_RPC_PASSWORD" description:"foreign node RPC password"`
	HTTPTimeout        time.Duration `long:"http-timeout" env:"BURN_SCANNER_HTTP_TIMEOUT" description:"timeout for API requests" default:"30s"`
	MetricsAddr        string        `long:"metrics-addr" env:"BURN_SCANNER_METRICS_ADDR" description:"address for metrics server" default:":2112"`
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

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("burn scanner failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	if !cfg.Network.Valid() {
		return fmt.Errorf("unsupported network %q", cfg.Network)
	}

	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	apiClient, err := transport.NewClient(cfg.APIBaseURL, &http.Client{Timeout: cfg.HTTPTimeout})
	if err != nil {
		return fmt.Errorf("init api client: %w", err)
	}

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

	scanMetrics := metrics.NewScanner(string(cfg.Network))
	cursor, err := scan.NewCursor(apiClient, oracle, scanMetrics, logger)
	if err != nil {
		return fmt.Errorf("init scan cursor: %w", err)
	}

	scanner, err := scan.NewScanner(
		cursor,
		scan.NewRPCBlockSource(spvRPC),
		apiClient,
		cfg.Network,
		cfg.ConfirmationDepth,
		scanMetrics,
		logger,
	)
	if err != nil {
		return fmt.Errorf("init scanner: %w", err)
	}

	logger.Info("starting burn scanner",
		zap.String("network", string(cfg.Network)),
		zap.Uint32("confirmationDepth", cfg.ConfirmationDepth),
	)
	return scanner.Run(ctx)
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
