package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/okian/touchline/internal/adapters/http/api"
	"github.com/okian/touchline/internal/config"
	"github.com/okian/touchline/pkg/logger"
	"github.com/okian/touchline/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/collectors"
)

// HTTP server timeout constants.
const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 10 * time.Second
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 30 * time.Second
)

func main() {
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		log.Error(ctx, "failed to load config", logger.Error(err))
		os.Exit(1)
	}
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	world, err := config.LoadWorld(ctx, cfg.WorldFile)
	if err != nil {
		log.Error(ctx, "failed to load world", logger.String("world_file", cfg.WorldFile), logger.Error(err))
		os.Exit(1)
	}

	sess := newSession(cfg, world, log, metrics.Default())

	var srv *http.Server
	if cfg.MetricsAddr != "" {
		srv = startStatusServer(ctx, cfg.MetricsAddr, sess, log)
	}

	profile, err := run(ctx, sess, cfg, world, log)
	switch {
	case errors.Is(err, context.Canceled):
		log.Info(ctx, "career interrupted")
	case err != nil:
		log.Error(ctx, "career failed", logger.Error(err))
	default:
		log.Info(ctx, "legacy profile",
			logger.Int("playthroughs", profile.Playthroughs),
			logger.Int("bestTier", profile.BestTier),
			logger.Int("totalSeasons", profile.TotalSeasons),
			logger.Int("legacyPoints", profile.LegacyPoints),
		)
	}

	if srv == nil {
		return
	}
	// Keep the status server up until asked to stop.
	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "status server shutdown failed", logger.Error(err))
	}
	log.Info(ctx, "status server stopped")
}

// startStatusServer serves the career status API and the metrics registry,
// including Go runtime collectors, on addr.
func startStatusServer(ctx context.Context, addr string, reader api.CareerReader, log logger.Logger) *http.Server {
	reg := metrics.GetRegistry()
	_ = reg.Register(collectors.NewGoCollector())
	_ = reg.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	api.NewServer(reader, metrics.Default()).Register(mux)

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}
	go func() {
		log.Info(ctx, "starting status server", logger.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error(ctx, "status server failed", logger.Error(err))
		}
	}()
	return srv
}
