package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
	"gopkg.in/natefinch/lumberjack.v2"
	_ "modernc.org/sqlite"

	v1 "github.com/vodarr/vodarr/internal/api/v1"
	"github.com/vodarr/vodarr/internal/backlog"
	"github.com/vodarr/vodarr/internal/config"
	"github.com/vodarr/vodarr/internal/download"
	"github.com/vodarr/vodarr/internal/events"
	"github.com/vodarr/vodarr/internal/history"
	"github.com/vodarr/vodarr/internal/library"
	"github.com/vodarr/vodarr/internal/migrations"
	"github.com/vodarr/vodarr/internal/resolver"
	"github.com/vodarr/vodarr/internal/scheduler"
	"github.com/vodarr/vodarr/internal/settings"
	"github.com/vodarr/vodarr/internal/subscription"
	"github.com/vodarr/vodarr/internal/ytdlp"
	"github.com/vodarr/vodarr/pkg/platform"
)

// eventRetention bounds how far back GET /api/v1/events can reach.
const eventRetention = 30 * 24 * time.Hour

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func logWriter(cfg config.LogConfig) io.Writer {
	if cfg.File == "" {
		return os.Stdout
	}
	return &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB, // megabytes
		MaxBackups: cfg.MaxBackups,
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	if r.status == 200 { // Only capture first WriteHeader call
		r.status = code
	}
	r.ResponseWriter.WriteHeader(code)
}

func logRequests(next http.Handler, log *slog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &statusRecorder{ResponseWriter: w, status: 200}
		next.ServeHTTP(wrapped, r)
		log.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", wrapped.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

func runServer(configPath string) error {
	if configPath == "" {
		discovered, err := config.Discover()
		if err != nil {
			return err
		}
		configPath = discovered
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(logWriter(cfg.Log), &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	// Ensure database and download directories exist
	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0755); err != nil {
		return fmt.Errorf("create db dir: %w", err)
	}
	if err := os.MkdirAll(cfg.YtDlp.DownloadDir, 0755); err != nil {
		return fmt.Errorf("create download dir: %w", err)
	}

	// Open database and run migrations
	db, err := sql.Open("sqlite", cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer func() { _ = db.Close() }()

	if err := migrations.Apply(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	// === Stores ===
	subStore := subscription.NewStore(db)
	taskStore := backlog.NewStore(db)
	libraryStore := library.NewStore(db)
	historyStore := history.NewStore(db)
	settingsStore := settings.NewStore(db)

	// === Event bus ===
	eventLog := events.NewEventLog(db)
	bus := events.NewBus(eventLog, logger.With("component", "bus"))
	defer bus.Close()

	// === yt-dlp ===
	extraArgs, err := cfg.YtDlp.SplitExtraArgs()
	if err != nil {
		return fmt.Errorf("ytdlp extra args: %w", err)
	}
	runner := ytdlp.New(cfg.YtDlp.Path, cfg.YtDlp.Timeout(), cfg.YtDlp.DownloadDir, extraArgs)

	if ver, err := runner.Version(context.Background()); err != nil {
		logger.Warn("yt-dlp not available", "path", cfg.YtDlp.Path, "error", err)
	} else {
		logger.Info("yt-dlp ready", "version", ver)
	}

	// === Resolvers ===
	registry := resolver.NewRegistry(logger)
	registry.Register(platform.YouTube, resolver.NewYouTube(runner))
	registry.Register(platform.Bilibili, resolver.NewBilibili(runner))

	// === Download pipeline ===
	tracker := download.NewTracker()
	gateway := download.NewManager(runner, libraryStore, tracker, bus, logger)

	// === Services ===
	subService := subscription.NewService(subStore, registry, bus, logger)

	sched := scheduler.New(scheduler.Deps{
		Subscriptions: subStore,
		Resolver:      registry,
		Gateway:       gateway,
		History:       historyStore,
		Settings:      settingsStore,
		Subscriber:    subService,
		Collections:   libraryStore,
	}, cfg.Scheduler.TickInterval(), logger)

	backlogRunner := backlog.NewRunner(taskStore, gateway, libraryStore, historyStore, runner, bus, logger)

	// === HTTP Setup ===
	mux := http.NewServeMux()

	apiV1, err := v1.NewWithDeps(v1.ServerDeps{
		Subscriptions: subService,
		Tasks:         taskStore,
		Library:       libraryStore,
		History:       historyStore,
		Settings:      settingsStore,
		Scheduler:     sched,
		Runner:        backlogRunner,
		Gateway:       gateway,
		Tracker:       tracker,
		Resolver:      registry,
		YtDlp:         runner,
		Bus:           bus,
		EventLog:      eventLog,
		Logger:        logger.With("component", "api"),
	}, v1.Config{Version: version})
	if err != nil {
		return fmt.Errorf("api: %w", err)
	}
	apiV1.RegisterRoutes(mux)

	srv := &http.Server{Addr: cfg.Server.Listen, Handler: logRequests(mux, logger)}

	logger.Info("server starting",
		"addr", cfg.Server.Listen,
		"database", cfg.Database.Path,
		"download_dir", cfg.YtDlp.DownloadDir,
		"scheduler", !cfg.Scheduler.Disabled,
		"log_level", cfg.Log.Level,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if !cfg.Scheduler.Disabled {
		sched.Start()
		defer sched.Stop()
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	g.Go(func() error {
		return backlogRunner.Run(ctx)
	})

	g.Go(func() error {
		return runPruner(ctx, eventLog, logger.With("component", "pruner"))
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	logger.Info("server stopped")
	return nil
}

// runPruner trims old events once an hour.
func runPruner(ctx context.Context, log *events.EventLog, logger *slog.Logger) error {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			n, err := log.Prune(eventRetention)
			if err != nil {
				logger.Error("prune failed", "error", err)
				continue
			}
			if n > 0 {
				logger.Info("pruned events", "removed", n)
			}
		}
	}
}
