package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/campuslink/campuslink-bot/internal/admin"
	"github.com/campuslink/campuslink-bot/internal/bot"
	"github.com/campuslink/campuslink-bot/internal/config"
	"github.com/campuslink/campuslink-bot/internal/files"
	"github.com/campuslink/campuslink-bot/internal/logging"
	"github.com/campuslink/campuslink-bot/internal/paths"
	"github.com/campuslink/campuslink-bot/internal/storage"
	"github.com/campuslink/campuslink-bot/internal/wizard"
)

var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

const (
	maxLogSize    = 200 * 1024
	sweepInterval = 5 * time.Minute
)

func main() {
	devFlag := flag.Bool("dev", false, "Run in development mode (local testing)")
	flag.Parse()

	p := paths.Default()
	if *devFlag {
		p = paths.Dev()
		if err := os.MkdirAll(filepath.Dir(p.ConfigPath), 0755); err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot create %s\n", filepath.Dir(p.ConfigPath))
			os.Exit(1)
		}
	}

	// Initialize logger BEFORE config load (default INFO level)
	logger, err := logging.Setup(p.LogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logging: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	if *devFlag {
		slog.Info("Running in DEVELOPMENT mode", "config", p.ConfigPath)
	}

	cfg, err := config.Load(p.ConfigPath)
	if os.IsNotExist(err) {
		slog.Info("Config not found", "path", p.ConfigPath)
		os.Exit(0)
	}
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	logger.SetLevel(cfg.LogLevel)

	if strings.TrimSpace(cfg.BotToken) == "" {
		slog.Info("Bot token not configured, skipping")
		os.Exit(0)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.StartRotation(ctx, maxLogSize, time.Minute)

	dbPath := cfg.DatabasePath
	if !filepath.IsAbs(dbPath) {
		dbPath = filepath.Join(p.DataDir, dbPath)
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		slog.Error("Failed to create data dir", "error", err)
		os.Exit(1)
	}
	store, err := storage.Open(dbPath)
	if err != nil {
		slog.Error("Failed to open database", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	uploadDir := cfg.UploadDir
	if !filepath.IsAbs(uploadDir) {
		uploadDir = filepath.Join(p.DataDir, uploadDir)
	}
	fileStore := files.NewDisk(uploadDir, cfg.PublicBaseURL)

	engine := wizard.New(store, fileStore, time.Duration(cfg.SessionTTLMinutes)*time.Minute)
	engine.StartSweep(ctx, sweepInterval)

	b, err := bot.New(cfg, store, engine)
	if err != nil {
		slog.Error("Failed to create bot", "error", err)
		os.Exit(1)
	}
	if err := b.RegisterCommands(); err != nil {
		slog.Warn("Failed to register commands", "error", err)
	}

	if cfg.AdminJWTSecret != "" {
		srv := admin.NewServer(cfg.AdminListen, cfg.AdminJWTSecret, admin.NewHandler(store, store))
		go func() {
			if err := srv.Run(ctx); err != nil {
				slog.Error("Admin API stopped", "error", err)
			}
		}()
	} else {
		slog.Info("Admin API disabled, no JWT secret configured")
	}

	slog.Info("CampusLink bot started", "version", fmt.Sprintf("%s (%s, %s)", Version, Commit, BuildDate))
	b.Run(ctx)
	slog.Info("Bot stopped")
}
