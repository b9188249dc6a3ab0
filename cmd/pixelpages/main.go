package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/jenn-182/Pixel-Pages-sub000/internal/activity"
	"github.com/jenn-182/Pixel-Pages-sub000/internal/catalog"
	"github.com/jenn-182/Pixel-Pages-sub000/internal/config"
	"github.com/jenn-182/Pixel-Pages-sub000/internal/engine"
	"github.com/jenn-182/Pixel-Pages-sub000/internal/ledger"
	"github.com/jenn-182/Pixel-Pages-sub000/internal/notify"
	"github.com/jenn-182/Pixel-Pages-sub000/internal/reconcile"
	"github.com/jenn-182/Pixel-Pages-sub000/internal/remote"
)

var BUILD_VERSION = "dev"

var configPath = flag.String("config", "", "path to the config file")
var playerID = flag.String("player", "", "player id for remote sync")
var offline = flag.Bool("offline", false, "skip the remote store and use local data only")

var helpFlag = flag.Bool("h", false, "display help information")
var versionFlag = flag.Bool("ver", false, "display build version")

func main() {
	flag.Parse()

	if *versionFlag {
		fmt.Println(BUILD_VERSION)
		return
	}

	if *helpFlag {
		fmt.Println("Usage of pixelpages:")
		flag.PrintDefaults()
		return
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := initializeLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	logger.Info("-------- new pixelpages session --------", zap.Any("args", os.Args))

	if err := run(cfg, logger); err != nil {
		logger.Error("unhandled error", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	db, err := openDatabase(cfg.Database.Path)
	if err != nil {
		return err
	}

	activityManager, err := activity.NewManager(db)
	if err != nil {
		return err
	}
	defer func() {
		_ = activityManager.Close()
	}()

	store, err := ledger.NewStore(db, logger)
	if err != nil {
		return err
	}

	var client *remote.Client
	if cfg.Remote.Enabled && !*offline {
		client = remote.NewClient(cfg.Remote.BaseURL, cfg.RemoteTimeout(), logger)
	}

	adapter := reconcile.NewAdapter(client, store, logger)
	dispatcher := notify.NewDispatcher(logger)
	cat := catalog.Default()

	service, err := engine.New(db, cat, store, adapter, dispatcher, cfg.Player.Username, logger)
	if err != nil {
		return err
	}

	dispatcher.Subscribe(func(event notify.UnlockEvent) {
		fmt.Printf("  🏆 Unlocked: %s (%s) — %s\n",
			event.Achievement.Name, event.Tier, event.Achievement.Description)
	})

	ctx := context.Background()
	player := *playerID
	if player == "" {
		player = cfg.Player.ID
	}

	source := service.Load(ctx, player)
	logger.Debug("session loaded", zap.String("source", string(source)))

	if client != nil {
		if drift, err := adapter.CheckCatalog(ctx, cat.IDs()); err != nil {
			logger.Debug("remote catalog unavailable", zap.Error(err))
		} else if len(drift.RemoteOnly) > 0 {
			fmt.Printf("  %d more achievement(s) are available in a newer version.\n", len(drift.RemoteOnly))
		}
	}

	// Pull fresh activity from the remote when it is reachable; the
	// local store keeps the engine usable offline.
	if client != nil && player != "" {
		if remoteLog, err := client.ActivityLog(ctx, player); err != nil {
			logger.Warn("remote activity unavailable, using local records", zap.Error(err))
		} else if err := activityManager.ReplaceAll(remoteLog); err != nil {
			logger.Warn("failed to cache remote activity", zap.Error(err))
		}
	}

	activityLog, err := activityManager.ActivityLog()
	if err != nil {
		return err
	}

	unlocked, err := service.Recalculate(activityLog)
	if err != nil {
		return err
	}
	if len(unlocked) == 0 {
		fmt.Println("  No new achievements this time.")
	}

	printDashboard(service, cat)
	return nil
}

func printDashboard(service *engine.Service, cat *catalog.Catalog) {
	profile := service.Profile()
	l := service.Ledger()

	fmt.Println()
	fmt.Printf("%s — Level %d (%s)\n", profile.Username, profile.Level, profile.Title)
	fmt.Printf("Total XP: %s   Streak: %d day(s) (best %d)\n",
		humanize.Comma(int64(profile.TotalXP)), profile.CurrentStreak, profile.LongestStreak)

	fmt.Printf("Achievements: %d/%d unlocked (%.0f%%)\n",
		l.UnlockedCount(), cat.Size(), l.CompletionPercent(cat.Size()))
	for _, tier := range []catalog.Tier{catalog.TierCommon, catalog.TierUncommon, catalog.TierRare, catalog.TierLegendary} {
		count := 0
		for _, def := range cat.ByTier(tier) {
			if l.IsUnlocked(def.ID) {
				count++
			}
		}
		fmt.Printf("  %-10s %d/%d\n", tier, count, len(cat.ByTier(tier)))
	}

	inProgress := service.InProgress(3)
	if len(inProgress) > 0 {
		fmt.Println("Closest to unlocking:")
		for _, entry := range inProgress {
			fmt.Printf("  %3d%%  %s — %s\n", entry.Progress, entry.Definition.Name, entry.Definition.Description)
		}
	}
}

func loadConfig() (*config.Config, error) {
	path := *configPath
	if path == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, ".pixelpages", "config.yaml")
		}
	}
	return config.Load(path)
}

func initializeLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(cfg.Log.Level)
	if err != nil {
		level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	if BUILD_VERSION == "dev" {
		level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	loggerConfig := zap.NewProductionConfig()
	loggerConfig.Level = level
	if cfg.Log.Path != "" {
		loggerConfig.OutputPaths = []string{cfg.Log.Path}
	}
	return loggerConfig.Build()
}

func openDatabase(path string) (*gorm.DB, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("opening database %s: %w", path, err)
	}
	return db, nil
}
