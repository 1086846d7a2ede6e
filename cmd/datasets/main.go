package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	service "github.com/okian/pitchgen/internal/app"
	"github.com/okian/pitchgen/internal/config"
	"github.com/okian/pitchgen/internal/preview"
	"github.com/okian/pitchgen/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := logger.InitWithWriter(os.Stderr); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	// Generator sizes and locale come from the same config as the server.
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		_ = logger.SetLevelString("info")
	}

	var (
		seed    = flag.Int64("seed", cfg.Seed, "Random seed")
		rows    = flag.Int("rows", cfg.PreviewRows, "Number of preview rows per table")
		dataset = flag.String("dataset", preview.AllDatasets, "Dataset to generate, or all")
		asCSV   = flag.Bool("csv", false, "Write the selected dataset as CSV to stdout")
		help    = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		preview.ShowHelp(os.Stdout)
		return
	}

	// Validate already parsed the locale.
	tag, _ := cfg.Language()
	log := logger.Get()
	svc := service.New(
		service.WithLogger(log),
		service.WithSeed(cfg.Seed),
		service.WithSessionCount(cfg.SessionCount),
		service.WithEventCount(cfg.EventCount),
		service.WithTracking(cfg.TrackingFrames, cfg.TrackingHz),
		service.WithWellnessDays(cfg.WellnessDays),
		service.WithCacheSize(0),
	)

	run := &preview.Config{
		Seed:    *seed,
		Rows:    *rows,
		Dataset: *dataset,
		CSV:     *asCSV,
		Locale:  tag,
		Logger:  log,
	}
	if err := preview.Run(ctx, run, svc, os.Stdout); err != nil {
		log.Error(ctx, "preview failed", logger.Error(err))
		os.Exit(1)
	}
}
