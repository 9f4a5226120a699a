package main

import (
	"context"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/joho/godotenv"

	"propvault/internal/config"
	"propvault/internal/repository/memory"
	"propvault/internal/seed"
	"propvault/internal/service/export"
	"propvault/internal/service/report"
	"propvault/internal/service/vault"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist)
	_ = godotenv.Load()

	cfg := config.Load()

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Environment == "dev" {
		logLevel = slog.LevelDebug
	}

	var logOut io.Writer = os.Stdout
	if cfg.LogDir != "" {
		f, err := config.SetupLogFile(cfg.LogDir, config.MaxLogFiles)
		if err != nil {
			log.Fatalf("Failed to setup log file: %v", err)
		}
		defer f.Close()
		logOut = io.MultiWriter(os.Stdout, f)
	}

	logger := slog.New(slog.NewJSONHandler(logOut, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("session starting",
		"environment", cfg.Environment,
		"export_dir", cfg.ExportDir,
	)

	data, err := seed.Load()
	if err != nil {
		log.Fatalf("Failed to load seed data: %v", err)
	}

	ctx := context.Background()

	// Session-scoped document store
	store := memory.NewDocumentStore(logger)
	docs := vault.NewDocumentService(store, cfg, logger, nil)

	seeded, err := store.Create(ctx, data.Documents)
	if err != nil {
		log.Fatalf("Failed to seed documents: %v", err)
	}
	var totalSize int64
	for _, doc := range seeded {
		totalSize += doc.Size
	}
	logger.Info("vault seeded",
		"documents", len(seeded),
		"total_size", humanize.Bytes(uint64(totalSize)),
	)

	expiring, err := docs.ExpiringSoon(ctx)
	if err != nil {
		log.Fatalf("Failed to check expiring documents: %v", err)
	}
	for _, doc := range expiring {
		logger.Warn("document expiring soon",
			"id", doc.ID,
			"name", doc.Name,
			"expires", doc.ExpiryDate.Format("2006-01-02"),
		)
	}

	// Run the full multi-format analytics export
	facts := report.Aggregate(data.Analytics)
	orch := export.NewOrchestrator(export.NewDirSink(cfg.ExportDir), export.SystemClock(), logger)

	summary, err := orch.ExportAll(ctx, facts)
	if err != nil {
		logger.Error("export run failed", "error", err)
		os.Exit(1)
	}
	for _, name := range summary.Delivered {
		logger.Info("artifact written", "name", name)
	}
	logger.Info("session done",
		"state", string(orch.State()),
		"progress", orch.Progress(),
	)
}
