// Command wordlists builds the localized word lists of the guessing game:
// en-GB spellings, French five-letter lemmas and de-pluralised Latvian lists.
// It is intended to be run offline, once per source list update.
//
// Flags:
//
//	--phase    comma-separated list of phases to run: spelling, lemma, plural (default: all)
//	--dry-run  transform the lists without writing output files
//	--config   path to YAML config file (default: CONFIG_PATH or ./wordlists.yaml)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/heartmarshall/wordlists/internal/app"
	"github.com/heartmarshall/wordlists/internal/app/wordlists"
	"github.com/heartmarshall/wordlists/internal/config"
	"github.com/heartmarshall/wordlists/internal/wordlist"
	"github.com/heartmarshall/wordlists/pkg/ctxutil"
)

// Compile-time interface assertion.
var _ wordlists.ListStore = (*wordlist.FileStore)(nil)

func main() {
	phaseFlag := flag.String("phase", "", "comma-separated phases to run (default: all)")
	dryRunFlag := flag.Bool("dry-run", false, "transform lists without writing output files")
	configFlag := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	// .env is optional.
	_ = godotenv.Load()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	// CLI flags override config.
	if *dryRunFlag {
		cfg.Run.DryRun = true
	}

	phases, err := wordlists.ParsePhases(*phaseFlag)
	if err != nil {
		logger.Error("parse phases", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Run.Timeout)
	defer cancel()
	ctx = ctxutil.WithRunID(ctx, uuid.New())

	logger.InfoContext(ctx, "starting wordlists",
		slog.String("version", app.BuildVersion()),
		slog.String("input_encoding", cfg.Run.InputEncoding),
		slog.Bool("dry_run", cfg.Run.DryRun),
	)

	store, err := wordlist.NewFileStore(cfg.Run.InputEncoding)
	if err != nil {
		logger.ErrorContext(ctx, "create file store", slog.String("error", err.Error()))
		os.Exit(1)
	}

	pipeline := wordlists.NewPipeline(logger, store, *cfg)
	if err := pipeline.Run(ctx, phases); err != nil {
		logger.ErrorContext(ctx, "pipeline failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if pipeline.HasErrors() {
		logger.WarnContext(ctx, "pipeline completed with errors")
		os.Exit(1)
	}

	logger.InfoContext(ctx, "pipeline completed successfully")
}
