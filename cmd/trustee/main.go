// Trustee holdings extraction and TSCF upload feed generation.
// Entry point for the batch pipeline.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/clamc/trustee/internal/config"
	"github.com/clamc/trustee/internal/services/extractor"
	"github.com/clamc/trustee/internal/services/report"
	"github.com/clamc/trustee/internal/services/upload"
	"github.com/clamc/trustee/internal/storage"
)

func main() {
	// .env is optional; real deployments use environment variables.
	_ = godotenv.Load()
	cfg := config.Load()

	logger := logrus.New()
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}
	extractor.SetLogger(logger)
	report.SetLogger(logger)
	upload.SetLogger(logger)

	flag.Usage = usage
	flag.Parse()
	if flag.NArg() < 1 {
		usage()
		os.Exit(2)
	}

	db, err := storage.New(cfg.AliasDBPath)
	if err != nil {
		logger.Fatalf("Failed to open reference database: %v", err)
	}
	defer db.Close()
	if err := db.Migrate(); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}
	aliases := storage.NewAliasRepository(db, logger)

	switch cmd := flag.Arg(0); cmd {
	case "extract":
		// Consolidated HTM bond holdings across every report in the folder.
		svc := extractor.NewService(aliases)
		if err := report.WriteHTMBondReport(svc, cfg.InputDir, cfg.OutputPath); err != nil {
			logger.Fatalf("Extraction failed: %v", err)
		}
		logger.WithField("output", cfg.OutputPath).Info("holdings report written")

	case "upload":
		// TSCF feed joining bond holdings against historical cost data.
		if err := upload.WriteFeed(cfg.InputDir, cfg.OutputPath); err != nil {
			logger.Fatalf("Feed generation failed: %v", err)
		}
		logger.WithField("output", cfg.OutputPath).Info("TSCF feed written")

	case "alias":
		// alias <name> <isin>: maintain the bond alias registry.
		if flag.NArg() != 3 {
			usage()
			os.Exit(2)
		}
		if err := aliases.Upsert(flag.Arg(1), flag.Arg(2)); err != nil {
			logger.Fatalf("Failed to store alias: %v", err)
		}

	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", cmd)
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: trustee <command>

Commands:
  extract              write consolidated HTM bond holdings CSV
  upload               write TSCF upload feed for the input folder
  alias <name> <isin>  add or update a bond alias mapping

Configuration comes from TRUSTEE_* environment variables (see internal/config).
`)
}
