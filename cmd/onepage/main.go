package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/chaiwat-s/onepage/internal/cli"
	"github.com/chaiwat-s/onepage/internal/config"
	"github.com/chaiwat-s/onepage/internal/db"
	"github.com/chaiwat-s/onepage/internal/pdftext"
	"github.com/chaiwat-s/onepage/internal/repository"
	"github.com/chaiwat-s/onepage/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.onepage/onepage.db
	dbPath := os.Getenv("ONEPAGE_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".onepage", "onepage.db")
	}

	// Determine config path: env var or default ~/.onepage/config.yaml
	cfgPath := os.Getenv("ONEPAGE_CONFIG")
	if cfgPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		cfgPath = filepath.Join(home, ".onepage", "config.yaml")
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	startMonth, err := cfg.StartMonth()
	if err != nil {
		return err
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	projectRepo := repository.NewSQLiteProjectRepo(database)

	// Use-case telemetry is off unless explicitly requested.
	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if os.Getenv("ONEPAGE_LOG") == "1" {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	texts := pdftext.NewCommandExtractor(cfg.PdftotextPath)

	app := &cli.App{
		Projects: service.NewProjectService(projectRepo),
		Import:   service.NewImportService(projectRepo, texts, observer),
		Timeline: service.NewTimelineService(projectRepo, startMonth),
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
