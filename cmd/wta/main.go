package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/willsoar-boundare/working-time-around/internal/cli"
	"github.com/willsoar-boundare/working-time-around/internal/config"
	"github.com/willsoar-boundare/working-time-around/internal/db"
	"github.com/willsoar-boundare/working-time-around/internal/notify"
	"github.com/willsoar-boundare/working-time-around/internal/persist"
	"github.com/willsoar-boundare/working-time-around/internal/repository"
	"github.com/willsoar-boundare/working-time-around/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Config directory: env var or default ~/.wta
	cfgDir := os.Getenv("WTA_HOME")
	cfg, err := config.Load(cfgDir)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Open the state database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Optional dispatch logging; stderr would corrupt the TUI.
	var observer service.Observer = service.NoopObserver{}
	if os.Getenv("WTA_DEBUG") != "" {
		logFile, err := os.OpenFile(filepath.Join(filepath.Dir(cfg.DBPath), "wta.log"),
			os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err == nil {
			defer logFile.Close()
			observer = service.NewLogObserver(io.Writer(logFile))
		}
	}

	// Wire repository and tracker
	stateRepo := repository.NewSQLiteStateRepo(database)
	tracker := service.NewTracker(stateRepo, observer)

	// Load persisted state; corruption is reported once and the app
	// continues with an empty state.
	if _, err := tracker.Load(context.Background()); err != nil {
		if errors.Is(err, persist.ErrCorrupt) {
			fmt.Fprintf(os.Stderr, "Warning: stored records could not be read, starting empty: %v\n", err)
		} else {
			return fmt.Errorf("loading state: %w", err)
		}
	}

	app := &cli.App{
		Tracker: tracker,
		Config:  cfg,
		NewNotifier: func(url string) notify.Notifier {
			return notify.NewWebhookNotifier(url, time.Duration(cfg.WebhookTimeoutSeconds)*time.Second)
		},
		Online: notify.Online,
		Now:    time.Now,
	}

	// Detect interactive terminal for the TUI-by-default entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
