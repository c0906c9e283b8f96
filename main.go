package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/angas/elpris-go/config"
	"github.com/angas/elpris-go/hours"
	"github.com/angas/elpris-go/logging"
	"github.com/angas/elpris-go/priceapi"
	"github.com/angas/elpris-go/tui"
)

var Version = "?.?.?"

func main() {
	defer func() {
		if err := recover(); err != nil {
			exitWithError(slog.Default(), fmt.Errorf("application panicked: %v", err))
		}
	}()

	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cnfg, err := config.Load(*configPath)
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	if err := hours.SetGuiTimezone(cnfg.Gui.Timezone); err != nil {
		panic(fmt.Sprintf("failed to set GUI timezone: %v", err))
	}

	// The terminal belongs to the UI, so logs only go to the log file.
	logger, closeLog, err := logging.New(logging.Options{
		File:      cnfg.Logging.File,
		FileLevel: cnfg.Logging.GetFileLevel(),
	})
	if err != nil {
		panic(fmt.Sprintf("failed to create logger: %v", err))
	}
	defer closeLog()
	slog.SetDefault(logger)
	logger.Info("elpris is starting...",
		slog.String("version", Version),
		slog.String("area", cnfg.Gui.GetArea().String()),
		slog.String("provider", cnfg.PriceApi.Provider))

	provider, err := priceapi.New(cnfg.PriceApi)
	if err != nil {
		panic(fmt.Sprintf("failed to create price provider: %v", err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := tui.Start(ctx, logger, provider, cnfg); err != nil {
		exitWithError(logger, err)
	}
	logger.Info("application is shutting down...")
}

func exitWithError(logger *slog.Logger, err error) {
	if err != nil {
		logger.Error("application shutting down with error", slog.Any("error", err))
		fmt.Fprintln(os.Stderr, err)
	}
	if syncer, ok := logger.Handler().(interface{ Sync() error }); ok {
		if syncErr := syncer.Sync(); syncErr != nil {
			logger.Error("failed to flush logger", slog.Any("error", syncErr))
		}
	}

	time.Sleep(100 * time.Millisecond)
	os.Exit(1)
}
