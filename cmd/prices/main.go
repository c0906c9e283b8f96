package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/angas/elpris-go/config"
	"github.com/angas/elpris-go/hours"
	"github.com/angas/elpris-go/logging"
	"github.com/angas/elpris-go/priceapi"
	"github.com/angas/elpris-go/tui/views"
	"github.com/angas/elpris-go/types"
	"github.com/angas/elpris-go/viewstate"
)

// Prints one day's prices for an area without starting the terminal UI.
func main() {
	configPath := flag.String("config", "", "path to config file")
	areaFlag := flag.String("area", "", "price area, SE1-SE4 (default from config)")
	tomorrow := flag.Bool("tomorrow", false, "show tomorrow's prices")
	dateFlag := flag.String("date", "", "show prices for a given day, YYYY-MM-DD")
	flag.Parse()

	cnfg, err := config.Load(*configPath)
	if err != nil {
		fail(err)
	}

	logger, closeLog, err := logging.New(logging.Options{
		Console:      os.Stderr,
		ConsoleLevel: cnfg.Logging.GetConsoleLevel(),
	})
	if err != nil {
		fail(err)
	}
	defer closeLog()
	slog.SetDefault(logger)

	area := cnfg.Gui.GetArea()
	if *areaFlag != "" {
		if area, err = types.ParseArea(*areaFlag); err != nil {
			fail(err)
		}
	}

	today := hours.Today()
	if *dateFlag != "" {
		if today, err = hours.Parse(*dateFlag); err != nil {
			fail(err)
		}
	}

	provider, err := priceapi.New(cnfg.PriceApi)
	if err != nil {
		fail(err)
	}

	s, req := viewstate.New(area, today)
	if *tomorrow {
		s, req = s.ToggleDay(today)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cnfg.PriceApi.GetTimeout()+time.Second)
	defer cancel()

	prices, err := provider.GetPrices(ctx, req.Date, req.Area)
	now := time.Now()
	s = s.Complete(viewstate.Result{RequestID: req.ID, Prices: prices, Err: err}, now)
	if s.Err != nil {
		logger.Error("failed to fetch prices",
			slog.String("area", area.String()),
			slog.String("date", req.Date.String()),
			slog.Any("error", s.Err))
	}

	fmt.Printf("%s %s  %s\n", s.Area, s.Date, views.HeaderPrice(s))
	fmt.Println(views.SectionTitle(s.DayOffset))
	fmt.Println(views.RenderList(s, now))
	if summary := views.RenderSummary(s); summary != "" {
		fmt.Println(strings.TrimSpace(summary))
	}

	if s.Err != nil {
		closeLog()
		os.Exit(1)
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(2)
}
