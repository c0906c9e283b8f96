package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/angas/elpris-go/widget"
	"github.com/lmittmann/tint"
)

// Answers a single widget host callback, rendering to stdout.
func main() {
	action := flag.String("action", "WIDGET_ADDED", "host action: ADDED, UPDATE, RESIZED, DELETED or CLICK")
	name := flag.String("name", "Elpris", "widget name")
	id := flag.Int("id", 1, "widget instance id")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.RFC3339,
	}))

	a, err := widget.ParseAction(*action)
	if err != nil {
		logger.Error("invalid action", slog.Any("error", err))
		os.Exit(2)
	}

	err = widget.NewHandler(logger).Handle(widget.Event{
		Action: a,
		Widget: widget.Info{Name: *name, ID: *id},
		Render: func(v widget.View) error {
			_, err := fmt.Fprintln(os.Stdout, v.Body)
			return err
		},
	})
	if err != nil {
		logger.Error("widget callback failed", slog.Any("error", err))
		os.Exit(1)
	}
}
