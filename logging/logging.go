package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

type Options struct {
	Console      io.Writer // nil disables console output
	ConsoleLevel slog.Level
	File         string // empty disables the log file
	FileLevel    slog.Level
}

// New builds a logger writing to the console and/or a log file. The returned
// close function must be called when the logger is no longer used.
func New(opts Options) (*slog.Logger, func() error, error) {
	var handlers []slog.Handler
	closeFn := func() error { return nil }

	if opts.Console != nil {
		handlers = append(handlers, tint.NewHandler(opts.Console, &tint.Options{
			Level:      opts.ConsoleLevel,
			TimeFormat: time.RFC3339,
		}))
	}

	if opts.File != "" {
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		handlers = append(handlers, tint.NewHandler(f, &tint.Options{
			Level:      opts.FileLevel,
			TimeFormat: time.RFC3339,
			NoColor:    true,
		}))
		closeFn = f.Close
	}

	switch len(handlers) {
	case 0:
		return slog.New(slog.DiscardHandler), closeFn, nil
	case 1:
		return slog.New(handlers[0]), closeFn, nil
	default:
		return slog.New(NewMultiHandler(handlers...)), closeFn, nil
	}
}
