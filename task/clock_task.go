package task

import (
	"log/slog"
	"time"
)

// NewClockTask returns a task that reports the current time to onTick,
// letting the view re-evaluate which price interval is current.
func NewClockTask(logger *slog.Logger, now func() time.Time, onTick func(time.Time)) func() {
	return func() {
		t := now()
		logger.Debug("running clock task...", slog.Time("now", t))
		onTick(t)
	}
}
