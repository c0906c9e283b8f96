package task

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/angas/elpris-go/config"
	"github.com/robfig/cron/v3"
)

type Tasks struct {
	cron      *cron.Cron
	cnfg      config.AppConfigGui
	ClockTask func()
}

func NewTasks(logger *slog.Logger, cnfg config.AppConfigGui, onTick func(time.Time)) *Tasks {
	logger = logger.With("module", "tasks")
	return &Tasks{
		cron:      cron.New(),
		cnfg:      cnfg,
		ClockTask: NewClockTask(logger.With(slog.String("task", "clock")), time.Now, onTick),
	}
}

func (t *Tasks) Run() error {
	if _, err := t.cron.AddFunc(t.cnfg.RefreshAt, t.ClockTask); err != nil {
		return fmt.Errorf("schedule clock task %q: %w", t.cnfg.RefreshAt, err)
	}
	t.cron.Start()
	return nil
}

func (t *Tasks) Stop() context.Context {
	return t.cron.Stop()
}
