package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/angas/elpris-go/config"
	"github.com/angas/elpris-go/task"
	"github.com/angas/elpris-go/types"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

// Start runs the price view until the user quits or ctx is cancelled.
func Start(ctx context.Context, logger *slog.Logger, provider types.PriceProvider, cnfg *config.AppConfig) error {
	zone.NewGlobal()

	m := New(ctx, logger, provider, Options{
		Area:       cnfg.Gui.GetArea(),
		WidgetName: cnfg.Widget.Name,
		ShowChart:  cnfg.Gui.Chart,
	})
	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	tasks := task.NewTasks(logger, cnfg.Gui, func(t time.Time) {
		p.Send(ClockMsg(t))
	})
	if err := tasks.Run(); err != nil {
		return err
	}
	defer tasks.Stop()

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
