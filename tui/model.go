package tui

import (
	"context"
	"log/slog"
	"time"

	"github.com/angas/elpris-go/hours"
	"github.com/angas/elpris-go/tui/views"
	"github.com/angas/elpris-go/types"
	"github.com/angas/elpris-go/viewstate"
	"github.com/angas/elpris-go/widget"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

const (
	listWidth     = 48
	minListHeight = 5
	chromeHeight  = 20 // Header, selectors, summary and help around the list
)

type Model struct {
	ctx      context.Context
	logger   *slog.Logger
	provider types.PriceProvider

	state   viewstate.Snapshot
	initial viewstate.Request

	spinner spinner.Model
	list    viewport.Model
	help    help.Model
	keys    keyMap

	now        func() time.Time
	widgetName string
	showChart  bool
	width      int
	height     int
	quitting   bool
}

type Options struct {
	Area       types.Area
	WidgetName string
	ShowChart  bool
	Now        func() time.Time // Defaults to time.Now
}

// Messages
type pricesLoadedMsg struct {
	viewstate.Result
}

// ClockMsg is sent by the scheduler so the view can move the current
// interval and pick up a new day after midnight.
type ClockMsg time.Time

func New(ctx context.Context, logger *slog.Logger, provider types.PriceProvider, opts Options) Model {
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(views.Highlight)

	vp := viewport.New(listWidth, minListHeight*2)
	vp.MouseWheelEnabled = true

	state, req := viewstate.New(opts.Area, hours.FromTime(now()))

	return Model{
		ctx:        ctx,
		logger:     logger.With("module", "tui"),
		provider:   provider,
		state:      state,
		initial:    req,
		spinner:    s,
		list:       vp,
		help:       help.New(),
		keys:       keys,
		now:        now,
		widgetName: opts.WidgetName,
		showChart:  opts.ShowChart,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, fetchPrices(m.ctx, m.provider, m.initial))
}

// State returns the snapshot currently on screen.
func (m Model) State() viewstate.Snapshot {
	return m.state
}

func fetchPrices(ctx context.Context, provider types.PriceProvider, req viewstate.Request) tea.Cmd {
	return func() tea.Msg {
		prices, err := provider.GetPrices(ctx, req.Date, req.Area)
		return pricesLoadedMsg{viewstate.Result{RequestID: req.ID, Prices: prices, Err: err}}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.list.Width = min(listWidth, msg.Width)
		m.list.Height = max(minListHeight, msg.Height-chromeHeight)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case pricesLoadedMsg:
		return m.handlePricesLoaded(msg)

	case ClockMsg:
		t := time.Time(msg)
		next, req := m.state.Tick(t, hours.FromTime(t))
		if req != nil {
			m.logger.Info("new day, fetching prices", slog.String("date", req.Date.String()))
			return m.startFetch(next, *req)
		}
		m.state = next
		m.refreshList()
		return m, nil

	case spinner.TickMsg:
		if m.state.Loading() {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	today := hours.FromTime(m.now())

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Area):
		return m.selectArea(types.Areas[msg.String()[0]-'1'], today)

	case key.Matches(msg, m.keys.PrevArea):
		return m.selectArea(m.state.Area.Next(-1), today)

	case key.Matches(msg, m.keys.NextArea):
		return m.selectArea(m.state.Area.Next(1), today)

	case key.Matches(msg, m.keys.Day):
		return m.startFetch(m.state.ToggleDay(today))

	case key.Matches(msg, m.keys.Refresh):
		return m.startFetch(m.state.Refresh(today))
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft {
		today := hours.FromTime(m.now())
		for _, area := range types.Areas {
			if zone.Get(views.AreaZoneID(area)).InBounds(msg) {
				return m.selectArea(area, today)
			}
		}
		if zone.Get(views.DayToggleID).InBounds(msg) {
			return m.startFetch(m.state.ToggleDay(today))
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) selectArea(area types.Area, today hours.Date) (tea.Model, tea.Cmd) {
	next, req, err := m.state.SelectArea(area, today)
	if err != nil {
		m.logger.Warn("ignoring area selection", slog.Any("error", err))
		return m, nil
	}
	return m.startFetch(next, req)
}

// startFetch shows next and starts loading req. The spinner keeps a single
// tick loop, it is only restarted when it had stopped.
func (m Model) startFetch(next viewstate.Snapshot, req viewstate.Request) (tea.Model, tea.Cmd) {
	wasLoading := m.state.Loading()
	m.state = next
	m.logger.Debug("fetching prices",
		slog.Uint64("request", req.ID),
		slog.String("area", req.Area.String()),
		slog.String("date", req.Date.String()))

	cmd := fetchPrices(m.ctx, m.provider, req)
	if !wasLoading {
		cmd = tea.Batch(m.spinner.Tick, cmd)
	}
	return m, cmd
}

func (m Model) handlePricesLoaded(msg pricesLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.RequestID != m.state.RequestID {
		m.logger.Debug("discarding stale prices",
			slog.Uint64("request", msg.RequestID),
			slog.Uint64("latest", m.state.RequestID))
		return m, nil
	}

	m.state = m.state.Complete(msg.Result, m.now())
	if m.state.Err != nil {
		m.logger.Error("failed to fetch prices",
			slog.String("area", m.state.Area.String()),
			slog.String("date", m.state.Date.String()),
			slog.Any("error", m.state.Err))
	} else {
		m.logger.Info("prices loaded",
			slog.String("area", m.state.Area.String()),
			slog.String("date", m.state.Date.String()),
			slog.Int("count", len(m.state.Prices)))
	}
	m.refreshList()
	m.list.GotoTop()
	return m, nil
}

func (m *Model) refreshList() {
	m.list.SetContent(views.RenderList(m.state, m.now()))
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return views.Render(m.state, views.Props{
		Width:         m.width,
		Now:           m.now(),
		Spinner:       m.spinner.View(),
		List:          m.list.View(),
		Help:          m.help.View(m.keys),
		WidgetPreview: widget.Preview(m.widgetName),
		ShowChart:     m.showChart,
	})
}
