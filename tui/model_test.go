package tui

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/angas/elpris-go/hours"
	"github.com/angas/elpris-go/tui/views"
	"github.com/angas/elpris-go/types"
	"github.com/angas/elpris-go/viewstate"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cet = time.FixedZone("CET", 3600)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	os.Exit(m.Run())
}

type call struct {
	Date hours.Date
	Area types.Area
}

type stubProvider struct {
	mu     sync.Mutex
	prices []types.HourlyPrice
	err    error
	calls  []call
}

func (p *stubProvider) GetPrices(_ context.Context, date hours.Date, area types.Area) ([]types.HourlyPrice, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, call{Date: date, Area: area})
	return p.prices, p.err
}

func at(day, hour, min int) time.Time {
	return time.Date(2025, time.January, day, hour, min, 0, 0, cet)
}

func morning() []types.HourlyPrice {
	price := func(hour int, sek float64) types.HourlyPrice {
		return types.HourlyPrice{TimeStart: at(15, hour, 0), TimeEnd: at(15, hour+1, 0), SEKPerKWh: sek}
	}
	return []types.HourlyPrice{price(8, 1.00), price(9, 1.50), price(10, 1.20)}
}

func newModel(provider types.PriceProvider) Model {
	logger := slog.New(slog.DiscardHandler)
	return New(context.Background(), logger, provider, Options{
		Area: types.SE3,
		Now:  func() time.Time { return at(15, 9, 30) },
	})
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	res, ok := next.(Model)
	require.True(t, ok)
	return res, cmd
}

func keyPress(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func loaded(id uint64, prices []types.HourlyPrice, err error) pricesLoadedMsg {
	return pricesLoadedMsg{viewstate.Result{RequestID: id, Prices: prices, Err: err}}
}

func TestInitialFetch(t *testing.T) {
	provider := &stubProvider{prices: morning()}
	m := newModel(provider)

	require.True(t, m.State().Loading())
	require.Equal(t, uint64(1), m.initial.ID)
	assert.NotNil(t, m.Init())

	msg := fetchPrices(context.Background(), provider, m.initial)()
	m, cmd := update(t, m, msg)
	assert.Nil(t, cmd)

	require.Len(t, provider.calls, 1)
	assert.Equal(t, call{Date: hours.Date{Year: 2025, Month: time.January, Day: 15}, Area: types.SE3}, provider.calls[0])

	s := m.State()
	assert.Equal(t, viewstate.Ready, s.Phase)
	assert.Equal(t, "1.50 kr/kWh", views.HeaderPrice(s))
	assert.Contains(t, m.View(), "1.50 kr/kWh")
}

func TestToggleDayTwiceDiscardsStaleResult(t *testing.T) {
	m := newModel(&stubProvider{})
	m, _ = update(t, m, loaded(1, morning(), nil))

	m, cmd := update(t, m, keyPress("t"))
	assert.NotNil(t, cmd)
	assert.Equal(t, viewstate.Tomorrow, m.State().DayOffset)
	assert.Equal(t, uint64(2), m.State().RequestID)

	m, _ = update(t, m, keyPress("t"))
	assert.Equal(t, viewstate.Today, m.State().DayOffset)
	assert.Equal(t, uint64(3), m.State().RequestID)

	tomorrow := []types.HourlyPrice{{TimeStart: at(16, 0, 0), TimeEnd: at(16, 1, 0), SEKPerKWh: 9.99}}
	m, _ = update(t, m, loaded(2, tomorrow, nil))
	assert.True(t, m.State().Loading())

	m, _ = update(t, m, loaded(3, morning(), nil))
	s := m.State()
	assert.Equal(t, viewstate.Ready, s.Phase)
	assert.Equal(t, morning(), s.Prices)
	assert.Equal(t, 1.5, s.Current.Value())
}

func TestFetchErrorShowsNotAvailable(t *testing.T) {
	m := newModel(&stubProvider{})
	fetchErr := &types.FetchError{Kind: types.KindHTTPStatus, StatusCode: 404}
	m, _ = update(t, m, loaded(1, nil, fetchErr))

	s := m.State()
	assert.Equal(t, viewstate.Error, s.Phase)
	assert.Empty(t, s.Annotated)
	assert.Contains(t, m.View(), views.NotAvailable)
}

func TestAreaKeys(t *testing.T) {
	provider := &stubProvider{}
	m := newModel(provider)

	m, cmd := update(t, m, keyPress("2"))
	assert.Equal(t, types.SE2, m.State().Area)
	require.NotNil(t, cmd)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, types.SE3, m.State().Area)

	m, _ = update(t, m, keyPress("1"))
	m, _ = update(t, m, keyPress("h"))
	assert.Equal(t, types.SE4, m.State().Area)
	assert.Equal(t, uint64(5), m.State().RequestID)
}

func TestRefreshKeepsSelection(t *testing.T) {
	m := newModel(&stubProvider{})
	m, _ = update(t, m, keyPress("4"))
	m, _ = update(t, m, keyPress("t"))
	m, _ = update(t, m, loaded(3, morning(), nil))

	m, cmd := update(t, m, keyPress("r"))
	require.NotNil(t, cmd)
	s := m.State()
	assert.True(t, s.Loading())
	assert.Equal(t, types.SE4, s.Area)
	assert.Equal(t, viewstate.Tomorrow, s.DayOffset)
	assert.Equal(t, uint64(4), s.RequestID)
}

func TestClockMsgMovesCurrentPrice(t *testing.T) {
	m := newModel(&stubProvider{})
	m, _ = update(t, m, loaded(1, morning(), nil))
	assert.Equal(t, 1.5, m.State().Current.Value())

	m, cmd := update(t, m, ClockMsg(at(15, 10, 15)))
	assert.Nil(t, cmd)
	assert.Equal(t, 1.2, m.State().Current.Value())

	m, _ = update(t, m, ClockMsg(at(15, 12, 0)))
	assert.False(t, m.State().Current.IsValid())
}

func TestClockMsgFetchesNewDay(t *testing.T) {
	m := newModel(&stubProvider{})
	m, _ = update(t, m, loaded(1, morning(), nil))

	m, cmd := update(t, m, ClockMsg(at(16, 0, 5)))
	require.NotNil(t, cmd)
	s := m.State()
	assert.True(t, s.Loading())
	assert.Equal(t, hours.Date{Year: 2025, Month: time.January, Day: 16}, s.Date)
}

func TestMouseReleaseOutsideZones(t *testing.T) {
	m := newModel(&stubProvider{})
	m, cmd := update(t, m, tea.MouseMsg{X: 1000, Y: 1000, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	assert.Nil(t, cmd)
	assert.Equal(t, uint64(1), m.State().RequestID)
}

func TestHelpAndQuit(t *testing.T) {
	m := newModel(&stubProvider{})

	m, _ = update(t, m, keyPress("?"))
	assert.True(t, m.help.ShowAll)

	m, cmd := update(t, m, keyPress("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestFetchCommandCarriesError(t *testing.T) {
	boom := errors.New("boom")
	provider := &stubProvider{err: boom}
	req := viewstate.Request{ID: 7, Area: types.SE1, Date: hours.Date{Year: 2025, Month: time.January, Day: 16}}

	msg, ok := fetchPrices(context.Background(), provider, req)().(pricesLoadedMsg)
	require.True(t, ok)
	assert.Equal(t, uint64(7), msg.RequestID)
	assert.ErrorIs(t, msg.Err, boom)
	assert.Equal(t, types.SE1, provider.calls[0].Area)
}

func TestWindowSize(t *testing.T) {
	m := newModel(&stubProvider{})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 30, Height: 10})
	assert.Equal(t, 30, m.list.Width)
	assert.Equal(t, minListHeight, m.list.Height)
}
