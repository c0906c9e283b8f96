package views

import (
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/angas/elpris-go/calc"
	"github.com/angas/elpris-go/hours"
	"github.com/angas/elpris-go/types"
	"github.com/angas/elpris-go/viewstate"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	cet   = time.FixedZone("CET", 3600)
	today = hours.Date{Year: 2025, Month: time.January, Day: 15}
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	os.Exit(m.Run())
}

func at(hour, min int) time.Time {
	return time.Date(2025, time.January, 15, hour, min, 0, 0, cet)
}

func price(startHour int, sek float64) types.HourlyPrice {
	return types.HourlyPrice{TimeStart: at(startHour, 0), TimeEnd: at(startHour+1, 0), SEKPerKWh: sek}
}

func morning() []types.HourlyPrice {
	return []types.HourlyPrice{price(8, 1.00), price(9, 1.50), price(10, 1.20)}
}

func ready(dayOffset int, now time.Time) viewstate.Snapshot {
	s, _ := viewstate.New(types.SE3, today)
	s, req, _ := s.SetDayOffset(dayOffset, today)
	return s.Complete(viewstate.Result{RequestID: req.ID, Prices: morning()}, now)
}

func TestHeaderPrice(t *testing.T) {
	assert.Equal(t, "1.50 kr/kWh", HeaderPrice(ready(viewstate.Today, at(9, 30))))
	assert.Equal(t, NotAvailable, HeaderPrice(ready(viewstate.Tomorrow, at(9, 30))))
	assert.Equal(t, NotAvailable, HeaderPrice(ready(viewstate.Today, at(23, 0))))
}

func TestRenderHeaderLoading(t *testing.T) {
	s, _ := viewstate.New(types.SE2, today)
	out := RenderHeader(s, "<spin>")
	assert.Contains(t, out, "<spin>")
	assert.Contains(t, out, "Område: SE2")
	assert.NotContains(t, out, NotAvailable)
}

func TestRenderErrorState(t *testing.T) {
	s, req := viewstate.New(types.SE3, today)
	s = s.Complete(viewstate.Result{
		RequestID: req.ID,
		Err:       &types.FetchError{Kind: types.KindHTTPStatus, StatusCode: 404},
	}, at(9, 30))

	list := RenderList(s, at(9, 30))
	out := Render(s, Props{Width: 80, Now: at(9, 30), List: list})

	assert.Contains(t, out, NotAvailable)
	assert.Contains(t, list, "Kunde inte hämta priser")
	assert.NotContains(t, out, "SEK (")
}

func TestRenderRow(t *testing.T) {
	annotated := calc.AnnotateDeltas(morning())

	row := RenderRow(annotated[1], false)
	assert.Contains(t, row, "09:00 → 10:00")
	assert.Contains(t, row, "1.50 SEK (+0.50)")

	row = RenderRow(annotated[2], false)
	assert.Contains(t, row, "1.20 SEK (-0.30)")

	row = RenderRow(annotated[0], false)
	assert.Contains(t, row, "1.00 SEK (0.00)")
}

func TestChangeStyle(t *testing.T) {
	assert.Equal(t, Rise, ChangeStyle(calc.Up).GetForeground())
	assert.Equal(t, Fall, ChangeStyle(calc.Down).GetForeground())
	assert.NotEqual(t, Rise, ChangeStyle(calc.Flat).GetForeground())
	assert.NotEqual(t, Fall, ChangeStyle(calc.Flat).GetForeground())
}

func TestRenderListOrder(t *testing.T) {
	list := RenderList(ready(viewstate.Today, at(9, 30)), at(9, 30))
	lines := strings.Split(list, "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "08:00")
	assert.Contains(t, lines[1], "09:00")
	assert.Contains(t, lines[2], "10:00")
}

func TestRenderListEmptyDay(t *testing.T) {
	s, req := viewstate.New(types.SE3, today)
	s = s.Complete(viewstate.Result{RequestID: req.ID, Prices: []types.HourlyPrice{}}, at(9, 30))
	assert.Contains(t, RenderList(s, at(9, 30)), "Inga priser")
}

func TestRenderTomorrow(t *testing.T) {
	s := ready(viewstate.Tomorrow, at(9, 30))
	out := Render(s, Props{Width: 120, Now: at(9, 30), List: RenderList(s, at(9, 30)), ShowChart: true})

	assert.Contains(t, out, NotAvailable)
	assert.Contains(t, out, "Visa idag")
	assert.Contains(t, out, "Prisskillnad (imorgon)")
	assert.Contains(t, out, "SEK/kWh")
}

func TestRenderToday(t *testing.T) {
	s := ready(viewstate.Today, at(9, 30))
	out := Render(s, Props{
		Width:         120,
		Now:           at(9, 30),
		List:          RenderList(s, at(9, 30)),
		Help:          "q quit",
		WidgetPreview: "[widget]",
	})

	assert.Contains(t, out, "1.50 kr/kWh")
	assert.Contains(t, out, "Visa imorgon")
	assert.Contains(t, out, "Prisskillnad (idag)")
	assert.Contains(t, out, "[widget]")
	assert.Contains(t, out, "q quit")
	for _, area := range types.Areas {
		assert.Contains(t, out, area.String())
	}
}

func TestRenderSummary(t *testing.T) {
	out := RenderSummary(ready(viewstate.Today, at(9, 30)))
	assert.Contains(t, out, "Lägst 1.00 (08:00)")
	assert.Contains(t, out, "Högst 1.50 (09:00)")
	assert.Contains(t, out, "Snitt 1.23")

	s, _ := viewstate.New(types.SE3, today)
	assert.Empty(t, RenderSummary(s))
}

func TestRenderChartFlatPrices(t *testing.T) {
	out := RenderChart([]types.HourlyPrice{price(0, 1), price(1, 1), price(2, 1)}, 30, 8)
	assert.NotEmpty(t, out)
	assert.Empty(t, RenderChart([]types.HourlyPrice{price(0, 1)}, 30, 8))
}

func TestRenderWithErrorValue(t *testing.T) {
	s, req := viewstate.New(types.SE3, today)
	s = s.Complete(viewstate.Result{RequestID: req.ID, Err: errors.New("dial tcp: timeout")}, at(9, 30))
	assert.Equal(t, NotAvailable, HeaderPrice(s))
}

func TestRenderUpdated(t *testing.T) {
	require.NoError(t, hours.SetGuiTimezone("Europe/Stockholm"))
	assert.Equal(t, "", RenderUpdated(viewstate.Snapshot{}))
	assert.Contains(t, RenderUpdated(ready(viewstate.Today, at(9, 30))), "Uppdaterad 2025-01-15 09:30:00")
}
