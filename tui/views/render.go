// Package views turns a viewstate.Snapshot into terminal output. Every
// function here is pure: the same snapshot and props give the same string.
package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/linechart"
	"github.com/angas/elpris-go/calc"
	"github.com/angas/elpris-go/convert"
	"github.com/angas/elpris-go/hours"
	"github.com/angas/elpris-go/slice"
	"github.com/angas/elpris-go/types"
	"github.com/angas/elpris-go/viewstate"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

const (
	NotAvailable = "N/A"
	DayToggleID  = "day_toggle"
)

// AreaZoneID is the mouse zone id of an area tab.
func AreaZoneID(area types.Area) string {
	return "area_" + area.String()
}

type Props struct {
	Width         int
	Now           time.Time
	Spinner       string // Current spinner frame, shown while loading
	List          string // The scrolled price list, see RenderList
	Help          string
	WidgetPreview string
	ShowChart     bool
}

func Render(s viewstate.Snapshot, p Props) string {
	left := lipgloss.JoinVertical(lipgloss.Left,
		RenderHeader(s, p.Spinner),
		RenderAreaSelector(s.Area),
		"",
		RenderDayToggle(s.DayOffset),
		sectionTitleStyle.Render(SectionTitle(s.DayOffset)),
		p.List,
		RenderSummary(s),
		RenderUpdated(s),
	)

	var right []string
	if p.WidgetPreview != "" {
		right = append(right, labelStyle.Render("Widget"), p.WidgetPreview)
	}
	if p.ShowChart && len(s.Prices) > 1 {
		right = append(right, "", RenderChart(s.Prices, chartWidth(p.Width), 10))
	}

	body := left
	if len(right) > 0 {
		body = lipgloss.JoinHorizontal(lipgloss.Top,
			left,
			lipgloss.NewStyle().PaddingLeft(4).Render(lipgloss.JoinVertical(lipgloss.Left, right...)))
	}

	return zone.Scan(lipgloss.JoinVertical(lipgloss.Left, body, "", p.Help))
}

// HeaderPrice is the text of the price line in the header card.
func HeaderPrice(s viewstate.Snapshot) string {
	return s.Current.Format(func(v float64) string {
		return convert.Price(v) + " kr/kWh"
	}, NotAvailable)
}

func RenderHeader(s viewstate.Snapshot, spinner string) string {
	price := HeaderPrice(s)
	if s.Loading() {
		price = spinner
	}
	return cardStyle.Width(30).Render(lipgloss.JoinVertical(lipgloss.Center,
		cardTitleStyle.Render("Aktuellt pris"),
		currentPriceStyle.Render(price),
		"Område: "+s.Area.String(),
	))
}

func RenderAreaSelector(selected types.Area) string {
	tabs := make([]string, 0, len(types.Areas)+1)
	tabs = append(tabs, labelStyle.Render("Valt område: "))
	for i, area := range types.Areas {
		style := inactiveTabStyle
		if area == selected {
			style = activeTabStyle
		}
		label := fmt.Sprintf("%d %s", i+1, area)
		tabs = append(tabs, zone.Mark(AreaZoneID(area), style.Render(label)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, tabs...)
}

// DayToggleLabel names the day the button switches to.
func DayToggleLabel(dayOffset int) string {
	if dayOffset == viewstate.Tomorrow {
		return "Visa idag"
	}
	return "Visa imorgon"
}

func RenderDayToggle(dayOffset int) string {
	return zone.Mark(DayToggleID, buttonStyle.Render(DayToggleLabel(dayOffset)))
}

func SectionTitle(dayOffset int) string {
	if dayOffset == viewstate.Tomorrow {
		return "Prisskillnad (imorgon)"
	}
	return "Prisskillnad (idag)"
}

// RenderRow renders one interval as "HH:MM → HH:MM  x.xx SEK (±y.yy)" with
// the change coloured by direction.
func RenderRow(a calc.AnnotatedPrice, current bool) string {
	interval := fmt.Sprintf("%s → %s", hours.Clock(a.TimeStart), hours.Clock(a.TimeEnd))
	if current {
		interval = currentStyle.Render(interval)
	} else {
		interval = timeStyle.Render(interval)
	}
	price := fmt.Sprintf("%6s SEK (%s)", convert.Price(a.SEKPerKWh), convert.SignedPrice(a.Change))
	return interval + "   " + ChangeStyle(a.Direction()).Render(price)
}

func ChangeStyle(d calc.Direction) lipgloss.Style {
	switch d {
	case calc.Up:
		return riseStyle
	case calc.Down:
		return fallStyle
	default:
		return flatStyle
	}
}

// RenderList renders all rows, the row containing now is highlighted when
// showing today.
func RenderList(s viewstate.Snapshot, now time.Time) string {
	if len(s.Annotated) == 0 {
		if s.Phase == viewstate.Error {
			return errorStyle.Render("Kunde inte hämta priser")
		}
		if s.Phase == viewstate.Ready {
			return labelStyle.Render("Inga priser publicerade")
		}
		return ""
	}
	rows := slice.Map(s.Annotated, func(a calc.AnnotatedPrice) string {
		return RenderRow(a, s.DayOffset == viewstate.Today && a.Contains(now))
	})
	return strings.Join(rows, "\n")
}

func RenderSummary(s viewstate.Snapshot) string {
	if s.Summary.Count == 0 {
		return ""
	}
	sum := s.Summary
	return labelStyle.Render(fmt.Sprintf("Lägst %s (%s)  Högst %s (%s)  Snitt %s",
		convert.Price(sum.Min.SEKPerKWh), hours.Clock(sum.Min.TimeStart),
		convert.Price(sum.Max.SEKPerKWh), hours.Clock(sum.Max.TimeStart),
		convert.Price(sum.Average)))
}

func RenderUpdated(s viewstate.Snapshot) string {
	if s.UpdatedAt.IsZero() {
		return ""
	}
	return labelStyle.Render("Uppdaterad " + hours.FormatTimeInGuiTimezone(s.UpdatedAt))
}

func chartWidth(total int) int {
	w := total - 70
	if w < 20 {
		return 20
	}
	if w > 60 {
		return 60
	}
	return w
}

// RenderChart draws the day's prices as a line, x is the interval index.
func RenderChart(prices []types.HourlyPrice, width, height int) string {
	if len(prices) < 2 {
		return ""
	}
	sum := calc.Summary(prices)
	minY, maxY := sum.Min.SEKPerKWh, sum.Max.SEKPerKWh
	if minY == maxY {
		minY, maxY = minY-0.5, maxY+0.5
	}

	lc := linechart.New(width, height, 0, float64(len(prices)-1), minY, maxY)
	for i := 0; i < len(prices)-1; i++ {
		lc.DrawBrailleLine(
			canvas.Float64Point{X: float64(i), Y: prices[i].SEKPerKWh},
			canvas.Float64Point{X: float64(i + 1), Y: prices[i+1].SEKPerKWh},
		)
	}
	lc.DrawXYAxisAndLabel()

	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		labelStyle.Render("SEK/kWh"),
		lc.View(),
	))
}
