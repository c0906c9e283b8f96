// Package widget answers the callbacks a home-screen widget host makes.
// The widget is static: it is drawn once when added and all other
// callbacks are intentionally ignored.
package widget

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type Action int

const (
	Added Action = iota + 1
	Update
	Resized
	Deleted
	Click
)

func (a Action) String() string {
	switch a {
	case Added:
		return "ADDED"
	case Update:
		return "UPDATE"
	case Resized:
		return "RESIZED"
	case Deleted:
		return "DELETED"
	case Click:
		return "CLICK"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// ParseAction accepts both the short form ("ADDED") and the host form
// ("WIDGET_ADDED"), case-insensitive.
func ParseAction(str string) (Action, error) {
	name := strings.TrimPrefix(strings.ToUpper(strings.TrimSpace(str)), "WIDGET_")
	for _, a := range []Action{Added, Update, Resized, Deleted, Click} {
		if a.String() == name {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown widget action %q", str)
}

var ErrUnknownWidget = errors.New("unknown widget")

type View struct {
	Name   string
	Width  int
	Height int
	Body   string
}

func (v View) String() string {
	return v.Body
}

// Info identifies the widget instance the host calls about.
type Info struct {
	Name string
	ID   int
}

type Event struct {
	Action Action
	Widget Info
	Render func(View) error
}

var (
	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("39")).
			Align(lipgloss.Center, lipgloss.Center)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))
)

func elprisWidget() View {
	const w, h = 14, 5
	body := frameStyle.Width(w).Height(h).Render(
		lipgloss.JoinVertical(lipgloss.Center,
			titleStyle.Render("⚡ Elpris"),
			"",
			"kr/kWh",
		))
	return View{Name: "Elpris", Width: w, Height: h, Body: body}
}

type Handler struct {
	logger  *slog.Logger
	widgets map[string]func() View
}

func NewHandler(logger *slog.Logger) *Handler {
	return &Handler{
		logger: logger,
		widgets: map[string]func() View{
			"Elpris": elprisWidget,
		},
	}
}

// Handle dispatches one host callback. Only Added renders, the other
// actions have nothing to do for a static widget.
func (h *Handler) Handle(ev Event) error {
	logger := h.logger.With(slog.String("action", ev.Action.String()), slog.String("widget", ev.Widget.Name))

	switch ev.Action {
	case Added:
		view, err := h.View(ev.Widget.Name)
		if err != nil {
			return err
		}
		if ev.Render == nil {
			return fmt.Errorf("widget %s: no render callback", ev.Widget.Name)
		}
		logger.Debug("rendering widget")
		if err := ev.Render(view); err != nil {
			return fmt.Errorf("render widget %s: %w", ev.Widget.Name, err)
		}
		return nil

	case Update:
		logger.Debug("ignoring widget action")
		return nil

	case Resized:
		logger.Debug("ignoring widget action")
		return nil

	case Deleted:
		logger.Debug("ignoring widget action")
		return nil

	case Click:
		logger.Debug("ignoring widget action")
		return nil

	default:
		return fmt.Errorf("widget %s: unsupported action %v", ev.Widget.Name, ev.Action)
	}
}

func (h *Handler) View(name string) (View, error) {
	fn, ok := h.widgets[name]
	if !ok {
		return View{}, fmt.Errorf("%w: %q", ErrUnknownWidget, name)
	}
	return fn(), nil
}

// Preview renders the named widget for display inside the app,
// unknown names render nothing.
func Preview(name string) string {
	view, err := NewHandler(slog.New(slog.DiscardHandler)).View(name)
	if err != nil {
		return ""
	}
	return view.Body
}
