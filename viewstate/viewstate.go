// Package viewstate holds the state behind the price view. A Snapshot is an
// immutable value, every transition returns a new one. Fetches are tagged with
// a request id and only the completion of the most recent request is applied.
package viewstate

import (
	"fmt"
	"time"

	"github.com/angas/elpris-go/calc"
	"github.com/angas/elpris-go/hours"
	"github.com/angas/elpris-go/types"
	"github.com/angas/elpris-go/types/maybe"
)

type Phase int

const (
	Idle Phase = iota
	Loading
	Ready
	Error
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Error:
		return "error"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

const (
	Today    = 0
	Tomorrow = 1
)

// Request describes one fetch cycle.
type Request struct {
	ID        uint64
	Area      types.Area
	DayOffset int
	Date      hours.Date
}

// Result is the outcome of the fetch started for a Request.
type Result struct {
	RequestID uint64
	Prices    []types.HourlyPrice
	Err       error
}

type Snapshot struct {
	Phase     Phase
	Area      types.Area
	DayOffset int
	Date      hours.Date // Day the current (or last) request asked for
	RequestID uint64

	Prices    []types.HourlyPrice
	Annotated []calc.AnnotatedPrice
	Summary   calc.DaySummary
	Current   maybe.Maybe[float64]
	Err       error
	UpdatedAt time.Time
}

// New returns the initial snapshot, already loading today's prices for area.
func New(area types.Area, today hours.Date) (Snapshot, Request) {
	if !area.Valid() {
		area = types.DefaultArea
	}
	return Snapshot{Area: area, DayOffset: Today}.startFetch(today)
}

func (s Snapshot) Loading() bool {
	return s.Phase == Loading
}

func (s Snapshot) SelectArea(area types.Area, today hours.Date) (Snapshot, Request, error) {
	if !area.Valid() {
		return s, Request{}, fmt.Errorf("select area: invalid area %q", area)
	}
	s.Area = area
	next, req := s.startFetch(today)
	return next, req, nil
}

func (s Snapshot) SetDayOffset(offset int, today hours.Date) (Snapshot, Request, error) {
	if offset != Today && offset != Tomorrow {
		return s, Request{}, fmt.Errorf("set day offset: %d is neither today nor tomorrow", offset)
	}
	s.DayOffset = offset
	next, req := s.startFetch(today)
	return next, req, nil
}

func (s Snapshot) ToggleDay(today hours.Date) (Snapshot, Request) {
	s.DayOffset = 1 - s.DayOffset
	return s.startFetch(today)
}

// Refresh starts a new fetch cycle for the current selection.
func (s Snapshot) Refresh(today hours.Date) (Snapshot, Request) {
	return s.startFetch(today)
}

func (s Snapshot) startFetch(today hours.Date) (Snapshot, Request) {
	s.RequestID++
	s.Phase = Loading
	s.Date = today.AddDays(s.DayOffset)
	return s, Request{
		ID:        s.RequestID,
		Area:      s.Area,
		DayOffset: s.DayOffset,
		Date:      s.Date,
	}
}

// Complete applies the result of a fetch. Results of superseded requests are
// dropped and the snapshot is returned unchanged.
func (s Snapshot) Complete(res Result, now time.Time) Snapshot {
	if res.RequestID != s.RequestID {
		return s
	}

	s.UpdatedAt = now
	if res.Err != nil {
		s.Phase = Error
		s.Err = res.Err
		s.Prices = []types.HourlyPrice{}
		s.Annotated = []calc.AnnotatedPrice{}
		s.Summary = calc.DaySummary{}
		s.Current = maybe.None[float64]()
		return s
	}

	s.Phase = Ready
	s.Err = nil
	s.Prices = res.Prices
	if s.Prices == nil {
		s.Prices = []types.HourlyPrice{}
	}
	s.Annotated = calc.AnnotateDeltas(s.Prices)
	s.Summary = calc.Summary(s.Prices)
	s.Current = currentPrice(s.Prices, s.DayOffset, now)
	return s
}

// Tick re-evaluates time dependent state. When the day has rolled over the
// shown date no longer matches the day offset and a new fetch cycle starts,
// for tomorrow's view as well. Otherwise the current price is looked up
// again. The returned request is nil when nothing needs fetching.
func (s Snapshot) Tick(now time.Time, today hours.Date) (Snapshot, *Request) {
	if s.Date != today.AddDays(s.DayOffset) && s.Phase != Loading {
		next, req := s.startFetch(today)
		return next, &req
	}
	if s.Phase == Ready {
		s.Current = currentPrice(s.Prices, s.DayOffset, now)
	}
	return s, nil
}

// There is no "now" inside tomorrow's schedule so the lookup only runs for today.
func currentPrice(prices []types.HourlyPrice, dayOffset int, now time.Time) maybe.Maybe[float64] {
	if dayOffset != Today {
		return maybe.None[float64]()
	}
	p, ok := calc.CurrentPrice(prices, now)
	return maybe.FromOk(p.SEKPerKWh, ok)
}
