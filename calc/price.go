package calc

import (
	"time"

	"github.com/angas/elpris-go/slice"
	"github.com/angas/elpris-go/types"
)

type Direction int

const (
	Flat Direction = iota
	Up
	Down
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "flat"
	}
}

// AnnotatedPrice is a price together with the change from the previous interval.
type AnnotatedPrice struct {
	types.HourlyPrice
	Change float64
}

func (a AnnotatedPrice) Direction() Direction {
	return DirectionOf(a.Change)
}

func DirectionOf(change float64) Direction {
	switch {
	case change > 0:
		return Up
	case change < 0:
		return Down
	default:
		return Flat
	}
}

// CurrentPrice returns the first price whose interval contains now.
func CurrentPrice(prices []types.HourlyPrice, now time.Time) (types.HourlyPrice, bool) {
	return slice.Find(prices, func(p types.HourlyPrice) bool {
		return p.Contains(now)
	})
}

// AnnotateDeltas computes the change from the previous price for every entry,
// the first entry has no predecessor and gets a change of zero.
func AnnotateDeltas(prices []types.HourlyPrice) []AnnotatedPrice {
	return slice.MapWithPrev(prices, func(prev *types.HourlyPrice, curr types.HourlyPrice) AnnotatedPrice {
		if prev == nil {
			return AnnotatedPrice{HourlyPrice: curr}
		}
		return AnnotatedPrice{HourlyPrice: curr, Change: curr.SEKPerKWh - prev.SEKPerKWh}
	})
}

type DaySummary struct {
	Min     types.HourlyPrice
	Max     types.HourlyPrice
	Average float64
	Count   int
}

// Summary finds the cheapest and most expensive interval and the average price.
// Ties keep the earliest interval.
func Summary(prices []types.HourlyPrice) DaySummary {
	if len(prices) == 0 {
		return DaySummary{}
	}

	s := DaySummary{Min: prices[0], Max: prices[0], Count: len(prices)}
	sum := 0.0
	for _, p := range prices {
		sum += p.SEKPerKWh
		if p.SEKPerKWh < s.Min.SEKPerKWh {
			s.Min = p
		}
		if p.SEKPerKWh > s.Max.SEKPerKWh {
			s.Max = p
		}
	}
	s.Average = sum / float64(len(prices))
	return s
}
