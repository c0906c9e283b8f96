package types

import (
	"context"
	"time"

	"github.com/angas/elpris-go/hours"
)

// HourlyPrice is one interval of a day's price schedule, [TimeStart, TimeEnd).
// Times keep the offset the provider sent them with.
type HourlyPrice struct {
	TimeStart time.Time
	TimeEnd   time.Time
	SEKPerKWh float64 // Spot price in SEK per kWh excluding VAT, can be negative
	EURPerKWh float64 // Zero if the provider does not report it
	EXR       float64 // SEK/EUR exchange rate used by the provider, zero if unknown
}

// Contains reports whether t falls within the half-open interval of the price.
func (p HourlyPrice) Contains(t time.Time) bool {
	return !t.Before(p.TimeStart) && t.Before(p.TimeEnd)
}

type PriceProvider interface {
	GetPrices(ctx context.Context, date hours.Date, area Area) ([]HourlyPrice, error)
}
