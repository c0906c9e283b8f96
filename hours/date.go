package hours

import (
	"fmt"
	"time"
	_ "time/tzdata"
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"
)

var (
	stockholmLoc *time.Location
	guiLocation  *time.Location = time.UTC
)

func init() {
	var err error
	stockholmLoc, err = time.LoadLocation("Europe/Stockholm")
	if err != nil {
		panic(fmt.Sprintf("failed to load Stockholm location: %v", err))
	}
}

func SetGuiTimezone(timezone string) error {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return fmt.Errorf("failed to load timezone %s: %w", timezone, err)
	}
	guiLocation = loc
	return nil
}

// Date is a calendar day in Swedish local time, which is the day
// the price areas publish their schedules for.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// PathString formats the date as YYYY/MM-DD.
func (d Date) PathString() string {
	return fmt.Sprintf("%04d/%02d-%02d", d.Year, d.Month, d.Day)
}

func (d Date) AddDays(days int) Date {
	if d.IsZero() {
		return d
	}
	return FromTime(d.Midnight().AddDate(0, 0, days))
}

// Midnight is the start of the day in Stockholm.
func (d Date) Midnight() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, stockholmLoc)
}

func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

func FromTime(t time.Time) Date {
	if t.IsZero() {
		return Date{}
	}
	t = t.In(stockholmLoc)
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

func Today() Date {
	return FromTime(time.Now())
}

func Parse(str string) (Date, error) {
	t, err := time.ParseInLocation(dateLayout, str, stockholmLoc)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", str, err)
	}
	return FromTime(t), nil
}

func LocationStockholm(t time.Time) time.Time {
	return t.In(stockholmLoc)
}

// Clock formats t as HH:MM in the offset t carries.
func Clock(t time.Time) string {
	if t.IsZero() {
		return "--:--"
	}
	return t.Format(clockLayout)
}

func FormatTimeInGuiTimezone(t time.Time) string {
	return t.In(guiLocation).Format("2006-01-02 15:04:05")
}
