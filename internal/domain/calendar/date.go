package calendar

import (
	"errors"
	"fmt"
	"math"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
	LabelLayout = "January 2006"
)

var (
	ErrInvalidDate  = errors.New("invalid date")
	ErrInvalidMonth = errors.New("invalid month")
	ErrInvalidRange = errors.New("check-out must be after check-in")
)

// Date is a timezone-naive calendar date, held as midnight UTC.
type Date struct {
	t time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf returns the calendar date of t as observed in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return Date{t: t}, nil
}

func (d Date) Year() int             { return d.t.Year() }
func (d Date) Month() time.Month     { return d.t.Month() }
func (d Date) Day() int              { return d.t.Day() }
func (d Date) Weekday() time.Weekday { return d.t.Weekday() }
func (d Date) IsZero() bool          { return d.t.IsZero() }

func (d Date) YearMonth() Month {
	return NewMonth(d.Year(), d.Month())
}

func (d Date) Before(other Date) bool { return d.t.Before(other.t) }
func (d Date) After(other Date) bool  { return d.t.After(other.t) }
func (d Date) Equal(other Date) bool  { return d.t.Equal(other.t) }

func (d Date) AddDays(n int) Date {
	return NewDate(d.Year(), d.Month(), d.Day()+n)
}

// DaysUntil is the number of calendar days from d to other, rounded up.
func (d Date) DaysUntil(other Date) int {
	return int(math.Ceil(other.t.Sub(d.t).Hours() / 24))
}

func (d Date) Format(layout string) string {
	return d.t.Format(layout)
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(DateLayout)
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(b []byte) error {
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Month is a calendar month, always normalized (January..December).
type Month struct {
	year  int
	month time.Month
}

func NewMonth(year int, month time.Month) Month {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return Month{year: t.Year(), month: t.Month()}
}

func MonthOf(t time.Time) Month {
	return NewMonth(t.Year(), t.Month())
}

func ParseMonth(s string) (Month, error) {
	t, err := time.Parse(MonthLayout, s)
	if err != nil {
		return Month{}, fmt.Errorf("%w: %q", ErrInvalidMonth, s)
	}
	return MonthOf(t), nil
}

func (m Month) Year() int         { return m.year }
func (m Month) Month() time.Month { return m.month }
func (m Month) IsZero() bool      { return m.year == 0 && m.month == 0 }
func (m Month) FirstDay() Date    { return NewDate(m.year, m.month, 1) }
func (m Month) LastDay() Date     { return NewDate(m.year, m.month+1, 0) }
func (m Month) Days() int         { return m.LastDay().Day() }

func (m Month) AddMonths(n int) Month {
	return NewMonth(m.year, m.month+time.Month(n))
}

func (m Month) Before(other Month) bool {
	return m.FirstDay().Before(other.FirstDay())
}

func (m Month) Equal(other Month) bool {
	return m.year == other.year && m.month == other.month
}

func (m Month) Label() string {
	return m.FirstDay().Format(LabelLayout)
}

func (m Month) String() string {
	if m.IsZero() {
		return ""
	}
	return m.FirstDay().Format(MonthLayout)
}

func (m Month) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Month) UnmarshalText(b []byte) error {
	parsed, err := ParseMonth(string(b))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// DateRange is the half-open stay interval [CheckIn, CheckOut).
type DateRange struct {
	CheckIn  Date
	CheckOut Date
}

func NewDateRange(checkIn, checkOut Date) (DateRange, error) {
	if checkIn.IsZero() || checkOut.IsZero() || !checkIn.Before(checkOut) {
		return DateRange{}, ErrInvalidRange
	}
	return DateRange{CheckIn: checkIn, CheckOut: checkOut}, nil
}

// ContainsDate reports checkIn <= d < checkOut. The checkout day is free so a
// new stay can start on it.
func (r DateRange) ContainsDate(d Date) bool {
	return !d.Before(r.CheckIn) && d.Before(r.CheckOut)
}

func (r DateRange) Overlaps(other DateRange) bool {
	return r.CheckIn.Before(other.CheckOut) && other.CheckIn.Before(r.CheckOut)
}

func (r DateRange) Nights() int {
	return Nights(r.CheckIn, r.CheckOut)
}

func Nights(checkIn, checkOut Date) int {
	return checkIn.DaysUntil(checkOut)
}
